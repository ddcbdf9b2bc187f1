// Package analyzer computes heuristic password strength metrics.
package analyzer

import (
	"strings"
	"unicode/utf16"
)

// Strength is an ordered strength tier derived from the score.
type Strength string

// Strength tiers from weakest to strongest.
const (
	StrengthWeak       Strength = "weak"
	StrengthFair       Strength = "fair"
	StrengthGood       Strength = "good"
	StrengthStrong     Strength = "strong"
	StrengthVeryStrong Strength = "very-strong"
)

// Counts holds per-class character counts.
type Counts struct {
	Upper   int
	Lower   int
	Numbers int
	Special int
}

// Total returns the number of characters that fell into any class.
func (c Counts) Total() int {
	return c.Upper + c.Lower + c.Numbers + c.Special
}

// Result is the outcome of a single analysis.
type Result struct {
	Length      int
	HasUpper    bool
	HasLower    bool
	HasNumbers  bool
	HasSpecial  bool
	Counts      Counts
	HasSequence bool
	IsCommon    bool
	Score       int
	Strength    Strength
	Entropy     int
	// Combinations is the keyspace size; it may be +Inf for very long input.
	Combinations     float64
	CombinationsText string
	CrackTime        string
}

// ClassCount returns how many of the four character classes are present.
func (r Result) ClassCount() int {
	n := 0
	for _, ok := range []bool{r.HasUpper, r.HasLower, r.HasNumbers, r.HasSpecial} {
		if ok {
			n++
		}
	}
	return n
}

// Analyzer scores passwords against a denylist.
type Analyzer struct {
	denylist map[string]struct{}
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithDenylist adds entries to the common-password denylist.
func WithDenylist(words []string) Option {
	return func(a *Analyzer) {
		for _, w := range words {
			w = strings.ToLower(strings.TrimSpace(w))
			if w == "" {
				continue
			}
			a.denylist[w] = struct{}{}
		}
	}
}

// New returns an Analyzer using the fixed common-password list plus any options.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{denylist: make(map[string]struct{}, len(CommonPasswords))}
	for _, w := range CommonPasswords {
		a.denylist[w] = struct{}{}
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

var defaultAnalyzer = New()

// Analyze runs the default analyzer.
func Analyze(password string) Result {
	return defaultAnalyzer.Analyze(password)
}

// Analyze computes all metrics for password. It never fails.
func (a *Analyzer) Analyze(password string) Result {
	units := utf16.Encode([]rune(password))

	var r Result
	r.Length = len(units)
	r.Counts = countClasses(units)
	r.HasUpper = r.Counts.Upper > 0
	r.HasLower = r.Counts.Lower > 0
	r.HasNumbers = r.Counts.Numbers > 0
	r.HasSpecial = r.Counts.Special > 0
	r.HasSequence = hasSequence(units)
	r.IsCommon = a.IsCommon(password)

	r.Score = score(r)
	r.Strength = StrengthFor(r.Score)
	r.Entropy = entropy(units)
	r.Combinations = combinations(r)
	r.CombinationsText = formatExponential(r.Combinations)
	r.CrackTime = CrackTime(r.Length)
	return r
}

// IsCommon reports whether the lowercased password is on the denylist.
func (a *Analyzer) IsCommon(password string) bool {
	_, ok := a.denylist[strings.ToLower(password)]
	return ok
}

// HasSequence reports whether password contains three consecutive ascending code units.
func HasSequence(password string) bool {
	return hasSequence(utf16.Encode([]rune(password)))
}

func countClasses(units []uint16) Counts {
	var c Counts
	for _, u := range units {
		switch {
		case isUpper(u):
			c.Upper++
		case isLower(u):
			c.Lower++
		case isDigit(u):
			c.Numbers++
		case isSpecial(u):
			c.Special++
		}
	}
	return c
}

func hasSequence(units []uint16) bool {
	for i := 0; i+2 < len(units); i++ {
		a, b, c := int(units[i]), int(units[i+1]), int(units[i+2])
		if b == a+1 && c == b+1 {
			return true
		}
	}
	return false
}
