// Package feedback turns analysis results into checklist items, labels and hints.
package feedback

import (
	"fmt"
	"strings"

	"github.com/verte-zerg/pwmeter/internal/analyzer"
)

// MinLength is the length requirement shown in the checklist.
const MinLength = 8

// Rule identifies a checklist requirement.
type Rule string

// Checklist rules in display order.
const (
	RuleLength    Rule = "length"
	RuleUppercase Rule = "uppercase"
	RuleLowercase Rule = "lowercase"
	RuleNumbers   Rule = "numbers"
	RuleSpecial   Rule = "special"
	RuleSequence  Rule = "sequence"
	RuleCommon    Rule = "common"
)

// Requirement is one checklist row.
type Requirement struct {
	Rule  Rule
	Title string
	Valid bool
	// Value is empty for rules without a numeric value.
	Value string
}

// GeneratedHint is shown right after a password is generated.
const GeneratedHint = "Strong password generated!"

// Requirements projects r onto the checklist.
func Requirements(r analyzer.Result) []Requirement {
	return []Requirement{
		{Rule: RuleLength, Title: "At least 8 characters", Valid: r.Length >= MinLength, Value: fmt.Sprintf("%d/%d", r.Length, MinLength)},
		{Rule: RuleUppercase, Title: "Uppercase letters", Valid: r.HasUpper, Value: fmt.Sprintf("%d", r.Counts.Upper)},
		{Rule: RuleLowercase, Title: "Lowercase letters", Valid: r.HasLower, Value: fmt.Sprintf("%d", r.Counts.Lower)},
		{Rule: RuleNumbers, Title: "Numbers", Valid: r.HasNumbers, Value: fmt.Sprintf("%d", r.Counts.Numbers)},
		{Rule: RuleSpecial, Title: "Special characters", Valid: r.HasSpecial, Value: fmt.Sprintf("%d", r.Counts.Special)},
		{Rule: RuleSequence, Title: "No sequential characters", Valid: !r.HasSequence},
		{Rule: RuleCommon, Title: "Not a common password", Valid: !r.IsCommon},
	}
}

// Hint picks the single most relevant piece of advice for r.
func Hint(r analyzer.Result) string {
	switch {
	case r.Length == 0:
		return "Start typing to see strength analysis"
	case r.IsCommon:
		return "This is a commonly used password - try something more unique!"
	case r.HasSequence:
		return "Avoid sequential characters (abc, 123)"
	case r.Length < MinLength:
		return "Make it longer! Aim for at least 8 characters"
	case r.ClassCount() < 4:
		return fmt.Sprintf("Add %s to make it stronger", strings.Join(Missing(r), ", "))
	case r.Score >= 90:
		return "Excellent password! This is very secure!"
	case r.Score >= 75:
		return "Good password! Consider making it longer for extra security"
	default:
		return "Keep going! Try mixing different character types"
	}
}

// Missing lists the absent character classes in checklist order.
func Missing(r analyzer.Result) []string {
	var missing []string
	if !r.HasUpper {
		missing = append(missing, "uppercase letters")
	}
	if !r.HasLower {
		missing = append(missing, "lowercase letters")
	}
	if !r.HasNumbers {
		missing = append(missing, "numbers")
	}
	if !r.HasSpecial {
		missing = append(missing, "special characters")
	}
	return missing
}

// Label returns the display label for a strength tier.
func Label(s analyzer.Strength) string {
	switch s {
	case analyzer.StrengthWeak:
		return "Weak"
	case analyzer.StrengthFair:
		return "Fair"
	case analyzer.StrengthGood:
		return "Good"
	case analyzer.StrengthStrong:
		return "Strong"
	case analyzer.StrengthVeryStrong:
		return "Very Strong"
	default:
		return "Unknown"
	}
}

// Color returns the hex colour a strength tier is drawn in.
func Color(s analyzer.Strength) string {
	switch s {
	case analyzer.StrengthWeak:
		return "#E74C3C"
	case analyzer.StrengthFair:
		return "#E67E22"
	case analyzer.StrengthGood:
		return "#F1C40F"
	case analyzer.StrengthStrong:
		return "#2ECC71"
	case analyzer.StrengthVeryStrong:
		return "#27AE60"
	default:
		return "#8C8C8C"
	}
}

// StatRows returns the label/value pairs of the statistics panel.
func StatRows(r analyzer.Result, est analyzer.Estimate) [][]string {
	zx := fmt.Sprintf("%d/4, %s", est.Score, est.CrackTime)
	if est.Truncated {
		zx += " (first 64 chars)"
	}
	return [][]string{
		{"Length", LengthLabel(r.Length)},
		{"Crack time", r.CrackTime},
		{"Combinations", r.CombinationsText},
		{"Entropy", fmt.Sprintf("%d bits", r.Entropy)},
		{"zxcvbn", zx},
	}
}

// LengthLabel renders a character count with the right plural.
func LengthLabel(n int) string {
	if n == 1 {
		return "1 character"
	}
	return fmt.Sprintf("%d characters", n)
}
