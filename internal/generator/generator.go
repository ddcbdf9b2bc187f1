// Package generator builds random passwords that cover every character class.
package generator

import (
	"math/rand"
	"time"
)

// Length is the size of every generated password.
const Length = 16

// Class alphabets used by the generator. Special omits ':' because the
// analyzer does not count it as a special character.
const (
	Upper   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Lower   = "abcdefghijklmnopqrstuvwxyz"
	Digits  = "0123456789"
	Special = "!@#$%^&*()_+-=[]{}|;,.<>?"
)

var alphabet = Upper + Lower + Digits + Special

// Generator produces random passwords. It is not cryptographically secure.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewWithSource(rand.NewSource(time.Now().UnixNano()))
}

// NewWithSource returns a Generator drawing from src.
func NewWithSource(src rand.Source) *Generator {
	return &Generator{rnd: rand.New(src)}
}

// Generate returns a password of Length characters containing at least one
// uppercase letter, lowercase letter, digit and special character.
func (g *Generator) Generate() string {
	chars := make([]byte, 0, Length)
	for _, class := range []string{Upper, Lower, Digits, Special} {
		chars = append(chars, g.pick(class))
	}
	for len(chars) < Length {
		chars = append(chars, g.pick(alphabet))
	}
	g.shuffle(chars)
	return string(chars)
}

// GenerateN returns n independent passwords.
func (g *Generator) GenerateN(n int) []string {
	if n <= 0 {
		return nil
	}
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, g.Generate())
	}
	return out
}

func (g *Generator) pick(set string) byte {
	return set[g.rnd.Intn(len(set))]
}

// shuffle is a Fisher-Yates permutation.
func (g *Generator) shuffle(chars []byte) {
	for i := len(chars) - 1; i > 0; i-- {
		j := g.rnd.Intn(i + 1)
		chars[i], chars[j] = chars[j], chars[i]
	}
}
