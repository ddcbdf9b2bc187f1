package generator

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/verte-zerg/pwmeter/internal/analyzer"
)

func TestGenerateCoversClasses(t *testing.T) {
	g := New()
	for i := 0; i < 10000; i++ {
		pw := g.Generate()
		if len(pw) != Length {
			t.Fatalf("expected length %d, got %d (%q)", Length, len(pw), pw)
		}
		if !coversClasses(pw) {
			t.Fatalf("password missing a class: %q", pw)
		}
		r := analyzer.Analyze(pw)
		if !r.HasUpper || !r.HasLower || !r.HasNumbers || !r.HasSpecial {
			t.Fatalf("analyzer missed a class in %q: %+v", pw, r)
		}
	}
}

func TestGenerateDeterministicWithSeed(t *testing.T) {
	a := NewWithSource(rand.NewSource(42))
	b := NewWithSource(rand.NewSource(42))
	for i := 0; i < 5; i++ {
		if pa, pb := a.Generate(), b.Generate(); pa != pb {
			t.Fatalf("expected identical output for same seed: %q vs %q", pa, pb)
		}
	}
}

func TestGenerateUsesOnlyAlphabet(t *testing.T) {
	g := NewWithSource(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		for _, r := range g.Generate() {
			if !strings.ContainsRune(alphabet, r) {
				t.Fatalf("unexpected character %q", r)
			}
		}
	}
}

func TestSpecialSubsetOfAnalyzerSet(t *testing.T) {
	for _, r := range Special {
		if !strings.ContainsRune(analyzer.SpecialChars, r) {
			t.Fatalf("generator special %q is not counted by the analyzer", r)
		}
	}
}

func TestShufflePermutes(t *testing.T) {
	g := NewWithSource(rand.NewSource(1))
	chars := []byte("abcdefghijklmnop")
	g.shuffle(chars)
	if len(chars) != 16 {
		t.Fatalf("shuffle changed length")
	}
	seen := map[byte]int{}
	for _, c := range chars {
		seen[c]++
	}
	for _, c := range []byte("abcdefghijklmnop") {
		if seen[c] != 1 {
			t.Fatalf("expected %q exactly once after shuffle", c)
		}
	}
}

func TestGenerateN(t *testing.T) {
	g := NewWithSource(rand.NewSource(3))
	if got := g.GenerateN(0); got != nil {
		t.Fatalf("expected nil for n=0")
	}
	if got := g.GenerateN(3); len(got) != 3 {
		t.Fatalf("expected 3 passwords, got %d", len(got))
	}
}

func coversClasses(password string) bool {
	for _, class := range []string{Upper, Lower, Digits, Special} {
		if !strings.ContainsAny(password, class) {
			return false
		}
	}
	return true
}
