package analyzer

import (
	"github.com/ccojocar/zxcvbn-go"
)

// maxEstimateRunes bounds the pattern matcher, which is superlinear in input length.
const maxEstimateRunes = 64

// Estimate is a pattern-based second opinion from zxcvbn. It does not
// affect Result.
type Estimate struct {
	Score     int
	Entropy   float64
	CrackTime string
	Truncated bool
}

// EstimateStrength runs the zxcvbn matcher over password. userInputs are
// extra words (such as a username) that should count as guessable.
func EstimateStrength(password string, userInputs []string) Estimate {
	if password == "" {
		return Estimate{CrackTime: "instant"}
	}
	runes := []rune(password)
	truncated := false
	if len(runes) > maxEstimateRunes {
		runes = runes[:maxEstimateRunes]
		truncated = true
	}
	res := zxcvbn.PasswordStrength(string(runes), userInputs)
	return Estimate{
		Score:     res.Score,
		Entropy:   res.Entropy,
		CrackTime: res.CrackTimeDisplay,
		Truncated: truncated,
	}
}
