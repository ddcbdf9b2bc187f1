package analyzer

import (
	"strings"
	"testing"
)

func TestEstimateStrengthEmpty(t *testing.T) {
	est := EstimateStrength("", nil)
	if est.Score != 0 || est.Truncated {
		t.Fatalf("unexpected estimate for empty input: %+v", est)
	}
}

func TestEstimateStrengthRange(t *testing.T) {
	for _, in := range []string{"password", "correcthorsebatterystaple", "Xk9#mQ2$vL7!pR4&"} {
		est := EstimateStrength(in, nil)
		if est.Score < 0 || est.Score > 4 {
			t.Fatalf("score out of range for %q: %d", in, est.Score)
		}
		if est.CrackTime == "" {
			t.Fatalf("expected crack time display for %q", in)
		}
	}
}

func TestEstimateStrengthTruncates(t *testing.T) {
	est := EstimateStrength(strings.Repeat("x", maxEstimateRunes+1), nil)
	if !est.Truncated {
		t.Fatalf("expected truncated estimate")
	}
}
