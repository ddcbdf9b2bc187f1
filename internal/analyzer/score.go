package analyzer

const (
	maxLengthPoints  = 30
	classPoints      = 10
	varietyBonus     = 10
	sequencePenalty  = 15
	commonPenalty    = 20
	varietyThreshold = 3
)

func score(r Result) int {
	s := r.Length * 2
	if s > maxLengthPoints {
		s = maxLengthPoints
	}
	s += r.ClassCount() * classPoints
	if r.ClassCount() >= varietyThreshold {
		s += varietyBonus
	}
	if r.HasSequence {
		s -= sequencePenalty
	}
	if r.IsCommon {
		s -= commonPenalty
	}
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}

// StrengthFor maps a score to its strength tier.
func StrengthFor(score int) Strength {
	switch {
	case score >= 90:
		return StrengthVeryStrong
	case score >= 75:
		return StrengthStrong
	case score >= 50:
		return StrengthGood
	case score >= 25:
		return StrengthFair
	default:
		return StrengthWeak
	}
}
