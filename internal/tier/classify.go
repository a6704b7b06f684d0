package tier

import (
	"math"

	"github.com/m-mizutani/goerr/v2"
)

// ErrTagInvalidInput marks a NaN score or an unrecognized label.
var ErrTagInvalidInput = goerr.NewTag("invalid_input")

// Fallback is returned for input that cannot be classified. Critical keeps a
// bad value visible instead of hiding the issue.
const Fallback = Critical

// ClassifyScore maps a 0-100 score to a tier. Out-of-range scores land in the
// nearest boundary tier; NaN yields Fallback.
//
//	excellent  score >= 90
//	good       70 <= score < 90
//	warning    50 < score < 70
//	critical   score <= 50
func ClassifyScore(score float64) Tier {
	switch {
	case math.IsNaN(score):
		return Fallback
	case score >= 90:
		return Excellent
	case score >= 70:
		return Good
	case score > 50:
		return Warning
	default:
		return Critical
	}
}

// ValidateScore returns an InvalidInput error for scores ClassifyScore can
// only answer with Fallback.
func ValidateScore(score float64) error {
	if math.IsNaN(score) {
		return goerr.New("score is NaN", goerr.T(ErrTagInvalidInput))
	}
	return nil
}

var severityTiers = map[Severity]Tier{
	SeverityCritical: Critical,
	SeverityHigh:     Warning,
	SeverityMedium:   Warning,
	SeverityLow:      Good,
}

// ClassifySeverity maps a severity label (canonical or alias) to a tier.
// Unknown labels yield Fallback.
func ClassifySeverity(label string) Tier {
	t, _ := ClassifySeverityLabel(label)
	return t
}

// ClassifySeverityLabel is ClassifySeverity that also reports why a label
// fell back.
func ClassifySeverityLabel(label string) (Tier, error) {
	s, err := ParseSeverity(label)
	if err != nil {
		return Fallback, err
	}
	return severityTiers[s], nil
}
