// Package tier classifies numeric scores and qualitative severity labels
// into the four display tiers shared by every dashboard.
package tier

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// Tier is one of the four severity/quality buckets.
type Tier string

const (
	Excellent Tier = "excellent"
	Good      Tier = "good"
	Warning   Tier = "warning"
	Critical  Tier = "critical"
)

// All lists the tiers from most to least severe.
var All = []Tier{Critical, Warning, Good, Excellent}

func (t Tier) Valid() bool {
	switch t {
	case Excellent, Good, Warning, Critical:
		return true
	}
	return false
}

// Rank returns a sort key (lower = more severe). Unknown tiers rank last.
func (t Tier) Rank() int {
	switch t {
	case Critical:
		return 0
	case Warning:
		return 1
	case Good:
		return 2
	case Excellent:
		return 3
	default:
		return 4
	}
}

// AtLeast reports whether t is as severe as min or more.
func (t Tier) AtLeast(min Tier) bool {
	return t.Valid() && t.Rank() <= min.Rank()
}

// ParseTier parses a tier name, ignoring case and surrounding space.
func ParseTier(s string) (Tier, error) {
	t := Tier(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", goerr.New("unknown tier",
			goerr.T(ErrTagInvalidInput),
			goerr.V("tier", s))
	}
	return t, nil
}

// Severity is a qualitative label attached to pre-classified issues.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

func (s Severity) Valid() bool {
	switch s {
	case SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow:
		return true
	}
	return false
}

// severityAliases folds the vocabularies used across dashboards onto the
// four canonical labels.
var severityAliases = map[string]Severity{
	"critical": SeverityCritical,
	"high":     SeverityHigh,
	"error":    SeverityHigh,
	"medium":   SeverityMedium,
	"warning":  SeverityMedium,
	"warn":     SeverityMedium,
	"moderate": SeverityMedium,
	"low":      SeverityLow,
	"info":     SeverityLow,
	"notice":   SeverityLow,
}

// ParseSeverity resolves a severity label, including legacy aliases such as
// "warning" or "info", to its canonical Severity.
func ParseSeverity(label string) (Severity, error) {
	if s, ok := severityAliases[strings.ToLower(strings.TrimSpace(label))]; ok {
		return s, nil
	}
	return "", goerr.New("unknown severity label",
		goerr.T(ErrTagInvalidInput),
		goerr.V("severity", label))
}
