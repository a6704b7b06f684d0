package view

import (
	"github.com/dshills/sitewatch/internal/record"
	"github.com/dshills/sitewatch/internal/tier"
	"github.com/m-mizutani/goerr/v2"
)

// Classify returns a record's tier: from its severity label when present,
// else from its numeric score, else tier.Fallback with an InvalidInput error.
func Classify(r record.Record) (tier.Tier, error) {
	if v, ok := r.Get(record.FieldSeverity); ok {
		return tier.ClassifySeverityLabel(v.Text())
	}
	if score, ok := r.Score(); ok {
		return tier.ClassifyScore(score), tier.ValidateScore(score)
	}
	if v, ok := r.Get(record.FieldScore); ok {
		return tier.Fallback, goerr.New("score is not a number",
			goerr.T(tier.ErrTagInvalidInput),
			goerr.V("id", r.ID()),
			goerr.V("score", v.Text()))
	}
	return tier.Fallback, goerr.New("record has neither severity nor score",
		goerr.T(tier.ErrTagInvalidInput),
		goerr.V("id", r.ID()))
}

// TierOf is Classify without the error.
func TierOf(r record.Record) tier.Tier {
	t, _ := Classify(r)
	return t
}

// AggregateSeverityCounts tallies records per tier. All four tiers are
// always present in the result.
func AggregateSeverityCounts(records []record.Record) map[tier.Tier]int {
	counts := make(map[tier.Tier]int, len(tier.All))
	for _, t := range tier.All {
		counts[t] = 0
	}
	for _, r := range records {
		counts[TierOf(r)]++
	}
	return counts
}

// Summary is the badge data shown above a dashboard's issue list.
type Summary struct {
	Total     int       `json:"total" yaml:"total"`
	Critical  int       `json:"critical" yaml:"critical"`
	Warning   int       `json:"warning" yaml:"warning"`
	Good      int       `json:"good" yaml:"good"`
	Excellent int       `json:"excellent" yaml:"excellent"`
	Score     int       `json:"score" yaml:"score"`
	Tier      tier.Tier `json:"tier" yaml:"tier"`
}

// Summarize derives counts, health score and overall tier from records.
func Summarize(records []record.Record) Summary {
	counts := AggregateSeverityCounts(records)
	score := tier.ComputeScore(counts)
	return Summary{
		Total:     len(records),
		Critical:  counts[tier.Critical],
		Warning:   counts[tier.Warning],
		Good:      counts[tier.Good],
		Excellent: counts[tier.Excellent],
		Score:     score,
		Tier:      tier.ClassifyScore(float64(score)),
	}
}

// Count returns the tally for t.
func (s Summary) Count(t tier.Tier) int {
	switch t {
	case tier.Critical:
		return s.Critical
	case tier.Warning:
		return s.Warning
	case tier.Good:
		return s.Good
	case tier.Excellent:
		return s.Excellent
	}
	return 0
}
