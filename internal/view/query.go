package view

import (
	"github.com/dshills/sitewatch/internal/record"
	"github.com/dshills/sitewatch/internal/tier"
	"golang.org/x/text/language"
)

// Query describes one dashboard view. The zero Query shows everything in
// source order.
type Query struct {
	Search       string
	SearchFields []string
	Constraints  []Constraint
	Tiers        []tier.Tier
	MinTier      tier.Tier // empty means no threshold
	SortField    string    // empty keeps source order
	Direction    Direction
	Locale       language.Tag
	Limit        int
}

// Result is the rendered view.
type Result struct {
	Records []record.Record `json:"records" yaml:"records"`
	Summary Summary         `json:"summary" yaml:"summary"`
	Hidden  int             `json:"hidden,omitempty" yaml:"hidden,omitempty"`
}

// Apply runs search, field filters, tier filters, sort and limit in that
// order. The summary covers every matching record, including any hidden by
// the limit. If sorting fails the result still holds the filtered records
// in source order alongside the SchemaMismatch error.
func Apply(records []record.Record, q Query) (Result, error) {
	out := SearchMatch(records, q.Search, q.SearchFields)
	out = FilterByFields(out, q.Constraints)
	out = FilterByTier(out, q.Tiers...)
	if q.MinTier != "" {
		out = AtLeast(out, q.MinTier)
	}

	res := Result{Summary: Summarize(out)}

	var sortErr error
	if q.SortField != "" {
		dir := q.Direction
		if dir == "" {
			dir = Asc
		}
		locale := q.Locale
		if locale == language.Und {
			locale = DefaultLocale
		}
		sorted, err := SortByLocale(out, q.SortField, dir, locale)
		if err != nil {
			sortErr = err
		} else {
			out = sorted
		}
	}

	res.Records, res.Hidden = Limit(out, q.Limit)
	return res, sortErr
}
