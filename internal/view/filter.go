package view

import (
	"strings"

	"github.com/dshills/sitewatch/internal/record"
	"github.com/dshills/sitewatch/internal/tier"
	"github.com/m-mizutani/goerr/v2"
)

// Constraint restricts Field to the Allowed values. An empty Allowed set
// leaves the field unconstrained.
type Constraint struct {
	Field   string
	Allowed []record.Value
}

// Match reports whether r satisfies c. A record without the field fails any
// non-empty constraint.
func (c Constraint) Match(r record.Record) bool {
	if len(c.Allowed) == 0 {
		return true
	}
	v, ok := r.Get(c.Field)
	if !ok {
		return false
	}
	for _, a := range c.Allowed {
		if v.Equal(a) {
			return true
		}
	}
	return false
}

// ParseConstraint parses "field=v1,v2". "field=" yields an unconstrained
// filter on field.
func ParseConstraint(s string) (Constraint, error) {
	field, vals, ok := strings.Cut(s, "=")
	field = strings.TrimSpace(field)
	if !ok || field == "" {
		return Constraint{}, goerr.New("filter must look like field=value[,value...]",
			goerr.V("filter", s))
	}
	c := Constraint{Field: field}
	for _, raw := range strings.Split(vals, ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		c.Allowed = append(c.Allowed, record.Parse(raw))
	}
	return c, nil
}

// FilterByFields keeps records that satisfy every constraint.
func FilterByFields(records []record.Record, constraints []Constraint) []record.Record {
	out := make([]record.Record, 0, len(records))
	for _, r := range records {
		keep := true
		for _, c := range constraints {
			if !c.Match(r) {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, r)
		}
	}
	return out
}

// FilterByTier keeps records whose tier is one of tiers. No tiers means no
// filtering.
func FilterByTier(records []record.Record, tiers ...tier.Tier) []record.Record {
	out := make([]record.Record, 0, len(records))
	if len(tiers) == 0 {
		return append(out, records...)
	}
	want := make(map[tier.Tier]bool, len(tiers))
	for _, t := range tiers {
		want[t] = true
	}
	for _, r := range records {
		if want[TierOf(r)] {
			out = append(out, r)
		}
	}
	return out
}

// AtLeast keeps records at least as severe as min.
func AtLeast(records []record.Record, min tier.Tier) []record.Record {
	out := make([]record.Record, 0, len(records))
	for _, r := range records {
		if TierOf(r).AtLeast(min) {
			out = append(out, r)
		}
	}
	return out
}
