// Package render produces Markdown and terminal-table output from a view.
package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dshills/sitewatch/internal/record"
	"github.com/dshills/sitewatch/internal/tier"
	"github.com/dshills/sitewatch/internal/view"
)

// Report is a rendered dashboard view with its origin.
type Report struct {
	Dashboard   string   `json:"dashboard" yaml:"dashboard"`
	Title       string   `json:"title,omitempty" yaml:"title,omitempty"`
	Source      string   `json:"source" yaml:"source"`
	Hash        string   `json:"hash" yaml:"hash"`
	Columns     []string `json:"-" yaml:"-"`
	view.Result `yaml:",inline"`
}

var tierHeadings = map[tier.Tier]string{
	tier.Critical:  "Critical",
	tier.Warning:   "Warnings",
	tier.Good:      "Good",
	tier.Excellent: "Excellent",
}

// Markdown renders a report grouped by tier, preserving view order within
// each group.
func Markdown(r *Report) string {
	var b strings.Builder

	title := r.Title
	if title == "" {
		title = r.Dashboard
	}
	fmt.Fprintf(&b, "# %s\n\n", title)
	fmt.Fprintf(&b, "**Health:** %s (%d / 100)\n", r.Summary.Tier, r.Summary.Score)
	fmt.Fprintf(&b, "**Issues:** %d critical, %d warnings, %d good, %d excellent\n\n",
		r.Summary.Critical, r.Summary.Warning, r.Summary.Good, r.Summary.Excellent)

	if len(r.Records) == 0 {
		b.WriteString("No issues found.\n\n")
	}

	for _, t := range tier.All {
		group := byTier(r.Records, t)
		if len(group) == 0 {
			continue
		}
		fmt.Fprintf(&b, "## %s\n\n", tierHeadings[t])
		for _, rec := range group {
			renderRecord(&b, rec, r.Columns)
		}
	}

	if r.Hidden > 0 {
		fmt.Fprintf(&b, "_%d more not shown._\n\n", r.Hidden)
	}

	fmt.Fprintf(&b, "---\nSource: %s (%s)\n", r.Source, r.Hash)
	return b.String()
}

func byTier(records []record.Record, t tier.Tier) []record.Record {
	var out []record.Record
	for _, r := range records {
		if view.TierOf(r) == t {
			out = append(out, r)
		}
	}
	return out
}

func renderRecord(b *strings.Builder, r record.Record, cols []string) {
	fmt.Fprintf(b, "### %s [%s]\n\n", r.Title(), view.TierOf(r))
	if d := r.Description(); d != "" {
		fmt.Fprintf(b, "%s\n\n", d)
	}
	for _, f := range detailFields(r, cols) {
		fmt.Fprintf(b, "- **%s:** %s\n", f, r[f].Text())
	}
	b.WriteString("\n")
}

func detailFields(r record.Record, cols []string) []string {
	if len(cols) == 0 {
		cols = r.Fields()
	}
	var out []string
	for _, f := range cols {
		switch f {
		case record.FieldTitle, record.FieldDescription:
			continue
		}
		if _, ok := r.Get(f); ok {
			out = append(out, f)
		}
	}
	return out
}

// columns picks table columns: explicit ones, or id, title, then every
// other field in name order. Descriptions are left to Markdown.
func columns(r *Report) []string {
	if len(r.Columns) > 0 {
		return r.Columns
	}
	seen := map[string]bool{record.FieldID: true, record.FieldTitle: true, record.FieldDescription: true}
	var rest []string
	for _, rec := range r.Records {
		for f := range rec {
			if !seen[f] {
				seen[f] = true
				rest = append(rest, f)
			}
		}
	}
	sort.Strings(rest)
	return append([]string{record.FieldID, record.FieldTitle}, rest...)
}
