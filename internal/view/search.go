package view

import (
	"strings"

	"github.com/dshills/sitewatch/internal/record"
)

// DefaultSearchFields are searched when no fields are named.
var DefaultSearchFields = []string{record.FieldTitle, record.FieldDescription}

// SearchMatch keeps records whose named fields, joined by spaces, contain
// query case-insensitively. An empty query keeps everything. Missing fields
// contribute nothing.
func SearchMatch(records []record.Record, query string, fields []string) []record.Record {
	out := make([]record.Record, 0, len(records))
	if query == "" {
		return append(out, records...)
	}
	if len(fields) == 0 {
		fields = DefaultSearchFields
	}
	needle := strings.ToLower(query)
	var b strings.Builder
	for _, r := range records {
		b.Reset()
		for i, f := range fields {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(r[f].Text())
		}
		if strings.Contains(strings.ToLower(b.String()), needle) {
			out = append(out, r)
		}
	}
	return out
}
