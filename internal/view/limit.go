package view

import "github.com/dshills/sitewatch/internal/record"

// Limit caps records at n and reports how many were dropped.
// n <= 0 means no cap.
func Limit(records []record.Record, n int) ([]record.Record, int) {
	if n <= 0 || len(records) <= n {
		out := make([]record.Record, len(records))
		copy(out, records)
		return out, 0
	}
	out := make([]record.Record, n)
	copy(out, records[:n])
	return out, len(records) - n
}
