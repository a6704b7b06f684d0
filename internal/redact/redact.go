// Package redact masks secrets that leak into issue text, such as keys quoted
// from page source or server config.
package redact

import (
	"regexp"

	"github.com/dshills/sitewatch/internal/record"
)

const mask = "[REDACTED]"

var patterns []*regexp.Regexp

func init() {
	raw := []string{
		// AWS access key IDs
		`AKIA[0-9A-Z]{16}`,
		// AWS secret access keys
		`(?i)(aws_secret_access_key|aws_secret)\s*[:=]\s*[A-Za-z0-9/+=]{40}`,
		// Private key blocks
		`-----BEGIN [A-Z ]+PRIVATE KEY-----[\s\S]*?-----END [A-Z ]+PRIVATE KEY-----`,
		// Bearer tokens
		`Bearer\s+[A-Za-z0-9\-._~+/]+=*`,
		// Generic key/secret/token/password assignments
		`(?i)(api[_-]?key|api[_-]?secret|secret[_-]?key|token|password|passwd|credentials)\s*[:=]\s*\S+`,
	}
	for _, r := range raw {
		patterns = append(patterns, regexp.MustCompile(r))
	}
}

// Text replaces secret patterns in s with [REDACTED].
func Text(s string) string {
	for _, p := range patterns {
		s = p.ReplaceAllString(s, mask)
	}
	return s
}

// Record returns a copy of r with every string field redacted.
func Record(r record.Record) record.Record {
	out := r.Clone()
	for k, v := range out {
		if s, ok := v.Str(); ok {
			if red := Text(s); red != s {
				out[k] = record.String(red)
			}
		}
	}
	return out
}

// Records redacts each record, returning a new slice.
func Records(records []record.Record) []record.Record {
	out := make([]record.Record, len(records))
	for i, r := range records {
		out[i] = Record(r)
	}
	return out
}
