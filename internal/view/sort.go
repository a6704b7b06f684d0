// Package view produces display-ordered, filtered views over issue records.
// Every function returns a new slice and leaves its input untouched.
package view

import (
	"cmp"
	"sort"
	"strings"

	"github.com/dshills/sitewatch/internal/record"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// ErrTagSchemaMismatch marks a sort field that is missing on a record or
// holds different kinds across records.
var ErrTagSchemaMismatch = goerr.NewTag("schema_mismatch")

// Direction is a sort direction.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

func (d Direction) Valid() bool {
	return d == Asc || d == Desc
}

// ParseDirection accepts "asc" or "desc" in any case.
func ParseDirection(s string) (Direction, error) {
	d := Direction(strings.ToLower(strings.TrimSpace(s)))
	if !d.Valid() {
		return "", goerr.New("unknown sort direction", goerr.V("direction", s))
	}
	return d, nil
}

// DefaultLocale drives string comparison when no locale is given.
var DefaultLocale = language.English

// SortBy returns records stably ordered by field. Strings compare
// case-insensitively under DefaultLocale.
func SortBy(records []record.Record, field string, dir Direction) ([]record.Record, error) {
	return SortByLocale(records, field, dir, DefaultLocale)
}

// SortByLocale is SortBy with an explicit collation locale.
func SortByLocale(records []record.Record, field string, dir Direction, locale language.Tag) ([]record.Record, error) {
	if !dir.Valid() {
		return nil, goerr.New("unknown sort direction", goerr.V("direction", dir))
	}
	kind, err := fieldKind(records, field)
	if err != nil {
		return nil, err
	}

	out := make([]record.Record, len(records))
	copy(out, records)

	var compare func(a, b record.Value) int
	switch kind {
	case record.KindNumber:
		compare = func(a, b record.Value) int {
			x, _ := a.Num()
			y, _ := b.Num()
			return cmp.Compare(x, y)
		}
	case record.KindString:
		col := collate.New(locale, collate.IgnoreCase)
		compare = func(a, b record.Value) int {
			x, _ := a.Str()
			y, _ := b.Str()
			return col.CompareString(x, y)
		}
	default:
		// Empty input.
		return out, nil
	}

	sort.SliceStable(out, func(i, j int) bool {
		c := compare(out[i][field], out[j][field])
		if dir == Desc {
			return c > 0
		}
		return c < 0
	})
	return out, nil
}

// fieldKind checks that field holds a value on every record, all of one kind.
func fieldKind(records []record.Record, field string) (record.Kind, error) {
	kind := record.KindInvalid
	for i, r := range records {
		v, ok := r.Get(field)
		if !ok {
			return record.KindInvalid, goerr.New("sort field missing on record",
				goerr.T(ErrTagSchemaMismatch),
				goerr.V("field", field),
				goerr.V("index", i),
				goerr.V("id", r.ID()))
		}
		if v.Kind() == record.KindInvalid {
			return record.KindInvalid, goerr.New("sort field has no value",
				goerr.T(ErrTagSchemaMismatch),
				goerr.V("field", field),
				goerr.V("index", i),
				goerr.V("id", r.ID()))
		}
		if i == 0 {
			kind = v.Kind()
			continue
		}
		if v.Kind() != kind {
			return record.KindInvalid, goerr.New("sort field has mixed kinds",
				goerr.T(ErrTagSchemaMismatch),
				goerr.V("field", field),
				goerr.V("index", i),
				goerr.V("want", kind.String()),
				goerr.V("got", v.Kind().String()))
		}
	}
	return kind, nil
}
