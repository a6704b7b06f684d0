package record

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/m-mizutani/goerr/v2"
)

// Well-known field names.
const (
	FieldID          = "id"
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldSeverity    = "severity"
	FieldScore       = "score"
)

// Record is one issue: field name to value.
type Record map[string]Value

// Get returns the named field and whether it is present.
func (r Record) Get(field string) (Value, bool) {
	v, ok := r[field]
	return v, ok
}

// ID returns the record's id rendered as text, or "" if absent.
func (r Record) ID() string { return r[FieldID].Text() }

// Title returns the title field as text.
func (r Record) Title() string { return r[FieldTitle].Text() }

// Description returns the description field as text.
func (r Record) Description() string { return r[FieldDescription].Text() }

// Severity returns the severity label and whether it is a string field.
func (r Record) Severity() (string, bool) {
	v, ok := r[FieldSeverity]
	if !ok {
		return "", false
	}
	return v.Str()
}

// Score returns the score field and whether it is a number.
func (r Record) Score() (float64, bool) {
	v, ok := r[FieldScore]
	if !ok {
		return 0, false
	}
	return v.Num()
}

// Fields returns the record's field names in sorted order.
func (r Record) Fields() []string {
	names := make([]string, 0, len(r))
	for k := range r {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Clone returns a shallow copy. Values are immutable so this is a full copy.
func (r Record) Clone() Record {
	c := make(Record, len(r))
	for k, v := range r {
		c[k] = v
	}
	return c
}

// FromMap converts a decoded YAML/JSON object into a Record. Booleans and
// timestamps become strings; nil drops the field; nested values are rejected.
func FromMap(m map[string]interface{}) (Record, error) {
	r := make(Record, len(m))
	for k, raw := range m {
		if raw == nil {
			continue
		}
		v, err := convert(raw)
		if err != nil {
			return nil, goerr.Wrap(err, "unsupported field value", goerr.V("field", k))
		}
		r[k] = v
	}
	return r, nil
}

func convert(raw interface{}) (Value, error) {
	switch x := raw.(type) {
	case string:
		return String(x), nil
	case int:
		return Number(float64(x)), nil
	case int64:
		return Number(float64(x)), nil
	case uint64:
		return Number(float64(x)), nil
	case float64:
		return Number(x), nil
	case float32:
		return Number(float64(x)), nil
	case bool:
		return String(strconv.FormatBool(x)), nil
	case time.Time:
		if x.Hour() == 0 && x.Minute() == 0 && x.Second() == 0 && x.Nanosecond() == 0 {
			return String(x.Format("2006-01-02")), nil
		}
		return String(x.Format(time.RFC3339)), nil
	default:
		return Value{}, goerr.New("field must be a number or string",
			goerr.V("type", fmt.Sprintf("%T", raw)))
	}
}
