package dataset

import (
	"fmt"

	"github.com/dshills/sitewatch/internal/record"
	"github.com/dshills/sitewatch/internal/tier"
)

// ValidationError describes a single dataset violation.
type ValidationError struct {
	Path    string
	Message string
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Path, v.Message)
}

// Validate checks the dataset for the invariants the view engine relies on.
func Validate(ds *Dataset) []ValidationError {
	var errs []ValidationError

	if ds.Name == "" {
		errs = append(errs, ValidationError{"name", "required"})
	}

	ids := make(map[string]bool)
	kinds := make(map[string]record.Kind)
	for i, r := range ds.Records {
		prefix := fmt.Sprintf("records[%d]", i)

		id := r.ID()
		if id == "" {
			errs = append(errs, ValidationError{prefix + ".id", "required"})
		} else if ids[id] {
			errs = append(errs, ValidationError{prefix + ".id", fmt.Sprintf("duplicate ID: %q", id)})
		} else {
			ids[id] = true
		}

		if r.Title() == "" {
			errs = append(errs, ValidationError{prefix + ".title", "required"})
		}

		if v, ok := r.Get(record.FieldSeverity); ok {
			if _, err := tier.ParseSeverity(v.Text()); err != nil {
				errs = append(errs, ValidationError{prefix + ".severity", fmt.Sprintf("invalid: %q", v.Text())})
			}
		}
		if v, ok := r.Get(record.FieldScore); ok {
			if score, isNum := v.Num(); !isNum {
				errs = append(errs, ValidationError{prefix + ".score", fmt.Sprintf("must be a number, got %q", v.Text())})
			} else if err := tier.ValidateScore(score); err != nil {
				errs = append(errs, ValidationError{prefix + ".score", "must not be NaN"})
			}
		}

		for _, field := range r.Fields() {
			if field == record.FieldID {
				continue
			}
			k := r[field].Kind()
			if prev, seen := kinds[field]; !seen {
				kinds[field] = k
			} else if prev != k {
				errs = append(errs, ValidationError{
					fmt.Sprintf("%s.%s", prefix, field),
					fmt.Sprintf("is a %s, earlier records use %s", k, prev),
				})
			}
		}
	}

	return errs
}
