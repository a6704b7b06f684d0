package internal

import (
	"encoding/json"
	"testing"

	"github.com/dshills/sitewatch/internal/dataset"
	"github.com/dshills/sitewatch/internal/record"
	"github.com/dshills/sitewatch/internal/redact"
	"github.com/dshills/sitewatch/internal/render"
	"github.com/dshills/sitewatch/internal/tier"
	"github.com/dshills/sitewatch/internal/view"
)

// sortableFields returns fields present with a single kind on every record.
func sortableFields(records []record.Record) []string {
	if len(records) == 0 {
		return nil
	}
	var out []string
	for _, f := range records[0].Fields() {
		kind := records[0][f].Kind()
		ok := true
		for _, r := range records[1:] {
			v, present := r.Get(f)
			if !present || v.Kind() != kind {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, f)
		}
	}
	return out
}

func TestGoldenBuiltinPipeline(t *testing.T) {
	names, err := dataset.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(names) == 0 {
		t.Fatal("no builtin datasets")
	}

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			ds, err := dataset.LoadBuiltin(name)
			if err != nil {
				t.Fatalf("LoadBuiltin: %v", err)
			}
			for _, e := range dataset.Validate(ds) {
				t.Errorf("validation error: %s", e)
			}
			records := redact.Records(ds.Records)

			// Every record classifies without falling back.
			for _, r := range records {
				if _, err := view.Classify(r); err != nil {
					t.Errorf("record %s: %v", r.ID(), err)
				}
			}

			// Counts cover every record.
			counts := view.AggregateSeverityCounts(records)
			sum := 0
			for _, n := range counts {
				sum += n
			}
			if sum != len(records) {
				t.Errorf("counts sum to %d, want %d", sum, len(records))
			}

			// Every uniformly present field sorts both ways, and the result
			// is ordered.
			for _, field := range sortableFields(records) {
				for _, dir := range []view.Direction{view.Asc, view.Desc} {
					sorted, err := view.SortBy(records, field, dir)
					if err != nil {
						t.Fatalf("SortBy(%s, %s): %v", field, dir, err)
					}
					if len(sorted) != len(records) {
						t.Fatalf("SortBy(%s) changed length", field)
					}
					again, err := view.SortBy(sorted, field, dir)
					if err != nil {
						t.Fatalf("resort: %v", err)
					}
					for i := range sorted {
						if sorted[i].ID() != again[i].ID() {
							t.Errorf("SortBy(%s, %s) not idempotent at %d", field, dir, i)
						}
					}
				}
			}

			// Severity threshold views nest.
			var prev int
			for i := len(tier.All) - 1; i >= 0; i-- {
				n := len(view.AtLeast(records, tier.All[i]))
				if i < len(tier.All)-1 && n > prev {
					t.Errorf("AtLeast(%s) = %d exceeds less strict threshold %d", tier.All[i], n, prev)
				}
				prev = n
			}

			// Report rendering and JSON round-trip stability.
			res, err := view.Apply(records, view.Query{})
			if err != nil {
				t.Fatalf("Apply: %v", err)
			}
			rep := &render.Report{Dashboard: ds.Name, Title: ds.Title, Source: ds.Source, Hash: ds.Hash, Result: res}
			if md := render.Markdown(rep); md == "" {
				t.Error("empty markdown")
			}
			data1, err := json.MarshalIndent(rep, "", "  ")
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			var generic map[string]any
			if err := json.Unmarshal(data1, &generic); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			data2, err := json.MarshalIndent(generic, "", "  ")
			if err != nil {
				t.Fatalf("remarshal: %v", err)
			}
			var a, b any
			_ = json.Unmarshal(data1, &a)
			_ = json.Unmarshal(data2, &b)
			if string(mustJSON(t, a)) != string(mustJSON(t, b)) {
				t.Error("JSON round-trip produced different output")
			}
		})
	}
}

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	return data
}
