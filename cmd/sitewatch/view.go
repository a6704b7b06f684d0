package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dshills/sitewatch/internal/dataset"
	"github.com/dshills/sitewatch/internal/record"
	"github.com/dshills/sitewatch/internal/redact"
	"github.com/dshills/sitewatch/internal/render"
	"github.com/dshills/sitewatch/internal/tier"
	"github.com/dshills/sitewatch/internal/view"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

type viewFlags struct {
	builtin       string
	search        string
	searchFields  []string
	filters       []string
	tiers         []string
	minTier       string
	sortField     string
	order         string
	desc          bool
	locale        string
	limit         int
	columns       []string
	format        string
	out           string
	failOn        string
	redactEnabled bool
}

func newViewCmd() *cobra.Command {
	f := &viewFlags{}

	cmd := &cobra.Command{
		Use:   "view [dataset-file]",
		Short: "Search, filter, sort and summarize a dashboard's issues",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return runView(cmd.Context(), path, f, cmd.OutOrStdout())
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.builtin, "builtin", "", "Use a builtin dataset (see 'sitewatch dashboards')")
	flags.StringVar(&f.search, "search", "", "Case-insensitive substring to search for")
	flags.StringSliceVar(&f.searchFields, "search-fields", nil, "Fields to search (default: title,description)")
	flags.StringArrayVar(&f.filters, "filter", nil, "Field filter field=v1,v2 (may be repeated, combined with AND)")
	flags.StringSliceVar(&f.tiers, "tier", nil, "Only show these tiers: critical, warning, good, excellent")
	flags.StringVar(&f.minTier, "min-tier", "", "Only show issues at least this severe")
	flags.StringVar(&f.sortField, "sort", "", "Field to sort by (default: source order)")
	flags.StringVar(&f.order, "order", "asc", "Sort order: asc or desc")
	flags.BoolVar(&f.desc, "desc", false, "Sort descending (same as --order desc)")
	flags.StringVar(&f.locale, "locale", "en", "Locale for string comparison (BCP 47)")
	flags.IntVar(&f.limit, "limit", 0, "Maximum issues to show (0 = all)")
	flags.StringSliceVar(&f.columns, "columns", nil, "Columns to show in table and md output")
	flags.StringVar(&f.format, "format", "table", "Output format: table, md, json, or yaml")
	flags.StringVar(&f.out, "out", "", "Output file path (default: stdout)")
	flags.StringVar(&f.failOn, "fail-on", "", "Exit 2 if any matching issue is at least this tier")
	flags.BoolVar(&f.redactEnabled, "redact", true, "Mask secrets in issue text")

	return cmd
}

func runView(ctx context.Context, path string, f *viewFlags, stdout io.Writer) error {
	logger := ctxlog.From(ctx)

	// 1. Load dataset
	var (
		ds  *dataset.Dataset
		err error
	)
	switch {
	case path != "" && f.builtin != "":
		return exitError(3, "pass either a dataset file or --builtin, not both")
	case path != "":
		logger.Debug("loading dataset", "path", path)
		ds, err = dataset.Load(path)
	case f.builtin != "":
		logger.Debug("loading builtin dataset", "name", f.builtin)
		ds, err = dataset.LoadBuiltin(f.builtin)
	default:
		return exitError(3, "no dataset: pass a file or --builtin")
	}
	if err != nil {
		return exitError(3, "failed to load dataset: %v", err)
	}
	logger.Debug("dataset loaded", "name", ds.Name, "records", len(ds.Records), "hash", ds.Hash)

	// 2. Validate
	if errs := dataset.Validate(ds); len(errs) > 0 {
		fmt.Fprintln(os.Stderr, "Dataset validation errors:")
		for _, e := range errs {
			fmt.Fprintf(os.Stderr, "  %s\n", e)
		}
		return exitError(5, "dataset %s failed validation", ds.Source)
	}

	// 3. Redact
	records := ds.Records
	if f.redactEnabled {
		records = redact.Records(records)
	}

	// 4. Build query
	if !validFormat(f.format) {
		return exitError(3, "unknown format: %s", f.format)
	}
	q, err := buildQuery(f)
	if err != nil {
		return exitError(3, "%v", err)
	}

	var failOn tier.Tier
	if f.failOn != "" {
		if failOn, err = tier.ParseTier(f.failOn); err != nil {
			return exitError(3, "invalid --fail-on: %v", err)
		}
	}

	// 5. Apply
	res, err := view.Apply(records, q)
	if err != nil {
		if !goerr.HasTag(err, view.ErrTagSchemaMismatch) {
			return exitError(3, "%v", err)
		}
		logger.Warn("cannot sort, showing source order", "error", err)
	}
	logger.Debug("view applied",
		"matched", res.Summary.Total,
		"shown", len(res.Records),
		"hidden", res.Hidden)

	rep := &render.Report{
		Dashboard: ds.Name,
		Title:     ds.Title,
		Source:    ds.Source,
		Hash:      ds.Hash,
		Columns:   f.columns,
		Result:    res,
	}

	// 6. Output
	w := stdout
	if f.out != "" {
		file, err := os.Create(f.out)
		if err != nil {
			return goerr.Wrap(err, "failed to create output", goerr.V("path", f.out))
		}
		defer file.Close()
		w = file
		logger.Debug("writing output", "path", f.out)
	}
	if err := writeReport(w, rep, f.format); err != nil {
		return err
	}

	// 7. Exit code based on --fail-on, judged on the displayed rows
	if failOn != "" && meetsFailOn(res.Records, failOn) {
		return exitError(2, "%s has issues at or above %s", ds.Name, failOn)
	}
	return nil
}

func buildQuery(f *viewFlags) (view.Query, error) {
	q := view.Query{
		Search:       f.search,
		SearchFields: f.searchFields,
		SortField:    f.sortField,
		Limit:        f.limit,
	}

	for _, raw := range f.filters {
		c, err := view.ParseConstraint(raw)
		if err != nil {
			return q, err
		}
		q.Constraints = append(q.Constraints, c)
	}

	for _, raw := range f.tiers {
		t, err := tier.ParseTier(raw)
		if err != nil {
			return q, err
		}
		q.Tiers = append(q.Tiers, t)
	}

	if f.minTier != "" {
		t, err := tier.ParseTier(f.minTier)
		if err != nil {
			return q, err
		}
		q.MinTier = t
	}

	dir, err := view.ParseDirection(f.order)
	if err != nil {
		return q, err
	}
	if f.desc {
		dir = view.Desc
	}
	q.Direction = dir

	locale, err := language.Parse(f.locale)
	if err != nil {
		return q, goerr.Wrap(err, "invalid locale", goerr.V("locale", f.locale))
	}
	q.Locale = locale

	return q, nil
}

func validFormat(format string) bool {
	switch strings.ToLower(format) {
	case "table", "md", "markdown", "json", "yaml":
		return true
	}
	return false
}

func writeReport(w io.Writer, rep *render.Report, format string) error {
	switch strings.ToLower(format) {
	case "table":
		return render.Table(w, rep)
	case "md", "markdown":
		_, err := io.WriteString(w, render.Markdown(rep))
		return err
	case "json":
		data, err := json.MarshalIndent(rep, "", "  ")
		if err != nil {
			return goerr.Wrap(err, "failed to marshal output", goerr.V("format", format))
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rep); err != nil {
			return goerr.Wrap(err, "failed to marshal output", goerr.V("format", format))
		}
		return enc.Close()
	default:
		return exitError(3, "unknown format: %s", format)
	}
}

func meetsFailOn(records []record.Record, failOn tier.Tier) bool {
	for _, r := range records {
		if view.TierOf(r).AtLeast(failOn) {
			return true
		}
	}
	return false
}
