package main

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/dshills/sitewatch/internal/tier"
	"github.com/m-mizutani/ctxlog"
	"github.com/spf13/cobra"
)

func newClassifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify <score|severity>...",
		Short: "Print the tier for each score (0-100) or severity label",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runClassify(cmd.Context(), args, cmd.OutOrStdout())
			return nil
		},
	}
}

// runClassify never fails: unclassifiable input prints the fallback tier and
// is logged as a warning.
func runClassify(ctx context.Context, args []string, w io.Writer) {
	logger := ctxlog.From(ctx)
	for _, arg := range args {
		var (
			t   tier.Tier
			err error
		)
		if score, perr := strconv.ParseFloat(arg, 64); perr == nil {
			t, err = tier.ClassifyScore(score), tier.ValidateScore(score)
		} else {
			t, err = tier.ClassifySeverityLabel(arg)
		}
		if err != nil {
			logger.Warn("unclassifiable input, using fallback tier", "input", arg, "tier", t, "error", err)
		}
		fmt.Fprintf(w, "%s\t%s\n", arg, t)
	}
}
