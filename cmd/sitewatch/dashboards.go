package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dshills/sitewatch/internal/dataset"
	"github.com/dshills/sitewatch/internal/view"
	"github.com/spf13/cobra"
)

func newDashboardsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboards",
		Short: "List builtin dashboard datasets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDashboards(cmd.OutOrStdout())
		},
	}
}

func runDashboards(w io.Writer) error {
	names, err := dataset.List()
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(names))
	for _, name := range names {
		ds, err := dataset.LoadBuiltin(name)
		if err != nil {
			return err
		}
		s := view.Summarize(ds.Records)
		health := fmt.Sprintf("%s (%d)", s.Tier, s.Score)
		rows = append(rows, []string{name, ds.Title, strconv.Itoa(s.Total), health})
	}

	re := lipgloss.NewRenderer(w)
	cell := re.NewStyle().PaddingRight(2)
	t := table.New().
		Border(lipgloss.HiddenBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		Headers("NAME", "TITLE", "ISSUES", "HEALTH").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return cell.Bold(true)
			}
			return cell
		})

	_, err = fmt.Fprintln(w, t.String())
	return err
}
