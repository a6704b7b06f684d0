package render

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dshills/sitewatch/internal/tier"
	"github.com/dshills/sitewatch/internal/view"
)

var (
	colorCritical  = lipgloss.Color("#e53935")
	colorWarning   = lipgloss.Color("#FFC107")
	colorGood      = lipgloss.Color("#2196F3")
	colorExcellent = lipgloss.Color("#8BC34A")
	colorBorder    = lipgloss.Color("#2a3850")
)

func tierColor(t tier.Tier) lipgloss.Color {
	switch t {
	case tier.Critical:
		return colorCritical
	case tier.Warning:
		return colorWarning
	case tier.Good:
		return colorGood
	default:
		return colorExcellent
	}
}

// Table writes the report as a bordered terminal table with a colored tier
// column. Colors are dropped when w is not a terminal.
func Table(w io.Writer, r *Report) error {
	re := lipgloss.NewRenderer(w)
	cols := columns(r)
	headers := append([]string{"tier"}, cols...)

	tiers := make([]tier.Tier, len(r.Records))
	rows := make([][]string, len(r.Records))
	for i, rec := range r.Records {
		tiers[i] = view.TierOf(rec)
		row := []string{string(tiers[i])}
		for _, c := range cols {
			row = append(row, rec[c].Text())
		}
		rows[i] = row
	}

	base := re.NewStyle().Padding(0, 1)
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(re.NewStyle().Foreground(colorBorder)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return base.Bold(true)
			case col == 0 && row >= 0 && row < len(tiers):
				return base.Foreground(tierColor(tiers[row])).Bold(true)
			default:
				return base
			}
		})

	title := r.Title
	if title == "" {
		title = r.Dashboard
	}
	header := re.NewStyle().Bold(true).Render(title)
	badge := re.NewStyle().Foreground(tierColor(r.Summary.Tier)).Render(
		fmt.Sprintf("%s %d/100", r.Summary.Tier, r.Summary.Score))

	if _, err := fmt.Fprintf(w, "%s  %s\n", header, badge); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%d critical, %d warnings, %d good, %d excellent\n",
		r.Summary.Critical, r.Summary.Warning, r.Summary.Good, r.Summary.Excellent); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, t.String()); err != nil {
		return err
	}
	if r.Hidden > 0 {
		if _, err := fmt.Fprintf(w, "%d more not shown\n", r.Hidden); err != nil {
			return err
		}
	}
	return nil
}
