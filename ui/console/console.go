// Package console prints both collections once as plain tables, for use
// outside the interactive TUI.
package console

import (
	"context"
	"fmt"
	"io"

	"alphabetter/internal/fetcher"
	"alphabetter/internal/logger"
	"alphabetter/internal/output"
	"alphabetter/internal/records"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#f27b24"))
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// Print renders a grid under a title. An empty grid prints its header only.
func Print(w io.Writer, title string, grid output.Grid) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(grid.Header...).
		Rows(grid.Body()...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	fmt.Fprintln(w, titleStyle.Render(title))
	fmt.Fprintln(w, t.Render())
	fmt.Fprintln(w)
}

// Run fetches both collections once and prints them. A failed fetch leaves
// that table header-only; the cause goes to the log, not to w.
func Run(ctx context.Context, w io.Writer, props fetcher.Fetcher[records.PropRecord], teams fetcher.Fetcher[records.TeamStatRecord]) {
	printOne(ctx, w, "PrizePicks Props", output.PropSchema, props)
	printOne(ctx, w, "Team Info", output.TeamStatSchema, teams)
}

func printOne[R records.Record](ctx context.Context, w io.Writer, title string, schema output.Schema, f fetcher.Fetcher[R]) {
	recs, err := f.Fetch(ctx)
	if err != nil {
		logger.Debug("console: %s printed header-only: %v", title, err)
		recs = nil
	}
	Print(w, title, output.BuildGrid(schema, recs))
}
