package views

import (
	"context"
	"fmt"
	"time"

	"alphabetter/internal/fetcher"
	"alphabetter/internal/logger"
	"alphabetter/internal/output"
	"alphabetter/internal/records"
	"alphabetter/internal/viewstate"
	"alphabetter/ui/tui/state"
	"alphabetter/ui/tui/styles"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

// chrome is the number of lines around the table: tabs, title, status, help.
const chrome = 8

// FetchedMsg carries a finished fetch back to the view instance that issued it.
type FetchedMsg[R records.Record] struct {
	ViewID int
	Result fetcher.Result[R]
}

func fetchCmd[R records.Record](f fetcher.Fetcher[R], viewID int, gen uint64) tea.Cmd {
	return func() tea.Msg {
		return FetchedMsg[R]{
			ViewID: viewID,
			Result: fetcher.Run(context.Background(), f, gen),
		}
	}
}

// Panel renders extra content under the table from the current records.
type Panel[R records.Record] func(recs []R, width int) string

// TableView fetches one collection on activation and renders it as a table.
type TableView[R records.Record] struct {
	id      int
	page    state.Page
	title   string
	schema  output.Schema
	fetcher fetcher.Fetcher[R]
	state   *viewstate.State[R]
	table   table.Model
	spinner spinner.Model
	panel   Panel[R]

	colOffset   int
	width       int
	height      int
	panelHeight int
	lastUpdate  time.Time
}

func NewTableView[R records.Record](id int, page state.Page, title string, schema output.Schema, f fetcher.Fetcher[R]) *TableView[R] {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	t := table.New(table.WithFocused(true), table.WithHeight(10))
	ts := table.DefaultStyles()
	ts.Header = ts.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(styles.Highlight).
		BorderBottom(true).
		Bold(true)
	ts.Selected = ts.Selected.
		Foreground(lipgloss.Color("#FFF")).
		Background(BrandColor)
	t.SetStyles(ts)

	v := &TableView[R]{
		id:      id,
		page:    page,
		title:   title,
		schema:  schema,
		fetcher: f,
		state:   viewstate.New[R](),
		table:   t,
		spinner: s,
	}
	v.sync()
	return v
}

// WithPanel attaches a panel of the given height under the table.
func (v *TableView[R]) WithPanel(height int, p Panel[R]) *TableView[R] {
	v.panel = p
	v.panelHeight = height
	v.resizeTable()
	return v
}

func (v *TableView[R]) ID() int          { return v.id }
func (v *TableView[R]) Page() state.Page { return v.page }

// State exposes the view state for inspection.
func (v *TableView[R]) State() *viewstate.State[R] { return v.state }

// Grid is the pure projection of the current records.
func (v *TableView[R]) Grid() output.Grid {
	return output.BuildGrid(v.schema, v.state.Records())
}

func (v *TableView[R]) Activate() tea.Cmd {
	v.state.Reset()
	gen := v.state.Begin()
	v.colOffset = 0
	v.sync()
	return tea.Batch(v.spinner.Tick, fetchCmd(v.fetcher, v.id, gen))
}

func (v *TableView[R]) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case FetchedMsg[R]:
		if msg.ViewID != v.id {
			return nil
		}
		v.apply(msg.Result)
		return nil

	case spinner.TickMsg:
		if v.state.Phase() != viewstate.Loading {
			return nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "left", "h":
			if v.colOffset > 0 {
				v.colOffset--
				v.sync()
			}
			return nil
		case "right", "l":
			if v.colOffset < len(v.schema.Columns)-1 {
				v.colOffset++
				v.sync()
			}
			return nil
		}
		var cmd tea.Cmd
		v.table, cmd = v.table.Update(msg)
		return cmd
	}
	return nil
}

func (v *TableView[R]) apply(res fetcher.Result[R]) {
	gen := res.Generation
	if res.Err != nil {
		if !v.state.Fail(gen, res.Err) {
			logger.Debug("%s: dropped stale failure for generation %d", v.page.Path(), gen)
		}
		return
	}
	if !v.state.Replace(gen, res.Records) {
		logger.Debug("%s: dropped stale result for generation %d", v.page.Path(), gen)
		return
	}
	v.lastUpdate = time.Now()
	logger.Info("%s: loaded %d records", v.page.Path(), v.state.Len())
	v.sync()
}

// sync pushes the current grid into the table widget.
func (v *TableView[R]) sync() {
	grid := v.Grid()
	widths := grid.Widths()

	cols := make([]table.Column, 0, len(grid.Header)-v.colOffset)
	for i := v.colOffset; i < len(grid.Header); i++ {
		cols = append(cols, table.Column{Title: grid.Header[i], Width: widths[i]})
	}
	rows := make([]table.Row, len(grid.Rows))
	for i, r := range grid.Rows {
		rows[i] = table.Row(r.Cells[v.colOffset:])
	}

	// Rows must never be wider than the column set.
	v.table.SetRows(nil)
	v.table.SetColumns(cols)
	v.table.SetRows(rows)
}

func (v *TableView[R]) SetSize(width, height int) {
	v.width = width
	v.height = height
	v.resizeTable()
}

func (v *TableView[R]) resizeTable() {
	h := v.height - chrome
	if v.panel != nil && v.state.Phase() == viewstate.Populated {
		h -= v.panelHeight
	}
	if h < 3 {
		h = 3
	}
	v.table.SetHeight(h)
	if v.width > 4 {
		v.table.SetWidth(v.width - 4)
	}
}

func (v *TableView[R]) status() string {
	switch v.state.Phase() {
	case viewstate.Loading:
		return fmt.Sprintf("%s Fetching %s...", v.spinner.View(), v.title)
	case viewstate.Failed:
		return lipgloss.NewStyle().Foreground(styles.Warning).
			Render(fmt.Sprintf("Fetch failed, showing last known data (%d records). See log for details.", v.state.Len()))
	}
	return lipgloss.NewStyle().Foreground(styles.Special).
		Render(fmt.Sprintf("%d records • updated %s", v.state.Len(), v.lastUpdate.Format("15:04:05")))
}

func (v *TableView[R]) View() string {
	v.resizeTable()

	parts := []string{
		RenderTabs(v.page),
		styles.TitleStyle.Render(v.title),
		lipgloss.NewStyle().PaddingLeft(1).Render(v.status()),
		styles.CardStyle.Render(v.table.View()),
	}
	if v.panel != nil && v.state.Phase() == viewstate.Populated {
		if p := v.panel(v.state.Records(), v.width); p != "" {
			parts = append(parts, p)
		}
	}

	help := "[↑/↓] Rows • [←/→] Columns • [Tab] Switch view • [R] Reload • [B] Back • [Q] Quit"
	if v.colOffset > 0 {
		help = fmt.Sprintf("Columns %d-%d of %d • %s", v.colOffset+1, len(v.schema.Columns), len(v.schema.Columns), help)
	}
	parts = append(parts, lipgloss.NewStyle().PaddingLeft(1).Foreground(lipgloss.Color("#555")).Render(help))

	return zone.Scan(lipgloss.JoinVertical(lipgloss.Left, parts...))
}
