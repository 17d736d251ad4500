package components

import (
	"alphabetter/ui/tui/styles"

	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/NimbleMarkets/ntcharts/linechart"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var _ Component = (*PointsChart)(nil)

// PointsChart plots a series of per-game point totals in arrival order.
type PointsChart struct {
	Chart  linechart.Model
	Points []float64
	Title  string
	Width  int
	Height int
}

func NewPointsChart(title string, width, height int) *PointsChart {
	return &PointsChart{
		Chart:  linechart.New(width, height, 0, 1, 0, 1),
		Title:  title,
		Width:  width,
		Height: height,
	}
}

func (c *PointsChart) Init() tea.Cmd {
	return nil
}

func (c *PointsChart) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return c, nil
}

// Set replaces the plotted series.
func (c *PointsChart) Set(points []float64) {
	c.Points = append(c.Points[:0], points...)
	c.rebuild()
}

func (c *PointsChart) Resize(w, h int) {
	c.Width = w
	c.Height = h
	c.rebuild()
}

// Plottable reports whether there are enough points to draw a line.
func (c *PointsChart) Plottable() bool {
	return len(c.Points) >= 2
}

func (c *PointsChart) rebuild() {
	maxY := 1.0
	for _, p := range c.Points {
		if p > maxY {
			maxY = p
		}
	}
	maxX := float64(len(c.Points) - 1)
	if maxX < 1 {
		maxX = 1
	}
	// width, height, minX, maxX, minY, maxY
	c.Chart = linechart.New(c.Width, c.Height, 0, maxX, 0, maxY)
}

func (c *PointsChart) View() string {
	if !c.Plottable() {
		return ""
	}
	c.Chart.Clear()
	for i := 0; i < len(c.Points)-1; i++ {
		c.Chart.DrawBrailleLine(
			canvas.Float64Point{X: float64(i), Y: c.Points[i]},
			canvas.Float64Point{X: float64(i + 1), Y: c.Points[i+1]},
		)
	}
	c.Chart.DrawXYAxisAndLabel()

	return styles.CardStyle.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.NewStyle().Bold(true).Render(c.Title),
			c.Chart.View(),
		),
	)
}
