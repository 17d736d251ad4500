package views

import (
	"fmt"
	"math"

	"alphabetter/ui/tui/state"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

type MenuView struct{}

// MenuZoneID is the bubblezone id of the i-th menu entry.
func MenuZoneID(i int) string {
	return fmt.Sprintf("menu_%d", i)
}

func (v MenuView) Render(s state.AppState, props ViewProps) string {
	header := MenuHeaderStyle.Width(props.Width).Render("ALPHABETTER // NBA PROPS & TEAM STATS")

	var menuItems []string
	listStartY := 6

	for i, page := range state.Routes {
		dist := math.Abs(float64(i) - props.AnimCursor)
		selectionStrength := 0.0
		if dist < 1.0 {
			selectionStrength = 1.0 - dist
		}

		itemCenterY := listStartY + (i * 3) + 1
		mouseDistY := math.Abs(float64(props.MouseY - itemCenterY))

		borderColor := BaseColor
		if mouseDistY < 10 && 1.0-(mouseDistY/10.0) > 0.5 {
			borderColor = lipgloss.Color("#aaa")
		}
		if selectionStrength > 0.1 || i == props.MenuCursor {
			borderColor = BrandColor
		}

		popOut := int(selectionStrength * 2)

		boxStyle := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor).
			Padding(0, 1).
			MarginLeft(2 + popOut).
			Width(40)

		if i == props.MenuCursor {
			boxStyle = boxStyle.Bold(true).Foreground(lipgloss.Color("#FFF"))
		} else {
			boxStyle = boxStyle.Foreground(lipgloss.Color("#AAA"))
		}

		text := fmt.Sprintf("%02d. %-12s %s", i+1, page.Title(), page.Path())
		menuItems = append(menuItems, zone.Mark(MenuZoneID(i), boxStyle.Render(text)))
	}

	menuContent := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Bold(true).PaddingLeft(2).Foreground(BrandColor).Render("VIEWS"),
		CopyStyle.Render("Each view fetches its collection when opened."),
		lipgloss.JoinVertical(lipgloss.Left, menuItems...),
	)

	footer := lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("#555")).
		Render("\n[↑/↓] Navigate • [Enter] Select • [Q] Quit")

	body := lipgloss.JoinVertical(lipgloss.Left, MenuBoxStyle.Render(menuContent), footer)

	return zone.Scan(lipgloss.JoinVertical(lipgloss.Left, header, body))
}

var (
	BrandColor = lipgloss.Color("#f27b24")
	BaseColor  = lipgloss.Color("#444")

	MenuHeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(BrandColor).
			Align(lipgloss.Left).
			Padding(1, 2)

	MenuBoxStyle = lipgloss.NewStyle().
			Padding(1, 0).
			MarginTop(1)

	CopyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888")).
			Italic(true).
			MarginBottom(1).
			PaddingLeft(2)
)
