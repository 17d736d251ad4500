package views

import (
	"alphabetter/ui/tui/state"
	"alphabetter/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

func RenderMenu(width, height, cursor int, animCursor float64, mouseX, mouseY int) string {
	v := MenuView{}
	return v.Render(state.AppState{}, ViewProps{
		Width:      width,
		Height:     height,
		MenuCursor: cursor,
		AnimCursor: animCursor,
		MouseX:     mouseX,
		MouseY:     mouseY,
	})
}

// TabZoneID is the bubblezone id of the tab for page.
func TabZoneID(page state.Page) string {
	return "tab_" + page.Path()
}

// RenderTabs draws one clickable tab per route with active highlighted.
func RenderTabs(active state.Page) string {
	var tabs []string
	for _, p := range state.Routes {
		style := styles.TabStyle
		if p == active {
			style = styles.ActiveTabStyle
		}
		tabs = append(tabs, zone.Mark(TabZoneID(p), style.Render(p.Title())))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}
