package state

type Page int

const (
	PageMenu Page = iota
	PageProps
	PageTeamInfo
)

// Routes lists the navigable pages in menu order.
var Routes = []Page{PageProps, PageTeamInfo}

// Path returns the navigation path mounted on the page.
func (p Page) Path() string {
	switch p {
	case PageProps:
		return "/props"
	case PageTeamInfo:
		return "/team-info"
	}
	return "/"
}

func (p Page) Title() string {
	switch p {
	case PageProps:
		return "Props"
	case PageTeamInfo:
		return "Team Info"
	}
	return "Menu"
}

// PageForPath resolves a navigation path. Unknown paths resolve to the menu.
func PageForPath(path string) (Page, bool) {
	for _, p := range Routes {
		if p.Path() == path {
			return p, true
		}
	}
	return PageMenu, path == "" || path == "/"
}

// AppState holds what the shell knows about navigation.
type AppState struct {
	CurrentPage Page
}
