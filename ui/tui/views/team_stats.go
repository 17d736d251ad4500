package views

import (
	"alphabetter/internal/fetcher"
	"alphabetter/internal/output"
	"alphabetter/internal/records"
	"alphabetter/ui/tui/components"
	"alphabetter/ui/tui/state"
)

const chartHeight = 8

type TeamStatsView = TableView[records.TeamStatRecord]

// NewTeamStatsView mounts the /team-info route. Below the table it plots PTS
// per game in arrival order when the values are numeric.
func NewTeamStatsView(id int, f fetcher.Fetcher[records.TeamStatRecord]) *TeamStatsView {
	chart := components.NewPointsChart("PTS by game", 40, chartHeight)
	v := NewTableView(id, state.PageTeamInfo, "Team Info", output.TeamStatSchema, f)
	return v.WithPanel(chartHeight+4, func(recs []records.TeamStatRecord, width int) string {
		pts := PointsSeries(recs)
		if len(pts) < 2 {
			return ""
		}
		w := width - 8
		if w > 80 {
			w = 80
		}
		if w < 20 {
			w = 20
		}
		if w != chart.Width {
			chart.Resize(w, chartHeight)
		}
		chart.Set(pts)
		return chart.View()
	})
}

// PointsSeries extracts numeric PTS values in record order, skipping blanks.
func PointsSeries(recs []records.TeamStatRecord) []float64 {
	pts := make([]float64, 0, len(recs))
	for _, r := range recs {
		if f, ok := r.Pts.Float(); ok {
			pts = append(pts, f)
		}
	}
	return pts
}
