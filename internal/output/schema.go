package output

// Column layouts per collection. Titles are rendered verbatim.
var (
	PropSchema = Schema{
		KeyField: "id",
		Columns: []Column{
			{"ID", "id"},
			{"Player Name", "player_name"},
			{"Player ID", "player_id"},
			{"Stat", "stat"},
			{"Target", "target"},
			{"Over/Under", "over_under"},
			{"Odds Type", "odds_type"},
		},
	}

	TeamStatSchema = Schema{
		KeyField: "team_id",
		Columns: []Column{
			{"Team ID", "team_id"},
			{"Game ID", "game_id"},
			{"Game Date", "game_date"},
			{"Matchup", "matchup"},
			{"WL", "wl"},
			{"W", "w"},
			{"L", "l"},
			{"W PCT", "w_pct"},
			{"MIN", "min"},
			{"FGM", "fgm"},
			{"FGA", "fga"},
			{"FG PCT", "fg_pct"},
			{"FG3M", "fg3m"},
			{"FG3A", "fg3a"},
			{"FG3 PCT", "fg3_pct"},
			{"FTM", "ftm"},
			{"FTA", "fta"},
			{"FT PCT", "ft_pct"},
			{"OREB", "oreb"},
			{"DREB", "dreb"},
			{"REB", "reb"},
			{"AST", "ast"},
			{"STL", "stl"},
			{"BLK", "blk"},
			{"TOV", "tov"},
			{"PF", "pf"},
			{"PTS", "pts"},
		},
	}
)
