// Package records defines the two record collections served by the
// alphabetter API: prop lines and per-game team statistics.
package records

// Record is one row of either collection.
type Record interface {
	// Key identifies the row for rendering. It is not unique.
	Key() string
	// Field returns the value stored under the wire name, or a null Scalar.
	Field(name string) Scalar
}

// PropRecord is a single betting proposition as returned by GET /api/props.
type PropRecord struct {
	ID         Scalar `json:"id"`
	PlayerName Scalar `json:"player_name"`
	PlayerID   Scalar `json:"player_id"`
	Stat       Scalar `json:"stat"`
	Target     Scalar `json:"target"`
	OverUnder  Scalar `json:"over_under"`
	OddsType   Scalar `json:"odds_type"`
}

func (p PropRecord) Key() string { return p.ID.String() }

func (p PropRecord) Field(name string) Scalar {
	switch name {
	case "id":
		return p.ID
	case "player_name":
		return p.PlayerName
	case "player_id":
		return p.PlayerID
	case "stat":
		return p.Stat
	case "target":
		return p.Target
	case "over_under":
		return p.OverUnder
	case "odds_type":
		return p.OddsType
	}
	return Scalar{}
}

// TeamStatRecord is one team's line for one game as returned by GET /api/teams.
type TeamStatRecord struct {
	TeamID   Scalar `json:"team_id"`
	GameID   Scalar `json:"game_id"`
	GameDate Scalar `json:"game_date"`
	Matchup  Scalar `json:"matchup"`
	WL       Scalar `json:"wl"`
	W        Scalar `json:"w"`
	L        Scalar `json:"l"`
	WPct     Scalar `json:"w_pct"`
	Min      Scalar `json:"min"`
	FGM      Scalar `json:"fgm"`
	FGA      Scalar `json:"fga"`
	FGPct    Scalar `json:"fg_pct"`
	FG3M     Scalar `json:"fg3m"`
	FG3A     Scalar `json:"fg3a"`
	FG3Pct   Scalar `json:"fg3_pct"`
	FTM      Scalar `json:"ftm"`
	FTA      Scalar `json:"fta"`
	FTPct    Scalar `json:"ft_pct"`
	OReb     Scalar `json:"oreb"`
	DReb     Scalar `json:"dreb"`
	Reb      Scalar `json:"reb"`
	Ast      Scalar `json:"ast"`
	Stl      Scalar `json:"stl"`
	Blk      Scalar `json:"blk"`
	Tov      Scalar `json:"tov"`
	PF       Scalar `json:"pf"`
	Pts      Scalar `json:"pts"`
}

func (t TeamStatRecord) Key() string { return t.TeamID.String() }

func (t TeamStatRecord) Field(name string) Scalar {
	switch name {
	case "team_id":
		return t.TeamID
	case "game_id":
		return t.GameID
	case "game_date":
		return t.GameDate
	case "matchup":
		return t.Matchup
	case "wl":
		return t.WL
	case "w":
		return t.W
	case "l":
		return t.L
	case "w_pct":
		return t.WPct
	case "min":
		return t.Min
	case "fgm":
		return t.FGM
	case "fga":
		return t.FGA
	case "fg_pct":
		return t.FGPct
	case "fg3m":
		return t.FG3M
	case "fg3a":
		return t.FG3A
	case "fg3_pct":
		return t.FG3Pct
	case "ftm":
		return t.FTM
	case "fta":
		return t.FTA
	case "ft_pct":
		return t.FTPct
	case "oreb":
		return t.OReb
	case "dreb":
		return t.DReb
	case "reb":
		return t.Reb
	case "ast":
		return t.Ast
	case "stl":
		return t.Stl
	case "blk":
		return t.Blk
	case "tov":
		return t.Tov
	case "pf":
		return t.PF
	case "pts":
		return t.Pts
	}
	return Scalar{}
}
