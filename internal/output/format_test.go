package output

import (
	"reflect"
	"testing"

	"github.com/goccy/go-json"

	"alphabetter/internal/records"
)

func prop(id any, name string) records.PropRecord {
	return records.PropRecord{
		ID:         records.S(id),
		PlayerName: records.S(name),
		PlayerID:   records.S(10),
		Stat:       records.S("PTS"),
		Target:     records.S(20.5),
		OverUnder:  records.S("Over"),
		OddsType:   records.S("standard"),
	}
}

func TestBuildGridSingleProp(t *testing.T) {
	g := BuildGrid(PropSchema, []records.PropRecord{prop(1, "A")})

	wantHeader := []string{"ID", "Player Name", "Player ID", "Stat", "Target", "Over/Under", "Odds Type"}
	if !reflect.DeepEqual(g.Header, wantHeader) {
		t.Errorf("Header = %v; want %v", g.Header, wantHeader)
	}
	if len(g.Rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(g.Rows))
	}
	wantCells := []string{"1", "A", "10", "PTS", "20.5", "Over", "standard"}
	if !reflect.DeepEqual(g.Rows[0].Cells, wantCells) {
		t.Errorf("Cells = %v; want %v", g.Rows[0].Cells, wantCells)
	}
	if g.Rows[0].Key != "1" {
		t.Errorf("Key = %q; want 1", g.Rows[0].Key)
	}
}

func TestBuildGridEmpty(t *testing.T) {
	for _, tc := range []struct {
		name   string
		schema Schema
		cols   int
	}{
		{"props", PropSchema, 7},
		{"teams", TeamStatSchema, 27},
	} {
		t.Run(tc.name, func(t *testing.T) {
			g := BuildGrid[records.TeamStatRecord](tc.schema, nil)
			if len(g.Header) != tc.cols {
				t.Errorf("expected %d header cells, got %d", tc.cols, len(g.Header))
			}
			if len(g.Rows) != 0 {
				t.Errorf("expected 0 rows, got %d", len(g.Rows))
			}
		})
	}
}

func TestBuildGridKeepsOrderAndDuplicates(t *testing.T) {
	in := []records.PropRecord{prop(3, "C"), prop(1, "A"), prop(3, "C2"), prop(2, "B")}
	g := BuildGrid(PropSchema, in)

	if len(g.Rows) != len(in) {
		t.Fatalf("expected %d rows, got %d", len(in), len(g.Rows))
	}
	wantNames := []string{"C", "A", "C2", "B"}
	for i, r := range g.Rows {
		if r.Cells[1] != wantNames[i] {
			t.Errorf("row %d name = %q; want %q", i, r.Cells[1], wantNames[i])
		}
	}
	if g.Rows[0].Key != g.Rows[2].Key {
		t.Error("duplicate keys should both be rendered with the same key")
	}
}

func TestBuildGridIsPure(t *testing.T) {
	in := []records.PropRecord{prop(1, "A"), prop(2, "B")}
	first := BuildGrid(PropSchema, in)
	second := BuildGrid(PropSchema, in)
	if !reflect.DeepEqual(first, second) {
		t.Error("rendering the same input twice should yield identical grids")
	}
}

func TestTeamStatSchemaHeaders(t *testing.T) {
	want := []string{
		"Team ID", "Game ID", "Game Date", "Matchup", "WL", "W", "L", "W PCT", "MIN",
		"FGM", "FGA", "FG PCT", "FG3M", "FG3A", "FG3 PCT", "FTM", "FTA", "FT PCT",
		"OREB", "DREB", "REB", "AST", "STL", "BLK", "TOV", "PF", "PTS",
	}
	g := BuildGrid[records.TeamStatRecord](TeamStatSchema, nil)
	if !reflect.DeepEqual(g.Header, want) {
		t.Errorf("Header = %v", g.Header)
	}
}

func TestTeamStatSchemaResolvesEveryField(t *testing.T) {
	obj := map[string]string{}
	for _, c := range TeamStatSchema.Columns {
		obj[c.Field] = c.Field
	}
	b, err := json.Marshal(obj)
	if err != nil {
		t.Fatal(err)
	}
	var r records.TeamStatRecord
	if err := json.Unmarshal(b, &r); err != nil {
		t.Fatal(err)
	}

	g := BuildGrid(TeamStatSchema, []records.TeamStatRecord{r})
	for i, c := range TeamStatSchema.Columns {
		if g.Rows[0].Cells[i] != c.Field {
			t.Errorf("column %d (%s) = %q", i, c.Title, g.Rows[0].Cells[i])
		}
	}
}

func TestGridWidths(t *testing.T) {
	g := BuildGrid(PropSchema, []records.PropRecord{prop(123456, "Giannis Antetokounmpo")})
	w := g.Widths()
	if w[0] != 6 {
		t.Errorf("ID width = %d; want 6", w[0])
	}
	if w[1] != len("Giannis Antetokounmpo") {
		t.Errorf("name width = %d", w[1])
	}
	if w[5] != len("Over/Under") {
		t.Errorf("over/under width = %d", w[5])
	}
}
