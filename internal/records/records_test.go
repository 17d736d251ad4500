package records

import (
	"testing"

	"github.com/goccy/go-json"
)

func TestScalarString(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{`"Over"`, "Over"},
		{`20.5`, "20.5"},
		{`1`, "1"},
		{`1e3`, "1000"},
		{`25.0`, "25"},
		{`0.0`, "0"},
		{`-0.0`, "0"},
		{`0.512`, "0.512"},
		{`-3.50`, "-3.5"},
		{`1e21`, "1e+21"},
		{`1.5e-7`, "1.5e-7"},
		{`false`, "false"},
		{`"25.0"`, "25.0"},
		{`true`, "true"},
		{`null`, ""},
		{`""`, ""},
		{`"0022300001"`, "0022300001"},
	}

	for _, tt := range tests {
		var s Scalar
		if err := json.Unmarshal([]byte(tt.raw), &s); err != nil {
			t.Fatalf("Unmarshal(%s): %v", tt.raw, err)
		}
		if got := s.String(); got != tt.want {
			t.Errorf("Scalar(%s).String() = %q; want %q", tt.raw, got, tt.want)
		}
	}
}

func TestScalarRejectsNested(t *testing.T) {
	for _, raw := range []string{`{"a":1}`, `[1,2]`} {
		var s Scalar
		if err := json.Unmarshal([]byte(raw), &s); err == nil {
			t.Errorf("expected error decoding %s into Scalar", raw)
		}
	}
}

func TestScalarFloat(t *testing.T) {
	if f, ok := S(20.5).Float(); !ok || f != 20.5 {
		t.Errorf("S(20.5).Float() = %v, %v", f, ok)
	}
	if f, ok := S("112").Float(); !ok || f != 112 {
		t.Errorf(`S("112").Float() = %v, %v`, f, ok)
	}
	if _, ok := S("W").Float(); ok {
		t.Error(`S("W").Float() should fail`)
	}
	if _, ok := (Scalar{}).Float(); ok {
		t.Error("null Scalar should not parse as a float")
	}
}

func TestPropRecordDecode(t *testing.T) {
	body := `{"id":1,"player_name":"A","player_id":10,"stat":"PTS","target":20.5,"over_under":"Over","odds_type":"standard"}`

	var p PropRecord
	if err := json.Unmarshal([]byte(body), &p); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if p.Key() != "1" {
		t.Errorf("Key() = %q; want 1", p.Key())
	}
	if got := p.Field("target").String(); got != "20.5" {
		t.Errorf("target = %q; want 20.5", got)
	}
	if !p.Field("unknown").IsNull() {
		t.Error("unknown field should be null")
	}
}

func TestTeamStatRecordDecode(t *testing.T) {
	body := `{"team_id":1610612747,"game_id":"0022300001","game_date":"2023-10-24","matchup":"LAL @ DEN","wl":"L","pts":107,"fg_pct":0.443}`

	var r TeamStatRecord
	if err := json.Unmarshal([]byte(body), &r); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if r.Key() != "1610612747" {
		t.Errorf("Key() = %q", r.Key())
	}
	if got := r.Field("fg_pct").String(); got != "0.443" {
		t.Errorf("fg_pct = %q; want 0.443", got)
	}
	if got := r.Field("matchup").String(); got != "LAL @ DEN" {
		t.Errorf("matchup = %q", got)
	}
	if !r.Field("reb").IsNull() {
		t.Error("missing reb should be null")
	}
}
