package stubapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"alphabetter/internal/fetcher"
	"alphabetter/internal/output"
)

const fixture = `{
  "props": [
    {"id": 1, "player_name": "A", "player_id": 10, "stat": "PTS", "target": 20.5, "over_under": "Over", "odds_type": "standard"},
    {"id": 1, "player_name": "A", "player_id": 10, "stat": "PTS", "target": 21.5, "over_under": "Under", "odds_type": "demon"}
  ],
  "teams": []
}`

func writeFixture(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.json")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestStubServesFixtureRoundTrip(t *testing.T) {
	fx, err := LoadFixture(writeFixture(t, fixture))
	if err != nil {
		t.Fatalf("LoadFixture: %v", err)
	}
	srv := httptest.NewServer(NewRouter(fx))
	defer srv.Close()

	c := fetcher.New(fetcher.DefaultConfig().WithBaseURL(srv.URL))

	props, err := fetcher.PropsEndpoint(c).Fetch(context.Background())
	if err != nil {
		t.Fatalf("props: %v", err)
	}
	g := output.BuildGrid(output.PropSchema, props)
	if len(g.Rows) != 2 {
		t.Fatalf("expected 2 rows (duplicates kept), got %d", len(g.Rows))
	}
	if g.Rows[0].Cells[4] != "20.5" || g.Rows[1].Cells[6] != "demon" {
		t.Errorf("unexpected rows %v", g.Rows)
	}

	teams, err := fetcher.TeamsEndpoint(c).Fetch(context.Background())
	if err != nil {
		t.Fatalf("teams: %v", err)
	}
	if len(teams) != 0 {
		t.Errorf("expected no teams, got %d", len(teams))
	}
}

func TestStubCORSAndHealth(t *testing.T) {
	srv := httptest.NewServer(NewRouter(&Fixture{}))
	defer srv.Close()

	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/health", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d", resp.StatusCode)
	}
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q", got)
	}
}

func TestLoadFixtureErrors(t *testing.T) {
	if _, err := LoadFixture(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
	if _, err := LoadFixture(writeFixture(t, `{"props": [{"id": [1]}]}`)); err == nil {
		t.Error("expected error for non-scalar field")
	}
}
