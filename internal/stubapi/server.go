// Package stubapi serves the two collection endpoints from a fixture file,
// matching the wire shape of the real alphabetter API.
package stubapi

import (
	"fmt"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/goccy/go-json"

	"alphabetter/internal/records"
)

// Fixture is the full data set served by the stub.
type Fixture struct {
	Props []records.PropRecord     `json:"props"`
	Teams []records.TeamStatRecord `json:"teams"`
}

// LoadFixture reads a fixture file shaped like {"props": [...], "teams": [...]}.
func LoadFixture(path string) (*Fixture, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}
	var fx Fixture
	if err := json.Unmarshal(b, &fx); err != nil {
		return nil, fmt.Errorf("decode fixture: %w", err)
	}
	if fx.Props == nil {
		fx.Props = []records.PropRecord{}
	}
	if fx.Teams == nil {
		fx.Teams = []records.TeamStatRecord{}
	}
	return &fx, nil
}

// NewRouter builds the stub's routes. CORS is open to every origin, as on
// the real API.
func NewRouter(fx *Fixture) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]string{"status": "ok"})
	})
	r.Route("/api", func(r chi.Router) {
		r.Get("/props", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, map[string]any{"props": fx.Props})
		})
		r.Get("/teams", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, map[string]any{"teams": fx.Teams})
		})
	})

	return r
}

func writeJSON(w http.ResponseWriter, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(b)
}
