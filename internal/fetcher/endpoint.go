package fetcher

import (
	"context"

	"alphabetter/internal/records"
)

// Fetcher produces one collection per call.
type Fetcher[R records.Record] interface {
	Fetch(ctx context.Context) ([]R, error)
}

// Result is the outcome of a single fetch, tagged with the generation of the
// view activation that issued it. Exactly one of Records or Err is meaningful.
type Result[R records.Record] struct {
	Generation uint64
	Records    []R
	Err        error
}

func (r Result[R]) OK() bool { return r.Err == nil }

// Endpoint is a fixed API path whose response wraps the records in a named
// array field.
type Endpoint[R records.Record] struct {
	client *Client
	path   string
	field  string
}

func NewEndpoint[R records.Record](c *Client, path, field string) *Endpoint[R] {
	return &Endpoint[R]{client: c, path: path, field: field}
}

// PropsEndpoint serves GET /api/props → {"props": [...]}.
func PropsEndpoint(c *Client) *Endpoint[records.PropRecord] {
	return NewEndpoint[records.PropRecord](c, "/api/props", "props")
}

// TeamsEndpoint serves GET /api/teams → {"teams": [...]}.
func TeamsEndpoint(c *Client) *Endpoint[records.TeamStatRecord] {
	return NewEndpoint[records.TeamStatRecord](c, "/api/teams", "teams")
}

func (e *Endpoint[R]) Fetch(ctx context.Context) ([]R, error) {
	var recs []R
	if err := e.client.Get(ctx, e.path, e.field, &recs); err != nil {
		return nil, err
	}
	if recs == nil {
		recs = []R{}
	}
	return recs, nil
}

// Run executes f once and wraps the outcome for generation gen.
func Run[R records.Record](ctx context.Context, f Fetcher[R], gen uint64) Result[R] {
	recs, err := f.Fetch(ctx)
	if err != nil {
		return Result[R]{Generation: gen, Err: err}
	}
	return Result[R]{Generation: gen, Records: recs}
}
