package views

import (
	"alphabetter/internal/fetcher"
	"alphabetter/internal/output"
	"alphabetter/internal/records"
	"alphabetter/ui/tui/state"
)

type PropsView = TableView[records.PropRecord]

// NewPropsView mounts the /props route.
func NewPropsView(id int, f fetcher.Fetcher[records.PropRecord]) *PropsView {
	return NewTableView(id, state.PageProps, "PrizePicks Props", output.PropSchema, f)
}
