package fetcher

import "fmt"

// FetchError is the only failure a fetch reports. Transport errors, non-2xx
// statuses and undecodable bodies all surface as a *FetchError.
type FetchError struct {
	Endpoint  string
	RequestID string
	Status    int // 0 when no response was received
	Err       error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetch %s: status %d: %v", e.Endpoint, e.Status, e.Err)
	}
	return fmt.Sprintf("fetch %s: %v", e.Endpoint, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }
