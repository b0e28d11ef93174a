package swapi

import "fmt"

// FetchError describes a failed catalog request: a transport failure, a
// non-success status, or an undecodable body. It is fatal to the crawl
// that issued it.
type FetchError struct {
	URL    string
	Status string // e.g. "500 Internal Server Error", empty on transport failure
	Err    error
}

// Error implements the error interface.
func (e *FetchError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("fetch %s: %s", e.URL, e.Status)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

// Unwrap returns the underlying transport or decode error, if any.
func (e *FetchError) Unwrap() error {
	return e.Err
}
