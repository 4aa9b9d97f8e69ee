// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sheets

import "fmt"

// FetchError reports a non-OK response from the spreadsheet endpoint. It is
// fatal to the enclosing aggregate call and is not retried.
type FetchError struct {
	Tab        string
	StatusCode int
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to fetch tab %q (HTTP %d)", e.Tab, e.StatusCode)
}

// ParseError reports a response that could not be unwrapped to JSON. Same
// propagation as FetchError.
type ParseError struct {
	Tab    string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unexpected response for tab %q: %s", e.Tab, e.Reason)
}
