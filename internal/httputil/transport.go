// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared across content fetchers.
package httputil

import (
	"bytes"
	"io"
	"net/http"
	"strconv"
	"sync"
	"time"
)

// RevalidateHeader carries the caller's response reuse window, in seconds.
// RevalidatingTransport strips it before the request goes out.
const RevalidateHeader = "X-Revalidate-Seconds"

// nowFunc returns the current time. Tests override this to cross
// revalidation windows without sleeping.
var nowFunc = time.Now

// RevalidatingTransport is a RoundTripper that reuses a successful GET
// response for the window the request names via RevalidateHeader. It is the
// transport-side counterpart of the tab cache: callers without a cache
// store still avoid refetching every tab on every page build.
//
// Reuse is per-URL with last write winning; two concurrent first requests
// for the same URL may both hit the network, which is acceptable here.
type RevalidatingTransport struct {
	// Base performs real requests. nil means http.DefaultTransport.
	Base http.RoundTripper

	mu      sync.Mutex
	entries map[string]*storedResponse
}

type storedResponse struct {
	at     time.Time
	status string
	code   int
	header http.Header
	body   []byte
}

// RoundTrip implements http.RoundTripper.
func (t *RevalidatingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	window := reuseWindow(req)
	req.Header.Del(RevalidateHeader)

	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}

	if req.Method != http.MethodGet || window <= 0 {
		return base.RoundTrip(req)
	}

	key := req.URL.String()

	t.mu.Lock()
	entry := t.entries[key]
	t.mu.Unlock()
	if entry != nil && nowFunc().Sub(entry.at) <= window {
		return entry.response(req), nil
	}

	resp, err := base.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	// Only OK responses are worth reusing; errors must surface every time.
	if resp.StatusCode != http.StatusOK {
		return resp, nil
	}

	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return nil, err
	}

	stored := &storedResponse{
		at:     nowFunc(),
		status: resp.Status,
		code:   resp.StatusCode,
		header: resp.Header.Clone(),
		body:   body,
	}

	t.mu.Lock()
	if t.entries == nil {
		t.entries = make(map[string]*storedResponse)
	}
	t.entries[key] = stored
	t.mu.Unlock()

	return stored.response(req), nil
}

func (s *storedResponse) response(req *http.Request) *http.Response {
	return &http.Response{
		Status:        s.status,
		StatusCode:    s.code,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        s.header.Clone(),
		Body:          io.NopCloser(bytes.NewReader(s.body)),
		ContentLength: int64(len(s.body)),
		Request:       req,
	}
}

func reuseWindow(req *http.Request) time.Duration {
	raw := req.Header.Get(RevalidateHeader)
	if raw == "" {
		return 0
	}
	seconds, err := strconv.Atoi(raw)
	if err != nil || seconds <= 0 {
		return 0
	}
	return time.Duration(seconds) * time.Second
}
