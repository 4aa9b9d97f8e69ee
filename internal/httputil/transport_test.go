// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httputil

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fetch(t *testing.T, client *http.Client, url string, revalidateSeconds string) (*http.Response, string) {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, url, nil)
	require.NoError(t, err)
	if revalidateSeconds != "" {
		req.Header.Set(RevalidateHeader, revalidateSeconds)
	}
	resp, err := client.Do(req)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	return resp, string(body)
}

func TestRevalidatingTransportReusesWithinWindow(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		assert.Empty(t, r.Header.Get(RevalidateHeader), "hint header must not leak upstream")
		io.WriteString(w, "payload")
	}))
	defer ts.Close()

	client := &http.Client{Transport: &RevalidatingTransport{}}

	for i := 0; i < 3; i++ {
		resp, body := fetch(t, client, ts.URL, "300")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "payload", body)
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestRevalidatingTransportExpiry(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&calls, 1)
		io.WriteString(w, "payload")
	}))
	defer ts.Close()

	now := time.Now()
	nowFunc = func() time.Time { return now }
	defer func() { nowFunc = time.Now }()

	client := &http.Client{Transport: &RevalidatingTransport{}}

	fetch(t, client, ts.URL, "300")
	fetch(t, client, ts.URL, "300")
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))

	now = now.Add(301 * time.Second)
	fetch(t, client, ts.URL, "300")
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestRevalidatingTransportNoHintNoReuse(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&calls, 1)
		io.WriteString(w, "payload")
	}))
	defer ts.Close()

	client := &http.Client{Transport: &RevalidatingTransport{}}

	fetch(t, client, ts.URL, "")
	fetch(t, client, ts.URL, "")
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestRevalidatingTransportDistinctURLs(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		io.WriteString(w, r.URL.Query().Get("sheet"))
	}))
	defer ts.Close()

	client := &http.Client{Transport: &RevalidatingTransport{}}

	_, body := fetch(t, client, ts.URL+"?sheet=members", "300")
	assert.Equal(t, "members", body)
	_, body = fetch(t, client, ts.URL+"?sheet=news", "300")
	assert.Equal(t, "news", body)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))

	_, body = fetch(t, client, ts.URL+"?sheet=members", "300")
	assert.Equal(t, "members", body)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestRevalidatingTransportErrorsNotStored(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		n := atomic.AddInt32(&calls, 1)
		if n == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		io.WriteString(w, "recovered")
	}))
	defer ts.Close()

	client := &http.Client{Transport: &RevalidatingTransport{}}

	resp, _ := fetch(t, client, ts.URL, "300")
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	resp, body := fetch(t, client, ts.URL, "300")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "recovered", body)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestReuseWindowParsing(t *testing.T) {
	tests := []struct {
		raw  string
		want time.Duration
	}{
		{"", 0},
		{"0", 0},
		{"-5", 0},
		{"junk", 0},
		{"300", 300 * time.Second},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "http://example.com/", nil)
		if tt.raw != "" {
			req.Header.Set(RevalidateHeader, tt.raw)
		}
		assert.Equal(t, tt.want, reuseWindow(req), "raw=%q", tt.raw)
	}
}
