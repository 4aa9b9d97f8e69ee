// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package sheets fetches tabs from the GViz endpoint of a published
// spreadsheet document and normalizes them into uniform string rows.
//
// Every tab comes back as [headerRow, dataRows...] with every cell already
// stringified; RowsToObjects turns that into header-keyed records. Content
// editors own the spreadsheet, so everything downstream of the transport is
// tolerant: malformed cells degrade to empty strings instead of errors.
package sheets

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pdiddy/site-engine/internal/httputil"
	"github.com/pdiddy/site-engine/internal/tabcache"
)

// DefaultBaseURL is the spreadsheet host serving GViz queries.
const DefaultBaseURL = "https://docs.google.com/spreadsheets"

// Client reads tabs from one or more spreadsheet documents.
//
// When Cache is set and CacheTTL is positive, FetchRows consults the cache
// before the network and refreshes it afterwards. When Cache is nil the
// revalidation hint is forwarded to the transport layer instead, which may
// reuse a recent response (see httputil.RevalidatingTransport).
type Client struct {
	HTTP      *http.Client
	Cache     tabcache.Store
	CacheTTL  time.Duration
	UserAgent string

	// BaseURL overrides the spreadsheet host; tests point it at an
	// httptest server. Empty means DefaultBaseURL.
	BaseURL string
}

// FetchRows fetches the named tab and returns its rows. The first element
// is the header row; remaining elements are data rows. Absent cells are
// empty strings.
//
// A non-OK response yields a *FetchError; a response that cannot be
// unwrapped to JSON yields a *ParseError. Both are fatal to the caller's
// aggregate operation and are never retried here.
func (c *Client) FetchRows(ctx context.Context, documentID, tabName string, revalidateSeconds int) ([][]string, error) {
	cacheKey := documentID + ":" + tabName
	useCache := c.Cache != nil && c.CacheTTL > 0
	if useCache {
		if entry, ok := c.Cache.Get(ctx, cacheKey); ok && time.Since(entry.FetchedAt) <= c.CacheTTL {
			return entry.Rows, nil
		}
	}

	base := c.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	reqURL := fmt.Sprintf("%s/d/%s/gviz/tq?tqx=out:json&sheet=%s",
		base, url.PathEscape(documentID), url.QueryEscape(tabName))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request for tab %q: %w", tabName, err)
	}
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}
	if !useCache && revalidateSeconds > 0 {
		req.Header.Set(httputil.RevalidateHeader, strconv.Itoa(revalidateSeconds))
	}

	client := c.HTTP
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching tab %q: %w", tabName, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{Tab: tabName, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading tab %q: %w", tabName, err)
	}

	rows, err := decodeGViz(tabName, body)
	if err != nil {
		return nil, err
	}

	if useCache {
		c.Cache.Set(ctx, cacheKey, rows)
	}
	return rows, nil
}

// decodeGViz strips the function-call wrapper around the GViz JSON payload
// and flattens the table into string rows.
func decodeGViz(tabName string, body []byte) ([][]string, error) {
	text := string(body)
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return nil, &ParseError{Tab: tabName, Reason: "no JSON object in response"}
	}

	var payload gvizResponse
	if err := json.Unmarshal([]byte(text[start:end+1]), &payload); err != nil {
		return nil, &ParseError{Tab: tabName, Reason: err.Error()}
	}

	header := make([]string, len(payload.Table.Cols))
	for i, col := range payload.Table.Cols {
		header[i] = strings.TrimSpace(col.Label)
	}

	rows := make([][]string, 0, len(payload.Table.Rows)+1)
	rows = append(rows, header)
	for _, r := range payload.Table.Rows {
		cells := make([]string, len(r.C))
		for i, cell := range r.C {
			if cell == nil {
				continue
			}
			cells[i] = stringifyCell(cell.V)
		}
		rows = append(rows, cells)
	}
	return rows, nil
}

// stringifyCell coerces a GViz cell value to a string. Numbers render
// without trailing zeros ("3", not "3.000000"), matching how the sheet
// displays them.
func stringifyCell(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprint(t)
	}
}

// GViz wire structures.
type gvizResponse struct {
	Table gvizTable `json:"table"`
}

type gvizTable struct {
	Cols []gvizCol `json:"cols"`
	Rows []gvizRow `json:"rows"`
}

type gvizCol struct {
	Label string `json:"label"`
}

type gvizRow struct {
	C []*gvizCell `json:"c"`
}

type gvizCell struct {
	V any `json:"v"`
}
