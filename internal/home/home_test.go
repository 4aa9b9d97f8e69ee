// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package home

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pdiddy/site-engine/internal/sheets"
)

func gvizBody(t *testing.T, rows [][]string) string {
	t.Helper()
	type col struct {
		Label string `json:"label"`
	}
	type cell struct {
		V string `json:"v"`
	}
	type row struct {
		C []cell `json:"c"`
	}
	type table struct {
		Cols []col `json:"cols"`
		Rows []row `json:"rows"`
	}

	var tbl table
	if len(rows) > 0 {
		for _, label := range rows[0] {
			tbl.Cols = append(tbl.Cols, col{Label: label})
		}
		for _, r := range rows[1:] {
			var cells []cell
			for _, v := range r {
				cells = append(cells, cell{V: v})
			}
			tbl.Rows = append(tbl.Rows, row{C: cells})
		}
	}

	raw, err := json.Marshal(struct {
		Table table `json:"table"`
	}{tbl})
	if err != nil {
		t.Fatalf("marshal gviz table: %v", err)
	}
	return fmt.Sprintf("google.visualization.Query.setResponse(%s);", raw)
}

func newHomeClient(t *testing.T, tabs map[string][][]string) *sheets.Client {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rows := tabs[r.URL.Query().Get("sheet")]
		if rows == nil {
			rows = [][]string{{"id", "status", "sort"}}
		}
		fmt.Fprint(w, gvizBody(t, rows))
	}))
	t.Cleanup(ts.Close)
	return &sheets.Client{BaseURL: ts.URL}
}

func homeFixture() map[string][][]string {
	return map[string][][]string{
		// The home tab has no header labels; the key/value header is
		// synthesized.
		"home": {
			{"", ""},
			{"about_title", "We study agents"},
			{"about_eyebrow", ""},
			{"contact_email", "lab@example.edu"},
			{"news_title", "Latest from the lab"},
			{"", "orphan value"},
		},
		"about_bullets": {
			{"id", "text", "sort", "status"},
			{"b1", "Second bullet", "2", "approved"},
			{"b2", "First bullet", "1", "approved"},
			{"b3", "Hidden bullet", "0", "pending"},
		},
		"about_stats": {
			{"id", "label", "value", "sort", "status"},
			{"s1", "Members", "24", "1", "approved"},
		},
		"about_images": {
			{"id", "src", "alt", "sort", "status"},
			{"i1", "https://drive.google.com/file/d/AboutPic/view", "lab", "1", "approved"},
		},
		"home_gallery": {
			{"id", "src", "alt", "sort", "status"},
			{"g1", "https://example.com/g1.jpg", "gallery one", "1", "approved"},
			{"g2", "https://example.com/g2.jpg", "", "0.5", "approved"},
		},
	}
}

func TestMetaToRecord(t *testing.T) {
	rows := []map[string]string{
		{"key": " about_title ", "value": "Hello"},
		{"key": "", "value": "dropped"},
		{"key": "contact_email", "value": "a@b.c"},
	}
	meta := MetaToRecord(rows)
	if len(meta) != 2 {
		t.Fatalf("meta = %v, want 2 keys", meta)
	}
	if meta["about_title"] != "Hello" {
		t.Errorf("about_title = %q", meta["about_title"])
	}
}

func TestGetHomeAbout(t *testing.T) {
	client := newHomeClient(t, homeFixture())

	about, err := GetHomeAbout(context.Background(), client, Options{DocumentID: "doc"})
	if err != nil {
		t.Fatalf("GetHomeAbout: %v", err)
	}

	if about.Title != "We study agents" {
		t.Errorf("title = %q", about.Title)
	}
	// Blank meta value falls back to the default copy.
	if about.Eyebrow != "About the group" {
		t.Errorf("eyebrow = %q, want default", about.Eyebrow)
	}

	if len(about.Bullets) != 2 || about.Bullets[0] != "First bullet" {
		t.Errorf("bullets = %v, want sorted approved", about.Bullets)
	}
	if len(about.Stats) != 1 || about.Stats[0].Value != "24" {
		t.Errorf("stats = %v", about.Stats)
	}
	if len(about.Images) != 1 || about.Images[0].Src != "https://lh3.googleusercontent.com/d/AboutPic" {
		t.Errorf("images = %v", about.Images)
	}

	if about.Contact.Email != "lab@example.edu" {
		t.Errorf("contact email = %q", about.Contact.Email)
	}
	if about.Contact.EmailLabel != "Email" || about.Contact.Eyebrow != "Contact" {
		t.Errorf("contact labels = %+v, want defaults", about.Contact)
	}
}

func TestGetHomeNews(t *testing.T) {
	client := newHomeClient(t, homeFixture())

	news, err := GetHomeNews(context.Background(), client, Options{DocumentID: "doc"})
	if err != nil {
		t.Fatalf("GetHomeNews: %v", err)
	}

	if news.Title != "Latest from the lab" {
		t.Errorf("title = %q", news.Title)
	}
	if news.Eyebrow != "News" || news.ViewAllLabel != "View all" {
		t.Errorf("defaults = %q / %q", news.Eyebrow, news.ViewAllLabel)
	}

	// Fractional sort values order the gallery.
	if len(news.Gallery.Images) != 2 || news.Gallery.Images[0].Src != "https://example.com/g2.jpg" {
		t.Errorf("gallery = %v", news.Gallery.Images)
	}
	if news.Gallery.Eyebrow != "Gallery" {
		t.Errorf("gallery eyebrow = %q", news.Gallery.Eyebrow)
	}
}

func TestGetHomeAboutFetchError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(ts.Close)

	client := &sheets.Client{BaseURL: ts.URL}
	if _, err := GetHomeAbout(context.Background(), client, Options{DocumentID: "doc"}); err == nil {
		t.Fatal("want error when the home tab fails")
	}
}
