// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package news

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pdiddy/site-engine/internal/sheets"
	"github.com/pdiddy/site-engine/pkg/types"
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

func newNewsServer(t *testing.T, tabs map[string][][]string) *sheets.Client {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rows := tabs[r.URL.Query().Get("sheet")]
		if rows == nil {
			rows = [][]string{{"id", "status", "x"}}
		}
		fmt.Fprint(w, gvizBody(t, rows))
	}))
	t.Cleanup(ts.Close)
	return &sheets.Client{BaseURL: ts.URL}
}

func newsFixture() map[string][][]string {
	return map[string][][]string{
		"news_articles": {
			{"slug", "title", "dek", "author_name", "author_role", "publishedAt", "updatedAt", "tags", "hero_image", "status", "links_json"},
			{"older-post", "Older Post", "", "Ana", "Editor", "2024-01-05", "", "robotics, ML", "", "approved", ""},
			{"newer-post", "Newer Post", "A dek", "Karl", "", "2024-06-01", "2024-06-02", "ML", "https://drive.google.com/file/d/Hero1/view", "approved", `[{"url":"https://example.com/ref"}]`},
			{"hidden-post", "Hidden", "", "", "", "2024-07-01", "", "", "", "draft", ""},
		},
		"news_blocks": {
			{"slug", "idx", "type", "text", "cite", "status", "items_json"},
			{"newer-post", "2", "quote", "quoted words", "Ana", "approved", ""},
			{"newer-post", "1", "paragraph", "first paragraph", "", "approved", ""},
			{"newer-post", "3", "list", `ignored`, "", "pending", ""},
			{"older-post", "1", "paragraph", "other article", "", "approved", ""},
		},
	}
}

func TestGetAllNews(t *testing.T) {
	client := newNewsServer(t, newsFixture())

	items, err := GetAllNews(context.Background(), client, Options{DocumentID: "doc"})
	if err != nil {
		t.Fatalf("GetAllNews: %v", err)
	}

	if len(items) != 2 {
		t.Fatalf("items = %d, want 2 (draft dropped)", len(items))
	}
	if items[0].Slug != "newer-post" || items[1].Slug != "older-post" {
		t.Errorf("order = %v, %v, want newest first", items[0].Slug, items[1].Slug)
	}
	if items[0].Hero.Image != "https://lh3.googleusercontent.com/d/Hero1" {
		t.Errorf("hero = %q, want normalized drive url", items[0].Hero.Image)
	}
	if len(items[1].Tags) != 2 || items[1].Tags[0] != "robotics" {
		t.Errorf("tags = %v", items[1].Tags)
	}
	if items[1].Author.Name != "Ana" || items[1].Author.Role != "Editor" {
		t.Errorf("author = %v", items[1].Author)
	}
}

func TestGetNewsBySlug(t *testing.T) {
	client := newNewsServer(t, newsFixture())

	article, diags, err := GetNewsBySlug(context.Background(), client, Options{DocumentID: "doc"}, "newer-post")
	if err != nil {
		t.Fatalf("GetNewsBySlug: %v", err)
	}
	if article == nil {
		t.Fatal("article = nil")
	}
	if len(diags) != 0 {
		t.Errorf("diags = %v", diags)
	}

	// Blocks come back in idx order with the unapproved row dropped.
	if len(article.Content) != 2 {
		t.Fatalf("content = %d blocks, want 2", len(article.Content))
	}
	p, ok := article.Content[0].(types.ParagraphBlock)
	if !ok || p.Text != "first paragraph" {
		t.Errorf("content[0] = %#v", article.Content[0])
	}
	q, ok := article.Content[1].(types.QuoteBlock)
	if !ok || q.Cite != "Ana" {
		t.Errorf("content[1] = %#v", article.Content[1])
	}

	if len(article.Links) != 1 || article.Links[0].URL != "https://example.com/ref" {
		t.Errorf("links = %v", article.Links)
	}
	if article.UpdatedAt != "2024-06-02" {
		t.Errorf("updatedAt = %q", article.UpdatedAt)
	}
}

func TestGetNewsBySlugMissing(t *testing.T) {
	client := newNewsServer(t, newsFixture())

	article, diags, err := GetNewsBySlug(context.Background(), client, Options{DocumentID: "doc"}, "no-such-post")
	if err != nil || article != nil || diags != nil {
		t.Errorf("missing slug = (%v, %v, %v), want all nil", article, diags, err)
	}

	// Unapproved slugs are as missing as absent ones.
	article, _, err = GetNewsBySlug(context.Background(), client, Options{DocumentID: "doc"}, "hidden-post")
	if err != nil || article != nil {
		t.Errorf("draft slug = (%v, %v), want nil article", article, err)
	}
}

func TestGetSimilarArticles(t *testing.T) {
	all := []types.NewsListItem{
		{Slug: "current", Tags: []string{"ML", "robotics"}, PublishedAt: "2024-06-01"},
		{Slug: "two-shared", Tags: []string{"ml", "Robotics"}, PublishedAt: "2024-01-01"},
		{Slug: "one-shared-new", Tags: []string{"ML"}, PublishedAt: "2024-05-01"},
		{Slug: "one-shared-old", Tags: []string{"robotics"}, PublishedAt: "2023-01-01"},
		{Slug: "none", Tags: []string{"admin"}, PublishedAt: "2024-12-01"},
	}
	current := types.NewsArticle{Slug: "current", Tags: []string{"ML", "robotics"}}

	got := GetSimilarArticles(all, current, 3)
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	want := []string{"two-shared", "one-shared-new", "one-shared-old"}
	for i, slug := range want {
		if got[i].Slug != slug {
			t.Errorf("got[%d] = %q, want %q", i, got[i].Slug, slug)
		}
	}

	// The current article never recommends itself, even with limit slack.
	for _, item := range GetSimilarArticles(all, current, 10) {
		if item.Slug == "current" {
			t.Error("current article recommended itself")
		}
	}
}

func TestFormatDate(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"2024-03-05", "March 5, 2024"},
		{" 2024-12-25 ", "December 25, 2024"},
		{"not a date", "not a date"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := FormatDate(tt.in); got != tt.want {
			t.Errorf("FormatDate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEstimateReadingTime(t *testing.T) {
	words := func(n int) string {
		return strings.TrimSpace(strings.Repeat("word ", n))
	}
	tests := []struct {
		name    string
		content []types.Block
		want    string
	}{
		{
			"short text floors to one minute",
			[]types.Block{types.ParagraphBlock{Text: words(10)}},
			"1 min read",
		},
		{
			"two minutes at 440 words",
			[]types.Block{
				types.ParagraphBlock{Text: words(220)},
				types.QuoteBlock{Text: words(220)},
			},
			"2 min read",
		},
		{
			"non-text blocks do not count",
			[]types.Block{
				types.ParagraphBlock{Text: words(220)},
				types.ListBlock{Items: []string{words(500)}},
				types.SubheadBlock{Text: words(500)},
			},
			"1 min read",
		},
		{
			"empty article",
			nil,
			"1 min read",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EstimateReadingTime(types.NewsArticle{Content: tt.content})
			if got != tt.want {
				t.Errorf("EstimateReadingTime = %q, want %q", got, tt.want)
			}
		})
	}
}
