// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"encoding/json"
	"testing"
)

func TestBlockMarshalCarriesType(t *testing.T) {
	tests := []struct {
		name  string
		block Block
		want  string
	}{
		{
			"paragraph",
			ParagraphBlock{Text: "hello"},
			`{"type":"paragraph","text":"hello"}`,
		},
		{
			"quote omits empty cite",
			QuoteBlock{Text: "q"},
			`{"type":"quote","text":"q"}`,
		},
		{
			"list",
			ListBlock{Items: []string{"a", "b"}},
			`{"type":"list","items":["a","b"]}`,
		},
		{
			"embed",
			EmbedBlock{Provider: "iframe", URL: "https://e.example"},
			`{"type":"embed","provider":"iframe","url":"https://e.example"}`,
		},
		{
			"gallery",
			GalleryBlock{Images: []GalleryImage{{Src: "https://x.example/a.png"}}},
			`{"type":"gallery","images":[{"src":"https://x.example/a.png"}]}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := json.Marshal(tt.block)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			if string(raw) != tt.want {
				t.Errorf("json = %s, want %s", raw, tt.want)
			}
		})
	}
}

func TestBlockMarshalInsideArticle(t *testing.T) {
	article := NewsArticle{
		Slug:        "post",
		Title:       "Post",
		PublishedAt: "2024-06-01",
		Content: []Block{
			SubheadBlock{Text: "Part one"},
			ParagraphBlock{Text: "body"},
		},
	}

	raw, err := json.Marshal(article)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded struct {
		Content []map[string]any `json:"content"`
	}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(decoded.Content) != 2 {
		t.Fatalf("content = %v", decoded.Content)
	}
	if decoded.Content[0]["type"] != "subhead" || decoded.Content[1]["type"] != "paragraph" {
		t.Errorf("discriminators = %v, %v", decoded.Content[0]["type"], decoded.Content[1]["type"])
	}
}
