// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package news

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/pdiddy/site-engine/internal/sheets"
	"github.com/pdiddy/site-engine/pkg/types"
)

// Diagnostic is a recoverable content problem found while decoding the
// JSON-embedded columns. Diagnostics are reported to the caller, never
// raised as errors: the offending items are dropped and the rest of the
// document stands.
type Diagnostic struct {
	// Context names where the problem was found, e.g. `block 4 (list)`.
	Context string

	// Message describes what was dropped or coerced.
	Message string
}

func (d Diagnostic) String() string {
	return d.Context + ": " + d.Message
}

// parseJSONArray parses a *_json cell into a generic array. Blank cells and
// parse failures return nil; the trust boundary never throws.
func parseJSONArray(raw string) []any {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	var out []any
	if err := json.Unmarshal([]byte(trimmed), &out); err != nil {
		return nil
	}
	return out
}

// itemString coerces a scalar item to its string form. Numbers render the
// way the sheet shows them; anything non-scalar reports not-ok.
func itemString(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(t), true
	}
	return "", false
}

// objectField returns the first candidate field of an object that holds a
// non-blank scalar.
func objectField(obj map[string]any, candidates ...string) string {
	for _, key := range candidates {
		if v, ok := obj[key]; ok {
			if s, ok := itemString(v); ok && strings.TrimSpace(s) != "" {
				return s
			}
		}
	}
	return ""
}

// normalizeListItems validates list block items. Strings and numbers are
// kept (numbers stringified); objects resolve through text/label/value;
// null and unsupported shapes are dropped. One diagnostic summarizes the
// whole batch when anything was dropped.
func normalizeListItems(values []any, context string) ([]string, []Diagnostic) {
	items := []string{}
	dropped := 0
	for _, v := range values {
		if s, ok := itemString(v); ok {
			items = append(items, s)
			continue
		}
		if obj, ok := v.(map[string]any); ok {
			if s := objectField(obj, "text", "label", "value"); s != "" {
				items = append(items, s)
				continue
			}
		}
		dropped++
	}

	var diags []Diagnostic
	if dropped > 0 {
		diags = append(diags, Diagnostic{
			Context: context,
			Message: fmt.Sprintf("dropped %d malformed list item(s)", dropped),
		})
	}
	return items, diags
}

// normalizeLinkItems validates links block items. The URL is the only
// mandatory field (url, then href); the label falls back through
// label → text → cite → url. A bare string is taken as a URL.
func normalizeLinkItems(values []any, context string) ([]types.LinkItem, []Diagnostic) {
	items := []types.LinkItem{}
	dropped := 0
	for _, v := range values {
		if s, ok := itemString(v); ok && strings.TrimSpace(s) != "" {
			items = append(items, types.LinkItem{Label: s, URL: s})
			continue
		}
		if obj, ok := v.(map[string]any); ok {
			url := objectField(obj, "url", "href")
			if url != "" {
				label := objectField(obj, "label", "text", "cite")
				if label == "" {
					label = url
				}
				items = append(items, types.LinkItem{Label: label, URL: url})
				continue
			}
		}
		dropped++
	}

	var diags []Diagnostic
	if dropped > 0 {
		diags = append(diags, Diagnostic{
			Context: context,
			Message: fmt.Sprintf("dropped %d link item(s) without a URL", dropped),
		})
	}
	return items, diags
}

// normalizeGalleryItems validates gallery block images. The source is
// mandatory (src, then url) and passes through the Drive normalizer; a
// bare string is taken as a source.
func normalizeGalleryItems(values []any, context string) ([]types.GalleryImage, []Diagnostic) {
	images := []types.GalleryImage{}
	dropped := 0
	for _, v := range values {
		if s, ok := itemString(v); ok && strings.TrimSpace(s) != "" {
			images = append(images, types.GalleryImage{Src: sheets.NormalizeDriveImageURL(s)})
			continue
		}
		if obj, ok := v.(map[string]any); ok {
			src := objectField(obj, "src", "url")
			if src != "" {
				images = append(images, types.GalleryImage{
					Src: sheets.NormalizeDriveImageURL(src),
					Alt: objectField(obj, "alt"),
				})
				continue
			}
		}
		dropped++
	}

	var diags []Diagnostic
	if dropped > 0 {
		diags = append(diags, Diagnostic{
			Context: context,
			Message: fmt.Sprintf("dropped %d gallery item(s) without an image source", dropped),
		})
	}
	return images, diags
}

// decodeBlock maps one news_blocks row to a content block by its type
// column. Unrecognized types decode to an empty paragraph rather than
// failing the article.
func decodeBlock(row map[string]string, index int) (types.Block, []Diagnostic) {
	get := func(key string) string { return strings.TrimSpace(row[key]) }

	switch types.BlockKind(get("type")) {
	case types.BlockParagraph:
		return types.ParagraphBlock{Text: row["text"]}, nil
	case types.BlockSubhead:
		return types.SubheadBlock{Text: row["text"]}, nil
	case types.BlockQuote:
		return types.QuoteBlock{Text: row["text"], Cite: get("cite")}, nil
	case types.BlockImage:
		return types.ImageBlock{
			Src:     sheets.NormalizeDriveImageURL(get("src")),
			Alt:     get("alt"),
			Caption: get("caption"),
			Credit:  get("credit"),
		}, nil
	case types.BlockPDF:
		return types.PDFBlock{Title: get("title"), Src: get("src")}, nil
	case types.BlockEmbed:
		provider := get("provider")
		if provider == "" {
			provider = "iframe"
		}
		return types.EmbedBlock{Title: get("title"), Provider: provider, URL: get("url")}, nil
	case types.BlockList:
		context := fmt.Sprintf("block %d (list)", index)
		items, diags := normalizeListItems(parseJSONArray(row["items_json"]), context)
		return types.ListBlock{Items: items}, diags
	case types.BlockLinks:
		context := fmt.Sprintf("block %d (links)", index)
		items, diags := normalizeLinkItems(parseJSONArray(row["items_json"]), context)
		return types.LinksBlock{Title: get("title"), Items: items}, diags
	case types.BlockGallery:
		context := fmt.Sprintf("block %d (gallery)", index)
		images, diags := normalizeGalleryItems(parseJSONArray(row["images_json"]), context)
		return types.GalleryBlock{Title: get("title"), Images: images}, diags
	}

	// Unknown block type: defensive fallback, not an error.
	return types.ParagraphBlock{}, nil
}
