// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package news reads the news_articles and news_blocks tabs and decodes
// articles into typed content blocks.
//
// Decoding follows the same tolerance policy as the community layer: a
// missing article is nil, malformed embedded JSON degrades to empty
// collections plus a diagnostic, and only transport failures are errors.
package news

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/pdiddy/site-engine/internal/sheets"
	"github.com/pdiddy/site-engine/pkg/types"
)

const defaultRevalidateSeconds = 300

// wordsPerMinute is the reading speed behind EstimateReadingTime.
const wordsPerMinute = 220

// Options selects the document and the transport reuse window, mirroring
// the community package.
type Options struct {
	DocumentID string

	// RevalidateSeconds is the reuse hint passed to the transport. Zero
	// means the default of 300; negative disables the hint.
	RevalidateSeconds int
}

func (o Options) revalidate() int {
	switch {
	case o.RevalidateSeconds == 0:
		return defaultRevalidateSeconds
	case o.RevalidateSeconds < 0:
		return 0
	default:
		return o.RevalidateSeconds
	}
}

// GetAllNews returns the approved article index, newest first.
func GetAllNews(ctx context.Context, client *sheets.Client, opts Options) ([]types.NewsListItem, error) {
	rows, err := client.FetchRows(ctx, opts.DocumentID, "news_articles", opts.revalidate())
	if err != nil {
		return nil, err
	}

	var items []types.NewsListItem
	for _, r := range sheets.RowsToObjects(rows) {
		if !sheets.IsApproved(r["status"]) {
			continue
		}
		items = append(items, types.NewsListItem{
			Slug:        strings.TrimSpace(r["slug"]),
			Title:       strings.TrimSpace(r["title"]),
			Dek:         strings.TrimSpace(r["dek"]),
			Author:      articleAuthor(r),
			PublishedAt: strings.TrimSpace(r["publishedAt"]),
			Tags:        splitTags(r["tags"]),
			Hero:        articleHero(r),
		})
	}

	// publishedAt is YYYY-MM-DD, so the string order is the date order.
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].PublishedAt > items[j].PublishedAt
	})
	return items, nil
}

// GetNewsBySlug returns the article with the given slug among approved rows,
// with its ordered content blocks decoded, plus any decode diagnostics.
// A missing slug returns (nil, nil, nil): not found is not an error.
func GetNewsBySlug(ctx context.Context, client *sheets.Client, opts Options, slug string) (*types.NewsArticle, []Diagnostic, error) {
	reval := opts.revalidate()

	articleRows, err := client.FetchRows(ctx, opts.DocumentID, "news_articles", reval)
	if err != nil {
		return nil, nil, err
	}

	var row map[string]string
	for _, r := range sheets.RowsToObjects(articleRows) {
		if strings.TrimSpace(r["slug"]) == slug && sheets.IsApproved(r["status"]) {
			row = r
			break
		}
	}
	if row == nil {
		return nil, nil, nil
	}

	blockRows, err := client.FetchRows(ctx, opts.DocumentID, "news_blocks", reval)
	if err != nil {
		return nil, nil, err
	}

	var blocks []map[string]string
	for _, b := range sheets.RowsToObjects(blockRows) {
		if strings.TrimSpace(b["slug"]) == slug && sheets.IsApproved(b["status"]) {
			blocks = append(blocks, b)
		}
	}
	// Blocks are positionally ordered content; idx, not sheet row order,
	// decides their place.
	sort.SliceStable(blocks, func(i, j int) bool {
		return sheets.ToNumber(blocks[i]["idx"], 0) < sheets.ToNumber(blocks[j]["idx"], 0)
	})

	var diagnostics []Diagnostic
	content := make([]types.Block, 0, len(blocks))
	for i, b := range blocks {
		block, diags := decodeBlock(b, i)
		content = append(content, block)
		diagnostics = append(diagnostics, diags...)
	}

	links, linkDiags := normalizeLinkItems(parseJSONArray(row["links_json"]), "article links")
	diagnostics = append(diagnostics, linkDiags...)

	article := &types.NewsArticle{
		Slug:        strings.TrimSpace(row["slug"]),
		Title:       strings.TrimSpace(row["title"]),
		Dek:         strings.TrimSpace(row["dek"]),
		Author:      articleAuthor(row),
		PublishedAt: strings.TrimSpace(row["publishedAt"]),
		UpdatedAt:   strings.TrimSpace(row["updatedAt"]),
		Tags:        splitTags(row["tags"]),
		Hero:        articleHero(row),
		Links:       links,
		Content:     content,
	}
	return article, diagnostics, nil
}

// GetSimilarArticles ranks all other articles by how many lowercase tags
// they share with current, ties broken by newer publish date, truncated to
// limit.
func GetSimilarArticles(all []types.NewsListItem, current types.NewsArticle, limit int) []types.NewsListItem {
	currentTags := make(map[string]bool, len(current.Tags))
	for _, t := range current.Tags {
		currentTags[strings.ToLower(t)] = true
	}

	type scored struct {
		item  types.NewsListItem
		score int
	}
	var candidates []scored
	for _, a := range all {
		if a.Slug == current.Slug {
			continue
		}
		score := 0
		for _, t := range a.Tags {
			if currentTags[strings.ToLower(t)] {
				score++
			}
		}
		candidates = append(candidates, scored{item: a, score: score})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return candidates[i].item.PublishedAt > candidates[j].item.PublishedAt
	})

	if limit >= 0 && len(candidates) > limit {
		candidates = candidates[:limit]
	}
	out := make([]types.NewsListItem, len(candidates))
	for i, c := range candidates {
		out[i] = c.item
	}
	return out
}

// FormatDate renders an ISO date ("2024-03-05") as "March 5, 2024".
// Anything that does not parse comes back unchanged.
func FormatDate(iso string) string {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(iso))
	if err != nil {
		return iso
	}
	return t.Format("January 2, 2006")
}

// EstimateReadingTime sums the words of all paragraph and quote blocks,
// divides by the reading speed, and renders "N min read" with a floor of
// one minute.
func EstimateReadingTime(article types.NewsArticle) string {
	words := 0
	for _, block := range article.Content {
		var text string
		switch b := block.(type) {
		case types.ParagraphBlock:
			text = b.Text
		case types.QuoteBlock:
			text = b.Text
		default:
			continue
		}
		words += len(strings.Fields(text))
	}

	minutes := int(math.Round(float64(words) / wordsPerMinute))
	if minutes < 1 {
		minutes = 1
	}
	return fmt.Sprintf("%d min read", minutes)
}

func splitTags(raw string) []string {
	var tags []string
	for _, t := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(t); trimmed != "" {
			tags = append(tags, trimmed)
		}
	}
	return tags
}

func articleAuthor(row map[string]string) types.NewsAuthor {
	return types.NewsAuthor{
		Name: strings.TrimSpace(row["author_name"]),
		Role: strings.TrimSpace(row["author_role"]),
	}
}

func articleHero(row map[string]string) types.NewsHero {
	return types.NewsHero{
		Image:   sheets.NormalizeDriveImageURL(row["hero_image"]),
		Caption: strings.TrimSpace(row["hero_caption"]),
		Credit:  strings.TrimSpace(row["hero_credit"]),
	}
}
