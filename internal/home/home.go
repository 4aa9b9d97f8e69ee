// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package home assembles the home page copy from the "home" meta tab (a
// two-column key/value table) and the about_*/home_gallery tabs.
package home

import (
	"context"
	"sort"
	"strings"

	"github.com/pdiddy/site-engine/internal/sheets"
	"github.com/pdiddy/site-engine/pkg/types"
)

const defaultRevalidateSeconds = 300

// Options selects the document and the transport reuse window.
type Options struct {
	DocumentID        string
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

// MetaToRecord flattens a key/value meta tab into a single record. Rows
// with a blank key are skipped.
func MetaToRecord(rows []map[string]string) map[string]string {
	out := make(map[string]string, len(rows))
	for _, r := range rows {
		key := strings.TrimSpace(r["key"])
		if key == "" {
			continue
		}
		out[key] = r["value"]
	}
	return out
}

// metaDefault returns meta[key], or fallback when the editor left it blank.
func metaDefault(meta map[string]string, key, fallback string) string {
	if v, ok := meta[key]; ok && strings.TrimSpace(v) != "" {
		return v
	}
	return fallback
}

// sortedApproved filters a tab's records to approved rows ordered by the
// numeric sort column ascending.
func sortedApproved(rows []map[string]string) []map[string]string {
	var out []map[string]string
	for _, r := range rows {
		if sheets.IsApproved(r["status"]) {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return sheets.ToNumber(out[i]["sort"], 0) < sheets.ToNumber(out[j]["sort"], 0)
	})
	return out
}

func fetchObjects(ctx context.Context, client *sheets.Client, opts Options, tab string) ([]map[string]string, error) {
	rows, err := client.FetchRows(ctx, opts.DocumentID, tab, opts.revalidate())
	if err != nil {
		return nil, err
	}
	return sheets.RowsToObjects(rows), nil
}

// GetHomeAbout assembles the about section: meta copy plus the bullets,
// stats, images, focus blocks, and contact links tabs.
func GetHomeAbout(ctx context.Context, client *sheets.Client, opts Options) (types.HomeAbout, error) {
	metaRows, err := fetchObjects(ctx, client, opts, "home")
	if err != nil {
		return types.HomeAbout{}, err
	}
	meta := MetaToRecord(metaRows)

	bulletRows, err := fetchObjects(ctx, client, opts, "about_bullets")
	if err != nil {
		return types.HomeAbout{}, err
	}
	var bullets []string
	for _, r := range sortedApproved(bulletRows) {
		bullets = append(bullets, r["text"])
	}

	statRows, err := fetchObjects(ctx, client, opts, "about_stats")
	if err != nil {
		return types.HomeAbout{}, err
	}
	var stats []types.HomeStat
	for _, r := range sortedApproved(statRows) {
		stats = append(stats, types.HomeStat{Label: r["label"], Value: r["value"]})
	}

	imageRows, err := fetchObjects(ctx, client, opts, "about_images")
	if err != nil {
		return types.HomeAbout{}, err
	}
	var images []types.HomeImage
	for _, r := range sortedApproved(imageRows) {
		images = append(images, types.HomeImage{Src: sheets.NormalizeDriveImageURL(r["src"]), Alt: r["alt"]})
	}

	focusRows, err := fetchObjects(ctx, client, opts, "about_focus")
	if err != nil {
		return types.HomeAbout{}, err
	}
	var focusBlocks []types.FocusBlock
	for _, r := range sortedApproved(focusRows) {
		focusBlocks = append(focusBlocks, types.FocusBlock{Title: r["title"], Body: r["body"]})
	}

	linkRows, err := fetchObjects(ctx, client, opts, "about_links")
	if err != nil {
		return types.HomeAbout{}, err
	}
	var links []types.ContactLink
	for _, r := range sortedApproved(linkRows) {
		links = append(links, types.ContactLink{Label: r["label"], Href: r["href"]})
	}

	return types.HomeAbout{
		Eyebrow:     metaDefault(meta, "about_eyebrow", "About the group"),
		Title:       meta["about_title"],
		Subtitle:    meta["about_subtitle"],
		Bullets:     bullets,
		Stats:       stats,
		Images:      images,
		FocusBlocks: focusBlocks,
		Contact: types.HomeContact{
			Eyebrow:       metaDefault(meta, "contact_eyebrow", "Contact"),
			EmailLabel:    metaDefault(meta, "contact_emailLabel", "Email"),
			Email:         meta["contact_email"],
			LocationLabel: metaDefault(meta, "contact_locationLabel", "Location"),
			Location:      meta["contact_location"],
			AddressLabel:  metaDefault(meta, "contact_addressLabel", "Address"),
			Address:       meta["contact_address"],
			Links:         links,
		},
	}, nil
}

// GetHomeNews assembles the news section copy and the gallery strip.
func GetHomeNews(ctx context.Context, client *sheets.Client, opts Options) (types.HomeNews, error) {
	metaRows, err := fetchObjects(ctx, client, opts, "home")
	if err != nil {
		return types.HomeNews{}, err
	}
	meta := MetaToRecord(metaRows)

	galleryRows, err := fetchObjects(ctx, client, opts, "home_gallery")
	if err != nil {
		return types.HomeNews{}, err
	}
	var images []types.HomeImage
	for _, r := range sortedApproved(galleryRows) {
		images = append(images, types.HomeImage{Src: sheets.NormalizeDriveImageURL(r["src"]), Alt: r["alt"]})
	}

	return types.HomeNews{
		Eyebrow:      metaDefault(meta, "news_eyebrow", "News"),
		Title:        meta["news_title"],
		Subtitle:     meta["news_subtitle"],
		ViewAllLabel: metaDefault(meta, "news_viewAllLabel", "View all"),
		Gallery: types.HomeGallery{
			Eyebrow:  metaDefault(meta, "gallery_eyebrow", "Gallery"),
			Subtitle: meta["gallery_subtitle"],
			Images:   images,
		},
	}, nil
}
