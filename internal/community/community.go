// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package community assembles the community and publications content from
// the spreadsheet: it fetches every tab the pages need, maps loosely-typed
// rows into domain records, gates them on approval, and resolves the
// relation tabs into denormalized read models.
//
// Mapping never fails. The spreadsheet is edited by hand, so a malformed
// cell degrades to an empty field and a relation row pointing at a missing
// or unapproved entity is dropped at join time.
package community

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/pdiddy/site-engine/internal/sheets"
	"github.com/pdiddy/site-engine/pkg/types"
)

// defaultRevalidateSeconds is the transport reuse window when Options
// leaves it unset.
const defaultRevalidateSeconds = 300

// Options selects the document and the transport reuse window.
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

// communityTabs lists every tab the community pages read, in the order the
// results are assembled below.
var communityTabs = []string{
	"members",
	"publications",
	"publication_links",
	"publication_authors",
	"presentations",
	"presentation_authors",
	"awards",
	"award_recipients",
	"award_publications",
	"certificates",
	"certificate_holders",
}

// GetCommunityTables fetches all community tabs concurrently and returns
// them mapped and filtered. Tables with a status column keep approved rows
// only; relation tables pass through unfiltered, their visibility being
// whatever their join targets allow. Members come back sorted by last name
// then first name, case-insensitive.
//
// The call is all-or-nothing: if any tab fails at the transport level the
// whole call fails with that error.
func GetCommunityTables(ctx context.Context, client *sheets.Client, opts Options) (types.CommunityTables, error) {
	reval := opts.revalidate()

	objects := make([][]map[string]string, len(communityTabs))
	errs := make([]error, len(communityTabs))

	var wg sync.WaitGroup
	for i, tab := range communityTabs {
		wg.Add(1)
		go func(i int, tab string) {
			defer wg.Done()
			rows, err := client.FetchRows(ctx, opts.DocumentID, tab, reval)
			if err != nil {
				errs[i] = err
				return
			}
			objects[i] = sheets.RowsToObjects(rows)
		}(i, tab)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return types.CommunityTables{}, err
		}
	}

	tables := types.CommunityTables{}

	for _, o := range objects[0] {
		if m := mapMember(o); sheets.IsApproved(m.Status) {
			tables.Members = append(tables.Members, m)
		}
	}
	for _, o := range objects[1] {
		if p := mapPublication(o); sheets.IsApproved(p.Status) {
			tables.Publications = append(tables.Publications, p)
		}
	}
	for _, o := range objects[2] {
		if l := mapPublicationLink(o); sheets.IsApproved(l.Status) {
			tables.PublicationLinks = append(tables.PublicationLinks, l)
		}
	}
	for _, o := range objects[3] {
		tables.PublicationAuthors = append(tables.PublicationAuthors, mapPublicationAuthor(o))
	}
	for _, o := range objects[4] {
		if p := mapPresentation(o); sheets.IsApproved(p.Status) {
			tables.Presentations = append(tables.Presentations, p)
		}
	}
	for _, o := range objects[5] {
		tables.PresentationAuthors = append(tables.PresentationAuthors, mapPresentationAuthor(o))
	}
	for _, o := range objects[6] {
		if a := mapAward(o); sheets.IsApproved(a.Status) {
			tables.Awards = append(tables.Awards, a)
		}
	}
	for _, o := range objects[7] {
		tables.AwardRecipients = append(tables.AwardRecipients, mapAwardRecipient(o))
	}
	for _, o := range objects[8] {
		tables.AwardPublications = append(tables.AwardPublications, mapAwardPublication(o))
	}
	for _, o := range objects[9] {
		if c := mapCertificate(o); sheets.IsApproved(c.Status) {
			tables.Certificates = append(tables.Certificates, c)
		}
	}
	for _, o := range objects[10] {
		tables.CertificateHolders = append(tables.CertificateHolders, mapCertificateHolder(o))
	}

	sortMembers(tables.Members)
	return tables, nil
}

// sortMembers orders the roster by last name, then first name, both
// case-insensitive ascending.
func sortMembers(members []types.Member) {
	sort.SliceStable(members, func(i, j int) bool {
		il, jl := strings.ToLower(members[i].LastName), strings.ToLower(members[j].LastName)
		if il != jl {
			return il < jl
		}
		return strings.ToLower(members[i].FirstName) < strings.ToLower(members[j].FirstName)
	})
}

// dateKeyLayouts are the formats parseDateKey accepts, tried in order.
var dateKeyLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006/01/02",
	"January 2, 2006",
	"Jan 2, 2006",
	"2006",
}

// parseDateKey turns a date cell into a numeric sort key (unix millis).
// Unparsable values return 0 and therefore sort as the oldest.
func parseDateKey(v string) int64 {
	trimmed := strings.TrimSpace(v)
	if trimmed == "" {
		return 0
	}
	for _, layout := range dateKeyLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t.UnixMilli()
		}
	}
	return 0
}
