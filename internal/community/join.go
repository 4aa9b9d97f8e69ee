// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package community

import (
	"sort"
	"strings"

	"github.com/pdiddy/site-engine/internal/sheets"
	"github.com/pdiddy/site-engine/pkg/types"
)

// SplitMembersByType partitions the roster into admins, members, and
// alumni, each independently sorted by last-then-first name. A blank type
// counts as a regular member.
func SplitMembersByType(members []types.Member) types.MemberBuckets {
	var buckets types.MemberBuckets
	for _, m := range members {
		switch m.Type {
		case types.MemberAdmin:
			buckets.Admins = append(buckets.Admins, m)
		case types.MemberAlumni:
			buckets.Alumni = append(buckets.Alumni, m)
		default:
			buckets.Members = append(buckets.Members, m)
		}
	}
	sortMembers(buckets.Admins)
	sortMembers(buckets.Members)
	sortMembers(buckets.Alumni)
	return buckets
}

// GetMemberByID returns the approved member with the given id, or nil.
func GetMemberByID(tables types.CommunityTables, id string) *types.Member {
	target := strings.TrimSpace(id)
	for i := range tables.Members {
		if tables.Members[i].ID == target {
			return &tables.Members[i]
		}
	}
	return nil
}

// GetPublicationByID returns the approved publication with the given id, or nil.
func GetPublicationByID(tables types.CommunityTables, id string) *types.Publication {
	target := strings.TrimSpace(id)
	for i := range tables.Publications {
		if tables.Publications[i].ID == target {
			return &tables.Publications[i]
		}
	}
	return nil
}

// GetPublicationLinks returns the links of one publication, ordered by the
// numeric sort column ascending. Non-numeric sort values count as 0 and so
// cluster at the start.
func GetPublicationLinks(tables types.CommunityTables, publicationID string) []types.PublicationLink {
	pid := strings.TrimSpace(publicationID)
	var out []types.PublicationLink
	for _, l := range tables.PublicationLinks {
		if l.PublicationID == pid {
			out = append(out, l)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return sheets.ToNumber(out[i].Sort, 0) < sheets.ToNumber(out[j].Sort, 0)
	})
	return out
}

// GetPublicationAuthorsOrdered resolves a publication's byline: relation
// rows filtered by publication, ordered by numeric author_order ascending
// (non-numeric first, as 0), each person id looked up against the approved
// member index. Rows whose member is missing — deleted, unapproved, or a
// typo — are silently dropped.
func GetPublicationAuthorsOrdered(tables types.CommunityTables, publicationID string) []types.AuthorEntry {
	pid := strings.TrimSpace(publicationID)

	memberByID := make(map[string]types.Member, len(tables.Members))
	for _, m := range tables.Members {
		memberByID[m.ID] = m
	}

	var rels []types.PublicationAuthor
	for _, r := range tables.PublicationAuthors {
		if r.PublicationID == pid {
			rels = append(rels, r)
		}
	}
	sort.SliceStable(rels, func(i, j int) bool {
		return sheets.ToNumber(rels[i].AuthorOrder, 0) < sheets.ToNumber(rels[j].AuthorOrder, 0)
	})

	var out []types.AuthorEntry
	for _, rel := range rels {
		m, ok := memberByID[rel.PersonID]
		if !ok {
			continue
		}
		out = append(out, types.AuthorEntry{Member: m, AuthorOrder: sheets.ToNumber(rel.AuthorOrder, 0)})
	}
	return out
}

// GetMemberPublications returns the publications a member authored, newest
// first. Unparsable publishing dates sort as the oldest.
func GetMemberPublications(tables types.CommunityTables, memberID string) []types.Publication {
	mid := strings.TrimSpace(memberID)
	wanted := make(map[string]bool)
	for _, pa := range tables.PublicationAuthors {
		if pa.PersonID == mid && pa.PublicationID != "" {
			wanted[pa.PublicationID] = true
		}
	}

	var out []types.Publication
	for _, p := range tables.Publications {
		if wanted[p.ID] {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return parseDateKey(out[i].PublishingDate) > parseDateKey(out[j].PublishingDate)
	})
	return out
}

// GetMemberAwards returns the awards a member received, newest first.
func GetMemberAwards(tables types.CommunityTables, memberID string) []types.Award {
	mid := strings.TrimSpace(memberID)
	wanted := make(map[string]bool)
	for _, ar := range tables.AwardRecipients {
		if ar.PersonID == mid && ar.AwardID != "" {
			wanted[ar.AwardID] = true
		}
	}

	var out []types.Award
	for _, a := range tables.Awards {
		if wanted[a.ID] {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return parseDateKey(out[i].AwardedDate) > parseDateKey(out[j].AwardedDate)
	})
	return out
}

// GetMemberCertificates returns the certificates a member holds, newest first.
func GetMemberCertificates(tables types.CommunityTables, memberID string) []types.Certificate {
	mid := strings.TrimSpace(memberID)
	wanted := make(map[string]bool)
	for _, ch := range tables.CertificateHolders {
		if ch.PersonID == mid && ch.CertificateID != "" {
			wanted[ch.CertificateID] = true
		}
	}

	var out []types.Certificate
	for _, c := range tables.Certificates {
		if wanted[c.ID] {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return parseDateKey(out[i].CertifiedDate) > parseDateKey(out[j].CertifiedDate)
	})
	return out
}

// BuildMemberDetail assembles the member page read model: the member plus
// their publications (each with its full byline), awards, and certificates.
// Returns nil when the member is absent or unapproved.
func BuildMemberDetail(tables types.CommunityTables, memberID string) *types.MemberDetail {
	member := GetMemberByID(tables, memberID)
	if member == nil {
		return nil
	}

	pubs := GetMemberPublications(tables, memberID)
	withAuthors := make([]types.PublicationWithAuthors, 0, len(pubs))
	for _, p := range pubs {
		entries := GetPublicationAuthorsOrdered(tables, p.ID)
		authors := make([]types.Member, 0, len(entries))
		for _, e := range entries {
			authors = append(authors, e.Member)
		}
		withAuthors = append(withAuthors, types.PublicationWithAuthors{Publication: p, Authors: authors})
	}

	return &types.MemberDetail{
		Member:       *member,
		Publications: withAuthors,
		Awards:       GetMemberAwards(tables, memberID),
		Certificates: GetMemberCertificates(tables, memberID),
	}
}

// BuildPublicationDetail assembles the publication page read model.
// Returns nil when the publication is absent or unapproved.
func BuildPublicationDetail(tables types.CommunityTables, publicationID string) *types.PublicationDetail {
	publication := GetPublicationByID(tables, publicationID)
	if publication == nil {
		return nil
	}
	return &types.PublicationDetail{
		Publication: *publication,
		Authors:     GetPublicationAuthorsOrdered(tables, publicationID),
		Links:       GetPublicationLinks(tables, publicationID),
	}
}
