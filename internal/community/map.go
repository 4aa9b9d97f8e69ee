// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package community

import (
	"strings"

	"github.com/pdiddy/site-engine/internal/sheets"
	"github.com/pdiddy/site-engine/pkg/types"
)

// field reads a fixed column, trimmed. Only the members tab gets header
// aliasing (sheets.GetField); every other tab has stable headers.
func field(o map[string]string, key string) string {
	return strings.TrimSpace(o[key])
}

// safeMemberType restricts the type column to the closed set. Anything
// else, including blank, maps to "".
func safeMemberType(v string) types.MemberType {
	switch types.MemberType(strings.ToLower(strings.TrimSpace(v))) {
	case types.MemberAdmin:
		return types.MemberAdmin
	case types.MemberMember:
		return types.MemberMember
	case types.MemberAlumni:
		return types.MemberAlumni
	}
	return ""
}

// mapMember tolerates the header variants the members tab has accumulated;
// each field resolves through an alias list, first non-blank wins.
func mapMember(o map[string]string) types.Member {
	return types.Member{
		ID:                    sheets.GetField(o, "id"),
		LastName:              sheets.GetField(o, "last_name", "lastname", "last name", "surname"),
		FirstName:             sheets.GetField(o, "first_name", "firstname", "first name", "given name"),
		Image:                 sheets.NormalizeDriveImageURL(sheets.GetField(o, "image", "photo", "avatar")),
		Specialization:        sheets.GetField(o, "specialization", "specialisation"),
		Course:                sheets.GetField(o, "course"),
		GraduationAY:          sheets.GetField(o, "graduation_ay", "graduation ay", "graduation_year"),
		EducationalAttainment: sheets.GetField(o, "educational_attainment", "educational attainment", "education"),
		MemberSince:           sheets.GetField(o, "member_since", "member since", "since"),
		AssociatedInstitutes:  sheets.GetField(o, "associated_institutes", "associated institutes", "institutes"),
		Bionotes:              sheets.GetField(o, "bionotes", "bio", "biography"),
		Email:                 sheets.GetField(o, "email", "e-mail"),
		Type:                  safeMemberType(sheets.GetField(o, "type")),
		Status:                sheets.GetField(o, "status"),
	}
}

func mapPublication(o map[string]string) types.Publication {
	return types.Publication{
		ID:             field(o, "id"),
		Title:          field(o, "title"),
		PublishingDate: field(o, "publishing_date"),
		Description:    field(o, "description"),
		FieldOfStudy:   field(o, "field_of_study"),
		Abstract:       field(o, "abstract"),
		Institute:      field(o, "institute"),
		Status:         field(o, "status"),
	}
}

func mapPublicationLink(o map[string]string) types.PublicationLink {
	return types.PublicationLink{
		ID:            field(o, "id"),
		PublicationID: field(o, "publication_id"),
		Label:         field(o, "label"),
		URL:           field(o, "url"),
		Sort:          field(o, "sort"),
		Status:        field(o, "status"),
	}
}

func mapPublicationAuthor(o map[string]string) types.PublicationAuthor {
	return types.PublicationAuthor{
		ID:            field(o, "id"),
		PublicationID: field(o, "publication_id"),
		PersonID:      field(o, "person_id"),
		AuthorOrder:   field(o, "author_order"),
	}
}

func mapPresentation(o map[string]string) types.Presentation {
	return types.Presentation{
		ID:               field(o, "id"),
		Title:            field(o, "title"),
		ConferenceName:   field(o, "conference_name"),
		PresentationDate: field(o, "presentation_date"),
		Description:      field(o, "description"),
		Status:           field(o, "status"),
	}
}

func mapPresentationAuthor(o map[string]string) types.PresentationAuthor {
	return types.PresentationAuthor{
		ID:             field(o, "id"),
		PresentationID: field(o, "presentation_id"),
		PersonID:       field(o, "person_id"),
	}
}

func mapAward(o map[string]string) types.Award {
	return types.Award{
		ID:          field(o, "id"),
		Award:       field(o, "award"),
		Image:       sheets.NormalizeDriveImageURL(field(o, "image")),
		AwardedBy:   field(o, "awarded_by"),
		AwardedDate: field(o, "awarded_date"),
		Status:      field(o, "status"),
	}
}

func mapAwardRecipient(o map[string]string) types.AwardRecipient {
	return types.AwardRecipient{
		ID:       field(o, "id"),
		AwardID:  field(o, "award_id"),
		PersonID: field(o, "person_id"),
	}
}

func mapAwardPublication(o map[string]string) types.AwardPublication {
	return types.AwardPublication{
		ID:            field(o, "id"),
		AwardID:       field(o, "award_id"),
		PublicationID: field(o, "publication_id"),
	}
}

func mapCertificate(o map[string]string) types.Certificate {
	return types.Certificate{
		ID:            field(o, "id"),
		Certificate:   field(o, "certificate"),
		Image:         sheets.NormalizeDriveImageURL(field(o, "image")),
		CertifiedBy:   field(o, "certified_by"),
		CertifiedDate: field(o, "certified_date"),
		Status:        field(o, "status"),
	}
}

func mapCertificateHolder(o map[string]string) types.CertificateHolder {
	return types.CertificateHolder{
		ID:            field(o, "id"),
		CertificateID: field(o, "certificate_id"),
		PersonID:      field(o, "person_id"),
	}
}
