// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// MemberType classifies a community member. Any value outside the closed
// set normalizes to the empty string during mapping.
type MemberType string

const (
	MemberAdmin  MemberType = "admin"
	MemberMember MemberType = "member"
	MemberAlumni MemberType = "alumni"
)

// Member holds one row of the members tab.
type Member struct {
	// ID is the spreadsheet-assigned identifier relation rows point at.
	ID string `json:"id" yaml:"id"`

	LastName  string `json:"last_name" yaml:"last_name"`
	FirstName string `json:"first_name" yaml:"first_name"`

	// Image is the profile image URL, already Drive-normalized.
	Image string `json:"image" yaml:"image"`

	Specialization        string `json:"specialization" yaml:"specialization"`
	Course                string `json:"course" yaml:"course"`
	GraduationAY          string `json:"graduation_ay" yaml:"graduation_ay"`
	EducationalAttainment string `json:"educational_attainment" yaml:"educational_attainment"`
	MemberSince           string `json:"member_since" yaml:"member_since"`
	AssociatedInstitutes  string `json:"associated_institutes" yaml:"associated_institutes"`
	Bionotes              string `json:"bionotes" yaml:"bionotes"`
	Email                 string `json:"email" yaml:"email"`

	// Type is admin, member, alumni, or "" when the sheet holds anything else.
	Type MemberType `json:"type" yaml:"type"`

	// Status gates visibility; only "approved" rows survive mapping.
	Status string `json:"status" yaml:"status"`
}

// Publication holds one row of the publications tab.
type Publication struct {
	ID             string `json:"id" yaml:"id"`
	Title          string `json:"title" yaml:"title"`
	PublishingDate string `json:"publishing_date" yaml:"publishing_date"`
	Description    string `json:"description" yaml:"description"`
	FieldOfStudy   string `json:"field_of_study" yaml:"field_of_study"`
	Abstract       string `json:"abstract" yaml:"abstract"`
	Institute      string `json:"institute" yaml:"institute"`
	Status         string `json:"status" yaml:"status"`
}

// PublicationLink is an external link attached to a publication.
type PublicationLink struct {
	ID            string `json:"id" yaml:"id"`
	PublicationID string `json:"publication_id" yaml:"publication_id"`
	Label         string `json:"label" yaml:"label"`
	URL           string `json:"url" yaml:"url"`

	// Sort keeps the sheet's string form; compare numerically when ordering.
	Sort   string `json:"sort" yaml:"sort"`
	Status string `json:"status" yaml:"status"`
}

// PublicationAuthor links a publication to a member. Foreign keys are plain
// id strings; a dangling reference is dropped at join time.
type PublicationAuthor struct {
	ID            string `json:"id" yaml:"id"`
	PublicationID string `json:"publication_id" yaml:"publication_id"`
	PersonID      string `json:"person_id" yaml:"person_id"`

	// AuthorOrder keeps the sheet's string form; non-numeric sorts as 0.
	AuthorOrder string `json:"author_order" yaml:"author_order"`
}

// Presentation holds one row of the presentations tab.
type Presentation struct {
	ID               string `json:"id" yaml:"id"`
	Title            string `json:"title" yaml:"title"`
	ConferenceName   string `json:"conference_name" yaml:"conference_name"`
	PresentationDate string `json:"presentation_date" yaml:"presentation_date"`
	Description      string `json:"description" yaml:"description"`
	Status           string `json:"status" yaml:"status"`
}

// PresentationAuthor links a presentation to a member.
type PresentationAuthor struct {
	ID             string `json:"id" yaml:"id"`
	PresentationID string `json:"presentation_id" yaml:"presentation_id"`
	PersonID       string `json:"person_id" yaml:"person_id"`
}

// Award holds one row of the awards tab.
type Award struct {
	ID          string `json:"id" yaml:"id"`
	Award       string `json:"award" yaml:"award"`
	Image       string `json:"image" yaml:"image"`
	AwardedBy   string `json:"awarded_by" yaml:"awarded_by"`
	AwardedDate string `json:"awarded_date" yaml:"awarded_date"`
	Status      string `json:"status" yaml:"status"`
}

// AwardRecipient links an award to a member.
type AwardRecipient struct {
	ID       string `json:"id" yaml:"id"`
	AwardID  string `json:"award_id" yaml:"award_id"`
	PersonID string `json:"person_id" yaml:"person_id"`
}

// AwardPublication links an award to a publication.
type AwardPublication struct {
	ID            string `json:"id" yaml:"id"`
	AwardID       string `json:"award_id" yaml:"award_id"`
	PublicationID string `json:"publication_id" yaml:"publication_id"`
}

// Certificate holds one row of the certificates tab.
type Certificate struct {
	ID            string `json:"id" yaml:"id"`
	Certificate   string `json:"certificate" yaml:"certificate"`
	Image         string `json:"image" yaml:"image"`
	CertifiedBy   string `json:"certified_by" yaml:"certified_by"`
	CertifiedDate string `json:"certified_date" yaml:"certified_date"`
	Status        string `json:"status" yaml:"status"`
}

// CertificateHolder links a certificate to a member.
type CertificateHolder struct {
	ID            string `json:"id" yaml:"id"`
	CertificateID string `json:"certificate_id" yaml:"certificate_id"`
	PersonID      string `json:"person_id" yaml:"person_id"`
}

// CommunityTables holds every tab the community pages read, already mapped,
// approved-filtered where a status column exists, and with members sorted.
type CommunityTables struct {
	Members             []Member             `json:"members" yaml:"members"`
	Publications        []Publication        `json:"publications" yaml:"publications"`
	PublicationLinks    []PublicationLink    `json:"publication_links" yaml:"publication_links"`
	PublicationAuthors  []PublicationAuthor  `json:"publication_authors" yaml:"publication_authors"`
	Presentations       []Presentation       `json:"presentations" yaml:"presentations"`
	PresentationAuthors []PresentationAuthor `json:"presentation_authors" yaml:"presentation_authors"`
	Awards              []Award              `json:"awards" yaml:"awards"`
	AwardRecipients     []AwardRecipient     `json:"award_recipients" yaml:"award_recipients"`
	AwardPublications   []AwardPublication   `json:"award_publications" yaml:"award_publications"`
	Certificates        []Certificate        `json:"certificates" yaml:"certificates"`
	CertificateHolders  []CertificateHolder  `json:"certificate_holders" yaml:"certificate_holders"`
}

// AuthorEntry pairs a resolved author with their position in the byline.
type AuthorEntry struct {
	Member      Member  `json:"member" yaml:"member"`
	AuthorOrder float64 `json:"author_order" yaml:"author_order"`
}

// PublicationWithAuthors is a publication denormalized with its byline.
type PublicationWithAuthors struct {
	Publication `yaml:",inline"`
	Authors     []Member `json:"authors" yaml:"authors"`
}

// MemberDetail is the fully joined read model for one member page.
type MemberDetail struct {
	Member       Member                   `json:"member" yaml:"member"`
	Publications []PublicationWithAuthors `json:"publications" yaml:"publications"`
	Awards       []Award                  `json:"awards" yaml:"awards"`
	Certificates []Certificate            `json:"certificates" yaml:"certificates"`
}

// PublicationDetail is the fully joined read model for one publication page.
type PublicationDetail struct {
	Publication Publication       `json:"publication" yaml:"publication"`
	Authors     []AuthorEntry     `json:"authors" yaml:"authors"`
	Links       []PublicationLink `json:"links" yaml:"links"`
}

// MemberBuckets partitions the roster by member type. Blank types land in
// Members (the sheet historically left the column empty for regulars).
type MemberBuckets struct {
	Admins  []Member `json:"admins" yaml:"admins"`
	Members []Member `json:"members" yaml:"members"`
	Alumni  []Member `json:"alumni" yaml:"alumni"`
}
