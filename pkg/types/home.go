// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// HomeImage is a captioned image used by the home page sections.
type HomeImage struct {
	Src string `json:"src" yaml:"src"`
	Alt string `json:"alt" yaml:"alt"`
}

// HomeStat is one headline figure in the about section.
type HomeStat struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}

// FocusBlock is one research-focus teaser in the about section.
type FocusBlock struct {
	Title string `json:"title" yaml:"title"`
	Body  string `json:"body" yaml:"body"`
}

// ContactLink is one external link in the contact card.
type ContactLink struct {
	Label string `json:"label" yaml:"label"`
	Href  string `json:"href" yaml:"href"`
}

// HomeContact holds the contact card copy.
type HomeContact struct {
	Eyebrow       string        `json:"eyebrow" yaml:"eyebrow"`
	EmailLabel    string        `json:"email_label" yaml:"email_label"`
	Email         string        `json:"email" yaml:"email"`
	LocationLabel string        `json:"location_label" yaml:"location_label"`
	Location      string        `json:"location" yaml:"location"`
	AddressLabel  string        `json:"address_label" yaml:"address_label"`
	Address       string        `json:"address" yaml:"address"`
	Links         []ContactLink `json:"links" yaml:"links"`
}

// HomeAbout is the about section of the home page, assembled from the home
// meta tab plus the about_* tabs.
type HomeAbout struct {
	Eyebrow     string       `json:"eyebrow" yaml:"eyebrow"`
	Title       string       `json:"title" yaml:"title"`
	Subtitle    string       `json:"subtitle" yaml:"subtitle"`
	Bullets     []string     `json:"bullets" yaml:"bullets"`
	Stats       []HomeStat   `json:"stats" yaml:"stats"`
	Images      []HomeImage  `json:"images" yaml:"images"`
	FocusBlocks []FocusBlock `json:"focus_blocks" yaml:"focus_blocks"`
	Contact     HomeContact  `json:"contact" yaml:"contact"`
}

// HomeGallery is the gallery strip of the home news section.
type HomeGallery struct {
	Eyebrow  string      `json:"eyebrow" yaml:"eyebrow"`
	Subtitle string      `json:"subtitle" yaml:"subtitle"`
	Images   []HomeImage `json:"images" yaml:"images"`
}

// HomeNews is the news section copy of the home page.
type HomeNews struct {
	Eyebrow      string      `json:"eyebrow" yaml:"eyebrow"`
	Title        string      `json:"title" yaml:"title"`
	Subtitle     string      `json:"subtitle" yaml:"subtitle"`
	ViewAllLabel string      `json:"view_all_label" yaml:"view_all_label"`
	Gallery      HomeGallery `json:"gallery" yaml:"gallery"`
}
