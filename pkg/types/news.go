// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "encoding/json"

// BlockKind discriminates the content block union.
type BlockKind string

const (
	BlockParagraph BlockKind = "paragraph"
	BlockSubhead   BlockKind = "subhead"
	BlockQuote     BlockKind = "quote"
	BlockImage     BlockKind = "image"
	BlockGallery   BlockKind = "gallery"
	BlockPDF       BlockKind = "pdf"
	BlockEmbed     BlockKind = "embed"
	BlockList      BlockKind = "list"
	BlockLinks     BlockKind = "links"
)

// Block is one article content block. The set of implementations is closed:
// every variant lives in this package and carries its kind as a JSON "type"
// discriminator when marshaled.
type Block interface {
	Kind() BlockKind
	block()
}

// ParagraphBlock is a plain text paragraph.
type ParagraphBlock struct {
	Text string `json:"text"`
}

// SubheadBlock is a section heading inside the article body.
type SubheadBlock struct {
	Text string `json:"text"`
}

// QuoteBlock is a pull quote with an optional citation.
type QuoteBlock struct {
	Text string `json:"text"`
	Cite string `json:"cite,omitempty"`
}

// ImageBlock is a single inline image. Src is Drive-normalized.
type ImageBlock struct {
	Src     string `json:"src"`
	Alt     string `json:"alt,omitempty"`
	Caption string `json:"caption,omitempty"`
	Credit  string `json:"credit,omitempty"`
}

// GalleryImage is one entry of a gallery block.
type GalleryImage struct {
	Src string `json:"src"`
	Alt string `json:"alt,omitempty"`
}

// GalleryBlock is an ordered set of images with an optional title.
type GalleryBlock struct {
	Title  string         `json:"title,omitempty"`
	Images []GalleryImage `json:"images"`
}

// PDFBlock embeds a downloadable document.
type PDFBlock struct {
	Title string `json:"title,omitempty"`
	Src   string `json:"src"`
}

// EmbedBlock embeds external content by URL. Provider defaults to "iframe".
type EmbedBlock struct {
	Title    string `json:"title,omitempty"`
	Provider string `json:"provider,omitempty"`
	URL      string `json:"url"`
}

// ListBlock is a bulleted list of plain-text items.
type ListBlock struct {
	Items []string `json:"items"`
}

// LinkItem is one entry of a links block. URL is the only mandatory field.
type LinkItem struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// LinksBlock is a titled collection of external links.
type LinksBlock struct {
	Title string     `json:"title,omitempty"`
	Items []LinkItem `json:"items"`
}

func (ParagraphBlock) Kind() BlockKind { return BlockParagraph }
func (SubheadBlock) Kind() BlockKind   { return BlockSubhead }
func (QuoteBlock) Kind() BlockKind     { return BlockQuote }
func (ImageBlock) Kind() BlockKind     { return BlockImage }
func (GalleryBlock) Kind() BlockKind   { return BlockGallery }
func (PDFBlock) Kind() BlockKind       { return BlockPDF }
func (EmbedBlock) Kind() BlockKind     { return BlockEmbed }
func (ListBlock) Kind() BlockKind      { return BlockList }
func (LinksBlock) Kind() BlockKind     { return BlockLinks }

func (ParagraphBlock) block() {}
func (SubheadBlock) block()   {}
func (QuoteBlock) block()     {}
func (ImageBlock) block()     {}
func (GalleryBlock) block()   {}
func (PDFBlock) block()       {}
func (EmbedBlock) block()     {}
func (ListBlock) block()      {}
func (LinksBlock) block()     {}

func (b ParagraphBlock) MarshalJSON() ([]byte, error) { return marshalBlock(b.Kind(), paragraphAlias(b)) }
func (b SubheadBlock) MarshalJSON() ([]byte, error)   { return marshalBlock(b.Kind(), subheadAlias(b)) }
func (b QuoteBlock) MarshalJSON() ([]byte, error)     { return marshalBlock(b.Kind(), quoteAlias(b)) }
func (b ImageBlock) MarshalJSON() ([]byte, error)     { return marshalBlock(b.Kind(), imageAlias(b)) }
func (b GalleryBlock) MarshalJSON() ([]byte, error)   { return marshalBlock(b.Kind(), galleryAlias(b)) }
func (b PDFBlock) MarshalJSON() ([]byte, error)       { return marshalBlock(b.Kind(), pdfAlias(b)) }
func (b EmbedBlock) MarshalJSON() ([]byte, error)     { return marshalBlock(b.Kind(), embedAlias(b)) }
func (b ListBlock) MarshalJSON() ([]byte, error)      { return marshalBlock(b.Kind(), listAlias(b)) }
func (b LinksBlock) MarshalJSON() ([]byte, error)     { return marshalBlock(b.Kind(), linksAlias(b)) }

// Aliases strip the MarshalJSON method so marshalBlock does not recurse.
type (
	paragraphAlias ParagraphBlock
	subheadAlias   SubheadBlock
	quoteAlias     QuoteBlock
	imageAlias     ImageBlock
	galleryAlias   GalleryBlock
	pdfAlias       PDFBlock
	embedAlias     EmbedBlock
	listAlias      ListBlock
	linksAlias     LinksBlock
)

func marshalBlock(kind BlockKind, payload any) ([]byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	head, err := json.Marshal(struct {
		Type BlockKind `json:"type"`
	}{kind})
	if err != nil {
		return nil, err
	}
	if string(raw) == "{}" {
		return head, nil
	}
	// Splice {"type":...} and the payload object together.
	out := append(head[:len(head)-1], ',')
	out = append(out, raw[1:]...)
	return out, nil
}

// NewsAuthor credits the article author.
type NewsAuthor struct {
	Name string `json:"name" yaml:"name"`
	Role string `json:"role,omitempty" yaml:"role,omitempty"`
}

// NewsHero is the optional hero image shown above the article.
type NewsHero struct {
	Image   string `json:"image,omitempty" yaml:"image,omitempty"`
	Caption string `json:"caption,omitempty" yaml:"caption,omitempty"`
	Credit  string `json:"credit,omitempty" yaml:"credit,omitempty"`
}

// NewsArticle is one article, identified by slug, with its ordered content
// blocks decoded from the news_blocks tab.
type NewsArticle struct {
	Slug        string     `json:"slug" yaml:"slug"`
	Title       string     `json:"title" yaml:"title"`
	Dek         string     `json:"dek,omitempty" yaml:"dek,omitempty"`
	Author      NewsAuthor `json:"author,omitempty" yaml:"author,omitempty"`
	PublishedAt string     `json:"published_at" yaml:"published_at"`
	UpdatedAt   string     `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
	Tags        []string   `json:"tags" yaml:"tags"`
	Hero        NewsHero   `json:"hero" yaml:"hero"`
	Links       []LinkItem `json:"links,omitempty" yaml:"links,omitempty"`
	Content     []Block    `json:"content" yaml:"-"`
}

// NewsListItem is the index-page projection of an article.
type NewsListItem struct {
	Slug        string     `json:"slug" yaml:"slug"`
	Title       string     `json:"title" yaml:"title"`
	Dek         string     `json:"dek,omitempty" yaml:"dek,omitempty"`
	Author      NewsAuthor `json:"author,omitempty" yaml:"author,omitempty"`
	PublishedAt string     `json:"published_at" yaml:"published_at"`
	Tags        []string   `json:"tags" yaml:"tags"`
	Hero        NewsHero   `json:"hero" yaml:"hero"`
}
