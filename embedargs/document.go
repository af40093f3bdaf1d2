package embedargs

// Document is the embed described by a set of arguments. It carries no
// Discord types so it can be built and inspected without a session.
type Document struct {
	Title       string
	Description string
	URL         string
	Color       *int
	Image       *Image
	Thumbnail   *Thumbnail
	Footer      *Footer
	Author      *Author
	Fields      []*Field
}

// Field is an extra named value shown in the body of the embed.
type Field struct {
	Name   string
	Value  string
	Inline bool
}

// Footer is the small text line, with an optional icon, at the bottom of the embed.
type Footer struct {
	Text    string
	IconURL string
}

// Image is the large picture shown below the description.
type Image struct {
	URL string
}

// Thumbnail is the small picture shown in the top right corner.
type Thumbnail struct {
	URL string
}

// Author is the name, link and icon shown above the title.
type Author struct {
	Name    string
	URL     string
	IconURL string
}

// NewDocument returns a new Document with no fields set
func NewDocument() *Document {
	return &Document{}
}

// SetTitle sets the Document's Title. Returns the modified Document.
func (d *Document) SetTitle(title string) *Document {
	d.Title = title
	return d
}

// SetDescription sets the Document's Description. Returns the
// modified Document.
func (d *Document) SetDescription(description string) *Document {
	d.Description = description
	return d
}

// SetURL sets the URL the title links to. Returns the modified
// Document.
func (d *Document) SetURL(url string) *Document {
	d.URL = url
	return d
}

// SetColor sets the border color of the Document. Returns the
// modified Document.
func (d *Document) SetColor(color int) *Document {
	d.Color = &color
	return d
}

// AddField appends a Field with name and value to the Document's
// Fields. Returns the modified Document.
func (d *Document) AddField(name, value string, inline bool) *Document {
	d.Fields = append(d.Fields, &Field{
		Name:   name,
		Value:  value,
		Inline: inline,
	})
	return d
}

// SetImage sets the large image shown at the bottom of the
// Document. Returns the modified Document.
func (d *Document) SetImage(url string) *Document {
	d.Image = &Image{URL: url}
	return d
}

// SetThumbnail sets the small image shown on the right of the
// Document. Returns the modified Document.
func (d *Document) SetThumbnail(url string) *Document {
	d.Thumbnail = &Thumbnail{URL: url}
	return d
}

// SetFooter replaces the Document's Footer. Either part may be
// empty. Returns the modified Document.
func (d *Document) SetFooter(text, iconURL string) *Document {
	d.Footer = &Footer{
		Text:    text,
		IconURL: iconURL,
	}
	return d
}

// SetAuthor replaces the Document's Author. Any part may be empty.
// Returns the modified Document.
func (d *Document) SetAuthor(name, url, iconURL string) *Document {
	d.Author = &Author{
		Name:    name,
		URL:     url,
		IconURL: iconURL,
	}
	return d
}
