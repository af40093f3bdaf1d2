package embedo

import (
	"github.com/bwmarrin/discordgo"

	"github.com/anorb/embedo/embedargs"
)

const (
	embedLimitTitle       = 256
	embedLimitDescription = 4096
	embedLimitFieldValue  = 1024
	embedLimitFieldName   = 256
	embedLimitFooter      = 2048
	embedLimitAuthor      = 256
)

const (
	colorRed  = 0xe74c3c
	colorBlue = 0x3498db
)

// Embed is a wrapper around *discordgo.MessageEmbed
type Embed struct {
	*discordgo.MessageEmbed
}

// NewEmbed returns a new Embed with no fields set
func NewEmbed() *Embed {
	return &Embed{&discordgo.MessageEmbed{}}
}

// FromDocument converts a Document produced by embedargs into an
// Embed, truncating text that is longer than Discord allows. Fields
// are never dropped.
func FromDocument(d *embedargs.Document) *Embed {
	e := NewEmbed().SetTitle(d.Title).SetDescription(d.Description).SetURL(d.URL)

	if d.Color != nil {
		e.SetColor(*d.Color)
	}
	if d.Footer != nil {
		e.SetFooter(d.Footer.Text, d.Footer.IconURL)
	}
	if d.Image != nil {
		e.SetImage(d.Image.URL)
	}
	if d.Thumbnail != nil {
		e.SetThumbnail(d.Thumbnail.URL)
	}
	if d.Author != nil {
		e.SetAuthor(d.Author.Name, d.Author.IconURL, d.Author.URL)
	}
	for _, f := range d.Fields {
		e.AddField(f.Name, f.Value, f.Inline)
	}
	return e
}

// SetTitle sets the Embed's Title to title. Will truncate title if it
// is too long. Returns the modified Embed.
func (e *Embed) SetTitle(title string) *Embed {
	e.Title = truncate(title, embedLimitTitle)
	return e
}

// SetDescription sets the Embed's Description to description. Will
// truncate description if it is too long. Returns the modified Embed.
func (e *Embed) SetDescription(description string) *Embed {
	e.Description = truncate(description, embedLimitDescription)
	return e
}

// AddField creates an EmbedField with name and value and adds it to
// to the Embed's Fields slice. The value and name will be truncated if
// they are too long. Returns the modified Embed.
func (e *Embed) AddField(name, value string, inline bool) *Embed {
	e.Fields = append(e.Fields, &discordgo.MessageEmbedField{
		Name:   truncate(name, embedLimitFieldName),
		Value:  truncate(value, embedLimitFieldValue),
		Inline: inline,
	})
	return e
}

// SetFooter creates an EmbedFooter and applies it to the Embed's
// Footer. If text is too long, it will be truncated. Returns the
// modified Embed.
func (e *Embed) SetFooter(text, iconURL string) *Embed {
	e.Footer = &discordgo.MessageEmbedFooter{
		Text:    truncate(text, embedLimitFooter),
		IconURL: iconURL,
	}
	return e
}

// SetImage creates an EmbedImage and applies it to the Embed's
// image. Returns the modified Embed.
func (e *Embed) SetImage(url string) *Embed {
	e.Image = &discordgo.MessageEmbedImage{URL: url}
	return e
}

// SetThumbnail creates an EmbedThumbnail and applies it to the
// Embed's Thumbnail field. Returns the modified Embed.
func (e *Embed) SetThumbnail(url string) *Embed {
	e.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: url}
	return e
}

// SetAuthor creates an EmbedAuthor and applies it to the Embed's
// Author field. Will truncate name if it's too long. Returns the
// modified Embed.
func (e *Embed) SetAuthor(name, iconURL, url string) *Embed {
	e.Author = &discordgo.MessageEmbedAuthor{
		Name:    truncate(name, embedLimitAuthor),
		IconURL: iconURL,
		URL:     url,
	}
	return e
}

// SetURL sets the URL of the Embed. Returns the modified Embed.
func (e *Embed) SetURL(url string) *Embed {
	e.URL = url
	return e
}

// SetColor sets the border color of the Embed. Returns the modified
// Embed.
func (e *Embed) SetColor(color int) *Embed {
	e.Color = color
	return e
}

// truncate cuts s to at most limit characters.
func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit])
}
