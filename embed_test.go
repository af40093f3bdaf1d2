package embedo

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anorb/embedo/embedargs"
)

func TestFromDocument(t *testing.T) {
	d := embedargs.NewDocument().
		SetTitle("t").
		SetDescription("d").
		SetURL("https://example.com").
		SetColor(0x123456).
		SetImage("https://example.com/i.png").
		SetThumbnail("https://example.com/t.png").
		SetFooter("f", "https://example.com/f.png").
		SetAuthor("a", "https://example.com/a", "https://example.com/a.png").
		AddField("k", "v", false)

	e := FromDocument(d)

	assert.Equal(t, &discordgo.MessageEmbed{
		Title:       "t",
		Description: "d",
		URL:         "https://example.com",
		Color:       0x123456,
		Image:       &discordgo.MessageEmbedImage{URL: "https://example.com/i.png"},
		Thumbnail:   &discordgo.MessageEmbedThumbnail{URL: "https://example.com/t.png"},
		Footer:      &discordgo.MessageEmbedFooter{Text: "f", IconURL: "https://example.com/f.png"},
		Author: &discordgo.MessageEmbedAuthor{
			Name:    "a",
			URL:     "https://example.com/a",
			IconURL: "https://example.com/a.png",
		},
		Fields: []*discordgo.MessageEmbedField{{Name: "k", Value: "v"}},
	}, e.MessageEmbed)
}

func TestFromEmptyDocument(t *testing.T) {
	e := FromDocument(embedargs.NewDocument())
	assert.Equal(t, &discordgo.MessageEmbed{}, e.MessageEmbed)
}

func TestFromDocumentKeepsEveryField(t *testing.T) {
	d := embedargs.NewDocument()
	for i := 0; i < 30; i++ {
		d.AddField("k", "v", false)
	}
	assert.Len(t, FromDocument(d).Fields, 30)
}

func TestEmbedTruncation(t *testing.T) {
	long := strings.Repeat("ñ", 5000)

	e := NewEmbed().
		SetTitle(long).
		SetDescription(long).
		SetFooter(long, "").
		SetAuthor(long, "", "").
		AddField(long, long, true)

	assert.Equal(t, embedLimitTitle, utf8.RuneCountInString(e.Title))
	assert.Equal(t, embedLimitDescription, utf8.RuneCountInString(e.Description))
	assert.Equal(t, embedLimitFooter, utf8.RuneCountInString(e.Footer.Text))
	assert.Equal(t, embedLimitAuthor, utf8.RuneCountInString(e.Author.Name))
	require.Len(t, e.Fields, 1)
	assert.Equal(t, embedLimitFieldName, utf8.RuneCountInString(e.Fields[0].Name))
	assert.Equal(t, embedLimitFieldValue, utf8.RuneCountInString(e.Fields[0].Value))
	assert.True(t, utf8.ValidString(e.Title))
	assert.True(t, e.Fields[0].Inline)
}
