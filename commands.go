package embedo

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/anorb/embedo/embedargs"
)

const (
	rgbRangeMessage     = "Los colores en RGB no pueden tener valores por encima de 255, revisa el comando e intentalo de nuevo"
	invalidColorMessage = "El color especificado no es válido"
	commandsFieldName   = "Comandos"
)

func (b *Bot) addBuiltinCommands() {
	b.AddCommand("help", "Muestra esta ayuda", false, b.help)
	b.AddCommand("say", "Repite el texto como si lo hubiera escrito el bot", true, b.say)
	b.AddCommand("embed", "Crea un embed a partir de argumentos", true, b.embed)
}

// helpEmbed lists every recognized embed key followed by the
// registered commands.
func (b *Bot) helpEmbed() *Embed {
	e := NewEmbed().
		SetTitle("Ayuda del bot").
		SetDescription(fmt.Sprintf(embedargs.HelpIntro, b.Config.CommandPrefix)).
		SetColor(colorBlue)
	for _, k := range embedargs.KeyHelp {
		e.AddField(k.Key, k.Description, false)
	}

	var lines []string
	for _, name := range slices.Sorted(maps.Keys(b.commands)) {
		com := b.commands[name]
		lines = append(lines, fmt.Sprintf("`%s%s`: %s", b.Config.CommandPrefix, com.Name, com.Description))
	}
	e.AddField(commandsFieldName, strings.Join(lines, "\n"), false)
	return e
}

func (b *Bot) help(inv *Invocation) error {
	return b.out.SendEmbed(inv.Message.ChannelID, b.helpEmbed().MessageEmbed)
}

// say reposts the arguments as the bot and removes the original.
func (b *Bot) say(inv *Invocation) error {
	m := inv.Message
	if err := b.out.DeleteMessage(m.ChannelID, m.ID); err != nil {
		return fmt.Errorf("delete message %s: %w", m.ID, err)
	}
	return b.out.SendMessage(m.ChannelID, inv.Args)
}

// embed builds an embed from the arguments. Color mistakes are answered
// here; every other error goes back to the dispatcher.
func (b *Bot) embed(inv *Invocation) error {
	channelID := inv.Message.ChannelID

	doc, err := embedargs.Build(inv.Args)
	switch {
	case errors.Is(err, embedargs.ErrInvalidRGB):
		e := NewEmbed().SetTitle("Error").SetDescription(rgbRangeMessage).SetColor(colorRed)
		return b.out.SendEmbed(channelID, e.MessageEmbed)
	case errors.Is(err, embedargs.ErrInvalidColor):
		return b.out.SendMessage(channelID, invalidColorMessage)
	case err != nil:
		return err
	}

	if err := b.out.SendEmbed(channelID, FromDocument(doc).MessageEmbed); err != nil {
		return rejected(err)
	}
	return nil
}
