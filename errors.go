package embedo

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"

	"github.com/anorb/embedo/embedargs"
)

var (
	errUnknownCommand = errors.New("unknown command")
	errNotAuthorized  = errors.New("not authorized")
	errMissingArgs    = errors.New("missing arguments")
)

const errorTitle = "Ha ocurrido un error :("

// sendError is a message the bot built that Discord refused, which in
// practice means one of the user supplied URLs was not accepted.
type sendError struct {
	err error
}

func (e *sendError) Error() string { return "discord rejected message: " + e.err.Error() }

func (e *sendError) Unwrap() error { return e.err }

// rejected wraps err in a sendError when it is a REST error from
// Discord and returns it unchanged otherwise.
func rejected(err error) error {
	var rerr *discordgo.RESTError
	if errors.As(err, &rerr) {
		return &sendError{err: err}
	}
	return err
}

func isBadValue(err error) bool {
	var perr *embedargs.ParseError
	return errors.As(err, &perr) || errors.Is(err, embedargs.ErrMalformedColor)
}

// reportError tells the user why inv failed. Errors that fall in no
// known category are shown in full and logged with an incident ID so
// the operator can find them.
func (b *Bot) reportError(inv *Invocation, err error) {
	var serr *sendError
	e := NewEmbed().SetTitle(errorTitle).SetColor(colorRed)

	switch {
	case errors.Is(err, errUnknownCommand):
		e.SetDescription(fmt.Sprintf("El comando `%s` no existe", inv.Name))
	case errors.Is(err, errNotAuthorized):
		e.SetDescription(fmt.Sprintf("No tienes permiso para ejecutar el comando `%s`", inv.Name))
	case errors.Is(err, errMissingArgs):
		e.SetDescription("Faltan argumentos, revisa el comando y vuelve a intentarlo")
	case isBadValue(err):
		e.SetDescription("Revisa los argumentos del comando, debe haber algo mal")
	case errors.As(err, &serr):
		e.SetDescription("La URL especificada es inválida")
	default:
		incident := uuid.NewString()
		e.SetDescription(fmt.Sprintf("Error desconocido:\n||`%v`||", err)).SetFooter("Incidente "+incident, "")
		b.logger.Error().
			Err(err).
			Str("incident", incident).
			Str("command", inv.Name).
			Str("guild", inv.Message.GuildID).
			Str("user", inv.Message.Author.ID).
			Msg("unhandled command error")
		_ = b.out.SendEmbed(inv.Message.ChannelID, e.MessageEmbed)
		return
	}

	b.logger.Debug().Err(err).Str("command", inv.Name).Msg("command failed")
	_ = b.out.SendEmbed(inv.Message.ChannelID, e.MessageEmbed)
}
