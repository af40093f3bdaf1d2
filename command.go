package embedo

import (
	"strings"

	"github.com/bwmarrin/discordgo"
)

// Invocation is a single use of a command.
type Invocation struct {
	Message *discordgo.MessageCreate
	Name    string // command name as typed, lowercased
	Args    string // everything after the command name, trimmed
}

type command struct {
	Name         string                  // Name of command
	Description  string                  // Description of command for the help command
	RequiresArgs bool                    // Reject the invocation when Args is empty
	Exec         func(*Invocation) error // Function that will be executed when command is used
}

type timedMessage struct {
	Name       string             // Name of the timed message
	CronString string             // Cron-style string to determine when the Exec function is executed
	ChannelID  string             // Channel the result is sent to
	Exec       func() interface{} // Returns a string or an *Embed
}

// AddCommand will add a command that will trigger exec.
func (b *Bot) AddCommand(name, description string, requiresArgs bool, exec func(*Invocation) error) {
	name = strings.ToLower(name)
	b.commands[name] = &command{
		Name:         name,
		Description:  description,
		RequiresArgs: requiresArgs,
		Exec:         exec,
	}
	b.logger.Debug().Str("command", name).Msg("command added")
}

// AddTimedMessage will trigger exec at specific times to send a
// message to channelID.
func (b *Bot) AddTimedMessage(name, cronString, channelID string, exec func() interface{}) {
	p := &timedMessage{
		Name:       name,
		CronString: cronString,
		ChannelID:  channelID,
		Exec:       exec,
	}
	b.timedMessages = append(b.timedMessages, p)
	b.logger.Debug().Str("timed_message", name).Msg("timed message added")
}
