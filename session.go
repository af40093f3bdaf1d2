package embedo

import (
	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
)

// messenger is the part of a Discord session the commands use.
type messenger interface {
	SendMessage(channelID, message string) error
	SendEmbed(channelID string, embed *discordgo.MessageEmbed) error
	DeleteMessage(channelID, messageID string) error
	GuildRoles(guildID string) ([]*discordgo.Role, error)
	MemberRoles(guildID, userID string) ([]string, error)
}

type session struct {
	*discordgo.Session
	logger zerolog.Logger
}

var _ messenger = (*session)(nil)

func newSession(token string, logger zerolog.Logger) (*session, error) {
	ss := &session{logger: logger}
	var err error
	ss.Session, err = discordgo.New("Bot " + token)
	if err != nil {
		return nil, err
	}
	ss.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsMessageContent
	return ss, nil
}

// SendMessage is a helper function around ChannelMessageSend from
// discordgo. It will send a message to a given channel.
func (ss *session) SendMessage(channelID string, message string) error {
	_, err := ss.ChannelMessageSend(channelID, message)
	if err != nil {
		ss.logger.Error().Err(err).Str("channel", channelID).Msg("failed to send message response")
	}
	return err
}

// SendEmbed is a helper function around ChannelMessageSendEmbed from
// discordgo. It will send an embed message to a given channel.
func (ss *session) SendEmbed(channelID string, embed *discordgo.MessageEmbed) error {
	_, err := ss.ChannelMessageSendEmbed(channelID, embed)
	if err != nil {
		ss.logger.Error().Err(err).Str("channel", channelID).Msg("failed to send embed message response")
	}
	return err
}

// DeleteMessage removes a message from a channel.
func (ss *session) DeleteMessage(channelID, messageID string) error {
	err := ss.ChannelMessageDelete(channelID, messageID)
	if err != nil {
		ss.logger.Error().Err(err).Str("channel", channelID).Str("message", messageID).Msg("failed to delete message")
	}
	return err
}

// GuildRoles returns the roles of a guild, from the state cache when
// possible.
func (ss *session) GuildRoles(guildID string) ([]*discordgo.Role, error) {
	if g, err := ss.State.Guild(guildID); err == nil && len(g.Roles) > 0 {
		return g.Roles, nil
	}
	return ss.Session.GuildRoles(guildID)
}

// MemberRoles returns the role IDs held by a guild member.
func (ss *session) MemberRoles(guildID, userID string) ([]string, error) {
	if m, err := ss.State.Member(guildID, userID); err == nil {
		return m.Roles, nil
	}
	m, err := ss.GuildMember(guildID, userID)
	if err != nil {
		return nil, err
	}
	return m.Roles, nil
}
