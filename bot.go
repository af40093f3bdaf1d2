// Package embedo is a Discord bot that answers prefix commands with
// embeds built from key="value" arguments.
package embedo

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/bwmarrin/discordgo"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/anorb/embedo/embedargs"
)

// cronParser accepts standard five field expressions, an optional leading
// seconds field and descriptors such as @hourly.
var cronParser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

// Bot contains everything about the bot itself
type Bot struct {
	Config        Config
	out           messenger
	logger        zerolog.Logger
	commands      map[string]*command
	timedMessages []*timedMessage
	cooldowns     *cooldowns
	cron          *cron.Cron

	mu            sync.Mutex
	selfID        string
	timersStarted bool
}

// NewBot returns a Bot for cfg with the help, say and embed commands
// registered and the configured announcements scheduled. It fails when
// an announcement has an invalid schedule or embed.
func NewBot(cfg Config, logger zerolog.Logger) (*Bot, error) {
	b := newBot(cfg, logger)
	if err := b.addAnnouncements(); err != nil {
		return nil, err
	}
	if cfg.DefaultChannelID == "" {
		b.logger.Warn().Msg("no DefaultChannelID set in config, welcome back message will not be sent")
	}
	return b, nil
}

func newBot(cfg Config, logger zerolog.Logger) *Bot {
	b := &Bot{
		Config:    cfg,
		logger:    logger,
		commands:  make(map[string]*command),
		cooldowns: newCooldowns(time.Duration(cfg.CooldownTimer) * time.Second),
		cron:      cron.New(cron.WithLocation(time.UTC), cron.WithParser(cronParser)),
	}
	b.addBuiltinCommands()
	return b
}

func (b *Bot) addAnnouncements() error {
	for _, a := range b.Config.Announcements {
		if _, err := cronParser.Parse(a.CronString); err != nil {
			return fmt.Errorf("announcement %q: invalid schedule: %w", a.Name, err)
		}
		doc, err := embedargs.Build(a.Embed)
		if err != nil {
			return fmt.Errorf("announcement %q: invalid embed: %w", a.Name, err)
		}

		channelID := a.ChannelID
		if channelID == "" {
			channelID = b.Config.DefaultChannelID
		}
		b.AddTimedMessage(a.Name, a.CronString, channelID, func() interface{} {
			return FromDocument(doc)
		})
	}
	return nil
}

// Start opens the websocket connection and handles events until ctx is
// cancelled, then stops the timed messages and closes the session.
func (b *Bot) Start(ctx context.Context) error {
	ss, err := newSession(b.Config.Token, b.logger)
	if err != nil {
		return fmt.Errorf("error creating Discord session: %w", err)
	}
	b.out = ss

	ss.AddHandler(b.onReady)
	ss.AddHandler(b.onGuildCreate)
	ss.AddHandler(b.onMessageCreate)

	if err := ss.Open(); err != nil {
		return fmt.Errorf("error opening websocket connection: %w", err)
	}
	b.logger.Info().Msg("bot is now running")

	<-ctx.Done()

	b.logger.Info().Msg("bot is now shutting down")
	<-b.cron.Stop().Done()

	if err := ss.Close(); err != nil {
		return fmt.Errorf("error closing discord session: %w", err)
	}
	return nil
}

func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	b.mu.Lock()
	b.selfID = r.User.ID
	startTimers := !b.timersStarted
	b.timersStarted = true
	b.mu.Unlock()

	b.logger.Info().Str("user", r.User.Username).Int("guilds", len(r.Guilds)).Msg("bot is ready")

	if b.Config.WelcomeBackMessage != "" && b.Config.DefaultChannelID != "" {
		_ = b.out.SendMessage(b.Config.DefaultChannelID, b.Config.WelcomeBackMessage)
	}
	if startTimers {
		b.startTimedMessages()
	}
}

func (b *Bot) onGuildCreate(s *discordgo.Session, g *discordgo.GuildCreate) {
	b.logger.Info().Str("guild", g.Name).Str("guild_id", g.ID).Int("members", g.MemberCount).Msg("connected to guild")
}

func (b *Bot) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	// Always ignore bot users (including itself)
	if m.Author == nil || m.Author.Bot {
		return
	}

	go b.handleCommand(m)
}

func (b *Bot) botID() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.selfID
}

// respondToUser is a helper method around SendMessage that will
// mention the user who created the message.
func (b *Bot) respondToUser(m *discordgo.MessageCreate, response string) {
	_ = b.out.SendMessage(m.ChannelID, m.Author.Mention()+" "+response)
}

func (b *Bot) handleCommand(m *discordgo.MessageCreate) {
	name, args, ok := parseInvocation(m.Content, b.Config.CommandPrefix, b.botID())
	if !ok {
		return
	}
	inv := &Invocation{Message: m, Name: name, Args: args}

	com, found := b.commands[name]
	if !found {
		b.reportError(inv, errUnknownCommand)
		return
	}
	if !b.cooldowns.allow(m.Author.ID) {
		b.respondToUser(m, b.Config.CooldownMessage)
		return
	}
	if err := b.authorize(inv); err != nil {
		b.reportError(inv, err)
		return
	}
	if com.RequiresArgs && args == "" {
		b.reportError(inv, errMissingArgs)
		return
	}
	if err := com.Exec(inv); err != nil {
		b.reportError(inv, err)
		return
	}

	b.logger.Info().
		Str("command", name).
		Str("user", m.Author.Username).
		Str("guild", m.GuildID).
		Msg("command executed")
}

// parseInvocation strips the command prefix, or a mention of the bot
// followed by a space, from content and splits the rest into a lowercased command name and
// its trimmed arguments.
func parseInvocation(content, prefix, selfID string) (name, args string, ok bool) {
	rest, ok := trimPrefix(content, prefix, selfID)
	if !ok {
		return "", "", false
	}

	if i := strings.IndexFunc(rest, unicode.IsSpace); i >= 0 {
		name, args = rest[:i], strings.TrimSpace(rest[i:])
	} else {
		name = rest
	}
	if name == "" {
		return "", "", false
	}
	return strings.ToLower(name), args, true
}

func trimPrefix(content, prefix, selfID string) (string, bool) {
	if selfID != "" {
		for _, mention := range []string{"<@" + selfID + "> ", "<@!" + selfID + "> "} {
			if rest, ok := strings.CutPrefix(content, mention); ok {
				return rest, true
			}
		}
	}
	if prefix == "" {
		return "", false
	}
	return strings.CutPrefix(content, prefix)
}

// startTimedMessages schedules every timed message, plus the hourly
// cooldown sweep, and starts the scheduler.
func (b *Bot) startTimedMessages() {
	for _, p := range b.timedMessages {
		if _, err := b.cron.AddFunc(p.CronString, func() { b.sendTimedMessage(p) }); err != nil {
			b.logger.Error().Err(err).Str("timed_message", p.Name).Msg("error starting timed message")
			continue
		}
		b.logger.Info().Str("timed_message", p.Name).Str("schedule", p.CronString).Msg("timed message started")
	}

	if b.cooldowns.period > 0 {
		if _, err := b.cron.AddFunc("@hourly", func() {
			n := b.cooldowns.sweep()
			b.logger.Debug().Int("removed", n).Msg("cooldowns swept")
		}); err != nil {
			b.logger.Error().Err(err).Msg("error scheduling cooldown sweep")
		}
	}

	b.cron.Start()
}

func (b *Bot) sendTimedMessage(p *timedMessage) {
	switch v := p.Exec().(type) {
	case string:
		_ = b.out.SendMessage(p.ChannelID, v)
	case *Embed:
		_ = b.out.SendEmbed(p.ChannelID, v.MessageEmbed)
	default:
		b.logger.Warn().Str("timed_message", p.Name).Msgf("unsupported timed message result %T", v)
	}
}
