package embedo

import (
	"fmt"
	"strconv"

	"github.com/bwmarrin/discordgo"
)

const missingRoleNotice = "No existe el rol `%s`. Por favor crealo para el correcto funcionamiento del bot o contacta a un administrador."

// authorize allows inv only when the author's top role ranks at or
// above the role named Config.AdminRole. A guild without that role gets
// a notice and every command is denied.
func (b *Bot) authorize(inv *Invocation) error {
	m := inv.Message
	if m.GuildID == "" {
		return errNotAuthorized
	}

	roles, err := b.out.GuildRoles(m.GuildID)
	if err != nil {
		return fmt.Errorf("look up roles of guild %s: %w", m.GuildID, err)
	}

	gate := findRole(roles, b.Config.AdminRole)
	if gate == nil {
		_ = b.out.SendMessage(m.ChannelID, fmt.Sprintf(missingRoleNotice, b.Config.AdminRole))
		return errNotAuthorized
	}

	var held []string
	if m.Member != nil {
		held = m.Member.Roles
	} else {
		held, err = b.out.MemberRoles(m.GuildID, m.Author.ID)
		if err != nil {
			return fmt.Errorf("look up roles of member %s: %w", m.Author.ID, err)
		}
	}

	top := topRole(roles, held, m.GuildID)
	if top == nil || roleBelow(top, gate, m.GuildID) {
		return errNotAuthorized
	}
	return nil
}

func findRole(roles []*discordgo.Role, name string) *discordgo.Role {
	for _, r := range roles {
		if r.Name == name {
			return r
		}
	}
	return nil
}

// topRole returns the highest ranked role among held, or the @everyone
// role when the member holds none.
func topRole(roles []*discordgo.Role, held []string, guildID string) *discordgo.Role {
	ids := make(map[string]struct{}, len(held)+1)
	for _, id := range held {
		ids[id] = struct{}{}
	}
	ids[guildID] = struct{}{}

	var top *discordgo.Role
	for _, r := range roles {
		if _, ok := ids[r.ID]; !ok {
			continue
		}
		if top == nil || roleBelow(top, r, guildID) {
			top = r
		}
	}
	return top
}

// roleBelow reports whether a ranks strictly below b. @everyone (whose
// ID is the guild ID) is always lowest, then position decides, and on
// equal position the older role (lower snowflake) ranks higher.
func roleBelow(a, b *discordgo.Role, guildID string) bool {
	if a.ID == guildID {
		return b.ID != guildID
	}
	if b.ID == guildID {
		return false
	}
	if a.Position != b.Position {
		return a.Position < b.Position
	}
	return snowflake(a.ID) > snowflake(b.ID)
}

func snowflake(id string) uint64 {
	n, _ := strconv.ParseUint(id, 10, 64)
	return n
}
