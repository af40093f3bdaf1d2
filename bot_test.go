package embedo

import (
	"errors"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anorb/embedo/embedargs"
)

const (
	testGuild   = "100"
	testChannel = "c1"
	testSelf    = "999"
)

type sentMessage struct {
	ChannelID string
	Content   string
}

type sentEmbed struct {
	ChannelID string
	Embed     *discordgo.MessageEmbed
}

type fakeMessenger struct {
	mu          sync.Mutex
	messages    []sentMessage
	embeds      []sentEmbed
	deleted     []string
	roles       []*discordgo.Role
	memberRoles map[string][]string

	failEmbeds int
	embedErr   error
	deleteErr  error
}

func (f *fakeMessenger) SendMessage(channelID, message string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.messages = append(f.messages, sentMessage{channelID, message})
	return nil
}

func (f *fakeMessenger) SendEmbed(channelID string, embed *discordgo.MessageEmbed) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.embeds = append(f.embeds, sentEmbed{channelID, embed})
	if f.failEmbeds > 0 {
		f.failEmbeds--
		return f.embedErr
	}
	return nil
}

func (f *fakeMessenger) DeleteMessage(channelID, messageID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, messageID)
	return nil
}

func (f *fakeMessenger) GuildRoles(guildID string) ([]*discordgo.Role, error) {
	return f.roles, nil
}

func (f *fakeMessenger) MemberRoles(guildID, userID string) ([]string, error) {
	return f.memberRoles[userID], nil
}

func testRoles() []*discordgo.Role {
	return []*discordgo.Role{
		{ID: testGuild, Name: "@everyone", Position: 0},
		{ID: "400", Name: "member", Position: 1},
		{ID: "200", Name: "*", Position: 2},
		{ID: "300", Name: "mod", Position: 3},
	}
}

func testBot(out *fakeMessenger) *Bot {
	cfg := getDefaultConfig()
	cfg.Token = "test"
	cfg.CooldownTimer = 0

	b := newBot(cfg, zerolog.Nop())
	b.out = out
	b.selfID = testSelf
	return b
}

func newMessage(content string, roles ...string) *discordgo.MessageCreate {
	return &discordgo.MessageCreate{Message: &discordgo.Message{
		ID:        "m1",
		ChannelID: testChannel,
		GuildID:   testGuild,
		Content:   content,
		Author:    &discordgo.User{ID: "u1", Username: "ana"},
		Member:    &discordgo.Member{Roles: roles},
	}}
}

func TestParseInvocation(t *testing.T) {
	tests := []struct {
		content  string
		wantName string
		wantArgs string
		wantOK   bool
	}{
		{"--help", "help", "", true},
		{"--EMBED title=\"a\"", "embed", `title="a"`, true},
		{"--say   hola  mundo  ", "say", "hola  mundo", true},
		{"-- say hola", "", "", false},
		{"--say\nlinea", "say", "linea", true},
		{"<@999> help", "help", "", true},
		{"<@!999> say hi", "say", "hi", true},
		{"<@!999>say hi", "", "", false},
		{"<@123> help", "", "", false},
		{"--", "", "", false},
		{"hola --help", "", "", false},
		{"", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.content, func(t *testing.T) {
			name, args, ok := parseInvocation(tt.content, "--", testSelf)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestEmbedCommand(t *testing.T) {
	out := &fakeMessenger{roles: testRoles()}
	b := testBot(out)

	b.handleCommand(newMessage(`--embed title="Hola" description="hi there" custom="x" color="255,0,0"`, "300"))

	require.Len(t, out.embeds, 1)
	e := out.embeds[0].Embed
	assert.Equal(t, testChannel, out.embeds[0].ChannelID)
	assert.Equal(t, "Hola", e.Title)
	assert.Equal(t, "hi there", e.Description)
	assert.Equal(t, 0xFF0000, e.Color)
	require.Len(t, e.Fields, 1)
	assert.Equal(t, &discordgo.MessageEmbedField{Name: "custom", Value: "x"}, e.Fields[0])
	assert.Empty(t, out.messages)
}

func TestEmbedCommandColorErrors(t *testing.T) {
	out := &fakeMessenger{roles: testRoles()}
	b := testBot(out)

	b.handleCommand(newMessage(`--embed title="a" color="256,0,0"`, "300"))
	require.Len(t, out.embeds, 1)
	assert.Equal(t, "Error", out.embeds[0].Embed.Title)
	assert.Equal(t, rgbRangeMessage, out.embeds[0].Embed.Description)
	assert.Equal(t, colorRed, out.embeds[0].Embed.Color)

	b.handleCommand(newMessage(`--embed color="notacolor"`, "300"))
	require.Len(t, out.embeds, 1)
	require.Len(t, out.messages, 1)
	assert.Equal(t, invalidColorMessage, out.messages[0].Content)
}

func TestHandleCommandErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		roles   []string
		want    string
	}{
		{"unknown command", "--nope", []string{"300"}, "El comando `nope` no existe"},
		{"missing args", "--embed", []string{"300"}, "Faltan argumentos, revisa el comando y vuelve a intentarlo"},
		{"missing args only spaces", "--say    ", []string{"300"}, "Faltan argumentos, revisa el comando y vuelve a intentarlo"},
		{"rank too low", `--embed title="a"`, []string{"400"}, "No tienes permiso para ejecutar el comando `embed`"},
		{"no roles", "--help", nil, "No tienes permiso para ejecutar el comando `help`"},
		{"unbalanced quotes", `--embed title="a`, []string{"300"}, "Revisa los argumentos del comando, debe haber algo mal"},
		{"no separator", `--embed title`, []string{"300"}, "Revisa los argumentos del comando, debe haber algo mal"},
		{"malformed color", `--embed color="1,2"`, []string{"300"}, "Revisa los argumentos del comando, debe haber algo mal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := &fakeMessenger{roles: testRoles()}
			b := testBot(out)

			b.handleCommand(newMessage(tt.content, tt.roles...))

			require.Len(t, out.embeds, 1)
			assert.Equal(t, errorTitle, out.embeds[0].Embed.Title)
			assert.Equal(t, tt.want, out.embeds[0].Embed.Description)
			assert.Equal(t, colorRed, out.embeds[0].Embed.Color)
		})
	}
}

func TestGateRoleAtSameRankIsAllowed(t *testing.T) {
	out := &fakeMessenger{roles: testRoles()}
	b := testBot(out)

	b.handleCommand(newMessage("--help", "200"))

	require.Len(t, out.embeds, 1)
	assert.Equal(t, "Ayuda del bot", out.embeds[0].Embed.Title)
}

func TestMissingGateRole(t *testing.T) {
	out := &fakeMessenger{roles: []*discordgo.Role{{ID: testGuild, Name: "@everyone"}}}
	b := testBot(out)

	b.handleCommand(newMessage("--help"))

	require.Len(t, out.messages, 1)
	assert.Contains(t, out.messages[0].Content, "No existe el rol `*`")
	require.Len(t, out.embeds, 1)
	assert.Equal(t, "No tienes permiso para ejecutar el comando `help`", out.embeds[0].Embed.Description)
}

func TestDirectMessagesAreDenied(t *testing.T) {
	out := &fakeMessenger{roles: testRoles()}
	b := testBot(out)

	m := newMessage("--help", "300")
	m.GuildID = ""
	b.handleCommand(m)

	require.Len(t, out.embeds, 1)
	assert.Equal(t, "No tienes permiso para ejecutar el comando `help`", out.embeds[0].Embed.Description)
}

func TestMemberRolesLookup(t *testing.T) {
	out := &fakeMessenger{roles: testRoles(), memberRoles: map[string][]string{"u1": {"300"}}}
	b := testBot(out)

	m := newMessage("--help")
	m.Member = nil
	b.handleCommand(m)

	require.Len(t, out.embeds, 1)
	assert.Equal(t, "Ayuda del bot", out.embeds[0].Embed.Title)
}

func TestHelpCommand(t *testing.T) {
	out := &fakeMessenger{roles: testRoles()}
	b := testBot(out)

	b.handleCommand(newMessage("<@999> help", "300"))

	require.Len(t, out.embeds, 1)
	e := out.embeds[0].Embed
	assert.Equal(t, colorBlue, e.Color)
	assert.Contains(t, e.Description, "--embed")
	require.Len(t, e.Fields, len(embedargs.KeyHelp)+1)
	for i, k := range embedargs.KeyHelp {
		assert.Equal(t, k.Key, e.Fields[i].Name)
		assert.False(t, e.Fields[i].Inline)
	}

	commands := e.Fields[len(e.Fields)-1]
	assert.Equal(t, commandsFieldName, commands.Name)
	assert.Equal(t, "`--embed`: Crea un embed a partir de argumentos\n"+
		"`--help`: Muestra esta ayuda\n"+
		"`--say`: Repite el texto como si lo hubiera escrito el bot", commands.Value)
}

func TestSayCommand(t *testing.T) {
	out := &fakeMessenger{roles: testRoles()}
	b := testBot(out)

	b.handleCommand(newMessage("--say hola a todos", "300"))

	assert.Equal(t, []string{"m1"}, out.deleted)
	assert.Equal(t, []sentMessage{{testChannel, "hola a todos"}}, out.messages)
	assert.Empty(t, out.embeds)
}

func TestUnknownErrorIsShownWithIncident(t *testing.T) {
	out := &fakeMessenger{roles: testRoles(), deleteErr: errors.New("boom")}
	b := testBot(out)

	b.handleCommand(newMessage("--say hola", "300"))

	assert.Empty(t, out.messages)
	require.Len(t, out.embeds, 1)
	e := out.embeds[0].Embed
	assert.True(t, strings.HasPrefix(e.Description, "Error desconocido:\n||`"))
	assert.Contains(t, e.Description, "boom")
	require.NotNil(t, e.Footer)
	assert.True(t, strings.HasPrefix(e.Footer.Text, "Incidente "))
}

func TestRejectedEmbedReportsBadURL(t *testing.T) {
	restErr := &discordgo.RESTError{
		Response:     &http.Response{Status: "400 Bad Request", StatusCode: http.StatusBadRequest},
		ResponseBody: []byte(`{"message": "Invalid Form Body"}`),
	}
	out := &fakeMessenger{roles: testRoles(), failEmbeds: 1, embedErr: restErr}
	b := testBot(out)

	b.handleCommand(newMessage(`--embed image="nope"`, "300"))

	require.Len(t, out.embeds, 2)
	assert.Equal(t, "La URL especificada es inválida", out.embeds[1].Embed.Description)
}

func TestCooldown(t *testing.T) {
	out := &fakeMessenger{roles: testRoles()}
	b := testBot(out)
	b.cooldowns = newCooldowns(time.Minute)
	b.Config.CooldownMessage = "espera"

	b.handleCommand(newMessage("--help", "300"))
	b.handleCommand(newMessage("--help", "300"))

	require.Len(t, out.embeds, 1)
	require.Len(t, out.messages, 1)
	assert.Equal(t, "<@u1> espera", out.messages[0].Content)
}

func TestIgnoresBotsAndPlainMessages(t *testing.T) {
	out := &fakeMessenger{roles: testRoles()}
	b := testBot(out)

	m := newMessage("--help", "300")
	m.Author.Bot = true
	b.onMessageCreate(nil, m)

	b.handleCommand(newMessage("hola", "300"))

	assert.Empty(t, out.embeds)
	assert.Empty(t, out.messages)
}

func TestAnnouncements(t *testing.T) {
	cfg := getDefaultConfig()
	cfg.Token = "test"
	cfg.DefaultChannelID = "general"
	cfg.Announcements = []Announcement{
		{Name: "weekly", CronString: "0 18 * * FRI", Embed: `title="Hola" color="#3498db"`},
		{Name: "daily", CronString: "@daily", ChannelID: "news", Embed: `description="d"`},
	}

	b, err := NewBot(cfg, zerolog.Nop())
	require.NoError(t, err)
	require.Len(t, b.timedMessages, 2)
	assert.Equal(t, "general", b.timedMessages[0].ChannelID)
	assert.Equal(t, "news", b.timedMessages[1].ChannelID)

	out := &fakeMessenger{}
	b.out = out
	b.sendTimedMessage(b.timedMessages[0])

	require.Len(t, out.embeds, 1)
	assert.Equal(t, "general", out.embeds[0].ChannelID)
	assert.Equal(t, "Hola", out.embeds[0].Embed.Title)
	assert.Equal(t, 0x3498DB, out.embeds[0].Embed.Color)
}

func TestAnnouncementErrors(t *testing.T) {
	cfg := getDefaultConfig()
	cfg.Token = "test"
	cfg.DefaultChannelID = "general"

	cfg.Announcements = []Announcement{{Name: "bad cron", CronString: "not a schedule", Embed: `title="a"`}}
	_, err := NewBot(cfg, zerolog.Nop())
	assert.Error(t, err)

	cfg.Announcements = []Announcement{{Name: "bad embed", CronString: "@hourly", Embed: `color="nope"`}}
	_, err = NewBot(cfg, zerolog.Nop())
	assert.ErrorIs(t, err, embedargs.ErrInvalidColor)
}

func TestReadyStartsTimersOnce(t *testing.T) {
	out := &fakeMessenger{}
	b := testBot(out)
	b.Config.DefaultChannelID = "general"
	b.Config.WelcomeBackMessage = "¡Volví!"
	t.Cleanup(func() { <-b.cron.Stop().Done() })

	ready := &discordgo.Ready{User: &discordgo.User{ID: "42", Username: "embedo"}}
	b.onReady(nil, ready)
	b.onReady(nil, ready)

	assert.Equal(t, "42", b.botID())
	assert.Len(t, out.messages, 2)
	assert.True(t, b.timersStarted)
}
