package embedo

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config contains all options for the config file. Every scalar option
// can be overridden from the environment.
type Config struct {
	Token              string         `env:"DISCORD_TOKEN" validate:"required"`
	CommandPrefix      string         `env:"COMMAND_PREFIX" validate:"required"`
	AdminRole          string         `env:"ADMIN_ROLE" validate:"required"`
	DefaultChannelID   string         `env:"DEFAULT_CHANNEL_ID"`
	CooldownTimer      int            `env:"COOLDOWN_TIMER" validate:"gte=0"`
	WelcomeBackMessage string         `env:"WELCOME_BACK_MESSAGE"`
	CooldownMessage    string         `env:"COOLDOWN_MESSAGE"`
	LogLevel           string         `env:"LOG_LEVEL" validate:"oneof=debug info warn error"`
	LogFile            string         `env:"LOG_FILE"`
	Announcements      []Announcement `validate:"dive"`
}

// Announcement is an embed sent on a cron schedule. Embed uses the
// same key="value" syntax as the embed command.
type Announcement struct {
	Name       string `validate:"required"`
	CronString string `validate:"required"`
	ChannelID  string
	Embed      string `validate:"required"`
}

// Returns the default config settings for the bot
func getDefaultConfig() Config {
	return Config{
		CommandPrefix:   "--",
		AdminRole:       "*",
		CooldownTimer:   3,
		CooldownMessage: "¡Demasiados comandos a la vez!",
		LogLevel:        "info",
	}
}

// LoadConfig builds the Config from defaults, the TOML file at
// configPath if it exists, a .env file if it exists and finally the
// process environment, then validates the result.
func LoadConfig(configPath string) (Config, error) {
	cfg := getDefaultConfig()

	if _, err := toml.DecodeFile(configPath, &cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("error reading config %s: %w", configPath, err)
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("error reading .env: %w", err)
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("error reading environment: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	for _, a := range c.Announcements {
		if a.ChannelID == "" && c.DefaultChannelID == "" {
			return fmt.Errorf("invalid config: announcement %q has no ChannelID and no DefaultChannelID is set", a.Name)
		}
	}
	return nil
}

// ConfigExists reports whether a config file is present at path.
func ConfigExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
