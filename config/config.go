package config

import (
	"fmt"
	"log"
	"strings"

	"starboard-bot/models"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Settings is the fully resolved configuration of the bot.
type Settings struct {
	Token       string
	Starboard   models.StarboardConfig
	Persistence models.PersistenceConfig
	Scan        models.ScanConfig
}

// LoadConfig loads configuration from multiple sources: the .env file,
// config.yaml, and an optional config/channels.json with the watched channel
// list. Environment variables override file settings of the same name.
func LoadConfig() {
	// 1. Environment variables from .env; a missing file is fine.
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found, skipping.")
	}

	// 2. Base configuration (config.yaml).
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Printf("No config.yaml found, using environment variables and defaults.")
		} else {
			panic(fmt.Errorf("fatal error reading config file: %w", err))
		}
	}

	// 3. Merge the watched-channel list (config/channels.json), kept in its
	// own file so channel curation changes don't touch the base config.
	viper.SetConfigName("channels")
	viper.SetConfigType("json")
	viper.AddConfigPath("./config")

	if err := viper.MergeInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Printf("No channel list (config/channels.json) found, skipping merge.")
		} else {
			panic(fmt.Errorf("fatal error merging channel list: %w", err))
		}
	}
}

func setDefaults() {
	viper.SetDefault("starboard.threshold", 3)
	viper.SetDefault("starboard.emoji", "⭐")
	viper.SetDefault("starboard.approvedEmoji", "🌠")
	viper.SetDefault("persistence.enabled", true)
	viper.SetDefault("persistence.backend", "json")
	viper.SetDefault("persistence.path", "approved_messages.json")
	viper.SetDefault("scan.schedule", "@every 5m")
	viper.SetDefault("scan.pageSize", 50)
}

// Load reads all configuration sources and returns validated settings.
// Invalid configuration is a startup failure; the process must not run with
// a partial config.
func Load() (*Settings, error) {
	LoadConfig()

	s := &Settings{
		Token: viper.GetString("BOT_TOKEN"),
	}
	if err := viper.UnmarshalKey("starboard", &s.Starboard); err != nil {
		return nil, fmt.Errorf("failed to parse starboard config: %w", err)
	}
	if err := viper.UnmarshalKey("persistence", &s.Persistence); err != nil {
		return nil, fmt.Errorf("failed to parse persistence config: %w", err)
	}
	if err := viper.UnmarshalKey("scan", &s.Scan); err != nil {
		return nil, fmt.Errorf("failed to parse scan config: %w", err)
	}

	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Settings) validate() error {
	if s.Token == "" {
		return fmt.Errorf("no bot token provided, set BOT_TOKEN in .env or config")
	}
	if s.Starboard.Channel == "" {
		return fmt.Errorf("starboard.channel is not set")
	}
	if s.Starboard.Threshold < 0 {
		return fmt.Errorf("starboard.threshold must not be negative, got %d", s.Starboard.Threshold)
	}
	// The acknowledgement marker doubling as the counted emoji would make
	// every promotion immediately re-qualify itself.
	if s.Starboard.Emoji == s.Starboard.ApprovedEmoji {
		return fmt.Errorf("starboard.emoji and starboard.approvedEmoji must be distinct, both are %q", s.Starboard.Emoji)
	}
	switch s.Persistence.Backend {
	case "json", "sqlite":
	default:
		return fmt.Errorf("unknown persistence backend %q, expected json or sqlite", s.Persistence.Backend)
	}
	if s.Scan.PageSize < 1 || s.Scan.PageSize > 100 {
		return fmt.Errorf("scan.pageSize must be between 1 and 100, got %d", s.Scan.PageSize)
	}
	return nil
}
