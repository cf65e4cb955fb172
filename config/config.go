package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	DiscordToken     string `koanf:"discord_token"`
	ArchiveChannelID string `koanf:"archive_channel_id"`

	// notion(デフォルト) / dynamodb / postgres / それ以外はローカルsqlite
	RecordDriver     string `koanf:"record_driver"`
	NotionToken      string `koanf:"notion_token"`
	NotionDatabaseID string `koanf:"notion_database_id"`
	DBPath           string `koanf:"db_path"`
	DatabaseURL      string `koanf:"database_url"`
	DynamoTableName  string `koanf:"dynamo_table_name"`
	DynamoLocal      string `koanf:"dynamo_local"`
}

// Load reads the optional config.yaml, then overlays the environment.
// Environment variables win.
func Load() (*Config, error) {
	k := koanf.New(".")

	if _, err := os.Stat("config.yaml"); err == nil {
		if err := k.Load(file.Provider("config.yaml"), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config.yaml: %w", err)
		}
	}

	if err := k.Load(env.Provider("", ".", strings.ToLower), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.RecordDriver == "" {
		cfg.RecordDriver = "notion"
	}
	if cfg.DBPath == "" {
		cfg.DBPath = "./db/ticket_archiver.db"
	}
	if cfg.DynamoTableName == "" {
		cfg.DynamoTableName = "ticket_archives"
	}
	return cfg, nil
}

// Validate checks the values whose absence would otherwise only surface as
// a connection failure long after startup.
func (c *Config) Validate() error {
	if c.DiscordToken == "" {
		return fmt.Errorf("DISCORD_TOKEN is required")
	}
	if c.ArchiveChannelID == "" {
		return fmt.Errorf("ARCHIVE_CHANNEL_ID is required")
	}
	if c.RecordDriver == "notion" {
		if c.NotionToken == "" {
			return fmt.Errorf("NOTION_TOKEN is required for the notion record driver")
		}
		if c.NotionDatabaseID == "" {
			return fmt.Errorf("NOTION_DATABASE_ID is required for the notion record driver")
		}
	}
	return nil
}
