package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "discord-token")
	t.Setenv("ARCHIVE_CHANNEL_ID", "channel-1")
	t.Setenv("NOTION_TOKEN", "notion-token")
	t.Setenv("NOTION_DATABASE_ID", "db-1")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "discord-token", cfg.DiscordToken)
	assert.Equal(t, "channel-1", cfg.ArchiveChannelID)
	assert.Equal(t, "notion-token", cfg.NotionToken)
	assert.Equal(t, "db-1", cfg.NotionDatabaseID)

	// defaults
	assert.Equal(t, "notion", cfg.RecordDriver)
	assert.Equal(t, "./db/ticket_archiver.db", cfg.DBPath)
	assert.Equal(t, "ticket_archives", cfg.DynamoTableName)
}

func TestLoad_DriverOverride(t *testing.T) {
	t.Setenv("RECORD_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "postgres://localhost/archives")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "postgres", cfg.RecordDriver)
	assert.Equal(t, "postgres://localhost/archives", cfg.DatabaseURL)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			DiscordToken:     "x",
			ArchiveChannelID: "y",
			RecordDriver:     "notion",
			NotionToken:      "t",
			NotionDatabaseID: "d",
		}
	}

	assert.NoError(t, base().Validate())

	cfg := base()
	cfg.DiscordToken = ""
	assert.ErrorContains(t, cfg.Validate(), "DISCORD_TOKEN")

	cfg = base()
	cfg.ArchiveChannelID = ""
	assert.ErrorContains(t, cfg.Validate(), "ARCHIVE_CHANNEL_ID")

	cfg = base()
	cfg.NotionToken = ""
	assert.ErrorContains(t, cfg.Validate(), "NOTION_TOKEN")

	cfg = base()
	cfg.RecordDriver = "sqlite"
	cfg.NotionToken = ""
	cfg.NotionDatabaseID = ""
	assert.NoError(t, cfg.Validate())
}
