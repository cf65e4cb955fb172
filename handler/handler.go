package handler

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/bwmarrin/discordgo"
	_ "github.com/mattn/go-sqlite3"

	"ticket-archiver/config"
	"ticket-archiver/domain/infra"
	"ticket-archiver/domain/model"
	"ticket-archiver/transcript"
)

const (
	reactionSuccess = "✅"
	reactionFailure = "❌"

	transcriptExt    = ".html"
	transcriptMarker = "transcript"

	// Notionのrich_textブロック上限に合わせた抜粋長
	maxExcerptLen = 2000
)

type Handler struct {
	session   *discordgo.Session
	client    infra.DiscordAPI
	ds        infra.RecordStore
	ai        infra.Summarizer
	extractor *transcript.Extractor
	channelID string
}

func NewHandler(cfg *config.Config) (*Handler, error) {
	var ds infra.RecordStore
	var err error
	switch cfg.RecordDriver {
	case "notion":
		ds = infra.NewNotion(cfg.NotionToken, cfg.NotionDatabaseID)
	case "dynamodb":
		ds, err = infra.NewDynamoDB(cfg.DynamoTableName, cfg.DynamoLocal != "")
		if err != nil {
			return nil, err
		}
	case "postgres":
		ds, err = infra.NewPostgres(cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
	default:
		ds, err = infra.NewDataBase(cfg.DBPath)
		if err != nil {
			return nil, err
		}
	}

	session, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentMessageContent

	h := &Handler{
		session:   session,
		client:    session,
		ds:        ds,
		extractor: transcript.NewExtractor(nil),
		channelID: cfg.ArchiveChannelID,
	}

	ai, err := infra.NewOpenAI()
	if err != nil {
		slog.Warn("summarizer unavailable", slog.Any("err", err))
	} else if ai != nil {
		h.ai = ai
	}
	return h, nil
}

// Handle connects to the gateway and blocks until SIGINT/SIGTERM.
func (h *Handler) Handle() error {
	h.session.AddHandler(h.onReady)
	h.session.AddHandler(h.onMessageCreate)
	if err := h.session.Open(); err != nil {
		return fmt.Errorf("open discord session: %w", err)
	}
	defer h.session.Close()

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM)
	<-sc
	slog.Info("shutting down")
	return nil
}

func (h *Handler) onReady(_ *discordgo.Session, r *discordgo.Ready) {
	slog.Info("connected",
		slog.String("bot", r.User.Username),
		slog.String("watching", h.channelID),
	)
}

// archiveEvent carries what the pipeline needs from a MessageCreate event.
type archiveEvent struct {
	ChannelID   string
	MessageID   string
	Attachments []*discordgo.MessageAttachment
	Embeds      []*discordgo.MessageEmbed
}

func (h *Handler) onMessageCreate(_ *discordgo.Session, m *discordgo.MessageCreate) {
	h.handleMessageCreate(&archiveEvent{
		ChannelID:   m.ChannelID,
		MessageID:   m.ID,
		Attachments: m.Attachments,
		Embeds:      m.Embeds,
	})
}

func (h *Handler) handleMessageCreate(ev *archiveEvent) {
	if ev.ChannelID != h.channelID {
		return
	}

	att := findTranscriptAttachment(ev.Attachments)
	if att == nil {
		return
	}
	slog.Info("new transcript", slog.String("file", att.Filename))

	if len(ev.Embeds) == 0 {
		slog.Warn("transcript message has no embed, skipping", slog.String("file", att.Filename))
		return
	}

	parsed, err := h.extractor.Extract(context.Background(), att.URL)
	if err != nil {
		slog.Error("Extract failed", slog.Any("err", err), slog.String("url", att.URL))
		h.react(ev, reactionFailure)
		return
	}

	recordURL, err := h.publishArchive(parsed, att.URL, ev.Embeds[0])
	if err != nil {
		slog.Error("publishArchive failed", slog.Any("err", err), slog.String("ticket", parsed.TicketName))
		h.react(ev, reactionFailure)
		return
	}

	slog.Info("archived",
		slog.String("ticket", parsed.TicketName),
		slog.Int("messages", parsed.MessageCount),
		slog.String("record", recordURL),
	)
	h.react(ev, reactionSuccess)
}

// publishArchive writes one record for the parsed transcript. A schema
// rejection gets exactly one retry with the minimal field set; every other
// failure propagates as-is.
func (h *Handler) publishArchive(parsed *model.ParsedTranscript, transcriptURL string, embed *discordgo.MessageEmbed) (string, error) {
	owner := embedField(embed, "Ticket Owner")
	owner = strings.NewReplacer("<@", "", ">", "").Replace(owner)

	archive := &model.TicketArchive{
		TicketName:    parsed.TicketName,
		Status:        "Closed",
		Panel:         embedField(embed, "Panel Name"),
		Owner:         owner,
		MessageCount:  parsed.MessageCount,
		TranscriptURL: transcriptURL,
		Excerpt:       truncateRunes(parsed.Transcript, maxExcerptLen),
	}

	if h.ai != nil {
		summary, err := h.ai.GenerateSummary(parsed.Transcript)
		if err != nil {
			slog.Warn("GenerateSummary failed", slog.Any("err", err))
		} else {
			archive.Summary = summary
		}
	}

	recordURL, err := h.ds.SaveArchive(archive)
	if err != nil {
		if infra.IsValidationError(err) {
			slog.Warn("schema rejected, retrying with minimal record", slog.Any("err", err))
			return h.ds.SaveArchiveMinimal(archive)
		}
		return "", err
	}
	return recordURL, nil
}

// react applies the outcome marker. Failures here are logged and swallowed;
// they never change the pipeline result.
func (h *Handler) react(ev *archiveEvent, emoji string) {
	if err := h.client.MessageReactionAdd(ev.ChannelID, ev.MessageID, emoji); err != nil {
		slog.Error("MessageReactionAdd failed", slog.Any("err", err), slog.String("emoji", emoji))
	}
}

func findTranscriptAttachment(attachments []*discordgo.MessageAttachment) *discordgo.MessageAttachment {
	for _, att := range attachments {
		if strings.HasSuffix(att.Filename, transcriptExt) && strings.Contains(att.Filename, transcriptMarker) {
			return att
		}
	}
	return nil
}

// embedField returns the value of the named embed field, "Unknown" when the
// field is absent or empty.
func embedField(embed *discordgo.MessageEmbed, name string) string {
	for _, f := range embed.Fields {
		if f.Name == name && f.Value != "" {
			return f.Value
		}
	}
	return "Unknown"
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
