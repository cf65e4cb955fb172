package transcript

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"ticket-archiver/domain/model"
)

// ErrNoMessages is returned when the document carries no messages payload.
var ErrNoMessages = errors.New("no messages found")

// 書き出しフォーマットは旧実装と互換であること
const transcriptSeparator = "━━━━━━━━━━━━━━━━━━━━━━"

var (
	messagesPattern = regexp.MustCompile(`let messages = "([^"]+)"`)
	channelPattern  = regexp.MustCompile(`let channel = "([^"]+)"`)
	serverPattern   = regexp.MustCompile(`let server = "([^"]+)"`)
)

// Doer is the HTTP surface the extractor needs.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Extractor downloads a transcript document and decodes the conversation
// embedded in it.
type Extractor struct {
	client Doer
}

func NewExtractor(client Doer) *Extractor {
	if client == nil {
		client = &http.Client{}
	}
	return &Extractor{client: client}
}

// Extract fetches the document at documentURL, locates the embedded
// messages/channel/server payloads and returns the normalized transcript.
// The messages payload is mandatory; channel and server fall back to
// "Unknown" when absent or undecodable.
func (e *Extractor) Extract(ctx context.Context, documentURL string) (*model.ParsedTranscript, error) {
	content, err := e.fetch(ctx, documentURL)
	if err != nil {
		return nil, fmt.Errorf("fetch transcript document: %w", err)
	}

	messagesMatch := messagesPattern.FindStringSubmatch(content)
	if messagesMatch == nil {
		return nil, ErrNoMessages
	}

	var messages []model.ChatMessage
	if err := decodePayload(messagesMatch[1], &messages); err != nil {
		return nil, fmt.Errorf("decode messages payload: %w", err)
	}

	channelName := decodeName(channelPattern, content)
	serverName := decodeName(serverPattern, content)

	var b strings.Builder
	fmt.Fprintf(&b, "📋 Server: %s\n📌 Channel: %s\n\n%s\n\n", serverName, channelName, transcriptSeparator)

	count := 0
	for _, msg := range messages {
		if strings.TrimSpace(msg.Content) == "" || msg.Bot {
			continue
		}
		fmt.Fprintf(&b, "🕐 %s\n👤 %s\n💬 %s\n\n", FormatJakarta(msg.Created.Time), msg.Author(), msg.Content)
		count++
	}

	return &model.ParsedTranscript{
		Transcript:   b.String(),
		TicketName:   channelName,
		ServerName:   serverName,
		MessageCount: count,
	}, nil
}

func (e *Extractor) fetch(ctx context.Context, documentURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, documentURL, nil)
	if err != nil {
		return "", err
	}
	resp, err := e.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

func decodePayload(payload string, v any) error {
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		// 一部のエクスポートはパディングを省略する
		raw, err = base64.RawStdEncoding.DecodeString(payload)
		if err != nil {
			return err
		}
	}
	return json.Unmarshal(raw, v)
}

// decodeName reads the name field of an optional channel/server payload.
// A missing or corrupt payload is treated the same way: "Unknown".
func decodeName(pattern *regexp.Regexp, content string) string {
	match := pattern.FindStringSubmatch(content)
	if match == nil {
		return "Unknown"
	}
	var obj struct {
		Name string `json:"name"`
	}
	if err := decodePayload(match[1], &obj); err != nil || obj.Name == "" {
		return "Unknown"
	}
	return obj.Name
}

var jakarta = func() *time.Location {
	loc, err := time.LoadLocation("Asia/Jakarta")
	if err != nil {
		return time.FixedZone("WIB", 7*60*60)
	}
	return loc
}()

var indonesianMonths = [12]string{
	"Jan", "Feb", "Mar", "Apr", "Mei", "Jun",
	"Jul", "Agu", "Sep", "Okt", "Nov", "Des",
}

// FormatJakarta renders a timestamp the way the archived transcripts always
// have: Indonesian medium date + short time, Asia/Jakarta. The audience
// timezone is fixed, so this is not configurable.
func FormatJakarta(t time.Time) string {
	t = t.In(jakarta)
	return fmt.Sprintf("%d %s %d, %02d.%02d",
		t.Day(), indonesianMonths[t.Month()-1], t.Year(), t.Hour(), t.Minute())
}
