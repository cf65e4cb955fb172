package model

import (
	"encoding/json"
	"strconv"
	"time"
)

// ChatMessage is one decoded entry of the transcript's messages payload.
type ChatMessage struct {
	Nick     string      `json:"nick"`
	Username string      `json:"username"`
	Content  string      `json:"content"`
	Created  MessageTime `json:"created"`
	Bot      bool        `json:"bot"`
}

// Author returns the display name: nickname first, then username.
func (m *ChatMessage) Author() string {
	if m.Nick != "" {
		return m.Nick
	}
	if m.Username != "" {
		return m.Username
	}
	return "Unknown"
}

// MessageTime accepts both timestamp shapes the transcript format emits:
// epoch milliseconds as a JSON number, or an RFC 3339 string.
type MessageTime struct {
	time.Time
}

func (t *MessageTime) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		parsed, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			// 壊れたタイムスタンプでメッセージ自体は落とさない
			return nil
		}
		t.Time = parsed
		return nil
	}
	millis, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		var f float64
		if err := json.Unmarshal(data, &f); err != nil {
			return err
		}
		millis = int64(f)
	}
	t.Time = time.UnixMilli(millis)
	return nil
}

// ParsedTranscript is the extractor's output.
type ParsedTranscript struct {
	Transcript   string
	TicketName   string
	ServerName   string
	MessageCount int
}
