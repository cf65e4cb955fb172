package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatMessage_Author(t *testing.T) {
	tests := []struct {
		name string
		msg  ChatMessage
		want string
	}{
		{"nickname wins", ChatMessage{Nick: "si kecil", Username: "budi"}, "si kecil"},
		{"username fallback", ChatMessage{Username: "budi"}, "budi"},
		{"unknown fallback", ChatMessage{}, "Unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.msg.Author())
		})
	}
}

func TestMessageTime_UnmarshalJSON(t *testing.T) {
	t.Run("epoch millis", func(t *testing.T) {
		var msg ChatMessage
		require.NoError(t, json.Unmarshal([]byte(`{"created":1704439800000}`), &msg))
		assert.True(t, msg.Created.Equal(time.Date(2024, 1, 5, 7, 30, 0, 0, time.UTC)))
	})

	t.Run("rfc3339 string", func(t *testing.T) {
		var msg ChatMessage
		require.NoError(t, json.Unmarshal([]byte(`{"created":"2024-01-05T07:30:00Z"}`), &msg))
		assert.True(t, msg.Created.Equal(time.Date(2024, 1, 5, 7, 30, 0, 0, time.UTC)))
	})

	t.Run("garbage string keeps zero time", func(t *testing.T) {
		var msg ChatMessage
		require.NoError(t, json.Unmarshal([]byte(`{"created":"yesterday-ish"}`), &msg))
		assert.True(t, msg.Created.IsZero())
	})

	t.Run("null keeps zero time", func(t *testing.T) {
		var msg ChatMessage
		require.NoError(t, json.Unmarshal([]byte(`{"created":null}`), &msg))
		assert.True(t, msg.Created.IsZero())
	})
}

func TestChatMessage_DecodeFullPayload(t *testing.T) {
	payload := `[
		{"nick":"si kecil","username":"budi","content":"halo","created":"2024-01-05T07:30:00Z","bot":false},
		{"username":"ticket-tool","content":"Ticket opened","created":1704439801000,"bot":true}
	]`
	var messages []ChatMessage
	require.NoError(t, json.Unmarshal([]byte(payload), &messages))
	require.Len(t, messages, 2)
	assert.Equal(t, "si kecil", messages[0].Author())
	assert.False(t, messages[0].Bot)
	assert.True(t, messages[1].Bot)
}
