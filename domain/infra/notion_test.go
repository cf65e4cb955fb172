package infra

import (
	"fmt"
	"testing"

	"github.com/jomei/notionapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticket-archiver/domain/model"
)

func testArchive() *model.TicketArchive {
	return &model.TicketArchive{
		TicketName:    "ticket-0042",
		Status:        "Closed",
		Panel:         "Support",
		Owner:         "123456",
		MessageCount:  7,
		TranscriptURL: "https://cdn.example/transcript-ticket-0042.html",
		Excerpt:       "📋 Server: Toko Online",
	}
}

func TestNotion_pageRequest(t *testing.T) {
	n := NewNotion("secret", "db-id")
	req := n.pageRequest(testArchive())

	assert.Equal(t, notionapi.DatabaseID("db-id"), req.Parent.DatabaseID)

	title, ok := req.Properties["Name"].(notionapi.TitleProperty)
	require.True(t, ok)
	require.Len(t, title.Title, 1)
	assert.Equal(t, "ticket-0042", title.Title[0].Text.Content)

	status, ok := req.Properties["Status"].(notionapi.SelectProperty)
	require.True(t, ok)
	assert.Equal(t, "Closed", status.Select.Name)

	count, ok := req.Properties["Messages"].(notionapi.NumberProperty)
	require.True(t, ok)
	assert.Equal(t, float64(7), count.Number)

	url, ok := req.Properties["Transcript URL"].(notionapi.URLProperty)
	require.True(t, ok)
	assert.Equal(t, "https://cdn.example/transcript-ticket-0042.html", url.URL)

	require.Len(t, req.Children, 1)
}

func TestNotion_pageRequestWithSummary(t *testing.T) {
	archive := testArchive()
	archive.Summary = "short summary"

	req := NewNotion("secret", "db-id").pageRequest(archive)
	assert.Len(t, req.Children, 2)
}

func TestNotion_minimalPageRequest(t *testing.T) {
	req := NewNotion("secret", "db-id").minimalPageRequest(testArchive())

	// 縮退版はタイトルと本文のみ
	assert.Len(t, req.Properties, 1)
	_, ok := req.Properties["Name"].(notionapi.TitleProperty)
	assert.True(t, ok)
	assert.Len(t, req.Children, 1)
}

func TestIsValidationError(t *testing.T) {
	validation := &notionapi.Error{Code: "validation_error", Message: "bad schema"}

	assert.True(t, IsValidationError(validation))
	assert.True(t, IsValidationError(fmt.Errorf("create page: %w", validation)))
	assert.False(t, IsValidationError(&notionapi.Error{Code: "unauthorized"}))
	assert.False(t, IsValidationError(fmt.Errorf("plain network error")))
	assert.False(t, IsValidationError(nil))
}
