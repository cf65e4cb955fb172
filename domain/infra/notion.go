package infra

import (
	"context"
	"errors"

	"github.com/jomei/notionapi"

	"ticket-archiver/domain/model"
)

type Notion struct {
	client     *notionapi.Client
	databaseID notionapi.DatabaseID
}

func NewNotion(token, databaseID string) *Notion {
	return &Notion{
		client:     notionapi.NewClient(notionapi.Token(token)),
		databaseID: notionapi.DatabaseID(databaseID),
	}
}

func (n *Notion) SaveArchive(archive *model.TicketArchive) (string, error) {
	page, err := n.client.Page.Create(context.TODO(), n.pageRequest(archive))
	if err != nil {
		return "", err
	}
	return page.URL, nil
}

func (n *Notion) SaveArchiveMinimal(archive *model.TicketArchive) (string, error) {
	page, err := n.client.Page.Create(context.TODO(), n.minimalPageRequest(archive))
	if err != nil {
		return "", err
	}
	return page.URL, nil
}

func (n *Notion) pageRequest(archive *model.TicketArchive) *notionapi.PageCreateRequest {
	return &notionapi.PageCreateRequest{
		Parent: notionapi.Parent{
			Type:       notionapi.ParentTypeDatabaseID,
			DatabaseID: n.databaseID,
		},
		Properties: notionapi.Properties{
			"Name": notionapi.TitleProperty{
				Title: richText(archive.TicketName),
			},
			"Status": notionapi.SelectProperty{
				Select: notionapi.Option{Name: archive.Status},
			},
			"Panel": notionapi.RichTextProperty{
				RichText: richText(archive.Panel),
			},
			"Owner": notionapi.RichTextProperty{
				RichText: richText(archive.Owner),
			},
			"Messages": notionapi.NumberProperty{
				Number: float64(archive.MessageCount),
			},
			"Transcript URL": notionapi.URLProperty{
				URL: archive.TranscriptURL,
			},
		},
		Children: n.bodyBlocks(archive),
	}
}

func (n *Notion) minimalPageRequest(archive *model.TicketArchive) *notionapi.PageCreateRequest {
	return &notionapi.PageCreateRequest{
		Parent: notionapi.Parent{
			Type:       notionapi.ParentTypeDatabaseID,
			DatabaseID: n.databaseID,
		},
		Properties: notionapi.Properties{
			"Name": notionapi.TitleProperty{
				Title: richText(archive.TicketName),
			},
		},
		Children: []notionapi.Block{paragraph(archive.Excerpt)},
	}
}

func (n *Notion) bodyBlocks(archive *model.TicketArchive) []notionapi.Block {
	blocks := []notionapi.Block{paragraph(archive.Excerpt)}
	if archive.Summary != "" {
		blocks = append(blocks, paragraph(archive.Summary))
	}
	return blocks
}

func richText(content string) []notionapi.RichText {
	return []notionapi.RichText{
		{Text: &notionapi.Text{Content: content}},
	}
}

func paragraph(content string) notionapi.Block {
	return &notionapi.ParagraphBlock{
		BasicBlock: notionapi.BasicBlock{
			Object: notionapi.ObjectTypeBlock,
			Type:   notionapi.BlockTypeParagraph,
		},
		Paragraph: notionapi.Paragraph{
			RichText: richText(content),
		},
	}
}

// IsValidationError reports whether the record database rejected the write
// for schema reasons. Only this class triggers the minimal-record fallback.
func IsValidationError(err error) bool {
	var notionErr *notionapi.Error
	if errors.As(err, &notionErr) {
		return notionErr.Code == "validation_error"
	}
	return false
}
