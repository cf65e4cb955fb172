package infra

import (
	"time"

	"ticket-archiver/domain/model"
)

type RecordStore interface {
	// アーカイブを全フィールドで保存する
	SaveArchive(*model.TicketArchive) (string, error)
	// スキーマ検証に失敗した場合の縮退保存（タイトルと抜粋のみ）
	SaveArchiveMinimal(*model.TicketArchive) (string, error)
}

// Summarizer produces a short summary of a transcript. Optional.
type Summarizer interface {
	GenerateSummary(transcript string) (string, error)
}

func timeNow() time.Time {
	loc, err := time.LoadLocation("Asia/Jakarta")
	if err != nil {
		loc = time.UTC
	}
	return time.Now().In(loc)
}
