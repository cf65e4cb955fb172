package model

import "time"

// TicketArchive is the record written to the archive database.
type TicketArchive struct {
	ID            uint   `gorm:"primary_key"`
	TicketName    string `gorm:"type:varchar(255)"`
	Status        string `gorm:"type:varchar(20)"`
	Panel         string `gorm:"type:varchar(255)"`
	Owner         string `gorm:"type:varchar(255)"`
	MessageCount  int
	TranscriptURL string `gorm:"type:text"`
	Excerpt       string `gorm:"type:text"` // 先頭2000文字のみ
	Summary       string `gorm:"type:text"`
	CreatedAt     time.Time
}
