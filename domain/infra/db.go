package infra

import (
	"fmt"
	"os"
	"path"

	"github.com/jinzhu/gorm"
	_ "github.com/mattn/go-sqlite3"

	"ticket-archiver/domain/model"
)

type DataBase struct {
	db *gorm.DB
}

func NewDataBase(dbpath string) (*DataBase, error) {
	if dbpath == "" {
		dbpath = "./db/ticket_archiver.db"
	}
	if !path.IsAbs(dbpath) {
		dbpath = path.Join(os.Getenv("PWD"), dbpath)
	}
	db, err := gorm.Open("sqlite3", dbpath)
	if err != nil {
		return nil, err
	}
	db.AutoMigrate(&model.TicketArchive{})
	return &DataBase{db: db}, nil
}

func (d *DataBase) SaveArchive(archive *model.TicketArchive) (string, error) {
	rec := *archive
	rec.ID = 0
	rec.CreatedAt = timeNow()
	if err := d.db.Create(&rec).Error; err != nil {
		return "", err
	}
	return fmt.Sprintf("local://ticket_archives/%d", rec.ID), nil
}

func (d *DataBase) SaveArchiveMinimal(archive *model.TicketArchive) (string, error) {
	rec := model.TicketArchive{
		TicketName: archive.TicketName,
		Excerpt:    archive.Excerpt,
		CreatedAt:  timeNow(),
	}
	if err := d.db.Create(&rec).Error; err != nil {
		return "", err
	}
	return fmt.Sprintf("local://ticket_archives/%d", rec.ID), nil
}
