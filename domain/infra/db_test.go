package infra

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticket-archiver/domain/model"
)

func TestDataBase_SaveArchive(t *testing.T) {
	db, err := NewDataBase(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)

	id, err := db.SaveArchive(testArchive())
	require.NoError(t, err)
	assert.Contains(t, id, "local://ticket_archives/")

	var rec model.TicketArchive
	require.NoError(t, db.db.First(&rec).Error)
	assert.Equal(t, "ticket-0042", rec.TicketName)
	assert.Equal(t, "Support", rec.Panel)
	assert.Equal(t, 7, rec.MessageCount)
}

func TestDataBase_SaveArchiveMinimal(t *testing.T) {
	db, err := NewDataBase(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)

	_, err = db.SaveArchiveMinimal(testArchive())
	require.NoError(t, err)

	var rec model.TicketArchive
	require.NoError(t, db.db.First(&rec).Error)
	assert.Equal(t, "ticket-0042", rec.TicketName)
	assert.Equal(t, "📋 Server: Toko Online", rec.Excerpt)
	// 縮退保存では他のフィールドを書かない
	assert.Empty(t, rec.Owner)
	assert.Empty(t, rec.Panel)
}

func TestDataBase_DuplicateSavesCreateDistinctRecords(t *testing.T) {
	db, err := NewDataBase(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)

	first, err := db.SaveArchive(testArchive())
	require.NoError(t, err)
	second, err := db.SaveArchive(testArchive())
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}
