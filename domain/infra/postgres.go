package infra

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"ticket-archiver/domain/model"
)

const createArchivesTable = `
CREATE TABLE IF NOT EXISTS ticket_archives (
	id             BIGSERIAL PRIMARY KEY,
	ticket_name    TEXT NOT NULL,
	status         TEXT NOT NULL DEFAULT '',
	panel          TEXT NOT NULL DEFAULT '',
	owner          TEXT NOT NULL DEFAULT '',
	message_count  INTEGER NOT NULL DEFAULT 0,
	transcript_url TEXT NOT NULL DEFAULT '',
	excerpt        TEXT NOT NULL DEFAULT '',
	summary        TEXT NOT NULL DEFAULT '',
	created_at     TIMESTAMPTZ NOT NULL DEFAULT now()
)`

type Postgres struct {
	pool *pgxpool.Pool
}

func NewPostgres(databaseURL string) (*Postgres, error) {
	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required for the postgres record driver")
	}
	pool, err := pgxpool.New(context.Background(), databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	if _, err := pool.Exec(context.Background(), createArchivesTable); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ensure ticket_archives table: %w", err)
	}
	return &Postgres{pool: pool}, nil
}

func (p *Postgres) SaveArchive(archive *model.TicketArchive) (string, error) {
	query := `
		INSERT INTO ticket_archives
			(ticket_name, status, panel, owner, message_count, transcript_url, excerpt, summary)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	var id int64
	err := p.pool.QueryRow(context.Background(), query,
		archive.TicketName, archive.Status, archive.Panel, archive.Owner,
		archive.MessageCount, archive.TranscriptURL, archive.Excerpt, archive.Summary,
	).Scan(&id)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("postgres://ticket_archives/%d", id), nil
}

func (p *Postgres) SaveArchiveMinimal(archive *model.TicketArchive) (string, error) {
	query := `
		INSERT INTO ticket_archives (ticket_name, excerpt)
		VALUES ($1, $2)
		RETURNING id`

	var id int64
	err := p.pool.QueryRow(context.Background(), query,
		archive.TicketName, archive.Excerpt,
	).Scan(&id)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("postgres://ticket_archives/%d", id), nil
}

func (p *Postgres) Close() {
	p.pool.Close()
}
