package repo

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"
	"gitlab.com/dirk.krummacker/contact-book/internal/model"
)

// metadataRow is the stored form of model.Metadata. Timestamps are kept as strings in the format of
// model.FormatTimestamp.
type metadataRow struct {
	ID             int64          `db:"id"`
	ContactID      int64          `db:"contact_id"`
	Starred        bool           `db:"starred"`
	IsArchived     bool           `db:"is_archived"`
	Frequency      sql.NullInt64  `db:"frequency"`
	CreatedAt      string         `db:"created_at"`
	UpdatedAt      string         `db:"updated_at"`
	LastSeenAt     sql.NullString `db:"last_seen_at"`
	NextReminderAt sql.NullString `db:"next_reminder_at"`
	LastReminderAt sql.NullString `db:"last_reminder_at"`
}

func toMetadataRow(m model.Metadata) metadataRow {
	row := metadataRow{
		ContactID:      m.ContactID,
		Starred:        m.Starred,
		IsArchived:     m.IsArchived,
		CreatedAt:      model.FormatTimestamp(m.CreatedAt),
		UpdatedAt:      model.FormatTimestamp(m.UpdatedAt),
		LastSeenAt:     nullTimestamp(m.LastSeenAt),
		NextReminderAt: nullTimestamp(m.NextReminderAt),
		LastReminderAt: nullTimestamp(m.LastReminderAt),
	}
	if m.Frequency != nil {
		row.Frequency = sql.NullInt64{Int64: *m.Frequency, Valid: true}
	}
	return row
}

func (row metadataRow) toModel() (model.Metadata, error) {
	m := model.Metadata{
		ContactID:  row.ContactID,
		Starred:    row.Starred,
		IsArchived: row.IsArchived,
	}
	if row.Frequency.Valid {
		f := row.Frequency.Int64
		m.Frequency = &f
	}
	var err error
	if m.CreatedAt, err = model.ParseTimestamp(row.CreatedAt); err != nil {
		return model.Metadata{}, fmt.Errorf("created_at: %w", err)
	}
	if m.UpdatedAt, err = model.ParseTimestamp(row.UpdatedAt); err != nil {
		return model.Metadata{}, fmt.Errorf("updated_at: %w", err)
	}
	if m.LastSeenAt, err = parseNullTimestamp(row.LastSeenAt); err != nil {
		return model.Metadata{}, fmt.Errorf("last_seen_at: %w", err)
	}
	if m.NextReminderAt, err = parseNullTimestamp(row.NextReminderAt); err != nil {
		return model.Metadata{}, fmt.Errorf("next_reminder_at: %w", err)
	}
	if m.LastReminderAt, err = parseNullTimestamp(row.LastReminderAt); err != nil {
		return model.Metadata{}, fmt.Errorf("last_reminder_at: %w", err)
	}
	return m, nil
}

func nullTimestamp(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: model.FormatTimestamp(*t), Valid: true}
}

func parseNullTimestamp(s sql.NullString) (*time.Time, error) {
	if !s.Valid {
		return nil, nil
	}
	t, err := model.ParseTimestamp(s.String)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// SQLMetadataRepo is the MetadataRepo backed by the contact_metadata table.
type SQLMetadataRepo struct {
	db     *sqlx.DB
	logger *slog.Logger

	// insert is a prepared statement for creating a metadata row.
	insert *sqlx.NamedStmt

	// selectWhereContactId is a prepared statement for selecting the metadata of a contact.
	selectWhereContactId *sqlx.Stmt
}

var _ MetadataRepo = (*SQLMetadataRepo)(nil)

// NewSQLMetadataRepo prepares all statements on db. The database can be a real database for production
// use or a mock database within unit tests.
func NewSQLMetadataRepo(ctx context.Context, db *sqlx.DB, logger *slog.Logger) (*SQLMetadataRepo, error) {
	if logger == nil {
		logger = slog.Default()
	}
	r := &SQLMetadataRepo{db: db, logger: logger}

	var err error
	r.insert, err = db.PrepareNamedContext(ctx, `
		INSERT INTO contact_metadata (contact_id, starred, is_archived, frequency, created_at,
			updated_at, last_seen_at, next_reminder_at, last_reminder_at)
		VALUES (:contact_id, :starred, :is_archived, :frequency, :created_at,
			:updated_at, :last_seen_at, :next_reminder_at, :last_reminder_at)
	`)
	if err != nil {
		return nil, backendErr("prepare metadata insert", err)
	}
	r.selectWhereContactId, err = db.PreparexContext(ctx, db.Rebind(`
		SELECT id, contact_id, starred, is_archived, frequency, created_at,
			updated_at, last_seen_at, next_reminder_at, last_reminder_at
		FROM contact_metadata WHERE contact_id = ?
	`))
	if err != nil {
		return nil, backendErr("prepare metadata select", err)
	}
	return r, nil
}

// Create inserts the full metadata row and returns the id the store assigned to the row. That id is
// independent of the contact id.
func (r *SQLMetadataRepo) Create(ctx context.Context, metadata model.Metadata) (int64, error) {
	row := toMetadataRow(metadata)
	result, err := r.insert.ExecContext(ctx, &row)
	if err != nil {
		return 0, backendErr("insert metadata", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, backendErr("insert metadata", err)
	}
	r.logger.DebugContext(ctx, "metadata created", slog.Int64("id", id), slog.Int64("contact_id", metadata.ContactID))
	return id, nil
}

// GetByID returns the metadata of the contact with the given contact id.
func (r *SQLMetadataRepo) GetByID(ctx context.Context, contactID int64) (model.Metadata, error) {
	var rows []metadataRow
	if err := r.selectWhereContactId.SelectContext(ctx, &rows, contactID); err != nil {
		return model.Metadata{}, backendErr("select metadata", err)
	}
	if len(rows) == 0 {
		return model.Metadata{}, notFound("metadata of contact", contactID)
	}
	m, err := rows[0].toModel()
	if err != nil {
		return model.Metadata{}, backendErr("decode metadata", err)
	}
	return m, nil
}
