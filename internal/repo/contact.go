package repo

import (
	"context"
	"log/slog"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"gitlab.com/dirk.krummacker/contact-book/internal/model"
)

// SQLContactRepo is the ContactRepo backed by the contacts table. It creates metadata through the
// MetadataRepo it was given.
//
// Contact and metadata are written by two independent statements, without a surrounding transaction.
// If the second one fails, CreateContact returns a *PartialError and the contact row stays behind.
type SQLContactRepo struct {
	db       *sqlx.DB
	metadata MetadataRepo
	logger   *slog.Logger
	now      func() time.Time

	// insert is a prepared statement for creating a contact.
	insert *sqlx.NamedStmt

	// selectAll is a prepared statement for selecting all contacts ordered by id.
	selectAll *sqlx.Stmt

	// selectWhereId is a prepared statement for selecting contacts with a given id.
	selectWhereId *sqlx.Stmt

	// deleteWhereId is a prepared statement for deleting a contact with a given id.
	deleteWhereId *sqlx.Stmt
}

var _ ContactRepo = (*SQLContactRepo)(nil)

// ContactOption configures a SQLContactRepo.
type ContactOption func(*SQLContactRepo)

// WithClock sets the time source used for the timestamps of new metadata rows.
func WithClock(now func() time.Time) ContactOption {
	return func(r *SQLContactRepo) {
		r.now = now
	}
}

// NewSQLContactRepo prepares all statements on db. The database can be a real database for production
// use or a mock database within unit tests.
func NewSQLContactRepo(ctx context.Context, db *sqlx.DB, metadata MetadataRepo, logger *slog.Logger, opts ...ContactOption) (*SQLContactRepo, error) {
	if logger == nil {
		logger = slog.Default()
	}
	r := &SQLContactRepo{db: db, metadata: metadata, logger: logger, now: time.Now}
	for _, opt := range opts {
		opt(r)
	}

	// Prepared statements offer a significant speed increase if executed many times.
	var err error
	r.insert, err = db.PrepareNamedContext(ctx, `
		INSERT INTO contacts (first_name, last_name, display_name, email, phone_number)
		VALUES (:first_name, :last_name, :display_name, :email, :phone_number)
	`)
	if err != nil {
		return nil, backendErr("prepare contact insert", err)
	}
	r.selectAll, err = db.PreparexContext(ctx, `
		SELECT id, first_name, last_name, display_name, email, phone_number FROM contacts ORDER BY id
	`)
	if err != nil {
		return nil, backendErr("prepare contact select", err)
	}
	r.selectWhereId, err = db.PreparexContext(ctx, db.Rebind(`
		SELECT id, first_name, last_name, display_name, email, phone_number FROM contacts WHERE id = ?
	`))
	if err != nil {
		return nil, backendErr("prepare contact select by id", err)
	}
	r.deleteWhereId, err = db.PreparexContext(ctx, db.Rebind(`
		DELETE FROM contacts WHERE id = ?
	`))
	if err != nil {
		return nil, backendErr("prepare contact delete", err)
	}
	return r, nil
}

// CreateContact inserts the contact, then creates its initial metadata row. It returns the id the store
// assigned to the contact.
func (r *SQLContactRepo) CreateContact(ctx context.Context, contact model.Contact) (int64, error) {
	result, err := r.insert.ExecContext(ctx, &contact)
	if err != nil {
		return 0, backendErr("insert contact", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, backendErr("insert contact", err)
	}

	if _, err := r.metadata.Create(ctx, model.NewMetadata(id, r.now())); err != nil {
		r.logger.ErrorContext(ctx, "contact created without metadata",
			slog.Int64("contact_id", id), slog.String("error", err.Error()))
		return id, &PartialError{ContactID: id, Step: "metadata creation", Err: err}
	}

	r.logger.DebugContext(ctx, "contact created", slog.Int64("id", id))
	return id, nil
}

// GetAllContacts returns all contacts ordered ascending by id. An empty store yields an empty slice.
func (r *SQLContactRepo) GetAllContacts(ctx context.Context) ([]model.IndexedContact, error) {
	contacts := make([]model.IndexedContact, 0)
	if err := r.selectAll.SelectContext(ctx, &contacts); err != nil {
		return nil, backendErr("select contacts", err)
	}
	return contacts, nil
}

// GetContactByID returns the contact with the given id.
func (r *SQLContactRepo) GetContactByID(ctx context.Context, id int64) (model.IndexedContact, error) {
	var contacts []model.IndexedContact
	if err := r.selectWhereId.SelectContext(ctx, &contacts, id); err != nil {
		return model.IndexedContact{}, backendErr("select contact", err)
	}
	if len(contacts) == 0 {
		return model.IndexedContact{}, notFound("contact", id)
	}
	return contacts[0], nil
}

// UpdateContact writes the present fields of the patch, and only those. Applying the same patch again
// leaves the row as it is.
func (r *SQLContactRepo) UpdateContact(ctx context.Context, patch model.ContactPatch) error {
	if patch.IsEmpty() {
		// Nothing to write, but a missing contact is still reported.
		_, err := r.GetContactByID(ctx, patch.ID)
		return err
	}

	query, args, err := sq.Update("contacts").
		SetMap(patch.Columns()).
		Where(sq.Eq{"id": patch.ID}).
		ToSql()
	if err != nil {
		return backendErr("build contact update", err)
	}
	result, err := r.db.ExecContext(ctx, r.db.Rebind(query), args...)
	if err != nil {
		return backendErr("update contact", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return backendErr("update contact", err)
	}
	if rowsAffected == 0 {
		return notFound("contact", patch.ID)
	}

	r.logger.DebugContext(ctx, "contact updated", slog.Int64("id", patch.ID))
	return nil
}

// DeleteContactByID removes the contact and returns its id. The metadata row of the contact is kept.
func (r *SQLContactRepo) DeleteContactByID(ctx context.Context, id int64) (int64, error) {
	result, err := r.deleteWhereId.ExecContext(ctx, id)
	if err != nil {
		return 0, backendErr("delete contact", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, backendErr("delete contact", err)
	}
	if rowsAffected == 0 {
		return 0, notFound("contact", id)
	}

	r.logger.DebugContext(ctx, "contact deleted", slog.Int64("id", id))
	return id, nil
}
