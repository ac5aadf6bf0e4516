// Package repo persists contacts and their metadata. Callers depend on the ContactRepo and MetadataRepo
// interfaces; the SQL implementations share one connection pool that they never close themselves.
package repo

import (
	"context"

	"gitlab.com/dirk.krummacker/contact-book/internal/model"
)

// ContactRepo stores contacts. Creating a contact also creates its metadata row.
type ContactRepo interface {
	CreateContact(ctx context.Context, contact model.Contact) (int64, error)
	GetAllContacts(ctx context.Context) ([]model.IndexedContact, error)
	GetContactByID(ctx context.Context, id int64) (model.IndexedContact, error)
	UpdateContact(ctx context.Context, patch model.ContactPatch) error
	DeleteContactByID(ctx context.Context, id int64) (int64, error)
}

// MetadataRepo stores the per-contact metadata rows.
type MetadataRepo interface {
	Create(ctx context.Context, metadata model.Metadata) (int64, error)
	GetByID(ctx context.Context, contactID int64) (model.Metadata, error)
}
