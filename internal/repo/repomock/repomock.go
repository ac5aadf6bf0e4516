// Package repomock provides deterministic doubles of the repositories. They record every call, return
// what the test programmed for it and never touch a store.
//
// Usage example:
//
//	contacts := new(repomock.ContactRepo)
//	contacts.On("GetContactByID", mock.Anything, int64(1)).Return(contact, nil).Once()
//	contacts.On("GetContactByID", mock.Anything, int64(1)).Return(model.IndexedContact{}, repo.ErrNotFound).Once()
//	...
//	contacts.AssertExpectations(t)
package repomock

import (
	"context"

	"github.com/stretchr/testify/mock"
	"gitlab.com/dirk.krummacker/contact-book/internal/model"
	"gitlab.com/dirk.krummacker/contact-book/internal/repo"
)

// ContactRepo is a mock implementation of repo.ContactRepo.
type ContactRepo struct {
	mock.Mock
}

var _ repo.ContactRepo = (*ContactRepo)(nil)

func (m *ContactRepo) CreateContact(ctx context.Context, contact model.Contact) (int64, error) {
	args := m.Called(ctx, contact)
	return args.Get(0).(int64), args.Error(1)
}

func (m *ContactRepo) GetAllContacts(ctx context.Context) ([]model.IndexedContact, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.IndexedContact), args.Error(1)
}

func (m *ContactRepo) GetContactByID(ctx context.Context, id int64) (model.IndexedContact, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.IndexedContact), args.Error(1)
}

func (m *ContactRepo) UpdateContact(ctx context.Context, patch model.ContactPatch) error {
	args := m.Called(ctx, patch)
	return args.Error(0)
}

func (m *ContactRepo) DeleteContactByID(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

// MetadataRepo is a mock implementation of repo.MetadataRepo.
type MetadataRepo struct {
	mock.Mock
}

var _ repo.MetadataRepo = (*MetadataRepo)(nil)

func (m *MetadataRepo) Create(ctx context.Context, metadata model.Metadata) (int64, error) {
	args := m.Called(ctx, metadata)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MetadataRepo) GetByID(ctx context.Context, contactID int64) (model.Metadata, error) {
	args := m.Called(ctx, contactID)
	return args.Get(0).(model.Metadata), args.Error(1)
}
