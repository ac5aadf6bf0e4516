package service

import (
	"time"

	"gitlab.com/dirk.krummacker/contact-book/internal/model"
	api "gitlab.com/dirk.krummacker/contact-book/pkg/model"
)

func toAPIContact(c model.IndexedContact) api.Contact {
	return api.Contact{
		Id:          c.ID,
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		DisplayName: c.DisplayName,
		Email:       c.Email,
		Phone:       c.PhoneNumber,
	}
}

func toAPIMetadata(m model.Metadata) api.Metadata {
	return api.Metadata{
		ContactId:      m.ContactID,
		Starred:        m.Starred,
		IsArchived:     m.IsArchived,
		Frequency:      m.Frequency,
		CreatedAt:      model.FormatTimestamp(m.CreatedAt),
		UpdatedAt:      model.FormatTimestamp(m.UpdatedAt),
		LastSeenAt:     formatOptional(m.LastSeenAt),
		NextReminderAt: formatOptional(m.NextReminderAt),
		LastReminderAt: formatOptional(m.LastReminderAt),
	}
}

func formatOptional(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := model.FormatTimestamp(*t)
	return &s
}
