package model

import (
	"fmt"
	"time"
)

// TimestampLayout is the storage format of all metadata timestamps: UTC with millisecond precision, so
// that the stored strings sort lexically in time order.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Metadata is the auxiliary state kept for every contact. Exactly one row exists per contact.
type Metadata struct {
	ContactID      int64
	Starred        bool
	IsArchived     bool
	Frequency      *int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
	LastSeenAt     *time.Time
	NextReminderAt *time.Time
	LastReminderAt *time.Time
}

// NewMetadata returns the initial metadata of a freshly created contact.
func NewMetadata(contactID int64, now time.Time) Metadata {
	ts := Timestamp(now)
	return Metadata{
		ContactID: contactID,
		CreatedAt: ts,
		UpdatedAt: ts,
	}
}

// Timestamp normalizes t to the precision and zone in which it is stored.
func Timestamp(t time.Time) time.Time {
	return t.UTC().Truncate(time.Millisecond)
}

// FormatTimestamp encodes t in the storage format, e.g. 2024-05-01T13:45:00.123Z.
func FormatTimestamp(t time.Time) string {
	return Timestamp(t).Format(TimestampLayout)
}

// ParseTimestamp decodes a stored timestamp. Both the Z and the +00:00 spelling of UTC are accepted.
func ParseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q: %w", s, err)
	}
	return Timestamp(t), nil
}
