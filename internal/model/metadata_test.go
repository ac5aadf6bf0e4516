package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetadata(t *testing.T) {
	now := time.Date(2024, time.May, 1, 13, 45, 0, 123456789, time.FixedZone("CEST", 2*60*60))
	m := NewMetadata(1, now)
	assert.Equal(t, int64(1), m.ContactID)
	assert.False(t, m.Starred)
	assert.False(t, m.IsArchived)
	assert.Nil(t, m.Frequency)
	assert.Equal(t, time.Date(2024, time.May, 1, 11, 45, 0, 123000000, time.UTC), m.CreatedAt)
	assert.Equal(t, m.CreatedAt, m.UpdatedAt)
	assert.Nil(t, m.LastSeenAt)
	assert.Nil(t, m.NextReminderAt)
	assert.Nil(t, m.LastReminderAt)
}

func TestFormatTimestamp(t *testing.T) {
	ts := time.Date(2024, time.May, 1, 13, 45, 0, 123456789, time.UTC)
	assert.Equal(t, "2024-05-01T13:45:00.123Z", FormatTimestamp(ts))
	assert.Equal(t, "2024-05-01T13:45:00.000Z", FormatTimestamp(ts.Truncate(time.Second)))

	local := time.Date(2024, time.May, 1, 15, 45, 0, 0, time.FixedZone("CEST", 2*60*60))
	assert.Equal(t, "2024-05-01T13:45:00.000Z", FormatTimestamp(local))

	// lexical order follows time order
	assert.Less(t, FormatTimestamp(ts), FormatTimestamp(ts.Add(time.Millisecond)))
}

func TestParseTimestamp(t *testing.T) {
	want := time.Date(2024, time.May, 1, 13, 45, 0, 123000000, time.UTC)
	for _, s := range []string{"2024-05-01T13:45:00.123Z", "2024-05-01T13:45:00.123+00:00"} {
		got, err := ParseTimestamp(s)
		require.NoError(t, err, s)
		assert.Equal(t, want, got)
	}

	got, err := ParseTimestamp(FormatTimestamp(want))
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = ParseTimestamp("yesterday")
	assert.Error(t, err)
}
