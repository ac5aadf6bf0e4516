package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewContact builds contacts from valid input and expects the display name to be derived from
// first and last name.
func TestNewContact(t *testing.T) {
	inputs := [][4]string{
		{"John", "Smith", "johndoe@example.com", "123-456-7890"},
		{"Erika", "Mustermann", "erika@example.de", "+49 0815 4711"},
		{" ", " ", "x", "0"},
		{"Rudi", "Völler", "not even an email", "+49 1234567890"},
	}
	for _, in := range inputs {
		c, err := NewContact(in[0], in[1], in[2], in[3])
		require.NoError(t, err, "input: %v", in)
		assert.Equal(t, in[0], c.FirstName)
		assert.Equal(t, in[1], c.LastName)
		assert.Equal(t, in[0]+" "+in[1], c.DisplayName)
		assert.Equal(t, in[2], c.Email)
		assert.Equal(t, in[3], c.PhoneNumber)
	}
}

// TestNewContactEmptyField expects that construction fails whenever one of the four inputs is empty.
func TestNewContactEmptyField(t *testing.T) {
	tests := []struct {
		name  string
		in    [4]string
		field string
	}{
		{"first name", [4]string{"", "Smith", "a@b.c", "1"}, "first_name"},
		{"last name", [4]string{"John", "", "a@b.c", "1"}, "last_name"},
		{"email", [4]string{"John", "Smith", "", "1"}, "email"},
		{"phone", [4]string{"John", "Smith", "a@b.c", ""}, "phone_number"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewContact(tt.in[0], tt.in[1], tt.in[2], tt.in[3])
			require.Error(t, err)
			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tt.field, vErr.Field)
			assert.Equal(t, Contact{}, c)
		})
	}
}

// TestContactEquality expects that contacts built from the same input compare equal.
func TestContactEquality(t *testing.T) {
	a, err := NewContact("John", "Smith", "johndoe@example.com", "123-456-7890")
	require.NoError(t, err)
	b, err := NewContact("John", "Smith", "johndoe@example.com", "123-456-7890")
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.True(t, a == b)
}
