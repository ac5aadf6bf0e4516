package main

import (
	"bufio"
	"bytes"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gitlab.com/dirk.krummacker/contact-book/internal/model"
	"gitlab.com/dirk.krummacker/contact-book/internal/repo/repomock"
	"gitlab.com/dirk.krummacker/contact-book/internal/service"
)

// startService runs the REST API on top of the mock repositories.
func startService(t *testing.T, contacts *repomock.ContactRepo) *httptest.Server {
	gin.SetMode(gin.TestMode)
	server := httptest.NewServer(service.New(contacts, new(repomock.MetadataRepo), nil).SetupHttpRouter(false))
	t.Cleanup(server.Close)
	return server
}

func TestAddContact(t *testing.T) {
	contacts := new(repomock.ContactRepo)
	contact, err := model.NewContact("John", "Smith", "johndoe@example.com", "123-456-7890")
	require.NoError(t, err)
	contacts.On("CreateContact", mock.Anything, contact).Return(int64(1), nil).Once()
	server := startService(t, contacts)

	in := bufio.NewReader(strings.NewReader("John\nSmith\njohndoe@example.com\n123-456-7890\n"))
	var out bytes.Buffer
	require.NoError(t, addContact(server.Client(), server.URL, in, &out))
	assert.Contains(t, out.String(), "Contact name: John Smith")
	assert.Contains(t, out.String(), "Contact number: 123-456-7890")
	assert.Contains(t, out.String(), "Contact email: johndoe@example.com")
	contacts.AssertExpectations(t)
}

// TestAddContactEmptyField expects the validation error before anything is sent.
func TestAddContactEmptyField(t *testing.T) {
	contacts := new(repomock.ContactRepo)
	server := startService(t, contacts)

	in := bufio.NewReader(strings.NewReader("John\n\njohndoe@example.com\n123-456-7890\n"))
	var out bytes.Buffer
	err := addContact(server.Client(), server.URL, in, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "last_name")
	assert.Empty(t, contacts.Calls)
}

func TestAddContactInputEnds(t *testing.T) {
	contacts := new(repomock.ContactRepo)
	server := startService(t, contacts)

	in := bufio.NewReader(strings.NewReader("John\nSmith\n"))
	var out bytes.Buffer
	assert.Error(t, addContact(server.Client(), server.URL, in, &out))
	assert.Empty(t, contacts.Calls)
}

func TestListContacts(t *testing.T) {
	contacts := new(repomock.ContactRepo)
	contact, err := model.NewContact("John", "Smith", "johndoe@example.com", "123-456-7890")
	require.NoError(t, err)
	contacts.On("GetAllContacts", mock.Anything).Return([]model.IndexedContact{}, nil).Once()
	contacts.On("GetAllContacts", mock.Anything).Return([]model.IndexedContact{{ID: 1, Contact: contact}}, nil).Once()
	server := startService(t, contacts)

	var out bytes.Buffer
	require.NoError(t, listContacts(server.Client(), server.URL, &out))
	assert.Equal(t, "No contacts yet.\n", out.String())

	out.Reset()
	require.NoError(t, listContacts(server.Client(), server.URL, &out))
	assert.Contains(t, out.String(), "John Smith")
	assert.Contains(t, out.String(), "johndoe@example.com")
	contacts.AssertExpectations(t)
}

func TestPrompt(t *testing.T) {
	var out bytes.Buffer
	in := bufio.NewReader(strings.NewReader(" John \r\nlast line without break"))
	value, err := prompt(in, &out, "First name")
	require.NoError(t, err)
	assert.Equal(t, " John ", value)
	assert.Equal(t, "First name: ", out.String())

	value, err = prompt(in, &out, "Last name")
	require.NoError(t, err)
	assert.Equal(t, "last line without break", value)

	_, err = prompt(in, &out, "Email")
	assert.Error(t, err)
}
