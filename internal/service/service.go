// Package service exposes the contact repositories as a REST API.
package service

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gitlab.com/dirk.krummacker/contact-book/internal/model"
	"gitlab.com/dirk.krummacker/contact-book/internal/repo"
	api "gitlab.com/dirk.krummacker/contact-book/pkg/model"
)

// Service translates HTTP requests into repository calls. It does not retry failed calls; the error
// message is returned to the client instead.
type Service struct {
	contacts repo.ContactRepo
	metadata repo.MetadataRepo
	logger   *slog.Logger
}

// New returns a service on top of the given repositories. They can be the SQL implementations or mock
// objects within unit tests.
func New(contacts repo.ContactRepo, metadata repo.MetadataRepo, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{contacts: contacts, metadata: metadata, logger: logger}
}

// SetupHttpRouter initializes the REST API router and registers all endpoints. With requestLogging
// switched off, requests are served without the logging middleware.
func (s *Service) SetupHttpRouter(requestLogging bool) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	if requestLogging {
		router.Use(StructuredLogger(s.logger))
	} else {
		s.logger.Info("turning off HTTP request logging")
	}
	router.GET("/contacts", s.findContacts)
	router.POST("/contacts", s.createContact)
	router.GET("/contacts/:id", s.findContactByID)
	router.PUT("/contacts/:id", s.updateContactByID)
	router.DELETE("/contacts/:id", s.deleteContactByID)
	router.GET("/contacts/:id/metadata", s.findMetadataByContactID)
	return router
}

// findContacts responds with the list of all contacts as JSON, ordered by id. An empty contact book
// yields an empty list.
//
// Example REST API call:
//
//	> curl "http://localhost:8080/contacts"
func (s *Service) findContacts(c *gin.Context) {
	contacts, err := s.contacts.GetAllContacts(c.Request.Context())
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	result := make([]api.Contact, 0, len(contacts))
	for _, contact := range contacts {
		result = append(result, toAPIContact(contact))
	}
	c.IndentedJSON(http.StatusOK, result)
}

// createContact inserts the contact specified in the request's JSON. It responds with the full contact
// data including the newly assigned id and the derived display name.
//
// Example REST API call:
//
//	> curl http://localhost:8080/contacts --request "POST" --include --header "Content-Type: application/json" --data '{"firstname": "John", "lastname": "Smith", "email": "johndoe@example.com", "phone": "123-456-7890"}'
func (s *Service) createContact(c *gin.Context) {
	var input api.ContactInput
	if err := c.BindJSON(&input); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, api.Message{Message: "invalid JSON"})
		return
	}
	if input.DisplayName != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, api.Message{Message: "displayname is derived and cannot be set"})
		return
	}
	contact, err := model.NewContact(value(input.FirstName), value(input.LastName), value(input.Email), value(input.Phone))
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	id, err := s.contacts.CreateContact(c.Request.Context(), contact)
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	c.IndentedJSON(http.StatusCreated, toAPIContact(model.IndexedContact{ID: id, Contact: contact}))
}

// findContactByID locates the contact whose ID value matches the id parameter of the request URL,
// then returns that contact as a response.
//
// Example REST API call:
//
//	> curl http://localhost:8080/contacts/56
func (s *Service) findContactByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	contact, err := s.contacts.GetContactByID(c.Request.Context(), id)
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	c.IndentedJSON(http.StatusOK, toAPIContact(contact))
}

// updateContactByID updates the values specified in the JSON (and only those) of the contact whose ID
// value matches the id parameter of the request URL, and finally responds with the new version of the
// contact. The display name is not recomputed when names change.
//
// Example REST API calls:
//
//	> curl http://localhost:8080/contacts/56 --request "PUT" --include --header "Content-Type: application/json" --data '{"phone": "81970"}'
//	> curl http://localhost:8080/contacts/56 --request "PUT" --include --header "Content-Type: application/json" --data '{"email": "rudi@example.de"}'
func (s *Service) updateContactByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input api.ContactInput
	if err := c.BindJSON(&input); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, api.Message{Message: "invalid JSON"})
		return
	}
	patch, err := model.NewContactPatch(id, input.FirstName, input.LastName, input.DisplayName, input.Email, input.Phone)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	// It only makes sense to continue if we have at least one value to update.
	if patch.IsEmpty() {
		c.AbortWithStatusJSON(http.StatusBadRequest, api.Message{Message: "no values to be updated"})
		return
	}

	if err := s.contacts.UpdateContact(c.Request.Context(), patch); err != nil {
		s.abortWithError(c, err)
		return
	}

	// In the HTTP response, return the full contact after the update.
	contact, err := s.contacts.GetContactByID(c.Request.Context(), id)
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	c.IndentedJSON(http.StatusOK, toAPIContact(contact))
}

// deleteContactByID deletes the contact whose ID value matches the id parameter of the request URL.
// The metadata of the contact is kept.
//
// Example REST API call:
//
//	> curl http://localhost:8080/contacts/56 --request "DELETE"
func (s *Service) deleteContactByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	deleted, err := s.contacts.DeleteContactByID(c.Request.Context(), id)
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	c.IndentedJSON(http.StatusOK, api.Message{Message: "contact deleted", Id: deleted})
}

// findMetadataByContactID responds with the metadata of the contact whose ID value matches the id
// parameter of the request URL.
//
// Example REST API call:
//
//	> curl http://localhost:8080/contacts/56/metadata
func (s *Service) findMetadataByContactID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	metadata, err := s.metadata.GetByID(c.Request.Context(), id)
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	c.IndentedJSON(http.StatusOK, toAPIMetadata(metadata))
}

// parseID reads the id parameter of the request URL. Ids that are not positive numbers cannot exist,
// so the request is answered with NOT FOUND without reaching out to the store.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.AbortWithStatusJSON(http.StatusNotFound, api.Message{Message: "invalid id parameter"})
		return 0, false
	}
	return id, true
}

// abortWithError maps the error taxonomy of the model and repository packages to HTTP status codes.
func (s *Service) abortWithError(c *gin.Context, err error) {
	var validationErr *model.ValidationError
	var partialErr *repo.PartialError
	switch {
	case errors.As(err, &validationErr):
		c.AbortWithStatusJSON(http.StatusBadRequest, api.Message{Message: err.Error()})
	case errors.Is(err, repo.ErrNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, api.Message{Message: err.Error()})
	case errors.As(err, &partialErr):
		s.logger.ErrorContext(c.Request.Context(), "partial failure",
			slog.Int64("contact_id", partialErr.ContactID), slog.String("error", err.Error()))
		c.AbortWithStatusJSON(http.StatusInternalServerError, api.Message{Message: err.Error(), Id: partialErr.ContactID})
	default:
		s.logger.ErrorContext(c.Request.Context(), "repository failure", slog.String("error", err.Error()))
		c.AbortWithStatusJSON(http.StatusInternalServerError, api.Message{Message: err.Error()})
	}
}

func value(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
