package integrationtest

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/dirk.krummacker/contact-book/internal/repo"
	"gitlab.com/dirk.krummacker/contact-book/internal/service"
	"gitlab.com/dirk.krummacker/contact-book/internal/store"
)

// testStore bundles a fresh in-memory database with the repositories on top of it.
type testStore struct {
	db       *sqlx.DB
	contacts *repo.SQLContactRepo
	metadata *repo.SQLMetadataRepo
}

// setupStore opens a migrated in-memory database. Every test gets its own database, so ids start at 1.
func setupStore(t *testing.T) *testStore {
	t.Helper()
	ctx := context.Background()

	db, err := store.OpenSQLite(ctx, store.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, store.Migrate(ctx, db))

	metadata, err := repo.NewSQLMetadataRepo(ctx, db, nil)
	require.NoError(t, err)
	contacts, err := repo.NewSQLContactRepo(ctx, db, metadata, nil)
	require.NoError(t, err)
	return &testStore{db: db, contacts: contacts, metadata: metadata}
}

// setupRouter returns the REST API on top of a fresh in-memory database.
func setupRouter(t *testing.T) *gin.Engine {
	s := setupStore(t)
	gin.SetMode(gin.TestMode)
	return service.New(s.contacts, s.metadata, nil).SetupHttpRouter(false)
}

// deleteContact deletes the contact with the specified id.
func deleteContact(t *testing.T, router *gin.Engine, id string) {
	deleteRecorder := httptest.NewRecorder()
	deleteRequest, _ := http.NewRequest("DELETE", fmt.Sprintf("/contacts/%s", id), nil)
	router.ServeHTTP(deleteRecorder, deleteRequest)
	assert.Equal(t, http.StatusOK, deleteRecorder.Code)
}
