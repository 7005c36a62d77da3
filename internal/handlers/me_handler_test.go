package handlers_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"github.com/fyyurhq/fyyur-api/internal/handlers"
	"github.com/fyyurhq/fyyur-api/internal/middleware"
)

func TestGetMe_UnknownUserIsUnauthorized(t *testing.T) {
	db, mock := newMockDB(t)
	h := handlers.NewMeHandler(db)

	// Token subject no longer resolves to a row.
	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email"}))

	c, w := testContext(t, http.MethodGet, "/api/me", "")
	c.Set(middleware.ContextUserID, uint(42))
	h.GetMe(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "user_not_found")
}

func TestGetMe_StoreFailureIsInternal(t *testing.T) {
	db, mock := newMockDB(t)
	h := handlers.NewMeHandler(db)

	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnError(errors.New("connection reset"))

	c, w := testContext(t, http.MethodGet, "/api/me", "")
	c.Set(middleware.ContextUserID, uint(42))
	h.GetMe(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal_error")
}
