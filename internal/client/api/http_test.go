package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udesk/userdesk/internal/client/models"
	"github.com/udesk/userdesk/internal/common"
	"github.com/udesk/userdesk/internal/logging"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewHTTPClient(srv.URL, 5*time.Second, testLogger())
}

func TestList(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/users", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]models.User{
			{ID: 1, FirstName: "Jane", LastName: "Doe", Email: "jane@example.com"},
			{ID: 2, FirstName: "John", LastName: "Smith", Email: "john@example.com", Phone: "555-0100"},
		})
	})

	users, err := client.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, int64(1), users[0].ID)
	assert.Equal(t, "555-0100", users[1].Phone)
}

func TestGet(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/users/42", r.URL.Path)
		_ = json.NewEncoder(w).Encode(models.User{ID: 42, FirstName: "Jane", LastName: "Doe", Email: "jane@example.com"})
	})

	user, err := client.Get(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, int64(42), user.ID)
	assert.Equal(t, "Jane", user.FirstName)
}

func TestCreateSendsJSONBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var draft models.Draft
		require.NoError(t, json.NewDecoder(r.Body).Decode(&draft))
		assert.Equal(t, "jane@example.com", draft.Email)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(models.User{ID: 7, FirstName: draft.FirstName, LastName: draft.LastName, Email: draft.Email})
	})

	user, err := client.Create(context.Background(), models.Draft{
		FirstName: "Jane", LastName: "Doe", Email: "jane@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.ID)
}

func TestCreateValidationError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"timestamp": "2024-01-01T00:00:00Z",
			"status":    400,
			"error":     "Validation Failed",
			"errors":    map[string]string{"email": "Email is required"},
		})
	})

	_, err := client.Create(context.Background(), models.Draft{})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, map[string]string{"email": "Email is required"}, ve.Fields)
}

func TestCreateConflict(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"timestamp": "2024-01-01T00:00:00Z",
			"status":    409,
			"error":     "Conflict",
			"message":   "A user with this email address already exists",
		})
	})

	_, err := client.Create(context.Background(), models.Draft{
		FirstName: "Jane", LastName: "Doe", Email: "jane@example.com",
	})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, "A user with this email address already exists", apiErr.Message)
}

func TestGetNotFound(t *testing.T) {
	t.Run("bare 404", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})
		_, err := client.Get(context.Background(), 99)
		assert.ErrorIs(t, err, common.ErrorNotFound)
	})

	t.Run("404 with message payload", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"timestamp": "2024-01-01T00:00:00Z",
				"status":    404,
				"error":     "Not Found",
				"message":   "User not found with id: 99",
			})
		})
		_, err := client.Get(context.Background(), 99)
		assert.ErrorIs(t, err, common.ErrorNotFound)

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "User not found with id: 99", apiErr.Message)
	})
}

func TestDelete(t *testing.T) {
	deleted := false
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/users/5", r.URL.Path)
		deleted = true
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, client.Delete(context.Background(), 5))
	assert.True(t, deleted)
}

func TestTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	client := NewHTTPClient(srv.URL, time.Second, testLogger())
	_, err := client.List(context.Background())
	require.Error(t, err)

	var ve *ValidationError
	var apiErr *APIError
	assert.False(t, errors.As(err, &ve))
	assert.False(t, errors.As(err, &apiErr))
}

func TestUnexpectedStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream down"))
	})

	_, err := client.List(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}
