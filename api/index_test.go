package handler

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler(t *testing.T) {
	t.Setenv("MOCK_FILE", filepath.Join(t.TempDir(), "db.json"))
	t.Setenv("MOCK_STORE", "database")

	t.Run("Preflight", func(t *testing.T) {
		rec := httptest.NewRecorder()
		Handler(rec, httptest.NewRequest(http.MethodOptions, "/items", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "DELETE")
		assert.Empty(t, rec.Body.String())
	})

	t.Run("Create Then List", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/items", strings.NewReader(`{"name":"Dune","image":"https://img.example.com/dune.jpg"}`))
		req.Header.Set("Content-Type", "application/json")
		Handler(rec, req)
		require.Equal(t, http.StatusCreated, rec.Code)

		rec = httptest.NewRecorder()
		Handler(rec, httptest.NewRequest(http.MethodGet, "/items", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, rec.Body.String(), `"Dune"`)
	})

	t.Run("Missing Item", func(t *testing.T) {
		rec := httptest.NewRecorder()
		Handler(rec, httptest.NewRequest(http.MethodGet, "/items/404", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{}`, rec.Body.String())
	})
}

func TestNewApp(t *testing.T) {
	t.Setenv("MOCK_FILE", filepath.Join(t.TempDir(), "db.json"))
	t.Setenv("MOCK_COLLECTION", "movies")

	app, err := NewApp(context.Background())
	require.NoError(t, err)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/movies", nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `[]`, string(body))
}
