package movies

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"movie-catalog/core/notify"
	"movie-catalog/feature/movies/models"
	"movie-catalog/feature/movies/remote/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T, seed ...models.Movie) (*fiber.App, *mocks.Accessor, *Coordinator) {
	t.Helper()
	acc := new(mocks.Accessor)
	acc.On("List", mock.Anything).Return(seed, nil).Once()

	center := notify.NewCenter()
	t.Cleanup(center.Close)
	coord := NewCoordinator(acc, center, zap.NewNop())

	app := fiber.New()
	feature := NewFeature(coord, zap.NewNop(), true)
	require.NoError(t, feature.Load(app))
	return app, acc, coord
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) (*http.Response, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)

	var out map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&out)
	return resp, out
}

func TestHandleList(t *testing.T) {
	app, acc, _ := setupTestApp(t, alien, heat)

	resp, err := app.Test(httptest.NewRequest("GET", "/catalog/movies", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var movies []models.Movie
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&movies))
	assert.Equal(t, []models.Movie{alien, heat}, movies)
	acc.AssertNumberOfCalls(t, "List", 1)
}

func TestHandleCreate(t *testing.T) {
	t.Run("Created", func(t *testing.T) {
		app, acc, coord := setupTestApp(t)
		draft := models.Draft{Name: "Dune", Image: "https://img.example.com/dune.jpg", Genres: []string{"sci-fi"}}
		acc.On("Create", mock.Anything, draft).Return(draft.WithID(1), nil)

		resp, body := doJSON(t, app, "POST", "/catalog/movies", `{"name":"Dune","image":"https://img.example.com/dune.jpg","genres":["sci-fi"]}`)
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
		assert.Equal(t, float64(1), body["id"])
		assert.Equal(t, []models.Movie{draft.WithID(1)}, coord.Snapshot())
	})

	t.Run("Validation Never Reaches Remote", func(t *testing.T) {
		app, acc, _ := setupTestApp(t)

		resp, body := doJSON(t, app, "POST", "/catalog/movies", `{"name":"","image":"nope"}`)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		fields := body["fields"].(map[string]any)
		assert.Equal(t, "Name is required", fields["name"])
		assert.Equal(t, "Must be a valid URL", fields["image"])
		acc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Remote Failure", func(t *testing.T) {
		app, acc, coord := setupTestApp(t)
		acc.On("Create", mock.Anything, mock.Anything).Return(models.Movie{}, remoteErr("create", http.StatusInternalServerError))

		resp, body := doJSON(t, app, "POST", "/catalog/movies", `{"name":"Dune","image":"https://img.example.com/dune.jpg"}`)
		assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)
		assert.Equal(t, float64(500), body["status"])
		assert.Empty(t, coord.Snapshot())
	})
}

func TestHandleUpdate(t *testing.T) {
	app, acc, _ := setupTestApp(t, alien)
	_, err := app.Test(httptest.NewRequest("GET", "/catalog/movies", nil))
	require.NoError(t, err)

	want := models.Movie{ID: 1, Name: "Aliens", Image: "https://img.example.com/aliens.jpg", Rating: 5, Genres: []string{"action"}}
	acc.On("Update", mock.Anything, want).Return(want, nil)

	resp, body := doJSON(t, app, "PUT", "/catalog/movies/1", `{"name":"Aliens","image":"https://img.example.com/aliens.jpg","rating":5,"genres":["action"]}`)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "Aliens", body["name"])

	resp, _ = doJSON(t, app, "PUT", "/catalog/movies/abc", `{}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandleDelete(t *testing.T) {
	app, acc, _ := setupTestApp(t, alien)
	acc.On("Delete", mock.Anything, int64(1)).Return(nil)
	acc.On("Delete", mock.Anything, int64(5)).Return(remoteErr("delete", http.StatusNotFound))

	resp, err := app.Test(httptest.NewRequest("DELETE", "/catalog/movies/1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("DELETE", "/catalog/movies/5", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestHandleRating(t *testing.T) {
	app, acc, coord := setupTestApp(t, alien)
	_, err := coord.Load(t.Context())
	require.NoError(t, err)

	rated := alien
	rated.Rating = 2
	acc.On("Update", mock.Anything, rated).Return(rated, nil)

	resp, body := doJSON(t, app, "PUT", "/catalog/movies/1/rating", `{"rating":2}`)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, float64(2), body["rating"])

	resp, _ = doJSON(t, app, "PUT", "/catalog/movies/99/rating", `{"rating":2}`)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, _ = doJSON(t, app, "PUT", "/catalog/movies/1/rating", `{"rating":-1}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	acc.AssertNumberOfCalls(t, "Update", 1)
}

func TestHandleStatsAndNotifications(t *testing.T) {
	app, acc, coord := setupTestApp(t, alien, ran)
	_, err := coord.Load(t.Context())
	require.NoError(t, err)
	acc.On("Delete", mock.Anything, int64(3)).Return(nil)
	require.NoError(t, coord.Delete(t.Context(), 3))

	resp, body := doJSON(t, app, "GET", "/catalog/stats", "")
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, float64(1), body["totalMovies"])
	assert.Equal(t, float64(4), body["averageRating"])
	assert.Equal(t, true, body["stale"])

	resp, err = app.Test(httptest.NewRequest("GET", "/catalog/notifications", nil))
	require.NoError(t, err)
	var notes []notify.Notification
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&notes))
	require.Len(t, notes, 1)
	assert.Equal(t, notify.TypeSuccess, notes[0].Type)
}

func TestFeature(t *testing.T) {
	f := NewFeature(NewCoordinator(new(mocks.Accessor), nil, zap.NewNop()), zap.NewNop(), false)
	assert.Equal(t, "catalog", f.Name())
	assert.False(t, f.IsEnabled())
}
