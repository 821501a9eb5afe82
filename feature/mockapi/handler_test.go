package mockapi

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"movie-catalog/feature/movies/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T, seed string) *fiber.App {
	t.Helper()
	store := NewDocumentStore(&memoryDocument{data: []byte(seed)}, "items")

	app := fiber.New()
	f := NewFeature(store, "", zap.NewNop(), true)
	require.NoError(t, f.Load(app))
	return app
}

func send(t *testing.T, app *fiber.App, method, path, body string) (*http.Response, string) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(raw)
}

const seedDoc = `{"items":[
	{"id":1,"name":"Heat","image":"h.jpg","rating":7,"genres":["crime"],"inTheaters":false},
	{"id":2,"name":"Alien","image":"a.jpg","rating":9,"genres":["horror"],"inTheaters":true},
	{"id":3,"name":"Ran","image":"r.jpg","rating":8,"genres":[],"inTheaters":false}
]}`

func TestHandleList(t *testing.T) {
	app := setupTestApp(t, seedDoc)

	tests := []struct {
		name    string
		query   string
		wantIDs []int64
	}{
		{"Stored Order", "", []int64{1, 2, 3}},
		{"Sort By Name", "?_sort=name", []int64{2, 1, 3}},
		{"Sort By Id Desc", "?_sort=id&_order=desc", []int64{3, 2, 1}},
		{"Sort By Rating Desc With Limit", "?_sort=rating&_order=desc&_limit=2", []int64{2, 3}},
		{"Unknown Sort Field", "?_sort=director", []int64{1, 2, 3}},
		{"Limit Zero", "?_limit=0", []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := send(t, app, "GET", "/items"+tt.query, "")
			assert.Equal(t, 200, resp.StatusCode)
			assert.Equal(t, "3", resp.Header.Get("X-Total-Count"))

			var movies []models.Movie
			require.NoError(t, json.Unmarshal([]byte(body), &movies))
			ids := []int64{}
			for _, m := range movies {
				ids = append(ids, m.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestHandleGet(t *testing.T) {
	app := setupTestApp(t, seedDoc)

	resp, body := send(t, app, "GET", "/items/2", "")
	assert.Equal(t, 200, resp.StatusCode)
	assert.Contains(t, body, `"Alien"`)

	resp, body = send(t, app, "GET", "/items/99", "")
	assert.Equal(t, 404, resp.StatusCode)
	assert.JSONEq(t, `{}`, body)

	resp, _ = send(t, app, "GET", "/items/abc", "")
	assert.Equal(t, 404, resp.StatusCode)
}

func TestHandleCreate(t *testing.T) {
	app := setupTestApp(t, seedDoc)

	resp, body := send(t, app, "POST", "/items", `{"name":"Dune","image":"d.jpg","genres":["sci-fi"],"inTheaters":true}`)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var created models.Movie
	require.NoError(t, json.Unmarshal([]byte(body), &created))
	assert.Equal(t, int64(4), created.ID)
	assert.True(t, created.InTheaters)

	resp, _ = send(t, app, "POST", "/items", `{"id":1,"name":"Copy"}`)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	resp, _ = send(t, app, "POST", "/items", `{"name":`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandleReplaceAndPatch(t *testing.T) {
	app := setupTestApp(t, seedDoc)

	resp, body := send(t, app, "PUT", "/items/1", `{"id":77,"name":"Heat (1995)","image":"h2.jpg"}`)
	assert.Equal(t, 200, resp.StatusCode)
	var replaced models.Movie
	require.NoError(t, json.Unmarshal([]byte(body), &replaced))
	assert.Equal(t, models.Movie{ID: 1, Name: "Heat (1995)", Image: "h2.jpg", Genres: []string{}}, replaced)

	resp, body = send(t, app, "PATCH", "/items/2", `{"rating":10}`)
	assert.Equal(t, 200, resp.StatusCode)
	var patched models.Movie
	require.NoError(t, json.Unmarshal([]byte(body), &patched))
	assert.Equal(t, models.Movie{ID: 2, Name: "Alien", Image: "a.jpg", Rating: 10, Genres: []string{"horror"}, InTheaters: true}, patched)

	resp, body = send(t, app, "PUT", "/items/99", `{"name":"Ghost"}`)
	assert.Equal(t, 404, resp.StatusCode)
	assert.JSONEq(t, `{}`, body)

	resp, _ = send(t, app, "PATCH", "/items/99", `{"rating":1}`)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestHandleDelete(t *testing.T) {
	app := setupTestApp(t, seedDoc)

	resp, body := send(t, app, "DELETE", "/items/3", "")
	assert.Equal(t, 200, resp.StatusCode)
	assert.JSONEq(t, `{}`, body)

	resp, body = send(t, app, "DELETE", "/items/3", "")
	assert.Equal(t, 404, resp.StatusCode)
	assert.JSONEq(t, `{}`, body)
}

func TestFeature(t *testing.T) {
	f := NewFeature(NewDocumentStore(&memoryDocument{}, "items"), "movies", zap.NewNop(), false)
	assert.Equal(t, "mock", f.Name())
	assert.False(t, f.IsEnabled())

	app := fiber.New()
	require.NoError(t, f.Load(app))
	resp, _ := send(t, app, "GET", "/movies", "")
	assert.Equal(t, 200, resp.StatusCode)
}
