package remote

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"movie-catalog/feature/movies/models"

	"go.uber.org/zap"
)

// SupabaseClient talks to a Supabase table through its PostgREST endpoint.
// Rows use snake_case columns and are translated with models.Row.
type SupabaseClient struct {
	client   *http.Client
	tableURL string
	apiKey   string
	logger   *zap.Logger
}

// NewSupabaseClient creates an accessor for {projectURL}/rest/v1/{table}.
func NewSupabaseClient(client *http.Client, projectURL, apiKey, table string, logger *zap.Logger) *SupabaseClient {
	if table == "" {
		table = "movies"
	}
	return &SupabaseClient{
		client:   client,
		tableURL: strings.TrimRight(projectURL, "/") + "/rest/v1/" + url.PathEscape(table),
		apiKey:   apiKey,
		logger:   logger,
	}
}

// List returns all rows, newest first.
func (c *SupabaseClient) List(ctx context.Context) ([]models.Movie, error) {
	req, err := c.request(http.MethodGet, url.Values{"select": {"*"}, "order": {"id.desc"}}, nil)
	if err != nil {
		return nil, &RemoteError{Op: "list", Err: err}
	}

	var rows []models.Row
	if err := do(ctx, c.client, "list", req, &rows); err != nil {
		c.logger.Debug("List movies failed", zap.Error(err))
		return nil, err
	}
	return toMovies(rows), nil
}

// Create inserts a row and returns its representation.
func (c *SupabaseClient) Create(ctx context.Context, draft models.Draft) (models.Movie, error) {
	req, err := c.request(http.MethodPost, nil, models.RowFromDraft(draft))
	if err != nil {
		return models.Movie{}, &RemoteError{Op: "create", Err: err}
	}
	req.Header.Set("Prefer", "return=representation")

	return c.single(ctx, "create", req)
}

// Update patches the row matching the movie id.
func (c *SupabaseClient) Update(ctx context.Context, movie models.Movie) (models.Movie, error) {
	row := models.RowFromMovie(movie)
	row.ID = 0 // the id lives in the filter, never in the payload

	req, err := c.request(http.MethodPatch, idFilter(movie.ID), row)
	if err != nil {
		return models.Movie{}, &RemoteError{Op: "update", Err: err}
	}
	req.Header.Set("Prefer", "return=representation")

	return c.single(ctx, "update", req)
}

// Delete removes the row matching id. Deleting a missing row is reported as 404.
func (c *SupabaseClient) Delete(ctx context.Context, id int64) error {
	req, err := c.request(http.MethodDelete, idFilter(id), nil)
	if err != nil {
		return &RemoteError{Op: "delete", Err: err}
	}
	req.Header.Set("Prefer", "return=representation")

	_, err = c.single(ctx, "delete", req)
	return err
}

// single expects a representation with exactly one row; an empty one means no row matched.
func (c *SupabaseClient) single(ctx context.Context, op string, req *http.Request) (models.Movie, error) {
	var rows []models.Row
	if err := do(ctx, c.client, op, req, &rows); err != nil {
		c.logger.Debug("Supabase request failed", zap.String("op", op), zap.Error(err))
		return models.Movie{}, err
	}
	if len(rows) == 0 {
		return models.Movie{}, &RemoteError{Op: op, Status: http.StatusNotFound, Message: "no matching row"}
	}
	return rows[0].ToMovie(), nil
}

func (c *SupabaseClient) request(method string, query url.Values, body any) (*http.Request, error) {
	target := c.tableURL
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := newJSONRequest(method, target, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	return req, nil
}

func idFilter(id int64) url.Values {
	return url.Values{"id": {fmt.Sprintf("eq.%d", id)}}
}

func toMovies(rows []models.Row) []models.Movie {
	movies := make([]models.Movie, 0, len(rows))
	for _, r := range rows {
		movies = append(movies, r.ToMovie())
	}
	return movies
}
