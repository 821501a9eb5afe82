package remote

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"movie-catalog/feature/movies/models"

	"go.uber.org/zap"
)

// RESTClient talks to a json-server style collection resource.
type RESTClient struct {
	client  *http.Client
	baseURL string
	logger  *zap.Logger
}

// NewRESTClient creates an accessor for {baseURL}/{collection}.
func NewRESTClient(client *http.Client, baseURL, collection string, logger *zap.Logger) *RESTClient {
	if collection == "" {
		collection = "items"
	}
	return &RESTClient{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/") + "/" + strings.Trim(collection, "/"),
		logger:  logger,
	}
}

// List fetches the collection in backend order.
func (c *RESTClient) List(ctx context.Context) ([]models.Movie, error) {
	req, err := newJSONRequest(http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, &RemoteError{Op: "list", Err: err}
	}

	var movies []models.Movie
	if err := do(ctx, c.client, "list", req, &movies); err != nil {
		c.logger.Debug("List movies failed", zap.Error(err))
		return nil, err
	}
	if movies == nil {
		movies = []models.Movie{}
	}
	return movies, nil
}

// Create posts the draft; the server assigns the id.
func (c *RESTClient) Create(ctx context.Context, draft models.Draft) (models.Movie, error) {
	req, err := newJSONRequest(http.MethodPost, c.baseURL, draft)
	if err != nil {
		return models.Movie{}, &RemoteError{Op: "create", Err: err}
	}

	var created models.Movie
	if err := do(ctx, c.client, "create", req, &created); err != nil {
		c.logger.Debug("Create movie failed", zap.String("name", draft.Name), zap.Error(err))
		return models.Movie{}, err
	}
	return created, nil
}

// Update replaces the movie at {collection}/{id}.
func (c *RESTClient) Update(ctx context.Context, movie models.Movie) (models.Movie, error) {
	req, err := newJSONRequest(http.MethodPut, c.itemURL(movie.ID), movie)
	if err != nil {
		return models.Movie{}, &RemoteError{Op: "update", Err: err}
	}

	var updated models.Movie
	if err := do(ctx, c.client, "update", req, &updated); err != nil {
		c.logger.Debug("Update movie failed", zap.Int64("id", movie.ID), zap.Error(err))
		return models.Movie{}, err
	}
	return updated, nil
}

// Delete removes the movie at {collection}/{id}.
func (c *RESTClient) Delete(ctx context.Context, id int64) error {
	req, err := newJSONRequest(http.MethodDelete, c.itemURL(id), nil)
	if err != nil {
		return &RemoteError{Op: "delete", Err: err}
	}

	if err := do(ctx, c.client, "delete", req, nil); err != nil {
		c.logger.Debug("Delete movie failed", zap.Int64("id", id), zap.Error(err))
		return err
	}
	return nil
}

func (c *RESTClient) itemURL(id int64) string {
	return fmt.Sprintf("%s/%d", c.baseURL, id)
}
