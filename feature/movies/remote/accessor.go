package remote

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"movie-catalog/feature/movies/models"

	"go.uber.org/zap"
)

// ErrNotFound matches a RemoteError whose status is 404.
var ErrNotFound = errors.New("remote: not found")

// Accessor performs CRUD calls against the remote movie store.
// Each operation is exactly one network round trip; implementations hold no movie state.
type Accessor interface {
	// List returns every movie, newest first when the backend can order.
	List(ctx context.Context) ([]models.Movie, error)
	// Create stores a draft and returns it with the server assigned id.
	Create(ctx context.Context, draft models.Draft) (models.Movie, error)
	// Update replaces a movie and returns the server confirmed version.
	Update(ctx context.Context, movie models.Movie) (models.Movie, error)
	// Delete removes a movie.
	Delete(ctx context.Context, id int64) error
}

// RemoteError reports a non-2xx response or a transport failure.
type RemoteError struct {
	// Op is the accessor operation (list, create, update, delete).
	Op string
	// Status is the HTTP status code, 0 when the request never got a response.
	Status int
	// Message is the backend's error message or the raw response body.
	Message string
	// Err is the underlying transport or decoding error.
	Err error
}

func (e *RemoteError) Error() string {
	switch {
	case e.Status == 0 && e.Err != nil:
		return fmt.Sprintf("remote %s: %v", e.Op, e.Err)
	case e.Message != "":
		return fmt.Sprintf("remote %s: status %d: %s", e.Op, e.Status, e.Message)
	default:
		return fmt.Sprintf("remote %s: status %d", e.Op, e.Status)
	}
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrNotFound) true for 404 responses.
func (e *RemoteError) Is(target error) bool {
	return target == ErrNotFound && e.Status == http.StatusNotFound
}

// StatusOf returns the HTTP status carried by err, or 0.
func StatusOf(err error) int {
	var re *RemoteError
	if errors.As(err, &re) {
		return re.Status
	}
	return 0
}

// New builds the accessor selected by cfg.Backend.
func New(cfg Config, logger *zap.Logger) (Accessor, error) {
	client := &http.Client{}
	if cfg.TimeoutSeconds > 0 {
		client.Timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}

	switch cfg.Backend {
	case BackendREST, "":
		if cfg.BaseURL == "" {
			return nil, fmt.Errorf("remote: base_url is required for the %s backend", BackendREST)
		}
		return NewRESTClient(client, cfg.BaseURL, cfg.Collection, logger), nil
	case BackendSupabase:
		if cfg.SupabaseURL == "" || cfg.SupabaseKey == "" {
			return nil, fmt.Errorf("remote: supabase_url and supabase_key are required for the %s backend", BackendSupabase)
		}
		return NewSupabaseClient(client, cfg.SupabaseURL, cfg.SupabaseKey, cfg.Table, logger), nil
	default:
		return nil, fmt.Errorf("remote: unknown backend %q", cfg.Backend)
	}
}
