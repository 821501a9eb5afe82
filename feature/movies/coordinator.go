package movies

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync/atomic"

	"movie-catalog/core/notify"
	"movie-catalog/core/optimistic"
	"movie-catalog/feature/movies/form"
	"movie-catalog/feature/movies/models"
	"movie-catalog/feature/movies/remote"

	"go.uber.org/zap"
)

// ErrPending is returned when a mutation targets a movie whose create has not resolved yet.
var ErrPending = errors.New("movies: movie is still being created")

// Stats summarizes the cached catalog.
type Stats struct {
	TotalMovies   int     `json:"totalMovies"`
	AverageRating float64 `json:"averageRating"`
	Loading       bool    `json:"loading"`
	Stale         bool    `json:"stale"`
}

// Coordinator applies movie mutations optimistically to the local cache and
// reconciles or rolls them back once the remote store answers.
type Coordinator struct {
	cache  *optimistic.Cache[int64, models.Movie]
	remote remote.Accessor
	notify *notify.Center
	logger *zap.Logger

	loading     atomic.Int32
	placeholder atomic.Int64
}

// NewCoordinator creates a coordinator with an empty cache. center may be nil.
func NewCoordinator(accessor remote.Accessor, center *notify.Center, logger *zap.Logger) *Coordinator {
	return &Coordinator{
		cache:  optimistic.NewCache(models.Key),
		remote: accessor,
		notify: center,
		logger: logger,
	}
}

// Notifications returns the attached notification center, or nil.
func (c *Coordinator) Notifications() *notify.Center {
	return c.notify
}

// Load replaces the cache with the remote list.
func (c *Coordinator) Load(ctx context.Context) ([]models.Movie, error) {
	movies, err := c.cache.Refresh(ctx, c.list)
	if err != nil {
		c.fail("Failed to load movies", err)
		return nil, fmt.Errorf("failed to load movies: %w", err)
	}
	return movies, nil
}

// Movies returns the cached movies, refetching first when the cache is stale or empty.
func (c *Coordinator) Movies(ctx context.Context) ([]models.Movie, error) {
	movies, err := c.cache.Fetch(ctx, c.list)
	if err != nil {
		c.fail("Failed to load movies", err)
		return nil, fmt.Errorf("failed to load movies: %w", err)
	}
	return movies, nil
}

// Snapshot returns the cached movies without touching the network.
func (c *Coordinator) Snapshot() []models.Movie {
	return c.cache.Items()
}

// Find returns a cached movie by id.
func (c *Coordinator) Find(id int64) (models.Movie, bool) {
	return c.cache.Find(id)
}

// Create shows a placeholder immediately and swaps it for the server record on success.
func (c *Coordinator) Create(ctx context.Context, draft models.Draft) (models.Movie, error) {
	placeholder := draft.WithID(c.nextPlaceholder())
	tx := optimistic.Begin(c.cache, c.cache.AppendOp(placeholder))

	created, err := c.remote.Create(ctx, draft)
	if err != nil {
		c.rollback(tx, "create", err)
		c.fail("Failed to add movie", err)
		return models.Movie{}, fmt.Errorf("failed to create movie %q: %w", draft.Name, err)
	}

	created = created.Normalize()
	c.commit(tx, "create", c.cache.SwapOp(placeholder.ID, created))
	c.succeed(fmt.Sprintf("Added %q", created.Name))
	return created, nil
}

// Update replaces the cached movie immediately and stores the server confirmed version on success.
func (c *Coordinator) Update(ctx context.Context, movie models.Movie) (models.Movie, error) {
	if movie.IsPlaceholder() {
		return models.Movie{}, ErrPending
	}

	movie = movie.Normalize()
	tx := optimistic.Begin(c.cache, replaceOp(movie))

	updated, err := c.remote.Update(ctx, movie)
	if err != nil {
		c.rollback(tx, "update", err)
		c.fail("Failed to update movie", err)
		return models.Movie{}, fmt.Errorf("failed to update movie %d: %w", movie.ID, err)
	}

	updated = updated.Normalize()
	c.commit(tx, "update", c.cache.UpsertOp(updated))
	c.succeed(fmt.Sprintf("Updated %q", updated.Name))
	return updated, nil
}

// Delete removes the cached movie immediately and restores it if the remote delete fails.
func (c *Coordinator) Delete(ctx context.Context, id int64) error {
	if id < 0 {
		return ErrPending
	}

	tx := optimistic.Begin(c.cache, c.cache.RemoveOp(id))

	if err := c.remote.Delete(ctx, id); err != nil {
		c.rollback(tx, "delete", err)
		c.fail("Failed to delete movie", err)
		return fmt.Errorf("failed to delete movie %d: %w", id, err)
	}

	c.commit(tx, "delete", c.cache.RemoveOp(id))
	c.succeed("Movie deleted")
	return nil
}

// UpdateRating changes only the rating of a cached movie. A movie missing from the
// cache is left alone: found is false and no remote call is made.
func (c *Coordinator) UpdateRating(ctx context.Context, id int64, rating float64) (movie models.Movie, found bool, err error) {
	if rating < 0 || math.IsNaN(rating) || math.IsInf(rating, 0) {
		return models.Movie{}, false, &form.ValidationError{Fields: map[string]string{"rating": "Rating must be zero or positive"}}
	}

	current, ok := c.cache.Find(id)
	if !ok {
		c.logger.Debug("Rating update skipped, movie not cached", zap.Int64("id", id))
		return models.Movie{}, false, nil
	}

	current.Rating = rating
	updated, err := c.Update(ctx, current)
	if err != nil {
		return models.Movie{}, true, err
	}
	return updated, true, nil
}

// Stats returns the derived catalog counters.
func (c *Coordinator) Stats() Stats {
	movies := c.cache.Items()
	return Stats{
		TotalMovies:   len(movies),
		AverageRating: models.AverageRating(movies),
		Loading:       c.loading.Load() > 0,
		Stale:         c.cache.Stale(),
	}
}

func (c *Coordinator) list(ctx context.Context) ([]models.Movie, error) {
	c.loading.Add(1)
	defer c.loading.Add(-1)

	movies, err := c.remote.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range movies {
		movies[i] = movies[i].Normalize()
	}
	return movies, nil
}

func (c *Coordinator) nextPlaceholder() int64 {
	return -c.placeholder.Add(1)
}

func (c *Coordinator) commit(tx *optimistic.Tx[int64, models.Movie], op string, reconcile optimistic.Mutation[models.Movie]) {
	if err := tx.Commit(reconcile); err != nil {
		c.logger.Warn("Optimistic commit skipped", zap.String("op", op), zap.Error(err))
	}
}

func (c *Coordinator) rollback(tx *optimistic.Tx[int64, models.Movie], op string, cause error) {
	c.logger.Warn("Remote mutation failed, rolling back",
		zap.String("op", op),
		zap.Int("status", remote.StatusOf(cause)),
		zap.Error(cause),
	)
	if err := tx.Rollback(); err != nil {
		c.logger.Warn("Optimistic rollback skipped", zap.String("op", op), zap.Error(err))
	}
}

func (c *Coordinator) succeed(msg string) {
	if c.notify != nil {
		c.notify.Success(msg)
	}
}

func (c *Coordinator) fail(msg string, err error) {
	if c.notify != nil {
		c.notify.Error(fmt.Sprintf("%s: %v", msg, err))
	}
}

// replaceOp swaps the movie with the same id in place and leaves the sequence alone when it is missing.
func replaceOp(movie models.Movie) optimistic.Mutation[models.Movie] {
	return func(items []models.Movie) []models.Movie {
		for i := range items {
			if items[i].ID == movie.ID {
				items[i] = movie
			}
		}
		return items
	}
}
