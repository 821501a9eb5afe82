package mockapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"movie-catalog/feature/movies/models"
)

var (
	// ErrNotFound is returned when no movie has the requested id.
	ErrNotFound = errors.New("mockapi: movie not found")
	// ErrConflict is returned when a create reuses an existing id.
	ErrConflict = errors.New("mockapi: duplicate id")
)

// Store persists the mock collection.
type Store interface {
	// List returns every movie in insertion order.
	List(ctx context.Context) ([]models.Movie, error)
	// Get returns the movie with the given id or ErrNotFound.
	Get(ctx context.Context, id int64) (models.Movie, error)
	// Create stores a movie. A zero id is replaced with max(id)+1; a taken id yields ErrConflict.
	Create(ctx context.Context, movie models.Movie) (models.Movie, error)
	// Update replaces the movie with the same id or returns ErrNotFound.
	Update(ctx context.Context, movie models.Movie) (models.Movie, error)
	// Delete removes the movie with the given id or returns ErrNotFound.
	Delete(ctx context.Context, id int64) error
}

// Seed loads the movies from a JSON array file into store when the store is empty.
// It returns the number of movies created.
func Seed(ctx context.Context, store Store, path string) (int, error) {
	if path == "" {
		return 0, nil
	}

	existing, err := store.List(ctx)
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		return 0, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read seed file: %w", err)
	}

	var movies []models.Movie
	if err := json.Unmarshal(data, &movies); err != nil {
		return 0, fmt.Errorf("failed to parse seed file: %w", err)
	}

	for i, m := range movies {
		if _, err := store.Create(ctx, m.Normalize()); err != nil {
			return i, fmt.Errorf("failed to seed movie %q: %w", m.Name, err)
		}
	}
	return len(movies), nil
}

// nextID returns max(id)+1, or 1 for an empty collection.
func nextID(movies []models.Movie) int64 {
	var maxID int64
	for _, m := range movies {
		if m.ID > maxID {
			maxID = m.ID
		}
	}
	return maxID + 1
}
