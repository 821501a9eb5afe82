package mocks

import (
	"context"

	"movie-catalog/feature/movies/models"

	"github.com/stretchr/testify/mock"
)

// Accessor is a mock implementation of remote.Accessor
type Accessor struct {
	mock.Mock
}

func (m *Accessor) List(ctx context.Context) ([]models.Movie, error) {
	args := m.Called(ctx)
	if movies, ok := args.Get(0).([]models.Movie); ok {
		return movies, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Accessor) Create(ctx context.Context, draft models.Draft) (models.Movie, error) {
	args := m.Called(ctx, draft)
	return args.Get(0).(models.Movie), args.Error(1)
}

func (m *Accessor) Update(ctx context.Context, movie models.Movie) (models.Movie, error) {
	args := m.Called(ctx, movie)
	return args.Get(0).(models.Movie), args.Error(1)
}

func (m *Accessor) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
