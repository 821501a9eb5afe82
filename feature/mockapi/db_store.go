package mockapi

import (
	"context"
	"errors"
	"fmt"

	"movie-catalog/feature/movies/models"

	"gorm.io/gorm"
)

// DBStore keeps the collection in a relational table through gorm.
type DBStore struct {
	db *gorm.DB
}

// NewDBStore creates a store and migrates the items table.
func NewDBStore(db *gorm.DB) (*DBStore, error) {
	if err := db.AutoMigrate(&models.Record{}); err != nil {
		return nil, fmt.Errorf("failed to migrate items table: %w", err)
	}
	return &DBStore{db: db}, nil
}

func (s *DBStore) List(ctx context.Context) ([]models.Movie, error) {
	var records []models.Record
	if err := s.db.WithContext(ctx).Order("id asc").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list movies: %w", err)
	}

	movies := make([]models.Movie, 0, len(records))
	for _, r := range records {
		movies = append(movies, r.ToMovie())
	}
	return movies, nil
}

func (s *DBStore) Get(ctx context.Context, id int64) (models.Movie, error) {
	var record models.Record
	err := s.db.WithContext(ctx).Where("id = ?", id).Take(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Movie{}, ErrNotFound
	}
	if err != nil {
		return models.Movie{}, fmt.Errorf("failed to get movie %d: %w", id, err)
	}
	return record.ToMovie(), nil
}

func (s *DBStore) Create(ctx context.Context, movie models.Movie) (models.Movie, error) {
	record := models.RecordFromMovie(movie)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if record.ID != 0 {
			var count int64
			if err := tx.Model(&models.Record{}).Where("id = ?", record.ID).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return ErrConflict
			}
		}
		return tx.Create(&record).Error
	})
	if errors.Is(err, ErrConflict) {
		return models.Movie{}, ErrConflict
	}
	if err != nil {
		return models.Movie{}, fmt.Errorf("failed to create movie: %w", err)
	}
	return record.ToMovie(), nil
}

func (s *DBStore) Update(ctx context.Context, movie models.Movie) (models.Movie, error) {
	record := models.RecordFromMovie(movie)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Record
		if err := tx.Where("id = ?", movie.ID).Take(&existing).Error; err != nil {
			return err
		}
		record.CreatedAt = existing.CreatedAt
		return tx.Save(&record).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Movie{}, ErrNotFound
	}
	if err != nil {
		return models.Movie{}, fmt.Errorf("failed to update movie %d: %w", movie.ID, err)
	}
	return record.ToMovie(), nil
}

func (s *DBStore) Delete(ctx context.Context, id int64) error {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Record{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete movie %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
