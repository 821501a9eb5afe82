package models

import "time"

// Record is the database representation used by the mock REST server.
type Record struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Name        string    `gorm:"column:name;not null;size:255"`
	Description string    `gorm:"column:description;type:text"`
	Image       string    `gorm:"column:image;not null;size:1024"`
	Rating      float64   `gorm:"column:rating;not null;default:0"`
	Genres      []string  `gorm:"column:genres;serializer:json;type:text"`
	InTheaters  bool      `gorm:"column:in_theaters;not null;default:false"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName overrides the table name.
func (Record) TableName() string {
	return "items"
}

// RecordFromMovie converts a movie to a database record.
func RecordFromMovie(m Movie) Record {
	return Record{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Image:       m.Image,
		Rating:      m.Rating,
		Genres:      cloneGenres(m.Genres),
		InTheaters:  m.InTheaters,
	}
}

// ToMovie converts the record to a movie.
func (r Record) ToMovie() Movie {
	return Movie{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Image:       r.Image,
		Rating:      r.Rating,
		Genres:      cloneGenres(r.Genres),
		InTheaters:  r.InTheaters,
	}
}
