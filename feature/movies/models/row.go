package models

import "time"

// Row is the snake_case shape of a movie in the Supabase "movies" table.
type Row struct {
	ID          int64      `json:"id,omitempty"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Image       string     `json:"image"`
	Rating      float64    `json:"rating"`
	Genres      []string   `json:"genres"`
	InTheaters  bool       `json:"in_theaters"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
}

// RowFromMovie converts a movie to its table row. A zero id is left out of insert payloads.
func RowFromMovie(m Movie) Row {
	return Row{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Image:       m.Image,
		Rating:      m.Rating,
		Genres:      cloneGenres(m.Genres),
		InTheaters:  m.InTheaters,
	}
}

// RowFromDraft converts a draft to an insert payload.
func RowFromDraft(d Draft) Row {
	return RowFromMovie(d.WithID(0))
}

// ToMovie converts a table row back to a movie.
func (r Row) ToMovie() Movie {
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
