package models

import "math"

// Movie is one catalog entry as exchanged with the REST backend.
type Movie struct {
	ID          int64    `json:"id"`          // server assigned, negative while a create is pending
	Name        string   `json:"name"`        // non-empty
	Description string   `json:"description"` // optional, defaults to ""
	Image       string   `json:"image"`       // poster URL
	Rating      float64  `json:"rating"`      // 0 means unrated
	Genres      []string `json:"genres"`      // display order
	InTheaters  bool     `json:"inTheaters"`
}

// Draft is a movie that has not been assigned an id yet.
type Draft struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Rating      float64  `json:"rating"`
	Genres      []string `json:"genres"`
	InTheaters  bool     `json:"inTheaters"`
}

// Key returns the cache key of a movie.
func Key(m Movie) int64 {
	return m.ID
}

// WithID builds the movie a draft becomes once it has an id.
func (d Draft) WithID(id int64) Movie {
	return Movie{
		ID:          id,
		Name:        d.Name,
		Description: d.Description,
		Image:       d.Image,
		Rating:      d.Rating,
		Genres:      cloneGenres(d.Genres),
		InTheaters:  d.InTheaters,
	}
}

// Draft strips the id from a movie.
func (m Movie) Draft() Draft {
	return Draft{
		Name:        m.Name,
		Description: m.Description,
		Image:       m.Image,
		Rating:      m.Rating,
		Genres:      cloneGenres(m.Genres),
		InTheaters:  m.InTheaters,
	}
}

// IsPlaceholder reports whether the id was generated locally for a pending create.
func (m Movie) IsPlaceholder() bool {
	return m.ID < 0
}

// Normalize fills nil genres so the JSON form is always an array.
func (m Movie) Normalize() Movie {
	if m.Genres == nil {
		m.Genres = []string{}
	}
	return m
}

// AverageRating is the mean of the positive ratings rounded to one decimal, or 0 when no movie is rated.
func AverageRating(movies []Movie) float64 {
	var sum float64
	var rated int
	for _, m := range movies {
		if m.Rating > 0 {
			sum += m.Rating
			rated++
		}
	}
	if rated == 0 {
		return 0
	}
	return math.Round(sum/float64(rated)*10) / 10
}

func cloneGenres(g []string) []string {
	out := make([]string, len(g))
	copy(out, g)
	return out
}
