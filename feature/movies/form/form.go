package form

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"movie-catalog/feature/movies/models"

	"github.com/go-playground/validator/v10"
)

// MovieForm is the user supplied input for creating or editing a movie.
type MovieForm struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Image       string   `json:"image" validate:"required,url"`
	Genres      []string `json:"genres" validate:"dive,required"`
	InTheaters  bool     `json:"inTheaters"`
	Rating      float64  `json:"rating" validate:"gte=0"`
}

// ValidationError lists the rejected fields with a readable message each.
type ValidationError struct {
	Fields map[string]string `json:"fields"`
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "invalid movie: " + strings.Join(parts, ", ")
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func init() {
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// Defaults returns an empty form with the default field values.
func Defaults() MovieForm {
	return MovieForm{Genres: []string{}}
}

// Validate trims the text fields and checks the form. On success it returns the draft to create.
func (f MovieForm) Validate() (models.Draft, error) {
	f.Name = strings.TrimSpace(f.Name)
	f.Description = strings.TrimSpace(f.Description)
	f.Image = strings.TrimSpace(f.Image)

	genres := make([]string, 0, len(f.Genres))
	for _, g := range f.Genres {
		genres = append(genres, strings.TrimSpace(g))
	}
	f.Genres = genres

	if err := validate.Struct(f); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return models.Draft{}, fmt.Errorf("failed to validate movie: %w", err)
		}
		return models.Draft{}, toValidationError(verrs)
	}

	return models.Draft{
		Name:        f.Name,
		Description: f.Description,
		Image:       f.Image,
		Rating:      f.Rating,
		Genres:      f.Genres,
		InTheaters:  f.InTheaters,
	}, nil
}

// Decode parses a JSON body over the defaults and validates it.
func Decode(body []byte) (models.Draft, error) {
	f := Defaults()
	dec := json.NewDecoder(bytes.NewReader(body))
	if err := dec.Decode(&f); err != nil {
		return models.Draft{}, &ValidationError{Fields: map[string]string{"body": "Invalid JSON"}}
	}
	if f.Genres == nil {
		f.Genres = []string{}
	}
	return f.Validate()
}

func toValidationError(verrs validator.ValidationErrors) *ValidationError {
	out := &ValidationError{Fields: make(map[string]string, len(verrs))}
	for _, fe := range verrs {
		field := fe.Field()
		if strings.HasPrefix(field, "genres[") {
			field = "genres"
		}
		if _, seen := out.Fields[field]; seen {
			continue
		}
		out.Fields[field] = message(field, fe.Tag())
	}
	return out
}

func message(field, tag string) string {
	switch field + "." + tag {
	case "name.required":
		return "Name is required"
	case "image.required":
		return "Image URL is required"
	case "image.url":
		return "Must be a valid URL"
	case "rating.gte":
		return "Rating must be zero or positive"
	case "genres.required":
		return "Genre must not be empty"
	default:
		return fmt.Sprintf("Failed on %s", tag)
	}
}
