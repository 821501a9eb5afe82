package cmd

import (
	"bytes"
	"testing"

	"movie-catalog/feature/movies/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMovieID(t *testing.T) {
	id, err := parseMovieID("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, bad := range []string{"", "abc", "0", "-3"} {
		_, err := parseMovieID(bad)
		assert.Error(t, err, bad)
	}
}

func TestPrintMovies(t *testing.T) {
	var buf bytes.Buffer
	printMovies(&buf, []models.Movie{
		{ID: 1, Name: "Dune", Rating: 8.3, Genres: []string{"sci-fi", "drama"}, InTheaters: true},
		{ID: 2, Name: "Heat"},
	})

	out := buf.String()
	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "sci-fi, drama")
	assert.Contains(t, out, "8.3")
	assert.Regexp(t, `2\s+Heat\s+-`, out)
}

func TestMoviesCommandTree(t *testing.T) {
	names := map[string]bool{}
	for _, c := range moviesCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"list", "add", "update", "delete", "rate", "stats"} {
		assert.True(t, names[want], want)
	}
	assert.NotNil(t, moviesUpdateCmd.Flags().Lookup("in-theaters"))
}
