package cmd

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"movie-catalog/core/config"
	"movie-catalog/core/logger"
	"movie-catalog/feature/movies"
	"movie-catalog/feature/movies/form"
	"movie-catalog/feature/movies/models"
	"movie-catalog/feature/movies/remote"

	"github.com/spf13/cobra"
)

// moviesCmd groups the catalog commands that run against the configured remote.
var moviesCmd = &cobra.Command{
	Use:   "movies",
	Short: "Manage the movie catalog",
	Long:  `Lists and edits movies in the configured remote store (rest or supabase).`,
}

var movieFlags struct {
	name        string
	description string
	image       string
	genres      []string
	inTheaters  bool
	rating      float64
}

var moviesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List movies",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		coord, err := newCoordinator()
		if err != nil {
			return err
		}
		list, err := coord.Load(cmd.Context())
		if err != nil {
			return err
		}
		printMovies(cmd.OutOrStdout(), list)
		return nil
	},
}

var moviesAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a movie",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		draft, err := form.MovieForm{
			Name:        movieFlags.name,
			Description: movieFlags.description,
			Image:       movieFlags.image,
			Genres:      movieFlags.genres,
			InTheaters:  movieFlags.inTheaters,
			Rating:      movieFlags.rating,
		}.Validate()
		if err != nil {
			return err
		}

		coord, err := newCoordinator()
		if err != nil {
			return err
		}
		created, err := coord.Create(cmd.Context(), draft)
		if err != nil {
			return err
		}
		printMovies(cmd.OutOrStdout(), []models.Movie{created})
		return nil
	},
}

var moviesUpdateCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Update a movie; only the given flags change",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseMovieID(args[0])
		if err != nil {
			return err
		}

		coord, current, err := loadMovie(cmd.Context(), id)
		if err != nil {
			return err
		}

		f := form.MovieForm{
			Name:        current.Name,
			Description: current.Description,
			Image:       current.Image,
			Genres:      current.Genres,
			InTheaters:  current.InTheaters,
			Rating:      current.Rating,
		}
		flags := cmd.Flags()
		if flags.Changed("name") {
			f.Name = movieFlags.name
		}
		if flags.Changed("description") {
			f.Description = movieFlags.description
		}
		if flags.Changed("image") {
			f.Image = movieFlags.image
		}
		if flags.Changed("genre") {
			f.Genres = movieFlags.genres
		}
		if flags.Changed("in-theaters") {
			f.InTheaters = movieFlags.inTheaters
		}
		if flags.Changed("rating") {
			f.Rating = movieFlags.rating
		}

		draft, err := f.Validate()
		if err != nil {
			return err
		}
		updated, err := coord.Update(cmd.Context(), draft.WithID(id))
		if err != nil {
			return err
		}
		printMovies(cmd.OutOrStdout(), []models.Movie{updated})
		return nil
	},
}

var moviesDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a movie",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseMovieID(args[0])
		if err != nil {
			return err
		}
		coord, err := newCoordinator()
		if err != nil {
			return err
		}
		if err := coord.Delete(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted movie %d\n", id)
		return nil
	},
}

var moviesRateCmd = &cobra.Command{
	Use:   "rate [id] [rating]",
	Short: "Set the rating of a movie",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseMovieID(args[0])
		if err != nil {
			return err
		}
		rating, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid rating %q: %w", args[1], err)
		}

		coord, err := newCoordinator()
		if err != nil {
			return err
		}
		if _, err := coord.Load(cmd.Context()); err != nil {
			return err
		}

		movie, found, err := coord.UpdateRating(cmd.Context(), id, rating)
		if err != nil {
			return err
		}
		if !found {
			fmt.Fprintf(cmd.OutOrStdout(), "Movie %d is not in the catalog, nothing changed\n", id)
			return nil
		}
		printMovies(cmd.OutOrStdout(), []models.Movie{movie})
		return nil
	},
}

var moviesStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show catalog totals",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		coord, err := newCoordinator()
		if err != nil {
			return err
		}
		if _, err := coord.Load(cmd.Context()); err != nil {
			return err
		}
		stats := coord.Stats()
		fmt.Fprintf(cmd.OutOrStdout(), "Total movies:   %d\n", stats.TotalMovies)
		fmt.Fprintf(cmd.OutOrStdout(), "Average rating: %.1f\n", stats.AverageRating)
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{moviesAddCmd, moviesUpdateCmd} {
		c.Flags().StringVar(&movieFlags.name, "name", "", "movie name")
		c.Flags().StringVar(&movieFlags.description, "description", "", "short description")
		c.Flags().StringVar(&movieFlags.image, "image", "", "poster URL")
		c.Flags().StringSliceVar(&movieFlags.genres, "genre", nil, "genre, repeatable")
		c.Flags().BoolVar(&movieFlags.inTheaters, "in-theaters", false, "currently in theaters")
		c.Flags().Float64Var(&movieFlags.rating, "rating", 0, "rating, 0 means unrated")
	}

	moviesCmd.AddCommand(moviesListCmd, moviesAddCmd, moviesUpdateCmd, moviesDeleteCmd, moviesRateCmd, moviesStatsCmd)
	RootCmd.AddCommand(moviesCmd)
}

// newCoordinator builds a coordinator for the configured remote. CLI runs log warnings only.
func newCoordinator() (*movies.Coordinator, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logCfg := cfg.Log
	logCfg.Level = "warn"
	logCfg.Format = "console"
	logg, err := logger.New(&logCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	accessor, err := remote.New(cfg.Remote, logg)
	if err != nil {
		return nil, err
	}
	return movies.NewCoordinator(accessor, nil, logg), nil
}

func loadMovie(ctx context.Context, id int64) (*movies.Coordinator, models.Movie, error) {
	coord, err := newCoordinator()
	if err != nil {
		return nil, models.Movie{}, err
	}
	if _, err := coord.Load(ctx); err != nil {
		return nil, models.Movie{}, err
	}
	movie, ok := coord.Find(id)
	if !ok {
		return nil, models.Movie{}, fmt.Errorf("movie %d not found", id)
	}
	return coord, movie, nil
}

func parseMovieID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid movie id %q", s)
	}
	return id, nil
}

func printMovies(w io.Writer, list []models.Movie) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tRATING\tGENRES\tIN THEATERS")
	for _, m := range list {
		rating := "-"
		if m.Rating > 0 {
			rating = strconv.FormatFloat(m.Rating, 'f', 1, 64)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%v\n", m.ID, m.Name, rating, strings.Join(m.Genres, ", "), m.InTheaters)
	}
	_ = tw.Flush()
}

