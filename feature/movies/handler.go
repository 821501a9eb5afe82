package movies

import (
	"errors"

	"movie-catalog/core/logger"
	"movie-catalog/feature/movies/form"
	"movie-catalog/feature/movies/remote"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler exposes the coordinator over HTTP.
type Handler struct {
	coord  *Coordinator
	logger *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(coord *Coordinator, logger *zap.Logger) *Handler {
	return &Handler{coord: coord, logger: logger}
}

// RatingRequest is the body of a rating update.
type RatingRequest struct {
	Rating float64 `json:"rating"`
}

// RegisterRoutes registers the catalog routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/catalog")
	group.Get("/movies", h.HandleList)
	group.Post("/movies/refresh", h.HandleRefresh)
	group.Post("/movies", h.HandleCreate)
	group.Put("/movies/:id", h.HandleUpdate)
	group.Delete("/movies/:id", h.HandleDelete)
	group.Put("/movies/:id/rating", h.HandleRating)
	group.Get("/stats", h.HandleStats)
	group.Get("/notifications", h.HandleNotifications)
}

// HandleList returns the cached movies, refetching when the cache is stale.
// @Summary List Movies
// @Tags catalog
// @Produce json
// @Success 200 {array} models.Movie
// @Failure 502 {object} map[string]any "Remote store failure"
// @Router /catalog/movies [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	movies, err := h.coord.Movies(c.Context())
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(movies)
}

// HandleRefresh forces a reload from the remote store.
// @Summary Refresh Movies
// @Tags catalog
// @Produce json
// @Success 200 {array} models.Movie
// @Failure 502 {object} map[string]any "Remote store failure"
// @Router /catalog/movies/refresh [post]
func (h *Handler) HandleRefresh(c *fiber.Ctx) error {
	movies, err := h.coord.Load(c.Context())
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(movies)
}

// HandleCreate validates the form and creates a movie.
// @Summary Create Movie
// @Tags catalog
// @Accept json
// @Produce json
// @Param movie body form.MovieForm true "Movie"
// @Success 201 {object} models.Movie
// @Failure 400 {object} map[string]any "Validation failed"
// @Failure 502 {object} map[string]any "Remote store failure"
// @Router /catalog/movies [post]
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	draft, err := form.Decode(c.Body())
	if err != nil {
		return h.respondError(c, err)
	}

	created, err := h.coord.Create(c.Context(), draft)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// HandleUpdate validates the form and replaces the movie.
// @Summary Update Movie
// @Tags catalog
// @Accept json
// @Produce json
// @Param id path int true "Movie ID"
// @Param movie body form.MovieForm true "Movie"
// @Success 200 {object} models.Movie
// @Failure 400 {object} map[string]any "Validation failed"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 502 {object} map[string]any "Remote store failure"
// @Router /catalog/movies/{id} [put]
func (h *Handler) HandleUpdate(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}

	draft, err := form.Decode(c.Body())
	if err != nil {
		return h.respondError(c, err)
	}

	updated, err := h.coord.Update(c.Context(), draft.WithID(int64(id)))
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(updated)
}

// HandleDelete removes a movie.
// @Summary Delete Movie
// @Tags catalog
// @Param id path int true "Movie ID"
// @Success 204
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 502 {object} map[string]any "Remote store failure"
// @Router /catalog/movies/{id} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}

	if err := h.coord.Delete(c.Context(), int64(id)); err != nil {
		return h.respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleRating changes the rating of a cached movie.
// @Summary Rate Movie
// @Tags catalog
// @Accept json
// @Produce json
// @Param id path int true "Movie ID"
// @Param rating body RatingRequest true "Rating"
// @Success 200 {object} models.Movie
// @Failure 400 {object} map[string]any "Validation failed"
// @Failure 404 {object} map[string]string "Not in catalog"
// @Router /catalog/movies/{id}/rating [put]
func (h *Handler) HandleRating(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}

	var req RatingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}

	movie, found, err := h.coord.UpdateRating(c.Context(), int64(id), req.Rating)
	if err != nil {
		return h.respondError(c, err)
	}
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "movie not in catalog"})
	}
	return c.JSON(movie)
}

// HandleStats returns the catalog counters.
// @Summary Catalog Stats
// @Tags catalog
// @Produce json
// @Success 200 {object} Stats
// @Router /catalog/stats [get]
func (h *Handler) HandleStats(c *fiber.Ctx) error {
	return c.JSON(h.coord.Stats())
}

// HandleNotifications returns the visible notifications.
// @Summary Notifications
// @Tags catalog
// @Produce json
// @Success 200 {array} notify.Notification
// @Router /catalog/notifications [get]
func (h *Handler) HandleNotifications(c *fiber.Ctx) error {
	center := h.coord.Notifications()
	if center == nil {
		return c.JSON([]any{})
	}
	return c.JSON(center.List())
}

func (h *Handler) respondError(c *fiber.Ctx, err error) error {
	l := logger.WithRayID(h.logger, c)

	var verr *form.ValidationError
	if errors.As(err, &verr) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "validation failed",
			"fields": verr.Fields,
		})
	}

	if errors.Is(err, ErrPending) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	}

	if errors.Is(err, remote.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}

	var re *remote.RemoteError
	if errors.As(err, &re) {
		l.Error("Remote store request failed", zap.String("op", re.Op), zap.Int("status", re.Status), zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error":  err.Error(),
			"status": re.Status,
		})
	}

	l.Error("Catalog request failed", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}
