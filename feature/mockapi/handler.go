package mockapi

import (
	"cmp"
	"encoding/json"
	"errors"
	"slices"
	"strconv"
	"strings"

	"movie-catalog/core/logger"
	"movie-catalog/feature/movies/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler serves a json-server compatible collection resource.
type Handler struct {
	store      Store
	collection string
	logger     *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(store Store, collection string, logger *zap.Logger) *Handler {
	return &Handler{store: store, collection: collection, logger: logger}
}

// RegisterRoutes registers the collection routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/" + h.collection)
	group.Get("/", h.HandleList)
	group.Get("/:id", h.HandleGet)
	group.Post("/", h.HandleCreate)
	group.Put("/:id", h.HandleReplace)
	group.Patch("/:id", h.HandlePatch)
	group.Delete("/:id", h.HandleDelete)
}

// HandleList returns the collection.
// @Summary List Items
// @Description Supports _sort, _order (asc|desc) and _limit like json-server.
// @Tags mock
// @Produce json
// @Param _sort query string false "Field to sort by"
// @Param _order query string false "asc or desc"
// @Param _limit query int false "Maximum number of items"
// @Success 200 {array} models.Movie
// @Router /items [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	movies, err := h.store.List(c.Context())
	if err != nil {
		return h.internalError(c, "List items failed", err)
	}

	if field := c.Query("_sort"); field != "" {
		desc := strings.EqualFold(c.Query("_order"), "desc")
		sortMovies(movies, field, desc)
	}

	c.Set("X-Total-Count", strconv.Itoa(len(movies)))
	if limit := c.QueryInt("_limit", -1); limit >= 0 && limit < len(movies) {
		movies = movies[:limit]
	}
	return c.JSON(movies)
}

// HandleGet returns one item.
// @Summary Get Item
// @Tags mock
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} models.Movie
// @Failure 404 {object} map[string]any "Empty object"
// @Router /items/{id} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return notFound(c)
	}

	movie, err := h.store.Get(c.Context(), id)
	if errors.Is(err, ErrNotFound) {
		return notFound(c)
	}
	if err != nil {
		return h.internalError(c, "Get item failed", err)
	}
	return c.JSON(movie)
}

// HandleCreate stores a new item. The id is assigned when absent.
// @Summary Create Item
// @Tags mock
// @Accept json
// @Produce json
// @Param item body models.Movie true "Item"
// @Success 201 {object} models.Movie
// @Failure 409 {object} map[string]string "Duplicate id"
// @Router /items [post]
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	var movie models.Movie
	if err := json.Unmarshal(c.Body(), &movie); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON body"})
	}

	created, err := h.store.Create(c.Context(), movie)
	if errors.Is(err, ErrConflict) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "duplicate id " + strconv.FormatInt(movie.ID, 10)})
	}
	if err != nil {
		return h.internalError(c, "Create item failed", err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// HandleReplace replaces an item.
// @Summary Replace Item
// @Tags mock
// @Accept json
// @Produce json
// @Param id path int true "Item ID"
// @Param item body models.Movie true "Item"
// @Success 200 {object} models.Movie
// @Failure 404 {object} map[string]any "Empty object"
// @Router /items/{id} [put]
func (h *Handler) HandleReplace(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return notFound(c)
	}

	var movie models.Movie
	if err := json.Unmarshal(c.Body(), &movie); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON body"})
	}
	movie.ID = id

	return h.update(c, movie)
}

// HandlePatch merges the body into an item.
// @Summary Patch Item
// @Tags mock
// @Accept json
// @Produce json
// @Param id path int true "Item ID"
// @Param item body models.Movie true "Fields to change"
// @Success 200 {object} models.Movie
// @Failure 404 {object} map[string]any "Empty object"
// @Router /items/{id} [patch]
func (h *Handler) HandlePatch(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return notFound(c)
	}

	movie, err := h.store.Get(c.Context(), id)
	if errors.Is(err, ErrNotFound) {
		return notFound(c)
	}
	if err != nil {
		return h.internalError(c, "Get item failed", err)
	}

	// Unmarshal over the stored item only touches the fields present in the body.
	if err := json.Unmarshal(c.Body(), &movie); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON body"})
	}
	movie.ID = id

	return h.update(c, movie)
}

// HandleDelete removes an item.
// @Summary Delete Item
// @Tags mock
// @Param id path int true "Item ID"
// @Success 200 {object} map[string]any "Empty object"
// @Failure 404 {object} map[string]any "Empty object"
// @Router /items/{id} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return notFound(c)
	}

	err := h.store.Delete(c.Context(), id)
	if errors.Is(err, ErrNotFound) {
		return notFound(c)
	}
	if err != nil {
		return h.internalError(c, "Delete item failed", err)
	}
	return c.JSON(fiber.Map{})
}

func (h *Handler) update(c *fiber.Ctx, movie models.Movie) error {
	updated, err := h.store.Update(c.Context(), movie)
	if errors.Is(err, ErrNotFound) {
		return notFound(c)
	}
	if err != nil {
		return h.internalError(c, "Update item failed", err)
	}
	return c.JSON(updated)
}

func (h *Handler) internalError(c *fiber.Ctx, msg string, err error) error {
	logger.WithRayID(h.logger, c).Error(msg, zap.String("collection", h.collection), zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}

func notFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{})
}

func parseID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	return id, err == nil
}

// sortMovies orders movies by a json field name. Unknown fields keep the stored order.
func sortMovies(movies []models.Movie, field string, desc bool) {
	var compare func(a, b models.Movie) int
	switch field {
	case "id":
		compare = func(a, b models.Movie) int { return cmp.Compare(a.ID, b.ID) }
	case "name":
		compare = func(a, b models.Movie) int { return cmp.Compare(a.Name, b.Name) }
	case "description":
		compare = func(a, b models.Movie) int { return cmp.Compare(a.Description, b.Description) }
	case "image":
		compare = func(a, b models.Movie) int { return cmp.Compare(a.Image, b.Image) }
	case "rating":
		compare = func(a, b models.Movie) int { return cmp.Compare(a.Rating, b.Rating) }
	case "inTheaters":
		compare = func(a, b models.Movie) int { return cmp.Compare(boolRank(a.InTheaters), boolRank(b.InTheaters)) }
	default:
		return
	}

	slices.SortStableFunc(movies, func(a, b models.Movie) int {
		if desc {
			return compare(b, a)
		}
		return compare(a, b)
	})
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}
