package history

import (
	"strconv"

	"account-sync/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for sync history.
type Handler struct {
	repo         *Repository
	logger       *zap.Logger
	defaultLimit int
}

// NewHandler creates a new HTTP handler.
func NewHandler(repo *Repository, logger *zap.Logger, defaultLimit int) *Handler {
	if defaultLimit <= 0 {
		defaultLimit = 20
	}
	return &Handler{repo: repo, logger: logger, defaultLimit: defaultLimit}
}

// RegisterRoutes registers the history routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/history", h.HandleList)
}

// HandleList returns recent sync runs.
// @Summary List Sync Runs
// @Description Returns recorded sync runs, newest first.
// @Tags history
// @Produce json
// @Param limit query int false "Maximum number of runs (default 20, max 500)"
// @Success 200 {array} history.SyncRun "Sync runs"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /history [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	limit := h.defaultLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "limit must be a positive integer"})
		}
		limit = n
	}

	runs, err := h.repo.List(c.Context(), limit)
	if err != nil {
		l.Error("History list failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(runs)
}
