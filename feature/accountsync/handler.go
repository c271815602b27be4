package accountsync

import (
	"errors"

	"account-sync/core/logger"
	"account-sync/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AccountView is the API representation of an account. The private key is masked.
type AccountView struct {
	Alias      string `json:"alias"`
	Address    string `json:"address,omitempty"`
	PrivateKey string `json:"private_key,omitempty"`
}

// Handler handles HTTP requests for sync.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers the sync routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/sync")
	group.Post("/", h.HandleSync)
	group.Get("/accounts", h.HandleAccounts)
}

// HandleSync runs a sync.
// @Summary Sync Local Document
// @Description Merges the source-of-truth document into the local document. Missing accounts and empty fields are added; mismatches are reported and never overwritten.
// @Tags sync
// @Produce json
// @Param dry_run query boolean false "Compute the report without writing"
// @Success 200 {object} accountsync.Result "Sync Result"
// @Failure 404 {object} map[string]string "Source document not found"
// @Failure 422 {object} map[string]string "Source document has no accounts"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /sync [post]
func (h *Handler) HandleSync(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)
	dryRun := c.Query("dry_run") == "true"

	result, err := h.service.Sync(c.Context(), Options{DryRun: dryRun})
	if err != nil {
		l.Error("Sync failed", zap.Error(err), zap.Bool("dry_run", dryRun))
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(result)
}

// HandleAccounts lists the accounts of the local document with masked keys.
// @Summary List Local Accounts
// @Description Lists aliases and addresses in the local document. Private keys are masked.
// @Tags sync
// @Produce json
// @Success 200 {array} accountsync.AccountView "Accounts"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /sync/accounts [get]
func (h *Handler) HandleAccounts(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	set, err := h.service.Accounts(c.Context())
	if err != nil {
		l.Error("Reading local accounts failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	views := make([]AccountView, 0, set.Len())
	for _, alias := range set.Aliases() {
		acc := set[alias]
		views = append(views, AccountView{
			Alias:      alias,
			Address:    acc.Address,
			PrivateKey: utils.MaskSecret(acc.PrivateKey),
		})
	}
	return c.JSON(views)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrSourceNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ErrNoAccounts):
		return fiber.StatusUnprocessableEntity
	default:
		return fiber.StatusInternalServerError
	}
}
