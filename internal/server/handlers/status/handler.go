package status

import (
	"fmt"

	"github.com/gitpulse/gitpulse/internal/history"
	"github.com/gitpulse/gitpulse/internal/watcher"
	"github.com/go-core-fx/fiberfx/handler"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

const defaultCycleLimit = 50

type Handler struct {
	watcherSvc *watcher.Service
	historySvc *history.Service

	logger *zap.Logger
}

func NewHandler(watcherSvc *watcher.Service, historySvc *history.Service, logger *zap.Logger) handler.Handler {
	return &Handler{
		watcherSvc: watcherSvc,
		historySvc: historySvc,

		logger: logger,
	}
}

// Register implements handler.Handler.
func (h *Handler) Register(r fiber.Router) {
	r.Get("/status", h.status)
	r.Get("/cycles", h.cycles)
}

func (h *Handler) status(c *fiber.Ctx) error {
	return c.JSON(StatusResponse{
		Target:              h.watcherSvc.Target(),
		Interval:            h.watcherSvc.Interval().String(),
		BaselineFingerprint: h.watcherSvc.Baseline(),
	})
}

func (h *Handler) cycles(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", defaultCycleLimit)
	if limit < 1 {
		return fiber.NewError(fiber.StatusBadRequest, "limit must be positive")
	}

	records, err := h.historySvc.Recent(c.Context(), limit)
	if err != nil {
		return fmt.Errorf("failed to list cycles: %w", err)
	}

	responses := lo.Map(records, func(record history.Record, _ int) CycleResponse {
		return toResponse(&record)
	})

	return c.JSON(responses)
}

func toResponse(record *history.Record) CycleResponse {
	return CycleResponse{
		ID:             record.ID,
		Target:         record.Target,
		OldFingerprint: record.OldFingerprint,
		NewFingerprint: record.NewFingerprint,
		Files:          record.Files,
		CommitHash:     record.CommitHash,
		Outcome:        string(record.Outcome),
		Error:          record.Error,
		DetectedAt:     record.DetectedAt,
		CreatedAt:      record.CreatedAt,
	}
}
