package internal

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type Handlers struct {
	Repository IRepository
	Pipeline   *Pipeline
	logger     *zap.SugaredLogger
	token      string
}

func NewHandlers(repository IRepository, pipeline *Pipeline, logger *zap.SugaredLogger, token string) *Handlers {
	return &Handlers{Repository: repository, Pipeline: pipeline, logger: logger, token: token}
}

func (h *Handlers) Health(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusOK)
}

// Reservations lists outstanding reservations for operator inspection.
func (h *Handlers) Reservations(c *fiber.Ctx) error {
	token := c.Query("token", h.token)

	reservations, err := h.Repository.Reservations(c.Context(), token)
	if err != nil {
		h.logger.Errorf("Error on reservations request: %s", err.Error())
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	if len(reservations) == 0 {
		return c.SendStatus(fiber.StatusNoContent)
	}

	return c.JSON(reservations)
}

// TriggerCheck runs one authorization cycle outside the schedule.
func (h *Handlers) TriggerCheck(c *fiber.Ctx) error {
	if err := h.Pipeline.Run(c.Context()); err != nil {
		h.logger.Errorf("Error on manual check request: %s", err.Error())
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	return c.SendStatus(fiber.StatusOK)
}
