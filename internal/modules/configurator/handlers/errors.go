package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/MuhamadAgungGumelar/sales-agent-configurator/internal/core/agentconfig"
	"github.com/MuhamadAgungGumelar/sales-agent-configurator/internal/core/followup"
	"github.com/MuhamadAgungGumelar/sales-agent-configurator/internal/core/stage"
	"github.com/MuhamadAgungGumelar/sales-agent-configurator/internal/modules/configurator/repositories"
	"github.com/MuhamadAgungGumelar/sales-agent-configurator/internal/modules/configurator/services"
	"github.com/MuhamadAgungGumelar/sales-agent-configurator/internal/shared/utils"
)

// respondError maps service errors onto HTTP statuses
func respondError(c *fiber.Ctx, err error) error {
	var validationErr *agentconfig.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":  "Invalid agent configuration",
			"issues": validationErr.Issues,
		})
	case errors.Is(err, repositories.ErrAgentNotFound),
		errors.Is(err, services.ErrNoDraft),
		errors.Is(err, stage.ErrStageNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, repositories.ErrAgentExists),
		errors.Is(err, agentconfig.ErrDeleteDefaultStage):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, services.ErrNoFollowUpStrategy),
		errors.Is(err, stage.ErrNoDefaultStage),
		errors.Is(err, stage.ErrMultipleDefaultStages),
		errors.Is(err, stage.ErrInvalidTimeoutTarget),
		errors.Is(err, stage.ErrInvalidCondition),
		errors.Is(err, stage.ErrInvalidTimeoutAction),
		errors.Is(err, followup.ErrInvalidQuietHours),
		errors.Is(err, agentconfig.ErrInvalidTimezone):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	default:
		utils.LogError("❌ Request failed", err, map[string]interface{}{"path": c.Path()})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
}

// respondInvalid answers a failed save with every error and warning
func respondInvalid(c *fiber.Ctx, result agentconfig.Result) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
		"error":    "Invalid agent configuration",
		"issues":   result.Errors,
		"warnings": result.Warnings,
	})
}
