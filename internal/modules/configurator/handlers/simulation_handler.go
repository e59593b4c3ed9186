package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/MuhamadAgungGumelar/sales-agent-configurator/internal/core/agentconfig"
	"github.com/MuhamadAgungGumelar/sales-agent-configurator/internal/core/followup"
	"github.com/MuhamadAgungGumelar/sales-agent-configurator/internal/core/stage"
	"github.com/MuhamadAgungGumelar/sales-agent-configurator/internal/modules/configurator/services"
)

// SimulationHandler dry-runs the stage and follow-up engines against an agent
type SimulationHandler struct {
	agentService *services.AgentService
}

func NewSimulationHandler(agentService *services.AgentService) *SimulationHandler {
	return &SimulationHandler{agentService: agentService}
}

type ResolveStageRequest struct {
	// CurrentStageID empty means the lead has not entered the funnel yet
	CurrentStageID string          `json:"currentStageId"`
	Lead           stage.LeadState `json:"lead"`
}

type NextFollowUpRequest struct {
	Stage   agentconfig.FunnelStage `json:"stage"`
	History followup.History        `json:"history"`
}

// ResolveStage godoc
// @Summary Resolve the next conversation stage
// @Description Evaluate the current stage's transitions and timeout for a simulated lead
// @Tags Simulation
// @Accept json
// @Produce json
// @Param id path string true "Agent ID"
// @Param body body ResolveStageRequest true "Lead state"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 422 {object} map[string]interface{}
// @Router /agents/{id}/stages/resolve [post]
func (h *SimulationHandler) ResolveStage(c *fiber.Ctx) error {
	var req ResolveStageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	outcome, err := h.agentService.ResolveStage(c.Params("id"), req.CurrentStageID, req.Lead)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"status": "success",
		"data":   outcome,
	})
}

// NextFollowUp godoc
// @Summary Plan the next follow-up
// @Description Pick the next follow-up template for a lead and check the sending gate
// @Tags Simulation
// @Accept json
// @Produce json
// @Param id path string true "Agent ID"
// @Param body body NextFollowUpRequest true "Funnel stage and history"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 422 {object} map[string]interface{}
// @Router /agents/{id}/followups/next [post]
func (h *SimulationHandler) NextFollowUp(c *fiber.Ctx) error {
	var req NextFollowUpRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if !req.Stage.IsValid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid funnel stage: " + string(req.Stage),
		})
	}

	plan, decision, err := h.agentService.NextFollowUp(c.Params("id"), req.Stage, req.History)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"status": "success",
		"data": fiber.Map{
			"plan": plan,
			"gate": decision,
		},
	})
}
