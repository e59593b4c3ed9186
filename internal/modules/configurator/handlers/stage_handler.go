package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// AddStage godoc
// @Summary Add a conversation stage
// @Description Append a blank stage to the draft funnel
// @Tags Drafts
// @Produce json
// @Param id path string true "Agent ID"
// @Success 201 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /agents/{id}/draft/stages [post]
func (h *AgentHandler) AddStage(c *fiber.Ctx) error {
	_, created, err := h.agentService.AddStage(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status": "success",
		"data":   created,
	})
}

// DuplicateStage godoc
// @Summary Duplicate a conversation stage
// @Description Copy a draft stage under a new id. The copy is never the default stage.
// @Tags Drafts
// @Produce json
// @Param id path string true "Agent ID"
// @Param stageId path string true "Stage ID"
// @Success 201 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /agents/{id}/draft/stages/{stageId}/duplicate [post]
func (h *AgentHandler) DuplicateStage(c *fiber.Ctx) error {
	_, dup, err := h.agentService.DuplicateStage(c.Params("id"), c.Params("stageId"))
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status": "success",
		"data":   dup,
	})
}

// DeleteStage godoc
// @Summary Delete a conversation stage
// @Description Remove a draft stage and the transitions into it. The default stage cannot be deleted.
// @Tags Drafts
// @Produce json
// @Param id path string true "Agent ID"
// @Param stageId path string true "Stage ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /agents/{id}/draft/stages/{stageId} [delete]
func (h *AgentHandler) DeleteStage(c *fiber.Ctx) error {
	if _, err := h.agentService.DeleteStage(c.Params("id"), c.Params("stageId")); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "Stage deleted",
	})
}
