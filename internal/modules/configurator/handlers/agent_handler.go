package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/MuhamadAgungGumelar/sales-agent-configurator/internal/core/agentconfig"
	"github.com/MuhamadAgungGumelar/sales-agent-configurator/internal/core/export"
	"github.com/MuhamadAgungGumelar/sales-agent-configurator/internal/modules/configurator/services"
)

type AgentHandler struct {
	agentService *services.AgentService
}

func NewAgentHandler(agentService *services.AgentService) *AgentHandler {
	return &AgentHandler{
		agentService: agentService,
	}
}

type CreateAgentRequest struct {
	Name string `json:"name"`
}

type SetActiveRequest struct {
	IsActive bool `json:"isActive"`
}

// ListAgents godoc
// @Summary List agents
// @Description List every saved agent
// @Tags Agents
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /agents [get]
func (h *AgentHandler) ListAgents(c *fiber.Ctx) error {
	agents, err := h.agentService.ListAgents()
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"status": "success",
		"data":   agents,
		"count":  len(agents),
	})
}

// CreateAgent godoc
// @Summary Create a new agent
// @Description Create an agent from the default configuration
// @Tags Agents
// @Accept json
// @Produce json
// @Param agent body CreateAgentRequest false "Agent name"
// @Success 201 {object} agentconfig.Agent
// @Failure 400 {object} map[string]interface{}
// @Router /agents [post]
func (h *AgentHandler) CreateAgent(c *fiber.Ctx) error {
	var req CreateAgentRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid request body",
			})
		}
	}

	agent, err := h.agentService.CreateAgent(req.Name)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(agent)
}

// ImportAgent godoc
// @Summary Import an agent
// @Description Store a complete agent configuration after validation
// @Tags Agents
// @Accept json
// @Produce json
// @Param agent body agentconfig.Agent true "Agent configuration"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Failure 422 {object} map[string]interface{}
// @Router /agents/import [post]
func (h *AgentHandler) ImportAgent(c *fiber.Ctx) error {
	var agent agentconfig.Agent
	if err := c.BodyParser(&agent); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	saved, result, err := h.agentService.ImportAgent(agent)
	if err != nil {
		return respondSave(c, result, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status":   "success",
		"data":     saved,
		"warnings": result.Warnings,
	})
}

// GetAgent godoc
// @Summary Get agent by ID
// @Description Retrieve the saved configuration of an agent
// @Tags Agents
// @Produce json
// @Param id path string true "Agent ID"
// @Success 200 {object} agentconfig.Agent
// @Failure 404 {object} map[string]interface{}
// @Router /agents/{id} [get]
func (h *AgentHandler) GetAgent(c *fiber.Ctx) error {
	agent, err := h.agentService.GetAgent(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(agent)
}

// ReplaceAgent godoc
// @Summary Replace an agent
// @Description Overwrite a saved agent with a full configuration. Any open draft is dropped.
// @Tags Agents
// @Accept json
// @Produce json
// @Param id path string true "Agent ID"
// @Param agent body agentconfig.Agent true "Agent configuration"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 422 {object} map[string]interface{}
// @Router /agents/{id} [put]
func (h *AgentHandler) ReplaceAgent(c *fiber.Ctx) error {
	var agent agentconfig.Agent
	if err := c.BodyParser(&agent); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	saved, result, err := h.agentService.ReplaceAgent(c.Params("id"), agent)
	if err != nil {
		return respondSave(c, result, err)
	}

	return c.JSON(fiber.Map{
		"status":   "success",
		"data":     saved,
		"warnings": result.Warnings,
	})
}

// DeleteAgent godoc
// @Summary Delete an agent
// @Tags Agents
// @Produce json
// @Param id path string true "Agent ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /agents/{id} [delete]
func (h *AgentHandler) DeleteAgent(c *fiber.Ctx) error {
	if err := h.agentService.DeleteAgent(c.Params("id")); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "Agent deleted",
	})
}

// SetActive godoc
// @Summary Activate or pause an agent
// @Description Activation is refused while the saved configuration has errors
// @Tags Agents
// @Accept json
// @Produce json
// @Param id path string true "Agent ID"
// @Param body body SetActiveRequest true "Active flag"
// @Success 200 {object} agentconfig.Agent
// @Failure 404 {object} map[string]interface{}
// @Failure 422 {object} map[string]interface{}
// @Router /agents/{id}/active [patch]
func (h *AgentHandler) SetActive(c *fiber.Ctx) error {
	var req SetActiveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	agent, err := h.agentService.SetActive(c.Params("id"), req.IsActive)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(agent)
}

// DuplicateAgent godoc
// @Summary Duplicate an agent
// @Description Copy a saved agent under a new ID, paused and without stats
// @Tags Agents
// @Produce json
// @Param id path string true "Agent ID"
// @Success 201 {object} agentconfig.Agent
// @Failure 404 {object} map[string]interface{}
// @Router /agents/{id}/duplicate [post]
func (h *AgentHandler) DuplicateAgent(c *fiber.Ctx) error {
	agent, err := h.agentService.DuplicateAgent(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(agent)
}

// GetDraft godoc
// @Summary Get the agent draft
// @Description Return the working copy, opening a draft from the saved agent if none exists
// @Tags Drafts
// @Produce json
// @Param id path string true "Agent ID"
// @Success 200 {object} agentconfig.Agent
// @Failure 404 {object} map[string]interface{}
// @Router /agents/{id}/draft [get]
func (h *AgentHandler) GetDraft(c *fiber.Ctx) error {
	draft, err := h.agentService.Draft(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(draft)
}

// PatchDraft godoc
// @Summary Update the agent draft
// @Description Merge a partial configuration into the draft. Nothing is validated until save.
// @Tags Drafts
// @Accept json
// @Produce json
// @Param id path string true "Agent ID"
// @Param update body agentconfig.AgentUpdate true "Changed fields"
// @Success 200 {object} agentconfig.Agent
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /agents/{id}/draft [patch]
func (h *AgentHandler) PatchDraft(c *fiber.Ctx) error {
	var update agentconfig.AgentUpdate
	if err := c.BodyParser(&update); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	draft, err := h.agentService.PatchDraft(c.Params("id"), update)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(draft)
}

// DiscardDraft godoc
// @Summary Discard the agent draft
// @Tags Drafts
// @Produce json
// @Param id path string true "Agent ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /agents/{id}/draft [delete]
func (h *AgentHandler) DiscardDraft(c *fiber.Ctx) error {
	if err := h.agentService.DiscardDraft(c.Params("id")); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "Draft discarded",
	})
}

// SaveDraft godoc
// @Summary Save the agent draft
// @Description Validate the draft and commit it. Invalid drafts are kept and the issues returned.
// @Tags Drafts
// @Produce json
// @Param id path string true "Agent ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 422 {object} map[string]interface{}
// @Router /agents/{id}/draft/save [post]
func (h *AgentHandler) SaveDraft(c *fiber.Ctx) error {
	agent, result, err := h.agentService.SaveDraft(c.Params("id"))
	if err != nil {
		return respondSave(c, result, err)
	}

	return c.JSON(fiber.Map{
		"status":   "success",
		"data":     agent,
		"warnings": result.Warnings,
	})
}

// ValidateAgent godoc
// @Summary Validate an agent
// @Description Validate the working copy (draft if open, else the saved agent)
// @Tags Agents
// @Produce json
// @Param id path string true "Agent ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /agents/{id}/validate [get]
func (h *AgentHandler) ValidateAgent(c *fiber.Ctx) error {
	result, err := h.agentService.Validate(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"status": "success",
		"data": fiber.Map{
			"valid":    result.Valid(),
			"errors":   result.Errors,
			"warnings": result.Warnings,
		},
	})
}

// GetPrompt godoc
// @Summary Compile the system prompt
// @Description Compile the working copy into a system prompt, optionally for one conversation stage
// @Tags Agents
// @Produce json
// @Param id path string true "Agent ID"
// @Param stage query string false "Conversation stage ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /agents/{id}/prompt [get]
func (h *AgentHandler) GetPrompt(c *fiber.Ctx) error {
	stageID := c.Query("stage")
	compiled, err := h.agentService.CompilePrompt(c.Params("id"), stageID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"status": "success",
		"data": fiber.Map{
			"stage":  stageID,
			"prompt": compiled,
		},
	})
}

// ExportAgent godoc
// @Summary Export an agent
// @Description Download the saved agent as json, yaml, excel or the compiled prompt
// @Tags Agents
// @Produce octet-stream
// @Param id path string true "Agent ID"
// @Param format query string false "json, yaml, excel or prompt" default(json)
// @Success 200 {file} file
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /agents/{id}/export [get]
func (h *AgentHandler) ExportAgent(c *fiber.Ctx) error {
	format, err := export.ParseFormat(c.Query("format", string(export.FormatJSON)))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	id := c.Params("id")
	data, contentType, ext, err := h.agentService.Export(id, format)
	if err != nil {
		return respondError(c, err)
	}

	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="agent-%s%s"`, id, ext))
	return c.Send(data)
}

// respondSave reports a failed save, listing issues when validation rejected it
func respondSave(c *fiber.Ctx, result agentconfig.Result, err error) error {
	var validationErr *agentconfig.ValidationError
	if errors.As(err, &validationErr) {
		return respondInvalid(c, result)
	}
	return respondError(c, err)
}
