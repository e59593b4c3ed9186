package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/invopop/jsonschema"

	"github.com/MuhamadAgungGumelar/sales-agent-configurator/internal/core/schema"
)

// SchemaHandler publishes the configuration contract
type SchemaHandler struct {
	agent   *jsonschema.Schema
	actions map[string]*jsonschema.Schema
}

func NewSchemaHandler() *SchemaHandler {
	actions := make(map[string]*jsonschema.Schema)
	for actionType, s := range schema.ActionConfigSchemas() {
		actions[string(actionType)] = s
	}
	return &SchemaHandler{
		agent:   schema.AgentSchema(),
		actions: actions,
	}
}

// GetAgentSchema godoc
// @Summary Agent JSON Schema
// @Description JSON Schema of the agent configuration
// @Tags Schema
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /schema/agent [get]
func (h *SchemaHandler) GetAgentSchema(c *fiber.Ctx) error {
	return c.JSON(h.agent, "application/schema+json")
}

// GetActionSchemas godoc
// @Summary Stage action config schemas
// @Description JSON Schema of each stage action config, keyed by action type
// @Tags Schema
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /schema/actions [get]
func (h *SchemaHandler) GetActionSchemas(c *fiber.Ctx) error {
	return c.JSON(h.actions)
}
