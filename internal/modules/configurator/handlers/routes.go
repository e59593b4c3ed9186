package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts every configurator endpoint on app
func RegisterRoutes(app fiber.Router, health *HealthHandler, agents *AgentHandler, simulation *SimulationHandler, schemas *SchemaHandler) {
	// Health
	app.Get("/health", health.GetHealth)

	// Schema
	app.Get("/schema/agent", schemas.GetAgentSchema)
	app.Get("/schema/actions", schemas.GetActionSchemas)

	// Agents
	app.Get("/agents", agents.ListAgents)
	app.Post("/agents", agents.CreateAgent)
	app.Post("/agents/import", agents.ImportAgent)
	app.Get("/agents/:id", agents.GetAgent)
	app.Put("/agents/:id", agents.ReplaceAgent)
	app.Delete("/agents/:id", agents.DeleteAgent)
	app.Patch("/agents/:id/active", agents.SetActive)
	app.Post("/agents/:id/duplicate", agents.DuplicateAgent)
	app.Get("/agents/:id/validate", agents.ValidateAgent)
	app.Get("/agents/:id/prompt", agents.GetPrompt)
	app.Get("/agents/:id/export", agents.ExportAgent)

	// Drafts
	app.Get("/agents/:id/draft", agents.GetDraft)
	app.Patch("/agents/:id/draft", agents.PatchDraft)
	app.Delete("/agents/:id/draft", agents.DiscardDraft)
	app.Post("/agents/:id/draft/save", agents.SaveDraft)
	app.Post("/agents/:id/draft/stages", agents.AddStage)
	app.Post("/agents/:id/draft/stages/:stageId/duplicate", agents.DuplicateStage)
	app.Delete("/agents/:id/draft/stages/:stageId", agents.DeleteStage)

	// Simulation
	app.Post("/agents/:id/stages/resolve", simulation.ResolveStage)
	app.Post("/agents/:id/followups/next", simulation.NextFollowUp)
}
