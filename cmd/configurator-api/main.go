package main

import (
	"log"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"

	"github.com/MuhamadAgungGumelar/sales-agent-configurator/internal/core/export"
	"github.com/MuhamadAgungGumelar/sales-agent-configurator/internal/modules/configurator/handlers"
	"github.com/MuhamadAgungGumelar/sales-agent-configurator/internal/modules/configurator/repositories"
	"github.com/MuhamadAgungGumelar/sales-agent-configurator/internal/modules/configurator/seed"
	"github.com/MuhamadAgungGumelar/sales-agent-configurator/internal/modules/configurator/services"
	"github.com/MuhamadAgungGumelar/sales-agent-configurator/internal/shared/config"
	"github.com/MuhamadAgungGumelar/sales-agent-configurator/internal/shared/utils"

	_ "github.com/MuhamadAgungGumelar/sales-agent-configurator/cmd/configurator-api/docs"
)

// @title Sales Agent Configurator API
// @version 1.0
// @description Configure AI sales agents: identity, catalog, follow-ups, conversation stages and the compiled system prompt
// @termsOfService http://swagger.io/terms/
// @contact.name API Support
// @contact.email support@sales-agent-configurator.dev
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	// Load config
	cfg := config.LoadConfig()
	utils.InitLogger(cfg.LogLevel, cfg.Env)
	log.Printf("🚀 Starting configurator-api on port %s", cfg.Port)

	// Init repositories
	agentRepo := repositories.NewAgentRepo()
	if cfg.SeedMockAgents {
		if _, err := seed.Seed(agentRepo); err != nil {
			log.Fatalf("❌ Failed to seed mock agents: %v", err)
		}
	}

	// Init services
	exportService := export.NewService()
	agentService := services.NewAgentService(agentRepo, exportService)

	// Init handlers
	healthHandler := handlers.NewHealthHandler(cfg.AppName)
	agentHandler := handlers.NewAgentHandler(agentService)
	simulationHandler := handlers.NewSimulationHandler(agentService)
	schemaHandler := handlers.NewSchemaHandler()

	// Init Fiber app
	app := fiber.New(fiber.Config{
		AppName:     cfg.AppName,
		JSONEncoder: sonic.Marshal,
		JSONDecoder: sonic.Unmarshal,
	})

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSAllowOrigins,
	}))

	// Swagger
	app.Get("/swagger/*", swagger.HandlerDefault)

	handlers.RegisterRoutes(app, healthHandler, agentHandler, simulationHandler, schemaHandler)

	// Start server
	log.Printf("✅ configurator-api running at :%s", cfg.Port)
	log.Printf("📄 Swagger UI: http://localhost:%s/swagger/", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
