package main

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/MuhamadAgungGumelar/marketing-insights-be/internal/core/analytics"
	"github.com/MuhamadAgungGumelar/marketing-insights-be/internal/core/export"
	"github.com/MuhamadAgungGumelar/marketing-insights-be/internal/core/flows"
	"github.com/MuhamadAgungGumelar/marketing-insights-be/internal/core/llm"
	"github.com/MuhamadAgungGumelar/marketing-insights-be/internal/modules/dashboard"
	"github.com/MuhamadAgungGumelar/marketing-insights-be/internal/shared/config"
	"github.com/MuhamadAgungGumelar/marketing-insights-be/internal/shared/utils"

	_ "github.com/MuhamadAgungGumelar/marketing-insights-be/cmd/export-api/docs"
)

// @title Marketing Insights Export API
// @version 1.0
// @description Report export and AI flow backend for the marketing insights dashboard
// @termsOfService http://swagger.io/terms/
// @contact.name API Support
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	// Load config
	cfg := config.LoadConfig()
	utils.InitLogger(cfg.Env, cfg.LogLevel)
	log.Info().Str("env", cfg.Env).Msgf("🚀 Starting export-api on port %s", cfg.Port)

	// Init LLM service. Flows are disabled when no provider can be built.
	var registry *flows.Registry
	var llmName string
	llmService, err := llm.NewService(context.Background(), &llm.ProviderConfig{
		Type:        llm.ProviderType(cfg.LLMProvider),
		OpenAIKey:   cfg.OpenAIKey,
		GeminiKey:   cfg.GeminiKey,
		GroqKey:     cfg.GroqKey,
		DeepSeekKey: cfg.DeepSeekKey,
		Model:       cfg.LLMModel,
	})
	if err != nil {
		utils.LogWarn("LLM provider not configured, AI flows disabled", map[string]interface{}{
			"provider": cfg.LLMProvider,
			"error":    err.Error(),
		})
	} else {
		registry = flows.NewDefaultRegistry(llmService)
		llmName = llmService.GetProviderName()
		log.Info().
			Bool("images", llmService.SupportsImages()).
			Msgf("🤖 Using LLM provider: %s", llmName)
	}

	// Init export service
	exportOpts := []export.ServiceOption{export.WithAuthor(cfg.ReportAuthor)}
	if cfg.DashboardURL != "" {
		exportOpts = append(exportOpts, export.WithExporter(export.FormatPDF,
			export.NewPDFExporter(export.WithDashboardLink(cfg.DashboardURL))))
	}
	exportService := export.NewService(exportOpts...)
	utils.LogInfo("📑 Export formats ready", map[string]interface{}{
		"formats":        export.AllowedFormatsText(),
		"dashboard_link": cfg.DashboardURL != "",
	})

	app := dashboard.NewApp(dashboard.Deps{
		Logger:    log.Logger,
		Provider:  analytics.NewSimulatedProvider(),
		Exporter:  exportService,
		Flows:     registry,
		LLMName:   llmName,
		BodyLimit: cfg.BodyLimitBytes,
	})

	log.Info().Msgf("✅ export-api running at :%s", cfg.Port)
	if !cfg.IsProduction() {
		log.Info().Msgf("📄 Swagger UI: http://localhost:%s/swagger/", cfg.Port)
	}
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
