package dashboard

import (
	"errors"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/rs/zerolog"

	"github.com/MuhamadAgungGumelar/marketing-insights-be/internal/core/analytics"
	"github.com/MuhamadAgungGumelar/marketing-insights-be/internal/core/export"
	"github.com/MuhamadAgungGumelar/marketing-insights-be/internal/core/flows"
	"github.com/MuhamadAgungGumelar/marketing-insights-be/internal/modules/dashboard/handlers"
	"github.com/MuhamadAgungGumelar/marketing-insights-be/internal/modules/dashboard/middleware"
)

// Deps are the collaborators the HTTP surface is built from
type Deps struct {
	Logger    zerolog.Logger
	Provider  analytics.Provider
	Exporter  *export.Service
	Flows     *flows.Registry // nil disables the flow endpoints
	LLMName   string
	BodyLimit int
}

// NewApp builds the fiber app with every route registered
func NewApp(deps Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "Marketing Insights Export API",
		BodyLimit:    deps.BodyLimit,
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
		ErrorHandler: errorHandler,
	})

	app.Use(recover.New())
	app.Use(middleware.RequestLogger(deps.Logger))

	exportHandler := handlers.NewExportHandler(deps.Provider, deps.Exporter)
	flowHandler := handlers.NewFlowHandler(deps.Flows)
	healthHandler := handlers.NewHealthHandler(deps.LLMName)

	// Swagger
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Health check
	app.Get("/health", healthHandler.GetHealth)

	// AI flow routes
	flowRoutes := app.Group("/flows", cors.New())
	flowRoutes.Get("/", flowHandler.ListFlows)
	flowRoutes.Post("/:name", flowHandler.RunFlow)

	// Export routes
	app.Options("/", exportHandler.Preflight)
	app.Post("/", exportHandler.Export)
	app.All("/", exportHandler.MethodNotAllowed)

	return app
}

// errorHandler renders errors that escaped a handler as plain text. Server side
// failures are logged and never described to the client.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "internal error"

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		if code < fiber.StatusInternalServerError {
			message = fe.Message
		}
	}

	if code >= fiber.StatusInternalServerError {
		zerolog.Ctx(c.UserContext()).Error().Err(err).Msg("unhandled error")
	}

	return c.Status(code).SendString(message)
}
