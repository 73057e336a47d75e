package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/MuhamadAgungGumelar/marketing-insights-be/internal/core/flows"
	"github.com/MuhamadAgungGumelar/marketing-insights-be/internal/core/llm"
)

type FlowHandler struct {
	registry *flows.Registry
}

// NewFlowHandler creates the flows handler. A nil registry means no LLM provider is
// configured and every flow call answers 503.
func NewFlowHandler(registry *flows.Registry) *FlowHandler {
	return &FlowHandler{registry: registry}
}

// ListFlows godoc
// @Summary List AI flows
// @Tags Flows
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /flows [get]
func (h *FlowHandler) ListFlows(c *fiber.Ctx) error {
	if h.registry == nil {
		return c.JSON(fiber.Map{"flows": []flows.Info{}})
	}
	return c.JSON(fiber.Map{"flows": h.registry.List()})
}

// RunFlow godoc
// @Summary Run an AI flow
// @Description Validates the input against the flow schema, calls the model and validates its reply
// @Tags Flows
// @Accept json
// @Produce json
// @Param name path string true "Flow name"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /flows/{name} [post]
func (h *FlowHandler) RunFlow(c *fiber.Ctx) error {
	if h.registry == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "no LLM provider configured",
		})
	}

	name := c.Params("name")
	logger := zerolog.Ctx(c.UserContext()).With().Str("flow", name).Logger()

	out, err := h.registry.Run(c.UserContext(), name, c.Body())
	if err != nil {
		var inErr *flows.InputError
		var outErr *flows.OutputError

		switch {
		case errors.Is(err, flows.ErrUnknownFlow):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "flow not found",
			})
		case errors.As(err, &inErr):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":  "invalid input",
				"fields": inErr.Fields,
			})
		case errors.As(err, &outErr):
			logger.Error().Err(err).Msg("flow returned invalid output")
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"error": "model returned invalid output",
			})
		case errors.Is(err, llm.ErrImagesUnsupported):
			return c.Status(fiber.StatusNotImplemented).JSON(fiber.Map{
				"error": "configured LLM provider cannot generate images",
			})
		default:
			logger.Error().Err(err).Msg("flow failed")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "internal error",
			})
		}
	}

	return c.JSON(out)
}
