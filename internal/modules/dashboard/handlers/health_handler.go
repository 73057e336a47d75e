package handlers

import (
	"github.com/gofiber/fiber/v2"
)

type HealthHandler struct {
	llmProvider string
}

// NewHealthHandler takes the display name of the LLM provider, empty when none is configured
func NewHealthHandler(llmProvider string) *HealthHandler {
	if llmProvider == "" {
		llmProvider = "disabled"
	}
	return &HealthHandler{llmProvider: llmProvider}
}

// GetHealth godoc
// @Summary Service health check
// @Description Check if API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *HealthHandler) GetHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":       "ok",
		"service":      "export-api",
		"llm_provider": h.llmProvider,
	})
}
