package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/MuhamadAgungGumelar/marketing-insights-be/internal/core/analytics"
	"github.com/MuhamadAgungGumelar/marketing-insights-be/internal/core/export"
)

const preflightMaxAge = "3600"

type ExportHandler struct {
	provider analytics.Provider
	exporter *export.Service
}

func NewExportHandler(provider analytics.Provider, exporter *export.Service) *ExportHandler {
	return &ExportHandler{
		provider: provider,
		exporter: exporter,
	}
}

func setCORSHeaders(c *fiber.Ctx) {
	c.Set(fiber.HeaderAccessControlAllowOrigin, "*")
	c.Set(fiber.HeaderAccessControlAllowMethods, fiber.MethodPost)
	c.Set(fiber.HeaderAccessControlAllowHeaders, fiber.HeaderContentType)
}

// Preflight godoc
// @Summary Export preflight
// @Description Answers CORS preflight requests for the export endpoint
// @Tags Export
// @Success 204
// @Router / [options]
func (h *ExportHandler) Preflight(c *fiber.Ctx) error {
	setCORSHeaders(c)
	c.Set(fiber.HeaderAccessControlMaxAge, preflightMaxAge)
	c.Status(fiber.StatusNoContent)
	return nil
}

// MethodNotAllowed rejects every verb other than POST and OPTIONS
func (h *ExportHandler) MethodNotAllowed(c *fiber.Ctx) error {
	setCORSHeaders(c)
	zerolog.Ctx(c.UserContext()).Debug().Err(export.ErrMethodNotAllowed).Msg("rejected export request")
	c.Set(fiber.HeaderAllow, "POST, OPTIONS")
	return c.Status(fiber.StatusMethodNotAllowed).SendString("Method Not Allowed")
}

// Export godoc
// @Summary Export dashboard report
// @Description Renders the selected dashboard tab as a PDF or XLSX download
// @Tags Export
// @Accept json
// @Produce application/pdf
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param data body export.ExportRequest true "Export request"
// @Success 200 {file} binary
// @Failure 400 {string} string
// @Failure 500 {string} string
// @Router / [post]
func (h *ExportHandler) Export(c *fiber.Ctx) error {
	setCORSHeaders(c)
	logger := zerolog.Ctx(c.UserContext())

	req, err := export.ParseRequest(c.Body())
	if err != nil {
		var verr *export.ValidationError
		if errors.As(err, &verr) {
			logger.Warn().Err(err).Msg("rejected export request")
			return c.Status(fiber.StatusBadRequest).SendString(verr.Error())
		}
		return h.internalError(c, err)
	}

	kpis, series, err := h.provider.Fetch(c.UserContext())
	if err != nil {
		return h.internalError(c, fmt.Errorf("failed to fetch dashboard data: %w", err))
	}

	report := h.exporter.NewReport(req.ReportTitle(), kpis, series)
	doc, err := h.exporter.Generate(req.Format, report)
	if err != nil {
		return h.internalError(c, err)
	}

	logger.Info().
		Str("format", string(req.Format)).
		Str("tab", req.TabTitle).
		Strs("data", req.SelectedItems.Data).
		Strs("graphs", req.SelectedItems.Graphs).
		Str("document_id", report.DocumentID).
		Int("bytes", len(doc.Data)).
		Msg("export generated")

	c.Set(fiber.HeaderContentType, doc.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, doc.Filename))
	return c.Status(fiber.StatusOK).Send(doc.Data)
}

// internalError logs err in full and answers with an opaque 500
func (h *ExportHandler) internalError(c *fiber.Ctx, err error) error {
	zerolog.Ctx(c.UserContext()).Error().Err(err).Msg("export failed")
	return c.Status(fiber.StatusInternalServerError).SendString("internal error")
}
