package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/MuhamadAgungGumelar/marketing-insights-be/internal/core/analytics"
	"github.com/MuhamadAgungGumelar/marketing-insights-be/internal/core/export"
)

type reportOptions struct {
	format       string
	title        string
	out          string
	dashboardURL string
	author       string
}

// newRootCmd builds the command tree. The provider is injectable for tests.
func newRootCmd() *cobra.Command {
	return newRootCmdWithProvider(analytics.NewSimulatedProvider())
}

func newRootCmdWithProvider(provider analytics.Provider) *cobra.Command {
	root := &cobra.Command{
		Use:   "export-cli",
		Short: "Render marketing dashboard reports offline",
		Long: `Render the same PDF and XLSX reports the export API serves,
without starting the HTTP server.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newReportCmd(provider), newFormatsCmd())
	return root
}

func newReportCmd(provider analytics.Provider) *cobra.Command {
	opts := &reportOptions{}

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Write a dashboard report to a file",
		Example: `  export-cli report --format pdf --title Offline
  export-cli report --format xls --title "Social Media" --out social.xlsx`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, provider, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", string(export.FormatPDF), "output format ("+export.AllowedFormatsText()+")")
	cmd.Flags().StringVarP(&opts.title, "title", "t", "", "dashboard tab title")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "output path (default report-<title>.<ext>)")
	cmd.Flags().StringVar(&opts.dashboardURL, "dashboard-url", "", "link rendered as a QR code in PDF reports")
	cmd.Flags().StringVar(&opts.author, "author", "Marketing Insights", "author written into document metadata")
	return cmd
}

func runReport(cmd *cobra.Command, provider analytics.Provider, opts *reportOptions) error {
	req := export.ExportRequest{TabTitle: opts.title, Format: export.ExportFormat(opts.format)}
	if fields := req.Validate(); len(fields) > 0 {
		return &export.ValidationError{Fields: fields}
	}

	kpis, series, err := provider.Fetch(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to fetch dashboard data: %w", err)
	}

	serviceOpts := []export.ServiceOption{export.WithAuthor(opts.author)}
	if opts.dashboardURL != "" {
		serviceOpts = append(serviceOpts, export.WithExporter(export.FormatPDF,
			export.NewPDFExporter(export.WithDashboardLink(opts.dashboardURL))))
	}
	service := export.NewService(serviceOpts...)

	report := service.NewReport(req.ReportTitle(), kpis, series)
	doc, err := service.Generate(req.Format, report)
	if err != nil {
		return err
	}

	path := opts.out
	if path == "" {
		path = export.SuggestedFilename(opts.title, req.Format)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, doc.Data, 0o644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	log.Debug().Str("document_id", report.DocumentID).Str("path", path).Msg("report written")
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%s)\n", path, humanize.Bytes(uint64(len(doc.Data))))
	return nil
}

func newFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List supported export formats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			service := export.NewService()
			for _, f := range export.SupportedFormats {
				fmt.Fprintf(cmd.OutOrStdout(), "%-4s %s (%s)\n",
					f, service.GetContentType(f), service.GetFileExtension(f))
			}
			return nil
		},
	}
}
