package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jdoe/resume-builder/internal/export"
	"github.com/jdoe/resume-builder/internal/rendering"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a resume document to a fit-to-page PDF",
	Long:  "Renders a resume JSON document to themed HTML, measures it in a headless browser, and prints an A4 PDF scaled so the content fits one page width.",
	RunE:  runExport,
}

var (
	exportResumeFile string
	exportTheme      string
	exportOutputFile string
	exportTimeout    time.Duration
)

func init() {
	exportCmd.Flags().StringVarP(&exportResumeFile, "resume", "r", "", "Path to resume JSON file (required)")
	exportCmd.Flags().StringVarP(&exportTheme, "theme", "t", "", "Theme name override (defaults to the document's template theme)")
	exportCmd.Flags().StringVarP(&exportOutputFile, "out", "o", "resume.pdf", "Path to output PDF file")
	exportCmd.Flags().DurationVar(&exportTimeout, "timeout", export.DefaultTimeout, "Headless browser timeout")
	_ = exportCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	resume, err := loadResumeFile(exportResumeFile, false)
	if err != nil {
		return err
	}
	if exportTheme != "" {
		resume.Template.Theme = exportTheme
	}

	doc, err := rendering.Render(resume)
	if err != nil {
		return err
	}

	exporter := export.NewExporter()
	exporter.Timeout = exportTimeout

	pdf, err := exporter.PDF(context.Background(), doc)
	if err != nil {
		return fmt.Errorf("failed to export PDF: %w", err)
	}

	if err := os.WriteFile(exportOutputFile, pdf, 0o644); err != nil {
		return fmt.Errorf("failed to write PDF file: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Exported %q with theme %s to %s (%d bytes)\n", doc.Title, doc.Theme, exportOutputFile, len(pdf))
	return nil
}
