package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jdoe/resume-builder/internal/observability"
	"github.com/jdoe/resume-builder/internal/rendering"
	"github.com/jdoe/resume-builder/internal/schemas"
	"github.com/jdoe/resume-builder/internal/types"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a resume document to themed HTML",
	Long:  "Loads a resume JSON document, selects the theme named in its template (falling back to the default layout), and writes the rendered HTML.",
	RunE:  runRender,
}

var (
	renderResumeFile     string
	renderTheme          string
	renderOutputFile     string
	renderSkipValidation bool
	renderVerbose        bool
)

func init() {
	renderCmd.Flags().StringVarP(&renderResumeFile, "resume", "r", "", "Path to resume JSON file (required)")
	renderCmd.Flags().StringVarP(&renderTheme, "theme", "t", "", "Theme name override (defaults to the document's template theme)")
	renderCmd.Flags().StringVarP(&renderOutputFile, "out", "o", "", "Path to output HTML file (default: stdout)")
	renderCmd.Flags().BoolVar(&renderSkipValidation, "skip-validation", false, "Skip schema validation of the input document")
	renderCmd.Flags().BoolVarP(&renderVerbose, "verbose", "v", false, "Print a document summary before rendering")
	_ = renderCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(renderCmd)
}

// loadResumeFile reads, optionally validates, and decodes a resume document.
func loadResumeFile(path string, skipValidation bool) (*types.Resume, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume file: %w", err)
	}

	if !skipValidation {
		if err := schemas.ValidateResumeJSON(data); err != nil {
			return nil, err
		}
	}

	var resume types.Resume
	if err := json.Unmarshal(data, &resume); err != nil {
		return nil, fmt.Errorf("failed to unmarshal resume JSON: %w", err)
	}
	return &resume, nil
}

func runRender(_ *cobra.Command, _ []string) error {
	resume, err := loadResumeFile(renderResumeFile, renderSkipValidation)
	if err != nil {
		return err
	}
	if renderTheme != "" {
		resume.Template.Theme = renderTheme
	}

	if renderVerbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintResumeSummary(resume)
		printer.PrintExperience(resume.WorkExperience)
	}

	doc, err := rendering.Render(resume)
	if err != nil {
		return err
	}

	if renderOutputFile == "" {
		fmt.Print(doc.HTML)
		return nil
	}
	if err := os.WriteFile(renderOutputFile, []byte(doc.HTML), 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Rendered %q with theme %s to %s\n", doc.Title, doc.Theme, renderOutputFile)
	return nil
}
