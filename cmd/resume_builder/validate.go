package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jdoe/resume-builder/internal/schemas"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file...]",
	Short: "Validate resume JSON documents against the document schema",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, args []string) error {
	failed := 0
	for _, path := range args {
		if err := schemas.ValidateResumeFile(path); err != nil {
			fmt.Printf("FAIL %s\n%v\n", path, err)
			failed++
			continue
		}
		fmt.Printf("OK   %s\n", path)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d documents failed validation", failed, len(args))
	}
	return nil
}
