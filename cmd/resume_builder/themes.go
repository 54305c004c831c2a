package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jdoe/resume-builder/internal/observability"
)

var themesPremium bool

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List the template themes",
	Long:  "Lists every registered template theme and marks which ones the given subscription plan unlocks.",
	Run: func(_ *cobra.Command, _ []string) {
		observability.NewPrinter(os.Stdout).PrintThemeCatalog(themesPremium)
	},
}

func init() {
	themesCmd.Flags().BoolVar(&themesPremium, "premium", false, "Show availability for the Premium plan")
	rootCmd.AddCommand(themesCmd)
}
