package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/gdocmd/gdocmd/internal/ui"
)

// Version is set at build time via -ldflags.
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:     "gdocmd",
	Short:   "Upload markdown files to Google Docs",
	Version: Version,
	Long: `gdocmd compiles markdown into Google Docs and manages the Drive
folders they live in.

Examples:
  gdocmd upload notes.md --title "Notes" --folder "Project Docs"
  gdocmd upload 'docs/**/*.md' --folder "Project Docs" --share user@example.com
  gdocmd folder "Project Docs" --share user@example.com
  gdocmd list
  gdocmd tree <folder-id>
  gdocmd preview notes.md`,
	CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		ui.ShowError(err.Error())
		os.Exit(1)
	}
}
