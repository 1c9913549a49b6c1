package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/gdocmd/gdocmd/internal/ui"
)

var previewCmd = &cobra.Command{
	Use:   "preview <file>",
	Short: "Render a markdown file in the terminal",
	Long:  `Render a markdown file locally before uploading it.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	content, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read %s: %w", args[0], err)
	}

	width := 80
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		width = w
	}

	fmt.Print(ui.RenderMarkdown(string(content), width))
	return nil
}
