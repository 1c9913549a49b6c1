package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gdocmd/gdocmd/internal/ui"
)

var readJSON bool

var readCmd = &cobra.Command{
	Use:   "read <doc-id>",
	Short: "Read a doc back as plain text",
	Long: `Read a Google Doc's text content and inline image URIs.

The readback is lossy: styling does not survive, only text and image
references come back.`,
	Args: cobra.ExactArgs(1),
	RunE: runRead,
}

func init() {
	readCmd.Flags().BoolVar(&readJSON, "json", false, "Print JSON output")
	rootCmd.AddCommand(readCmd)
}

func runRead(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	client, _, err := newClient(ctx)
	if err != nil {
		return err
	}

	content, err := client.ReadDoc(ctx, args[0])
	if err != nil {
		return err
	}

	if readJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(content)
	}

	fmt.Println(ui.Muted(content.Title))
	fmt.Print(content.Text)
	for _, img := range content.Images {
		fmt.Printf("[image] %s\n", img.URI)
	}
	return nil
}
