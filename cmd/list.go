package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gdocmd/gdocmd/internal/ui"
)

var (
	listFolderID string
	listLimit    int64
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent docs",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&listFolderID, "folder-id", "", "Folder ID to list")
	listCmd.Flags().Int64Var(&listLimit, "limit", 20, "Max files to list")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	client, _, err := newClient(ctx)
	if err != nil {
		return err
	}

	files, err := client.ListFiles(ctx, listFolderID, listLimit)
	if err != nil {
		return err
	}
	for _, f := range files {
		fmt.Printf("  %s  %s\n", f.Name, ui.Muted(f.WebViewLink))
	}
	return nil
}
