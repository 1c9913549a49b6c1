package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gdocmd/gdocmd/internal/gdocs"
	"github.com/gdocmd/gdocmd/internal/ui"
)

var (
	folderShare string
	folderRole  string
)

var folderCmd = &cobra.Command{
	Use:   "folder <name>",
	Short: "Create a Drive folder",
	Long: `Create a Drive folder (or reuse an existing one with the same name)
and optionally share it.

Examples:
  gdocmd folder "Project Docs"
  gdocmd folder "Project Docs" --share user@example.com --role reader`,
	Args: cobra.ExactArgs(1),
	RunE: runFolder,
}

func init() {
	folderCmd.Flags().StringVar(&folderShare, "share", "", "Email to share with")
	folderCmd.Flags().StringVar(&folderRole, "role", "writer", "Share role: reader or writer")
	rootCmd.AddCommand(folderCmd)
}

func runFolder(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	client, _, err := newClient(ctx)
	if err != nil {
		return err
	}

	folderID, err := client.EnsureFolder(ctx, args[0], "")
	if err != nil {
		return err
	}
	fmt.Printf("Created: %s\n", ui.Link(gdocs.FolderURL(folderID)))

	if folderShare != "" {
		if err := client.Share(ctx, folderID, folderShare, folderRole, ""); err != nil {
			return err
		}
		ui.Success(fmt.Sprintf("Shared with %s", folderShare))
	}
	return nil
}
