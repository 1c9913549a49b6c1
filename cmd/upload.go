package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/gdocmd/gdocmd/internal/gdocs"
	"github.com/gdocmd/gdocmd/internal/ui"
)

var (
	uploadTitle  string
	uploadFolder string
	uploadShare  string
	uploadRole   string
	uploadLogo   string
	uploadPrefix string
)

var uploadCmd = &cobra.Command{
	Use:   "upload <files...>",
	Short: "Upload markdown files to Google Docs",
	Long: `Upload one or more markdown files as Google Docs into a Drive folder.

Glob patterns are expanded (including **), so quoting works with any shell:

  gdocmd upload notes.md --title "My Notes"
  gdocmd upload 'docs/**/*.md' --folder "Project Docs" --share user@example.com
  gdocmd upload *.md --logo ./logo.png --prefix "Q3"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runUpload,
}

func init() {
	uploadCmd.Flags().StringVar(&uploadTitle, "title", "", "Title for single file upload")
	uploadCmd.Flags().StringVar(&uploadFolder, "folder", "", "Drive folder name (default from config)")
	uploadCmd.Flags().StringVar(&uploadShare, "share", "", "Email to share the folder with")
	uploadCmd.Flags().StringVar(&uploadRole, "role", "", "Share role: reader or writer")
	uploadCmd.Flags().StringVar(&uploadLogo, "logo", "", "Path to logo image inserted at the top of each doc")
	uploadCmd.Flags().StringVar(&uploadPrefix, "prefix", "", "Title prefix for uploaded docs")
	rootCmd.AddCommand(uploadCmd)
}

func runUpload(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	files, err := expandPatterns(args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no files match %v", args)
	}
	if uploadTitle != "" && len(files) > 1 {
		return fmt.Errorf("--title only applies to a single file upload")
	}

	client, cfg, err := newClient(ctx)
	if err != nil {
		return err
	}

	folder := uploadFolder
	if folder == "" {
		folder = cfg.Upload.Folder
	}
	role := uploadRole
	if role == "" {
		role = cfg.Upload.Role
	}
	prefix := uploadPrefix
	if prefix == "" {
		prefix = cfg.Upload.Prefix
	}
	logo := uploadLogo
	if logo == "" {
		logo = cfg.Upload.Logo
	}

	folderID, err := client.EnsureFolder(ctx, folder, "")
	if err != nil {
		return err
	}
	fmt.Printf("Folder: %s\n", ui.Link(gdocs.FolderURL(folderID)))

	logoURI := ""
	if logo != "" {
		if _, err := os.Stat(logo); err == nil {
			_, logoURI, err = client.UploadImage(ctx, logo, folderID, true)
			if err != nil {
				return err
			}
		}
	}

	for _, path := range files {
		markdown, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}

		title := uploadTitle
		if title == "" {
			title = gdocs.TitleFromPath(path, prefix)
		}

		docID, url, err := client.CreateDoc(ctx, title, string(markdown), folderID)
		if err != nil {
			return err
		}
		if logoURI != "" {
			if err := client.InsertHeaderImage(ctx, docID, logoURI, 250, 57, true); err != nil {
				return err
			}
		}
		fmt.Printf("  %s: %s\n", title, ui.Link(url))
	}

	if uploadShare != "" {
		if err := client.Share(ctx, folderID, uploadShare, role, ""); err != nil {
			ui.Warn(err.Error())
		} else {
			ui.Success(fmt.Sprintf("Shared with %s (%s)", uploadShare, role))
		}
	}

	return nil
}

// expandPatterns expands glob patterns against the filesystem, passing
// non-pattern paths through so missing files still error at read time.
func expandPatterns(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		if !strings.ContainsAny(arg, "*?[{") {
			files = append(files, arg)
			continue
		}
		matches, err := doublestar.FilepathGlob(arg)
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", arg, err)
		}
		files = append(files, matches...)
	}
	return files, nil
}
