package gdocs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// leadingDigitsRe strips ordering prefixes like "01 " from derived titles.
var leadingDigitsRe = regexp.MustCompile(`^\d+\s+`)

// TitleFromPath derives a document title from a markdown filename: the
// extension goes, underscores become spaces, a leading numeric ordering
// prefix is dropped, and an optional prefix is prepended.
func TitleFromPath(path, prefix string) string {
	title := strings.TrimSuffix(filepath.Base(path), ".md")
	title = strings.ReplaceAll(title, "_", " ")
	title = leadingDigitsRe.ReplaceAllString(title, "")
	if prefix != "" {
		title = fmt.Sprintf("%s - %s", prefix, title)
	}
	return title
}

// UploadDirOptions configures a directory upload.
type UploadDirOptions struct {
	ShareWith   []string // emails to share the folder with
	ShareRole   string   // "reader" or "writer"
	TitlePrefix string
	LogoPath    string                     // optional image inserted at the top of each new doc
	Log         func(format string, args ...any) // optional progress output
}

// UploadedDoc is one document produced (or skipped) by UploadDir.
type UploadedDoc struct {
	Title   string
	URL     string
	Skipped bool // a doc with this title already existed in the folder
}

// UploadDirResult summarizes a directory upload.
type UploadDirResult struct {
	FolderID  string
	FolderURL string
	Docs      []UploadedDoc
}

// UploadDir uploads every .md file in dir into a named Drive folder.
// Documents whose derived title already exists in the folder are skipped,
// so re-running after a partial upload only fills the gaps.
func (c *Client) UploadDir(ctx context.Context, dir, folderName string, opts UploadDirOptions) (*UploadDirResult, error) {
	log := opts.Log
	if log == nil {
		log = func(string, ...any) {}
	}

	folderID, err := c.EnsureFolder(ctx, folderName, "")
	if err != nil {
		return nil, err
	}
	result := &UploadDirResult{FolderID: folderID, FolderURL: FolderURL(folderID)}
	log("Folder: %s", result.FolderURL)

	existing := map[string]string{}
	files, err := c.ListFiles(ctx, folderID, 100)
	if err != nil {
		return nil, err
	}
	for _, f := range files {
		existing[f.Name] = f.Id
	}

	logoURI := ""
	if opts.LogoPath != "" {
		if _, err := os.Stat(opts.LogoPath); err == nil {
			_, logoURI, err = c.UploadImage(ctx, opts.LogoPath, folderID, true)
			if err != nil {
				return nil, err
			}
			log("Logo uploaded: %s", logoURI)
		}
	}

	paths, err := filepath.Glob(filepath.Join(dir, "*.md"))
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", dir, err)
	}
	sort.Strings(paths)

	for _, path := range paths {
		title := TitleFromPath(path, opts.TitlePrefix)

		if id, ok := existing[title]; ok {
			result.Docs = append(result.Docs, UploadedDoc{Title: title, URL: DocURL(id), Skipped: true})
			log("SKIP (exists): %s", title)
			continue
		}

		markdown, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}

		docID, url, err := c.CreateDoc(ctx, title, string(markdown), folderID)
		if err != nil {
			return nil, err
		}
		log("Created: %s -> %s", title, url)

		if logoURI != "" {
			if err := c.InsertHeaderImage(ctx, docID, logoURI, 250, 57, true); err != nil {
				return nil, err
			}
		}

		result.Docs = append(result.Docs, UploadedDoc{Title: title, URL: url})
	}

	role := opts.ShareRole
	if role == "" {
		role = "writer"
	}
	for _, email := range opts.ShareWith {
		if err := c.Share(ctx, folderID, email, role, ""); err != nil {
			// Sharing failures should not unwind an otherwise complete
			// upload.
			log("Warning: could not share with %s: %v", email, err)
			continue
		}
		log("Shared with %s (%s)", email, role)
	}

	return result, nil
}
