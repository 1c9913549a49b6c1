package gdocs

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	drive "google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
)

const folderMimeType = "application/vnd.google-apps.folder"

// FolderURL returns the browser URL for a Drive folder.
func FolderURL(folderID string) string {
	return fmt.Sprintf("https://drive.google.com/drive/folders/%s", folderID)
}

// EnsureFolder returns the ID of a folder with the given name, creating it
// if none exists. Matching is by exact name among non-trashed folders,
// optionally within a parent.
func (c *Client) EnsureFolder(ctx context.Context, name, parentID string) (string, error) {
	query := fmt.Sprintf("name='%s' and mimeType='%s' and trashed=false", escapeQuery(name), folderMimeType)
	if parentID != "" {
		query += fmt.Sprintf(" and '%s' in parents", parentID)
	}
	list, err := c.drive.Files.List().Q(query).Fields("files(id, name)").Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("find folder %q: %w", name, err)
	}
	if len(list.Files) > 0 {
		return list.Files[0].Id, nil
	}

	meta := &drive.File{Name: name, MimeType: folderMimeType}
	if parentID != "" {
		meta.Parents = []string{parentID}
	}
	folder, err := c.drive.Files.Create(meta).Fields("id").Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("create folder %q: %w", name, err)
	}
	return folder.Id, nil
}

// escapeQuery escapes single quotes for Drive query string literals.
func escapeQuery(s string) string {
	return strings.ReplaceAll(s, `'`, `\'`)
}

// Share grants a user access to a file or folder and sends the notification
// email, with an optional personal message.
func (c *Client) Share(ctx context.Context, fileID, email, role, message string) error {
	perm := &drive.Permission{Type: "user", Role: role, EmailAddress: email}
	call := c.drive.Permissions.Create(fileID, perm).SendNotificationEmail(true)
	if message != "" {
		call = call.EmailMessage(message)
	}
	if _, err := call.Context(ctx).Do(); err != nil {
		return fmt.Errorf("share %s with %s: %w", fileID, email, err)
	}
	return nil
}

// SharePublic makes a file accessible to anyone with the link.
func (c *Client) SharePublic(ctx context.Context, fileID, role string) error {
	perm := &drive.Permission{Type: "anyone", Role: role}
	if _, err := c.drive.Permissions.Create(fileID, perm).Context(ctx).Do(); err != nil {
		return fmt.Errorf("share %s publicly: %w", fileID, err)
	}
	return nil
}

// MoveToFolder moves a file into a folder, detaching it from its current
// parents.
func (c *Client) MoveToFolder(ctx context.Context, fileID, folderID string) error {
	file, err := c.drive.Files.Get(fileID).Fields("parents").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("get parents of %s: %w", fileID, err)
	}
	_, err = c.drive.Files.Update(fileID, &drive.File{}).
		AddParents(folderID).
		RemoveParents(strings.Join(file.Parents, ",")).
		Fields("id, parents").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("move %s to %s: %w", fileID, folderID, err)
	}
	return nil
}

// Rename renames a file or folder.
func (c *Client) Rename(ctx context.Context, fileID, newName string) error {
	_, err := c.drive.Files.Update(fileID, &drive.File{Name: newName}).
		Fields("id, name").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("rename %s: %w", fileID, err)
	}
	return nil
}

// Delete permanently deletes a file or folder.
func (c *Client) Delete(ctx context.Context, fileID string) error {
	if err := c.drive.Files.Delete(fileID).Context(ctx).Do(); err != nil {
		return fmt.Errorf("delete %s: %w", fileID, err)
	}
	return nil
}

// ListFiles lists non-trashed files newest first, optionally restricted to a
// folder.
func (c *Client) ListFiles(ctx context.Context, folderID string, limit int64) ([]*drive.File, error) {
	query := "trashed=false"
	if folderID != "" {
		query = fmt.Sprintf("'%s' in parents and trashed=false", folderID)
	}
	list, err := c.drive.Files.List().
		Q(query).
		PageSize(limit).
		Fields("files(id, name, mimeType, modifiedTime, webViewLink)").
		OrderBy("modifiedTime desc").
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("list files: %w", err)
	}
	return list.Files, nil
}

// Capabilities reports which operations the caller may perform on a file.
func (c *Client) Capabilities(ctx context.Context, fileID string) (*drive.FileCapabilities, error) {
	file, err := c.drive.Files.Get(fileID).
		Fields("capabilities(canEdit,canRename,canAddChildren,canShare,canComment)").
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("get capabilities of %s: %w", fileID, err)
	}
	return file.Capabilities, nil
}

// UploadImage uploads a PNG to Drive and returns its file ID plus the URI
// usable for inline embedding in a document. Public files embed without
// extra permission grants.
func (c *Client) UploadImage(ctx context.Context, path, folderID string, public bool) (string, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", "", fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	meta := &drive.File{Name: filepath.Base(path)}
	if folderID != "" {
		meta.Parents = []string{folderID}
	}
	created, err := c.drive.Files.Create(meta).
		Media(f, googleapi.ContentType("image/png")).
		Fields("id").
		Context(ctx).Do()
	if err != nil {
		return "", "", fmt.Errorf("upload image %s: %w", path, err)
	}

	if public {
		if err := c.SharePublic(ctx, created.Id, "reader"); err != nil {
			return "", "", err
		}
	}
	return created.Id, fmt.Sprintf("https://drive.google.com/uc?id=%s", created.Id), nil
}

// Tree writes a recursive listing of a folder to w, one file per line, with
// a kind glyph: d folder, D document, V video, I image, ? anything else.
func (c *Client) Tree(ctx context.Context, w io.Writer, folderID string) error {
	return c.tree(ctx, w, folderID, 0)
}

func (c *Client) tree(ctx context.Context, w io.Writer, folderID string, depth int) error {
	files, err := c.ListFiles(ctx, folderID, 50)
	if err != nil {
		return err
	}
	for _, f := range files {
		fmt.Fprintf(w, "%s%s %s\n", strings.Repeat("  ", depth), kindGlyph(f.MimeType), f.Name)
		if strings.Contains(f.MimeType, "folder") {
			if err := c.tree(ctx, w, f.Id, depth+1); err != nil {
				return err
			}
		}
	}
	return nil
}

func kindGlyph(mimeType string) string {
	switch {
	case strings.Contains(mimeType, "folder"):
		return "d"
	case strings.Contains(mimeType, "document"):
		return "D"
	case strings.Contains(mimeType, "video"):
		return "V"
	case strings.Contains(mimeType, "image"):
		return "I"
	}
	return "?"
}
