package gdocs

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	docs "google.golang.org/api/docs/v1"
	drive "google.golang.org/api/drive/v3"
)

func TestTitleFromPath(t *testing.T) {
	cases := []struct {
		path, prefix, want string
	}{
		{"notes.md", "", "notes"},
		{"weekly_report.md", "", "weekly report"},
		{"01 Getting Started.md", "", "Getting Started"},
		{"docs/02_setup_guide.md", "", "setup guide"},
		{"plan.md", "Q3", "Q3 - plan"},
		{"readme.txt", "", "readme.txt"},
	}
	for _, tc := range cases {
		if got := TitleFromPath(tc.path, tc.prefix); got != tc.want {
			t.Errorf("TitleFromPath(%q, %q)=%q, want %q", tc.path, tc.prefix, got, tc.want)
		}
	}
}

func TestUploadDir(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"01 Alpha.md": "# Alpha\n",
		"02_Beta.md":  "# Beta\n\ncontent\n",
		"notes.txt":   "ignored\n",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}

	var created []string
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		// Folder lookup, then folder listing.
		case r.Method == http.MethodGet && strings.HasSuffix(r.URL.Path, "/files"):
			q := r.URL.Query().Get("q")
			if strings.Contains(q, folderMimeType) {
				json.NewEncoder(w).Encode(&drive.FileList{Files: []*drive.File{
					{Id: "fold1", Name: "Docs"},
				}})
				return
			}
			// "Alpha" already exists in the folder and must be skipped.
			json.NewEncoder(w).Encode(&drive.FileList{Files: []*drive.File{
				{Id: "docA", Name: "Alpha"},
			}})
		case r.Method == http.MethodPost && strings.HasSuffix(r.URL.Path, "/documents"):
			json.NewEncoder(w).Encode(&docs.Document{DocumentId: "docB"})
		case r.Method == http.MethodPost && strings.HasSuffix(r.URL.Path, ":batchUpdate"):
			created = append(created, strings.TrimSuffix(filepath.Base(r.URL.Path), ":batchUpdate"))
			json.NewEncoder(w).Encode(&docs.BatchUpdateDocumentResponse{})
		case r.Method == http.MethodGet && strings.Contains(r.URL.Path, "/files/"):
			json.NewEncoder(w).Encode(&drive.File{Parents: []string{"root"}})
		case r.Method == http.MethodPatch:
			json.NewEncoder(w).Encode(&drive.File{Id: "docB"})
		default:
			t.Fatalf("unexpected call: %s %s", r.Method, r.URL.Path)
		}
	}))

	result, err := client.UploadDir(context.Background(), dir, "Docs", UploadDirOptions{})
	if err != nil {
		t.Fatalf("UploadDir: %v", err)
	}
	if result.FolderID != "fold1" {
		t.Fatalf("folderID=%q", result.FolderID)
	}
	if len(result.Docs) != 2 {
		t.Fatalf("got %d docs, want 2", len(result.Docs))
	}
	if result.Docs[0].Title != "Alpha" || !result.Docs[0].Skipped {
		t.Fatalf("first doc=%+v, want skipped Alpha", result.Docs[0])
	}
	if result.Docs[1].Title != "Beta" || result.Docs[1].Skipped {
		t.Fatalf("second doc=%+v, want created Beta", result.Docs[1])
	}
	// Only Beta was compiled and applied.
	if len(created) != 1 || created[0] != "docB" {
		t.Fatalf("batchUpdate calls=%v, want [docB]", created)
	}
}
