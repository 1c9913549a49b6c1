package gdocs

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	docs "google.golang.org/api/docs/v1"
	drive "google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

// testClient builds a Client whose services point at a local test server.
func testClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	ctx := context.Background()
	docsSvc, err := docs.NewService(ctx, option.WithEndpoint(srv.URL), option.WithoutAuthentication())
	if err != nil {
		t.Fatalf("docs service: %v", err)
	}
	driveSvc, err := drive.NewService(ctx, option.WithEndpoint(srv.URL), option.WithoutAuthentication())
	if err != nil {
		t.Fatalf("drive service: %v", err)
	}
	return &Client{docs: docsSvc, drive: driveSvc}
}

func decodeBatch(t *testing.T, r *http.Request) *docs.BatchUpdateDocumentRequest {
	t.Helper()
	var body docs.BatchUpdateDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		t.Fatalf("decode batchUpdate body: %v", err)
	}
	return &body
}

func TestApplyBatch(t *testing.T) {
	var got *docs.BatchUpdateDocumentRequest
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || !strings.HasSuffix(r.URL.Path, "/documents/doc123:batchUpdate") {
			t.Fatalf("unexpected call: %s %s", r.Method, r.URL.Path)
		}
		got = decodeBatch(t, r)
		json.NewEncoder(w).Encode(&docs.BatchUpdateDocumentResponse{})
	}))

	reqs := []*docs.Request{{
		InsertText: &docs.InsertTextRequest{
			Location: &docs.Location{Index: 1},
			Text:     "hello\n",
		},
	}}
	if err := client.ApplyBatch(context.Background(), "doc123", reqs); err != nil {
		t.Fatalf("ApplyBatch: %v", err)
	}
	if len(got.Requests) != 1 || got.Requests[0].InsertText.Text != "hello\n" {
		t.Fatalf("server saw %+v", got.Requests)
	}
}

func TestApplyBatchEmptyIsNoop(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("unexpected call: %s %s", r.Method, r.URL.Path)
	}))
	if err := client.ApplyBatch(context.Background(), "doc123", nil); err != nil {
		t.Fatalf("ApplyBatch(nil): %v", err)
	}
}

func TestCreateDocChunksSequentially(t *testing.T) {
	var batchSizes []int
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && strings.HasSuffix(r.URL.Path, "/documents"):
			json.NewEncoder(w).Encode(&docs.Document{DocumentId: "doc123"})
		case r.Method == http.MethodPost && strings.HasSuffix(r.URL.Path, ":batchUpdate"):
			batchSizes = append(batchSizes, len(decodeBatch(t, r).Requests))
			json.NewEncoder(w).Encode(&docs.BatchUpdateDocumentResponse{})
		default:
			t.Fatalf("unexpected call: %s %s", r.Method, r.URL.Path)
		}
	}))

	// 120 blank lines compile to 120 insert requests: two batches.
	markdown := strings.Repeat("\n", 120)
	docID, url, err := client.CreateDoc(context.Background(), "T", markdown, "")
	if err != nil {
		t.Fatalf("CreateDoc: %v", err)
	}
	if docID != "doc123" {
		t.Fatalf("docID=%q", docID)
	}
	if url != "https://docs.google.com/document/d/doc123/edit" {
		t.Fatalf("url=%q", url)
	}
	if len(batchSizes) != 2 || batchSizes[0] != 100 || batchSizes[1] != 20 {
		t.Fatalf("batch sizes=%v, want [100 20]", batchSizes)
	}
}

func TestReadDoc(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(&docs.Document{
			Title: "My Doc",
			Body: &docs.Body{Content: []*docs.StructuralElement{
				{SectionBreak: &docs.SectionBreak{}},
				{Paragraph: &docs.Paragraph{Elements: []*docs.ParagraphElement{
					{TextRun: &docs.TextRun{Content: "Hello "}},
					{InlineObjectElement: &docs.InlineObjectElement{InlineObjectId: "obj1"}},
					{TextRun: &docs.TextRun{Content: "world\n"}},
				}}},
			}},
			InlineObjects: map[string]docs.InlineObject{
				"obj1": {InlineObjectProperties: &docs.InlineObjectProperties{
					EmbeddedObject: &docs.EmbeddedObject{
						ImageProperties: &docs.ImageProperties{SourceUri: "https://example.com/i.png"},
					},
				}},
			},
		})
	}))

	content, err := client.ReadDoc(context.Background(), "doc123")
	if err != nil {
		t.Fatalf("ReadDoc: %v", err)
	}
	if content.Title != "My Doc" {
		t.Fatalf("title=%q", content.Title)
	}
	if content.Text != "Hello world\n" {
		t.Fatalf("text=%q, want %q", content.Text, "Hello world\n")
	}
	if len(content.Images) != 1 || content.Images[0].URI != "https://example.com/i.png" {
		t.Fatalf("images=%+v", content.Images)
	}
}

func TestClearDoc(t *testing.T) {
	var got *docs.BatchUpdateDocumentRequest
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			json.NewEncoder(w).Encode(&docs.Document{
				Body: &docs.Body{Content: []*docs.StructuralElement{
					{EndIndex: 1},
					{EndIndex: 42},
				}},
			})
			return
		}
		got = decodeBatch(t, r)
		json.NewEncoder(w).Encode(&docs.BatchUpdateDocumentResponse{})
	}))

	if err := client.ClearDoc(context.Background(), "doc123"); err != nil {
		t.Fatalf("ClearDoc: %v", err)
	}
	del := got.Requests[0].DeleteContentRange
	if del == nil {
		t.Fatalf("want deleteContentRange, got %+v", got.Requests[0])
	}
	// The trailing newline of the last element cannot be deleted.
	if del.Range.StartIndex != 1 || del.Range.EndIndex != 41 {
		t.Fatalf("delete range=[%d,%d), want [1,41)", del.Range.StartIndex, del.Range.EndIndex)
	}
}

func TestClearDocEmptyIsNoop(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Fatalf("unexpected call: %s %s", r.Method, r.URL.Path)
		}
		json.NewEncoder(w).Encode(&docs.Document{
			Body: &docs.Body{Content: []*docs.StructuralElement{{EndIndex: 2}}},
		})
	}))
	if err := client.ClearDoc(context.Background(), "doc123"); err != nil {
		t.Fatalf("ClearDoc: %v", err)
	}
}

func TestInsertHeaderImage(t *testing.T) {
	var got *docs.BatchUpdateDocumentRequest
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = decodeBatch(t, r)
		json.NewEncoder(w).Encode(&docs.BatchUpdateDocumentResponse{})
	}))

	err := client.InsertHeaderImage(context.Background(), "doc123", "https://example.com/logo.png", 250, 57, true)
	if err != nil {
		t.Fatalf("InsertHeaderImage: %v", err)
	}
	if len(got.Requests) != 3 {
		t.Fatalf("got %d requests, want image + newline + center", len(got.Requests))
	}
	if got.Requests[0].InsertInlineImage.Location.Index != 1 {
		t.Fatalf("image at %d, want 1", got.Requests[0].InsertInlineImage.Location.Index)
	}
	center := got.Requests[2].UpdateParagraphStyle
	if center.ParagraphStyle.Alignment != "CENTER" {
		t.Fatalf("alignment=%q", center.ParagraphStyle.Alignment)
	}
}
