package gdocs

import (
	"context"
	"fmt"

	docs "google.golang.org/api/docs/v1"

	"github.com/gdocmd/gdocmd/internal/compile"
	"github.com/gdocmd/gdocmd/internal/docreq"
)

// uploadBatchSize caps batchUpdate payloads when uploading compiled markdown.
const uploadBatchSize = 100

// DocURL returns the edit URL for a document.
func DocURL(docID string) string {
	return fmt.Sprintf("https://docs.google.com/document/d/%s/edit", docID)
}

// CreateDoc creates a document, optionally moves it into a folder, and fills
// it with the compiled markdown. Returns the document ID and its edit URL.
func (c *Client) CreateDoc(ctx context.Context, title, markdown, folderID string) (string, string, error) {
	doc, err := c.docs.Documents.Create(&docs.Document{Title: title}).Context(ctx).Do()
	if err != nil {
		return "", "", fmt.Errorf("create document %q: %w", title, err)
	}
	docID := doc.DocumentId

	if folderID != "" {
		if err := c.MoveToFolder(ctx, docID, folderID); err != nil {
			return "", "", err
		}
	}

	reqs := docreq.FilterValid(compile.Compile(markdown))
	for i, batch := range docreq.Chunk(reqs, uploadBatchSize) {
		if err := c.ApplyBatch(ctx, docID, batch); err != nil {
			return "", "", fmt.Errorf("apply batch %d: %w", i+1, err)
		}
	}

	return docID, DocURL(docID), nil
}

// ApplyBatch applies one batch of requests to a document. Batches computed
// against the same document must be applied in the order they were produced.
func (c *Client) ApplyBatch(ctx context.Context, docID string, reqs []*docs.Request) error {
	if len(reqs) == 0 {
		return nil
	}
	_, err := c.docs.Documents.BatchUpdate(docID, &docs.BatchUpdateDocumentRequest{
		Requests: reqs,
	}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("batch update %s: %w", docID, err)
	}
	return nil
}

// InlineImage is one embedded image found while reading a document back.
type InlineImage struct {
	ID  string `json:"id"`
	URI string `json:"uri"`
}

// DocContent is the lossy readback of a document: plain text and image
// references only. Styling does not survive the round trip.
type DocContent struct {
	Title  string        `json:"title"`
	Text   string        `json:"text"`
	Images []InlineImage `json:"images"`
}

// ReadDoc reads a document's text content and inline image URIs.
func (c *Client) ReadDoc(ctx context.Context, docID string) (*DocContent, error) {
	doc, err := c.docs.Documents.Get(docID).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("get document %s: %w", docID, err)
	}

	content := &DocContent{Title: doc.Title}
	if doc.Body == nil {
		return content, nil
	}

	var text []byte
	for _, elem := range doc.Body.Content {
		if elem.Paragraph == nil {
			continue
		}
		for _, pe := range elem.Paragraph.Elements {
			if pe.TextRun != nil {
				text = append(text, pe.TextRun.Content...)
			}
			if pe.InlineObjectElement != nil {
				objID := pe.InlineObjectElement.InlineObjectId
				obj, ok := doc.InlineObjects[objID]
				if !ok {
					continue
				}
				content.Images = append(content.Images, InlineImage{
					ID:  objID,
					URI: inlineObjectURI(obj),
				})
			}
		}
	}
	content.Text = string(text)
	return content, nil
}

func inlineObjectURI(obj docs.InlineObject) string {
	props := obj.InlineObjectProperties
	if props == nil || props.EmbeddedObject == nil || props.EmbeddedObject.ImageProperties == nil {
		return ""
	}
	return props.EmbeddedObject.ImageProperties.SourceUri
}

// ClearDoc removes all content from a document. An already-empty document is
// left alone: the Docs API rejects deletes over the final newline.
func (c *Client) ClearDoc(ctx context.Context, docID string) error {
	doc, err := c.docs.Documents.Get(docID).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("get document %s: %w", docID, err)
	}
	if doc.Body == nil || len(doc.Body.Content) < 2 {
		return nil
	}
	last := doc.Body.Content[len(doc.Body.Content)-1]
	end := last.EndIndex - 1
	if end <= 1 {
		return nil
	}
	return c.ApplyBatch(ctx, docID, []*docs.Request{{
		DeleteContentRange: &docs.DeleteContentRangeRequest{
			Range: &docs.Range{StartIndex: 1, EndIndex: end},
		},
	}})
}

// InsertHeaderImage inserts an image at the very top of a document, followed
// by a newline, optionally centered.
func (c *Client) InsertHeaderImage(ctx context.Context, docID, uri string, widthPt, heightPt float64, center bool) error {
	reqs := []*docs.Request{
		{
			InsertInlineImage: &docs.InsertInlineImageRequest{
				Uri:      uri,
				Location: &docs.Location{Index: 1},
				ObjectSize: &docs.Size{
					Width:  &docs.Dimension{Magnitude: widthPt, Unit: "PT"},
					Height: &docs.Dimension{Magnitude: heightPt, Unit: "PT"},
				},
			},
		},
		{
			InsertText: &docs.InsertTextRequest{
				Location: &docs.Location{Index: 2},
				Text:     "\n",
			},
		},
	}
	if center {
		reqs = append(reqs, &docs.Request{
			UpdateParagraphStyle: &docs.UpdateParagraphStyleRequest{
				Range:          &docs.Range{StartIndex: 1, EndIndex: 3},
				ParagraphStyle: &docs.ParagraphStyle{Alignment: "CENTER"},
				Fields:         "alignment",
			},
		})
	}
	return c.ApplyBatch(ctx, docID, reqs)
}
