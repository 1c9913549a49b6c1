// Package docreq holds the offset-tracking primitives shared by the markdown
// compiler and the incremental builder. The Google Docs API addresses content
// by absolute index into a single text buffer, measured in UTF-16 code units,
// so every insert has to account for exactly how far it moved the next free
// index. Writer is the one place that arithmetic lives.
package docreq

import (
	"unicode/utf16"

	docs "google.golang.org/api/docs/v1"
)

// Len returns the length of s in UTF-16 code units, the unit of the Docs
// index model. Characters outside the BMP count as two.
func Len(s string) int64 {
	return int64(len(utf16.Encode([]rune(s))))
}

// Writer accumulates batchUpdate requests while tracking the next free index
// in the target document. Index 0 is reserved by the Docs API, so writers
// start at 1. The index never decreases.
//
// Style helpers take the (start, end) pair returned by Insert, which keeps
// style ranges pinned to exactly the span that was just inserted.
type Writer struct {
	reqs []*docs.Request
	idx  int64
}

// NewWriter returns a Writer positioned at index 1.
func NewWriter() *Writer {
	return &Writer{idx: 1}
}

// Index returns the next free index.
func (w *Writer) Index() int64 {
	return w.idx
}

// Requests returns the accumulated request sequence. Order is significant:
// later requests assume earlier ones have been applied.
func (w *Writer) Requests() []*docs.Request {
	return w.reqs
}

// Insert appends an insertText request at the current index and advances it
// by the UTF-16 length of text. It returns the half-open range [start, end)
// the text will occupy.
func (w *Writer) Insert(text string) (start, end int64) {
	start = w.idx
	w.reqs = append(w.reqs, &docs.Request{
		InsertText: &docs.InsertTextRequest{
			Location: &docs.Location{Index: start},
			Text:     text,
		},
	})
	w.idx += Len(text)
	return start, w.idx
}

// ParagraphStyle appends an updateParagraphStyle request over [start, end).
func (w *Writer) ParagraphStyle(start, end int64, style *docs.ParagraphStyle, fields string) {
	w.reqs = append(w.reqs, &docs.Request{
		UpdateParagraphStyle: &docs.UpdateParagraphStyleRequest{
			Range:          &docs.Range{StartIndex: start, EndIndex: end},
			ParagraphStyle: style,
			Fields:         fields,
		},
	})
}

// TextStyle appends an updateTextStyle request over [start, end).
func (w *Writer) TextStyle(start, end int64, style *docs.TextStyle, fields string) {
	w.reqs = append(w.reqs, &docs.Request{
		UpdateTextStyle: &docs.UpdateTextStyleRequest{
			Range:     &docs.Range{StartIndex: start, EndIndex: end},
			TextStyle: style,
			Fields:    fields,
		},
	})
}

// Bullets appends a createParagraphBullets request over [start, end).
func (w *Writer) Bullets(start, end int64, preset string) {
	w.reqs = append(w.reqs, &docs.Request{
		CreateParagraphBullets: &docs.CreateParagraphBulletsRequest{
			Range:        &docs.Range{StartIndex: start, EndIndex: end},
			BulletPreset: preset,
		},
	})
}

// Image appends an inline image followed by a forced newline. The image
// anchor and the newline each occupy one index unit regardless of the
// rendered size, so the writer always advances by exactly 2.
func (w *Writer) Image(uri string, widthPt, heightPt float64) (start, end int64) {
	start = w.idx
	w.reqs = append(w.reqs, &docs.Request{
		InsertInlineImage: &docs.InsertInlineImageRequest{
			Uri:      uri,
			Location: &docs.Location{Index: w.idx},
			ObjectSize: &docs.Size{
				Width:  &docs.Dimension{Magnitude: widthPt, Unit: "PT"},
				Height: &docs.Dimension{Magnitude: heightPt, Unit: "PT"},
			},
		},
	})
	w.idx++
	w.reqs = append(w.reqs, &docs.Request{
		InsertText: &docs.InsertTextRequest{
			Location: &docs.Location{Index: w.idx},
			Text:     "\n",
		},
	})
	w.idx++
	return start, w.idx
}
