// Package builder exposes the compiler's offset discipline as an imperative
// append API, for callers composing a document directly instead of from
// markdown source. Appends accumulate locally; nothing touches the document
// until Flush.
package builder

import (
	"context"
	"fmt"
	"strings"

	docs "google.golang.org/api/docs/v1"

	"github.com/gdocmd/gdocmd/internal/docreq"
)

// flushBatchSize caps how many requests go out per batchUpdate call.
const flushBatchSize = 35

// Applier applies one batch of requests to a document. Batches for the same
// document must be applied strictly in the order Flush produces them.
type Applier interface {
	ApplyBatch(ctx context.Context, docID string, reqs []*docs.Request) error
}

// Builder accumulates document content append by append.
//
//	b := builder.New()
//	b.Text("Weekly Report\n", builder.WithHeading("HEADING_1"))
//	b.Status("PENDING")
//	b.Text("Summary goes here.\n")
//	b.Image("https://example.com/chart.png", 400, 250)
//	err := b.Flush(ctx, client, docID)
type Builder struct {
	w *docreq.Writer
}

// New returns an empty Builder positioned at the start of the document body.
func New() *Builder {
	return &Builder{w: docreq.NewWriter()}
}

// TextOption configures a Text append.
type TextOption func(*textOptions)

type textOptions struct {
	heading string
	bold    bool
}

// WithHeading applies a named paragraph style (e.g. "HEADING_1") to the
// appended text.
func WithHeading(namedStyle string) TextOption {
	return func(o *textOptions) { o.heading = namedStyle }
}

// WithBold renders the appended text bold, excluding its trailing newline.
func WithBold() TextOption {
	return func(o *textOptions) { o.bold = true }
}

// Text appends text at the current position.
func (b *Builder) Text(text string, opts ...TextOption) {
	var o textOptions
	for _, opt := range opts {
		opt(&o)
	}
	start, end := b.w.Insert(text)
	if o.heading != "" {
		b.w.ParagraphStyle(start, end, &docs.ParagraphStyle{
			NamedStyleType: o.heading,
		}, "namedStyleType")
	}
	if o.bold && strings.TrimSpace(text) != "" {
		b.w.TextStyle(start, end-1, &docs.TextStyle{Bold: true}, "bold")
	}
}

// Image appends an inline image followed by a newline. The rendered size is
// cosmetic; the append always occupies exactly two index units.
func (b *Builder) Image(uri string, widthPt, heightPt float64) {
	b.w.Image(uri, widthPt, heightPt)
}

// Status appends a bold "Status: {label}" line. A PENDING label is colored
// orange, anything else green.
func (b *Builder) Status(label string) {
	tag := fmt.Sprintf("Status: %s\n", label)
	start, end := b.w.Insert(tag)
	color := &docs.RgbColor{Red: 0, Green: 0.6, Blue: 0}
	if label == "PENDING" {
		color = &docs.RgbColor{Red: 0.85, Green: 0.55, Blue: 0}
	}
	b.w.TextStyle(start, end-1, &docs.TextStyle{
		Bold: true,
		ForegroundColor: &docs.OptionalColor{
			Color: &docs.Color{RgbColor: color},
		},
	}, "bold,foregroundColor")
}

// Rule appends a horizontal-rule stand-in (a fixed-width underscore line).
func (b *Builder) Rule() {
	b.w.Insert(strings.Repeat("_", 40) + "\n")
}

// Blank appends an empty paragraph.
func (b *Builder) Blank() {
	b.Text("\n")
}

// Requests returns the accumulated request sequence, unfiltered.
func (b *Builder) Requests() []*docs.Request {
	return b.w.Requests()
}

// Flush validates and chunks the accumulated requests and applies the
// batches in order. It stops at the first failed batch: later batches'
// indexes assume the earlier ones landed.
func (b *Builder) Flush(ctx context.Context, applier Applier, docID string) error {
	valid := docreq.FilterValid(b.w.Requests())
	for i, batch := range docreq.Chunk(valid, flushBatchSize) {
		if err := applier.ApplyBatch(ctx, docID, batch); err != nil {
			return fmt.Errorf("apply batch %d: %w", i+1, err)
		}
	}
	return nil
}
