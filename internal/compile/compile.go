// Package compile turns markdown source into an ordered Google Docs
// batchUpdate request sequence. It is a line-oriented recognizer, not a full
// markdown parser: each block maps to an insertText request plus optional
// style requests over exactly the span that insert occupies, and the running
// index accounts for every inserted character. Reference links, nested
// emphasis, and HTML passthrough are out of scope.
package compile

import (
	"strings"

	docs "google.golang.org/api/docs/v1"

	"github.com/gdocmd/gdocmd/internal/docreq"
)

const (
	bulletPresetDisc    = "BULLET_DISC_CIRCLE_SQUARE"
	bulletPresetDecimal = "NUMBERED_DECIMAL_NESTED"

	codeFontFamily = "Courier New"
	codeFontSize   = 9

	// Checkbox indentation: base indent plus one step per two leading
	// spaces, with the first line pulled back one step so the text hangs
	// under the [x] glyph.
	checkboxIndentBase = 36
	checkboxIndentStep = 18

	quoteIndent = 36
)

// ruleText renders horizontal rules as a fixed-width underscore line; the
// Docs API has no horizontal-rule request.
var ruleText = strings.Repeat("_", 40) + "\n"

// Compile converts markdown to batchUpdate requests against a fresh
// document. The result still needs docreq.FilterValid before it hits the
// API; the caller chunks it for transport.
func Compile(markdown string) []*docs.Request {
	w := docreq.NewWriter()
	lines := strings.Split(markdown, "\n")
	// Source is a sequence of newline-terminated lines: a trailing newline
	// ends the last line, it does not open an empty one.
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	for i := 0; i < len(lines); {
		var b block
		b, i = classify(lines, i)
		emit(w, b)
	}
	return w.Requests()
}

func emit(w *docreq.Writer, b block) {
	switch b.kind {
	case blockBlank:
		w.Insert("\n")

	case blockHeading:
		start, end := w.Insert(stripBold(b.text) + "\n")
		w.ParagraphStyle(start, end, &docs.ParagraphStyle{
			NamedStyleType: headingStyle(b.level),
		}, "namedStyleType")

	case blockRule:
		w.Insert(ruleText)

	case blockQuote:
		start, end := w.Insert(stripBold(b.text) + "\n")
		w.ParagraphStyle(start, end, &docs.ParagraphStyle{
			IndentStart: &docs.Dimension{Magnitude: quoteIndent, Unit: "PT"},
		}, "indentStart")
		// Italic stops before the newline so it does not bleed into the
		// next paragraph's inherited style.
		w.TextStyle(start, end-1, &docs.TextStyle{Italic: true}, "italic")

	case blockTable:
		joined := make([]string, 0, len(b.rows))
		for _, row := range b.rows {
			joined = append(joined, strings.Join(tableCells(row), "\t"))
		}
		// Tab-separated plain text; table layout fidelity is out of scope.
		w.Insert(strings.Join(joined, "\n") + "\n")

	case blockCode:
		// Verbatim: code content is never emphasis-stripped.
		text := strings.Join(b.code, "\n") + "\n"
		start, end := w.Insert(text)
		if docreq.Len(text) > 1 {
			w.TextStyle(start, end-1, &docs.TextStyle{
				WeightedFontFamily: &docs.WeightedFontFamily{FontFamily: codeFontFamily},
				FontSize:           &docs.Dimension{Magnitude: codeFontSize, Unit: "PT"},
			}, "weightedFontFamily,fontSize")
		}

	case blockCheckbox:
		prefix := "[ ] "
		if b.checked {
			prefix = "[x] "
		}
		start, end := w.Insert(prefix + stripBold(b.text) + "\n")
		pts := float64(checkboxIndentBase + (b.depth/2)*checkboxIndentStep)
		w.ParagraphStyle(start, end, &docs.ParagraphStyle{
			IndentStart:     &docs.Dimension{Magnitude: pts, Unit: "PT"},
			IndentFirstLine: &docs.Dimension{Magnitude: pts - checkboxIndentStep, Unit: "PT"},
		}, "indentStart,indentFirstLine")

	case blockBullet:
		// Depth varies the indent only, never the preset: the list model
		// is flat, with no parent/child linkage between items.
		start, end := w.Insert("  " + stripBold(b.text) + "\n")
		w.Bullets(start, end, bulletPresetDisc)

	case blockOrdered:
		start, end := w.Insert(stripBold(b.text) + "\n")
		w.Bullets(start, end, bulletPresetDecimal)

	case blockParagraph:
		w.Insert(stripBold(b.text) + "\n")
	}
}

// tableCells splits a pipe row into trimmed, emphasis-stripped cells,
// dropping the empty edge cells produced by the leading and trailing pipes.
func tableCells(row string) []string {
	parts := strings.Split(row, "|")
	if len(parts) < 2 {
		return nil
	}
	parts = parts[1 : len(parts)-1]
	cells := make([]string, 0, len(parts))
	for _, p := range parts {
		cells = append(cells, stripBold(strings.TrimSpace(p)))
	}
	return cells
}

func headingStyle(level int) string {
	switch level {
	case 1:
		return "HEADING_1"
	case 2:
		return "HEADING_2"
	case 3:
		return "HEADING_3"
	case 4:
		return "HEADING_4"
	case 5:
		return "HEADING_5"
	case 6:
		return "HEADING_6"
	}
	// Unreachable from the classifier (it only matches 1-6 hashes), kept
	// as a fallback.
	return "HEADING_4"
}
