package compile

import (
	"regexp"
	"strings"
)

type blockKind int

const (
	blockBlank blockKind = iota
	blockHeading
	blockRule
	blockQuote
	blockTable
	blockCode
	blockCheckbox
	blockBullet
	blockOrdered
	blockParagraph
)

// block is one classified unit of source markdown. Table and code blocks
// span multiple source lines; everything else is a single line.
type block struct {
	kind    blockKind
	text    string   // payload for single-line kinds
	rows    []string // content rows for tables (separator rows dropped)
	code    []string // verbatim lines for fenced code
	level   int      // heading level 1-6
	depth   int      // raw leading-whitespace count for list kinds
	checked bool
}

var (
	headingRe  = regexp.MustCompile(`^(#{1,6})\s+(.*)`)
	checkboxRe = regexp.MustCompile(`^(\s*)- \[([ x])\]\s+(.*)`)
	bulletRe   = regexp.MustCompile(`^(\s*)[-*]\s+(.*)`)
	orderedRe  = regexp.MustCompile(`^(\d+)\.\s+(.*)`)
	tableSepRe = regexp.MustCompile(`^\|[\s\-:|]+\|$`)
)

// classify decides which block starts at lines[i] and returns it along with
// the index of the first line after the block. Only tables and fenced code
// consume more than one line. First match wins, in this order: blank,
// heading, rule, quote, table, code, checkbox, bullet, ordered, paragraph.
func classify(lines []string, i int) (block, int) {
	line := lines[i]

	if strings.TrimSpace(line) == "" {
		return block{kind: blockBlank}, i + 1
	}

	if m := headingRe.FindStringSubmatch(line); m != nil {
		return block{
			kind:  blockHeading,
			level: len(m[1]),
			text:  strings.TrimSpace(m[2]),
		}, i + 1
	}

	switch strings.TrimSpace(line) {
	case "---", "***", "___":
		return block{kind: blockRule}, i + 1
	}

	if strings.HasPrefix(line, ">") {
		return block{
			kind: blockQuote,
			text: strings.TrimSpace(strings.TrimPrefix(line, ">")),
		}, i + 1
	}

	if isTableRow(line) {
		return scanTable(lines, i)
	}

	if strings.HasPrefix(strings.TrimSpace(line), "```") {
		return scanCode(lines, i)
	}

	if m := checkboxRe.FindStringSubmatch(line); m != nil {
		return block{
			kind:    blockCheckbox,
			depth:   len(m[1]),
			checked: m[2] == "x",
			text:    strings.TrimSpace(m[3]),
		}, i + 1
	}

	if m := bulletRe.FindStringSubmatch(line); m != nil {
		return block{
			kind:  blockBullet,
			depth: len(m[1]),
			text:  strings.TrimSpace(m[2]),
		}, i + 1
	}

	if m := orderedRe.FindStringSubmatch(line); m != nil {
		return block{kind: blockOrdered, text: strings.TrimSpace(m[2])}, i + 1
	}

	return block{kind: blockParagraph, text: strings.TrimSpace(line)}, i + 1
}

func isTableRow(line string) bool {
	return strings.Contains(line, "|") && strings.HasPrefix(strings.TrimSpace(line), "|")
}

// scanTable consumes the contiguous run of table rows starting at lines[i].
// Separator rows (only dashes, colons, pipes, whitespace) are dropped here
// so the emitter only sees content rows.
func scanTable(lines []string, i int) (block, int) {
	var rows []string
	for i < len(lines) && isTableRow(lines[i]) {
		row := strings.TrimSpace(lines[i])
		i++
		if tableSepRe.MatchString(row) {
			continue
		}
		rows = append(rows, row)
	}
	return block{kind: blockTable, rows: rows}, i
}

// scanCode consumes a fenced code block. End of input closes an open fence,
// so a truncated document never fails to compile.
func scanCode(lines []string, i int) (block, int) {
	i++ // opening fence
	var code []string
	for i < len(lines) && !strings.HasPrefix(strings.TrimSpace(lines[i]), "```") {
		code = append(code, lines[i])
		i++
	}
	if i < len(lines) {
		i++ // closing fence
	}
	return block{kind: blockCode, code: code}, i
}
