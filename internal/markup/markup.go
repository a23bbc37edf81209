// Package markup converts the markdown-lite free-text fields of a resume
// (bullet markers, **bold**, *italic*) into a typed block tree. The renderer
// walks the tree and emits structural nodes, so user text never reaches the
// page as raw markup.
package markup

import (
	"regexp"
	"strings"
)

// Style is the emphasis state of a single inline run.
type Style int

const (
	Plain Style = iota
	Bold
	Italic
)

// Run is a contiguous span of text with one emphasis state. Emphasis never
// nests: the source format resolves **X** before *X* and stops there.
type Run struct {
	Style Style
	Text  string
}

// Kind tags a block as a paragraph or a bulleted list.
type Kind int

const (
	Paragraph Kind = iota
	List
)

// Block is one formatter output unit. Paragraph blocks carry Runs; List
// blocks carry one run sequence per item, in insertion order.
type Block struct {
	Kind  Kind
	Runs  []Run
	Items [][]Run
}

// IsList reports whether the block is a bulleted list.
func (b Block) IsList() bool { return b.Kind == List }

// IsBold reports whether the run is bold.
func (r Run) IsBold() bool { return r.Style == Bold }

// IsItalic reports whether the run is italic.
func (r Run) IsItalic() bool { return r.Style == Italic }

var (
	boldPattern   = regexp.MustCompile(`\*\*(.*?)\*\*`)
	italicPattern = regexp.MustCompile(`\*(.*?)\*`)
)

// Format splits text into paragraph and list blocks. Lines starting with
// "- " or "* " (after trimming) accumulate into a list; any other line
// closes the open list. Blank lines emit nothing: no paragraph break and no
// spacer, so consecutive plain lines each become their own paragraph. Pure
// function of its input; every render recomputes from the raw string.
func Format(text string) []Block {
	if text == "" {
		return nil
	}

	var blocks []Block
	var items [][]Run

	flush := func() {
		if len(items) > 0 {
			blocks = append(blocks, Block{Kind: List, Items: items})
			items = nil
		}
	}

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") {
			items = append(items, parseInline(trimmed[2:]))
			continue
		}
		flush()
		if trimmed == "" {
			continue
		}
		blocks = append(blocks, Block{Kind: Paragraph, Runs: parseInline(line)})
	}
	flush()
	return blocks
}

// parseInline resolves emphasis spans into runs. Double-asterisk spans are
// carved out first; single-asterisk spans are only matched inside the
// remaining plain segments, otherwise **bold** would be split into nested
// italics. Literal asterisks cannot be escaped.
func parseInline(s string) []Run {
	var runs []Run
	last := 0
	for _, m := range boldPattern.FindAllStringSubmatchIndex(s, -1) {
		if m[0] > last {
			runs = append(runs, italicRuns(s[last:m[0]])...)
		}
		runs = append(runs, Run{Style: Bold, Text: s[m[2]:m[3]]})
		last = m[1]
	}
	if last < len(s) {
		runs = append(runs, italicRuns(s[last:])...)
	}
	return runs
}

func italicRuns(s string) []Run {
	var runs []Run
	last := 0
	for _, m := range italicPattern.FindAllStringSubmatchIndex(s, -1) {
		if m[0] > last {
			runs = append(runs, Run{Style: Plain, Text: s[last:m[0]]})
		}
		runs = append(runs, Run{Style: Italic, Text: s[m[2]:m[3]]})
		last = m[1]
	}
	if last < len(s) {
		runs = append(runs, Run{Style: Plain, Text: s[last:]})
	}
	return runs
}
