package markup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat_EmptyInput(t *testing.T) {
	assert.Empty(t, Format(""))
}

func TestFormat_SingleParagraph(t *testing.T) {
	blocks := Format("Shipped the thing")
	require.Len(t, blocks, 1)
	assert.Equal(t, Paragraph, blocks[0].Kind)
	assert.Equal(t, []Run{{Style: Plain, Text: "Shipped the thing"}}, blocks[0].Runs)
}

func TestFormat_BulletList(t *testing.T) {
	blocks := Format("- a\n- b")
	require.Len(t, blocks, 1)
	require.Equal(t, List, blocks[0].Kind)
	require.Len(t, blocks[0].Items, 2)
	assert.Equal(t, []Run{{Style: Plain, Text: "a"}}, blocks[0].Items[0])
	assert.Equal(t, []Run{{Style: Plain, Text: "b"}}, blocks[0].Items[1])
}

func TestFormat_AsteriskBullets(t *testing.T) {
	blocks := Format("* one\n* two")
	require.Len(t, blocks, 1)
	assert.Equal(t, List, blocks[0].Kind)
	assert.Len(t, blocks[0].Items, 2)
}

func TestFormat_InlineEmphasis(t *testing.T) {
	blocks := Format("**Led** a team of *5*")
	require.Len(t, blocks, 1)
	require.Equal(t, Paragraph, blocks[0].Kind)
	assert.Equal(t, []Run{
		{Style: Bold, Text: "Led"},
		{Style: Plain, Text: " a team of "},
		{Style: Italic, Text: "5"},
	}, blocks[0].Runs)
}

func TestFormat_BoldResolvedBeforeItalic(t *testing.T) {
	blocks := Format("**bold**")
	require.Len(t, blocks, 1)
	assert.Equal(t, []Run{{Style: Bold, Text: "bold"}}, blocks[0].Runs)
}

func TestFormat_EmphasisInsideListItem(t *testing.T) {
	blocks := Format("- Improved *latency* by **40%**")
	require.Len(t, blocks, 1)
	require.Equal(t, List, blocks[0].Kind)
	assert.Equal(t, []Run{
		{Style: Plain, Text: "Improved "},
		{Style: Italic, Text: "latency"},
		{Style: Plain, Text: " by "},
		{Style: Bold, Text: "40%"},
	}, blocks[0].Items[0])
}

func TestFormat_BlankLinesAreElided(t *testing.T) {
	blocks := Format("line1\n\nline2")
	require.Len(t, blocks, 2)
	assert.Equal(t, Paragraph, blocks[0].Kind)
	assert.Equal(t, "line1", blocks[0].Runs[0].Text)
	assert.Equal(t, "line2", blocks[1].Runs[0].Text)
}

func TestFormat_ConsecutiveLinesAreSeparateParagraphs(t *testing.T) {
	blocks := Format("first\nsecond\nthird")
	require.Len(t, blocks, 3)
	for _, b := range blocks {
		assert.Equal(t, Paragraph, b.Kind)
	}
}

func TestFormat_ParagraphClosesOpenList(t *testing.T) {
	blocks := Format("- a\n- b\nintermission\n- c")
	require.Len(t, blocks, 3)
	assert.Equal(t, List, blocks[0].Kind)
	assert.Len(t, blocks[0].Items, 2)
	assert.Equal(t, Paragraph, blocks[1].Kind)
	assert.Equal(t, List, blocks[2].Kind)
	assert.Len(t, blocks[2].Items, 1)
}

func TestFormat_TrailingListIsFlushed(t *testing.T) {
	blocks := Format("intro\n- a")
	require.Len(t, blocks, 2)
	assert.Equal(t, List, blocks[1].Kind)
}

func TestFormat_IndentedBulletIsTrimmed(t *testing.T) {
	blocks := Format("   - padded")
	require.Len(t, blocks, 1)
	require.Equal(t, List, blocks[0].Kind)
	assert.Equal(t, "padded", blocks[0].Items[0][0].Text)
}

func TestFormat_ParagraphKeepsLeadingWhitespace(t *testing.T) {
	blocks := Format("  not a bullet")
	require.Len(t, blocks, 1)
	assert.Equal(t, "  not a bullet", blocks[0].Runs[0].Text)
}

func TestFormat_LoneBulletMarkerIsParagraph(t *testing.T) {
	// "-" without the trailing space is plain text, not a list marker.
	blocks := Format("-dash\n-")
	require.Len(t, blocks, 2)
	assert.Equal(t, Paragraph, blocks[0].Kind)
	assert.Equal(t, Paragraph, blocks[1].Kind)
}

func TestFormat_UnterminatedEmphasisStaysLiteral(t *testing.T) {
	blocks := Format("a *lone asterisk")
	require.Len(t, blocks, 1)
	assert.Equal(t, []Run{{Style: Plain, Text: "a *lone asterisk"}}, blocks[0].Runs)
}

func TestFormat_IsPureFunction(t *testing.T) {
	in := "- a\n\n**b**\n- c"
	first := Format(in)
	second := Format(in)
	assert.Equal(t, first, second)
}
