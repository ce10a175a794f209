package xmlgen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ysakura/shuushi/internal/model"
)

func emptyFlag() string {
	return "11" + strings.Repeat("0", 49)
}

func TestBuildDocumentShape(t *testing.T) {
	section := model.Section{TotalAmount: 150000}
	fragment := SectionElement(FormOtherIncome, LayoutIncome, &section)

	doc, err := BuildDocument(emptyFlag(), []Element{fragment})
	require.NoError(t, err)

	lines := strings.Split(doc, "\n")
	assert.Equal(t, `<?xml version="1.0" encoding="Shift_JIS" ?>`, lines[0])
	assert.Equal(t, "<SYUUSHI>", lines[1])
	assert.Equal(t, "</SYUUSHI>", lines[len(lines)-2])

	// Header block: five fixed fields in fixed order.
	head := strings.Join(lines[2:9], "\n")
	assert.Equal(t, `  <HEAD>
    <VER>20191225</VER>
    <APP>shuushi</APP>
    <KBN>1</KBN>
    <FMT_VER>07</FMT_VER>
    <STYLE_VER>02</STYLE_VER>
  </HEAD>`, head)

	// Flag block: two nesting levels.
	assert.Contains(t, doc, "  <FLG>\n    <SYUUSHI_FLG>"+emptyFlag()+"</SYUUSHI_FLG>\n  </FLG>\n")

	// Section fragment follows the flag block.
	assert.Contains(t, doc, "  <SYUUSHI07_09>\n    <SHEET>\n      <GOUKEI>150000</GOUKEI>")
}

func TestBuildDocumentRejectsBadFlag(t *testing.T) {
	_, err := BuildDocument("110", nil)
	require.Error(t, err)

	_, err = BuildDocument("11"+strings.Repeat("0", 48)+"x", nil)
	require.Error(t, err)
}

func TestBuildDocumentIndentsByNestingLevel(t *testing.T) {
	section := model.Section{
		TotalAmount: 150000,
		Rows: []model.Row{
			{No: 1, Amount: 150000, PartyName: "取引先"},
		},
	}
	fragment := SectionElement(FormOtherIncome, LayoutIncome, &section)

	doc, err := BuildDocument(emptyFlag(), []Element{fragment})
	require.NoError(t, err)

	for _, line := range strings.Split(doc, "\n") {
		if line == "" {
			continue
		}
		trimmed := strings.TrimLeft(line, " ")
		lead := len(line) - len(trimmed)
		assert.Zero(t, lead%2, "indent must be a multiple of two spaces: %q", line)
	}
	assert.Contains(t, doc, "      <ROW>\n        <ICHIREN_NO>1</ICHIREN_NO>")
}

func TestBuildDocumentEscapesReservedCharacters(t *testing.T) {
	section := model.Section{
		TotalAmount: 100000,
		Rows: []model.Row{
			{No: 1, Amount: 100000, PartyName: `R&D <Lab> "quo" 'apo'`},
		},
	}
	fragment := SectionElement(FormOtherIncome, LayoutIncome, &section)

	doc, err := BuildDocument(emptyFlag(), []Element{fragment})
	require.NoError(t, err)

	assert.Contains(t, doc, "<NAME>R&amp;D &lt;Lab&gt; &quot;quo&quot; &apos;apo&apos;</NAME>")
}
