// Package xmlgen serializes assembled report data into the legacy XML
// document accepted by the government filing system.
//
// The layout is a bit-exact external contract: element order, the
// present-but-empty rendering of nil amounts, the 51-character flag block
// and the two-space indent per nesting level are all fixed. Output is built
// as UTF-8 text and transcoded to Shift_JIS at the end.
package xmlgen

import (
	"fmt"
	"strings"

	"github.com/ysakura/shuushi/internal/model"
	"github.com/ysakura/shuushi/internal/normalize"
)

// Wire constants of the filing format.
const (
	EncodingName = "Shift_JIS"
	RootElement  = "SYUUSHI"

	formatVersion = "20191225"
	appName       = "shuushi"
	fileFormatNo  = "1"
	formVersion   = "07"
	styleVersion  = "02"

	indentStep = "  "
)

// FlagLength is the mandated width of the presence flag block.
const FlagLength = model.PresenceFlagLength

// Element is one node of the document tree. A node either carries a text
// value or children; a childless node always renders both tags, so an empty
// value yields a present-but-empty element rather than an omitted one.
type Element struct {
	Name     string
	Value    string
	Children []Element
}

// Text creates a leaf element.
func Text(name, value string) Element {
	return Element{Name: name, Value: value}
}

// Nested creates an element wrapping child elements.
func Nested(name string, children ...Element) Element {
	return Element{Name: name, Children: children}
}

// BuildDocument renders the full document text: declaration, header block,
// flag block, then the caller-supplied section fragments in order.
func BuildDocument(flag string, sections []Element) (string, error) {
	if len(flag) != FlagLength {
		return "", fmt.Errorf("presence flag must be %d characters, got %d", FlagLength, len(flag))
	}
	for _, c := range flag {
		if c != '0' && c != '1' {
			return "", fmt.Errorf("presence flag contains %q; only '0' and '1' are allowed", c)
		}
	}

	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="` + EncodingName + `" ?>` + "\n")
	b.WriteString("<" + RootElement + ">\n")

	head := Nested("HEAD",
		Text("VER", formatVersion),
		Text("APP", appName),
		Text("KBN", fileFormatNo),
		Text("FMT_VER", formVersion),
		Text("STYLE_VER", styleVersion),
	)
	renderElement(&b, head, 1)

	renderElement(&b, Nested("FLG", Text(RootElement+"_FLG", flag)), 1)

	for _, section := range sections {
		renderElement(&b, section, 1)
	}

	b.WriteString("</" + RootElement + ">\n")
	return b.String(), nil
}

func renderElement(b *strings.Builder, e Element, level int) {
	indent := strings.Repeat(indentStep, level)

	if len(e.Children) == 0 {
		b.WriteString(indent + "<" + e.Name + ">" +
			normalize.EscapeMarkup(e.Value) + "</" + e.Name + ">\n")
		return
	}

	b.WriteString(indent + "<" + e.Name + ">\n")
	for _, child := range e.Children {
		renderElement(b, child, level+1)
	}
	b.WriteString(indent + "</" + e.Name + ">\n")
}
