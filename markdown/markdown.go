// Package markdown renders post sources to HTML and extracts their outline
// for the table of contents.
package markdown

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/yuin/goldmark"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/wongchisum/memo/scrollspy"
)

// Heading levels collected into the outline. Level 1 is the page title.
const (
	MinTOCLevel = 2
	MaxTOCLevel = 4
)

// Document is a rendered markdown source.
type Document struct {
	HTML     string
	Meta     map[string]interface{}
	Headings []scrollspy.Heading
}

var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM, meta.Meta),
	goldmark.WithParserOptions(parser.WithAutoHeadingID()),
)

// Render converts src to HTML. Front matter, if present, is returned in
// Meta and not rendered.
func Render(src []byte) (Document, error) {
	pctx := parser.NewContext(parser.WithIDs(newHeadingIDs()))
	doc := md.Parser().Parse(text.NewReader(src), parser.WithContext(pctx))

	var buf bytes.Buffer
	if err := md.Renderer().Render(&buf, src, doc); err != nil {
		return Document{}, fmt.Errorf("markdown: render: %w", err)
	}
	metaData, err := meta.TryGet(pctx)
	if err != nil {
		return Document{}, fmt.Errorf("markdown: front matter: %w", err)
	}
	return Document{
		HTML:     buf.String(),
		Meta:     metaData,
		Headings: collectHeadings(doc, src),
	}, nil
}

func collectHeadings(doc ast.Node, src []byte) []scrollspy.Heading {
	var headings []scrollspy.Heading
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		if h.Level < MinTOCLevel || h.Level > MaxTOCLevel {
			return ast.WalkSkipChildren, nil
		}
		var id string
		if v, ok := h.AttributeString("id"); ok {
			if b, ok := v.([]byte); ok {
				id = string(b)
			}
		}
		if id == "" {
			return ast.WalkSkipChildren, nil
		}
		headings = append(headings, scrollspy.Heading{
			ID:    id,
			Text:  strings.TrimSpace(string(h.Text(src))),
			Level: h.Level,
		})
		return ast.WalkSkipChildren, nil
	})
	return headings
}

// Markdown returns a templ.Component that renders content as HTML.
func Markdown(content string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		doc, err := Render([]byte(content))
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, doc.HTML)
		return err
	})
}

// Outline formats headings as an indented list, one per line, with their
// anchors.
func Outline(headings []scrollspy.Heading) string {
	var b strings.Builder
	for _, h := range headings {
		b.WriteString(strings.Repeat("  ", scrollspy.Indent(h.Level)))
		b.WriteString("- ")
		b.WriteString(h.Text)
		b.WriteString(" (#")
		b.WriteString(h.ID)
		b.WriteString(")\n")
	}
	return b.String()
}
