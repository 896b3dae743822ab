package markdown

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/yuin/goldmark/ast"
)

// headingIDs generates heading anchors that keep non-Latin letters, so CJK
// headings get readable ids instead of a run of "heading-N".
type headingIDs struct {
	seen map[string]bool
}

func newHeadingIDs() *headingIDs {
	return &headingIDs{seen: make(map[string]bool)}
}

// Generate implements parser.IDs.
func (s *headingIDs) Generate(value []byte, kind ast.NodeKind) []byte {
	base := Slug(string(value))
	if base == "" {
		base = "section"
	}
	id := base
	for i := 1; s.seen[id]; i++ {
		id = base + "-" + strconv.Itoa(i)
	}
	s.seen[id] = true
	return []byte(id)
}

// Put implements parser.IDs. It reserves ids set explicitly in the source.
func (s *headingIDs) Put(value []byte) {
	s.seen[string(value)] = true
}

// Slug lowercases s and joins its runs of letters and digits with hyphens.
func Slug(s string) string {
	var b strings.Builder
	pending := false
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), unicode.Is(unicode.Mn, r), r == '_':
			if pending && b.Len() > 0 {
				b.WriteByte('-')
			}
			pending = false
			b.WriteRune(r)
		default:
			pending = true
		}
	}
	return b.String()
}
