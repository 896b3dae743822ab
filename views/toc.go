package views

import (
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/wongchisum/memo/scrollspy"
)

// CSS classes shared with embedded/toc.css. The active class is also handed
// to cmd/tocspy through data-active-class.
const (
	TOCActiveClass = "toc-active"
	tocItemClass   = "toc-item"
	tocLinkClass   = "toc-link truncate"
)

// TableOfContents renders the outline of a page as an ordered list of
// in-page links. The item whose id equals activeID carries the active class;
// in the browser tocspy moves it while the reader scrolls. Nothing is
// rendered for an empty outline.
func TableOfContents(headings []scrollspy.Heading, activeID string, opts scrollspy.Options, title string) templ.Component {
	return component(func(h *htmlWriter) {
		if len(headings) == 0 {
			return
		}
		h.raw(`<aside class="toc"><nav data-toc`)
		h.attr("aria-label", title)
		h.attr("data-root-margin", opts.RootMargin)
		h.attr("data-threshold", formatThresholds(opts.Threshold))
		h.attr("data-active-class", TOCActiveClass)
		h.raw(`>`)
		if title != "" {
			h.raw(`<p class="toc-title">`)
			h.text(title)
			h.raw(`</p>`)
		}
		h.raw(`<ol class="toc-list">`)
		for _, it := range scrollspy.Items(headings, activeID) {
			h.raw(`<li`)
			h.attrs(tocItemAttrs(it))
			h.raw(`><a`)
			h.attr("href", "#"+it.ID)
			h.attr("class", tocLinkClass)
			h.attr("title", it.Text)
			h.raw(`>`)
			h.text(it.Text)
			h.raw(`</a></li>`)
		}
		h.raw(`</ol></nav></aside>`)
	})
}

func tocItemAttrs(it scrollspy.Item) templ.Attributes {
	return templ.Attributes{
		"data-toc-id":  it.ID,
		"class":        templ.Classes(tocItemClass, templ.KV(TOCActiveClass, it.Active)).String(),
		"style":        "padding-left: " + strconv.Itoa(it.Indent) + "em",
		"aria-current": templ.KV("location", it.Active),
	}
}

func formatThresholds(ts []float64) string {
	parts := make([]string, len(ts))
	for i, t := range ts {
		parts[i] = strconv.FormatFloat(t, 'g', -1, 64)
	}
	return strings.Join(parts, ",")
}
