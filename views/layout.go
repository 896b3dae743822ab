package views

import (
	"net/url"

	"github.com/a-h/templ"

	"github.com/wongchisum/memo"
	"github.com/wongchisum/memo/i18n"
)

type layoutOptions struct {
	Meta   memo.PageMeta
	JSONLD string
	TOC    bool // load the scroll-spy widget
}

var socialIcons = map[string]string{
	"github": `<svg class="icon" viewBox="0 0 24 24" width="18" height="18" fill="none" stroke="currentColor" stroke-width="2" aria-hidden="true"><path d="M9 19c-5 1.5-5-2.5-7-3m14 6v-3.87a3.37 3.37 0 0 0-.94-2.61c3.14-.35 6.44-1.54 6.44-7A5.44 5.44 0 0 0 20 4.77 5.07 5.07 0 0 0 19.91 1S18.73.65 16 2.48a13.38 13.38 0 0 0-7 0C6.27.65 5.09 1 5.09 1A5.07 5.07 0 0 0 5 4.77a5.44 5.44 0 0 0-1.5 3.78c0 5.42 3.3 6.61 6.44 7A3.37 3.37 0 0 0 9 18.13V22"/></svg>`,
	"link":   `<svg class="icon" viewBox="0 0 24 24" width="18" height="18" fill="none" stroke="currentColor" stroke-width="2" aria-hidden="true"><path d="M15 7h3a5 5 0 0 1 0 10h-3m-6 0H6A5 5 0 0 1 6 7h3"/><line x1="8" y1="12" x2="16" y2="12"/></svg>`,
}

func layout(vc memo.ViewContext, o layoutOptions, body templ.Component) templ.Component {
	return component(func(h *htmlWriter) {
		title := o.Meta.Title
		if title == "" {
			title = vc.Site.Title
		} else {
			title += " | " + vc.Site.Title
		}
		desc := o.Meta.Description
		if desc == "" {
			desc = vc.Site.Description
		}
		ogType := o.Meta.OGType
		if ogType == "" {
			ogType = "website"
		}

		h.raw(`<!doctype html><html`)
		h.attr("lang", string(vc.Locale))
		h.raw(`><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.raw(`<title>`)
		h.text(title)
		h.raw(`</title><meta name="description"`)
		h.attr("content", desc)
		h.raw(`>`)
		if o.Meta.URL != "" {
			h.raw(`<link rel="canonical"`)
			h.attr("href", o.Meta.URL)
			h.raw(`><meta property="og:url"`)
			h.attr("content", o.Meta.URL)
			h.raw(`>`)
		}
		h.raw(`<meta property="og:title"`)
		h.attr("content", title)
		h.raw(`><meta property="og:description"`)
		h.attr("content", desc)
		h.raw(`><meta property="og:type"`)
		h.attr("content", ogType)
		h.raw(`>`)
		h.raw(`<link rel="icon" href="/favicon.svg" type="image/svg+xml">`)
		h.raw(`<link rel="alternate" type="application/rss+xml" href="/feed.xml"`)
		h.attr("title", vc.Site.Title)
		h.raw(`>`)
		h.raw(`<link rel="stylesheet" href="/public/style.css">`)
		if o.TOC {
			h.raw(`<link rel="stylesheet" href="/public/toc.css">`)
			h.raw(`<script src="/public/wasm_exec.js" defer></script><script src="/public/tocspy.js" defer></script>`)
		}
		if o.JSONLD != "" {
			h.raw(`<script type="application/ld+json">`)
			h.raw(o.JSONLD)
			h.raw(`</script>`)
		}
		h.raw(`</head><body>`)
		header(h, vc)
		h.raw(`<main class="container">`)
		h.component(body)
		h.raw(`</main>`)
		footer(h, vc)
		h.raw(`</body></html>`)
	})
}

func header(h *htmlWriter, vc memo.ViewContext) {
	h.raw(`<header class="site-header container"><a href="/" class="brand">`)
	if vc.Site.Avatar != "" {
		h.raw(`<img src="/avatar/64/" width="32" height="32" alt="" class="avatar">`)
	}
	h.raw(`<span class="brand-title">`)
	h.text(vc.Site.Title)
	h.raw(`</span></a>`)
	if vc.Site.Description != "" {
		h.raw(`<p class="tagline">`)
		h.text(vc.Site.Description)
		h.raw(`</p>`)
	}
	h.raw(`<nav class="site-nav">`)
	navLink(h, "/", vc.T("nav.home"), vc.Path == "/")
	navLink(h, "/about/", vc.T("nav.about"), vc.Path == "/about/")
	navLink(h, "/blogroll/", vc.T("nav.blogroll"), vc.Path == "/blogroll/")
	h.raw(`</nav>`)

	if len(vc.Site.Socials) > 0 {
		h.raw(`<ul class="socials">`)
		for _, s := range vc.Site.Socials {
			h.raw(`<li><a`)
			h.attr("href", s.Link)
			h.attr("aria-label", s.Label)
			h.attr("title", s.Label)
			h.raw(`>`)
			if icon, ok := socialIcons[s.Icon]; ok {
				h.raw(icon)
			} else {
				h.text(s.Label)
			}
			h.raw(`</a></li>`)
		}
		h.raw(`</ul>`)
	}

	h.raw(`<ul class="locales">`)
	for _, l := range i18n.Supported {
		if l == vc.Locale {
			continue
		}
		h.raw(`<li><a rel="nofollow"`)
		h.attr("href", "/lang/"+string(l)+"/?next="+url.QueryEscape(vc.Path))
		h.attr("hreflang", string(l))
		h.raw(`>`)
		h.text(l.Name())
		h.raw(`</a></li>`)
	}
	h.raw(`</ul></header>`)
}

func navLink(h *htmlWriter, href, label string, current bool) {
	h.raw(`<a`)
	h.attr("href", href)
	h.attr("class", NavClass(current))
	if current {
		h.attr("aria-current", "page")
	}
	h.raw(`>`)
	h.text(label)
	h.raw(`</a>`)
}

func footer(h *htmlWriter, vc memo.ViewContext) {
	h.raw(`<footer class="site-footer container"><p>© `)
	h.text(vc.Site.Name)
	h.raw(` · <a href="/feed.xml">`)
	h.text(vc.T("footer.feed"))
	h.raw(`</a></p></footer>`)
}
