package views

import (
	"net/url"

	"github.com/a-h/templ"

	"github.com/wongchisum/memo"
)

// Default returns the stock templates.
func Default() memo.ViewFuncs {
	return memo.ViewFuncs{
		Home:        Home,
		Post:        Post,
		Page:        Page,
		Blogroll:    Blogroll,
		NotFound:    NotFound,
		ServerError: ServerError,
	}
}

// Home lists posts, optionally filtered by activeTag.
func Home(vc memo.ViewContext, posts []memo.BlogPost, activeTag string, tags []string) templ.Component {
	body := component(func(h *htmlWriter) {
		h.raw(`<section class="posts"><h1>`)
		h.text(vc.T("home.posts"))
		h.raw(`</h1>`)
		if len(tags) > 0 {
			h.raw(`<div class="tags">`)
			tagLink(h, "/", vc.T("home.all"), activeTag == "")
			for _, t := range tags {
				tagLink(h, "/?tag="+url.QueryEscape(t), t, t == activeTag)
			}
			h.raw(`</div>`)
		}
		if len(posts) == 0 {
			h.raw(`<p class="empty">`)
			h.text(vc.T("home.empty"))
			h.raw(`</p>`)
		} else {
			h.raw(`<ul class="post-list">`)
			for _, p := range posts {
				postCard(h, p)
			}
			h.raw(`</ul>`)
		}
		h.raw(`</section>`)
	})
	return layout(vc, layoutOptions{
		Meta:   memo.PageMeta{URL: buildURL(vc.Site.URL)},
		JSONLD: WebsiteJsonLD(vc.Site),
	}, body)
}

func tagLink(h *htmlWriter, href, label string, active bool) {
	h.raw(`<a`)
	h.attr("href", href)
	h.attr("class", TagClass(active))
	h.raw(`>`)
	h.text(label)
	h.raw(`</a>`)
}

func postCard(h *htmlWriter, p memo.BlogPost) {
	h.raw(`<li class="post-card"><a`)
	h.attr("href", "/blog/"+PathEscape(p.Slug)+"/")
	h.raw(`><h2>`)
	h.text(p.Title)
	h.raw(`</h2></a>`)
	if p.Date != "" {
		h.raw(`<time`)
		h.attr("datetime", p.Date)
		h.raw(`>`)
		h.text(p.Date)
		h.raw(`</time>`)
	}
	if p.Summary != "" {
		h.raw(`<p>`)
		h.text(p.Summary)
		h.raw(`</p>`)
	}
	h.raw(`</li>`)
}

// Post renders an article with its table of contents.
func Post(vc memo.ViewContext, post memo.BlogPost, related []memo.BlogPost) templ.Component {
	body := component(func(h *htmlWriter) {
		h.raw(`<article class="post relative"><header><h1>`)
		h.text(post.Title)
		h.raw(`</h1>`)
		if post.Date != "" {
			h.raw(`<time`)
			h.attr("datetime", post.Date)
			h.raw(`>`)
			h.text(post.Date)
			h.raw(`</time>`)
		}
		if len(post.Tags) > 0 {
			h.raw(`<div class="tags">`)
			for _, t := range post.Tags {
				tagLink(h, "/?tag="+url.QueryEscape(t), t, false)
			}
			h.raw(`</div>`)
		}
		h.raw(`</header>`)
		h.component(TableOfContents(post.Headings, "", vc.TOC, vc.T("post.toc")))
		h.raw(`<div class="prose">`)
		h.raw(post.HTML)
		h.raw(`</div></article>`)

		if len(related) > 0 {
			h.raw(`<section class="related"><h2>`)
			h.text(vc.T("post.related"))
			h.raw(`</h2><ul class="post-list">`)
			for _, p := range related {
				postCard(h, p)
			}
			h.raw(`</ul></section>`)
		}
		h.raw(`<p><a href="/">`)
		h.text(vc.T("post.back"))
		h.raw(`</a></p>`)
	})
	return layout(vc, layoutOptions{
		Meta: memo.PageMeta{
			Title:       post.Title,
			Description: post.Summary,
			URL:         buildURL(vc.Site.URL, "blog", post.Slug),
			OGType:      "article",
		},
		JSONLD: BlogPostingJsonLD(vc.Site, post),
		TOC:    len(post.Headings) > 0,
	}, body)
}

// Page renders a standalone markdown page such as about.
func Page(vc memo.ViewContext, page memo.Page) templ.Component {
	body := component(func(h *htmlWriter) {
		h.raw(`<article class="page relative">`)
		if page.Title != "" {
			h.raw(`<h1>`)
			h.text(page.Title)
			h.raw(`</h1>`)
		}
		h.component(TableOfContents(page.Headings, "", vc.TOC, vc.T("post.toc")))
		h.raw(`<div class="prose">`)
		h.raw(page.HTML)
		h.raw(`</div></article>`)
	})
	return layout(vc, layoutOptions{
		Meta: memo.PageMeta{Title: page.Title, URL: buildURL(vc.Site.URL, page.Name)},
		TOC:  len(page.Headings) > 0,
	}, body)
}

// Blogroll lists friends' sites.
func Blogroll(vc memo.ViewContext, links []memo.Link) templ.Component {
	body := component(func(h *htmlWriter) {
		h.raw(`<section class="blogroll"><h1>`)
		h.text(vc.T("blogroll.title"))
		h.raw(`</h1><p>`)
		h.text(vc.T("blogroll.intro"))
		h.raw(`</p><ul>`)
		for _, l := range links {
			h.raw(`<li><a target="_blank" rel="noopener noreferrer"`)
			h.attr("href", l.URL)
			h.raw(`>`)
			h.text(l.Name)
			h.raw(`</a></li>`)
		}
		h.raw(`</ul></section>`)
	})
	return layout(vc, layoutOptions{
		Meta: memo.PageMeta{Title: vc.T("blogroll.title"), URL: buildURL(vc.Site.URL, "blogroll")},
	}, body)
}

// NotFound is the 404 page.
func NotFound(vc memo.ViewContext) templ.Component {
	return errorPage(vc, "error.notfound")
}

// ServerError is the 500 page.
func ServerError(vc memo.ViewContext) templ.Component {
	return errorPage(vc, "error.server")
}

func errorPage(vc memo.ViewContext, key string) templ.Component {
	body := component(func(h *htmlWriter) {
		h.raw(`<section class="error"><h1>`)
		h.text(vc.T(key))
		h.raw(`</h1><p>`)
		h.text(vc.T(key + ".p"))
		h.raw(`</p><p><a href="/">`)
		h.text(vc.T("post.back"))
		h.raw(`</a></p></section>`)
	})
	return layout(vc, layoutOptions{Meta: memo.PageMeta{Title: vc.T(key)}}, body)
}
