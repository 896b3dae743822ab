package memo

import (
	"github.com/wongchisum/memo/i18n"
	"github.com/wongchisum/memo/scrollspy"
)

// BlogPost is a published article loaded from the content directory.
type BlogPost struct {
	Title    string
	Date     string
	Tags     []string
	Summary  string
	Link     string
	Slug     string
	Content  string // markdown body
	HTML     string
	Headings []scrollspy.Heading
	Draft    bool
}

// Page is a standalone markdown page such as "about".
type Page struct {
	Name     string
	Title    string
	HTML     string
	Headings []scrollspy.Heading
}

// Social is a profile link shown in the site header.
type Social struct {
	Label string
	Icon  string // icon name understood by the views
	Link  string
}

// Link is a blogroll entry.
type Link struct {
	Name string
	URL  string
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head> template.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
}

// ViewContext is passed to every view.
type ViewContext struct {
	Site   SiteInfo
	Locale i18n.Locale
	Path   string
	TOC    scrollspy.Options
}

// T translates key for the request locale.
func (v ViewContext) T(key string) string {
	return i18n.T(v.Locale, key)
}
