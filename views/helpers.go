package views

import (
	"encoding/json"
	"net/url"
	"path"
	"strings"

	"github.com/wongchisum/memo"
)

// buildURL joins path segments onto a base URL, ensuring a trailing slash.
func buildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if len(pathSegments) > 0 && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// PathEscape wraps url.PathEscape for use in templ expressions.
func PathEscape(s string) string {
	return url.PathEscape(s)
}

// TagClass returns CSS classes for a tag pill, with active variant.
func TagClass(active bool) string {
	base := "inline-flex items-center rounded border bg-amber-500/10 text-amber-900 border-amber-500/20 px-2 py-1 text-xs leading-none"
	if active {
		base += " bg-amber-500 text-white"
	}
	return base
}

// NavClass returns CSS classes for a header link.
func NavClass(current bool) string {
	if current {
		return "nav-link font-semibold"
	}
	return "nav-link"
}

// WebsiteJsonLD produces a Schema.org WebSite JSON-LD block using site values.
func WebsiteJsonLD(site memo.SiteInfo) string {
	data := map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "WebSite",
		"name":     site.Title,
		"url":      buildURL(site.URL),
	}
	if site.Description != "" {
		data["description"] = site.Description
	}
	if site.Author != "" {
		person := map[string]interface{}{
			"@type": "Person",
			"name":  site.Author,
		}
		var sameAs []string
		for _, s := range site.Socials {
			if strings.HasPrefix(s.Link, "http") {
				sameAs = append(sameAs, s.Link)
			}
		}
		if len(sameAs) > 0 {
			person["sameAs"] = sameAs
		}
		data["author"] = person
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// BlogPostingJsonLD produces a Schema.org BlogPosting JSON-LD block for a post.
func BlogPostingJsonLD(site memo.SiteInfo, post memo.BlogPost) string {
	postURL := buildURL(site.URL, "blog", post.Slug)
	data := map[string]interface{}{
		"@context":      "https://schema.org",
		"@type":         "BlogPosting",
		"headline":      post.Title,
		"description":   post.Summary,
		"datePublished": post.Date,
		"url":           postURL,
		"publisher": map[string]string{
			"@type": "Organization",
			"name":  site.Title,
		},
		"mainEntityOfPage": map[string]string{
			"@type": "WebPage",
			"@id":   postURL,
		},
	}
	if site.Author != "" {
		data["author"] = map[string]string{
			"@type": "Person",
			"name":  site.Author,
		}
	}
	if len(post.Tags) > 0 {
		data["keywords"] = strings.Join(post.Tags, ", ")
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}
