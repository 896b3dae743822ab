package memo

import (
	"io/fs"
	"time"

	"github.com/wongchisum/memo/i18n"
	"github.com/wongchisum/memo/scrollspy"
)

// SiteInfo is the public description of the site, available to views.
type SiteInfo struct {
	Name        string // Author display name (default "Blog")
	Title       string // Site title shown in the header
	Description string // Tagline, RSS and meta description
	Author      string // Author name for JSON-LD
	Avatar      string // Avatar path inside StaticDir (default "logo.png")
	URL         string // Canonical URL (default "http://localhost:3000")
	Socials     []Social
	Blogroll    []Link
}

// SiteConfig holds all configuration for a memo site.
type SiteConfig struct {
	SiteInfo

	Addr       string // Listen address (default ":3000")
	ContentDir string // Markdown content root (default "content")
	StaticDir  string // User static assets (default "public")

	SessionSecret string // Required: signs the preferences cookie
	CookieSecure  bool   // Set true for HTTPS

	DefaultLocale i18n.Locale // default zh-CN
	LogLevel      string      // debug, info, warn, error (default info)

	PostCacheTTL time.Duration     // Post cache TTL (default 5min)
	TOC          scrollspy.Options // Table of contents observation
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Blog"
	}
	if c.Title == "" {
		c.Title = c.Name
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Author == "" {
		c.Author = c.Name
	}
	if c.Avatar == "" {
		c.Avatar = "logo.png"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.ContentDir == "" {
		c.ContentDir = "content"
	}
	if c.StaticDir == "" {
		c.StaticDir = "public"
	}
	if c.DefaultLocale == "" {
		c.DefaultLocale = i18n.Default
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.PostCacheTTL == 0 {
		c.PostCacheTTL = 5 * time.Minute
	}
	if c.TOC.RootMargin == "" && len(c.TOC.Threshold) == 0 {
		c.TOC = scrollspy.DefaultOptions()
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App before the server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithContentFS reads content from fsys instead of ContentDir.
func WithContentFS(fsys fs.FS) Option {
	return func(a *App) {
		a.contentFS = fsys
	}
}
