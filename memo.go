// Package memo is a personal blog built with Go, Echo, and templ. It serves
// markdown posts with a scroll-spy table of contents, an about page, a
// blogroll, and an RSS feed, with the UI in Chinese or English.
//
// Callers provide their own templ components via the ViewFuncs struct
// (package views has the stock ones); memo handles the routing, middleware,
// content loading and caching.
package memo

import (
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	glog "github.com/labstack/gommon/log"
)

// ViewFuncs holds the templ components the app calls when rendering pages.
type ViewFuncs struct {
	Home        func(vc ViewContext, posts []BlogPost, activeTag string, tags []string) templ.Component
	Post        func(vc ViewContext, post BlogPost, related []BlogPost) templ.Component
	Page        func(vc ViewContext, page Page) templ.Component
	Blogroll    func(vc ViewContext, links []Link) templ.Component
	NotFound    func(vc ViewContext) templ.Component
	ServerError func(vc ViewContext) templ.Component
}

// App is the central memo application. It wires together the store,
// cache, handlers, middleware, and templates.
type App struct {
	Config SiteConfig
	Echo   *echo.Echo
	Store  *Store
	Cache  *PostCache
	Views  ViewFuncs

	resizeLimiter *RequestLimiter
	avatars       avatarCache
	customRoutes  []func(*App)
	contentFS     fs.FS
	prepared      bool
}

// New creates a new App with the given configuration and view functions.
func New(cfg SiteConfig, views ViewFuncs, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config: cfg,
		Echo:   echo.New(),
		Views:  views,
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Prepare loads content and registers middleware and routes. Start calls
// it; tests call it directly and drive a.Echo as an http.Handler.
func (a *App) Prepare() error {
	if a.prepared {
		return nil
	}
	if a.Config.SessionSecret == "" {
		return fmt.Errorf("memo: SessionSecret is required")
	}

	lvl, err := parseLogLevel(a.Config.LogLevel)
	if err != nil {
		return fmt.Errorf("memo: %w", err)
	}
	a.Echo.Logger.SetLevel(lvl)

	if a.contentFS == nil {
		a.contentFS = os.DirFS(a.Config.ContentDir)
	}
	a.Store = NewStore(a.contentFS)
	a.Cache = NewPostCache(a.Store, a.Config.PostCacheTTL)

	// Fail fast on malformed content rather than on the first request.
	posts, err := a.Cache.ListPosts("")
	if err != nil {
		return fmt.Errorf("memo: load content: %w", err)
	}
	a.Echo.Logger.Infof("loaded %d posts from %s", len(posts), a.Config.ContentDir)

	a.resizeLimiter = NewRequestLimiter(20, time.Minute)

	a.setupMiddleware()
	a.setupRoutes()
	for _, fn := range a.customRoutes {
		fn(a)
	}
	a.prepared = true
	return nil
}

// Start prepares the app and runs the HTTP server until it fails or is shut down.
func (a *App) Start() error {
	if err := a.Prepare(); err != nil {
		return err
	}
	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	// Framework assets (tocspy.js, toc.css) fall through to the user's
	// static dir for everything else, including tocspy.wasm.
	embeddedFS, _ := fs.Sub(EmbeddedAssets, "embedded")
	embeddedHandler := http.FileServer(http.FS(embeddedFS))
	e.GET("/public/tocspy.js", echo.WrapHandler(http.StripPrefix("/public/", embeddedHandler)))
	e.GET("/public/toc.css", echo.WrapHandler(http.StripPrefix("/public/", embeddedHandler)))

	e.Static("/public", a.Config.StaticDir)
	e.GET("/favicon.svg", a.handleFavicon)
	e.GET("/avatar/:size/", a.handleAvatar)

	e.GET("/feed.xml", a.handleFeed)
	e.GET("/blog", handleBlogRedirect)
	e.GET("/", a.handleHome)
	e.GET("/blog/:slug/", a.handlePost)
	e.GET("/about/", a.handleAbout)
	e.GET("/blogroll/", a.handleBlogroll)
	e.GET("/lang/:code/", a.handleLocale)
}

// Close releases background resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.resizeLimiter != nil {
		a.resizeLimiter.Stop()
	}
	return nil
}

func parseLogLevel(s string) (glog.Lvl, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return glog.DEBUG, nil
	case "", "info":
		return glog.INFO, nil
	case "warn", "warning":
		return glog.WARN, nil
	case "error":
		return glog.ERROR, nil
	case "off":
		return glog.OFF, nil
	}
	return glog.INFO, fmt.Errorf("unknown log level %q", s)
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// EnvBool reports whether the environment variable key is set to a true value.
func EnvBool(key string) bool {
	switch strings.ToLower(os.Getenv(key)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

// MustEnv returns the value of the environment variable key, or fatally exits if empty.
func MustEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("memo: required environment variable %s is not set", key)
	}
	return v
}
