package memo

import (
	"net/http"
	"strings"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/wongchisum/memo/i18n"
)

const (
	sessionName = "prefs"
	localeKey   = "locale"
)

func (a *App) setupMiddleware() {
	e := a.Echo

	e.IPExtractor = echo.ExtractIPFromXFFHeader(
		echo.TrustLoopback(true),
		echo.TrustLinkLocal(false),
		echo.TrustPrivateNet(true),
	)

	e.HTTPErrorHandler = a.httpErrorHandler

	e.Pre(middleware.NonWWWRedirect())

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:  true,
		LogURI:     true,
		LogMethod:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			c.Logger().Infof("%s %s -> %d (%s)", v.Method, v.URI, v.Status, v.Latency)
			return nil
		},
	}))

	e.Use(middleware.Recover())

	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Level: 5,
		Skipper: func(c echo.Context) bool {
			return strings.HasPrefix(c.Request().URL.Path, "/public/") ||
				strings.HasPrefix(c.Request().URL.Path, "/avatar/")
		},
	}))

	e.Use(middleware.SecureWithConfig(middleware.SecureConfig{
		XSSProtection:         "1; mode=block",
		ContentTypeNosniff:    "nosniff",
		XFrameOptions:         "DENY",
		ReferrerPolicy:        "strict-origin-when-cross-origin",
		ContentSecurityPolicy: "default-src 'self'; script-src 'self' 'wasm-unsafe-eval'; style-src 'self' 'unsafe-inline'; img-src 'self' https: data:; font-src 'self'; connect-src 'self'",
		HSTSMaxAge:            31536000,
		HSTSExcludeSubdomains: false,
	}))

	e.Use(session.Middleware(a.newSessionStore()))
	e.Use(a.localeMiddleware)

	e.Use(middleware.AddTrailingSlashWithConfig(middleware.TrailingSlashConfig{
		RedirectCode: http.StatusMovedPermanently,
		Skipper: func(c echo.Context) bool {
			path := c.Request().URL.Path
			return strings.HasPrefix(path, "/public") ||
				path == "/feed.xml" || path == "/favicon.svg" || path == "/blog"
		},
	}))

	e.Use(cacheControlMiddleware)
}

func cacheControlMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		path := c.Request().URL.Path
		h := c.Response().Header()
		switch {
		case strings.HasPrefix(path, "/public/"):
			h.Set("Cache-Control", "public, max-age=31536000, immutable")
		case path == "/feed.xml":
			h.Set("Cache-Control", "public, max-age=86400")
		case strings.HasPrefix(path, "/lang/"):
			h.Set("Cache-Control", "no-store")
		default:
			// The UI language depends on the request.
			h.Set("Cache-Control", "private, max-age=3600")
			h.Add("Vary", "Accept-Language, Cookie")
		}
		return next(c)
	}
}

func (a *App) newSessionStore() *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte(a.Config.SessionSecret))
	store.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		MaxAge:   60 * 60 * 24 * 365,
		SameSite: http.SameSiteLaxMode,
		Secure:   a.Config.CookieSecure,
	}
	return store
}

// localeMiddleware resolves the UI locale once per request.
func (a *App) localeMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		var preferred string
		if sess, err := session.Get(sessionName, c); err == nil {
			preferred, _ = sess.Values[localeKey].(string)
		}
		loc := i18n.Match(preferred, c.Request().Header.Get("Accept-Language"), a.Config.DefaultLocale)
		c.Set(localeKey, loc)
		return next(c)
	}
}

// Locale returns the UI locale chosen for the request.
func Locale(c echo.Context) i18n.Locale {
	if loc, ok := c.Get(localeKey).(i18n.Locale); ok {
		return loc
	}
	return i18n.Default
}

func setLocalePreference(c echo.Context, loc i18n.Locale) error {
	// A cookie that no longer decodes still yields a fresh session.
	sess, err := session.Get(sessionName, c)
	if sess == nil {
		return err
	}
	sess.Values[localeKey] = string(loc)
	return sess.Save(c.Request(), c.Response())
}
