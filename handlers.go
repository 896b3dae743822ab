package memo

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/wongchisum/memo/i18n"
)

const relatedPostsLimit = 3

func (a *App) viewContext(c echo.Context) ViewContext {
	return ViewContext{
		Site:   a.Config.SiteInfo,
		Locale: Locale(c),
		Path:   c.Request().URL.Path,
		TOC:    a.Config.TOC,
	}
}

func (a *App) handleHome(c echo.Context) error {
	tag := c.QueryParam("tag")
	posts, err := a.Cache.ListPosts(tag)
	if err != nil {
		return err
	}
	tags, err := a.Cache.ListTags()
	if err != nil {
		return err
	}
	return Render(c, a.Views.Home(a.viewContext(c), posts, tag, tags))
}

func (a *App) handlePost(c echo.Context) error {
	slug, err := url.PathUnescape(c.Param("slug"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound)
	}
	post, err := a.Cache.GetPost(slug)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return RenderStatus(c, http.StatusNotFound, a.Views.NotFound(a.viewContext(c)))
		}
		return err
	}
	posts, err := a.Cache.ListPosts("")
	if err != nil {
		return err
	}
	related := FilterRelatedPosts(post, posts, relatedPostsLimit)
	return Render(c, a.Views.Post(a.viewContext(c), post, related))
}

func (a *App) handleAbout(c echo.Context) error {
	page, err := a.Cache.GetPage("about")
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return RenderStatus(c, http.StatusNotFound, a.Views.NotFound(a.viewContext(c)))
		}
		return err
	}
	return Render(c, a.Views.Page(a.viewContext(c), page))
}

func (a *App) handleBlogroll(c echo.Context) error {
	return Render(c, a.Views.Blogroll(a.viewContext(c), a.Config.Blogroll))
}

func (a *App) handleFeed(c echo.Context) error {
	posts, err := a.Cache.ListPosts("")
	if err != nil {
		return err
	}
	return a.renderRSS(c, posts)
}

// handleLocale stores the chosen UI language and sends the visitor back to
// the page given in ?next=, or home.
func (a *App) handleLocale(c echo.Context) error {
	loc, ok := i18n.Parse(c.Param("code"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound)
	}
	if err := setLocalePreference(c, loc); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, safeRedirect(c.QueryParam("next")))
}

// safeRedirect only allows local absolute paths.
func safeRedirect(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return "/"
	}
	return next
}

func handleBlogRedirect(c echo.Context) error {
	return c.Redirect(http.StatusMovedPermanently, "/")
}

func (a *App) handleFavicon(c echo.Context) error {
	return c.File(a.Config.StaticDir + "/favicon.svg")
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	var he *echo.HTTPError
	ok := errors.As(err, &he)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, a.Views.NotFound(a.viewContext(c)))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		_ = RenderStatus(c, code, a.Views.ServerError(a.viewContext(c)))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
