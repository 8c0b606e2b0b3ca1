package blogengine

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/calendhub/blogengine/content"
)

func (a *App) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "blogengine",
	})
}

// handleTranslations serves the UI strings for one language so client-side
// components stay in sync with the server-rendered pages.
func (a *App) handleTranslations(c echo.Context) error {
	lang := c.QueryParam("lang")
	return c.JSON(http.StatusOK, echo.Map{
		"language":     content.ResolveLanguage(lang).Code,
		"translations": content.Translate(lang),
	})
}

// handleRobots generates robots.txt from the stored site URL so the
// sitemap link tracks settings edits.
func (a *App) handleRobots(c echo.Context) error {
	cfg, err := a.Store.SiteConfig()
	if err != nil {
		return err
	}
	body := fmt.Sprintf("User-agent: *\nAllow: /\nDisallow: /admin/\n\nSitemap: %s/sitemap.xml\n", cfg.URL)
	return c.String(http.StatusOK, body)
}
