package blogengine

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/calendhub/blogengine/content"
)

// handlePostGet serves one post with its language availability and
// hreflang alternates. Drafts stay visible to the admin session only.
func (a *App) handlePostGet(c echo.Context) error {
	slug := c.Param("slug")
	if strings.Contains(slug, "..") || strings.ContainsAny(slug, "/\\") {
		return jsonError(c, http.StatusBadRequest, "Invalid slug")
	}
	lang := c.QueryParam("lang")
	if !content.IsSupported(lang) {
		lang = content.DefaultLanguage
	}

	post, err := a.Resolver.Get(slug, lang)
	if err != nil {
		return err
	}
	if post == nil || (!post.Published() && !IsAdmin(c)) {
		return jsonError(c, http.StatusNotFound, "Post not found")
	}

	cfg, err := a.Store.SiteConfig()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"slug":               post.Slug,
		"language":           post.Language,
		"data":               post.Data,
		"body":               post.Body,
		"availableLanguages": a.Resolver.AvailableLanguages(slug),
		"alternates":         content.AlternateURLs(slug, cfg.URL),
	})
}

// handlePostDelete removes a post's default-language files from every
// storage location that contains them.
func (a *App) handlePostDelete(c echo.Context) error {
	if !IsAdmin(c) {
		return jsonError(c, http.StatusUnauthorized, "Unauthorized")
	}
	var req struct {
		Slug string `json:"slug"`
	}
	if err := c.Bind(&req); err != nil || req.Slug == "" {
		return jsonError(c, http.StatusBadRequest, "Slug is required")
	}
	if strings.Contains(req.Slug, "..") || strings.ContainsAny(req.Slug, "/\\") {
		return jsonError(c, http.StatusBadRequest, "Invalid slug")
	}
	deleted, err := a.Resolver.Delete(req.Slug)
	if err != nil {
		return err
	}
	if !deleted {
		return jsonError(c, http.StatusNotFound, "Post not found")
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Post \"" + req.Slug + "\" deleted successfully",
	})
}
