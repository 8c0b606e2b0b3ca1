package blogengine

import (
	"encoding/xml"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/calendhub/blogengine/content"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

// langPosts pairs a language code with its published posts.
type langPosts struct {
	Lang  string
	Posts []content.Post
}

// buildSitemap assembles the URL entries in a fixed section order: home,
// per-language blog indices, static marketing pages, posts across all
// languages, categories, tags, author pages. The order is deterministic
// so the output is testable; consumers do not depend on it.
func buildSitemap(cfg SiteConfig, staticPages []string, allPosts []langPosts, categories []Category, authors []Author) []sitemapURL {
	base := cfg.URL
	urls := []sitemapURL{
		{Loc: base + "/", ChangeFreq: "daily", Priority: "1.0"},
	}

	for _, lang := range content.SupportedLanguages() {
		urls = append(urls, sitemapURL{
			Loc:        base + content.URLPrefix(lang) + "/blog",
			ChangeFreq: "daily",
			Priority:   "0.9",
		})
	}

	for _, page := range staticPages {
		urls = append(urls, sitemapURL{Loc: base + page, ChangeFreq: "monthly", Priority: "0.8"})
	}

	// One entry per published post per language; lastmod is the publish
	// date truncated to a calendar day.
	var tagSeen = map[string]bool{}
	var tagOrder []string
	for _, lp := range allPosts {
		prefix := content.URLPrefix(lp.Lang)
		for _, p := range lp.Posts {
			urls = append(urls, sitemapURL{
				Loc:        base + prefix + "/blog/" + p.Slug,
				LastMod:    p.Data.PublishDate.Format("2006-01-02"),
				ChangeFreq: "weekly",
				Priority:   "0.9",
			})
			if lp.Lang == content.DefaultLanguage {
				for _, t := range p.Data.Tags {
					if !tagSeen[t] {
						tagSeen[t] = true
						tagOrder = append(tagOrder, t)
					}
				}
			}
		}
	}

	for _, cat := range categories {
		urls = append(urls, sitemapURL{Loc: base + "/blog/category/" + cat.Slug, ChangeFreq: "weekly", Priority: "0.7"})
	}

	for _, tag := range tagOrder {
		urls = append(urls, sitemapURL{Loc: base + "/blog/tag/" + NormalizeTagName(tag), ChangeFreq: "weekly", Priority: "0.6"})
	}

	for _, author := range authors {
		urls = append(urls, sitemapURL{Loc: base + "/blog/author/" + author.ID, ChangeFreq: "monthly", Priority: "0.7"})
	}

	return urls
}

func (a *App) handleSitemap(c echo.Context) error {
	cfg, err := a.Store.SiteConfig()
	if err != nil {
		return err
	}
	var allPosts []langPosts
	for _, lang := range content.SupportedLanguages() {
		posts, err := a.Resolver.Published(lang)
		if err != nil {
			return err
		}
		allPosts = append(allPosts, langPosts{Lang: lang, Posts: posts})
	}
	categories, err := a.Store.ListCategories()
	if err != nil {
		return err
	}
	authors, err := a.Store.ListAuthors()
	if err != nil {
		return err
	}

	sitemap := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  buildSitemap(cfg, a.Config.StaticPages, allPosts, categories, authors),
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	c.Response().Write([]byte(xml.Header))
	return xml.NewEncoder(c.Response()).Encode(sitemap)
}
