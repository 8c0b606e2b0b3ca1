package blogengine

import (
	"encoding/xml"
	"net/http"
	"sort"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/calendhub/blogengine/content"
)

type rssXML struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Language    string    `xml:"language,omitempty"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string   `xml:"title"`
	Link        string   `xml:"link"`
	Description string   `xml:"description"`
	Categories  []string `xml:"category"`
	Author      string   `xml:"author,omitempty"`
	PubDate     string   `xml:"pubDate"`
	GUID        string   `xml:"guid"`
}

// buildFeed turns the published default-language posts, newest first, into
// the RSS channel. Item categories carry the post category plus its tags.
func buildFeed(cfg SiteConfig, posts []content.Post) rssXML {
	sorted := make([]content.Post, len(posts))
	copy(sorted, posts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Data.PublishDate.After(sorted[j].Data.PublishDate.Time)
	})

	items := make([]rssItem, 0, len(sorted))
	for _, p := range sorted {
		postURL := BuildURL(cfg.URL, "blog", p.Slug)
		author := p.Data.Author
		if author == "" {
			author = cfg.Author
		}
		items = append(items, rssItem{
			Title:       p.Data.Title,
			Link:        postURL,
			Description: p.Data.Description,
			Categories:  append([]string{p.Data.Category}, p.Data.Tags...),
			Author:      author,
			PubDate:     p.Data.PublishDate.Format(time.RFC1123Z),
			GUID:        postURL,
		})
	}
	return rssXML{
		Version: "2.0",
		Channel: rssChannel{
			Title:       cfg.Title,
			Link:        cfg.URL,
			Description: cfg.Description,
			Language:    cfg.Locale,
			Items:       items,
		},
	}
}

func (a *App) handleFeed(c echo.Context) error {
	cfg, err := a.Store.SiteConfig()
	if err != nil {
		return err
	}
	posts, err := a.Resolver.Published(content.DefaultLanguage)
	if err != nil {
		return err
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/rss+xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	c.Response().Write([]byte(xml.Header))
	return xml.NewEncoder(c.Response()).Encode(buildFeed(cfg, posts))
}
