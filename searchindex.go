package blogengine

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/calendhub/blogengine/content"
)

// searchExcerptLen caps the body text shipped per record; the index backs
// client-side filtering, not server-side search.
const searchExcerptLen = 500

// SearchRecord is one entry of the client-side search index.
type SearchRecord struct {
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	Author      string   `json:"author"`
	PublishDate string   `json:"publishDate"`
	Content     string   `json:"content"`
	Featured    bool     `json:"featured"`
	HeroImage   string   `json:"heroImage,omitempty"`
	URL         string   `json:"url"`
}

// buildSearchIndex maps published posts onto search records, truncating
// each body to at most searchExcerptLen characters.
func buildSearchIndex(posts []content.Post) []SearchRecord {
	records := make([]SearchRecord, 0, len(posts))
	for _, p := range posts {
		excerpt := p.Body
		if runes := []rune(excerpt); len(runes) > searchExcerptLen {
			excerpt = string(runes[:searchExcerptLen])
		}
		records = append(records, SearchRecord{
			Slug:        p.Slug,
			Title:       p.Data.Title,
			Description: p.Data.Description,
			Category:    p.Data.Category,
			Tags:        p.Data.Tags,
			Author:      p.Data.Author,
			PublishDate: p.Data.PublishDate.UTC().Format(time.RFC3339),
			Content:     excerpt,
			Featured:    p.Data.Featured,
			HeroImage:   p.Data.HeroImage,
			URL:         "/blog/" + p.Slug,
		})
	}
	return records
}

func (a *App) handleSearchIndex(c echo.Context) error {
	posts, err := a.Resolver.Published(content.DefaultLanguage)
	if err != nil {
		return err
	}
	c.Response().Header().Set("Cache-Control", "max-age=3600")
	return c.JSON(http.StatusOK, buildSearchIndex(posts))
}
