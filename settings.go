package blogengine

import (
	"net/http"
	"os"
	"strings"

	"github.com/labstack/echo/v4"
)

// SiteConfig is the site identity document. It is re-read on every request
// that needs it: edits through the settings endpoint take effect
// immediately, last write wins.
type SiteConfig struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	URL         string      `json:"url"`
	Author      string      `json:"author"`
	Locale      string      `json:"locale"`
	GAID        string      `json:"gaId,omitempty"`
	Social      SocialLinks `json:"social"`
	BlogCTA     BlogCTA     `json:"blogCTA"`
}

// SocialLinks holds the site-wide social handles.
type SocialLinks struct {
	Twitter   string `json:"twitter,omitempty"`
	GitHub    string `json:"github,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	YouTube   string `json:"youtube,omitempty"`
	Discord   string `json:"discord,omitempty"`
}

// BlogCTA is the call-to-action block rendered under blog posts.
type BlogCTA struct {
	Enabled       bool   `json:"enabled"`
	Title         string `json:"title,omitempty"`
	Description   string `json:"description,omitempty"`
	ButtonText    string `json:"buttonText,omitempty"`
	ButtonURL     string `json:"buttonUrl,omitempty"`
	SecondaryText string `json:"secondaryText,omitempty"`
}

// SEOSettings is the secondary settings document controlling sitemap and
// schema emission.
type SEOSettings struct {
	Sitemap struct {
		Enabled    bool    `json:"enabled"`
		Priority   float64 `json:"priority"`
		ChangeFreq string  `json:"changefreq"`
	} `json:"sitemap"`
	Schema struct {
		Enabled      bool   `json:"enabled"`
		Organization string `json:"organization,omitempty"`
	} `json:"schema"`
	Meta struct {
		Keywords string `json:"keywords,omitempty"`
	} `json:"meta"`
}

const (
	siteConfigDoc  = "settings/site-config.json"
	seoSettingsDoc = "settings/seo-settings.json"
)

// SiteConfig loads the site identity document, substituting defaults when
// it does not exist yet.
func (s *Store) SiteConfig() (SiteConfig, error) {
	var cfg SiteConfig
	if err := s.readDoc(siteConfigDoc, &cfg); err != nil {
		if os.IsNotExist(err) {
			return SiteConfig{
				Title:       "Blog",
				Description: "",
				URL:         "http://localhost:3000",
				Author:      "Author",
				Locale:      "en",
			}, nil
		}
		return SiteConfig{}, err
	}
	if cfg.Locale == "" {
		cfg.Locale = "en"
	}
	return cfg, nil
}

// SaveSiteConfig overwrites the site identity document.
func (s *Store) SaveSiteConfig(cfg SiteConfig) error {
	unlock := s.lock(siteConfigDoc)
	defer unlock()
	return s.writeDoc(siteConfigDoc, cfg)
}

// SEOSettings loads the SEO settings document, substituting the enabled
// defaults when absent.
func (s *Store) SEOSettings() (SEOSettings, error) {
	var seo SEOSettings
	if err := s.readDoc(seoSettingsDoc, &seo); err != nil {
		if os.IsNotExist(err) {
			seo.Sitemap.Enabled = true
			seo.Sitemap.Priority = 0.5
			seo.Sitemap.ChangeFreq = "weekly"
			seo.Schema.Enabled = true
			return seo, nil
		}
		return SEOSettings{}, err
	}
	return seo, nil
}

// SaveSEOSettings overwrites the SEO settings document.
func (s *Store) SaveSEOSettings(seo SEOSettings) error {
	unlock := s.lock(seoSettingsDoc)
	defer unlock()
	return s.writeDoc(seoSettingsDoc, seo)
}

// settingsRequest is the flat form the admin settings screen submits.
// Empty fields leave the stored value untouched.
type settingsRequest struct {
	SiteName        string `json:"siteName"`
	SiteDescription string `json:"siteDescription"`
	SiteURL         string `json:"siteUrl"`
	GAID            string `json:"gaId"`

	SocialTwitter   string `json:"socialTwitter"`
	SocialGitHub    string `json:"socialGithub"`
	SocialLinkedIn  string `json:"socialLinkedin"`
	SocialInstagram string `json:"socialInstagram"`
	SocialYouTube   string `json:"socialYoutube"`
	SocialDiscord   string `json:"socialDiscord"`

	CTAEnabled       bool   `json:"ctaEnabled"`
	CTATitle         string `json:"ctaTitle"`
	CTADescription   string `json:"ctaDescription"`
	CTAButtonText    string `json:"ctaButtonText"`
	CTAButtonURL     string `json:"ctaButtonUrl"`
	CTASecondaryText string `json:"ctaSecondaryText"`

	SitemapEnabled    bool    `json:"sitemapEnabled"`
	SitemapPriority   float64 `json:"sitemapPriority"`
	SitemapChangeFreq string  `json:"sitemapChangefreq"`
	MetaKeywords      string  `json:"metaKeywords"`
}

func (a *App) handleSettingsUpdate(c echo.Context) error {
	if !IsAdmin(c) {
		return jsonError(c, http.StatusUnauthorized, "Unauthorized")
	}
	var req settingsRequest
	if err := c.Bind(&req); err != nil {
		return jsonError(c, http.StatusBadRequest, "Invalid request body")
	}

	cfg, err := a.Store.SiteConfig()
	if err != nil {
		return err
	}
	setIfPresent(&cfg.Title, req.SiteName)
	setIfPresent(&cfg.Description, req.SiteDescription)
	setIfPresent(&cfg.URL, req.SiteURL)
	setIfPresent(&cfg.GAID, req.GAID)
	setIfPresent(&cfg.Social.Twitter, atHandle(req.SocialTwitter))
	setIfPresent(&cfg.Social.GitHub, req.SocialGitHub)
	setIfPresent(&cfg.Social.LinkedIn, req.SocialLinkedIn)
	setIfPresent(&cfg.Social.Instagram, atHandle(req.SocialInstagram))
	setIfPresent(&cfg.Social.YouTube, req.SocialYouTube)
	setIfPresent(&cfg.Social.Discord, req.SocialDiscord)
	cfg.BlogCTA.Enabled = req.CTAEnabled
	setIfPresent(&cfg.BlogCTA.Title, req.CTATitle)
	setIfPresent(&cfg.BlogCTA.Description, req.CTADescription)
	setIfPresent(&cfg.BlogCTA.ButtonText, req.CTAButtonText)
	setIfPresent(&cfg.BlogCTA.ButtonURL, req.CTAButtonURL)
	setIfPresent(&cfg.BlogCTA.SecondaryText, req.CTASecondaryText)
	if err := a.Store.SaveSiteConfig(cfg); err != nil {
		return err
	}

	var seo SEOSettings
	seo.Sitemap.Enabled = req.SitemapEnabled
	seo.Sitemap.Priority = req.SitemapPriority
	seo.Sitemap.ChangeFreq = req.SitemapChangeFreq
	seo.Schema.Enabled = true
	seo.Schema.Organization = cfg.Title
	seo.Meta.Keywords = req.MetaKeywords
	if err := a.Store.SaveSEOSettings(seo); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

func setIfPresent(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// atHandle normalizes a social handle to carry a leading @.
func atHandle(v string) string {
	if v == "" || strings.HasPrefix(v, "@") {
		return v
	}
	return "@" + v
}
