package blogengine

import "path/filepath"

// Config holds the process-level configuration for a blogengine site.
// Site identity (title, description, canonical URL, social links) lives in
// the settings JSON documents and is re-read per request; Config only
// carries what must be known before the server starts.
type Config struct {
	Addr string // Listen address (default ":3000")

	DataDir        string // Root of the JSON document stores (default "public/data")
	PostsDir       string // Primary content root (default "<DataDir>/posts")
	LegacyPostsDir string // Legacy content root, default language only (default "content/blog")
	UploadsDir     string // Uploaded image directory (default "public/blog-images")
	CommentsDBPath string // SQLite path for comment persistence (default "data/comments.db")

	AdminPassword string // Required: admin login password
	SessionSecret string // Required: session cookie encryption secret
	CookieSecure  bool   // Set true for HTTPS deployments

	// StaticPages are the marketing page paths emitted into the sitemap.
	StaticPages []string
}

func (c *Config) setDefaults() {
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.DataDir == "" {
		c.DataDir = filepath.Join("public", "data")
	}
	if c.PostsDir == "" {
		c.PostsDir = filepath.Join(c.DataDir, "posts")
	}
	if c.LegacyPostsDir == "" {
		c.LegacyPostsDir = filepath.Join("content", "blog")
	}
	if c.UploadsDir == "" {
		c.UploadsDir = filepath.Join("public", "blog-images")
	}
	if c.CommentsDBPath == "" {
		c.CommentsDBPath = filepath.Join("data", "comments.db")
	}
	if c.StaticPages == nil {
		c.StaticPages = []string{"/about", "/features", "/terms-of-service", "/privacy-policy"}
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback runs after the built-in routes, before the server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}
