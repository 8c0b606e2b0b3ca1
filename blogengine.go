// Package blogengine is the backend for a server-rendered marketing and
// blog site. Posts live as Markdown/MDX files with YAML front matter
// across a multilingual primary root and a legacy root; authors,
// categories, tags, and site settings live in JSON documents; comments
// are persisted in SQLite. The package exposes the public aggregates
// (sitemap, RSS, search index, robots.txt) and an admin API gated by a
// session cookie.
package blogengine

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/calendhub/blogengine/content"
)

// App is the central application. It wires together the document stores,
// the content resolver, the comment database, handlers, and middleware.
type App struct {
	Config   Config
	Echo     *echo.Echo
	Store    *Store // JSON documents under Config.DataDir
	Uploads  *Store // image metadata under Config.UploadsDir
	Resolver *content.Resolver
	Comments *CommentStore

	loginLimiter *LoginLimiter
	customRoutes []func(*App)
}

// New creates an App with the given configuration.
func New(cfg Config, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config: cfg,
		Echo:   echo.New(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Start initializes the stores, middleware, and routes, then runs the
// server until it is shut down.
func (a *App) Start() error {
	if a.Config.AdminPassword == "" {
		return fmt.Errorf("blogengine: AdminPassword is required")
	}
	if a.Config.SessionSecret == "" {
		return fmt.Errorf("blogengine: SessionSecret is required")
	}

	a.Store = NewStore(a.Config.DataDir)
	a.Uploads = NewStore(a.Config.UploadsDir)

	a.Resolver = content.NewResolver(a.Config.PostsDir, a.Config.LegacyPostsDir)

	comments, err := NewCommentStore(a.Config.CommentsDBPath)
	if err != nil {
		return fmt.Errorf("blogengine: init comment store: %w", err)
	}
	a.Comments = comments

	a.loginLimiter = NewLoginLimiter(5, time.Minute)

	a.setupMiddleware()
	a.setupRoutes()
	for _, fn := range a.customRoutes {
		fn(a)
	}

	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	// Public surface
	e.GET("/health", a.handleHealth)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/rss.xml", a.handleFeed)
	e.Static("/blog-images", a.Config.UploadsDir)

	// Admin session
	e.POST("/admin/login", a.handleAdminLogin)
	e.POST("/admin/logout", a.handleAdminLogout)

	// API
	e.GET("/api/search-index.json", a.handleSearchIndex)
	e.GET("/api/translations", a.handleTranslations)

	e.GET("/api/authors", a.handleAuthorsList)
	e.POST("/api/authors", a.handleAuthorCreate)
	e.PUT("/api/authors", a.handleAuthorUpdate)
	e.DELETE("/api/authors", a.handleAuthorDelete)

	e.GET("/api/categories", a.handleCategoriesList)
	e.POST("/api/categories", a.handleCategoryCreate)
	e.DELETE("/api/categories", a.handleCategoryDelete)

	e.GET("/api/tags", a.handleTagsList)
	e.POST("/api/tags", a.handleTagCreate)
	e.DELETE("/api/tags", a.handleTagDelete)

	e.GET("/api/comments", a.handleCommentsList)
	e.POST("/api/comments/submit", a.handleCommentSubmit)

	e.POST("/api/upload", a.handleUpload)
	e.POST("/api/images/delete", a.handleImageDelete)
	e.GET("/api/images/metadata", a.handleImageMetadataGet)
	e.POST("/api/images/metadata", a.handleImageMetadataSave)

	e.GET("/api/posts/:slug", a.handlePostGet)
	e.POST("/api/posts/delete", a.handlePostDelete)

	e.POST("/api/settings", a.handleSettingsUpdate)
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.Comments != nil {
		return a.Comments.Close()
	}
	return nil
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// MustEnv returns the value of the environment variable key, or fatally exits if empty.
func MustEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("blogengine: required environment variable %s is not set", key)
	}
	return v
}
