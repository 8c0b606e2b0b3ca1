package main

import (
	"log"
	"strings"

	"github.com/joho/godotenv"

	"github.com/calendhub/blogengine"
)

func main() {
	// A missing .env file is fine; environment variables take over.
	_ = godotenv.Load()

	cfg := blogengine.Config{
		Addr:           blogengine.EnvOr("BLOG_ADDR", ":3000"),
		DataDir:        blogengine.EnvOr("BLOG_DATA_DIR", ""),
		PostsDir:       blogengine.EnvOr("BLOG_POSTS_DIR", ""),
		LegacyPostsDir: blogengine.EnvOr("BLOG_LEGACY_POSTS_DIR", ""),
		UploadsDir:     blogengine.EnvOr("BLOG_UPLOADS_DIR", ""),
		CommentsDBPath: blogengine.EnvOr("BLOG_COMMENTS_DB", ""),
		AdminPassword:  blogengine.MustEnv("BLOG_ADMIN_PASSWORD"),
		SessionSecret:  blogengine.MustEnv("BLOG_SESSION_SECRET"),
		CookieSecure:   blogengine.EnvOr("BLOG_COOKIE_SECURE", "false") == "true",
	}
	if pages := blogengine.EnvOr("BLOG_STATIC_PAGES", ""); pages != "" {
		cfg.StaticPages = blogengine.FilterEmpty(strings.Split(pages, ","))
	}

	app := blogengine.New(cfg)
	defer app.Close()

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
