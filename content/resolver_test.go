package content

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writePost(t *testing.T, dir, name, body string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

const helloPost = `---
title: Hello
description: Greeting
publishDate: 2024-03-01
tags:
  - intro
---
Hello world.
`

const secretDraft = `---
title: Secret
publishDate: 2024-04-01
draft: true
---
Not yet.
`

func newTestResolver(t *testing.T) (*Resolver, string, string) {
	t.Helper()
	primary := t.TempDir()
	legacy := t.TempDir()
	r := NewResolver(primary, legacy)
	r.SetLogger(log.New(io.Discard, "", 0))
	return r, primary, legacy
}

func TestAllMergesSourcesWithShadowing(t *testing.T) {
	r, primary, legacy := newTestResolver(t)
	writePost(t, primary, "hello.md", helloPost)
	writePost(t, legacy, "hello.md", strings.Replace(helloPost, "Hello", "Legacy", 1))
	writePost(t, legacy, "old-post.md", helloPost)

	posts, err := r.All("en")
	if err != nil {
		t.Fatalf("All failed: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(posts))
	}

	var hello *Post
	for i := range posts {
		if posts[i].Slug == "hello" {
			hello = &posts[i]
		}
	}
	if hello == nil {
		t.Fatal("hello post missing")
	}
	if hello.Data.Title != "Hello" {
		t.Errorf("primary copy should shadow legacy, got title %q", hello.Data.Title)
	}
}

func TestAllSkipsMalformedFiles(t *testing.T) {
	r, primary, _ := newTestResolver(t)
	writePost(t, primary, "good.md", helloPost)
	writePost(t, primary, "bad.md", "---\ntitle: [unclosed\n---\nbody\n")

	posts, err := r.All("en")
	if err != nil {
		t.Fatalf("All failed: %v", err)
	}
	if len(posts) != 1 || posts[0].Slug != "good" {
		t.Fatalf("expected only the parseable post, got %v", posts)
	}
}

func TestPublishedExcludesDrafts(t *testing.T) {
	r, primary, _ := newTestResolver(t)
	writePost(t, primary, "hello.md", helloPost)
	writePost(t, primary, "secret.md", secretDraft)

	posts, err := r.Published("en")
	if err != nil {
		t.Fatalf("Published failed: %v", err)
	}
	if len(posts) != 1 || posts[0].Slug != "hello" {
		t.Fatalf("expected only published post, got %v", posts)
	}
}

func TestGetPrefersMDXAndPrimary(t *testing.T) {
	r, primary, _ := newTestResolver(t)
	writePost(t, primary, "hello.md", helloPost)
	writePost(t, primary, "hello.mdx", strings.Replace(helloPost, "Hello", "MDX", 1))

	post, err := r.Get("hello", "en")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if post == nil {
		t.Fatal("expected post, got nil")
	}
	if post.Data.Title != "MDX" {
		t.Errorf("expected .mdx to win, got title %q", post.Data.Title)
	}
}

func TestGetAbsentIsNotAnError(t *testing.T) {
	r, _, _ := newTestResolver(t)
	post, err := r.Get("missing", "en")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if post != nil {
		t.Fatalf("expected nil for absent post, got %v", post)
	}
}

func TestNonDefaultLanguageSkipsLegacyRoot(t *testing.T) {
	r, primary, legacy := newTestResolver(t)
	writePost(t, filepath.Join(primary, "es"), "hola.md", helloPost)
	writePost(t, filepath.Join(legacy, "es"), "viejo.md", helloPost)

	posts, err := r.All("es")
	if err != nil {
		t.Fatalf("All failed: %v", err)
	}
	if len(posts) != 1 || posts[0].Slug != "hola" {
		t.Fatalf("legacy root should not serve translations, got %v", posts)
	}
	if posts[0].Language != "es" {
		t.Errorf("Language = %q, want es", posts[0].Language)
	}
}

func TestAvailableLanguages(t *testing.T) {
	r, primary, legacy := newTestResolver(t)
	writePost(t, primary, "hello.md", helloPost)
	writePost(t, filepath.Join(primary, "es"), "hello.md", helloPost)
	writePost(t, legacy, "old-post.md", helloPost)

	got := r.AvailableLanguages("hello")
	if len(got) != 2 || got[0] != "en" || got[1] != "es" {
		t.Errorf("AvailableLanguages(hello) = %v, want [en es]", got)
	}
	legacyOnly := r.AvailableLanguages("old-post")
	if len(legacyOnly) != 1 || legacyOnly[0] != "en" {
		t.Errorf("AvailableLanguages(old-post) = %v, want [en]", legacyOnly)
	}
}

func TestDeleteRemovesAllDefaultLanguageCopies(t *testing.T) {
	r, primary, legacy := newTestResolver(t)
	writePost(t, primary, "hello.md", helloPost)
	writePost(t, primary, "hello.mdx", helloPost)
	writePost(t, legacy, "hello.md", helloPost)

	deleted, err := r.Delete("hello")
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if !deleted {
		t.Fatal("expected Delete to report removal")
	}
	post, err := r.Get("hello", "en")
	if err != nil {
		t.Fatalf("Get after delete failed: %v", err)
	}
	if post != nil {
		t.Fatal("post should be gone from every source")
	}

	deleted, err = r.Delete("hello")
	if err != nil {
		t.Fatalf("second Delete failed: %v", err)
	}
	if deleted {
		t.Fatal("second Delete should report nothing removed")
	}
}

func TestParseDefaults(t *testing.T) {
	r, primary, _ := newTestResolver(t)
	writePost(t, primary, "bare.md", "---\ntitle: Bare\n---\nBody.\n")

	post, err := r.Get("bare", "en")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if post.Data.Author != "default" {
		t.Errorf("Author = %q, want default", post.Data.Author)
	}
	if post.Data.Category != "Uncategorized" {
		t.Errorf("Category = %q, want Uncategorized", post.Data.Category)
	}
	if post.Data.Tags == nil || len(post.Data.Tags) != 0 {
		t.Errorf("Tags = %v, want empty non-nil slice", post.Data.Tags)
	}
	if post.Data.PublishDate.IsZero() {
		t.Error("PublishDate should default to now")
	}
	if !post.Published() {
		t.Error("non-draft post should be published")
	}
}

func TestDateTimeLayouts(t *testing.T) {
	r, primary, _ := newTestResolver(t)
	writePost(t, primary, "quoted.md", "---\ntitle: Q\npublishDate: \"January 2, 2024\"\n---\nx\n")
	writePost(t, primary, "bare.md", "---\ntitle: B\npublishDate: 2024-03-01\n---\nx\n")

	post, err := r.Get("quoted", "en")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got := post.Data.PublishDate.Format("2006-01-02"); got != "2024-01-02" {
		t.Errorf("PublishDate = %s, want 2024-01-02", got)
	}

	// Bare YAML dates are the storage format's common case; they must not
	// be forced through RFC3339.
	post, err = r.Get("bare", "en")
	if err != nil {
		t.Fatalf("Get failed for bare date: %v", err)
	}
	if got := post.Data.PublishDate.Format("2006-01-02"); got != "2024-03-01" {
		t.Errorf("bare PublishDate = %s, want 2024-03-01", got)
	}
}

func TestExtensionOnlyFilenamesAreIgnored(t *testing.T) {
	r, primary, _ := newTestResolver(t)
	writePost(t, primary, ".md", helloPost)
	writePost(t, primary, ".mdx", helloPost)
	writePost(t, primary, "hello.md", helloPost)

	posts, err := r.All("en")
	if err != nil {
		t.Fatalf("All failed: %v", err)
	}
	if len(posts) != 1 || posts[0].Slug != "hello" {
		t.Fatalf("expected only hello, got %v", posts)
	}

	post, err := r.Get("", "en")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if post != nil {
		t.Fatal("empty slug must resolve to nothing")
	}
}
