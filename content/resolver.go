package content

import (
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Source is one content storage root, queried in priority order.
// Multilingual roots keep non-default languages in per-code subdirectories;
// a default-only root is consulted for the default language alone.
type Source struct {
	Root         string
	Multilingual bool
}

// Resolver discovers and parses posts across an ordered list of sources.
// The first source containing a slug wins; later copies are shadowed.
type Resolver struct {
	sources []Source
	logger  *log.Logger
}

// NewResolver builds a Resolver over the primary root (multilingual) and
// the legacy root (default language only, kept for backward compatibility).
func NewResolver(primaryRoot, legacyRoot string) *Resolver {
	return &Resolver{
		sources: []Source{
			{Root: primaryRoot, Multilingual: true},
			{Root: legacyRoot},
		},
		logger: log.Default(),
	}
}

// SetLogger redirects parse warnings, mainly for tests.
func (r *Resolver) SetLogger(l *log.Logger) {
	r.logger = l
}

var markupExts = []string{".mdx", ".md"}

func isMarkupFile(name string) bool {
	for _, ext := range markupExts {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

func trimMarkupExt(name string) string {
	return strings.TrimSuffix(strings.TrimSuffix(name, ".mdx"), ".md")
}

// dirFor returns the directory holding lang's posts in src, or "" when the
// source does not serve that language.
func (s Source) dirFor(lang string) string {
	if lang == DefaultLanguage {
		return s.Root
	}
	if !s.Multilingual {
		return ""
	}
	return filepath.Join(s.Root, lang)
}

// All returns every post for lang, merging the sources in priority order.
// A slug found in an earlier source shadows later copies. Files that fail
// to parse are skipped with a logged warning rather than failing the
// whole listing.
func (r *Resolver) All(lang string) ([]Post, error) {
	if lang == "" {
		lang = DefaultLanguage
	}
	var posts []Post
	seen := make(map[string]bool)

	for _, src := range r.sources {
		dir := src.dirFor(lang)
		if dir == "" {
			continue
		}
		entries, err := os.ReadDir(dir)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		// Deterministic listing regardless of filesystem ordering.
		sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

		for _, entry := range entries {
			if entry.IsDir() || !isMarkupFile(entry.Name()) {
				continue
			}
			slug := trimMarkupExt(entry.Name())
			if slug == "" || seen[slug] {
				continue
			}
			path := filepath.Join(dir, entry.Name())
			f, err := os.Open(path)
			if err != nil {
				r.logger.Printf("warn: skipping unreadable post %s: %v", path, err)
				continue
			}
			post, err := parsePost(f, slug, lang)
			f.Close()
			if err != nil {
				r.logger.Printf("warn: skipping malformed post %s: %v", path, err)
				continue
			}
			seen[slug] = true
			posts = append(posts, post)
		}
	}
	return posts, nil
}

// Published returns the non-draft posts for lang.
func (r *Resolver) Published(lang string) ([]Post, error) {
	all, err := r.All(lang)
	if err != nil {
		return nil, err
	}
	published := all[:0:0]
	for _, p := range all {
		if p.Published() {
			published = append(published, p)
		}
	}
	return published, nil
}

// Get returns the post with the given slug and language, probing each
// source in priority order and .mdx before .md. A missing post yields
// (nil, nil): absence is not an error.
func (r *Resolver) Get(slug, lang string) (*Post, error) {
	if slug == "" {
		return nil, nil
	}
	if lang == "" {
		lang = DefaultLanguage
	}
	for _, src := range r.sources {
		dir := src.dirFor(lang)
		if dir == "" {
			continue
		}
		for _, ext := range markupExts {
			path := filepath.Join(dir, slug+ext)
			f, err := os.Open(path)
			if os.IsNotExist(err) {
				continue
			}
			if err != nil {
				return nil, err
			}
			post, err := parsePost(f, slug, lang)
			f.Close()
			if err != nil {
				return nil, err
			}
			return &post, nil
		}
	}
	return nil, nil
}

// AvailableLanguages returns the supported languages in which slug exists,
// in registry order. Only the primary root is probed for non-default
// languages; the legacy root never holds translations.
func (r *Resolver) AvailableLanguages(slug string) []string {
	var available []string
	for _, lang := range SupportedLanguages() {
		for _, src := range r.sources {
			dir := src.dirFor(lang)
			if dir == "" {
				continue
			}
			if fileExistsWithAnyExt(dir, slug) {
				available = append(available, lang)
				break
			}
		}
	}
	return available
}

func fileExistsWithAnyExt(dir, slug string) bool {
	for _, ext := range markupExts {
		if info, err := os.Stat(filepath.Join(dir, slug+ext)); err == nil && !info.IsDir() {
			return true
		}
	}
	return false
}

// Delete removes the default-language copies of slug from every source
// that contains one, trying both extensions. It reports whether anything
// was removed.
func (r *Resolver) Delete(slug string) (bool, error) {
	deleted := false
	for _, src := range r.sources {
		dir := src.dirFor(DefaultLanguage)
		for _, ext := range markupExts {
			path := filepath.Join(dir, slug+ext)
			err := os.Remove(path)
			if err == nil {
				deleted = true
				continue
			}
			if !os.IsNotExist(err) {
				return deleted, err
			}
		}
	}
	return deleted, nil
}
