package blogengine

import (
	"errors"
	"testing"
)

func TestAuthorCRUD(t *testing.T) {
	s := NewStore(t.TempDir())

	authors, err := s.ListAuthors()
	if err != nil {
		t.Fatalf("ListAuthors failed: %v", err)
	}
	if len(authors) == 0 {
		t.Fatal("expected seeded default author")
	}
	if authors[0].ID != "default" {
		t.Errorf("seed author id = %q, want default", authors[0].ID)
	}

	jane := Author{ID: "jane-doe", Name: "Jane Doe", Bio: "Writes things."}
	if err := s.CreateAuthor(jane); err != nil {
		t.Fatalf("CreateAuthor failed: %v", err)
	}
	if err := s.CreateAuthor(jane); !errors.Is(err, ErrConflict) {
		t.Errorf("duplicate CreateAuthor = %v, want ErrConflict", err)
	}

	jane.Bio = "Updated bio."
	if err := s.UpdateAuthor(jane); err != nil {
		t.Fatalf("UpdateAuthor failed: %v", err)
	}
	authors, err = s.ListAuthors()
	if err != nil {
		t.Fatalf("ListAuthors failed: %v", err)
	}
	found := false
	for _, a := range authors {
		if a.ID == "jane-doe" {
			found = true
			if a.Bio != "Updated bio." {
				t.Errorf("Bio = %q after update", a.Bio)
			}
		}
	}
	if !found {
		t.Fatal("jane-doe missing after update")
	}

	if err := s.UpdateAuthor(Author{ID: "ghost"}); !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdateAuthor(ghost) = %v, want ErrNotFound", err)
	}
	if err := s.DeleteAuthor("jane-doe"); err != nil {
		t.Fatalf("DeleteAuthor failed: %v", err)
	}
	if err := s.DeleteAuthor("jane-doe"); !errors.Is(err, ErrNotFound) {
		t.Errorf("second DeleteAuthor = %v, want ErrNotFound", err)
	}
}

func TestCategoryConflictIsCaseInsensitive(t *testing.T) {
	s := NewStore(t.TempDir())

	cat, err := s.CreateCategory("Web Development")
	if err != nil {
		t.Fatalf("CreateCategory failed: %v", err)
	}
	if cat.ID != "web-development" || cat.Slug != "web-development" {
		t.Errorf("derived id/slug = %q/%q", cat.ID, cat.Slug)
	}

	if _, err := s.CreateCategory("web development"); !errors.Is(err, ErrConflict) {
		t.Errorf("case-variant CreateCategory = %v, want ErrConflict", err)
	}
	if _, err := s.CreateCategory("  "); !errors.Is(err, ErrValidation) {
		t.Errorf("blank CreateCategory = %v, want ErrValidation", err)
	}

	if err := s.DeleteCategory("web-development"); err != nil {
		t.Fatalf("DeleteCategory failed: %v", err)
	}
	if err := s.DeleteCategory("web-development"); !errors.Is(err, ErrNotFound) {
		t.Errorf("second DeleteCategory = %v, want ErrNotFound", err)
	}
}

func TestTagLifecycle(t *testing.T) {
	s := NewStore(t.TempDir())

	tag, err := s.CreateTag("Cloud Native")
	if err != nil {
		t.Fatalf("CreateTag failed: %v", err)
	}
	if tag.Slug != "cloud-native" {
		t.Errorf("Slug = %q, want cloud-native", tag.Slug)
	}
	if _, err := s.CreateTag("cloud native"); !errors.Is(err, ErrConflict) {
		t.Errorf("case-variant CreateTag = %v, want ErrConflict", err)
	}

	inUse := func(name string) (int, error) { return 3, nil }
	if err := s.DeleteTag(tag.ID, inUse); !errors.Is(err, ErrConflict) {
		t.Errorf("DeleteTag while referenced = %v, want ErrConflict", err)
	}
	tags, err := s.ListTags()
	if err != nil {
		t.Fatalf("ListTags failed: %v", err)
	}
	if len(tags) != 1 {
		t.Fatalf("blocked delete must leave the store unchanged, got %d tags", len(tags))
	}

	unused := func(name string) (int, error) { return 0, nil }
	if err := s.DeleteTag(tag.ID, unused); err != nil {
		t.Fatalf("DeleteTag failed: %v", err)
	}
	if err := s.DeleteTag(tag.ID, unused); !errors.Is(err, ErrNotFound) {
		t.Errorf("second DeleteTag = %v, want ErrNotFound", err)
	}
}

func TestSiteConfigDefaultsAndRoundTrip(t *testing.T) {
	s := NewStore(t.TempDir())

	cfg, err := s.SiteConfig()
	if err != nil {
		t.Fatalf("SiteConfig failed: %v", err)
	}
	if cfg.Title != "Blog" || cfg.URL != "http://localhost:3000" || cfg.Locale != "en" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}

	cfg.Title = "CalendHub"
	cfg.Social.Twitter = "@calendhub"
	if err := s.SaveSiteConfig(cfg); err != nil {
		t.Fatalf("SaveSiteConfig failed: %v", err)
	}
	got, err := s.SiteConfig()
	if err != nil {
		t.Fatalf("SiteConfig reload failed: %v", err)
	}
	if got.Title != "CalendHub" || got.Social.Twitter != "@calendhub" {
		t.Errorf("reload = %+v", got)
	}
}

func TestSEOSettingsDefaults(t *testing.T) {
	s := NewStore(t.TempDir())

	seo, err := s.SEOSettings()
	if err != nil {
		t.Fatalf("SEOSettings failed: %v", err)
	}
	if !seo.Sitemap.Enabled || seo.Sitemap.Priority != 0.5 || seo.Sitemap.ChangeFreq != "weekly" {
		t.Errorf("unexpected sitemap defaults: %+v", seo.Sitemap)
	}
	if !seo.Schema.Enabled {
		t.Error("schema emission should default on")
	}
}

func TestImageMetadataDocument(t *testing.T) {
	s := NewStore(t.TempDir())

	if err := s.SetImageMetadata("photo.jpg", ImageMetadata{Alt: "A photo"}); err != nil {
		t.Fatalf("SetImageMetadata failed: %v", err)
	}
	meta, err := s.ImagesMetadata()
	if err != nil {
		t.Fatalf("ImagesMetadata failed: %v", err)
	}
	entry, ok := meta["photo.jpg"]
	if !ok {
		t.Fatal("photo.jpg missing from metadata document")
	}
	if entry.Alt != "A photo" {
		t.Errorf("Alt = %q", entry.Alt)
	}
	if entry.UpdatedAt == "" {
		t.Error("UpdatedAt should be stamped on save")
	}

	if err := s.RemoveImageMetadata("photo.jpg"); err != nil {
		t.Fatalf("RemoveImageMetadata failed: %v", err)
	}
	meta, err = s.ImagesMetadata()
	if err != nil {
		t.Fatalf("ImagesMetadata reload failed: %v", err)
	}
	if _, ok := meta["photo.jpg"]; ok {
		t.Error("photo.jpg should be gone")
	}
}
