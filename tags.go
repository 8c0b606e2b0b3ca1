package blogengine

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/calendhub/blogengine/content"
)

// Tag is a post tag reference record. Posts reference tags by display name
// in their front matter, not by id.
type Tag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

const tagsDoc = "tags/tags.json"

type tagsDocument struct {
	Tags []Tag `json:"tags"`
}

// ListTags returns all stored tags; a missing document reads as the
// empty list.
func (s *Store) ListTags() ([]Tag, error) {
	var doc tagsDocument
	if err := s.readDoc(tagsDoc, &doc); err != nil {
		if os.IsNotExist(err) {
			return []Tag{}, nil
		}
		return nil, err
	}
	if doc.Tags == nil {
		return []Tag{}, nil
	}
	return doc.Tags, nil
}

// CreateTag adds a tag. The case-insensitive name is the natural key; the
// id is generated and the slug normalized from the name.
func (s *Store) CreateTag(name string) (Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Tag{}, fmt.Errorf("%w: tag name is required", ErrValidation)
	}
	unlock := s.lock(tagsDoc)
	defer unlock()

	tags, err := s.ListTags()
	if err != nil {
		return Tag{}, err
	}
	for _, existing := range tags {
		if strings.EqualFold(existing.Name, name) {
			return Tag{}, fmt.Errorf("%w: tag %q already exists", ErrConflict, name)
		}
	}
	tag := Tag{
		ID:   fmt.Sprintf("tag-%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8]),
		Name: name,
		Slug: NormalizeTagName(name),
	}
	tags = append(tags, tag)
	if err := s.writeDoc(tagsDoc, tagsDocument{Tags: tags}); err != nil {
		return Tag{}, err
	}
	return tag, nil
}

// DeleteTag removes the tag with the given id. usageCount reports how many
// posts reference a tag name; a referenced tag fails with ErrConflict and
// the store is left unchanged.
func (s *Store) DeleteTag(id string, usageCount func(name string) (int, error)) error {
	unlock := s.lock(tagsDoc)
	defer unlock()

	tags, err := s.ListTags()
	if err != nil {
		return err
	}
	idx := -1
	for i, t := range tags {
		if t.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: tag %q", ErrNotFound, id)
	}
	if usageCount != nil {
		n, err := usageCount(tags[idx].Name)
		if err != nil {
			return err
		}
		if n > 0 {
			return fmt.Errorf("%w: tag %q is used in %d post(s)", ErrConflict, tags[idx].Name, n)
		}
	}
	tags = append(tags[:idx], tags[idx+1:]...)
	return s.writeDoc(tagsDoc, tagsDocument{Tags: tags})
}

// tagUsageCount scans every language's posts for front-matter references
// to the tag name.
func (a *App) tagUsageCount(name string) (int, error) {
	count := 0
	for _, lang := range content.SupportedLanguages() {
		posts, err := a.Resolver.All(lang)
		if err != nil {
			return 0, err
		}
		for _, p := range posts {
			for _, t := range p.Data.Tags {
				if t == name {
					count++
					break
				}
			}
		}
	}
	return count, nil
}

func (a *App) handleTagsList(c echo.Context) error {
	tags, err := a.Store.ListTags()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"tags": tags})
}

func (a *App) handleTagCreate(c echo.Context) error {
	if !IsAdmin(c) {
		return jsonError(c, http.StatusUnauthorized, "Unauthorized")
	}
	var req struct {
		Name string `json:"name"`
	}
	if err := c.Bind(&req); err != nil || req.Name == "" {
		return jsonError(c, http.StatusBadRequest, "Tag name is required")
	}
	tag, err := a.Store.CreateTag(req.Name)
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Tag created successfully", "tag": tag})
}

func (a *App) handleTagDelete(c echo.Context) error {
	if !IsAdmin(c) {
		return jsonError(c, http.StatusUnauthorized, "Unauthorized")
	}
	var req struct {
		ID string `json:"id"`
	}
	if err := c.Bind(&req); err != nil || req.ID == "" {
		return jsonError(c, http.StatusBadRequest, "Tag ID is required")
	}
	if err := a.Store.DeleteTag(req.ID, a.tagUsageCount); err != nil {
		return storeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Tag deleted successfully"})
}
