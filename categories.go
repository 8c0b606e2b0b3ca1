package blogengine

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/labstack/echo/v4"
)

// Category is a post category reference record.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

const categoriesDoc = "categories/categories.json"

type categoriesDocument struct {
	Categories []Category `json:"categories"`
}

// ListCategories returns all stored categories; a missing document reads
// as the empty list.
func (s *Store) ListCategories() ([]Category, error) {
	var doc categoriesDocument
	if err := s.readDoc(categoriesDoc, &doc); err != nil {
		if os.IsNotExist(err) {
			return []Category{}, nil
		}
		return nil, err
	}
	if doc.Categories == nil {
		return []Category{}, nil
	}
	return doc.Categories, nil
}

// CreateCategory adds a category. The case-insensitive name is the natural
// key; a duplicate fails with ErrConflict. The slug (and id) are derived
// from the name.
func (s *Store) CreateCategory(name string) (Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Category{}, fmt.Errorf("%w: category name is required", ErrValidation)
	}
	unlock := s.lock(categoriesDoc)
	defer unlock()

	categories, err := s.ListCategories()
	if err != nil {
		return Category{}, err
	}
	for _, existing := range categories {
		if strings.EqualFold(existing.Name, name) {
			return Category{}, fmt.Errorf("%w: category %q already exists", ErrConflict, name)
		}
	}
	slug := Slugify(name)
	cat := Category{ID: slug, Name: name, Slug: slug}
	categories = append(categories, cat)
	if err := s.writeDoc(categoriesDoc, categoriesDocument{Categories: categories}); err != nil {
		return Category{}, err
	}
	return cat, nil
}

// DeleteCategory removes the category with the given id. Posts referencing
// the category keep their front-matter value; deletion does not cascade.
func (s *Store) DeleteCategory(id string) error {
	unlock := s.lock(categoriesDoc)
	defer unlock()

	categories, err := s.ListCategories()
	if err != nil {
		return err
	}
	kept := categories[:0:0]
	for _, cat := range categories {
		if cat.ID != id {
			kept = append(kept, cat)
		}
	}
	if len(kept) == len(categories) {
		return fmt.Errorf("%w: category %q", ErrNotFound, id)
	}
	return s.writeDoc(categoriesDoc, categoriesDocument{Categories: kept})
}

func (a *App) handleCategoriesList(c echo.Context) error {
	categories, err := a.Store.ListCategories()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"categories": categories})
}

func (a *App) handleCategoryCreate(c echo.Context) error {
	if !IsAdmin(c) {
		return jsonError(c, http.StatusUnauthorized, "Unauthorized")
	}
	var req struct {
		Name string `json:"name"`
	}
	if err := c.Bind(&req); err != nil || req.Name == "" {
		return jsonError(c, http.StatusBadRequest, "Category name is required")
	}
	cat, err := a.Store.CreateCategory(req.Name)
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"success": true, "category": cat})
}

func (a *App) handleCategoryDelete(c echo.Context) error {
	if !IsAdmin(c) {
		return jsonError(c, http.StatusUnauthorized, "Unauthorized")
	}
	var req struct {
		ID string `json:"id"`
	}
	if err := c.Bind(&req); err != nil || req.ID == "" {
		return jsonError(c, http.StatusBadRequest, "Category ID is required")
	}
	if err := a.Store.DeleteCategory(req.ID); err != nil {
		return storeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
