package blogengine

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/labstack/echo/v4"
)

// Author is a post author referenced from front matter by id.
type Author struct {
	ID     string      `json:"id"`
	Name   string      `json:"name"`
	Email  string      `json:"email"`
	Bio    string      `json:"bio"`
	Avatar string      `json:"avatar,omitempty"`
	Social *SocialInfo `json:"social,omitempty"`
}

// SocialInfo holds an author's optional social links.
type SocialInfo struct {
	Twitter  string `json:"twitter,omitempty"`
	GitHub   string `json:"github,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	Website  string `json:"website,omitempty"`
}

const authorsDoc = "authors/authors.json"

type authorsDocument struct {
	Authors []Author `json:"authors"`
}

// defaultAuthors is served when the authors document does not exist yet,
// matching the "default" author id posts fall back to.
func defaultAuthors() []Author {
	return []Author{{
		ID:    "default",
		Name:  "Default Author",
		Email: "author@example.com",
		Bio:   "A passionate writer and developer.",
	}}
}

// ListAuthors returns the stored authors, or the default author when the
// document is absent.
func (s *Store) ListAuthors() ([]Author, error) {
	var doc authorsDocument
	if err := s.readDoc(authorsDoc, &doc); err != nil {
		if os.IsNotExist(err) {
			return defaultAuthors(), nil
		}
		return nil, err
	}
	if doc.Authors == nil {
		return []Author{}, nil
	}
	return doc.Authors, nil
}

// CreateAuthor appends a new author. The id is the natural key: creating
// an author whose id already exists fails with ErrConflict.
func (s *Store) CreateAuthor(a Author) error {
	if a.ID == "" || a.Name == "" {
		return fmt.Errorf("%w: author id and name are required", ErrValidation)
	}
	unlock := s.lock(authorsDoc)
	defer unlock()

	authors, err := s.ListAuthors()
	if err != nil {
		return err
	}
	for _, existing := range authors {
		if existing.ID == a.ID {
			return fmt.Errorf("%w: author %q already exists", ErrConflict, a.ID)
		}
	}
	authors = append(authors, a)
	return s.writeDoc(authorsDoc, authorsDocument{Authors: authors})
}

// UpdateAuthor replaces the author with a matching id wholesale.
func (s *Store) UpdateAuthor(a Author) error {
	if a.ID == "" {
		return fmt.Errorf("%w: author id is required", ErrValidation)
	}
	unlock := s.lock(authorsDoc)
	defer unlock()

	authors, err := s.ListAuthors()
	if err != nil {
		return err
	}
	for i, existing := range authors {
		if existing.ID == a.ID {
			authors[i] = a
			return s.writeDoc(authorsDoc, authorsDocument{Authors: authors})
		}
	}
	return fmt.Errorf("%w: author %q", ErrNotFound, a.ID)
}

// DeleteAuthor removes the author with the given id.
func (s *Store) DeleteAuthor(id string) error {
	unlock := s.lock(authorsDoc)
	defer unlock()

	authors, err := s.ListAuthors()
	if err != nil {
		return err
	}
	kept := authors[:0:0]
	for _, a := range authors {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	if len(kept) == len(authors) {
		return fmt.Errorf("%w: author %q", ErrNotFound, id)
	}
	return s.writeDoc(authorsDoc, authorsDocument{Authors: kept})
}

func (a *App) handleAuthorsList(c echo.Context) error {
	authors, err := a.Store.ListAuthors()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"authors": authors})
}

func (a *App) handleAuthorCreate(c echo.Context) error {
	if !IsAdmin(c) {
		return jsonError(c, http.StatusUnauthorized, "Unauthorized")
	}
	var author Author
	if err := c.Bind(&author); err != nil {
		return jsonError(c, http.StatusBadRequest, "Invalid request body")
	}
	author.ID = strings.TrimSpace(author.ID)
	if author.ID == "" && author.Name != "" {
		author.ID = Slugify(author.Name)
	}
	if err := a.Store.CreateAuthor(author); err != nil {
		return storeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "author": author})
}

func (a *App) handleAuthorUpdate(c echo.Context) error {
	if !IsAdmin(c) {
		return jsonError(c, http.StatusUnauthorized, "Unauthorized")
	}
	var author Author
	if err := c.Bind(&author); err != nil {
		return jsonError(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := a.Store.UpdateAuthor(author); err != nil {
		return storeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "author": author})
}

func (a *App) handleAuthorDelete(c echo.Context) error {
	if !IsAdmin(c) {
		return jsonError(c, http.StatusUnauthorized, "Unauthorized")
	}
	var req struct {
		ID string `json:"id"`
	}
	if err := c.Bind(&req); err != nil || req.ID == "" {
		return jsonError(c, http.StatusBadRequest, "Author ID is required")
	}
	if err := a.Store.DeleteAuthor(req.ID); err != nil {
		return storeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
