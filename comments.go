package blogengine

import (
	"database/sql"
	"fmt"
	"net/http"
	"net/mail"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	_ "modernc.org/sqlite"
)

// Comment is one visitor-submitted comment. Every submission lands as
// status "pending"; moderation happens out of band.
type Comment struct {
	ID        string    `json:"id"`
	PostSlug  string    `json:"postSlug"`
	Author    string    `json:"author"`
	Email     string    `json:"email"`
	Content   string    `json:"content"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// CommentStore persists comments in SQLite.
type CommentStore struct {
	db *sql.DB
}

// NewCommentStore opens (or creates) the comments database at path,
// ensures the data directory exists, and bootstraps the schema.
func NewCommentStore(path string) (*CommentStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// WAL plus a busy timeout keeps concurrent submissions from failing
	// with SQLITE_BUSY; synchronous=NORMAL is safe under WAL.
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
	`); err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	s := &CommentStore{db: db}
	if err := s.ensureSchema(); err != nil {
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *CommentStore) Close() error {
	return s.db.Close()
}

func (s *CommentStore) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS comments (
    id TEXT PRIMARY KEY,
    post_slug TEXT NOT NULL,
    author TEXT NOT NULL,
    email TEXT NOT NULL,
    content TEXT NOT NULL,
    status TEXT NOT NULL DEFAULT 'pending',
    created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_comments_post_slug ON comments(post_slug);
`)
	return err
}

// Save inserts a comment.
func (s *CommentStore) Save(c Comment) error {
	_, err := s.db.Exec(
		`INSERT INTO comments (id, post_slug, author, email, content, status, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.PostSlug, c.Author, c.Email, c.Content, c.Status, c.CreatedAt.UTC().Format(time.RFC3339),
	)
	return err
}

// ListByPost returns every comment for a post, oldest first.
func (s *CommentStore) ListByPost(slug string) ([]Comment, error) {
	rows, err := s.db.Query(
		`SELECT id, post_slug, author, email, content, status, created_at FROM comments WHERE post_slug = ? ORDER BY created_at`,
		slug,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []Comment
	for rows.Next() {
		var c Comment
		var createdAt string
		if err := rows.Scan(&c.ID, &c.PostSlug, &c.Author, &c.Email, &c.Content, &c.Status, &createdAt); err != nil {
			return nil, err
		}
		c.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

// commentRequest is the submission payload. Website is a honeypot: real
// visitors never fill it, bots do.
type commentRequest struct {
	PostSlug string `json:"postSlug"`
	Author   string `json:"author"`
	Email    string `json:"email"`
	Content  string `json:"content"`
	Website  string `json:"website"`
}

func (r commentRequest) validate() error {
	if r.PostSlug == "" {
		return fmt.Errorf("%w: postSlug is required", ErrValidation)
	}
	author := strings.TrimSpace(r.Author)
	if author == "" || len(author) > 100 {
		return fmt.Errorf("%w: author must be 1-100 characters", ErrValidation)
	}
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return fmt.Errorf("%w: invalid email address", ErrValidation)
	}
	if r.Content == "" || len(r.Content) > 1000 {
		return fmt.Errorf("%w: content must be 1-1000 characters", ErrValidation)
	}
	return nil
}

func (a *App) handleCommentsList(c echo.Context) error {
	slug := c.QueryParam("post")
	if slug == "" {
		return jsonError(c, http.StatusBadRequest, "post query parameter is required")
	}
	comments, err := a.Comments.ListByPost(slug)
	if err != nil {
		return err
	}
	// Only approved comments are public.
	approved := make([]Comment, 0, len(comments))
	for _, cm := range comments {
		if cm.Status == "approved" {
			approved = append(approved, cm)
		}
	}
	return c.JSON(http.StatusOK, approved)
}

func (a *App) handleCommentSubmit(c echo.Context) error {
	var req commentRequest
	if err := c.Bind(&req); err != nil {
		return jsonError(c, http.StatusBadRequest, "Invalid data")
	}
	if err := req.validate(); err != nil {
		return jsonError(c, http.StatusBadRequest, err.Error())
	}
	if req.Website != "" {
		return jsonError(c, http.StatusBadRequest, "Spam detected")
	}

	comment := Comment{
		ID:        fmt.Sprintf("comment-%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8]),
		PostSlug:  req.PostSlug,
		Author:    strings.TrimSpace(req.Author),
		Email:     req.Email,
		Content:   req.Content,
		Status:    "pending",
		CreatedAt: time.Now(),
	}
	if err := a.Comments.Save(comment); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Comment submitted for moderation",
		"id":      comment.ID,
	})
}
