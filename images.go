package blogengine

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"golang.org/x/image/draw"
)

const (
	maxUploadSize   = 10 << 20 // 10MB
	maxPreviewWidth = 800
	jpegQuality     = 80
	previewsSubdir  = "previews"
)

// allowedImageTypes is the upload MIME allow-list.
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// ImageMetadata is the editable descriptive record for one uploaded image,
// stored separately from the binary file.
type ImageMetadata struct {
	DisplayName string `json:"displayName"`
	Alt         string `json:"alt"`
	Title       string `json:"title"`
	Caption     string `json:"caption"`
	UpdatedAt   string `json:"updatedAt"`
}

const imagesMetaDoc = "metadata/images-metadata.json"

type imagesMetaDocument struct {
	Images map[string]ImageMetadata `json:"images"`
}

// ImagesMetadata returns the metadata map keyed by filename; a missing
// document reads as empty.
func (s *Store) ImagesMetadata() (map[string]ImageMetadata, error) {
	var doc imagesMetaDocument
	if err := s.readDoc(imagesMetaDoc, &doc); err != nil {
		if os.IsNotExist(err) {
			return map[string]ImageMetadata{}, nil
		}
		return nil, err
	}
	if doc.Images == nil {
		doc.Images = map[string]ImageMetadata{}
	}
	return doc.Images, nil
}

// SetImageMetadata upserts the metadata record for filename, stamping
// UpdatedAt.
func (s *Store) SetImageMetadata(filename string, meta ImageMetadata) error {
	unlock := s.lock(imagesMetaDoc)
	defer unlock()

	images, err := s.ImagesMetadata()
	if err != nil {
		return err
	}
	meta.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	images[filename] = meta
	return s.writeDoc(imagesMetaDoc, imagesMetaDocument{Images: images})
}

// RemoveImageMetadata deletes the metadata record for filename, if any.
func (s *Store) RemoveImageMetadata(filename string) error {
	unlock := s.lock(imagesMetaDoc)
	defer unlock()

	images, err := s.ImagesMetadata()
	if err != nil {
		return err
	}
	if _, ok := images[filename]; !ok {
		return nil
	}
	delete(images, filename)
	return s.writeDoc(imagesMetaDoc, imagesMetaDocument{Images: images})
}

// safeImageName rejects names that could escape the uploads directory.
func safeImageName(name string) bool {
	return name != "" &&
		!strings.Contains(name, "..") &&
		!strings.ContainsAny(name, "/\\")
}

// uploadFilename builds a collision-resistant server-generated name:
// <unix-ms>-<random>.<ext>.
func uploadFilename(originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	if ext == "" {
		ext = ".jpg"
	}
	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.NewString()[:8], ext)
}

func (a *App) handleUpload(c echo.Context) error {
	if !IsAdmin(c) {
		return jsonError(c, http.StatusUnauthorized, "Unauthorized")
	}

	file, err := c.FormFile("file")
	if err != nil {
		return jsonError(c, http.StatusBadRequest, "No file uploaded")
	}
	if file.Size > maxUploadSize {
		return jsonError(c, http.StatusBadRequest, "File too large (max 10MB)")
	}
	mime := file.Header.Get(echo.HeaderContentType)
	if !allowedImageTypes[mime] {
		return jsonError(c, http.StatusBadRequest, "Invalid file type. Only images are allowed.")
	}

	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, maxUploadSize+1))
	if err != nil {
		return err
	}
	if len(data) > maxUploadSize {
		return jsonError(c, http.StatusBadRequest, "File too large (max 10MB)")
	}

	filename := uploadFilename(file.Filename)
	if err := os.MkdirAll(a.Config.UploadsDir, 0o755); err != nil {
		return fmt.Errorf("create uploads dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(a.Config.UploadsDir, filename), data, 0o644); err != nil {
		return fmt.Errorf("write image: %w", err)
	}

	// Best effort: webp and exotic encodings are stored but get no preview.
	if err := a.writePreview(filename, data); err != nil {
		c.Logger().Warnf("preview for %s skipped: %v", filename, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success":  true,
		"url":      "/blog-images/" + filename,
		"filename": filename,
	})
}

// writePreview decodes the uploaded image and stores a width-capped JPEG
// rendition next to the original.
func (a *App) writePreview(filename string, data []byte) error {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return err
	}
	bounds := img.Bounds()
	if w := bounds.Dx(); w > maxPreviewWidth {
		h := bounds.Dy() * maxPreviewWidth / w
		dst := image.NewRGBA(image.Rect(0, 0, maxPreviewWidth, h))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return err
	}
	dir := filepath.Join(a.Config.UploadsDir, previewsSubdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	base := strings.TrimSuffix(filename, filepath.Ext(filename))
	return os.WriteFile(filepath.Join(dir, base+".jpg"), buf.Bytes(), 0o644)
}

func (a *App) handleImageDelete(c echo.Context) error {
	if !IsAdmin(c) {
		return jsonError(c, http.StatusUnauthorized, "Unauthorized")
	}
	var req struct {
		ImageName string `json:"imageName"`
	}
	if err := c.Bind(&req); err != nil || req.ImageName == "" {
		return jsonError(c, http.StatusBadRequest, "Image name is required")
	}
	if !safeImageName(req.ImageName) {
		return jsonError(c, http.StatusBadRequest, "Invalid image name")
	}

	path := filepath.Join(a.Config.UploadsDir, req.ImageName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return jsonError(c, http.StatusNotFound, "Image not found")
	}
	if err := os.Remove(path); err != nil {
		return err
	}
	// Preview removal is non-critical.
	base := strings.TrimSuffix(req.ImageName, filepath.Ext(req.ImageName))
	_ = os.Remove(filepath.Join(a.Config.UploadsDir, previewsSubdir, base+".jpg"))

	if err := a.Uploads.RemoveImageMetadata(req.ImageName); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Image deleted successfully"})
}

func (a *App) handleImageMetadataGet(c echo.Context) error {
	images, err := a.Uploads.ImagesMetadata()
	if err != nil {
		return err
	}
	if name := c.QueryParam("image"); name != "" {
		return c.JSON(http.StatusOK, images[name])
	}
	return c.JSON(http.StatusOK, echo.Map{"images": images})
}

func (a *App) handleImageMetadataSave(c echo.Context) error {
	if !IsAdmin(c) {
		return jsonError(c, http.StatusUnauthorized, "Unauthorized")
	}
	var req struct {
		ImageName string        `json:"imageName"`
		Metadata  ImageMetadata `json:"metadata"`
	}
	if err := c.Bind(&req); err != nil || req.ImageName == "" {
		return jsonError(c, http.StatusBadRequest, "Image name is required")
	}
	if !safeImageName(req.ImageName) {
		return jsonError(c, http.StatusBadRequest, "Invalid image name")
	}
	if err := a.Uploads.SetImageMetadata(req.ImageName, req.Metadata); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Metadata saved successfully"})
}
