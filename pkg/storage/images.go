// Package storage keeps uploaded listing images on the local filesystem.
package storage

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ErrTooLarge is returned when an upload exceeds the configured size
var ErrTooLarge = errors.New("file too large")

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// ErrUnsupportedType is returned for files that are not images
var ErrUnsupportedType = errors.New("unsupported image type")

// ImageStore writes images to Dir and serves them under URLPrefix
type ImageStore struct {
	dir       string
	urlPrefix string
	maxBytes  int64
}

// NewImageStore creates dir when needed
func NewImageStore(dir, urlPrefix string, maxBytes int64) (*ImageStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("upload directory cannot be empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory '%s': %w", dir, err)
	}
	return &ImageStore{
		dir:       dir,
		urlPrefix: "/" + strings.Trim(urlPrefix, "/"),
		maxBytes:  maxBytes,
	}, nil
}

// Dir is the directory images are written to
func (s *ImageStore) Dir() string {
	return s.dir
}

// Save stores the upload under a generated name and returns its public path
func (s *ImageStore) Save(fh *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedExtensions[ext] {
		return "", fmt.Errorf("%s: %w", fh.Filename, ErrUnsupportedType)
	}
	if s.maxBytes > 0 && fh.Size > s.maxBytes {
		return "", fmt.Errorf("%s: %w", fh.Filename, ErrTooLarge)
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload '%s': %w", fh.Filename, err)
	}
	defer src.Close()

	name := uuid.NewString() + ext
	if err := writeFile(filepath.Join(s.dir, name), src); err != nil {
		return "", err
	}
	return path.Join(s.urlPrefix, name), nil
}

// writeFile creates filename from src. A failed write leaves no file behind.
func writeFile(filename string, src io.Reader) error {
	dst, err := os.OpenFile(filename, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create image file: %w", err)
	}

	_, err = io.Copy(dst, src)
	if closeErr := dst.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(filename)
		return fmt.Errorf("failed to write image file: %w", err)
	}
	return nil
}

// SaveAll stores every upload, removing the ones already written if one fails
func (s *ImageStore) SaveAll(files []*multipart.FileHeader) ([]string, error) {
	paths := make([]string, 0, len(files))
	for _, fh := range files {
		p, err := s.Save(fh)
		if err != nil {
			s.RemoveAll(paths)
			return nil, err
		}
		paths = append(paths, p)
	}
	return paths, nil
}

// Remove deletes a stored image by its public path. Paths outside the store are ignored.
func (s *ImageStore) Remove(publicPath string) error {
	name := strings.TrimPrefix(publicPath, s.urlPrefix+"/")
	if name == publicPath || name == "" || strings.ContainsAny(name, `/\`) {
		return nil
	}
	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// RemoveAll deletes stored images, ignoring failures
func (s *ImageStore) RemoveAll(publicPaths []string) {
	for _, p := range publicPaths {
		_ = s.Remove(p)
	}
}
