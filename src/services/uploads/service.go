package uploads

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Uploaded form images live under the uploads dir and are served statically
// at /uploads/forms/<name>. The name is opaque so filenames never collide.

const dir = "./uploads/forms/"

var allowedExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

var ErrUnsupportedImage = errors.New("unsupported image type")

// NewImageName builds a unique storage name for an uploaded file, keeping
// only the original extension.
func NewImageName(originalName string) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	if !allowedExts[ext] {
		return "", ErrUnsupportedImage
	}
	return uuid.NewString() + ext, nil
}

// FilePath returns where the named image is stored on disk.
func FilePath(name string) string {
	return filepath.Join(dir, filepath.Base(name))
}

// ImageURL is the public URL handed back to the editor as the upload
// completion payload.
func ImageURL(name string) string {
	return "/uploads/forms/" + filepath.Base(name)
}

// NameFromURL recovers the storage name from a public image URL. Returns ""
// for URLs that are not ours.
func NameFromURL(url string) string {
	const prefix = "/uploads/forms/"
	if !strings.HasPrefix(url, prefix) {
		return ""
	}
	return filepath.Base(strings.TrimPrefix(url, prefix))
}

// EnsureDir creates the upload directory if it does not exist.
func EnsureDir() error {
	return os.MkdirAll(dir, 0755)
}

// RemoveImage deletes a stored image. A file that is already gone is fine.
func RemoveImage(name string) error {
	if name == "" {
		return nil
	}
	err := os.Remove(FilePath(name))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove uploaded file %s: %w", name, err)
	}
	return nil
}
