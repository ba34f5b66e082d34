package utils

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"souq/apperr"

	"github.com/google/uuid"
)

// ImageManager persists uploaded images under a storage root. Each
// logical area ("categories", "products") is a subdirectory of the root.
//
// File writes are not coordinated with database transactions: a crash
// between storing a file and committing the owning row can leave an
// orphaned file. The database row is the source of truth for existence.
type ImageManager struct {
	root string
}

func NewImageManager(root string) *ImageManager {
	return &ImageManager{root: root}
}

// GenerateName produces a storage key of the form
// Image_<uuid>_<unixTimestamp>.<ext>, keeping the upload's extension.
// Uniqueness comes from the uuid plus timestamp; no lookup is done.
func (m *ImageManager) GenerateName(originalName string) string {
	ext := strings.TrimPrefix(filepath.Ext(originalName), ".")
	return fmt.Sprintf("Image_%s_%d.%s", uuid.New().String(), time.Now().Unix(), ext)
}

// Store writes the uploaded file under area/dir/name.
func (m *ImageManager) Store(file *multipart.FileHeader, dir, name, area string) error {
	target := filepath.Join(m.root, area, dir, name)
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return &apperr.StorageError{Op: "store", Key: name, Err: err}
	}

	src, err := file.Open()
	if err != nil {
		return &apperr.StorageError{Op: "store", Key: name, Err: err}
	}
	defer src.Close()

	dst, err := os.Create(target)
	if err != nil {
		return &apperr.StorageError{Op: "store", Key: name, Err: err}
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return &apperr.StorageError{Op: "store", Key: name, Err: err}
	}
	return nil
}

// UploadSingle stores the file in the area root and returns the
// generated storage key for the caller to persist.
func (m *ImageManager) UploadSingle(file *multipart.FileHeader, area string) (string, error) {
	name := m.GenerateName(file.Filename)
	if err := m.Store(file, "", name, area); err != nil {
		return "", err
	}
	return name, nil
}

// UploadMultiple stores every file and returns the keys in upload order.
func (m *ImageManager) UploadMultiple(files []*multipart.FileHeader, area string) ([]string, error) {
	keys := make([]string, 0, len(files))
	for _, file := range files {
		key, err := m.UploadSingle(file, area)
		if err != nil {
			return keys, err
		}
		keys = append(keys, key)
	}
	return keys, nil
}

// Delete removes the file for the given key. Deleting a key that does
// not exist is a no-op.
func (m *ImageManager) Delete(name, area string) error {
	target := filepath.Join(m.root, area, name)
	if _, err := os.Stat(target); os.IsNotExist(err) {
		return nil
	}
	if err := os.Remove(target); err != nil {
		return &apperr.StorageError{Op: "delete", Key: name, Err: err}
	}
	return nil
}

// Path returns the on-disk location for a stored key.
func (m *ImageManager) Path(name, area string) string {
	return filepath.Join(m.root, area, name)
}
