package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalStorage persists uploaded media on disk under a base directory.
type LocalStorage struct {
	baseDir       string
	publicBaseURL string
}

// NewLocalStorage ensures the base directory exists and returns a handle.
func NewLocalStorage(baseDir, publicBaseURL string) (*LocalStorage, error) {
	if baseDir == "" {
		baseDir = "./uploads"
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads directory: %w", err)
	}
	return &LocalStorage{baseDir: baseDir, publicBaseURL: strings.TrimRight(publicBaseURL, "/")}, nil
}

// SaveStream copies from reader into the target object path.
func (s *LocalStorage) SaveStream(objectName string, r io.Reader) (string, error) {
	path := s.resolve(objectName)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("prepare upload directory: %w", err)
	}
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer file.Close() //nolint:errcheck
	if _, err := io.Copy(file, r); err != nil {
		return "", fmt.Errorf("write upload stream: %w", err)
	}
	return objectName, nil
}

// Open returns a read-only handle for the stored object.
func (s *LocalStorage) Open(objectName string) (io.ReadSeekCloser, error) {
	path := s.resolve(objectName)
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open upload file: %w", err)
	}
	return file, nil
}

// Delete removes a stored object if present.
func (s *LocalStorage) Delete(objectName string) error {
	path := s.resolve(objectName)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete upload file: %w", err)
	}
	return nil
}

// PublicURL returns the externally reachable URL for a stored object.
func (s *LocalStorage) PublicURL(objectName string) string {
	if s.publicBaseURL == "" {
		return objectName
	}
	return s.publicBaseURL + "/" + strings.TrimLeft(filepath.ToSlash(objectName), "/")
}

func (s *LocalStorage) resolve(objectName string) string {
	if filepath.IsAbs(objectName) {
		return objectName
	}
	return filepath.Join(s.baseDir, objectName)
}
