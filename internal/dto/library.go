package dto

import (
	"time"

	"github.com/noah-isme/lms-content-api/internal/models"
)

// UploadResponse describes a stored upload and its public URL.
type UploadResponse struct {
	Item models.LibraryItem `json:"item"`
	URL  string             `json:"url"`
}

// LibraryDownloadResponse enriches item metadata with a signed download URL.
type LibraryDownloadResponse struct {
	models.LibraryItem
	DownloadURL string    `json:"downloadUrl"`
	ExpiresAt   time.Time `json:"expiresAt"`
}
