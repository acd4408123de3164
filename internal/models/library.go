package models

import "time"

// UploadKind classifies an upload for MIME validation and storage placement.
type UploadKind string

const (
	UploadKindAudio    UploadKind = "audio"
	UploadKindVideo    UploadKind = "video"
	UploadKindImage    UploadKind = "image"
	UploadKindDocument UploadKind = "document"
)

// ValidUploadKind reports whether the provided kind is a known upload kind.
func ValidUploadKind(kind UploadKind) bool {
	switch kind {
	case UploadKindAudio, UploadKindVideo, UploadKindImage, UploadKindDocument:
		return true
	default:
		return false
	}
}

// LibraryItem records metadata for one stored upload.
type LibraryItem struct {
	ID         string     `db:"id" json:"id"`
	Title      string     `db:"title" json:"title"`
	Kind       UploadKind `db:"kind" json:"kind"`
	FileName   string     `db:"file_name" json:"file_name"`
	ObjectName string     `db:"object_name" json:"-"`
	PublicURL  string     `db:"public_url" json:"public_url"`
	MimeType   string     `db:"mime_type" json:"mime_type"`
	SizeBytes  int64      `db:"size_bytes" json:"size_bytes"`
	UploadedBy string     `db:"uploaded_by" json:"uploaded_by"`
	CreatedAt  time.Time  `db:"created_at" json:"created_at"`
}

// LibraryFilter captures listing criteria for library items.
type LibraryFilter struct {
	Kind     UploadKind
	Search   string
	Page     int
	PageSize int
}
