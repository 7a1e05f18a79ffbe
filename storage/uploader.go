package storage

import (
	"context"
	"fmt"
	"io"
)

type UploadResult struct {
	Key      string
	Location string
	ETag     string
}

type FileUploader interface {
	Upload(ctx context.Context, key string, contentType string, reader io.Reader) (*UploadResult, error)

	Delete(ctx context.Context, key string) error

	GetPublicURL(key string) string
}

// PlayoffSnapshotKey is the object key of a division's published playoff view.
func PlayoffSnapshotKey(seasonID, divisionID int) string {
	return fmt.Sprintf("seasons/%d/divisions/%d/playoffs.json", seasonID, divisionID)
}
