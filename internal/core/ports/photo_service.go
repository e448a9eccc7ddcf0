package ports

import (
	"context"

	"github.com/roastify/roast-api/internal/core/domain"
)

// AddPhotoInput carries one uploaded image. Image may be a raw base64 string
// or a full data URI; the service strips the prefix and detects the content
// type from it when present.
type AddPhotoInput struct {
	UserID      string
	Name        string
	Image       string
	Title       string
	ContentType string
	Size        int64
}

// PhotoService implements photo document operations.
type PhotoService interface {
	Add(ctx context.Context, input AddPhotoInput) (slotKey string, total int, err error)
	Get(ctx context.Context, userID, name string) (*domain.PhotoDocument, error)
	GetOne(ctx context.Context, userID, name, slotKey string) (*domain.Photo, error)
	Delete(ctx context.Context, userID, name, slotKey string) error
}
