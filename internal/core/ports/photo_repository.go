package ports

import (
	"context"

	"github.com/roastify/roast-api/internal/core/domain"
)

// PhotoRepository defines persistence for per-(userId, name) photo documents.
type PhotoRepository interface {
	// Add stores photo under the next free slot key and returns the assigned
	// key ("photo1", "photo2", …) plus the document's new photo count. Slot
	// assignment must be atomic so concurrent uploads never share a key.
	Add(ctx context.Context, userID, name string, photo domain.Photo) (slotKey string, total int, err error)

	// Get returns the full document or domain.ErrPhotosNotFound.
	Get(ctx context.Context, userID, name string) (*domain.PhotoDocument, error)

	// DeleteSlot removes one slot from the document.
	DeleteSlot(ctx context.Context, userID, name, slotKey string) error
}
