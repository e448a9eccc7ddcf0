package domain

import "time"

// Photo is a single stored image inside a photo document.
type Photo struct {
	ImageData   string    `json:"imageData" bson:"imageData"`
	ContentType string    `json:"contentType" bson:"contentType"`
	Title       string    `json:"title" bson:"title"`
	Size        int64     `json:"size,omitempty" bson:"size,omitempty"`
	UploadDate  time.Time `json:"uploadDate" bson:"uploadDate"`
}

// PhotoDocument groups all photos stored under one (userId, name) key.
// Slot keys are "photo1", "photo2", … assigned from an atomic per-document
// sequence, so concurrent uploads never collide on a slot.
type PhotoDocument struct {
	UserID      string           `json:"userId"`
	Name        string           `json:"name"`
	Photos      map[string]Photo `json:"photos"`
	TotalPhotos int              `json:"totalPhotos"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}
