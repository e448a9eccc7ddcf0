package service

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/roastify/roast-api/internal/core/domain"
	"github.com/roastify/roast-api/internal/core/ports"
)

var (
	dataURIPrefix      = regexp.MustCompile(`^data:image/[a-z]+;base64,`)
	dataURIContentType = regexp.MustCompile(`^data:image/([a-zA-Z0-9+]+);`)
)

// PhotoService implements photo uploads over a PhotoRepository.
type PhotoService struct {
	repo ports.PhotoRepository
}

func NewPhotoService(repo ports.PhotoRepository) *PhotoService {
	return &PhotoService{repo: repo}
}

// Add strips a data-URI prefix from the image payload, detects the content
// type from the prefix when present, and stores the photo under the next
// slot key.
func (s *PhotoService) Add(ctx context.Context, input ports.AddPhotoInput) (string, int, error) {
	if input.Image == "" {
		return "", 0, fmt.Errorf("%w: image data is required", domain.ErrValidation)
	}

	contentType := input.ContentType
	if m := dataURIContentType.FindStringSubmatch(input.Image); m != nil {
		contentType = m[1]
	}
	if contentType == "" {
		contentType = "jpeg"
	}

	title := input.Title
	if title == "" {
		title = fmt.Sprintf("Photo %d", time.Now().UnixMilli())
	}

	photo := domain.Photo{
		ImageData:   dataURIPrefix.ReplaceAllString(input.Image, ""),
		ContentType: contentType,
		Title:       title,
		Size:        input.Size,
		UploadDate:  time.Now().UTC(),
	}

	return s.repo.Add(ctx, input.UserID, input.Name, photo)
}

// Get returns the whole photo document for (userID, name).
func (s *PhotoService) Get(ctx context.Context, userID, name string) (*domain.PhotoDocument, error) {
	return s.repo.Get(ctx, userID, name)
}

// GetOne returns a single slot, or domain.ErrPhotosNotFound when either the
// document or the slot is missing.
func (s *PhotoService) GetOne(ctx context.Context, userID, name, slotKey string) (*domain.Photo, error) {
	doc, err := s.repo.Get(ctx, userID, name)
	if err != nil {
		return nil, err
	}
	photo, ok := doc.Photos[slotKey]
	if !ok {
		return nil, domain.ErrPhotosNotFound
	}
	return &photo, nil
}

// Delete removes one slot. The slot key is required.
func (s *PhotoService) Delete(ctx context.Context, userID, name, slotKey string) error {
	if slotKey == "" {
		return fmt.Errorf("%w: photo key required", domain.ErrValidation)
	}
	return s.repo.DeleteSlot(ctx, userID, name, slotKey)
}
