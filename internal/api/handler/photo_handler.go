package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/roastify/roast-api/internal/api/metrics"
	"github.com/roastify/roast-api/internal/core/domain"
	"github.com/roastify/roast-api/internal/core/ports"
)

// PhotoHandler handles the photo document endpoints. Photos live under a
// (userId, name) key with generated slot keys photo1, photo2, …
type PhotoHandler struct {
	photos ports.PhotoService
}

func NewPhotoHandler(photos ports.PhotoService) *PhotoHandler {
	return &PhotoHandler{photos: photos}
}

type addPhotoRequest struct {
	Image       string `json:"image" validate:"required"`
	Title       string `json:"title"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size"`
}

type addPhotoResponse struct {
	Message     string `json:"message"`
	PhotoKey    string `json:"photoKey"`
	TotalPhotos int    `json:"totalPhotos"`
}

type singlePhotoResponse struct {
	PhotoKey string `json:"photoKey"`
	domain.Photo
	UserID string `json:"userId"`
	Name   string `json:"name"`
}

// Add stores an uploaded image under the next free slot.
//
// @Summary      Upload a photo
// @Tags         photos
// @Accept       json
// @Produce      json
// @Param        userId  path      string           true  "Owning user ID"
// @Param        name    path      string           true  "Document name"
// @Param        body    body      addPhotoRequest  true  "Base64 image, optionally a data URI"
// @Success      200     {object}  addPhotoResponse
// @Failure      400     {object}  map[string]string
// @Router       /photos/{userId}/{name} [post]
func (h *PhotoHandler) Add(c echo.Context) error {
	if _, err := ctxUserID(c); err != nil {
		return err
	}

	var req addPhotoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	slotKey, total, err := h.photos.Add(c.Request().Context(), ports.AddPhotoInput{
		UserID:      c.Param("userId"),
		Name:        c.Param("name"),
		Image:       req.Image,
		Title:       req.Title,
		ContentType: req.ContentType,
		Size:        req.Size,
	})
	if err != nil {
		return err
	}

	metrics.PhotosUploadedTotal.Inc()
	return c.JSON(http.StatusOK, addPhotoResponse{
		Message:     "Photo saved successfully as " + slotKey,
		PhotoKey:    slotKey,
		TotalPhotos: total,
	})
}

// Get returns either one slot (?photo=photoN) or the whole document.
//
// @Summary      Get photos
// @Tags         photos
// @Produce      json
// @Param        userId  path      string  true   "Owning user ID"
// @Param        name    path      string  true   "Document name"
// @Param        photo   query     string  false  "Specific slot key"
// @Success      200     {object}  domain.PhotoDocument
// @Failure      404     {object}  map[string]string
// @Router       /photos/{userId}/{name} [get]
func (h *PhotoHandler) Get(c echo.Context) error {
	userID := c.Param("userId")
	name := c.Param("name")

	if slotKey := c.QueryParam("photo"); slotKey != "" {
		photo, err := h.photos.GetOne(c.Request().Context(), userID, name, slotKey)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, singlePhotoResponse{
			PhotoKey: slotKey,
			Photo:    *photo,
			UserID:   userID,
			Name:     name,
		})
	}

	doc, err := h.photos.Get(c.Request().Context(), userID, name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, doc)
}

// Delete removes one slot from the document. The photo query parameter is
// required.
//
// @Summary      Delete a photo
// @Tags         photos
// @Produce      json
// @Param        userId  path      string  true  "Owning user ID"
// @Param        name    path      string  true  "Document name"
// @Param        photo   query     string  true  "Slot key to delete"
// @Success      200     {object}  map[string]string
// @Failure      400     {object}  map[string]string
// @Router       /photos/{userId}/{name} [delete]
func (h *PhotoHandler) Delete(c echo.Context) error {
	if _, err := ctxUserID(c); err != nil {
		return err
	}

	slotKey := c.QueryParam("photo")
	if slotKey == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "photo key required")
	}

	if err := h.photos.Delete(c.Request().Context(), c.Param("userId"), c.Param("name"), slotKey); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": slotKey + " deleted successfully"})
}
