package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/urban-report-service/internal/api/dto"
	"github.com/spec-kit/urban-report-service/internal/config"
	"github.com/spec-kit/urban-report-service/internal/storage"
	apperrors "github.com/spec-kit/urban-report-service/pkg/util"
)

// UploadsHandler stores report images in the blob store and hands the
// resulting URL back to the client.
type UploadsHandler struct {
	blobs    storage.BlobStore
	maxBytes int64
}

// NewUploadsHandler constructs handler.
func NewUploadsHandler(blobs storage.BlobStore, cfg config.UploadConfig) *UploadsHandler {
	return &UploadsHandler{blobs: blobs, maxBytes: cfg.MaxBytes}
}

// Upload POST /api/upload.
func (h *UploadsHandler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return apperrors.NewValidationError("no image uploaded", nil)
	}
	if h.maxBytes > 0 && fileHeader.Size > h.maxBytes {
		return apperrors.NewValidationError("image too large", map[string]any{"max_bytes": h.maxBytes})
	}
	contentType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return apperrors.NewValidationError("only images are allowed", map[string]any{"content_type": contentType})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	defer file.Close()

	url, err := h.blobs.Save(c.Context(), fileHeader.Filename, file)
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	return c.JSON(fiber.Map{"data": dto.UploadResponse{URL: url}})
}
