package dto

import (
	"time"

	"github.com/spec-kit/urban-report-service/internal/domain"
)

// CategoryResponse is the public category view.
type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Icon      string    `json:"icon"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
}

// NewCategoryResponse maps a domain category to its API view.
func NewCategoryResponse(category *domain.Category) CategoryResponse {
	return CategoryResponse{
		ID:        category.ID,
		Name:      category.Name,
		Icon:      category.Icon,
		Color:     category.Color,
		CreatedAt: category.CreatedAt,
	}
}

// UploadResponse returns the stored blob URL.
type UploadResponse struct {
	URL string `json:"url"`
}
