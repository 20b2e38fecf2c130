package domain

import "time"

// Category classifies reports (potholes, lighting, waste, ...).
type Category struct {
	ID        string
	Name      string
	Icon      string
	Color     string
	CreatedAt time.Time
}

// CategoryStats aggregates simple per-category report counts.
type CategoryStats struct {
	Category   string `json:"category"`
	Icon       string `json:"icon"`
	Color      string `json:"color"`
	Total      int64  `json:"total"`
	Pending    int64  `json:"pending"`
	InProgress int64  `json:"in_progress"`
	Resolved   int64  `json:"resolved"`
}
