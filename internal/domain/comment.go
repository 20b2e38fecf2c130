package domain

import "time"

// Comment is an immutable note in a report thread. IsAdmin captures the
// author's role at creation time and is not re-derived later. UserName
// is a read-only display field joined by the repository.
type Comment struct {
	ID        string
	ReportID  string
	UserID    string
	Content   string
	IsAdmin   bool
	UserName  *string
	CreatedAt time.Time
}
