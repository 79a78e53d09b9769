package domain

import (
	"time"

	"github.com/google/uuid"
)

// NewsItem is a published announcement. AuthorName is resolved from the
// author's user row and is absent when the author no longer exists.
type NewsItem struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	Title       string     `json:"title" db:"title"`
	Content     string     `json:"content" db:"content"`
	Summary     string     `json:"summary" db:"summary"`
	ImageURL    *string    `json:"imageUrl,omitempty" db:"image_url"`
	PublishedAt time.Time  `json:"publishedAt" db:"published_at"`
	ExpiresAt   *time.Time `json:"expiresAt,omitempty" db:"expires_at"`
	IsActive    bool       `json:"isActive" db:"is_active"`
	AuthorID    *uuid.UUID `json:"authorId,omitempty" db:"author_id"`
	AuthorName  *string    `json:"authorName,omitempty" db:"author_name"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at"`
}
