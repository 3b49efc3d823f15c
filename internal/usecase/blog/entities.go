package blog

import (
	"time"

	domain "fintech-directory/internal/domain/blog"
)

type CreateInput struct {
	Title       string        `json:"title" validate:"required,max=255"`
	Slug        string        `json:"slug" validate:"omitempty,slug,max=255"`
	Excerpt     string        `json:"excerpt" validate:"required"`
	Content     string        `json:"content" validate:"required"`
	Category    string        `json:"category" validate:"required,max=128"`
	Tags        []string      `json:"tags" validate:"dive,required"`
	Author      string        `json:"author" validate:"required,max=128"`
	PublishedAt *time.Time    `json:"publishedAt"`
	IsPublished bool          `json:"isPublished"`
	Locale      domain.Locale `json:"locale" validate:"omitempty,oneof=EN FR"`
}

// ListQuery mirrors the public query string. IsPublished nil means a public caller.
type ListQuery struct {
	Query       string
	Category    string
	Locale      domain.Locale
	IsPublished *bool
}
