package blog

import (
	"time"

	"fintech-directory/internal/domain/jsoncol"
)

type Locale string

const (
	LocaleEN Locale = "EN"
	LocaleFR Locale = "FR"
)

func (l Locale) Valid() bool { return l == LocaleEN || l == LocaleFR }

// Table: blog_posts
type Post struct {
	ID          string             `gorm:"column:id;primaryKey;size:32" json:"id"`
	Title       string             `gorm:"column:title;size:255;not null" json:"title"`
	Slug        string             `gorm:"column:slug;size:255;not null;uniqueIndex:ux_blog_posts_slug" json:"slug"`
	Excerpt     string             `gorm:"column:excerpt;type:text;not null" json:"excerpt"`
	Content     string             `gorm:"column:content;type:text;not null" json:"content"`
	Category    string             `gorm:"column:category;size:128;not null;index" json:"category"`
	Tags        jsoncol.StringList `gorm:"column:tags" json:"tags"`
	Author      string             `gorm:"column:author;size:128;not null" json:"author"`
	PublishedAt *time.Time         `gorm:"column:published_at;index" json:"publishedAt"`
	IsPublished bool               `gorm:"column:is_published;not null;default:false" json:"isPublished"`
	Locale      Locale             `gorm:"column:locale;size:2;not null;default:EN" json:"locale"`
	CreatedAt   time.Time          `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time          `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (Post) TableName() string { return "blog_posts" }

type Filter struct {
	Query       string
	Category    string
	Locale      Locale
	IsPublished *bool
	// PublishedBefore restricts to posts whose publishedAt is set and not after it.
	PublishedBefore *time.Time
}
