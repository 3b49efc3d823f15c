package newsletter

import (
	"time"

	"fintech-directory/internal/domain/apperr"
)

var ErrNotFound = apperr.New(apperr.NotFound, "Subscriber not found")

// Table: newsletter_subscribers. Email is unique; unsubscribing only clears IsActive.
type Subscriber struct {
	ID           string    `gorm:"column:id;primaryKey;size:32" json:"id"`
	Email        string    `gorm:"column:email;size:255;not null;uniqueIndex:ux_newsletter_email" json:"email"`
	IsActive     bool      `gorm:"column:is_active;not null;index" json:"isActive"`
	SubscribedAt time.Time `gorm:"column:subscribed_at;autoCreateTime;index" json:"subscribedAt"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (Subscriber) TableName() string { return "newsletter_subscribers" }

type Filter struct {
	IsActive *bool
}
