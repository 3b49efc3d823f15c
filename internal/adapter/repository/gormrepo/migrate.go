package gormrepo

import (
	"fintech-directory/internal/domain/blog"
	"fintech-directory/internal/domain/institution"
	"fintech-directory/internal/domain/newsletter"
	"fintech-directory/internal/domain/onboarding"

	"gorm.io/gorm"
)

// Models lists every persisted type in dependency order.
func Models() []any {
	return []any{
		&institution.Institution{},
		&onboarding.Request{},
		&blog.Post{},
		&newsletter.Subscriber{},
	}
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
