package blog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fintech-directory/internal/domain/apperr"
	domain "fintech-directory/internal/domain/blog"
	"fintech-directory/internal/domain/jsoncol"
	"fintech-directory/pkg/id"
	"fintech-directory/pkg/pagination"
	"fintech-directory/pkg/slug"
)

var errNoSlug = apperr.New(apperr.Validation, "slug could not be derived from title")

type Usecase struct {
	repo domain.Repository
	now  func() time.Time
}

func NewUsecase(r domain.Repository) *Usecase {
	return &Usecase{repo: r, now: func() time.Time { return time.Now().UTC() }}
}

// List hides drafts and scheduled posts unless the caller asks for a publication state.
func (u *Usecase) List(ctx context.Context, q ListQuery, p pagination.Params) (pagination.Page[domain.Post], error) {
	p = p.Normalize(pagination.DefaultLimit)

	f := domain.Filter{Query: q.Query, Locale: q.Locale, IsPublished: q.IsPublished}
	if c := strings.TrimSpace(q.Category); c != "" && !strings.EqualFold(c, "All") {
		f.Category = c
	}
	if q.IsPublished == nil {
		published, now := true, u.now()
		f.IsPublished = &published
		f.PublishedBefore = &now
	}

	rows, total, err := u.repo.List(ctx, f, p)
	if err != nil {
		return pagination.Page[domain.Post]{}, err
	}
	return pagination.NewPage(rows, p, total), nil
}

// Create derives a slug from the title when none is given and suffixes the
// current unix milliseconds on collision.
func (u *Usecase) Create(ctx context.Context, in CreateInput) (*domain.Post, error) {
	now := u.now()

	s := strings.TrimSpace(in.Slug)
	if s == "" {
		s = slug.Make(in.Title)
	}
	if s == "" {
		return nil, errNoSlug
	}
	taken, err := u.repo.SlugExists(ctx, s)
	if err != nil {
		return nil, err
	}
	if taken {
		s = fmt.Sprintf("%s-%d", s, now.UnixMilli())
	}

	publishedAt := in.PublishedAt
	if publishedAt != nil {
		t := publishedAt.UTC()
		publishedAt = &t
	} else if in.IsPublished {
		publishedAt = &now
	}
	locale := in.Locale
	if locale == "" {
		locale = domain.LocaleEN
	}
	tags := jsoncol.StringList(in.Tags)
	if tags == nil {
		tags = jsoncol.StringList{}
	}

	p := &domain.Post{
		ID:          id.NewID32(),
		Title:       strings.TrimSpace(in.Title),
		Slug:        s,
		Excerpt:     in.Excerpt,
		Content:     in.Content,
		Category:    in.Category,
		Tags:        tags,
		Author:      in.Author,
		PublishedAt: publishedAt,
		IsPublished: in.IsPublished,
		Locale:      locale,
	}
	if err := u.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}
