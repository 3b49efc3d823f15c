package newsletter

import (
	"context"
	"errors"
	"strings"

	"fintech-directory/internal/domain/notification"
	domain "fintech-directory/internal/domain/newsletter"
	"fintech-directory/internal/usecase/notify"
	"fintech-directory/pkg/id"
	"fintech-directory/pkg/pagination"

	"gorm.io/gorm"
)

// DefaultListLimit is the admin list page size when none is given.
const DefaultListLimit = 50

type SubscribeInput struct {
	Email string `json:"email" validate:"required,email,max=255"`
}

// Outcome tells the caller which of the three subscribe paths ran.
type Outcome int

const (
	Subscribed Outcome = iota
	AlreadySubscribed
	Reactivated
)

func (o Outcome) Message() string {
	switch o {
	case AlreadySubscribed:
		return "Email already subscribed to newsletter"
	case Reactivated:
		return "Newsletter subscription reactivated!"
	default:
		return "Successfully subscribed to newsletter!"
	}
}

type Usecase struct {
	repo     domain.Repository
	notifier notification.Dispatcher
}

func NewUsecase(r domain.Repository, n notification.Dispatcher) *Usecase {
	return &Usecase{repo: r, notifier: n}
}

// Subscribe is idempotent per address. Only brand-new subscribers get the welcome email.
func (u *Usecase) Subscribe(ctx context.Context, email string) (Outcome, error) {
	email = normalize(email)

	cur, err := u.repo.GetByEmail(ctx, email)
	switch {
	case err == nil && cur.IsActive:
		return AlreadySubscribed, nil
	case err == nil:
		if err := u.repo.SetActive(ctx, email, true); err != nil {
			return 0, err
		}
		return Reactivated, nil
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return 0, err
	}

	if err := u.repo.Create(ctx, &domain.Subscriber{ID: id.NewID32(), Email: email, IsActive: true}); err != nil {
		// lost a race with a concurrent subscribe for the same address
		if again, gerr := u.repo.GetByEmail(ctx, email); gerr == nil && again.IsActive {
			return AlreadySubscribed, nil
		}
		return 0, err
	}
	u.notifier.Dispatch(notification.Envelope{
		Template: notification.TemplateNewsletterWelcome,
		To:       email,
		Data:     notify.SubscriberData{Email: email},
	})
	return Subscribed, nil
}

func (u *Usecase) Unsubscribe(ctx context.Context, email string) error {
	email = normalize(email)
	if _, err := u.repo.GetByEmail(ctx, email); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotFound
		}
		return err
	}
	return u.repo.SetActive(ctx, email, false)
}

func (u *Usecase) List(ctx context.Context, f domain.Filter, p pagination.Params) (pagination.Page[domain.Subscriber], error) {
	p = p.Normalize(DefaultListLimit)
	rows, total, err := u.repo.List(ctx, f, p)
	if err != nil {
		return pagination.Page[domain.Subscriber]{}, err
	}
	return pagination.NewPage(rows, p, total), nil
}

func normalize(email string) string { return strings.ToLower(strings.TrimSpace(email)) }
