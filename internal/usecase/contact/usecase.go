package contact

import (
	"context"
	"fmt"
	"strings"

	"fintech-directory/internal/domain/apperr"
	"fintech-directory/internal/domain/notification"
	"fintech-directory/internal/usecase/notify"
)

// ErrDeliveryFailed is returned when the admin copy could not be sent.
var ErrDeliveryFailed = apperr.New(apperr.Unexpected, "Failed to send message. Please try again later.")

type Input struct {
	Name    string `json:"name" validate:"required,max=255"`
	Email   string `json:"email" validate:"required,email,max=255"`
	Company string `json:"company" validate:"omitempty,max=255"`
	Phone   string `json:"phone" validate:"omitempty,max=64"`
	Subject string `json:"subject" validate:"required,max=255"`
	Message string `json:"message" validate:"required,min=10"`
}

type Usecase struct{ notifier notification.Dispatcher }

func NewUsecase(n notification.Dispatcher) *Usecase { return &Usecase{notifier: n} }

// Submit sends the admin email synchronously; the sender's confirmation is best-effort.
func (u *Usecase) Submit(ctx context.Context, in Input) error {
	data := notify.ContactData{
		Name:    strings.TrimSpace(in.Name),
		Email:   strings.TrimSpace(in.Email),
		Company: strings.TrimSpace(in.Company),
		Phone:   strings.TrimSpace(in.Phone),
		Subject: strings.TrimSpace(in.Subject),
		Message: in.Message,
	}
	err := u.notifier.Send(ctx, notification.Envelope{
		Template: notification.TemplateContactAdmin,
		To:       u.notifier.AdminEmail(),
		ReplyTo:  data.Email,
		Data:     data,
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}

	u.notifier.Dispatch(notification.Envelope{
		Template: notification.TemplateContactConfirmation,
		To:       data.Email,
		Data:     data,
	})
	return nil
}
