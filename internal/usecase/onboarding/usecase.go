package onboarding

import (
	"context"
	"errors"
	"strings"

	"fintech-directory/internal/domain/institution"
	"fintech-directory/internal/domain/notification"
	domain "fintech-directory/internal/domain/onboarding"
	"fintech-directory/internal/domain/uow"
	"fintech-directory/internal/usecase/notify"
	"fintech-directory/pkg/id"
	"fintech-directory/pkg/pagination"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Usecase struct {
	uow      uow.UnitOfWork
	requests domain.Repository
	notifier notification.Dispatcher
}

func NewUsecase(tx uow.UnitOfWork, requests domain.Repository, n notification.Dispatcher) *Usecase {
	return &Usecase{uow: tx, requests: requests, notifier: n}
}

// Create files a PENDING request against an active institution. Emails go out
// only once the insert has committed.
func (u *Usecase) Create(ctx context.Context, in CreateInput) (*domain.Request, error) {
	var (
		req  *domain.Request
		inst *institution.Institution
	)
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		var err error
		inst, err = r.Institutions.GetByID(ctx, in.FintechID)
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return domain.ErrInstitutionUnavailable
		case err != nil:
			return err
		case !inst.IsActive:
			return domain.ErrInstitutionUnavailable
		}

		turnover := decimal.Zero
		if in.EstimatedTurnover != nil {
			turnover = *in.EstimatedTurnover
		}
		req = &domain.Request{
			ID:                  id.NewID32(),
			FintechID:           inst.ID,
			ContactEmail:        strings.TrimSpace(in.ContactEmail),
			ContactName:         strings.TrimSpace(in.ContactName),
			ContactPhone:        in.ContactPhone,
			CompanyName:         strings.TrimSpace(in.CompanyName),
			CompanyType:         in.CompanyType,
			CompanyRegistration: in.CompanyRegistration,
			CompanyAddress:      in.CompanyAddress,
			CompanyCountry:      in.CompanyCountry,
			EstimatedTurnover:   turnover,
			BusinessDescription: in.BusinessDescription,
			Documents:           domain.Documents(in.Documents),
			Status:              domain.StatusPending,
		}
		return r.Onboarding.Create(ctx, req)
	})
	if err != nil {
		return nil, err
	}

	req.Fintech = &domain.InstitutionRef{
		ID: inst.ID, Name: inst.Name, Slug: inst.Slug, Logo: inst.Logo,
		Category: string(inst.Category), Website: inst.Website,
	}

	data := notify.ApplicationData{
		ApplicationID:       req.ID,
		CompanyName:         req.CompanyName,
		InstitutionName:     inst.Name,
		ContactName:         req.ContactName,
		ContactEmail:        req.ContactEmail,
		EstimatedTurnover:   req.EstimatedTurnover,
		BusinessDescription: req.BusinessDescription,
	}
	u.notifier.Dispatch(notification.Envelope{Template: notification.TemplateAdminNewApplication, To: u.notifier.AdminEmail(), Data: data})
	u.notifier.Dispatch(notification.Envelope{Template: notification.TemplateApplicationReceived, To: req.ContactEmail, Data: data})
	return req, nil
}

func (u *Usecase) Get(ctx context.Context, id string) (*domain.Request, error) {
	return u.load(ctx, id)
}

// UpdateStatus stores the given fields and emails the applicant when the status actually changed.
func (u *Usecase) UpdateStatus(ctx context.Context, id string, in UpdateStatusInput) (*domain.Request, error) {
	if in.Status != nil && !in.Status.Valid() {
		return nil, domain.ErrInvalidStatus
	}
	cur, err := u.load(ctx, id)
	if err != nil {
		return nil, err
	}
	prev := cur.Status
	if in.Status != nil {
		cur.Status = *in.Status
	}
	if in.StatusNotes != nil {
		cur.StatusNotes = in.StatusNotes
	}
	if err := u.requests.Save(ctx, cur); err != nil {
		return nil, err
	}

	if cur.Status != prev {
		if tpl, ok := notify.StatusTemplate(cur.Status); ok {
			data := notify.StatusData{ContactName: cur.ContactName}
			if cur.Fintech != nil {
				data.InstitutionName = cur.Fintech.Name
			}
			if in.StatusNotes != nil {
				data.Notes = *in.StatusNotes
			}
			u.notifier.Dispatch(notification.Envelope{Template: tpl, To: cur.ContactEmail, Data: data})
		}
	}
	return cur, nil
}

func (u *Usecase) Delete(ctx context.Context, id string) error {
	if _, err := u.load(ctx, id); err != nil {
		return err
	}
	return u.requests.Delete(ctx, id)
}

func (u *Usecase) List(ctx context.Context, f domain.Filter, p pagination.Params) (pagination.Page[domain.Request], error) {
	p = p.Normalize(pagination.DefaultLimit)
	rows, total, err := u.requests.List(ctx, f, p)
	if err != nil {
		return pagination.Page[domain.Request]{}, err
	}
	return pagination.NewPage(rows, p, total), nil
}

func (u *Usecase) load(ctx context.Context, id string) (*domain.Request, error) {
	r, err := u.requests.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	return r, err
}
