package contact

import (
	"context"

	"brightway/internal/domain"
	"brightway/internal/email"
	"brightway/internal/observability/notify"
	"brightway/internal/pipeline"
)

// SuccessMessage is the literal confirmation the contact form shows.
const SuccessMessage = "Message sent successfully! We will get back to you within 24 hours."

type SubmissionRepository interface {
	Create(ctx context.Context, s *domain.ContactSubmission) error
}

type Service struct {
	repo          SubmissionRepository
	runner        *pipeline.Runner
	businessEmail string
}

func NewService(repo SubmissionRepository, runner *pipeline.Runner, businessEmail string) *Service {
	return &Service{
		repo:          repo,
		runner:        runner,
		businessEmail: businessEmail,
	}
}

func (s *Service) Submit(ctx context.Context, req SubmitContactRequest) (*int64, error) {
	data := req.emailData()

	return s.runner.Run(ctx, "contact",
		func(ctx context.Context) (int64, error) {
			sub := req.toSubmission()
			if err := s.repo.Create(ctx, &sub); err != nil {
				return 0, err
			}
			return sub.ID, nil
		},
		pipeline.Notification{
			Effect:  notify.EffectNotifyBusiness,
			Message: email.BuildContactBusinessEmail(s.businessEmail, data),
		},
		pipeline.Notification{
			Effect:  notify.EffectNotifyCustomer,
			Message: email.BuildContactCustomerEmail(data),
		},
	)
}
