package careers

import (
	"context"

	"brightway/internal/domain"
	"brightway/internal/email"
	"brightway/internal/observability/notify"
	"brightway/internal/pipeline"
)

// SuccessMessage is the literal confirmation the careers form shows.
const SuccessMessage = "Application submitted successfully! We will review it and contact you within 48 hours."

type ApplicationRepository interface {
	Create(ctx context.Context, s *domain.CareerApplication) error
}

type Service struct {
	repo          ApplicationRepository
	runner        *pipeline.Runner
	businessEmail string
}

func NewService(repo ApplicationRepository, runner *pipeline.Runner, businessEmail string) *Service {
	return &Service{
		repo:          repo,
		runner:        runner,
		businessEmail: businessEmail,
	}
}

func (s *Service) Submit(ctx context.Context, req SubmitCareersRequest) (*int64, error) {
	data := req.emailData()

	return s.runner.Run(ctx, "careers",
		func(ctx context.Context) (int64, error) {
			app := req.toApplication()
			if err := s.repo.Create(ctx, &app); err != nil {
				return 0, err
			}
			return app.ID, nil
		},
		pipeline.Notification{
			Effect:  notify.EffectNotifyBusiness,
			Message: email.BuildCareersBusinessEmail(s.businessEmail, data),
		},
		pipeline.Notification{
			Effect:  notify.EffectNotifyCustomer,
			Message: email.BuildCareersCustomerEmail(data),
		},
	)
}
