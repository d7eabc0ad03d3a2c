package booking

import (
	"context"

	"brightway/internal/domain"
	"brightway/internal/email"
	"brightway/internal/observability/notify"
	"brightway/internal/pipeline"
)

// SuccessMessage is the literal confirmation the booking form shows.
const SuccessMessage = "Booking request submitted successfully! We will contact you within 2 hours to confirm your appointment."

// SubmissionRepository defines the persistence needed by the booking intake.
type SubmissionRepository interface {
	Create(ctx context.Context, s *domain.BookingSubmission) error
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

// Submit runs the booking pipeline: persist the submission, then notify the
// business and the customer. The returned id is nil when persistence failed
// but the request still succeeded under the best-effort policy.
func (s *Service) Submit(ctx context.Context, req SubmitBookingRequest) (*int64, error) {
	data := req.emailData()

	return s.runner.Run(ctx, "booking",
		func(ctx context.Context) (int64, error) {
			sub := req.toSubmission()
			if err := s.repo.Create(ctx, &sub); err != nil {
				return 0, err
			}
			return sub.ID, nil
		},
		pipeline.Notification{
			Effect:  notify.EffectNotifyBusiness,
			Message: email.BuildBookingBusinessEmail(s.businessEmail, data),
		},
		pipeline.Notification{
			Effect:  notify.EffectNotifyCustomer,
			Message: email.BuildBookingCustomerEmail(data),
		},
	)
}
