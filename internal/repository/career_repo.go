package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"brightway/internal/domain"
)

type CareerRepository struct {
	db *gorm.DB
}

// NewCareerRepository creates the applications repository. Unlike booking
// and contact, the table name is fixed (see domain.CareersTable).
func NewCareerRepository(db *gorm.DB) *CareerRepository {
	return &CareerRepository{db: db}
}

type careerModel struct {
	ID              int64     `gorm:"column:id;primaryKey"`
	FirstName       string    `gorm:"column:first_name"`
	LastName        string    `gorm:"column:last_name"`
	Email           string    `gorm:"column:email"`
	Phone           string    `gorm:"column:phone"`
	Address         *string   `gorm:"column:address"`
	Position        string    `gorm:"column:position"`
	Availability    string    `gorm:"column:availability"`
	StartDate       *string   `gorm:"column:start_date"`
	Experience      *string   `gorm:"column:experience"`
	Transportation  string    `gorm:"column:transportation"`
	Reference1      *string   `gorm:"column:reference1"`
	Reference2      *string   `gorm:"column:reference2"`
	CoverLetter     *string   `gorm:"column:cover_letter"`
	BackgroundCheck bool      `gorm:"column:background_check"`
	ResumeName      *string   `gorm:"column:resume_name"`
	ResumeSize      *int64    `gorm:"column:resume_size"`
	ResumeType      *string   `gorm:"column:resume_type"`
	Status          string    `gorm:"column:status"`
	CreatedAt       time.Time `gorm:"column:created_at"`
}

func (careerModel) TableName() string { return domain.CareersTable }

func toDomainCareer(m careerModel) *domain.CareerApplication {
	var resumeSize int64
	if m.ResumeSize != nil {
		resumeSize = *m.ResumeSize
	}
	return &domain.CareerApplication{
		ID:              m.ID,
		FirstName:       m.FirstName,
		LastName:        m.LastName,
		Email:           m.Email,
		Phone:           m.Phone,
		Address:         deref(m.Address),
		Position:        m.Position,
		Availability:    m.Availability,
		StartDate:       deref(m.StartDate),
		Experience:      deref(m.Experience),
		Transportation:  m.Transportation,
		Reference1:      deref(m.Reference1),
		Reference2:      deref(m.Reference2),
		CoverLetter:     deref(m.CoverLetter),
		BackgroundCheck: m.BackgroundCheck,
		ResumeName:      deref(m.ResumeName),
		ResumeSize:      resumeSize,
		ResumeType:      deref(m.ResumeType),
		Status:          domain.SubmissionStatus(m.Status),
		CreatedAt:       m.CreatedAt,
	}
}

func toCareerModel(s *domain.CareerApplication) careerModel {
	var resumeSize *int64
	if s.ResumeSize != 0 {
		v := s.ResumeSize
		resumeSize = &v
	}
	return careerModel{
		ID:              s.ID,
		FirstName:       s.FirstName,
		LastName:        s.LastName,
		Email:           s.Email,
		Phone:           s.Phone,
		Address:         optional(s.Address),
		Position:        s.Position,
		Availability:    s.Availability,
		StartDate:       optional(s.StartDate),
		Experience:      optional(s.Experience),
		Transportation:  s.Transportation,
		Reference1:      optional(s.Reference1),
		Reference2:      optional(s.Reference2),
		CoverLetter:     optional(s.CoverLetter),
		BackgroundCheck: s.BackgroundCheck,
		ResumeName:      optional(s.ResumeName),
		ResumeSize:      resumeSize,
		ResumeType:      optional(s.ResumeType),
		Status:          string(s.Status),
		CreatedAt:       s.CreatedAt,
	}
}

func (r *CareerRepository) Create(ctx context.Context, s *domain.CareerApplication) error {
	if s.Status == "" {
		s.Status = domain.StatusPending
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now()
	}

	m := toCareerModel(s)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*s = *toDomainCareer(m)
	return nil
}

func (r *CareerRepository) List(ctx context.Context, limit, offset int) ([]domain.CareerApplication, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&careerModel{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var models []careerModel
	tx := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&models)
	if tx.Error != nil {
		return nil, 0, tx.Error
	}

	out := make([]domain.CareerApplication, len(models))
	for i, m := range models {
		out[i] = *toDomainCareer(m)
	}
	return out, total, nil
}

func (r *CareerRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	return countByStatus(ctx, r.db, domain.CareersTable)
}
