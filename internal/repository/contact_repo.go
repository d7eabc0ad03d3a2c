package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"brightway/internal/domain"
)

type ContactRepository struct {
	db    *gorm.DB
	table string
}

func NewContactRepository(db *gorm.DB, table string) *ContactRepository {
	if table == "" {
		table = "contact_submissions"
	}
	return &ContactRepository{db: db, table: table}
}

type contactModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	FirstName   string    `gorm:"column:first_name"`
	LastName    string    `gorm:"column:last_name"`
	Email       string    `gorm:"column:email"`
	Phone       *string   `gorm:"column:phone"`
	City        *string   `gorm:"column:city"`
	Postcode    *string   `gorm:"column:postcode"`
	ServiceType *string   `gorm:"column:service_type"`
	Message     string    `gorm:"column:message"`
	Status      string    `gorm:"column:status"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func toDomainContact(m contactModel) *domain.ContactSubmission {
	return &domain.ContactSubmission{
		ID:          m.ID,
		FirstName:   m.FirstName,
		LastName:    m.LastName,
		Email:       m.Email,
		Phone:       deref(m.Phone),
		City:        deref(m.City),
		Postcode:    deref(m.Postcode),
		ServiceType: deref(m.ServiceType),
		Message:     m.Message,
		Status:      domain.SubmissionStatus(m.Status),
		CreatedAt:   m.CreatedAt,
	}
}

func toContactModel(s *domain.ContactSubmission) contactModel {
	return contactModel{
		ID:          s.ID,
		FirstName:   s.FirstName,
		LastName:    s.LastName,
		Email:       s.Email,
		Phone:       optional(s.Phone),
		City:        optional(s.City),
		Postcode:    optional(s.Postcode),
		ServiceType: optional(s.ServiceType),
		Message:     s.Message,
		Status:      string(s.Status),
		CreatedAt:   s.CreatedAt,
	}
}

func (r *ContactRepository) Create(ctx context.Context, s *domain.ContactSubmission) error {
	if s.Status == "" {
		s.Status = domain.StatusNew
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now()
	}

	m := toContactModel(s)
	tx := r.db.WithContext(ctx).Table(r.table).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*s = *toDomainContact(m)
	return nil
}

func (r *ContactRepository) List(ctx context.Context, limit, offset int) ([]domain.ContactSubmission, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Table(r.table).Model(&contactModel{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var models []contactModel
	tx := r.db.WithContext(ctx).Table(r.table).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&models)
	if tx.Error != nil {
		return nil, 0, tx.Error
	}

	out := make([]domain.ContactSubmission, len(models))
	for i, m := range models {
		out[i] = *toDomainContact(m)
	}
	return out, total, nil
}

func (r *ContactRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	return countByStatus(ctx, r.db, r.table)
}
