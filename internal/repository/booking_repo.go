package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"brightway/internal/domain"
)

type BookingRepository struct {
	db    *gorm.DB
	table string
}

// NewBookingRepository creates the booking submissions repository. The table
// name comes from configuration because the original deployments used
// different names per environment.
func NewBookingRepository(db *gorm.DB, table string) *BookingRepository {
	if table == "" {
		table = "booking_submissions"
	}
	return &BookingRepository{db: db, table: table}
}

type bookingModel struct {
	ID            int64     `gorm:"column:id;primaryKey"`
	FirstName     string    `gorm:"column:first_name"`
	LastName      string    `gorm:"column:last_name"`
	Email         string    `gorm:"column:email"`
	Phone         string    `gorm:"column:phone"`
	Address       *string   `gorm:"column:address"`
	City          *string   `gorm:"column:city"`
	Postcode      *string   `gorm:"column:postcode"`
	PropertySize  *string   `gorm:"column:property_size"`
	Rooms         *string   `gorm:"column:rooms"`
	ServiceType   string    `gorm:"column:service_type"`
	CleaningType  string    `gorm:"column:cleaning_type"`
	Frequency     *string   `gorm:"column:frequency"`
	PreferredDate string    `gorm:"column:preferred_date"`
	PreferredTime string    `gorm:"column:preferred_time"`
	Notes         *string   `gorm:"column:notes"`
	Status        string    `gorm:"column:status"`
	CreatedAt     time.Time `gorm:"column:created_at"`
}

func toDomainBooking(m bookingModel) *domain.BookingSubmission {
	return &domain.BookingSubmission{
		ID:            m.ID,
		FirstName:     m.FirstName,
		LastName:      m.LastName,
		Email:         m.Email,
		Phone:         m.Phone,
		Address:       deref(m.Address),
		City:          deref(m.City),
		Postcode:      deref(m.Postcode),
		PropertySize:  deref(m.PropertySize),
		Rooms:         deref(m.Rooms),
		ServiceType:   m.ServiceType,
		CleaningType:  m.CleaningType,
		Frequency:     deref(m.Frequency),
		PreferredDate: m.PreferredDate,
		PreferredTime: m.PreferredTime,
		Notes:         deref(m.Notes),
		Status:        domain.SubmissionStatus(m.Status),
		CreatedAt:     m.CreatedAt,
	}
}

func toBookingModel(s *domain.BookingSubmission) bookingModel {
	return bookingModel{
		ID:            s.ID,
		FirstName:     s.FirstName,
		LastName:      s.LastName,
		Email:         s.Email,
		Phone:         s.Phone,
		Address:       optional(s.Address),
		City:          optional(s.City),
		Postcode:      optional(s.Postcode),
		PropertySize:  optional(s.PropertySize),
		Rooms:         optional(s.Rooms),
		ServiceType:   s.ServiceType,
		CleaningType:  s.CleaningType,
		Frequency:     optional(s.Frequency),
		PreferredDate: s.PreferredDate,
		PreferredTime: s.PreferredTime,
		Notes:         optional(s.Notes),
		Status:        string(s.Status),
		CreatedAt:     s.CreatedAt,
	}
}

func (r *BookingRepository) Create(ctx context.Context, s *domain.BookingSubmission) error {
	if s.Status == "" {
		s.Status = domain.StatusPending
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now()
	}

	m := toBookingModel(s)
	tx := r.db.WithContext(ctx).Table(r.table).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*s = *toDomainBooking(m)
	return nil
}

func (r *BookingRepository) List(ctx context.Context, limit, offset int) ([]domain.BookingSubmission, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Table(r.table).Model(&bookingModel{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var models []bookingModel
	tx := r.db.WithContext(ctx).Table(r.table).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&models)
	if tx.Error != nil {
		return nil, 0, tx.Error
	}

	out := make([]domain.BookingSubmission, len(models))
	for i, m := range models {
		out[i] = *toDomainBooking(m)
	}
	return out, total, nil
}

func (r *BookingRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	return countByStatus(ctx, r.db, r.table)
}
