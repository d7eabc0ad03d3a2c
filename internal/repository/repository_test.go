package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"brightway/internal/database"
	"brightway/internal/domain"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db, "booking_submissions", "contact_submissions"))
	return db
}

func sampleBooking() *domain.BookingSubmission {
	return &domain.BookingSubmission{
		FirstName:     "Jane",
		LastName:      "Doe",
		Email:         "jane@example.com",
		Phone:         "5551234567",
		ServiceType:   "Residential",
		CleaningType:  "Deep Cleaning",
		PreferredDate: "2025-03-01",
		PreferredTime: "08:00 - 10:00",
	}
}

func TestBookingCreateAssignsDefaults(t *testing.T) {
	repo := NewBookingRepository(setupDB(t), "")

	s := sampleBooking()
	require.NoError(t, repo.Create(context.Background(), s))

	assert.Greater(t, s.ID, int64(0))
	assert.Equal(t, domain.StatusPending, s.Status)
	assert.False(t, s.CreatedAt.IsZero())
}

func TestBookingCustomTable(t *testing.T) {
	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db, "booking_leads", "contact_submissions"))

	repo := NewBookingRepository(db, "booking_leads")
	require.NoError(t, repo.Create(context.Background(), sampleBooking()))

	var n int64
	require.NoError(t, db.Table("booking_leads").Count(&n).Error)
	assert.Equal(t, int64(1), n)
}

func TestBookingListNewestFirst(t *testing.T) {
	repo := NewBookingRepository(setupDB(t), "")
	ctx := context.Background()

	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		s := sampleBooking()
		s.Notes = []string{"first", "second", "third"}[i]
		s.CreatedAt = base.Add(time.Duration(i) * time.Hour)
		require.NoError(t, repo.Create(ctx, s))
	}

	rows, total, err := repo.List(ctx, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, rows, 2)
	assert.Equal(t, "third", rows[0].Notes)
	assert.Equal(t, "second", rows[1].Notes)
}

func TestBookingNoDeduplication(t *testing.T) {
	repo := NewBookingRepository(setupDB(t), "")
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, sampleBooking()))
	require.NoError(t, repo.Create(ctx, sampleBooking()))

	_, total, err := repo.List(ctx, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}

func TestContactCreateDefaultStatus(t *testing.T) {
	repo := NewContactRepository(setupDB(t), "")

	s := &domain.ContactSubmission{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Message:   "Do you clean offices?",
	}
	require.NoError(t, repo.Create(context.Background(), s))

	assert.Greater(t, s.ID, int64(0))
	assert.Equal(t, domain.StatusNew, s.Status)
}

func TestCareerResumeMetadata(t *testing.T) {
	repo := NewCareerRepository(setupDB(t))
	ctx := context.Background()

	withResume := &domain.CareerApplication{
		FirstName:       "Jane",
		LastName:        "Doe",
		Email:           "jane@example.com",
		Phone:           "5551234567",
		Position:        "Cleaner",
		Availability:    "Weekdays",
		Transportation:  "Own car",
		BackgroundCheck: true,
		ResumeName:      "jane-doe-cv.pdf",
		ResumeSize:      10240,
		ResumeType:      "application/pdf",
	}
	require.NoError(t, repo.Create(ctx, withResume))

	without := &domain.CareerApplication{
		FirstName:      "John",
		LastName:       "Smith",
		Email:          "john@example.com",
		Phone:          "5559876543",
		Position:       "Supervisor",
		Availability:   "Weekends",
		Transportation: "Bus",
	}
	require.NoError(t, repo.Create(ctx, without))

	rows, total, err := repo.List(ctx, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)

	byEmail := map[string]domain.CareerApplication{}
	for _, r := range rows {
		byEmail[r.Email] = r
	}
	assert.Equal(t, "jane-doe-cv.pdf", byEmail["jane@example.com"].ResumeName)
	assert.Equal(t, int64(10240), byEmail["jane@example.com"].ResumeSize)
	assert.Empty(t, byEmail["john@example.com"].ResumeName)
	assert.Zero(t, byEmail["john@example.com"].ResumeSize)
}

func TestCountByStatus(t *testing.T) {
	repo := NewBookingRepository(setupDB(t), "")
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		require.NoError(t, repo.Create(ctx, sampleBooking()))
	}
	confirmed := sampleBooking()
	confirmed.Status = "confirmed"
	require.NoError(t, repo.Create(ctx, confirmed))

	counts, err := repo.CountByStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), counts["pending"])
	assert.Equal(t, int64(1), counts["confirmed"])
}
