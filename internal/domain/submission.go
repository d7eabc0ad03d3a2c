package domain

import "time"

type SubmissionStatus string

const (
	StatusPending SubmissionStatus = "pending"
	StatusNew     SubmissionStatus = "new"
)

// BookingSubmission is one booking request from the website form.
// Rows are append-only: the server assigns id, status and created_at,
// and nothing in this service ever updates or deletes them.
type BookingSubmission struct {
	ID int64 `json:"id"`

	FirstName string `json:"firstName" gorm:"column:first_name"`
	LastName  string `json:"lastName" gorm:"column:last_name"`
	Email     string `json:"email" gorm:"column:email"`
	Phone     string `json:"phone" gorm:"column:phone"`

	Address      string `json:"address,omitempty" gorm:"column:address"`
	City         string `json:"city,omitempty" gorm:"column:city"`
	Postcode     string `json:"postcode,omitempty" gorm:"column:postcode"`
	PropertySize string `json:"propertySize,omitempty" gorm:"column:property_size"`
	Rooms        string `json:"rooms,omitempty" gorm:"column:rooms"`

	ServiceType  string `json:"serviceType" gorm:"column:service_type"`
	CleaningType string `json:"cleaningType" gorm:"column:cleaning_type"`
	Frequency    string `json:"frequency,omitempty" gorm:"column:frequency"`

	PreferredDate string `json:"preferredDate" gorm:"column:preferred_date"`
	PreferredTime string `json:"preferredTime" gorm:"column:preferred_time"`

	Notes string `json:"notes,omitempty" gorm:"column:notes;type:text"`

	Status    SubmissionStatus `json:"status" gorm:"column:status"`
	CreatedAt time.Time        `json:"createdAt" gorm:"column:created_at"`
}

// ContactSubmission is one message from the contact form.
type ContactSubmission struct {
	ID int64 `json:"id"`

	FirstName string `json:"firstName" gorm:"column:first_name"`
	LastName  string `json:"lastName" gorm:"column:last_name"`
	Email     string `json:"email" gorm:"column:email"`
	Phone     string `json:"phone,omitempty" gorm:"column:phone"`

	City        string `json:"city,omitempty" gorm:"column:city"`
	Postcode    string `json:"postcode,omitempty" gorm:"column:postcode"`
	ServiceType string `json:"serviceType,omitempty" gorm:"column:service_type"`

	Message string `json:"message" gorm:"column:message;type:text"`

	Status    SubmissionStatus `json:"status" gorm:"column:status"`
	CreatedAt time.Time        `json:"createdAt" gorm:"column:created_at"`
}

// CareerApplication is one job application. Only resume metadata is kept;
// the file bytes themselves are never persisted.
type CareerApplication struct {
	ID int64 `json:"id"`

	FirstName string `json:"firstName" gorm:"column:first_name"`
	LastName  string `json:"lastName" gorm:"column:last_name"`
	Email     string `json:"email" gorm:"column:email"`
	Phone     string `json:"phone" gorm:"column:phone"`

	Address      string `json:"address,omitempty" gorm:"column:address"`
	Position     string `json:"position" gorm:"column:position"`
	Availability string `json:"availability" gorm:"column:availability"`
	StartDate    string `json:"startDate,omitempty" gorm:"column:start_date"`

	Experience     string `json:"experience,omitempty" gorm:"column:experience;type:text"`
	Transportation string `json:"transportation" gorm:"column:transportation"`
	Reference1     string `json:"reference1,omitempty" gorm:"column:reference1;type:text"`
	Reference2     string `json:"reference2,omitempty" gorm:"column:reference2;type:text"`
	CoverLetter    string `json:"coverLetter,omitempty" gorm:"column:cover_letter;type:text"`

	BackgroundCheck bool `json:"backgroundCheck" gorm:"column:background_check"`

	ResumeName string `json:"resumeName,omitempty" gorm:"column:resume_name"`
	ResumeSize int64  `json:"resumeSize,omitempty" gorm:"column:resume_size"`
	ResumeType string `json:"resumeType,omitempty" gorm:"column:resume_type"`

	Status    SubmissionStatus `json:"status" gorm:"column:status"`
	CreatedAt time.Time        `json:"createdAt" gorm:"column:created_at"`
}

// CareersTable is intentionally not configurable, unlike booking and contact.
const CareersTable = "career_applications"

func (CareerApplication) TableName() string { return CareersTable }
