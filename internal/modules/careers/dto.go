package careers

import (
	"encoding/json"
	"fmt"
	"strings"

	"brightway/internal/domain"
	"brightway/internal/email"
)

// BoolField is a boolean-like form value. The careers form posts it as a
// checkbox ("true"/"on"), JSON clients may send a bool or a string. The
// required check only needs presence, so the raw value is kept as a string.
type BoolField string

func (b *BoolField) UnmarshalJSON(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch t := v.(type) {
	case bool:
		if t {
			*b = "true"
		} else {
			*b = "false"
		}
	case string:
		*b = BoolField(t)
	case nil:
		*b = ""
	default:
		*b = BoolField(fmt.Sprint(t))
	}
	return nil
}

func (b BoolField) Bool() bool {
	switch strings.ToLower(string(b)) {
	case "true", "1", "on", "yes":
		return true
	}
	return false
}

// ResumeMeta is what survives of an uploaded resume: name, size and MIME
// type. The file content is discarded after the request.
type ResumeMeta struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
	Type string `json:"type"`
}

// SubmitCareersRequest accepts JSON, form-encoded and multipart posts.
type SubmitCareersRequest struct {
	FirstName string `json:"firstName" form:"firstName" validate:"required"`
	LastName  string `json:"lastName" form:"lastName" validate:"required"`
	Email     string `json:"email" form:"email" validate:"required"`
	Phone     string `json:"phone" form:"phone" validate:"required"`

	Position        string    `json:"position" form:"position" validate:"required"`
	Availability    string    `json:"availability" form:"availability" validate:"required"`
	Transportation  string    `json:"transportation" form:"transportation" validate:"required"`
	BackgroundCheck BoolField `json:"backgroundCheck" form:"backgroundCheck" validate:"required"`

	Address     string `json:"address" form:"address"`
	StartDate   string `json:"startDate" form:"startDate"`
	Experience  string `json:"experience" form:"experience"`
	Reference1  string `json:"reference1" form:"reference1"`
	Reference2  string `json:"reference2" form:"reference2"`
	CoverLetter string `json:"coverLetter" form:"coverLetter"`

	// Resume is filled from the multipart file part, never bound directly.
	Resume *ResumeMeta `json:"resume,omitempty" form:"-"`
}

func (r SubmitCareersRequest) toApplication() domain.CareerApplication {
	app := domain.CareerApplication{
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		Email:           r.Email,
		Phone:           r.Phone,
		Address:         r.Address,
		Position:        r.Position,
		Availability:    r.Availability,
		StartDate:       r.StartDate,
		Experience:      r.Experience,
		Transportation:  r.Transportation,
		Reference1:      r.Reference1,
		Reference2:      r.Reference2,
		CoverLetter:     r.CoverLetter,
		BackgroundCheck: r.BackgroundCheck.Bool(),
		Status:          domain.StatusPending,
	}
	if r.Resume != nil {
		app.ResumeName = r.Resume.Name
		app.ResumeSize = r.Resume.Size
		app.ResumeType = r.Resume.Type
	}
	return app
}

func (r SubmitCareersRequest) emailData() email.CareersEmailData {
	data := email.CareersEmailData{
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		Email:           r.Email,
		Phone:           r.Phone,
		Address:         r.Address,
		Position:        r.Position,
		Availability:    r.Availability,
		StartDate:       r.StartDate,
		Experience:      r.Experience,
		Transportation:  r.Transportation,
		Reference1:      r.Reference1,
		Reference2:      r.Reference2,
		CoverLetter:     r.CoverLetter,
		BackgroundCheck: r.BackgroundCheck.Bool(),
	}
	if r.Resume != nil {
		data.ResumeName = r.Resume.Name
		data.ResumeSize = r.Resume.Size
		data.ResumeType = r.Resume.Type
	}
	return data
}
