package models

import "time"

type ApplicationStatus string

const (
	StatusActive    ApplicationStatus = "active"
	StatusInterview ApplicationStatus = "interview"
	StatusOffer     ApplicationStatus = "offer"
	StatusRejected  ApplicationStatus = "rejected"
	StatusPending   ApplicationStatus = "pending"
)

// ApplicationStatuses lists every valid status in display order.
var ApplicationStatuses = []ApplicationStatus{StatusActive, StatusInterview, StatusOffer, StatusRejected, StatusPending}

// Application is a job application. Interviews and tasks may point at it by id.
type Application struct {
	ID            string            `json:"id"`
	UserID        string            `json:"user_id"`
	Company       string            `json:"company"`
	Position      string            `json:"position"`
	Location      *string           `json:"location"`
	Status        ApplicationStatus `json:"status,omitempty"`
	AppliedDate   *time.Time        `json:"applied_date"`
	SalaryMin     *int64            `json:"salary_min"`
	SalaryMax     *int64            `json:"salary_max"`
	Priority      Priority          `json:"priority,omitempty"`
	ContactPerson *string           `json:"contact_person"`
	ContactEmail  *string           `json:"contact_email"`
	JobURL        *string           `json:"job_url"`
	Notes         *string           `json:"notes"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     *time.Time        `json:"updated_at"`
}

func (a Application) Key() string { return a.ID }

// Clone returns a copy that shares no optional field with a.
func (a Application) Clone() Application {
	a.Location = clonePtr(a.Location)
	a.AppliedDate = clonePtr(a.AppliedDate)
	a.SalaryMin = clonePtr(a.SalaryMin)
	a.SalaryMax = clonePtr(a.SalaryMax)
	a.ContactPerson = clonePtr(a.ContactPerson)
	a.ContactEmail = clonePtr(a.ContactEmail)
	a.JobURL = clonePtr(a.JobURL)
	a.Notes = clonePtr(a.Notes)
	a.UpdatedAt = clonePtr(a.UpdatedAt)
	return a
}

// ApplicationLess orders newest first.
func ApplicationLess(a, b Application) bool {
	return a.CreatedAt.After(b.CreatedAt)
}
