package models

import (
	"fmt"
	"time"
)

type InterviewStatus string

const (
	InterviewToConfirm InterviewStatus = "to-confirm"
	InterviewConfirmed InterviewStatus = "confirmed"
	InterviewPending   InterviewStatus = "pending"
	InterviewPostponed InterviewStatus = "postponed"
	InterviewCancelled InterviewStatus = "cancelled"
	InterviewDone      InterviewStatus = "done"
)

var InterviewStatuses = []InterviewStatus{
	InterviewToConfirm, InterviewConfirmed, InterviewPending,
	InterviewPostponed, InterviewCancelled, InterviewDone,
}

type InterviewType string

const (
	InterviewPhone     InterviewType = "phone"
	InterviewVideo     InterviewType = "video"
	InterviewOnsite    InterviewType = "onsite"
	InterviewTechnical InterviewType = "technical"
	InterviewHR        InterviewType = "hr"
)

type Interview struct {
	ID            string          `json:"id"`
	UserID        string          `json:"user_id"`
	ApplicationID *string         `json:"application_id"`
	Company       string          `json:"company"`
	Position      string          `json:"position"`
	Date          time.Time       `json:"date,omitzero"`
	Time          string          `json:"time"`
	Type          InterviewType   `json:"type"`
	Location      *string         `json:"location"`
	Interviewer   *string         `json:"interviewer"`
	Duration      int             `json:"duration,omitempty"`
	Status        InterviewStatus `json:"status,omitempty"`
	Notes         *string         `json:"notes"`
	MeetingLink   *string         `json:"meeting_link"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     *time.Time      `json:"updated_at"`
}

func (i Interview) Key() string { return i.ID }

func (i Interview) Clone() Interview {
	i.ApplicationID = clonePtr(i.ApplicationID)
	i.Location = clonePtr(i.Location)
	i.Interviewer = clonePtr(i.Interviewer)
	i.Notes = clonePtr(i.Notes)
	i.MeetingLink = clonePtr(i.MeetingLink)
	i.UpdatedAt = clonePtr(i.UpdatedAt)
	return i
}

// Start combines Date and the "HH:MM" Time in loc. A malformed Time yields midnight.
func (i Interview) Start(loc *time.Location) time.Time {
	y, m, d := i.Date.Date()
	var hh, mm int
	if _, err := fmt.Sscanf(i.Time, "%d:%d", &hh, &mm); err != nil {
		hh, mm = 0, 0
	}
	return time.Date(y, m, d, hh, mm, 0, 0, loc)
}

// InterviewLess orders by date, then time, ascending.
func InterviewLess(a, b Interview) bool {
	if !a.Date.Equal(b.Date) {
		return a.Date.Before(b.Date)
	}
	return a.Time < b.Time
}
