package application

import (
	"strings"
	"time"

	"github.com/Sumukwo12/recruitment-portal-sub000/internal/common"
)

type Status string

const (
	StatusPending     Status = "pending"
	StatusReviewed    Status = "reviewed"
	StatusShortlisted Status = "shortlisted"
	StatusRejected    Status = "rejected"
)

// NormalizeStatus maps the status spellings that accumulated across admin
// surfaces onto the canonical lowercase set.
func NormalizeStatus(status Status) Status {
	normalized := Status(strings.ToLower(strings.TrimSpace(string(status))))
	switch normalized {
	case "new", "submitted":
		return StatusPending
	case "in_review", "review":
		return StatusReviewed
	case "shortlist":
		return StatusShortlisted
	default:
		return normalized
	}
}

func KnownStatus(status Status) bool {
	switch status {
	case StatusPending, StatusReviewed, StatusShortlisted, StatusRejected:
		return true
	default:
		return false
	}
}

type Application struct {
	ID             common.UUID `json:"id"`
	JobID          common.UUID `json:"job_id"`
	FirstName      string      `json:"first_name"`
	LastName       string      `json:"last_name"`
	Email          string      `json:"email"`
	Phone          string      `json:"phone"`
	Address        string      `json:"address"`
	ResumePath     string      `json:"resume_path"`
	CoverLetter    string      `json:"cover_letter,omitempty"`
	PortfolioURL   string      `json:"portfolio_url,omitempty"`
	LinkedInURL    string      `json:"linkedin_url,omitempty"`
	ReferralSource string      `json:"referral_source,omitempty"`
	AdditionalInfo string      `json:"additional_info,omitempty"`
	Status         Status      `json:"status"`
	AppliedAt      time.Time   `json:"applied_at"`
}

// Answer is one screening answer. A row exists only for questions belonging
// to the same job as the application; the intake service enforces this.
type Answer struct {
	ApplicationID common.UUID `json:"application_id"`
	QuestionID    common.UUID `json:"question_id"`
	Answer        string      `json:"answer"`
}

// AnswerDetail joins an answer with its question's text for admin display,
// including answers to questions that have since been retired.
type AnswerDetail struct {
	QuestionID   common.UUID `json:"question_id"`
	QuestionText string      `json:"question_text"`
	Answer       string      `json:"answer"`
}

// Row is an application joined with its job's title and company, the unit of
// admin listings and CSV export.
type Row struct {
	Application
	JobTitle string `json:"job_title"`
	Company  string `json:"company"`
}
