package job

import (
	"time"

	"github.com/Sumukwo12/recruitment-portal-sub000/internal/common"
)

type Status string

const (
	StatusDraft  Status = "draft"
	StatusOpen   Status = "open"
	StatusClosed Status = "closed"
)

type Job struct {
	ID               common.UUID `json:"id"`
	Title            string      `json:"title"`
	Company          string      `json:"company"`
	Location         string      `json:"location"`
	Type             string      `json:"type"`
	SalaryMin        int64       `json:"salary_min"`
	SalaryMax        int64       `json:"salary_max"`
	Description      string      `json:"description"`
	Requirements     []string    `json:"requirements"`
	Responsibilities []string    `json:"responsibilities"`
	Benefits         []string    `json:"benefits"`
	Deadline         time.Time   `json:"deadline"`
	Status           Status      `json:"status"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
}

// Accepting returns whether the job takes new applications at the given
// instant: it must be open and its deadline must not have passed. The
// deadline is a date; a job stops accepting at the end of that day.
func (j Job) Accepting(now time.Time) bool {
	if j.Status != StatusOpen {
		return false
	}
	if j.Deadline.IsZero() {
		return true
	}
	return !j.Deadline.Before(now.UTC().Truncate(24 * time.Hour))
}

// Summary is a job joined with its open application count for admin listings.
type Summary struct {
	Job
	ApplicationCount int `json:"application_count"`
}

type PublicFilter struct {
	Search   string
	Location string
	Type     string
}
