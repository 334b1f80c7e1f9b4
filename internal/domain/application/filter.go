package application

import (
	"time"

	"github.com/Sumukwo12/recruitment-portal-sub000/internal/common"
)

const StatusFilterAll = "all"

// Filter is the admin search over applications. Every field is optional and
// the zero value matches everything.
type Filter struct {
	JobID      common.UUID
	Status     string // canonical status or "all"/"" to disable
	Search     string // substring over first/last name, email, phone
	DateFrom   time.Time
	DateTo     time.Time
	Experience string // entry | mid | senior
	Education  string // high_school .. doctorate
	Location   string // substring over location-kind answers
}
