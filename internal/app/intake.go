package app

import (
	"io"
	"net/url"
	"regexp"
	"strings"

	"github.com/Sumukwo12/recruitment-portal-sub000/internal/common"
	"github.com/Sumukwo12/recruitment-portal-sub000/internal/domain/job"
)

// Intake steps. The public form collects an application in four steps and a
// step may only be left once every required field in it validates. Submit
// re-runs all of them server-side; client-side checks are advisory.
type Step int

const (
	StepPersonal   Step = 1
	StepDocuments  Step = 2
	StepScreening  Step = 3
	StepAdditional Step = 4
)

// Submission is the complete intake payload.
type Submission struct {
	JobID          common.UUID
	FirstName      string
	LastName       string
	Email          string
	Phone          string
	Address        string
	ResumeName     string
	Resume         io.Reader
	CoverLetter    string
	PortfolioURL   string
	LinkedInURL    string
	ReferralSource string
	AdditionalInfo string
	Answers        map[common.UUID]string
}

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidateStep checks one step's fields. questions is only consulted for the
// screening step.
func ValidateStep(step Step, s Submission, questions []job.Question) map[string]string {
	fields := map[string]string{}
	switch step {
	case StepPersonal:
		if strings.TrimSpace(s.FirstName) == "" {
			fields["first_name"] = "first name is required"
		}
		if strings.TrimSpace(s.LastName) == "" {
			fields["last_name"] = "last name is required"
		}
		email := strings.TrimSpace(s.Email)
		if email == "" {
			fields["email"] = "email is required"
		} else if !emailPattern.MatchString(email) {
			fields["email"] = "email is not valid"
		}
		if strings.TrimSpace(s.Phone) == "" {
			fields["phone"] = "phone is required"
		}
	case StepDocuments:
		if s.Resume == nil || strings.TrimSpace(s.ResumeName) == "" {
			fields["resume"] = "a resume file is required"
		}
		if message, ok := invalidURL(s.PortfolioURL); ok {
			fields["portfolio_url"] = message
		}
		if message, ok := invalidURL(s.LinkedInURL); ok {
			fields["linkedin_url"] = message
		}
	case StepScreening:
		for _, q := range questions {
			answer := strings.TrimSpace(s.Answers[q.ID])
			if answer == "" {
				if q.Required {
					fields["screening_"+q.ID.String()] = "this question is required"
				}
				continue
			}
			if q.Type == job.QuestionMultipleChoice && !containsOption(q.Options, answer) {
				fields["screening_"+q.ID.String()] = "answer must be one of the listed options"
			}
			if q.Type == job.QuestionYesNo && !strings.EqualFold(answer, "yes") && !strings.EqualFold(answer, "no") {
				fields["screening_"+q.ID.String()] = "answer must be yes or no"
			}
		}
	case StepAdditional:
		// Free text only; nothing is required here.
	}
	return fields
}

// ValidateThrough runs every step up to and including the given one and
// merges the results. This is the forward-transition guard: step N is
// reachable only when steps 1..N-1 are clean.
func ValidateThrough(step Step, s Submission, questions []job.Question) map[string]string {
	fields := map[string]string{}
	for current := StepPersonal; current <= step; current++ {
		for key, message := range ValidateStep(current, s, questions) {
			fields[key] = message
		}
	}
	return fields
}

func invalidURL(value string) (string, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", false
	}
	parsed, err := url.Parse(value)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return "must be an http(s) URL", true
	}
	return "", false
}

func containsOption(options []string, answer string) bool {
	for _, option := range options {
		if strings.EqualFold(option, answer) {
			return true
		}
	}
	return false
}
