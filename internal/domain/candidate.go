package domain

import (
	"context"
	"time"
)

// Candidate status labels. Every label is reachable from every other in a
// single admin action; "applied" is the entry state and nothing is terminal.
const (
	CandidateStatusApplied   = "applied"
	CandidateStatusScreening = "screening"
	CandidateStatusInterview = "interview"
	CandidateStatusHired     = "hired"
	CandidateStatusRejected  = "rejected"
)

func ValidCandidateStatus(s string) bool {
	switch s {
	case CandidateStatusApplied, CandidateStatusScreening, CandidateStatusInterview,
		CandidateStatusHired, CandidateStatusRejected:
		return true
	}
	return false
}

// Candidate is a single application against exactly one job posting.
type Candidate struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Contact        string `json:"contact"`
	NoticePeriod   int    `json:"noticePeriod"`
	Experience     int    `json:"experience"`
	CurrentCTC     string `json:"currentCTC"`
	ExpectedCTC    string `json:"expectedCTC"`
	Qualification  string `json:"qualification"`
	ResumeURL      string `json:"resumeUrl"`
	ResumeFileName string `json:"resumeFileName"`
	JobID          int64  `json:"jobId"`

	// Resolved from the jobs table on reads
	JobTitle   string `json:"jobTitle,omitempty"`
	JobCompany string `json:"jobCompany,omitempty"`

	Status      string    `json:"status"`
	AppliedDate time.Time `json:"appliedDate"`
}

type CandidateRepository interface {
	Create(ctx context.Context, candidate *Candidate) error
	GetByID(ctx context.Context, id int64) (*Candidate, error)
	// Fetch returns candidates newest-applied-first; jobID 0 means no filter.
	Fetch(ctx context.Context, jobID int64) ([]Candidate, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
	Delete(ctx context.Context, id int64) error
}

type CandidateUsecase interface {
	SubmitApplication(ctx context.Context, candidate *Candidate) (*Candidate, error)
	ListCandidates(ctx context.Context, jobID int64) ([]Candidate, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*Candidate, error)
	DeleteCandidate(ctx context.Context, id int64) error
}
