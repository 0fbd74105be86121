package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

// Job type values
const (
	JobTypeFullTime = "Full-time"
	JobTypePartTime = "Part-time"
	JobTypeContract = "Contract"
	JobTypeRemote   = "Remote"
)

// Job status values
const (
	JobStatusActive   = "active"
	JobStatusInactive = "inactive"
	JobStatusClosed   = "closed"
)

func ValidJobType(t string) bool {
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeRemote:
		return true
	}
	return false
}

func ValidJobStatus(s string) bool {
	switch s {
	case JobStatusActive, JobStatusInactive, JobStatusClosed:
		return true
	}
	return false
}

type Job struct {
	ID           int64    `json:"id"`
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Location     string   `json:"location"`
	Type         string   `json:"type"`
	Salary       string   `json:"salary"`
	Experience   string   `json:"experience"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements"`
	Benefits     []string `json:"benefits"`
	Status       string   `json:"status"`
	PostedBy     int64    `json:"postedBy"`

	// Resolved from the users table on reads
	PostedByName  string `json:"postedByName,omitempty"`
	PostedByEmail string `json:"postedByEmail,omitempty"`

	CreatedAt time.Time `json:"createdAt"`

	// Derived from the live candidate count at read time, never stored.
	ApplicationCount int64 `json:"applicationCount"`
}

type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	GetByID(ctx context.Context, id int64) (*Job, error)
	Fetch(ctx context.Context) ([]Job, error)
	Update(ctx context.Context, job *Job) error
	Delete(ctx context.Context, id int64) error
}

type JobUsecase interface {
	CreateJob(ctx context.Context, userID int64, job *Job) (*Job, error)
	GetJobDetails(ctx context.Context, id int64) (*Job, error)
	ListJobs(ctx context.Context) ([]Job, error)
	UpdateJob(ctx context.Context, job *Job) (*Job, error)
	DeleteJob(ctx context.Context, id int64) error
}
