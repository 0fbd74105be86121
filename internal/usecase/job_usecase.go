package usecase

import (
	"context"
	"time"

	"emplynix-backend/internal/domain"
	"emplynix-backend/pkg/apperror"
)

type jobUsecase struct {
	jobRepo domain.JobRepository
}

func NewJobUsecase(jobRepo domain.JobRepository) domain.JobUsecase {
	return &jobUsecase{jobRepo: jobRepo}
}

// validateJob applies the schema rules shared by create and update.
func validateJob(job *domain.Job) error {
	var problems []string
	if job.Title == "" {
		problems = append(problems, "Title is required")
	}
	if job.Company == "" {
		problems = append(problems, "Company is required")
	}
	if job.Location == "" {
		problems = append(problems, "Location is required")
	}
	if job.Experience == "" {
		problems = append(problems, "Experience is required")
	}
	if job.Description == "" {
		problems = append(problems, "Description is required")
	}
	if !domain.ValidJobType(job.Type) {
		problems = append(problems, "Job Type must be one of: Full-time Part-time Contract Remote")
	}
	if !domain.ValidJobStatus(job.Status) {
		problems = append(problems, "Status must be one of: active inactive closed")
	}
	if len(problems) > 0 {
		return apperror.Validation(problems)
	}
	return nil
}

func (u *jobUsecase) CreateJob(ctx context.Context, userID int64, job *domain.Job) (*domain.Job, error) {
	job.PostedBy = userID
	if job.Status == "" {
		job.Status = domain.JobStatusActive
	}
	if err := validateJob(job); err != nil {
		return nil, err
	}

	job.CreatedAt = time.Now()
	if err := u.jobRepo.Create(ctx, job); err != nil {
		return nil, err
	}

	// Re-read so the response carries the resolved poster name/email.
	return u.jobRepo.GetByID(ctx, job.ID)
}

func (u *jobUsecase) GetJobDetails(ctx context.Context, id int64) (*domain.Job, error) {
	return u.jobRepo.GetByID(ctx, id)
}

func (u *jobUsecase) ListJobs(ctx context.Context) ([]domain.Job, error) {
	return u.jobRepo.Fetch(ctx)
}

func (u *jobUsecase) UpdateJob(ctx context.Context, job *domain.Job) (*domain.Job, error) {
	if err := validateJob(job); err != nil {
		return nil, err
	}
	if err := u.jobRepo.Update(ctx, job); err != nil {
		return nil, err
	}
	return u.jobRepo.GetByID(ctx, job.ID)
}

func (u *jobUsecase) DeleteJob(ctx context.Context, id int64) error {
	return u.jobRepo.Delete(ctx, id)
}
