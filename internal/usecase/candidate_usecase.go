package usecase

import (
	"context"
	"errors"
	"time"

	"emplynix-backend/internal/domain"
	"emplynix-backend/pkg/apperror"
)

type candidateUsecase struct {
	candidateRepo domain.CandidateRepository
	jobRepo       domain.JobRepository
}

func NewCandidateUsecase(candidateRepo domain.CandidateRepository, jobRepo domain.JobRepository) domain.CandidateUsecase {
	return &candidateUsecase{
		candidateRepo: candidateRepo,
		jobRepo:       jobRepo,
	}
}

func (u *candidateUsecase) SubmitApplication(ctx context.Context, candidate *domain.Candidate) (*domain.Candidate, error) {
	// The job must exist; its status is deliberately not checked.
	if _, err := u.jobRepo.GetByID(ctx, candidate.JobID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.BadRequest("Job not found for this application")
		}
		return nil, err
	}

	candidate.Status = domain.CandidateStatusApplied
	candidate.AppliedDate = time.Now()

	if err := u.candidateRepo.Create(ctx, candidate); err != nil {
		return nil, err
	}

	// Re-read so the response carries the job title/company.
	return u.candidateRepo.GetByID(ctx, candidate.ID)
}

func (u *candidateUsecase) ListCandidates(ctx context.Context, jobID int64) ([]domain.Candidate, error) {
	return u.candidateRepo.Fetch(ctx, jobID)
}

func (u *candidateUsecase) UpdateStatus(ctx context.Context, id int64, status string) (*domain.Candidate, error) {
	// Membership in the five-label set is the only rule: any label is
	// reachable from any other, including moving hired back to applied.
	if !domain.ValidCandidateStatus(status) {
		return nil, apperror.BadRequest("Invalid status")
	}

	if err := u.candidateRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	return u.candidateRepo.GetByID(ctx, id)
}

func (u *candidateUsecase) DeleteCandidate(ctx context.Context, id int64) error {
	return u.candidateRepo.Delete(ctx, id)
}
