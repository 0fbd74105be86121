package usecase_test

import (
	"context"
	"testing"

	"emplynix-backend/internal/domain"
	"emplynix-backend/internal/usecase"
	"emplynix-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func validJob() *domain.Job {
	return &domain.Job{
		Title:        "Senior Backend Engineer",
		Company:      "Acme Corp",
		Location:     "Remote",
		Type:         domain.JobTypeFullTime,
		Salary:       "$120k - $150k",
		Experience:   "5+ years",
		Description:  "Build and operate backend services.",
		Requirements: []string{"Go", "PostgreSQL"},
		Benefits:     []string{"Health insurance"},
	}
}

func TestCreateJob(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults status to active and stamps the poster", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo)

		job := validJob()
		mockRepo.On("Create", ctx, job).Return(nil).Run(func(args mock.Arguments) {
			created := args.Get(1).(*domain.Job)
			created.ID = 10
			assert.Equal(t, domain.JobStatusActive, created.Status)
			assert.Equal(t, int64(3), created.PostedBy)
			assert.False(t, created.CreatedAt.IsZero())
		})
		mockRepo.On("GetByID", ctx, int64(10)).Return(&domain.Job{ID: 10, Title: job.Title, PostedByName: "Admin User"}, nil)

		created, err := uc.CreateJob(ctx, 3, job)
		assert.NoError(t, err)
		assert.Equal(t, int64(10), created.ID)
		assert.Equal(t, "Admin User", created.PostedByName)
		mockRepo.AssertExpectations(t)
	})

	t.Run("rejects unknown job type without persisting", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo)

		job := validJob()
		job.Type = "Freelance"

		_, err := uc.CreateJob(ctx, 3, job)
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 400, appErr.Code)
		assert.NotEmpty(t, appErr.Details)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("collects every missing field", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo)

		_, err := uc.CreateJob(ctx, 3, &domain.Job{Type: domain.JobTypeContract})
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 400, appErr.Code)
		assert.Contains(t, appErr.Details, "Title is required")
		assert.Contains(t, appErr.Details, "Company is required")
		assert.Contains(t, appErr.Details, "Description is required")
	})
}

func TestUpdateJob(t *testing.T) {
	ctx := context.Background()

	t.Run("propagates not found from the repository", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo)

		job := validJob()
		job.ID = 99
		job.Status = domain.JobStatusClosed
		mockRepo.On("Update", ctx, job).Return(domain.ErrNotFound)

		_, err := uc.UpdateJob(ctx, job)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("re-reads after a successful update", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo)

		job := validJob()
		job.ID = 5
		job.Status = domain.JobStatusInactive
		mockRepo.On("Update", ctx, job).Return(nil)
		mockRepo.On("GetByID", ctx, int64(5)).Return(&domain.Job{ID: 5, Status: domain.JobStatusInactive}, nil)

		updated, err := uc.UpdateJob(ctx, job)
		assert.NoError(t, err)
		assert.Equal(t, domain.JobStatusInactive, updated.Status)
		mockRepo.AssertExpectations(t)
	})
}

func TestDeleteJob(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockJobRepo)
	uc := usecase.NewJobUsecase(mockRepo)

	mockRepo.On("Delete", ctx, int64(4)).Return(nil)
	mockRepo.On("Delete", ctx, int64(99)).Return(domain.ErrNotFound)

	assert.NoError(t, uc.DeleteJob(ctx, 4))
	assert.ErrorIs(t, uc.DeleteJob(ctx, 99), domain.ErrNotFound)
}
