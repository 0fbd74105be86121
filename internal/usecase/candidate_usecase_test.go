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

func validCandidate() *domain.Candidate {
	return &domain.Candidate{
		Name:           "Jane Doe",
		Email:          "jane@example.com",
		Contact:        "+1 555 0100",
		NoticePeriod:   30,
		Experience:     4,
		CurrentCTC:     "8 LPA",
		ExpectedCTC:    "12 LPA",
		Qualification:  "B.Tech",
		ResumeURL:      "/uploads/abc.pdf",
		ResumeFileName: "jane-doe-resume.pdf",
		JobID:          2,
	}
}

func TestSubmitApplication(t *testing.T) {
	ctx := context.Background()

	t.Run("stamps applied status and date", func(t *testing.T) {
		mockCandidates := new(MockCandidateRepo)
		mockJobs := new(MockJobRepo)
		uc := usecase.NewCandidateUsecase(mockCandidates, mockJobs)

		candidate := validCandidate()
		mockJobs.On("GetByID", ctx, int64(2)).Return(&domain.Job{ID: 2, Title: "Backend Engineer"}, nil)
		mockCandidates.On("Create", ctx, candidate).Return(nil).Run(func(args mock.Arguments) {
			created := args.Get(1).(*domain.Candidate)
			created.ID = 8
			assert.Equal(t, domain.CandidateStatusApplied, created.Status)
			assert.False(t, created.AppliedDate.IsZero())
		})
		mockCandidates.On("GetByID", ctx, int64(8)).Return(&domain.Candidate{
			ID:       8,
			Status:   domain.CandidateStatusApplied,
			JobID:    2,
			JobTitle: "Backend Engineer",
		}, nil)

		created, err := uc.SubmitApplication(ctx, candidate)
		assert.NoError(t, err)
		assert.Equal(t, int64(8), created.ID)
		assert.Equal(t, "Backend Engineer", created.JobTitle)
		mockCandidates.AssertExpectations(t)
	})

	t.Run("rejects applications for unknown jobs", func(t *testing.T) {
		mockCandidates := new(MockCandidateRepo)
		mockJobs := new(MockJobRepo)
		uc := usecase.NewCandidateUsecase(mockCandidates, mockJobs)

		candidate := validCandidate()
		candidate.JobID = 404
		mockJobs.On("GetByID", ctx, int64(404)).Return(nil, domain.ErrNotFound)

		_, err := uc.SubmitApplication(ctx, candidate)
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 400, appErr.Code)
		mockCandidates.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestUpdateCandidateStatus(t *testing.T) {
	ctx := context.Background()

	statuses := []string{
		domain.CandidateStatusApplied,
		domain.CandidateStatusScreening,
		domain.CandidateStatusInterview,
		domain.CandidateStatusHired,
		domain.CandidateStatusRejected,
	}

	t.Run("every label is reachable from every other", func(t *testing.T) {
		for _, from := range statuses {
			for _, to := range statuses {
				mockCandidates := new(MockCandidateRepo)
				mockJobs := new(MockJobRepo)
				uc := usecase.NewCandidateUsecase(mockCandidates, mockJobs)

				mockCandidates.On("UpdateStatus", ctx, int64(1), to).Return(nil)
				mockCandidates.On("GetByID", ctx, int64(1)).Return(&domain.Candidate{ID: 1, Status: to}, nil)

				updated, err := uc.UpdateStatus(ctx, 1, to)
				assert.NoError(t, err, "moving %s -> %s", from, to)
				assert.Equal(t, to, updated.Status)
			}
		}
	})

	t.Run("rejects labels outside the set", func(t *testing.T) {
		mockCandidates := new(MockCandidateRepo)
		mockJobs := new(MockJobRepo)
		uc := usecase.NewCandidateUsecase(mockCandidates, mockJobs)

		for _, bad := range []string{"", "Applied", "onboarded", "hired "} {
			_, err := uc.UpdateStatus(ctx, 1, bad)
			var appErr *apperror.AppError
			assert.ErrorAs(t, err, &appErr, "label %q", bad)
			assert.Equal(t, 400, appErr.Code)
		}
		mockCandidates.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("propagates not found", func(t *testing.T) {
		mockCandidates := new(MockCandidateRepo)
		mockJobs := new(MockJobRepo)
		uc := usecase.NewCandidateUsecase(mockCandidates, mockJobs)

		mockCandidates.On("UpdateStatus", ctx, int64(77), domain.CandidateStatusHired).Return(domain.ErrNotFound)

		_, err := uc.UpdateStatus(ctx, 77, domain.CandidateStatusHired)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestListCandidates(t *testing.T) {
	ctx := context.Background()
	mockCandidates := new(MockCandidateRepo)
	mockJobs := new(MockJobRepo)
	uc := usecase.NewCandidateUsecase(mockCandidates, mockJobs)

	all := []domain.Candidate{{ID: 1, JobID: 2}, {ID: 2, JobID: 3}}
	filtered := []domain.Candidate{{ID: 1, JobID: 2}}
	mockCandidates.On("Fetch", ctx, int64(0)).Return(all, nil)
	mockCandidates.On("Fetch", ctx, int64(2)).Return(filtered, nil)

	got, err := uc.ListCandidates(ctx, 0)
	assert.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = uc.ListCandidates(ctx, 2)
	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, int64(2), got[0].JobID)
}
