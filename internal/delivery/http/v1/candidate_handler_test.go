package v1_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"emplynix-backend/internal/delivery/http/middleware"
	v1 "emplynix-backend/internal/delivery/http/v1"
	"emplynix-backend/internal/domain"
	"emplynix-backend/pkg/upload"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCandidateUsecase struct {
	mock.Mock
}

func (m *MockCandidateUsecase) SubmitApplication(ctx context.Context, candidate *domain.Candidate) (*domain.Candidate, error) {
	args := m.Called(ctx, candidate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Candidate), args.Error(1)
}

func (m *MockCandidateUsecase) ListCandidates(ctx context.Context, jobID int64) ([]domain.Candidate, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Candidate), args.Error(1)
}

func (m *MockCandidateUsecase) UpdateStatus(ctx context.Context, id int64, status string) (*domain.Candidate, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Candidate), args.Error(1)
}

func (m *MockCandidateUsecase) DeleteCandidate(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func newCandidateTestRouter(t *testing.T, uc domain.CandidateUsecase) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	resumes, err := upload.NewResumeStore(t.TempDir())
	require.NoError(t, err)

	r := gin.New()
	r.Use(middleware.ErrorHandler())
	api := r.Group("/api")
	// Auth is exercised separately; the protected group here is bare.
	v1.NewCandidateHandler(api, api.Group(""), uc, resumes)
	return r
}

func applyForm(t *testing.T, withResume bool) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)

	fields := map[string]string{
		"name":          "Jane Doe",
		"email":         "jane@example.com",
		"contact":       "+1 555 0100",
		"noticePeriod":  "30",
		"experience":    "4",
		"currentCTC":    "8 LPA",
		"expectedCTC":   "12 LPA",
		"qualification": "B.Tech",
		"jobId":         "2",
	}
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if withResume {
		part, err := w.CreateFormFile("resume", "jane-doe-resume.pdf")
		require.NoError(t, err)
		_, err = part.Write([]byte("%PDF-1.4 dummy"))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

func TestApplyRequiresResume(t *testing.T) {
	mockUC := new(MockCandidateUsecase)
	r := newCandidateTestRouter(t, mockUC)

	body, contentType := applyForm(t, false)
	req := httptest.NewRequest(http.MethodPost, "/api/candidates/apply", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Resume is required")
	mockUC.AssertNotCalled(t, "SubmitApplication", mock.Anything, mock.Anything)
}

func TestApplyCreatesCandidate(t *testing.T) {
	mockUC := new(MockCandidateUsecase)
	mockUC.On("SubmitApplication", mock.Anything, mock.AnythingOfType("*domain.Candidate")).
		Return(&domain.Candidate{ID: 8, Status: domain.CandidateStatusApplied, JobID: 2}, nil).
		Run(func(args mock.Arguments) {
			candidate := args.Get(1).(*domain.Candidate)
			assert.Equal(t, "Jane Doe", candidate.Name)
			assert.Equal(t, int64(2), candidate.JobID)
			assert.Equal(t, "jane-doe-resume.pdf", candidate.ResumeFileName)
			assert.True(t, strings.HasPrefix(candidate.ResumeURL, upload.PublicPrefix+"/"))
		})
	r := newCandidateTestRouter(t, mockUC)

	body, contentType := applyForm(t, true)
	req := httptest.NewRequest(http.MethodPost, "/api/candidates/apply", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Candidate domain.Candidate `json:"candidate"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, int64(8), resp.Data.Candidate.ID)
	assert.Equal(t, domain.CandidateStatusApplied, resp.Data.Candidate.Status)
	mockUC.AssertExpectations(t)
}

func TestUpdateStatusEndpoint(t *testing.T) {
	t.Run("accepts a valid label", func(t *testing.T) {
		mockUC := new(MockCandidateUsecase)
		mockUC.On("UpdateStatus", mock.Anything, int64(8), domain.CandidateStatusInterview).
			Return(&domain.Candidate{ID: 8, Status: domain.CandidateStatusInterview}, nil)
		r := newCandidateTestRouter(t, mockUC)

		req := httptest.NewRequest(http.MethodPut, "/api/candidates/8",
			strings.NewReader(`{"status":"interview"}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"interview"`)
	})

	t.Run("rejects a non-numeric id", func(t *testing.T) {
		mockUC := new(MockCandidateUsecase)
		r := newCandidateTestRouter(t, mockUC)

		req := httptest.NewRequest(http.MethodPut, "/api/candidates/abc",
			strings.NewReader(`{"status":"interview"}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockUC.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("maps missing candidates to 404", func(t *testing.T) {
		mockUC := new(MockCandidateUsecase)
		mockUC.On("UpdateStatus", mock.Anything, int64(99), domain.CandidateStatusHired).
			Return(nil, domain.ErrNotFound)
		r := newCandidateTestRouter(t, mockUC)

		req := httptest.NewRequest(http.MethodPut, "/api/candidates/99",
			strings.NewReader(`{"status":"hired"}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestListCandidatesEndpoint(t *testing.T) {
	t.Run("passes the jobId filter through", func(t *testing.T) {
		mockUC := new(MockCandidateUsecase)
		mockUC.On("ListCandidates", mock.Anything, int64(2)).
			Return([]domain.Candidate{{ID: 1, JobID: 2}}, nil)
		r := newCandidateTestRouter(t, mockUC)

		req := httptest.NewRequest(http.MethodGet, "/api/candidates?jobId=2", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		mockUC.AssertExpectations(t)
	})

	t.Run("rejects a malformed jobId filter", func(t *testing.T) {
		mockUC := new(MockCandidateUsecase)
		r := newCandidateTestRouter(t, mockUC)

		req := httptest.NewRequest(http.MethodGet, "/api/candidates?jobId=two", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockUC.AssertNotCalled(t, "ListCandidates", mock.Anything, mock.Anything)
	})
}
