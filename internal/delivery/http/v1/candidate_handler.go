package v1

import (
	"net/http"
	"strconv"

	"emplynix-backend/internal/delivery/http/response"
	"emplynix-backend/internal/domain"
	"emplynix-backend/pkg/apperror"
	"emplynix-backend/pkg/upload"
	"emplynix-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

type CandidateHandler struct {
	candidateUC domain.CandidateUsecase
	resumes     *upload.ResumeStore
}

func NewCandidateHandler(public *gin.RouterGroup, protected *gin.RouterGroup, candidateUC domain.CandidateUsecase, resumes *upload.ResumeStore) {
	handler := &CandidateHandler{
		candidateUC: candidateUC,
		resumes:     resumes,
	}

	// PUBLIC route - the single unauthenticated write path into the system
	public.POST("/candidates/apply", handler.Apply)

	// PROTECTED routes - admin triage
	protectedCandidates := protected.Group("/candidates")
	{
		protectedCandidates.GET("", handler.List)
		protectedCandidates.PUT("/:id", handler.UpdateStatus)
		protectedCandidates.DELETE("/:id", handler.Delete)
	}
}

type ApplyRequest struct {
	Name          string `form:"name" binding:"required"`
	Email         string `form:"email" binding:"required,email"`
	Contact       string `form:"contact" binding:"required"`
	NoticePeriod  int    `form:"noticePeriod" binding:"gte=0"`
	Experience    int    `form:"experience" binding:"gte=0"`
	CurrentCTC    string `form:"currentCTC" binding:"required"`
	ExpectedCTC   string `form:"expectedCTC" binding:"required"`
	Qualification string `form:"qualification" binding:"required"`
	JobID         int64  `form:"jobId" binding:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// Apply godoc
// @Summary      Submit a job application
// @Description  Public multipart submission with a mandatory resume attachment
// @Tags         candidates
// @Accept       multipart/form-data
// @Produce      json
// @Param        resume  formData  file  true  "Resume file"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /candidates/apply [post]
func (h *CandidateHandler) Apply(c *gin.Context) {
	// Resume first: its absence fails the submission regardless of the
	// validity of the remaining fields.
	file, err := c.FormFile("resume")
	if err != nil {
		c.Error(apperror.BadRequest("Resume is required"))
		return
	}

	var req ApplyRequest
	if err := c.ShouldBind(&req); err != nil {
		c.Error(apperror.Validation(validation.FormatValidationErrors(err)))
		return
	}

	resumeURL, err := h.resumes.Save(file)
	if err != nil {
		c.Error(err)
		return
	}

	candidate := &domain.Candidate{
		Name:           req.Name,
		Email:          req.Email,
		Contact:        req.Contact,
		NoticePeriod:   req.NoticePeriod,
		Experience:     req.Experience,
		CurrentCTC:     req.CurrentCTC,
		ExpectedCTC:    req.ExpectedCTC,
		Qualification:  req.Qualification,
		ResumeURL:      resumeURL,
		ResumeFileName: file.Filename,
		JobID:          req.JobID,
	}

	created, err := h.candidateUC.SubmitApplication(c.Request.Context(), candidate)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Application submitted successfully", gin.H{
		"candidate": created,
	})
}

// List godoc
// @Summary      List candidates
// @Description  Get applications newest-first, optionally restricted to one job
// @Tags         candidates
// @Produce      json
// @Param        jobId  query     int  false  "Job ID filter"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /candidates [get]
// @Security     BearerAuth
func (h *CandidateHandler) List(c *gin.Context) {
	var jobID int64
	if raw := c.Query("jobId"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.Error(apperror.BadRequest("Invalid jobId filter"))
			return
		}
		jobID = parsed
	}

	candidates, err := h.candidateUC.ListCandidates(c.Request.Context(), jobID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidate list", candidates)
}

// UpdateStatus godoc
// @Summary      Update candidate status
// @Description  Move a candidate to any of the five triage labels
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        id      path      int                  true  "Candidate ID"
// @Param        status  body      UpdateStatusRequest  true  "New status"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /candidates/{id} [put]
// @Security     BearerAuth
func (h *CandidateHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation(validation.FormatValidationErrors(err)))
		return
	}

	candidate, err := h.candidateUC.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidate status updated", candidate)
}

// Delete godoc
// @Summary      Delete a candidate
// @Tags         candidates
// @Produce      json
// @Param        id   path      int  true  "Candidate ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /candidates/{id} [delete]
// @Security     BearerAuth
func (h *CandidateHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	if err := h.candidateUC.DeleteCandidate(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidate deleted successfully", nil)
}
