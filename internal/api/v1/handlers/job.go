package handlers

import (
	"errors"

	fiber "github.com/gofiber/fiber/v2"

	"github.com/jobdeck/jobdeck/internal/logger"
	"github.com/jobdeck/jobdeck/internal/services"
)

// ErrMsgInvalidReqBody is returned when the request body cannot be parsed
const ErrMsgInvalidReqBody = "Invalid request body."

// JobHandler handles HTTP requests for job lifecycle operations
type JobHandler struct {
	service *services.Job
}

// NewJobHandler creates a new job handler instance
func NewJobHandler(s *services.Job) *JobHandler {
	return &JobHandler{service: s}
}

// CreateJobRequest is the body of the create-job endpoint
type CreateJobRequest struct {
	Description string `json:"description"`
	Location    string `json:"location"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
}

// UpdateJobInfoRequest is the body of the update-job-info endpoint
type UpdateJobInfoRequest struct {
	JobID       string `json:"jobId"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
}

// BatchUpdateRequest is the body of the update-job-statuses endpoint
type BatchUpdateRequest struct {
	JobIDs []string `json:"jobIds"`
	Status string   `json:"status"`
}

// JobIDRequest is the body of the archive-job and unarchive-job endpoints
type JobIDRequest struct {
	JobID string `json:"jobId"`
}

// CreateJob handles the request to create a new job
func (h *JobHandler) CreateJob(c *fiber.Ctx) error {
	var req CreateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(msg(ErrMsgInvalidReqBody))
	}

	job, err := h.service.Create(c.Context(), services.CreateParams{
		Description: req.Description,
		Location:    req.Location,
		Priority:    req.Priority,
		Status:      req.Status,
	})
	if err != nil {
		var vErr *services.ValidationError
		if errors.As(err, &vErr) {
			return c.Status(fiber.StatusBadRequest).JSON(msg(vErr.Msg))
		}
		logger.ErrorWithFields("Error saving job", map[string]interface{}{"error": err.Error()})
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Message: "An error occurred while creating the job.",
			Error:   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(JobResponse{
		Message: "The job has been successfully created.",
		Job:     job,
	})
}

// ListJobs handles the request to list active jobs with optional status filtering
func (h *JobHandler) ListJobs(c *fiber.Ctx) error {
	jobs, err := h.service.List(c.Context(), c.Query("status"))
	if err != nil {
		var vErr *services.ValidationError
		if errors.As(err, &vErr) {
			return c.Status(fiber.StatusBadRequest).JSON(msg(vErr.Msg))
		}
		logger.ErrorWithFields("Error fetching jobs", map[string]interface{}{"error": err.Error()})
		return c.Status(fiber.StatusInternalServerError).
			JSON(msg("An error occurred while fetching the jobs."))
	}

	return c.JSON(JobsResponse{Message: "Jobs fetched successfully.", Jobs: jobs})
}

// ListArchivedJobs handles the request to list archived jobs
func (h *JobHandler) ListArchivedJobs(c *fiber.Ctx) error {
	jobs, err := h.service.ListArchived(c.Context())
	if err != nil {
		logger.ErrorWithFields("Error fetching archived jobs", map[string]interface{}{"error": err.Error()})
		return c.Status(fiber.StatusInternalServerError).
			JSON(msg("An error occurred while fetching the archived jobs."))
	}

	return c.JSON(JobsResponse{Message: "Archived jobs fetched successfully.", Jobs: jobs})
}

// UpdateJobInfo handles the request to replace a job's mutable fields
func (h *JobHandler) UpdateJobInfo(c *fiber.Ctx) error {
	var req UpdateJobInfoRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(msg(ErrMsgInvalidReqBody))
	}

	err := h.service.UpdateInfo(c.Context(), services.UpdateParams{
		JobID:       req.JobID,
		Description: req.Description,
		Location:    req.Location,
		Priority:    req.Priority,
		Status:      req.Status,
	})
	if err != nil {
		var vErr *services.ValidationError
		var nfErr *services.NotFoundError
		switch {
		case errors.As(err, &vErr):
			return c.Status(fiber.StatusBadRequest).JSON(msg(vErr.Msg))
		case errors.As(err, &nfErr):
			return c.Status(fiber.StatusNotFound).JSON(msg(nfErr.Msg))
		}
		logger.ErrorWithFields("Error updating job", map[string]interface{}{"error": err.Error()})
		return c.Status(fiber.StatusInternalServerError).
			JSON(msg("An error occurred while updating the job."))
	}

	return c.JSON(msg("Job updated successfully."))
}

// BatchUpdateJobStatuses handles the request to set one status on many jobs
func (h *JobHandler) BatchUpdateJobStatuses(c *fiber.Ctx) error {
	var req BatchUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(msg(ErrMsgInvalidReqBody))
	}

	result, err := h.service.BatchUpdateStatus(c.Context(), req.JobIDs, req.Status)
	if err != nil {
		var vErr *services.ValidationError
		if errors.As(err, &vErr) {
			return c.Status(fiber.StatusBadRequest).JSON(msg(vErr.Msg))
		}
		logger.ErrorWithFields("Error updating jobs", map[string]interface{}{"error": err.Error()})
		return c.Status(fiber.StatusInternalServerError).
			JSON(msg("An error occurred while updating the job."))
	}

	switch {
	case result.Matched == 0:
		return c.Status(fiber.StatusNotFound).JSON(msg("No jobs found to update."))
	case result.Modified == 0:
		return c.JSON(msg("Jobs were found but none were updated (status may already be the same)."))
	}
	return c.JSON(msg("Job updated successfully."))
}

// ArchiveJob handles the request to move a job into the archived side-state
func (h *JobHandler) ArchiveJob(c *fiber.Ctx) error {
	var req JobIDRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(msg(ErrMsgInvalidReqBody))
	}

	if err := h.service.Archive(c.Context(), req.JobID); err != nil {
		var vErr *services.ValidationError
		var nfErr *services.NotFoundError
		switch {
		case errors.As(err, &vErr):
			return c.Status(fiber.StatusBadRequest).JSON(msg(vErr.Msg))
		case errors.As(err, &nfErr):
			return c.Status(fiber.StatusNotFound).JSON(msg(nfErr.Msg))
		}
		logger.ErrorWithFields("Error archiving job", map[string]interface{}{"error": err.Error()})
		return c.Status(fiber.StatusInternalServerError).
			JSON(msg("An error occurred while archiving the job."))
	}

	return c.JSON(msg("Job archived successfully."))
}

// UnarchiveJob handles the request to move an archived job back into the lifecycle
func (h *JobHandler) UnarchiveJob(c *fiber.Ctx) error {
	var req JobIDRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(msg(ErrMsgInvalidReqBody))
	}

	// The outcome distinguishes an unknown id from a non-archived job, but
	// the response deliberately does not.
	if _, err := h.service.Unarchive(c.Context(), req.JobID); err != nil {
		var vErr *services.ValidationError
		var nfErr *services.NotFoundError
		switch {
		case errors.As(err, &vErr):
			return c.Status(fiber.StatusBadRequest).JSON(msg(vErr.Msg))
		case errors.As(err, &nfErr):
			return c.Status(fiber.StatusNotFound).JSON(msg(nfErr.Msg))
		}
		logger.ErrorWithFields("Error unarchiving job", map[string]interface{}{"error": err.Error()})
		return c.Status(fiber.StatusInternalServerError).
			JSON(msg("An error occurred while unarchiving the job."))
	}

	return c.JSON(msg("Job unarchived successfully."))
}
