package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jobdeck/jobdeck/internal/db/models"
	"github.com/jobdeck/jobdeck/internal/db/repos"
)

// Policy captures lifecycle behaviors that reproduce the historical API but
// are questionable enough to deserve a toggle. Flipping a flag changes the
// behavior without touching validation logic.
type Policy struct {
	// ResetStatusWhenOmitted makes UpdateInfo force status back to
	// "submitted" when the caller omits it, even for jobs already in
	// progress or completed. This matches the historical API.
	ResetStatusWhenOmitted bool
	// ValidateBatchStatus makes BatchUpdateStatus reject statuses outside
	// the enum before the bulk write. The historical API trusts the caller
	// on the bulk path, so this defaults to off.
	ValidateBatchStatus bool
}

// DefaultPolicy returns the policy matching the historical API behavior.
func DefaultPolicy() Policy {
	return Policy{ResetStatusWhenOmitted: true, ValidateBatchStatus: false}
}

// Job provides business logic for job lifecycle operations
type Job struct {
	repo   *repos.JobRepository
	policy Policy
}

// NewJobService creates a new job service instance
func NewJobService(repo *repos.JobRepository, policy Policy) *Job {
	return &Job{repo: repo, policy: policy}
}

// CreateParams carries the raw creation input. Status is optional; the empty
// string means absent.
type CreateParams struct {
	Description string
	Location    string
	Priority    string
	Status      string
}

// Create validates the input and persists a new job. Validation short-circuits
// on the first failure; nothing is written on a validation error.
func (s *Job) Create(ctx context.Context, params CreateParams) (*models.Job, error) {
	if strings.TrimSpace(params.Description) == "" {
		return nil, validationErr("Description is required and must be a non-empty string.")
	}
	if strings.TrimSpace(params.Location) == "" {
		return nil, validationErr("Location is required and must be a non-empty string.")
	}
	priority, err := models.ParseJobPriority(params.Priority)
	if err != nil {
		return nil, validationErr("Invalid priority value. Valid options are: 'low', 'medium', 'high'.")
	}
	status := models.JobStatusSubmitted
	if params.Status != "" {
		status = models.JobStatus(params.Status)
		if !status.IsActive() {
			// Archived is not a valid creation status.
			return nil, validationErr("Invalid status value. Valid options are: 'submitted', 'in progress', 'completed'.")
		}
	}

	now := time.Now().UTC()
	job := &models.Job{
		Description: strings.TrimSpace(params.Description),
		Location:    params.Location,
		Priority:    priority,
		Status:      status,
		SubmittedAt: now,
		UpdatedAt:   now,
	}
	if err := s.repo.Insert(ctx, job); err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}
	return job, nil
}

// List returns the active jobs, optionally narrowed to a single lifecycle
// status. Archived jobs are never returned; requesting them is rejected.
// Ordering: status rank (submitted, in progress, completed) ascending, then
// SubmittedAt descending within equal status.
func (s *Job) List(ctx context.Context, statusFilter string) ([]models.Job, error) {
	filter := models.ListFilter{}
	if statusFilter != "" {
		status := models.JobStatus(statusFilter)
		if !status.IsActive() {
			return nil, validationErr("Invalid status provided. Valid statuses are 'submitted', 'in progress', or 'completed'.")
		}
		filter.Status = &status
		filter.StatusFilter = models.StatusFilterEqual
	} else {
		archived := models.JobStatusArchived
		filter.Status = &archived
		filter.StatusFilter = models.StatusFilterNotEqual
	}

	jobs, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	if jobs == nil {
		// The API contract is an array, never null.
		jobs = []models.Job{}
	}

	// The ordering contract is applied here, not delegated to the store.
	sort.SliceStable(jobs, func(i, j int) bool {
		if jobs[i].Status.Rank() != jobs[j].Status.Rank() {
			return jobs[i].Status.Rank() < jobs[j].Status.Rank()
		}
		return jobs[i].SubmittedAt.After(jobs[j].SubmittedAt)
	})
	return jobs, nil
}

// ListArchived returns every archived job in store order.
func (s *Job) ListArchived(ctx context.Context) ([]models.Job, error) {
	archived := models.JobStatusArchived
	jobs, err := s.repo.List(ctx, models.ListFilter{
		Status:       &archived,
		StatusFilter: models.StatusFilterEqual,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list archived jobs: %w", err)
	}
	if jobs == nil {
		jobs = []models.Job{}
	}
	return jobs, nil
}

// UpdateParams carries the raw input for a full-record update. Status is
// optional; the empty string means absent.
type UpdateParams struct {
	JobID       string
	Description string
	Location    string
	Priority    string
	Status      string
}

// UpdateInfo replaces every mutable field of a job. When the caller omits
// status, Policy.ResetStatusWhenOmitted decides whether the job regresses to
// "submitted" or keeps its current status.
func (s *Job) UpdateInfo(ctx context.Context, params UpdateParams) error {
	if params.JobID == "" {
		return validationErr("Job ID is required.")
	}
	if strings.TrimSpace(params.Description) == "" {
		return validationErr("Description is required.")
	}
	if strings.TrimSpace(params.Location) == "" {
		return validationErr("Location is required.")
	}
	priority, err := models.ParseJobPriority(params.Priority)
	if err != nil {
		return validationErr("Valid priority is required. (low, medium, high)")
	}

	fields := models.JobFields{
		"description":            strings.TrimSpace(params.Description),
		"location":               params.Location,
		"priority":               priority,
		models.JobUpdatedAtField: time.Now().UTC(),
	}
	switch {
	case params.Status != "":
		fields[models.JobStatusField] = models.JobStatus(params.Status)
	case s.policy.ResetStatusWhenOmitted:
		fields[models.JobStatusField] = models.JobStatusSubmitted
	}

	if _, err := s.repo.Replace(ctx, params.JobID, fields); err != nil {
		if errors.Is(err, repos.ErrJobNotFound) {
			return notFoundErr("Job not found.")
		}
		return fmt.Errorf("failed to update job: %w", err)
	}
	return nil
}

// BatchUpdateStatus applies one status to every job in ids with a single bulk
// write. The returned result lets the caller distinguish "nothing matched"
// from "matched but nothing changed" from "changed".
func (s *Job) BatchUpdateStatus(ctx context.Context, ids []string, status string) (models.BatchResult, error) {
	if len(ids) == 0 {
		return models.BatchResult{}, validationErr("Job IDs are required and must be an array.")
	}
	if s.policy.ValidateBatchStatus {
		if _, err := models.ParseJobStatus(status); err != nil {
			return models.BatchResult{}, validationErr("Invalid status value. Valid options are: 'submitted', 'in progress', 'completed', 'archived'.")
		}
	}

	result, err := s.repo.UpdateManyByIDs(ctx, ids, models.JobFields{
		models.JobStatusField:    models.JobStatus(status),
		models.JobUpdatedAtField: time.Now().UTC(),
	})
	if err != nil {
		return result, fmt.Errorf("failed to batch update jobs: %w", err)
	}
	return result, nil
}

// Archive moves a job into the archived side-state. The match is
// unconditional on id: archiving an already archived job succeeds and
// restamps ArchivedAt.
func (s *Job) Archive(ctx context.Context, jobID string) error {
	if jobID == "" {
		return validationErr("Job ID is required and must be a string.")
	}

	now := time.Now().UTC()
	matched, err := s.repo.UpdateOneMatching(ctx, repos.MatchFilter{ID: jobID}, models.JobFields{
		models.JobStatusField:     models.JobStatusArchived,
		models.JobUpdatedAtField:  now,
		models.JobArchivedAtField: &now,
	})
	if err != nil {
		return fmt.Errorf("failed to archive job: %w", err)
	}
	if matched == 0 {
		return notFoundErr("Job not found or already archived.")
	}
	return nil
}

// UnarchiveOutcome reports what an unarchive attempt found.
type UnarchiveOutcome int

const (
	// UnarchiveDone means the job was archived and is now back in the
	// lifecycle as submitted.
	UnarchiveDone UnarchiveOutcome = iota
	// UnarchiveUnknownID means no job has the given id.
	UnarchiveUnknownID
	// UnarchiveNotArchived means the job exists but is not archived.
	UnarchiveNotArchived
)

// Unarchive moves an archived job back into the lifecycle with status
// "submitted" and a cleared ArchivedAt. Only jobs currently archived match.
// The outcome splits the two not-found causes; the HTTP layer flattens them
// into one generic response.
func (s *Job) Unarchive(ctx context.Context, jobID string) (UnarchiveOutcome, error) {
	if jobID == "" {
		return UnarchiveUnknownID, validationErr("Job ID is required and must be a string.")
	}

	archived := models.JobStatusArchived
	matched, err := s.repo.UpdateOneMatching(ctx, repos.MatchFilter{ID: jobID, Status: &archived}, models.JobFields{
		models.JobStatusField:     models.JobStatusSubmitted,
		models.JobUpdatedAtField:  time.Now().UTC(),
		models.JobArchivedAtField: nil,
	})
	if err != nil {
		return UnarchiveUnknownID, fmt.Errorf("failed to unarchive job: %w", err)
	}
	if matched > 0 {
		return UnarchiveDone, nil
	}

	exists, err := s.repo.ExistsByID(ctx, jobID)
	if err != nil {
		return UnarchiveUnknownID, fmt.Errorf("failed to unarchive job: %w", err)
	}
	outcome := UnarchiveUnknownID
	if exists {
		outcome = UnarchiveNotArchived
	}
	return outcome, notFoundErr("Job not found or it's not archived.")
}
