package repos

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/jobdeck/jobdeck/internal/db/models"
)

type JobRepositoryTestSuite struct {
	DBRepositoryTestSuite
}

func TestJobRepository(t *testing.T) {
	suite.Run(t, new(JobRepositoryTestSuite))
}

func (s *JobRepositoryTestSuite) TestInsertAssignsID() {
	job := s.createTestJob(models.JobStatusSubmitted)
	s.NotEmpty(job.ID)

	// Any caller-supplied id is replaced
	other := &models.Job{
		ID:          "caller-chosen",
		Description: "Replace filters",
		Location:    "Bldg A",
		Priority:    models.JobPriorityLow,
		Status:      models.JobStatusSubmitted,
	}
	s.Require().NoError(s.jobRepo.Insert(s.ctx, other))
	s.NotEqual("caller-chosen", other.ID)
	s.NotEqual(job.ID, other.ID)
}

func (s *JobRepositoryTestSuite) TestListStatusFilters() {
	s.createTestJob(models.JobStatusSubmitted)
	s.createTestJob(models.JobStatusCompleted)
	s.createTestJob(models.JobStatusArchived)

	// No filter returns everything
	jobs, err := s.jobRepo.List(s.ctx, models.ListFilter{})
	s.NoError(err)
	s.Len(jobs, 3)

	// Equality filter
	completed := models.JobStatusCompleted
	jobs, err = s.jobRepo.List(s.ctx, models.ListFilter{
		Status:       &completed,
		StatusFilter: models.StatusFilterEqual,
	})
	s.NoError(err)
	s.Len(jobs, 1)
	s.Equal(models.JobStatusCompleted, jobs[0].Status)

	// Not-equal filter excludes archived
	archived := models.JobStatusArchived
	jobs, err = s.jobRepo.List(s.ctx, models.ListFilter{
		Status:       &archived,
		StatusFilter: models.StatusFilterNotEqual,
	})
	s.NoError(err)
	s.Len(jobs, 2)
	for _, job := range jobs {
		s.NotEqual(models.JobStatusArchived, job.Status)
	}
}

func (s *JobRepositoryTestSuite) TestReplace() {
	job := s.createTestJob(models.JobStatusSubmitted)

	updated, err := s.jobRepo.Replace(s.ctx, job.ID, models.JobFields{
		"description":            "Inspect boiler and flue",
		"location":               "Bldg D",
		"priority":               models.JobPriorityHigh,
		models.JobStatusField:    models.JobStatusInProgress,
		models.JobUpdatedAtField: time.Now().UTC(),
	})
	s.NoError(err)
	s.Equal("Inspect boiler and flue", updated.Description)
	s.Equal("Bldg D", updated.Location)
	s.Equal(models.JobPriorityHigh, updated.Priority)
	s.Equal(models.JobStatusInProgress, updated.Status)

	// SubmittedAt is untouched by a replace
	s.WithinDuration(job.SubmittedAt, updated.SubmittedAt, time.Second)

	// Unknown id
	_, err = s.jobRepo.Replace(s.ctx, "non-existent", models.JobFields{
		"description": "whatever",
	})
	s.ErrorIs(err, ErrJobNotFound)
}

func (s *JobRepositoryTestSuite) TestUpdateManyByIDs() {
	jobA := s.createTestJob(models.JobStatusSubmitted)
	jobB := s.createTestJob(models.JobStatusCompleted)

	// One id exists, one does not: matched counts only existing rows
	result, err := s.jobRepo.UpdateManyByIDs(s.ctx, []string{jobA.ID, "missing"}, models.JobFields{
		models.JobStatusField: models.JobStatusCompleted,
	})
	s.NoError(err)
	s.Equal(int64(1), result.Matched)
	s.Equal(int64(1), result.Modified)

	// Re-applying the same status matches but modifies nothing
	result, err = s.jobRepo.UpdateManyByIDs(s.ctx, []string{jobA.ID, jobB.ID}, models.JobFields{
		models.JobStatusField: models.JobStatusCompleted,
	})
	s.NoError(err)
	s.Equal(int64(2), result.Matched)
	s.Equal(int64(0), result.Modified)

	// No id exists
	result, err = s.jobRepo.UpdateManyByIDs(s.ctx, []string{"missing-1", "missing-2"}, models.JobFields{
		models.JobStatusField: models.JobStatusCompleted,
	})
	s.NoError(err)
	s.Equal(int64(0), result.Matched)
	s.Equal(int64(0), result.Modified)
}

func (s *JobRepositoryTestSuite) TestUpdateOneMatching() {
	job := s.createTestJob(models.JobStatusSubmitted)
	now := time.Now().UTC()

	// Unconditional match on id
	matched, err := s.jobRepo.UpdateOneMatching(s.ctx, MatchFilter{ID: job.ID}, models.JobFields{
		models.JobStatusField:     models.JobStatusArchived,
		models.JobArchivedAtField: &now,
	})
	s.NoError(err)
	s.Equal(int64(1), matched)

	// Conditional match on current status
	archived := models.JobStatusArchived
	matched, err = s.jobRepo.UpdateOneMatching(s.ctx, MatchFilter{ID: job.ID, Status: &archived}, models.JobFields{
		models.JobStatusField:     models.JobStatusSubmitted,
		models.JobArchivedAtField: nil,
	})
	s.NoError(err)
	s.Equal(int64(1), matched)

	// Status condition now fails: the job is no longer archived
	matched, err = s.jobRepo.UpdateOneMatching(s.ctx, MatchFilter{ID: job.ID, Status: &archived}, models.JobFields{
		models.JobStatusField: models.JobStatusSubmitted,
	})
	s.NoError(err)
	s.Equal(int64(0), matched)

	// ArchivedAt was cleared to NULL
	jobs, err := s.jobRepo.List(s.ctx, models.ListFilter{})
	s.NoError(err)
	s.Require().Len(jobs, 1)
	s.Nil(jobs[0].ArchivedAt)
}

func (s *JobRepositoryTestSuite) TestExistsByID() {
	job := s.createTestJob(models.JobStatusArchived)

	exists, err := s.jobRepo.ExistsByID(s.ctx, job.ID)
	s.NoError(err)
	s.True(exists)

	exists, err = s.jobRepo.ExistsByID(s.ctx, "missing")
	s.NoError(err)
	s.False(exists)
}
