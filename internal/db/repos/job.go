package repos

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jobdeck/jobdeck/internal/db/models"
)

// ErrJobNotFound is returned when no job matches the requested id.
var ErrJobNotFound = errors.New("job not found")

// JobRepository provides access to job-related database operations
type JobRepository struct {
	db *gorm.DB
}

// NewJobRepository creates a new job repository instance
func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db: db}
}

// Insert persists a new job and assigns its identifier.
// The id is owned by the repository; any value set by the caller is replaced.
func (r *JobRepository) Insert(ctx context.Context, job *models.Job) error {
	job.ID = uuid.NewString()
	if err := r.db.WithContext(ctx).Create(job).Error; err != nil {
		return fmt.Errorf("failed to insert job: %w", err)
	}
	return nil
}

// List returns the jobs matching the given status filter in store order.
// No ordering is guaranteed; callers that need a contract sort themselves.
func (r *JobRepository) List(ctx context.Context, filter models.ListFilter) ([]models.Job, error) {
	var jobs []models.Job
	qry := r.db.WithContext(ctx).Model(&models.Job{})
	if filter.Status != nil {
		switch filter.StatusFilter {
		case models.StatusFilterNotEqual:
			qry = qry.Where("status <> ?", *filter.Status)
		default:
			qry = qry.Where("status = ?", *filter.Status)
		}
	}
	if err := qry.Find(&jobs).Error; err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	return jobs, nil
}

// Replace applies a full field set to the job with the given id and returns
// the record as it stands after the update.
func (r *JobRepository) Replace(ctx context.Context, id string, fields models.JobFields) (*models.Job, error) {
	res := r.db.WithContext(ctx).Model(&models.Job{}).Where("id = ?", id).Updates(map[string]interface{}(fields))
	if res.Error != nil {
		return nil, fmt.Errorf("failed to update job: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrJobNotFound
	}

	var job models.Job
	if err := r.db.WithContext(ctx).First(&job, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return &job, nil
}

// UpdateManyByIDs applies the same field set to every job whose id is in ids.
// Modified counts only rows whose status actually changed value, mirroring the
// matched/modified split of document-store bulk updates.
func (r *JobRepository) UpdateManyByIDs(ctx context.Context, ids []string, fields models.JobFields) (models.BatchResult, error) {
	var result models.BatchResult

	err := r.db.WithContext(ctx).Model(&models.Job{}).
		Where("id IN ?", ids).
		Count(&result.Matched).Error
	if err != nil {
		return result, fmt.Errorf("failed to count matching jobs: %w", err)
	}

	qry := r.db.WithContext(ctx).Model(&models.Job{}).Where("id IN ?", ids)
	if status, ok := fields[models.JobStatusField]; ok {
		// A SQL UPDATE reports every matched row as affected even when the
		// value is unchanged; exclude same-status rows so Modified carries
		// the document-store meaning.
		qry = qry.Where("status <> ?", status)
	}
	res := qry.Updates(map[string]interface{}(fields))
	if res.Error != nil {
		return result, fmt.Errorf("failed to update jobs: %w", res.Error)
	}
	result.Modified = res.RowsAffected
	return result, nil
}

// MatchFilter identifies at most one job for a conditional update.
type MatchFilter struct {
	ID string
	// Status, when set, requires the job to currently hold this status.
	Status *models.JobStatus
}

// UpdateOneMatching applies a field set to the single job satisfying the
// filter and reports how many rows matched (0 or 1).
func (r *JobRepository) UpdateOneMatching(ctx context.Context, filter MatchFilter, fields models.JobFields) (int64, error) {
	qry := r.db.WithContext(ctx).Model(&models.Job{}).Where("id = ?", filter.ID)
	if filter.Status != nil {
		qry = qry.Where("status = ?", *filter.Status)
	}
	res := qry.Updates(map[string]interface{}(fields))
	if res.Error != nil {
		return 0, fmt.Errorf("failed to update job: %w", res.Error)
	}
	return res.RowsAffected, nil
}

// ExistsByID reports whether a job with the given id exists regardless of status.
func (r *JobRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Job{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check job existence: %w", err)
	}
	return count > 0, nil
}
