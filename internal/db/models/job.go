package models

import (
	"fmt"
	"time"
)

// Database field names used by repository update maps.
const (
	// JobStatusField is the database field name for the job status
	JobStatusField = "status"
	// JobUpdatedAtField is the database field name for the job update timestamp
	JobUpdatedAtField = "updated_at"
	// JobArchivedAtField is the database field name for the job archive timestamp
	JobArchivedAtField = "archived_at"
)

// JobStatus represents the current state of a job in its lifecycle
type JobStatus string

// Job status constants
const (
	// JobStatusSubmitted indicates the job has been submitted and is waiting to be worked
	JobStatusSubmitted JobStatus = "submitted"
	// JobStatusInProgress indicates the job is currently being worked
	JobStatusInProgress JobStatus = "in progress"
	// JobStatusCompleted indicates the job has been finished
	JobStatusCompleted JobStatus = "completed"
	// JobStatusArchived indicates the job has been moved out of the active lifecycle
	JobStatusArchived JobStatus = "archived"
)

// ActiveStatuses lists the lifecycle statuses in their display rank order.
// Archived is deliberately excluded: it is a side-state, not a lifecycle stage.
var ActiveStatuses = []JobStatus{JobStatusSubmitted, JobStatusInProgress, JobStatusCompleted}

// ParseJobStatus converts a string representation of a job status to JobStatus type
func ParseJobStatus(str string) (JobStatus, error) {
	switch s := JobStatus(str); s {
	case JobStatusSubmitted, JobStatusInProgress, JobStatusCompleted, JobStatusArchived:
		return s, nil
	}
	return "", fmt.Errorf("invalid job status: %s", str)
}

// IsActive reports whether the status is a lifecycle stage (anything but archived).
func (s JobStatus) IsActive() bool {
	for _, active := range ActiveStatuses {
		if s == active {
			return true
		}
	}
	return false
}

// Rank returns the position of the status in the fixed active ordering.
// Statuses outside the active set sort last.
func (s JobStatus) Rank() int {
	for i, active := range ActiveStatuses {
		if s == active {
			return i
		}
	}
	return len(ActiveStatuses)
}

func (s JobStatus) String() string {
	return string(s)
}

// JobPriority represents how urgent a job is
type JobPriority string

// Job priority constants
const (
	// JobPriorityLow is the lowest priority
	JobPriorityLow JobPriority = "low"
	// JobPriorityMedium is the default middle priority
	JobPriorityMedium JobPriority = "medium"
	// JobPriorityHigh is the highest priority
	JobPriorityHigh JobPriority = "high"
)

// ParseJobPriority converts a string representation of a job priority to JobPriority type
func ParseJobPriority(str string) (JobPriority, error) {
	switch p := JobPriority(str); p {
	case JobPriorityLow, JobPriorityMedium, JobPriorityHigh:
		return p, nil
	}
	return "", fmt.Errorf("invalid job priority: %s", str)
}

func (p JobPriority) String() string {
	return string(p)
}

// Job represents a unit of service work tracked through the status lifecycle
type Job struct {
	ID          string      `json:"id" gorm:"primaryKey;type:uuid"`
	Description string      `json:"description" gorm:"not null"`
	Location    string      `json:"location" gorm:"not null"`
	Priority    JobPriority `json:"priority" gorm:"not null"`
	Status      JobStatus   `json:"status" gorm:"index;default:submitted"`
	SubmittedAt time.Time   `json:"submittedAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
	ArchivedAt  *time.Time  `json:"archivedAt"`
}

// StatusFilter represents how to match jobs by status in list queries
type StatusFilter string

const (
	// StatusFilterEqual matches jobs whose status equals the filter status
	StatusFilterEqual StatusFilter = "equal"
	// StatusFilterNotEqual matches jobs whose status differs from the filter status
	StatusFilterNotEqual StatusFilter = "not_equal"
)

// ListFilter represents filtering options for job list operations
type ListFilter struct {
	Status       *JobStatus   `json:"status,omitempty"`
	StatusFilter StatusFilter `json:"status_filter,omitempty"`
}

// JobFields is a partial field set applied by update operations.
// Keys are database column names.
type JobFields map[string]interface{}

// BatchResult reports the outcome of a bulk update
type BatchResult struct {
	// Matched is the number of rows whose id was in the requested set
	Matched int64 `json:"matched"`
	// Modified is the number of rows whose value actually changed
	Modified int64 `json:"modified"`
}
