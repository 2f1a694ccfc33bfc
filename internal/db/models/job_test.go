package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseJobStatus(t *testing.T) {
	tests := []struct {
		name        string
		stringValue string
		status      JobStatus
		valid       bool
		active      bool
		rank        int
	}{
		{
			name:        "Submitted status",
			stringValue: "submitted",
			status:      JobStatusSubmitted,
			valid:       true,
			active:      true,
			rank:        0,
		},
		{
			name:        "In progress status",
			stringValue: "in progress",
			status:      JobStatusInProgress,
			valid:       true,
			active:      true,
			rank:        1,
		},
		{
			name:        "Completed status",
			stringValue: "completed",
			status:      JobStatusCompleted,
			valid:       true,
			active:      true,
			rank:        2,
		},
		{
			name:        "Archived status",
			stringValue: "archived",
			status:      JobStatusArchived,
			valid:       true,
			active:      false,
			rank:        3,
		},
		{
			name:        "Invalid status",
			stringValue: "invalid_status",
			valid:       false,
		},
		{
			name:        "Empty status",
			stringValue: "",
			valid:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := ParseJobStatus(tt.stringValue)
			if !tt.valid {
				assert.Error(t, err, "ParseJobStatus should return error for invalid status")
				return
			}

			assert.NoError(t, err, "ParseJobStatus should not return error")
			assert.Equal(t, tt.status, parsed, "ParseJobStatus returned wrong status")
			assert.Equal(t, tt.stringValue, parsed.String())
			assert.Equal(t, tt.active, parsed.IsActive())
			assert.Equal(t, tt.rank, parsed.Rank())
		})
	}
}

func TestJobStatusRank_UnknownSortsLast(t *testing.T) {
	// The bulk path can persist statuses outside the enum; they must sort
	// after every active status.
	assert.Equal(t, len(ActiveStatuses), JobStatus("bogus").Rank())
}

func TestParseJobPriority(t *testing.T) {
	tests := []struct {
		name        string
		stringValue string
		priority    JobPriority
		valid       bool
	}{
		{name: "Low priority", stringValue: "low", priority: JobPriorityLow, valid: true},
		{name: "Medium priority", stringValue: "medium", priority: JobPriorityMedium, valid: true},
		{name: "High priority", stringValue: "high", priority: JobPriorityHigh, valid: true},
		{name: "Invalid priority", stringValue: "urgent", valid: false},
		{name: "Empty priority", stringValue: "", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := ParseJobPriority(tt.stringValue)
			if !tt.valid {
				assert.Error(t, err, "ParseJobPriority should return error for invalid priority")
				return
			}

			assert.NoError(t, err, "ParseJobPriority should not return error")
			assert.Equal(t, tt.priority, parsed, "ParseJobPriority returned wrong priority")
			assert.Equal(t, tt.stringValue, parsed.String())
		})
	}
}
