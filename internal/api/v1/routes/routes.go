// Package routes defines the API routes and URL structure
package routes

import (
	"fmt"

	fiber "github.com/gofiber/fiber/v2"

	"github.com/jobdeck/jobdeck/internal/api/v1/handlers"
)

// API base configuration
const (
	// DefaultPort is the default port for the API
	DefaultPort = "5001"
)

// DefaultBaseURL is the default base URL for the API
var DefaultBaseURL = fmt.Sprintf("http://localhost:%s", DefaultPort)

// Endpoint paths. The job endpoints are deliberately unprefixed and
// verb-named to stay compatible with the original API consumers.
const (
	// CreateJobPath creates a new job
	CreateJobPath = "/create-job"
	// ListJobsPath lists active jobs with optional status filtering
	ListJobsPath = "/list-jobs"
	// ListArchivedJobsPath lists archived jobs
	ListArchivedJobsPath = "/list-archived-jobs"
	// UpdateJobInfoPath replaces a job's mutable fields
	UpdateJobInfoPath = "/update-job-info"
	// UpdateJobStatusesPath sets one status on many jobs
	UpdateJobStatusesPath = "/update-job-statuses"
	// ArchiveJobPath moves a job into the archived side-state
	ArchiveJobPath = "/archive-job"
	// UnarchiveJobPath moves an archived job back into the lifecycle
	UnarchiveJobPath = "/unarchive-job"
	// HealthCheckPath reports process liveness
	HealthCheckPath = "/health"
)

// Route names for lookup
const (
	CreateJob         = "CreateJob"
	ListJobs          = "ListJobs"
	ListArchivedJobs  = "ListArchivedJobs"
	UpdateJobInfo     = "UpdateJobInfo"
	UpdateJobStatuses = "UpdateJobStatuses"
	ArchiveJob        = "ArchiveJob"
	UnarchiveJob      = "UnarchiveJob"
	HealthCheck       = "HealthCheck"
)

// RegisterRoutes configures all the job routes
func RegisterRoutes(app *fiber.App, jobHandler *handlers.JobHandler) {
	// Health check
	app.Get(HealthCheckPath, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "healthy"})
	}).Name(HealthCheck)

	// Job endpoints
	app.Get(ListJobsPath, jobHandler.ListJobs).Name(ListJobs)
	app.Get(ListArchivedJobsPath, jobHandler.ListArchivedJobs).Name(ListArchivedJobs)
	app.Post(CreateJobPath, jobHandler.CreateJob).Name(CreateJob)
	app.Post(ArchiveJobPath, jobHandler.ArchiveJob).Name(ArchiveJob)
	app.Post(UnarchiveJobPath, jobHandler.UnarchiveJob).Name(UnarchiveJob)
	app.Put(UpdateJobInfoPath, jobHandler.UpdateJobInfo).Name(UpdateJobInfo)
	app.Put(UpdateJobStatusesPath, jobHandler.BatchUpdateJobStatuses).Name(UpdateJobStatuses)
}
