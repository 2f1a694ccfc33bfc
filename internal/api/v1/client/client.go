// Package client provides a typed HTTP client for the jobdeck API.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	fiber "github.com/gofiber/fiber/v2"

	"github.com/jobdeck/jobdeck/internal/api/v1/handlers"
	"github.com/jobdeck/jobdeck/internal/api/v1/routes"
	"github.com/jobdeck/jobdeck/internal/db/models"
)

// DefaultTimeout is the default timeout for API requests
const DefaultTimeout = 30 * time.Second

// Client defines the interface for interacting with the jobdeck API
type Client interface {
	CreateJob(ctx context.Context, req handlers.CreateJobRequest) (*models.Job, error)
	ListJobs(ctx context.Context, status string) ([]models.Job, error)
	ListArchivedJobs(ctx context.Context) ([]models.Job, error)
	UpdateJobInfo(ctx context.Context, req handlers.UpdateJobInfoRequest) error
	BatchUpdateJobStatuses(ctx context.Context, jobIDs []string, status string) (string, error)
	ArchiveJob(ctx context.Context, jobID string) error
	UnarchiveJob(ctx context.Context, jobID string) error
	HealthCheck(ctx context.Context) (map[string]string, error)
}

// Options contains configuration options for the API client
type Options struct {
	// BaseURL is the base URL of the API
	BaseURL string
	// Timeout is the request timeout
	Timeout time.Duration
}

// DefaultOptions returns the default client options
func DefaultOptions() *Options {
	return &Options{
		BaseURL: routes.DefaultBaseURL,
		Timeout: DefaultTimeout,
	}
}

// APIClient implements the Client interface
type APIClient struct {
	baseURL string
	timeout time.Duration
}

// NewClient creates a new API client with the given options
func NewClient(opts *Options) (Client, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if _, err := url.Parse(opts.BaseURL); err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	return &APIClient{baseURL: opts.BaseURL, timeout: opts.Timeout}, nil
}

// createAgent creates a new Fiber Agent for the given method and endpoint
func (c *APIClient) createAgent(ctx context.Context, method, endpoint string, body interface{}) (*fiber.Agent, error) {
	fullURL := c.baseURL + endpoint

	var agent *fiber.Agent
	switch method {
	case http.MethodGet:
		agent = fiber.Get(fullURL)
	case http.MethodPost:
		agent = fiber.Post(fullURL)
	case http.MethodPut:
		agent = fiber.Put(fullURL)
	default:
		return nil, fmt.Errorf("unsupported HTTP method: %s", method)
	}

	// Prefer the caller's deadline over the client default
	if deadline, ok := ctx.Deadline(); ok {
		agent.Timeout(time.Until(deadline))
	} else {
		agent.Timeout(c.timeout)
	}

	agent.Set("Content-Type", "application/json")
	agent.Set("Accept", "application/json")
	if body != nil {
		agent.JSON(body)
	}
	return agent, nil
}

// executeRequest creates an agent, sends the request, and decodes the response
// into v when v is non-nil.
func (c *APIClient) executeRequest(ctx context.Context, method, endpoint string, body, v interface{}) error {
	agent, err := c.createAgent(ctx, method, endpoint, body)
	if err != nil {
		return err
	}

	statusCode, respBody, errs := agent.Bytes()
	if len(errs) > 0 {
		return fmt.Errorf("error sending request: %w", errs[0])
	}

	if statusCode < 200 || statusCode >= 300 {
		var errResp handlers.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Message != "" {
			return &fiber.Error{Code: statusCode, Message: errResp.Message}
		}
		return &fiber.Error{Code: statusCode, Message: string(respBody)}
	}

	if v == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, v); err != nil {
		return fmt.Errorf("error decoding response: %w", err)
	}
	return nil
}

// CreateJob creates a new job and returns the persisted record
func (c *APIClient) CreateJob(ctx context.Context, req handlers.CreateJobRequest) (*models.Job, error) {
	var resp handlers.JobResponse
	if err := c.executeRequest(ctx, http.MethodPost, routes.CreateJobPath, req, &resp); err != nil {
		return nil, err
	}
	return resp.Job, nil
}

// ListJobs returns the active jobs, optionally filtered by status
func (c *APIClient) ListJobs(ctx context.Context, status string) ([]models.Job, error) {
	endpoint := routes.ListJobsPath
	if status != "" {
		endpoint += "?status=" + url.QueryEscape(status)
	}
	var resp handlers.JobsResponse
	if err := c.executeRequest(ctx, http.MethodGet, endpoint, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Jobs, nil
}

// ListArchivedJobs returns every archived job
func (c *APIClient) ListArchivedJobs(ctx context.Context) ([]models.Job, error) {
	var resp handlers.JobsResponse
	if err := c.executeRequest(ctx, http.MethodGet, routes.ListArchivedJobsPath, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Jobs, nil
}

// UpdateJobInfo replaces a job's mutable fields
func (c *APIClient) UpdateJobInfo(ctx context.Context, req handlers.UpdateJobInfoRequest) error {
	return c.executeRequest(ctx, http.MethodPut, routes.UpdateJobInfoPath, req, nil)
}

// BatchUpdateJobStatuses sets one status on many jobs and returns the
// server's outcome message.
func (c *APIClient) BatchUpdateJobStatuses(ctx context.Context, jobIDs []string, status string) (string, error) {
	req := handlers.BatchUpdateRequest{JobIDs: jobIDs, Status: status}
	var resp handlers.MessageResponse
	if err := c.executeRequest(ctx, http.MethodPut, routes.UpdateJobStatusesPath, req, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// ArchiveJob moves a job into the archived side-state
func (c *APIClient) ArchiveJob(ctx context.Context, jobID string) error {
	return c.executeRequest(ctx, http.MethodPost, routes.ArchiveJobPath, handlers.JobIDRequest{JobID: jobID}, nil)
}

// UnarchiveJob moves an archived job back into the lifecycle
func (c *APIClient) UnarchiveJob(ctx context.Context, jobID string) error {
	return c.executeRequest(ctx, http.MethodPost, routes.UnarchiveJobPath, handlers.JobIDRequest{JobID: jobID}, nil)
}

// HealthCheck verifies the server is reachable
func (c *APIClient) HealthCheck(ctx context.Context) (map[string]string, error) {
	var resp map[string]string
	if err := c.executeRequest(ctx, http.MethodGet, routes.HealthCheckPath, nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}
