package commands

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jobdeck/jobdeck/internal/api/v1/handlers"
	"github.com/jobdeck/jobdeck/internal/db/models"
)

// jobOutput represents the filtered output for a job
type jobOutput struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
}

// jobListOutput represents the filtered output for a list of jobs
type jobListOutput struct {
	Jobs []jobOutput `json:"jobs"`
}

func init() {
	jobsCmd.AddCommand(listJobsCmd)
	jobsCmd.AddCommand(listArchivedJobsCmd)
	jobsCmd.AddCommand(createJobCmd)
	jobsCmd.AddCommand(updateJobCmd)
	jobsCmd.AddCommand(setStatusCmd)
	jobsCmd.AddCommand(archiveJobCmd)
	jobsCmd.AddCommand(unarchiveJobCmd)

	listJobsCmd.Flags().StringP("status", "t", "", "Filter jobs by status")

	createJobCmd.Flags().StringP("description", "d", "", "Job description")
	createJobCmd.Flags().StringP("location", "l", "", "Job location")
	createJobCmd.Flags().StringP("priority", "p", "", "Job priority (low, medium, high)")
	createJobCmd.Flags().StringP("status", "t", "", "Initial status (defaults to submitted)")
	_ = createJobCmd.MarkFlagRequired("description")
	_ = createJobCmd.MarkFlagRequired("location")
	_ = createJobCmd.MarkFlagRequired("priority")

	updateJobCmd.Flags().StringP("id", "i", "", "Job ID to update")
	updateJobCmd.Flags().StringP("description", "d", "", "Job description")
	updateJobCmd.Flags().StringP("location", "l", "", "Job location")
	updateJobCmd.Flags().StringP("priority", "p", "", "Job priority (low, medium, high)")
	updateJobCmd.Flags().StringP("status", "t", "", "New status (omitting resets to submitted)")
	_ = updateJobCmd.MarkFlagRequired("id")
	_ = updateJobCmd.MarkFlagRequired("description")
	_ = updateJobCmd.MarkFlagRequired("location")
	_ = updateJobCmd.MarkFlagRequired("priority")

	setStatusCmd.Flags().StringSliceP("ids", "i", nil, "Job IDs to update")
	setStatusCmd.Flags().StringP("status", "t", "", "Status to apply")
	_ = setStatusCmd.MarkFlagRequired("ids")
	_ = setStatusCmd.MarkFlagRequired("status")

	archiveJobCmd.Flags().StringP("id", "i", "", "Job ID to archive")
	_ = archiveJobCmd.MarkFlagRequired("id")

	unarchiveJobCmd.Flags().StringP("id", "i", "", "Job ID to unarchive")
	_ = unarchiveJobCmd.MarkFlagRequired("id")
}

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Manage jobs",
}

func printJobs(jobs []models.Job) error {
	output := jobListOutput{Jobs: make([]jobOutput, len(jobs))}
	for i, job := range jobs {
		output.Jobs[i] = jobOutput{
			ID:          job.ID,
			Description: job.Description,
			Location:    job.Location,
			Priority:    job.Priority.String(),
			Status:      job.Status.String(),
		}
	}

	prettyJSON, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("error formatting response: %w", err)
	}
	fmt.Println(string(prettyJSON))
	return nil
}

var listJobsCmd = &cobra.Command{
	Use:   "list",
	Short: "List active jobs",
	RunE: func(cmd *cobra.Command, _ []string) error {
		status, _ := cmd.Flags().GetString("status")

		jobs, err := apiClient.ListJobs(context.Background(), status)
		if err != nil {
			return fmt.Errorf("error fetching jobs: %w", err)
		}
		return printJobs(jobs)
	},
}

var listArchivedJobsCmd = &cobra.Command{
	Use:   "archived",
	Short: "List archived jobs",
	RunE: func(_ *cobra.Command, _ []string) error {
		jobs, err := apiClient.ListArchivedJobs(context.Background())
		if err != nil {
			return fmt.Errorf("error fetching archived jobs: %w", err)
		}
		return printJobs(jobs)
	},
}

var createJobCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new job",
	RunE: func(cmd *cobra.Command, _ []string) error {
		description, _ := cmd.Flags().GetString("description")
		location, _ := cmd.Flags().GetString("location")
		priority, _ := cmd.Flags().GetString("priority")
		status, _ := cmd.Flags().GetString("status")

		job, err := apiClient.CreateJob(context.Background(), handlers.CreateJobRequest{
			Description: description,
			Location:    location,
			Priority:    priority,
			Status:      status,
		})
		if err != nil {
			return fmt.Errorf("error creating job: %w", err)
		}

		prettyJSON, err := json.MarshalIndent(job, "", "  ")
		if err != nil {
			return fmt.Errorf("error formatting response: %w", err)
		}
		fmt.Println(string(prettyJSON))
		return nil
	},
}

var updateJobCmd = &cobra.Command{
	Use:   "update",
	Short: "Replace a job's fields",
	RunE: func(cmd *cobra.Command, _ []string) error {
		jobID, _ := cmd.Flags().GetString("id")
		description, _ := cmd.Flags().GetString("description")
		location, _ := cmd.Flags().GetString("location")
		priority, _ := cmd.Flags().GetString("priority")
		status, _ := cmd.Flags().GetString("status")

		err := apiClient.UpdateJobInfo(context.Background(), handlers.UpdateJobInfoRequest{
			JobID:       jobID,
			Description: description,
			Location:    location,
			Priority:    priority,
			Status:      status,
		})
		if err != nil {
			return fmt.Errorf("error updating job: %w", err)
		}
		fmt.Println("Job updated.")
		return nil
	},
}

var setStatusCmd = &cobra.Command{
	Use:   "set-status",
	Short: "Set one status on many jobs",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ids, _ := cmd.Flags().GetStringSlice("ids")
		status, _ := cmd.Flags().GetString("status")

		message, err := apiClient.BatchUpdateJobStatuses(context.Background(), ids, status)
		if err != nil {
			return fmt.Errorf("error updating jobs: %w", err)
		}
		fmt.Println(message)
		return nil
	},
}

var archiveJobCmd = &cobra.Command{
	Use:   "archive",
	Short: "Archive a job",
	RunE: func(cmd *cobra.Command, _ []string) error {
		jobID, _ := cmd.Flags().GetString("id")

		if err := apiClient.ArchiveJob(context.Background(), jobID); err != nil {
			return fmt.Errorf("error archiving job: %w", err)
		}
		fmt.Println("Job archived.")
		return nil
	},
}

var unarchiveJobCmd = &cobra.Command{
	Use:   "unarchive",
	Short: "Unarchive a job",
	RunE: func(cmd *cobra.Command, _ []string) error {
		jobID, _ := cmd.Flags().GetString("id")

		if err := apiClient.UnarchiveJob(context.Background(), jobID); err != nil {
			return fmt.Errorf("error unarchiving job: %w", err)
		}
		fmt.Println("Job unarchived.")
		return nil
	},
}

// GetJobsCmd returns the jobs command
func GetJobsCmd() *cobra.Command {
	return jobsCmd
}
