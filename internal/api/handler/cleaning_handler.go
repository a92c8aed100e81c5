package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/google/uuid"

	"community-pulse/internal/config"
	"community-pulse/internal/model"
	"community-pulse/internal/runner"
	"community-pulse/internal/store"
)

var cfg config.Config

// Init fixes the configuration the handlers hand to cleaning runs.
func Init(c config.Config) {
	cfg = c
}

// CreateCleaning creates a new cleaning job
// @Summary Create a new cleaning job
// @Description Accept a cleaning job spec, store it and start the pipeline asynchronously
// @Tags cleanings
// @Accept json
// @Produce json
// @Param cleaning body model.CleaningJobSpec true "Cleaning job configuration"
// @Success 200 {object} map[string]interface{} "Cleaning job created"
// @Failure 400 {object} map[string]interface{} "Invalid request payload"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /cleanings [post]
func CreateCleaning(w http.ResponseWriter, r *http.Request) {
	var spec model.CleaningJobSpec
	if err := json.NewDecoder(r.Body).Decode(&spec); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	if err := spec.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	jobID := uuid.New().String()

	if err := store.SaveJob(jobID, spec); err != nil {
		http.Error(w, "Failed to save job", http.StatusInternalServerError)
		return
	}

	go func() {
		if err := runner.Run(context.Background(), jobID, spec, cfg); err != nil {
			fmt.Printf("❌ Cleaning job %s ended with error: %v\n", jobID, err)
		}
	}()

	resp := map[string]interface{}{
		"message": "Cleaning job created successfully!",
		"jobID":   jobID,
		"status":  "pending",
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// ListCleanings retrieves all cleaning jobs
// @Summary List all cleaning jobs
// @Description Get all cleaning jobs with their current status
// @Tags cleanings
// @Produce json
// @Success 200 {array} map[string]interface{} "List of cleaning jobs"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /cleanings [get]
func ListCleanings(w http.ResponseWriter, r *http.Request) {
	jobs, err := store.ListJobs()
	if err != nil {
		http.Error(w, "Failed to fetch cleaning jobs", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(jobs)
}

// GetCleaning retrieves a specific cleaning job
// @Summary Get cleaning job
// @Description Retrieve spec and status of a cleaning job
// @Tags cleanings
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} map[string]interface{} "Job details"
// @Failure 400 {object} map[string]interface{} "Invalid job ID"
// @Failure 404 {object} map[string]interface{} "Job not found"
// @Router /cleanings/{id} [get]
func GetCleaning(w http.ResponseWriter, r *http.Request) {
	jobID, ok := jobIDFromPath(w, r, "")
	if !ok {
		return
	}

	job, err := store.GetJob(jobID)
	if err != nil {
		http.Error(w, "Job not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(job)
}

// DeleteCleaning removes a cleaning job and its recorded results
// @Summary Delete cleaning job
// @Description Delete a job with its audit log, metrics and file records
// @Tags cleanings
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} map[string]interface{} "Job deleted"
// @Failure 400 {object} map[string]interface{} "Invalid job ID"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /cleanings/{id} [delete]
func DeleteCleaning(w http.ResponseWriter, r *http.Request) {
	jobID, ok := jobIDFromPath(w, r, "")
	if !ok {
		return
	}

	if err := store.DeleteJob(jobID); err != nil {
		http.Error(w, "Failed to delete job", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Cleaning job deleted",
		"job_id":  jobID,
	})
}

// GetCleaningLogs retrieves the audit trail of a cleaning job
// @Summary Get cleaning audit log
// @Description Retrieve the ordered audit trail recorded by the cleaning stages
// @Tags cleanings
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} map[string]interface{} "Audit log"
// @Failure 400 {object} map[string]interface{} "Invalid job ID"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /cleanings/{id}/logs [get]
func GetCleaningLogs(w http.ResponseWriter, r *http.Request) {
	jobID, ok := jobIDFromPath(w, r, "/logs")
	if !ok {
		return
	}

	logs, err := store.GetAuditLog(jobID)
	if err != nil {
		http.Error(w, "Failed to retrieve logs", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"job_id": jobID,
		"logs":   logs,
		"count":  len(logs),
	})
}

// GetCleaningMetrics retrieves the quality report of a cleaning job
// @Summary Get cleaning metrics
// @Description Retrieve counters, rates and the data health score for a job
// @Tags cleanings
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} map[string]interface{} "Quality report"
// @Failure 400 {object} map[string]interface{} "Invalid job ID"
// @Failure 404 {object} map[string]interface{} "Metrics not found"
// @Router /cleanings/{id}/metrics [get]
func GetCleaningMetrics(w http.ResponseWriter, r *http.Request) {
	jobID, ok := jobIDFromPath(w, r, "/metrics")
	if !ok {
		return
	}

	rep, err := store.GetMetrics(jobID)
	if err != nil {
		http.Error(w, "Metrics not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"job_id":  jobID,
		"metrics": rep,
	})
}

// GetCleaningErrors retrieves errors recorded for a cleaning job
// @Summary Get cleaning errors
// @Description Retrieve all errors that occurred during a cleaning run
// @Tags cleanings
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} map[string]interface{} "Job errors"
// @Failure 400 {object} map[string]interface{} "Invalid job ID"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /cleanings/{id}/errors [get]
func GetCleaningErrors(w http.ResponseWriter, r *http.Request) {
	jobID, ok := jobIDFromPath(w, r, "/errors")
	if !ok {
		return
	}

	errors, err := store.GetJobErrors(jobID)
	if err != nil {
		http.Error(w, "Failed to retrieve errors", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"job_id": jobID,
		"errors": errors,
		"count":  len(errors),
	})
}

// GetCleaningFiles retrieves the output files of a cleaning job
// @Summary Get cleaning output files
// @Description List the files written for a job with their download paths
// @Tags cleanings
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} map[string]interface{} "Output files"
// @Failure 400 {object} map[string]interface{} "Invalid job ID"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /cleanings/{id}/files [get]
func GetCleaningFiles(w http.ResponseWriter, r *http.Request) {
	jobID, ok := jobIDFromPath(w, r, "/files")
	if !ok {
		return
	}

	files, err := store.GetOutputFiles(jobID)
	if err != nil {
		http.Error(w, "Failed to retrieve files", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"job_id": jobID,
		"files":  files,
		"count":  len(files),
	})
}

// GetCleaningSummary retrieves the insights summary of a cleaning job
// @Summary Get cleaning summary
// @Description Retrieve role distribution, attendance stats, monthly joins and KPI evaluation
// @Tags cleanings
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} map[string]interface{} "Insights summary"
// @Failure 400 {object} map[string]interface{} "Invalid job ID"
// @Failure 404 {object} map[string]interface{} "Summary not found"
// @Router /cleanings/{id}/summary [get]
func GetCleaningSummary(w http.ResponseWriter, r *http.Request) {
	jobID, ok := jobIDFromPath(w, r, "/summary")
	if !ok {
		return
	}

	data, err := os.ReadFile(fmt.Sprintf("%s/%s/summary.json", cfg.OutputDir, jobID))
	if err != nil {
		http.Error(w, "Summary not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

// DownloadFile serves a job output file for download
// @Summary Download file
// @Description Download a specific output file from a cleaning job
// @Tags files
// @Produce application/octet-stream
// @Param jobID path string true "Job ID"
// @Param filename path string true "File name"
// @Success 200 {file} file "File download"
// @Failure 400 {object} map[string]interface{} "Invalid URL format"
// @Failure 404 {object} map[string]interface{} "File not found"
// @Router /download/{jobID}/{filename} [get]
func DownloadFile(w http.ResponseWriter, r *http.Request) {
	// URL format: /api/v1/download/jobID/filename
	pathParts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if len(pathParts) < 5 {
		http.Error(w, "Invalid URL format", http.StatusBadRequest)
		return
	}
	jobID := pathParts[3]
	fileName := pathParts[4]

	filePath := fmt.Sprintf("%s/%s/%s", cfg.OutputDir, jobID, fileName)
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		http.Error(w, "File not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	w.Header().Set("Content-Type", "application/octet-stream")
	http.ServeFile(w, r, filePath)
}

// jobIDFromPath extracts the job ID between /api/v1/cleanings/ and an
// optional suffix, writing a 400 and returning ok=false on bad paths.
func jobIDFromPath(w http.ResponseWriter, r *http.Request, suffix string) (string, bool) {
	path := r.URL.Path
	prefix := "/api/v1/cleanings/"

	if !strings.HasPrefix(path, prefix) || !strings.HasSuffix(path, suffix) {
		http.Error(w, "Invalid path", http.StatusBadRequest)
		return "", false
	}

	jobID := path[len(prefix) : len(path)-len(suffix)]
	if jobID == "" {
		http.Error(w, "Job ID is required", http.StatusBadRequest)
		return "", false
	}
	return jobID, true
}
