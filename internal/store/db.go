package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"community-pulse/internal/cleaner"
	"community-pulse/internal/model"
)

var db *sql.DB

// InitDB opens the sqlite database and creates the schema.
func InitDB(dbPath string) error {
	var err error
	db, err = sql.Open("sqlite3", dbPath)
	if err != nil {
		return err
	}

	tables := []string{
		`CREATE TABLE IF NOT EXISTS jobs (
			id TEXT PRIMARY KEY,
			spec TEXT,
			status TEXT,
			created_at DATETIME,
			updated_at DATETIME
		);`,
		`CREATE TABLE IF NOT EXISTS job_errors (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			job_id TEXT,
			error_message TEXT,
			created_at DATETIME
		);`,
		`CREATE TABLE IF NOT EXISTS audit_logs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			job_id TEXT,
			position INTEGER,
			message TEXT,
			created_at DATETIME
		);`,
		`CREATE TABLE IF NOT EXISTS cleaning_metrics (
			job_id TEXT PRIMARY KEY,
			report TEXT,
			created_at DATETIME
		);`,
		`CREATE TABLE IF NOT EXISTS output_files (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			job_id TEXT,
			file_name TEXT,
			file_path TEXT,
			file_type TEXT,
			record_count INTEGER,
			created_at DATETIME
		);`,
	}
	for _, stmt := range tables {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// SaveJob stores a new cleaning job.
func SaveJob(jobID string, spec model.CleaningJobSpec) error {
	specJSON, err := json.Marshal(spec)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	_, err = db.Exec(`INSERT INTO jobs (id, spec, status, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		jobID, specJSON, "pending", now, now)
	return err
}

// UpdateJobStatus updates job status.
func UpdateJobStatus(jobID string, status string) error {
	now := time.Now().UTC()
	_, err := db.Exec(`UPDATE jobs SET status = ?, updated_at = ? WHERE id = ?`, status, now, jobID)
	return err
}

// SaveJobError records an error for a job.
func SaveJobError(jobID string, err error) error {
	if err == nil {
		return nil
	}
	now := time.Now().UTC()
	_, e := db.Exec(`INSERT INTO job_errors (job_id, error_message, created_at) VALUES (?, ?, ?)`,
		jobID, err.Error(), now)
	return e
}

// GetJobErrors returns the error messages recorded for a job.
func GetJobErrors(jobID string) ([]string, error) {
	rows, err := db.Query(`SELECT error_message FROM job_errors WHERE job_id = ? ORDER BY id`, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var msgs []string
	for rows.Next() {
		var msg string
		if err := rows.Scan(&msg); err != nil {
			return nil, err
		}
		msgs = append(msgs, msg)
	}
	return msgs, rows.Err()
}

// ListJobs returns all jobs with basic info, newest first.
func ListJobs() ([]map[string]interface{}, error) {
	rows, err := db.Query(`SELECT id, status, created_at, updated_at FROM jobs ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []map[string]interface{}
	for rows.Next() {
		var id, status string
		var createdAt, updatedAt time.Time
		if err := rows.Scan(&id, &status, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		jobs = append(jobs, map[string]interface{}{
			"id":        id,
			"status":    status,
			"createdAt": createdAt,
			"updatedAt": updatedAt,
		})
	}
	return jobs, rows.Err()
}

// GetJob fetches full job spec and status.
func GetJob(jobID string) (map[string]interface{}, error) {
	var specJSON string
	var status string
	var createdAt, updatedAt time.Time

	err := db.QueryRow(`SELECT spec, status, created_at, updated_at FROM jobs WHERE id = ?`, jobID).
		Scan(&specJSON, &status, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	var spec model.CleaningJobSpec
	if err := json.Unmarshal([]byte(specJSON), &spec); err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"id":        jobID,
		"spec":      spec,
		"status":    status,
		"createdAt": createdAt,
		"updatedAt": updatedAt,
	}, nil
}

// DeleteJob removes a job and everything recorded against it.
func DeleteJob(jobID string) error {
	for _, table := range []string{"audit_logs", "cleaning_metrics", "output_files", "job_errors", "jobs"} {
		if _, err := db.Exec(fmt.Sprintf(`DELETE FROM %s WHERE job_id = ?`, table), jobID); err != nil {
			return err
		}
	}
	return nil
}

// SaveAuditLog persists a run's ordered audit trail.
func SaveAuditLog(jobID string, entries []string) error {
	now := time.Now().UTC()
	for i, msg := range entries {
		if _, err := db.Exec(`INSERT INTO audit_logs (job_id, position, message, created_at) VALUES (?, ?, ?, ?)`,
			jobID, i, msg, now); err != nil {
			return err
		}
	}
	return nil
}

// GetAuditLog returns a job's audit trail in original order.
func GetAuditLog(jobID string) ([]string, error) {
	rows, err := db.Query(`SELECT message FROM audit_logs WHERE job_id = ? ORDER BY position`, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []string
	for rows.Next() {
		var msg string
		if err := rows.Scan(&msg); err != nil {
			return nil, err
		}
		entries = append(entries, msg)
	}
	return entries, rows.Err()
}

// SaveMetrics stores the quality report for a job.
func SaveMetrics(jobID string, rep cleaner.Report) error {
	repJSON, err := json.Marshal(rep)
	if err != nil {
		return err
	}
	_, err = db.Exec(`INSERT OR REPLACE INTO cleaning_metrics (job_id, report, created_at) VALUES (?, ?, ?)`,
		jobID, repJSON, time.Now().UTC())
	return err
}

// GetMetrics returns the stored quality report for a job.
func GetMetrics(jobID string) (cleaner.Report, error) {
	var repJSON string
	if err := db.QueryRow(`SELECT report FROM cleaning_metrics WHERE job_id = ?`, jobID).Scan(&repJSON); err != nil {
		return cleaner.Report{}, err
	}

	var rep cleaner.Report
	if err := json.Unmarshal([]byte(repJSON), &rep); err != nil {
		return cleaner.Report{}, err
	}
	return rep, nil
}

// SaveOutputFile records a file written for a job.
func SaveOutputFile(jobID, fileName, filePath, fileType string, recordCount int) error {
	_, err := db.Exec(`INSERT INTO output_files (job_id, file_name, file_path, file_type, record_count, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		jobID, fileName, filePath, fileType, recordCount, time.Now().UTC())
	return err
}

// GetOutputFiles returns the files recorded for a job.
func GetOutputFiles(jobID string) ([]map[string]interface{}, error) {
	rows, err := db.Query(`SELECT id, file_name, file_path, file_type, record_count, created_at
		FROM output_files WHERE job_id = ? ORDER BY id`, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var files []map[string]interface{}
	for rows.Next() {
		var id, recordCount int
		var fileName, filePath, fileType string
		var createdAt time.Time
		if err := rows.Scan(&id, &fileName, &filePath, &fileType, &recordCount, &createdAt); err != nil {
			return nil, err
		}
		files = append(files, map[string]interface{}{
			"id":           id,
			"file_name":    fileName,
			"file_path":    filePath,
			"file_type":    fileType,
			"record_count": recordCount,
			"created_at":   createdAt,
		})
	}
	return files, rows.Err()
}
