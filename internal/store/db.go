package store

import (
	"database/sql"
	"encoding/json"
	"time"

	"go-wine-dashboard/internal/model"

	_ "github.com/mattn/go-sqlite3"
)

var db *sql.DB

// InitDB opens the sqlite database and creates the report tables
func InitDB(dbPath string) error {
	var err error
	db, err = sql.Open("sqlite3", dbPath)
	if err != nil {
		return err
	}

	reportTable := `
	CREATE TABLE IF NOT EXISTS reports (
		id TEXT PRIMARY KEY,
		spec TEXT,
		status TEXT,
		record_count INTEGER,
		created_at DATETIME,
		updated_at DATETIME
	);
	`
	errorTable := `
	CREATE TABLE IF NOT EXISTS report_errors (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		report_id TEXT,
		error_message TEXT,
		created_at DATETIME
	);
	`
	fileTable := `
	CREATE TABLE IF NOT EXISTS report_files (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		report_id TEXT,
		file_name TEXT,
		file_path TEXT,
		file_type TEXT,
		size_bytes INTEGER,
		download_url TEXT,
		created_at DATETIME
	);
	`

	for _, stmt := range []string{reportTable, errorTable, fileTable} {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// CloseDB closes the database connection
func CloseDB() error {
	if db == nil {
		return nil
	}
	return db.Close()
}

// SaveReport stores a new report run in pending state
func SaveReport(reportID string, spec model.ReportSpec) error {
	specJSON, err := json.Marshal(spec)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	_, err = db.Exec(`INSERT INTO reports (id, spec, status, record_count, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)`,
		reportID, specJSON, "pending", 0, now, now)
	return err
}

// UpdateReportStatus updates a report's status and record count
func UpdateReportStatus(reportID, status string, recordCount int) error {
	now := time.Now().UTC()
	_, err := db.Exec(`UPDATE reports SET status = ?, record_count = ?, updated_at = ? WHERE id = ?`,
		status, recordCount, now, reportID)
	return err
}

// ListReports returns all report runs, newest first
func ListReports() ([]model.Report, error) {
	rows, err := db.Query(`SELECT id, spec, status, record_count, created_at, updated_at FROM reports ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []model.Report
	for rows.Next() {
		r, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		reports = append(reports, r)
	}
	return reports, rows.Err()
}

// GetReport fetches a single report run by ID
func GetReport(reportID string) (model.Report, error) {
	row := db.QueryRow(`SELECT id, spec, status, record_count, created_at, updated_at FROM reports WHERE id = ?`, reportID)
	return scanReport(row)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReport(row rowScanner) (model.Report, error) {
	var r model.Report
	var specJSON string
	if err := row.Scan(&r.ID, &specJSON, &r.Status, &r.RecordCount, &r.CreatedAt, &r.UpdatedAt); err != nil {
		return model.Report{}, err
	}
	if err := json.Unmarshal([]byte(specJSON), &r.Spec); err != nil {
		return model.Report{}, err
	}
	return r, nil
}

// SaveReportError records an error for a report run
func SaveReportError(reportID string, err error) error {
	if err == nil {
		return nil
	}
	now := time.Now().UTC()
	_, e := db.Exec(`INSERT INTO report_errors (report_id, error_message, created_at) VALUES (?, ?, ?)`,
		reportID, err.Error(), now)
	return e
}

// GetReportErrors returns all recorded errors for a report run
func GetReportErrors(reportID string) ([]string, error) {
	rows, err := db.Query(`SELECT error_message FROM report_errors WHERE report_id = ? ORDER BY created_at`, reportID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []string
	for rows.Next() {
		var msg string
		if err := rows.Scan(&msg); err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}
	return messages, rows.Err()
}

// SaveOutputFile records a report artifact for later download
func SaveOutputFile(f model.OutputFile) error {
	now := time.Now().UTC()
	_, err := db.Exec(`INSERT INTO report_files (report_id, file_name, file_path, file_type, size_bytes, download_url, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		f.ReportID, f.FileName, f.FilePath, f.FileType, f.SizeBytes, f.DownloadURL, now)
	return err
}

// GetOutputFiles returns the artifacts of a report run
func GetOutputFiles(reportID string) ([]model.OutputFile, error) {
	rows, err := db.Query(`SELECT id, report_id, file_name, file_path, file_type, size_bytes, download_url, created_at FROM report_files WHERE report_id = ? ORDER BY id`, reportID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var files []model.OutputFile
	for rows.Next() {
		var f model.OutputFile
		if err := rows.Scan(&f.ID, &f.ReportID, &f.FileName, &f.FilePath, &f.FileType, &f.SizeBytes, &f.DownloadURL, &f.CreatedAt); err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return files, rows.Err()
}
