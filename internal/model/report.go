package model

import "time"

// ReportSpec is the body of POST /api/v1/reports
type ReportSpec struct {
	Filter Filter `json:"filter"`
}

// Report is a persisted report run
type Report struct {
	ID          string     `json:"id"`
	Spec        ReportSpec `json:"spec"`
	Status      string     `json:"status"` // pending, running, completed, failed
	RecordCount int        `json:"record_count"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// ExportResult represents the outcome of writing one report artifact
type ExportResult struct {
	Type        string    `json:"type"` // "csv", "json"
	Path        string    `json:"path"`
	RecordCount int       `json:"record_count"`
	Success     bool      `json:"success"`
	Error       string    `json:"error,omitempty"`
	ExportedAt  time.Time `json:"exported_at"`
}

// OutputFile describes a downloadable report artifact
type OutputFile struct {
	ID          int       `json:"id"`
	ReportID    string    `json:"report_id"`
	FileName    string    `json:"file_name"`
	FilePath    string    `json:"file_path"`
	FileType    string    `json:"file_type"`
	SizeBytes   int64     `json:"size_bytes"`
	DownloadURL string    `json:"download_url"`
	CreatedAt   time.Time `json:"createdAt"`
}
