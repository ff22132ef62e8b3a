package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// OutputManager handles report output file organization and path management
type OutputManager struct {
	BaseOutputDir string
}

// NewOutputManager creates a new output manager
func NewOutputManager(baseOutputDir string) *OutputManager {
	return &OutputManager{BaseOutputDir: baseOutputDir}
}

// CreateReportOutputDir creates the per-report directory for its artifacts
func (om *OutputManager) CreateReportOutputDir(reportID string) (string, error) {
	dir := filepath.Join(om.BaseOutputDir, reportID)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create report output directory: %w", err)
	}
	return dir, nil
}

// GetOutputFilePath generates a full path for a report artifact
func (om *OutputManager) GetOutputFilePath(reportID, fileName string) (string, error) {
	dir, err := om.CreateReportOutputDir(reportID)
	if err != nil {
		return "", err
	}
	// Strip any path separators from the name
	return filepath.Join(dir, filepath.Base(fileName)), nil
}

// GetDownloadURL generates the download URL for a report artifact
func (om *OutputManager) GetDownloadURL(reportID, fileName string) string {
	return fmt.Sprintf("/api/v1/download/%s/%s", reportID, filepath.Base(fileName))
}

// GetFileType determines the file type based on extension
func (om *OutputManager) GetFileType(fileName string) string {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".csv":
		return "csv"
	case ".json":
		return "json"
	case ".txt":
		return "text"
	default:
		return "unknown"
	}
}

// GetFileSize returns the size of a file in bytes
func (om *OutputManager) GetFileSize(filePath string) (int64, error) {
	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return 0, err
	}
	return fileInfo.Size(), nil
}
