package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"go-wine-dashboard/internal/model"
	"go-wine-dashboard/internal/report"
	"go-wine-dashboard/internal/store"

	"github.com/google/uuid"
)

// CreateReport runs a full report for a filter and persists the run
// @Summary Create report
// @Description Compute every dashboard view for a filter and export CSV and JSON artifacts
// @Tags reports
// @Accept json
// @Produce json
// @Param report body model.ReportSpec true "Report filter"
// @Success 200 {object} map[string]interface{} "Report completed"
// @Failure 400 {object} map[string]interface{} "Invalid request payload"
// @Failure 500 {object} map[string]interface{} "Report failed"
// @Router /reports [post]
func (h *Dashboard) CreateReport(w http.ResponseWriter, r *http.Request) {
	var spec model.ReportSpec
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&spec); err != nil {
			writeError(w, http.StatusBadRequest, fmt.Errorf("invalid JSON payload: %w", err))
			return
		}
	}
	if _, err := validateFilter(spec.Filter); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	reportID := uuid.New().String()
	if err := store.SaveReport(reportID, spec); err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Errorf("failed to save report: %w", err))
		return
	}
	store.UpdateReportStatus(reportID, "running", 0)

	// Queries are cheap on a 6.5k-row dataset, so reports run inline
	results, recordCount, err := h.generator.Run(reportID, spec)
	if err != nil {
		store.UpdateReportStatus(reportID, "failed", recordCount)
		store.SaveReportError(reportID, err)
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	for _, res := range results {
		name := report.FileName(res)
		size, _ := h.generator.OutputManager().GetFileSize(res.Path)
		store.SaveOutputFile(model.OutputFile{
			ReportID:    reportID,
			FileName:    name,
			FilePath:    res.Path,
			FileType:    res.Type,
			SizeBytes:   size,
			DownloadURL: h.generator.OutputManager().GetDownloadURL(reportID, name),
		})
	}
	store.UpdateReportStatus(reportID, "completed", recordCount)

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":      "Report completed successfully!",
		"reportID":     reportID,
		"status":       "completed",
		"record_count": recordCount,
		"exports":      results,
	})
}

// ListReports retrieves all report runs
// @Summary List reports
// @Tags reports
// @Produce json
// @Success 200 {object} map[string]interface{} "List of reports"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /reports [get]
func (h *Dashboard) ListReports(w http.ResponseWriter, r *http.Request) {
	reports, err := store.ListReports()
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Errorf("failed to fetch reports: %w", err))
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"reports": reports,
		"count":   len(reports),
	})
}

// GetReport retrieves one report run
// @Summary Get report
// @Tags reports
// @Produce json
// @Param id path string true "Report ID"
// @Success 200 {object} model.Report
// @Failure 404 {object} map[string]interface{} "Report not found"
// @Router /reports/{id} [get]
func (h *Dashboard) GetReport(w http.ResponseWriter, r *http.Request) {
	reportID, ok := reportIDFromPath(w, r, "")
	if !ok {
		return
	}
	rep, err := store.GetReport(reportID)
	if err != nil {
		writeError(w, http.StatusNotFound, fmt.Errorf("report not found"))
		return
	}
	writeJSON(w, http.StatusOK, rep)
}

// GetReportFiles retrieves the artifacts of a report run
// @Summary Get report files
// @Tags reports
// @Produce json
// @Param id path string true "Report ID"
// @Success 200 {object} map[string]interface{} "Report files"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /reports/{id}/files [get]
func (h *Dashboard) GetReportFiles(w http.ResponseWriter, r *http.Request) {
	reportID, ok := reportIDFromPath(w, r, "/files")
	if !ok {
		return
	}
	files, err := store.GetOutputFiles(reportID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Errorf("failed to retrieve files: %w", err))
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"report_id": reportID,
		"files":     files,
		"count":     len(files),
	})
}

// GetReportErrors retrieves the recorded errors of a report run
// @Summary Get report errors
// @Tags reports
// @Produce json
// @Param id path string true "Report ID"
// @Success 200 {object} map[string]interface{} "Report errors"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /reports/{id}/errors [get]
func (h *Dashboard) GetReportErrors(w http.ResponseWriter, r *http.Request) {
	reportID, ok := reportIDFromPath(w, r, "/errors")
	if !ok {
		return
	}
	errs, err := store.GetReportErrors(reportID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Errorf("failed to retrieve errors: %w", err))
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"report_id": reportID,
		"errors":    errs,
		"count":     len(errs),
	})
}

// DownloadFile serves a report artifact for download
// @Summary Download report artifact
// @Tags reports
// @Produce application/octet-stream
// @Param id path string true "Report ID"
// @Param filename path string true "File name"
// @Success 200 {file} file "File download"
// @Failure 404 {object} map[string]interface{} "File not found"
// @Router /download/{id}/{filename} [get]
func (h *Dashboard) DownloadFile(w http.ResponseWriter, r *http.Request) {
	// URL format: /api/v1/download/{reportID}/{filename}
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if len(parts) < 5 {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid download path"))
		return
	}
	reportID, fileName := parts[3], filepath.Base(parts[4])

	filePath := filepath.Join(h.outputDir, reportID, fileName)
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		writeError(w, http.StatusNotFound, fmt.Errorf("file not found"))
		return
	}

	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	w.Header().Set("Content-Type", "application/octet-stream")
	http.ServeFile(w, r, filePath)
}

// reportIDFromPath extracts the report ID between the reports prefix and
// an optional suffix
func reportIDFromPath(w http.ResponseWriter, r *http.Request, suffix string) (string, bool) {
	path := r.URL.Path
	prefix := "/api/v1/reports/"

	if !strings.HasPrefix(path, prefix) || !strings.HasSuffix(path, suffix) {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid path"))
		return "", false
	}
	reportID := path[len(prefix) : len(path)-len(suffix)]
	if reportID == "" || strings.Contains(reportID, "/") {
		writeError(w, http.StatusBadRequest, fmt.Errorf("report ID is required"))
		return "", false
	}
	return reportID, true
}

// validateFilter rejects filters that could never match the dataset
func validateFilter(f model.Filter) (model.Filter, error) {
	for _, t := range f.Types {
		if t != model.Red && t != model.White {
			return f, fmt.Errorf("unknown wine type: %q", t)
		}
	}
	if f.MinQuality > 0 && f.MaxQuality > 0 && f.MinQuality > f.MaxQuality {
		return f, fmt.Errorf("minQuality %d exceeds maxQuality %d", f.MinQuality, f.MaxQuality)
	}
	return f, nil
}
