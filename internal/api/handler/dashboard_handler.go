package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"go-wine-dashboard/internal/analysis"
	"go-wine-dashboard/internal/model"
	"go-wine-dashboard/internal/report"
)

// Dashboard serves the analytics API over the dataset loaded at startup.
// The dataset is immutable; every handler is a read-only projection.
type Dashboard struct {
	dataset   *model.Dataset
	generator *report.Generator
	outputDir string
}

// NewDashboard creates the handler set for a loaded dataset
func NewDashboard(ds *model.Dataset, outputDir string) *Dashboard {
	return &Dashboard{
		dataset:   ds,
		generator: report.NewGenerator(ds, outputDir),
		outputDir: outputDir,
	}
}

// GetSummary returns headline metrics for the (optionally filtered) dataset
// @Summary Dataset summary
// @Description Record counts and mean quality, alcohol, pH and density for the filtered dataset
// @Tags dataset
// @Produce json
// @Param types query string false "Comma-separated wine types (red,white)"
// @Param minQuality query int false "Minimum quality score"
// @Param maxQuality query int false "Maximum quality score"
// @Success 200 {object} model.SummaryStats
// @Failure 400 {object} map[string]interface{} "Invalid filter"
// @Router /dataset/summary [get]
func (h *Dashboard) GetSummary(w http.ResponseWriter, r *http.Request) {
	filtered, ok := h.filtered(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, analysis.Summary(filtered))
}

// GetRecords returns a page of the raw data table
// @Summary Raw records
// @Description Page through the filtered records of the merged dataset
// @Tags dataset
// @Produce json
// @Param limit query int false "Page size (default 100)"
// @Param offset query int false "Page offset"
// @Success 200 {object} map[string]interface{} "Records page"
// @Failure 400 {object} map[string]interface{} "Invalid filter"
// @Router /dataset/records [get]
func (h *Dashboard) GetRecords(w http.ResponseWriter, r *http.Request) {
	filtered, ok := h.filtered(w, r)
	if !ok {
		return
	}

	limit := 100
	if s := r.URL.Query().Get("limit"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v > 0 {
			limit = v
		}
	}
	offset := 0
	if s := r.URL.Query().Get("offset"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v >= 0 {
			offset = v
		}
	}

	total := filtered.Len()
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"records": filtered.Records[offset:end],
		"count":   end - offset,
		"total":   total,
		"limit":   limit,
		"offset":  offset,
	})
}

// GetColumns returns the dataset's column schema
// @Summary Column schema
// @Tags dataset
// @Produce json
// @Success 200 {object} map[string]interface{} "Columns"
// @Router /dataset/columns [get]
func (h *Dashboard) GetColumns(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"columns": h.dataset.Columns,
		"count":   len(h.dataset.Columns),
	})
}

// GetAggregate computes a grouped aggregate
// @Summary Grouped aggregate
// @Description Group the filtered dataset and aggregate one column (count, mean or median)
// @Tags analysis
// @Produce json
// @Param op query string true "Aggregate operation: count, mean or median"
// @Param column query string false "Column to aggregate (required for mean/median)"
// @Param groupBy query string true "Comma-separated group-by columns (type, quality, ...)"
// @Success 200 {object} map[string]interface{} "Grouped results"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Router /aggregate [get]
func (h *Dashboard) GetAggregate(w http.ResponseWriter, r *http.Request) {
	filtered, ok := h.filtered(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	spec := model.AggregateSpec{
		Op:     model.AggregateOp(q.Get("op")),
		Column: q.Get("column"),
	}
	for _, col := range strings.Split(q.Get("groupBy"), ",") {
		if col = strings.TrimSpace(col); col != "" {
			spec.GroupBy = append(spec.GroupBy, col)
		}
	}

	groups, err := analysis.Aggregate(filtered, spec)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"spec":    spec,
		"groups":  groups,
		"count":   len(groups),
		"records": filtered.Len(),
	})
}

// GetHistogram returns the per-type value distribution of a column
// @Summary Histogram
// @Tags analysis
// @Produce json
// @Param column query string true "Column to bucket"
// @Success 200 {object} model.Histogram
// @Failure 400 {object} map[string]interface{} "Invalid column"
// @Router /histogram [get]
func (h *Dashboard) GetHistogram(w http.ResponseWriter, r *http.Request) {
	filtered, ok := h.filtered(w, r)
	if !ok {
		return
	}
	hist, err := analysis.Histogram(filtered, r.URL.Query().Get("column"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, hist)
}

// GetCorrelation computes the Pearson coefficient between two columns
// @Summary Pairwise correlation
// @Tags analysis
// @Produce json
// @Param x query string true "First column"
// @Param y query string true "Second column"
// @Success 200 {object} model.CorrelationResult
// @Failure 400 {object} map[string]interface{} "Invalid column"
// @Router /correlation [get]
func (h *Dashboard) GetCorrelation(w http.ResponseWriter, r *http.Request) {
	filtered, ok := h.filtered(w, r)
	if !ok {
		return
	}
	res, err := analysis.Correlate(filtered, r.URL.Query().Get("x"), r.URL.Query().Get("y"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// GetCorrelationMatrix computes the full Pearson matrix
// @Summary Correlation matrix
// @Description Pairwise Pearson coefficients over every numeric column of the filtered dataset
// @Tags analysis
// @Produce json
// @Success 200 {object} model.CorrelationMatrix
// @Failure 400 {object} map[string]interface{} "Invalid filter"
// @Router /correlation/matrix [get]
func (h *Dashboard) GetCorrelationMatrix(w http.ResponseWriter, r *http.Request) {
	filtered, ok := h.filtered(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, analysis.CorrelationMatrix(filtered))
}

// filtered parses the filter query params and applies them; on a bad
// filter it writes the 400 itself and returns ok=false
func (h *Dashboard) filtered(w http.ResponseWriter, r *http.Request) (*model.Dataset, bool) {
	f, err := parseFilter(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return nil, false
	}
	return analysis.Apply(h.dataset, f), true
}

func parseFilter(r *http.Request) (model.Filter, error) {
	var f model.Filter
	q := r.URL.Query()

	if types := q.Get("types"); types != "" {
		for _, t := range strings.Split(types, ",") {
			switch wt := model.WineType(strings.TrimSpace(strings.ToLower(t))); wt {
			case model.Red, model.White:
				f.Types = append(f.Types, wt)
			default:
				return f, fmt.Errorf("unknown wine type: %q", t)
			}
		}
	}
	var err error
	if f.MinQuality, err = intParam(q.Get("minQuality")); err != nil {
		return f, fmt.Errorf("invalid minQuality: %w", err)
	}
	if f.MaxQuality, err = intParam(q.Get("maxQuality")); err != nil {
		return f, fmt.Errorf("invalid maxQuality: %w", err)
	}
	if f.MinQuality > 0 && f.MaxQuality > 0 && f.MinQuality > f.MaxQuality {
		return f, fmt.Errorf("minQuality %d exceeds maxQuality %d", f.MinQuality, f.MaxQuality)
	}
	return f, nil
}

func intParam(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]interface{}{"error": err.Error()})
}
