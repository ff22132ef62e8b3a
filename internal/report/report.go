package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"go-wine-dashboard/internal/analysis"
	"go-wine-dashboard/internal/model"
	"go-wine-dashboard/pkg/utils"
)

// ChartColumns are the measurement columns the dashboard charts against
// quality; the report tabulates their per-quality means.
var ChartColumns = []string{
	analysis.AlcoholColumn,
	analysis.DensityColumn,
	"volatile acidity",
	"residual sugar",
	"free sulfur dioxide",
}

// Data is the full content of a generated report
type Data struct {
	Summary          model.SummaryStats             `json:"summary"`
	QualityHistogram model.Histogram                `json:"quality_histogram"`
	MeansByQuality   map[string][]model.GroupResult `json:"means_by_quality"` // column -> per-quality means
	Correlations     model.CorrelationMatrix        `json:"correlations"`
}

// Generator produces report artifacts from the loaded dataset
type Generator struct {
	dataset *model.Dataset
	output  *utils.OutputManager
}

// NewGenerator creates a report generator writing under the given
// output directory
func NewGenerator(ds *model.Dataset, outputDir string) *Generator {
	return &Generator{
		dataset: ds,
		output:  utils.NewOutputManager(outputDir),
	}
}

// Run applies the report filter, computes every dashboard view and
// writes report.csv and report.json into the report's output directory.
// It returns one ExportResult per artifact plus the filtered record
// count.
func (g *Generator) Run(reportID string, spec model.ReportSpec) ([]model.ExportResult, int, error) {
	filtered := analysis.Apply(g.dataset, spec.Filter)
	fmt.Printf("📊 Report %s: %d of %d records match the filter\n", reportID, filtered.Len(), g.dataset.Len())

	data, err := g.build(filtered)
	if err != nil {
		return nil, filtered.Len(), err
	}

	var results []model.ExportResult
	csvResult := g.exportCSV(reportID, data)
	results = append(results, csvResult)
	jsonResult := g.exportJSON(reportID, data)
	results = append(results, jsonResult)

	for _, r := range results {
		if !r.Success {
			return results, filtered.Len(), fmt.Errorf("report export failed: %s", r.Error)
		}
	}
	fmt.Printf("💾 Report %s: %d artifacts written\n", reportID, len(results))
	return results, filtered.Len(), nil
}

func (g *Generator) build(ds *model.Dataset) (*Data, error) {
	hist, err := analysis.Histogram(ds, model.QualityColumn)
	if err != nil {
		return nil, err
	}

	means := make(map[string][]model.GroupResult, len(ChartColumns))
	for _, col := range ChartColumns {
		groups, err := analysis.Aggregate(ds, model.AggregateSpec{
			GroupBy: []string{model.QualityColumn},
			Column:  col,
			Op:      model.OpMean,
		})
		if err != nil {
			return nil, err
		}
		means[col] = groups
	}

	return &Data{
		Summary:          analysis.Summary(ds),
		QualityHistogram: hist,
		MeansByQuality:   means,
		Correlations:     analysis.CorrelationMatrix(ds),
	}, nil
}

// exportCSV writes the per-quality means table: one row per quality
// score, one mean column per chart column.
func (g *Generator) exportCSV(reportID string, data *Data) model.ExportResult {
	result := model.ExportResult{Type: "csv", ExportedAt: time.Now()}

	path, err := g.output.GetOutputFilePath(reportID, "report.csv")
	if err != nil {
		result.Error = err.Error()
		return result
	}
	result.Path = path

	file, err := os.Create(path)
	if err != nil {
		result.Error = fmt.Sprintf("failed to create file: %v", err)
		return result
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()

	header := []string{"quality", "count"}
	for _, col := range ChartColumns {
		header = append(header, "mean_"+col)
	}
	if err := w.Write(header); err != nil {
		result.Error = fmt.Sprintf("failed to write header: %v", err)
		return result
	}

	// Every column is grouped by the same quality values, so the first
	// column's groups drive the rows
	rowCount := 0
	for i, group := range data.MeansByQuality[ChartColumns[0]] {
		row := []string{group.Key, strconv.Itoa(group.Count)}
		for _, col := range ChartColumns {
			row = append(row, utils.FormatMeasurement(data.MeansByQuality[col][i].Value))
		}
		if err := w.Write(row); err != nil {
			result.Error = fmt.Sprintf("failed to write row: %v", err)
			return result
		}
		rowCount++
	}

	result.RecordCount = rowCount
	result.Success = true
	return result
}

// exportJSON writes the complete report data with an info envelope
func (g *Generator) exportJSON(reportID string, data *Data) model.ExportResult {
	result := model.ExportResult{Type: "json", ExportedAt: time.Now()}

	path, err := g.output.GetOutputFilePath(reportID, "report.json")
	if err != nil {
		result.Error = err.Error()
		return result
	}
	result.Path = path

	file, err := os.Create(path)
	if err != nil {
		result.Error = fmt.Sprintf("failed to create file: %v", err)
		return result
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	envelope := map[string]interface{}{
		"report_info": map[string]interface{}{
			"report_id":    reportID,
			"exported_at":  time.Now().UTC(),
			"record_count": data.Summary.Records,
		},
		"data": data,
	}
	if err := encoder.Encode(envelope); err != nil {
		result.Error = fmt.Sprintf("failed to encode JSON: %v", err)
		return result
	}

	result.RecordCount = data.Summary.Records
	result.Success = true
	return result
}

// OutputManager exposes the generator's output manager so callers can
// resolve artifact sizes and download URLs
func (g *Generator) OutputManager() *utils.OutputManager {
	return g.output
}

// FileName extracts the artifact name from an export result path
func FileName(r model.ExportResult) string {
	return filepath.Base(r.Path)
}
