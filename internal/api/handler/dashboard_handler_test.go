package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-wine-dashboard/internal/model"
	"go-wine-dashboard/internal/store"
)

func testRecord(t model.WineType, quality int, alcohol float64) model.Record {
	return model.Record{
		Type: t,
		Measurements: map[string]float64{
			"alcohol":             alcohol,
			"pH":                  3.2,
			"density":             0.996,
			"volatile acidity":    0.5,
			"residual sugar":      2.0,
			"free sulfur dioxide": 30,
			model.QualityColumn:   float64(quality),
		},
	}
}

func testDashboard(t *testing.T) *Dashboard {
	t.Helper()
	ds := &model.Dataset{
		Columns: []string{
			"alcohol", "pH", "density", "volatile acidity",
			"residual sugar", "free sulfur dioxide", model.QualityColumn,
		},
		Records: []model.Record{
			testRecord(model.Red, 5, 9.4),
			testRecord(model.Red, 6, 10.0),
			testRecord(model.White, 5, 8.8),
			testRecord(model.White, 6, 11.0),
			testRecord(model.White, 7, 12.0),
		},
		SourceCounts: map[model.WineType]int{model.Red: 2, model.White: 3},
	}
	return NewDashboard(ds, t.TempDir())
}

func get(t *testing.T, h http.HandlerFunc, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

func TestGetSummary(t *testing.T) {
	h := testDashboard(t)

	tests := []struct {
		name        string
		target      string
		wantCode    int
		wantRecords int
	}{
		{"unfiltered", "/api/v1/dataset/summary", http.StatusOK, 5},
		{"red only", "/api/v1/dataset/summary?types=red", http.StatusOK, 2},
		{"quality range", "/api/v1/dataset/summary?minQuality=6&maxQuality=7", http.StatusOK, 3},
		{"bad type", "/api/v1/dataset/summary?types=rose", http.StatusBadRequest, 0},
		{"bad range", "/api/v1/dataset/summary?minQuality=8&maxQuality=5", http.StatusBadRequest, 0},
		{"bad int", "/api/v1/dataset/summary?minQuality=five", http.StatusBadRequest, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, h.GetSummary, tt.target)
			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantCode != http.StatusOK {
				return
			}
			var stats model.SummaryStats
			decode(t, rec, &stats)
			assert.Equal(t, tt.wantRecords, stats.Records)
		})
	}
}

func TestGetRecords_Pagination(t *testing.T) {
	h := testDashboard(t)

	rec := get(t, h.GetRecords, "/api/v1/dataset/records?limit=2&offset=1")
	require.Equal(t, http.StatusOK, rec.Code)

	var page struct {
		Records []model.Record `json:"records"`
		Count   int            `json:"count"`
		Total   int            `json:"total"`
	}
	decode(t, rec, &page)
	assert.Equal(t, 2, page.Count)
	assert.Equal(t, 5, page.Total)
	require.Len(t, page.Records, 2)
	assert.Equal(t, 10.0, page.Records[0].Measurements["alcohol"])
}

func TestGetRecords_OffsetPastEnd(t *testing.T) {
	h := testDashboard(t)

	rec := get(t, h.GetRecords, "/api/v1/dataset/records?offset=99")
	require.Equal(t, http.StatusOK, rec.Code)

	var page struct {
		Count int `json:"count"`
		Total int `json:"total"`
	}
	decode(t, rec, &page)
	assert.Equal(t, 0, page.Count)
	assert.Equal(t, 5, page.Total)
}

func TestGetColumns(t *testing.T) {
	h := testDashboard(t)

	rec := get(t, h.GetColumns, "/api/v1/dataset/columns")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Columns []string `json:"columns"`
		Count   int      `json:"count"`
	}
	decode(t, rec, &body)
	assert.Equal(t, 7, body.Count)
	assert.Contains(t, body.Columns, model.QualityColumn)
}

func TestGetAggregate(t *testing.T) {
	h := testDashboard(t)

	rec := get(t, h.GetAggregate, "/api/v1/aggregate?op=mean&column=alcohol&groupBy=quality")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Groups []model.GroupResult `json:"groups"`
	}
	decode(t, rec, &body)
	require.Len(t, body.Groups, 3)
	assert.Equal(t, "5", body.Groups[0].Key)
	assert.InDelta(t, 9.1, body.Groups[0].Value, 1e-9) // (9.4+8.8)/2
}

func TestGetAggregate_BadRequest(t *testing.T) {
	h := testDashboard(t)

	tests := []string{
		"/api/v1/aggregate?op=sum&column=alcohol&groupBy=quality",
		"/api/v1/aggregate?op=mean&column=vintage&groupBy=quality",
		"/api/v1/aggregate?op=mean&column=alcohol",
	}
	for _, target := range tests {
		rec := get(t, h.GetAggregate, target)
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
	}
}

func TestGetHistogram(t *testing.T) {
	h := testDashboard(t)

	rec := get(t, h.GetHistogram, "/api/v1/histogram?column=quality")
	require.Equal(t, http.StatusOK, rec.Code)

	var hist model.Histogram
	decode(t, rec, &hist)
	assert.Len(t, hist.Buckets, 3)

	rec = get(t, h.GetHistogram, "/api/v1/histogram?column=vintage")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetCorrelation(t *testing.T) {
	h := testDashboard(t)

	rec := get(t, h.GetCorrelation, "/api/v1/correlation?x=alcohol&y=quality")
	require.Equal(t, http.StatusOK, rec.Code)

	var res model.CorrelationResult
	decode(t, rec, &res)
	assert.Equal(t, "alcohol", res.ColumnX)
	assert.Equal(t, 5, res.SampleSize)
	require.NotNil(t, res.Coefficient)

	rec = get(t, h.GetCorrelation, "/api/v1/correlation?x=alcohol&y=vintage")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetCorrelation_UndefinedIsNull(t *testing.T) {
	h := testDashboard(t)

	// pH is constant in the fixture, so the coefficient is undefined
	rec := get(t, h.GetCorrelation, "/api/v1/correlation?x=alcohol&y=pH")
	require.Equal(t, http.StatusOK, rec.Code)

	var raw map[string]json.RawMessage
	decode(t, rec, &raw)
	assert.Equal(t, "null", string(raw["coefficient"]))
}

func TestGetCorrelationMatrix(t *testing.T) {
	h := testDashboard(t)

	rec := get(t, h.GetCorrelationMatrix, "/api/v1/correlation/matrix")
	require.Equal(t, http.StatusOK, rec.Code)

	var m model.CorrelationMatrix
	decode(t, rec, &m)
	require.Len(t, m.Columns, 7)
	require.Len(t, m.Values, 7)
	for i := range m.Values {
		assert.Len(t, m.Values[i], 7)
	}
}

func TestReportIDFromPath(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		suffix string
		wantID string
		wantOK bool
	}{
		{"plain id", "/api/v1/reports/abc-123", "", "abc-123", true},
		{"with suffix", "/api/v1/reports/abc-123/files", "/files", "abc-123", true},
		{"empty id", "/api/v1/reports/", "", "", false},
		{"nested id", "/api/v1/reports/a/b", "", "", false},
		{"wrong suffix", "/api/v1/reports/abc-123", "/files", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			rec := httptest.NewRecorder()
			id, ok := reportIDFromPath(rec, req, tt.suffix)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantID, id)
			} else {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
			}
		})
	}
}

func TestDownloadFile_BadPath(t *testing.T) {
	h := testDashboard(t)

	rec := get(t, h.DownloadFile, "/api/v1/download/report-1")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = get(t, h.DownloadFile, "/api/v1/download/report-1/missing.csv")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestValidateFilter(t *testing.T) {
	_, err := validateFilter(model.Filter{Types: []model.WineType{"rose"}})
	assert.Error(t, err)

	_, err = validateFilter(model.Filter{MinQuality: 8, MaxQuality: 5})
	assert.Error(t, err)

	_, err = validateFilter(model.Filter{Types: []model.WineType{model.Red}, MinQuality: 5, MaxQuality: 8})
	assert.NoError(t, err)
}

func TestReportFlow(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	require.NoError(t, store.InitDB(dbPath))
	t.Cleanup(func() { store.CloseDB() })

	h := testDashboard(t)

	// Create a report with a filter payload
	body := strings.NewReader(`{"filter":{"types":["white"],"minQuality":6}}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reports", body)
	rec := httptest.NewRecorder()
	h.CreateReport(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var created struct {
		ReportID    string               `json:"reportID"`
		Status      string               `json:"status"`
		RecordCount int                  `json:"record_count"`
		Exports     []model.ExportResult `json:"exports"`
	}
	decode(t, rec, &created)
	require.NotEmpty(t, created.ReportID)
	assert.Equal(t, "completed", created.Status)
	assert.Equal(t, 2, created.RecordCount)
	require.Len(t, created.Exports, 2)

	// The run is persisted
	rec = get(t, h.GetReport, "/api/v1/reports/"+created.ReportID)
	require.Equal(t, http.StatusOK, rec.Code)
	var rep model.Report
	decode(t, rec, &rep)
	assert.Equal(t, "completed", rep.Status)
	assert.Equal(t, 2, rep.RecordCount)
	assert.Equal(t, []model.WineType{model.White}, rep.Spec.Filter.Types)

	// Artifacts are registered with download URLs
	rec = get(t, h.GetReportFiles, "/api/v1/reports/"+created.ReportID+"/files")
	require.Equal(t, http.StatusOK, rec.Code)
	var files struct {
		Files []model.OutputFile `json:"files"`
		Count int                `json:"count"`
	}
	decode(t, rec, &files)
	require.Equal(t, 2, files.Count)
	for _, f := range files.Files {
		assert.Equal(t, "/api/v1/download/"+created.ReportID+"/"+f.FileName, f.DownloadURL)
		assert.Greater(t, f.SizeBytes, int64(0))
	}

	// And they can be downloaded
	rec = get(t, h.DownloadFile, files.Files[0].DownloadURL)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Body.Bytes())

	// No errors were recorded for a successful run
	rec = get(t, h.GetReportErrors, "/api/v1/reports/"+created.ReportID+"/errors")
	require.Equal(t, http.StatusOK, rec.Code)
	var errsBody struct {
		Count int `json:"count"`
	}
	decode(t, rec, &errsBody)
	assert.Equal(t, 0, errsBody.Count)
}

func TestCreateReport_BadPayload(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	require.NoError(t, store.InitDB(dbPath))
	t.Cleanup(func() { store.CloseDB() })

	h := testDashboard(t)

	tests := []struct {
		name string
		body string
	}{
		{"invalid JSON", `{"filter":`},
		{"unknown type", `{"filter":{"types":["rose"]}}`},
		{"inverted range", `{"filter":{"minQuality":8,"maxQuality":5}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/reports", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			h.CreateReport(rec, req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestListReports_Empty(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	require.NoError(t, store.InitDB(dbPath))
	t.Cleanup(func() { store.CloseDB() })

	h := testDashboard(t)

	rec := get(t, h.ListReports, "/api/v1/reports")
	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Count int `json:"count"`
	}
	decode(t, rec, &body)
	assert.Equal(t, 0, body.Count)
}

func TestGetReport_NotFound(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	require.NoError(t, store.InitDB(dbPath))
	t.Cleanup(func() { store.CloseDB() })

	h := testDashboard(t)

	rec := get(t, h.GetReport, "/api/v1/reports/no-such-report")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
