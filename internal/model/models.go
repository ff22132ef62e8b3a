package model

import "math"

// WineType is the categorical tag assigned to a record during the merge
type WineType string

const (
	Red   WineType = "red"
	White WineType = "white"
)

// Record represents a single wine sample with its chemical measurements.
// Measurements holds every numeric column from the source file, including
// the quality score.
type Record struct {
	Measurements map[string]float64 `json:"measurements"`
	Type         WineType           `json:"type"`
}

// Quality returns the record's integer quality score
func (r Record) Quality() int {
	return int(r.Measurements[QualityColumn])
}

// QualityColumn is the name of the quality score column in the source files
const QualityColumn = "quality"

// Dataset is the merged, immutable collection of records from both sources
type Dataset struct {
	Columns      []string         `json:"columns"` // numeric columns, in source header order
	Records      []Record         `json:"records"`
	SourceCounts map[WineType]int `json:"source_counts"`
}

// Len returns the total number of records in the dataset
func (ds *Dataset) Len() int {
	return len(ds.Records)
}

// HasColumn reports whether the dataset schema contains the given column
func (ds *Dataset) HasColumn(name string) bool {
	for _, c := range ds.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// Filter selects a subset of records the way the dashboard sidebar does:
// by wine type and inclusive quality range
type Filter struct {
	Types      []WineType `json:"types"`      // empty means both
	MinQuality int        `json:"minQuality"` // 0 means unbounded
	MaxQuality int        `json:"maxQuality"` // 0 means unbounded
}

// Matches reports whether a record passes the filter
func (f Filter) Matches(r Record) bool {
	if len(f.Types) > 0 {
		found := false
		for _, t := range f.Types {
			if r.Type == t {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	q := r.Quality()
	if f.MinQuality > 0 && q < f.MinQuality {
		return false
	}
	if f.MaxQuality > 0 && q > f.MaxQuality {
		return false
	}
	return true
}

// AggregateOp identifies a supported aggregate operation
type AggregateOp string

const (
	OpCount  AggregateOp = "count"
	OpMean   AggregateOp = "mean"
	OpMedian AggregateOp = "median"
)

// AggregateSpec describes a grouped aggregation request
type AggregateSpec struct {
	GroupBy []string    `json:"groupBy"` // one or more column names, or "type"
	Column  string      `json:"column"`  // column to aggregate (ignored for count)
	Op      AggregateOp `json:"op"`
}

// GroupResult is one (group key, aggregate value) pair of an aggregation
type GroupResult struct {
	Key    string            `json:"key"`    // group values joined with "/"
	Groups map[string]string `json:"groups"` // group column -> value
	Value  float64           `json:"value"`
	Count  int               `json:"count"`
}

// CorrelationResult holds a Pearson coefficient between two columns.
// Coefficient is nil when fewer than two samples exist or a column has
// zero variance.
type CorrelationResult struct {
	ColumnX     string   `json:"column_x"`
	ColumnY     string   `json:"column_y"`
	Coefficient *float64 `json:"coefficient"`
	SampleSize  int      `json:"sample_size"`
}

// CorrelationMatrix is the pairwise Pearson matrix over numeric columns
type CorrelationMatrix struct {
	Columns []string     `json:"columns"`
	Values  [][]*float64 `json:"values"` // Values[i][j] = corr(Columns[i], Columns[j])
}

// HistogramBucket is one distinct value of a histogram column with
// per-type counts
type HistogramBucket struct {
	Value  float64          `json:"value"`
	Counts map[WineType]int `json:"counts"`
	Total  int              `json:"total"`
}

// Histogram is the per-type value distribution of a single column
type Histogram struct {
	Column  string            `json:"column"`
	Buckets []HistogramBucket `json:"buckets"`
}

// SummaryStats mirrors the dashboard's headline metric row
type SummaryStats struct {
	Records     int              `json:"records"`
	TypeCounts  map[WineType]int `json:"type_counts"`
	MeanQuality float64          `json:"mean_quality"`
	MeanAlcohol float64          `json:"mean_alcohol"`
	MeanPH      float64          `json:"mean_ph"`
	MeanDensity float64          `json:"mean_density"`
}

// NullableFloat converts a coefficient to its JSON form: NaN becomes nil
// so it serializes as null instead of breaking the encoder
func NullableFloat(f float64) *float64 {
	if math.IsNaN(f) {
		return nil
	}
	return &f
}
