package analysis

import (
	"fmt"
	"sort"

	"go-wine-dashboard/internal/model"
)

// Column names used by the headline metrics, as they appear in the
// source files
const (
	AlcoholColumn = "alcohol"
	PHColumn      = "pH"
	DensityColumn = "density"
)

// Summary computes the dashboard's headline metrics: record count,
// per-type counts and the mean quality, alcohol, pH and density.
func Summary(ds *model.Dataset) model.SummaryStats {
	stats := model.SummaryStats{
		Records:    ds.Len(),
		TypeCounts: make(map[model.WineType]int),
	}
	if ds.Len() == 0 {
		return stats
	}

	var sumQuality, sumAlcohol, sumPH, sumDensity float64
	for _, rec := range ds.Records {
		stats.TypeCounts[rec.Type]++
		sumQuality += rec.Measurements[model.QualityColumn]
		sumAlcohol += rec.Measurements[AlcoholColumn]
		sumPH += rec.Measurements[PHColumn]
		sumDensity += rec.Measurements[DensityColumn]
	}

	n := float64(ds.Len())
	stats.MeanQuality = sumQuality / n
	stats.MeanAlcohol = sumAlcohol / n
	stats.MeanPH = sumPH / n
	stats.MeanDensity = sumDensity / n
	return stats
}

// Histogram computes the per-type value distribution of a column,
// ordered by value
func Histogram(ds *model.Dataset, col string) (model.Histogram, error) {
	if !ds.HasColumn(col) {
		return model.Histogram{}, fmt.Errorf("unknown column: %q", col)
	}

	buckets := make(map[float64]*model.HistogramBucket)
	for _, rec := range ds.Records {
		v := rec.Measurements[col]
		b, ok := buckets[v]
		if !ok {
			b = &model.HistogramBucket{
				Value:  v,
				Counts: make(map[model.WineType]int),
			}
			buckets[v] = b
		}
		b.Counts[rec.Type]++
		b.Total++
	}

	h := model.Histogram{Column: col, Buckets: make([]model.HistogramBucket, 0, len(buckets))}
	for _, b := range buckets {
		h.Buckets = append(h.Buckets, *b)
	}
	sort.Slice(h.Buckets, func(i, j int) bool {
		return h.Buckets[i].Value < h.Buckets[j].Value
	})
	return h, nil
}
