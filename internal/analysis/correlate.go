package analysis

import (
	"fmt"
	"math"

	"go-wine-dashboard/internal/model"
)

// Correlate computes the Pearson correlation coefficient between two
// numeric columns. The coefficient is nil (undefined) when fewer than
// two records exist or either column has zero variance.
func Correlate(ds *model.Dataset, colX, colY string) (model.CorrelationResult, error) {
	if !ds.HasColumn(colX) {
		return model.CorrelationResult{}, fmt.Errorf("unknown column: %q", colX)
	}
	if !ds.HasColumn(colY) {
		return model.CorrelationResult{}, fmt.Errorf("unknown column: %q", colY)
	}

	xs := make([]float64, ds.Len())
	ys := make([]float64, ds.Len())
	for i, rec := range ds.Records {
		xs[i] = rec.Measurements[colX]
		ys[i] = rec.Measurements[colY]
	}

	return model.CorrelationResult{
		ColumnX:     colX,
		ColumnY:     colY,
		Coefficient: model.NullableFloat(pearson(xs, ys)),
		SampleSize:  ds.Len(),
	}, nil
}

// CorrelationMatrix computes the pairwise Pearson matrix over every
// numeric column, quality included. The type tag is categorical and is
// not part of the matrix.
func CorrelationMatrix(ds *model.Dataset) model.CorrelationMatrix {
	n := len(ds.Columns)
	series := make([][]float64, n)
	for i, col := range ds.Columns {
		series[i] = make([]float64, ds.Len())
		for j, rec := range ds.Records {
			series[i][j] = rec.Measurements[col]
		}
	}

	values := make([][]*float64, n)
	for i := range values {
		values[i] = make([]*float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			c := model.NullableFloat(pearson(series[i], series[j]))
			values[i][j] = c
			values[j][i] = c
		}
	}

	return model.CorrelationMatrix{
		Columns: append([]string(nil), ds.Columns...),
		Values:  values,
	}
}

// pearson returns NaN when the coefficient is undefined: fewer than two
// samples, or zero variance in either series.
func pearson(xs, ys []float64) float64 {
	n := float64(len(xs))
	if len(xs) < 2 {
		return math.NaN()
	}

	var sumX, sumY float64
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
	}
	meanX, meanY := sumX/n, sumY/n

	var cov, varX, varY float64
	for i := range xs {
		dx, dy := xs[i]-meanX, ys[i]-meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}
	if varX == 0 || varY == 0 {
		return math.NaN()
	}
	return cov / math.Sqrt(varX*varY)
}
