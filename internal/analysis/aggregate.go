package analysis

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"go-wine-dashboard/internal/model"
	"go-wine-dashboard/pkg/utils"
)

// Aggregate groups the dataset by the spec's group-by columns and
// computes one aggregate value per group. Results are ordered by group
// key (numeric-aware), so identical inputs always yield identical
// output.
func Aggregate(ds *model.Dataset, spec model.AggregateSpec) ([]model.GroupResult, error) {
	if err := validateSpec(ds, spec); err != nil {
		return nil, err
	}

	type group struct {
		groups map[string]string
		values []float64
	}
	groups := make(map[string]*group)

	for _, rec := range ds.Records {
		keyParts := make([]string, len(spec.GroupBy))
		groupVals := make(map[string]string, len(spec.GroupBy))
		for i, col := range spec.GroupBy {
			v := groupValue(rec, col)
			keyParts[i] = v
			groupVals[col] = v
		}
		key := strings.Join(keyParts, "/")

		g, ok := groups[key]
		if !ok {
			g = &group{groups: groupVals}
			groups[key] = g
		}
		if spec.Op != model.OpCount {
			g.values = append(g.values, rec.Measurements[spec.Column])
		} else {
			g.values = append(g.values, 0)
		}
	}

	results := make([]model.GroupResult, 0, len(groups))
	for key, g := range groups {
		res := model.GroupResult{
			Key:    key,
			Groups: g.groups,
			Count:  len(g.values),
		}
		switch spec.Op {
		case model.OpCount:
			res.Value = float64(len(g.values))
		case model.OpMean:
			res.Value = mean(g.values)
		case model.OpMedian:
			res.Value = median(g.values)
		}
		results = append(results, res)
	}

	sortResults(results, spec.GroupBy)
	return results, nil
}

func validateSpec(ds *model.Dataset, spec model.AggregateSpec) error {
	switch spec.Op {
	case model.OpCount, model.OpMean, model.OpMedian:
	default:
		return fmt.Errorf("unsupported aggregate operation: %q", spec.Op)
	}
	if len(spec.GroupBy) == 0 {
		return fmt.Errorf("at least one group-by column is required")
	}
	for _, col := range spec.GroupBy {
		if col != TypeColumn && !ds.HasColumn(col) {
			return fmt.Errorf("unknown group-by column: %q", col)
		}
	}
	if spec.Op != model.OpCount && !ds.HasColumn(spec.Column) {
		return fmt.Errorf("unknown aggregate column: %q", spec.Column)
	}
	return nil
}

func groupValue(rec model.Record, col string) string {
	if col == TypeColumn {
		return string(rec.Type)
	}
	return utils.FormatMeasurement(rec.Measurements[col])
}

// sortResults orders groups column by column, comparing numerically when
// both values parse as numbers
func sortResults(results []model.GroupResult, groupBy []string) {
	sort.Slice(results, func(i, j int) bool {
		for _, col := range groupBy {
			a, b := results[i].Groups[col], results[j].Groups[col]
			if a == b {
				continue
			}
			af, aerr := strconv.ParseFloat(a, 64)
			bf, berr := strconv.ParseFloat(b, 64)
			if aerr == nil && berr == nil {
				return af < bf
			}
			return a < b
		}
		return false
	})
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}
