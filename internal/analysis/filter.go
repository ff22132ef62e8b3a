package analysis

import "go-wine-dashboard/internal/model"

// TypeColumn is the virtual group-by column for the red/white tag
const TypeColumn = "type"

// Apply returns a new dataset holding only the records matched by the
// filter. The original dataset is never mutated; record order is
// preserved.
func Apply(ds *model.Dataset, f model.Filter) *model.Dataset {
	out := &model.Dataset{
		Columns:      ds.Columns,
		SourceCounts: make(map[model.WineType]int),
	}
	for _, rec := range ds.Records {
		if f.Matches(rec) {
			out.Records = append(out.Records, rec)
			out.SourceCounts[rec.Type]++
		}
	}
	return out
}
