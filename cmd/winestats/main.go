package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"path/filepath"
	"sort"

	"go-wine-dashboard/internal/analysis"
	"go-wine-dashboard/internal/dataset"
	"go-wine-dashboard/internal/model"
)

// winestats prints the dashboard's headline views to the terminal:
// summary metrics, the quality distribution and the columns most
// correlated with quality.
func main() {
	dataDir := flag.String("data-dir", "data", "directory containing the winequality CSV files")
	flag.Parse()

	ds, err := dataset.Load(
		filepath.Join(*dataDir, "winequality-red.csv"),
		filepath.Join(*dataDir, "winequality-white.csv"),
	)
	if err != nil {
		log.Fatalf("failed to load dataset: %v", err)
	}

	stats := analysis.Summary(ds)
	fmt.Println("🍷 Vinho Verde Wine Quality Summary")
	fmt.Printf("   Samples:      %d (%d red, %d white)\n",
		stats.Records, stats.TypeCounts[model.Red], stats.TypeCounts[model.White])
	fmt.Printf("   Avg Quality:  %.2f\n", stats.MeanQuality)
	fmt.Printf("   Avg Alcohol:  %.1f%%\n", stats.MeanAlcohol)
	fmt.Printf("   Avg pH:       %.2f\n", stats.MeanPH)
	fmt.Printf("   Avg Density:  %.4f\n", stats.MeanDensity)

	hist, err := analysis.Histogram(ds, model.QualityColumn)
	if err != nil {
		log.Fatalf("failed to compute quality histogram: %v", err)
	}
	fmt.Println("\n📊 Quality Distribution")
	for _, b := range hist.Buckets {
		fmt.Printf("   %2.0f: %5d (%d red, %d white)\n",
			b.Value, b.Total, b.Counts[model.Red], b.Counts[model.White])
	}

	fmt.Println("\n🔗 Correlation with Quality")
	type pair struct {
		column string
		coeff  float64
	}
	var pairs []pair
	for _, col := range ds.Columns {
		if col == model.QualityColumn {
			continue
		}
		res, err := analysis.Correlate(ds, col, model.QualityColumn)
		if err != nil || res.Coefficient == nil {
			continue
		}
		pairs = append(pairs, pair{col, *res.Coefficient})
	}
	sort.Slice(pairs, func(i, j int) bool {
		return math.Abs(pairs[i].coeff) > math.Abs(pairs[j].coeff)
	})
	for _, p := range pairs {
		fmt.Printf("   %-22s %+.3f\n", p.column, p.coeff)
	}
}
