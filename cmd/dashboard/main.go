package main

import (
	"flag"
	"log"
	"path/filepath"

	"go-wine-dashboard/internal/api"
	"go-wine-dashboard/internal/api/handler"
	"go-wine-dashboard/internal/dataset"
	"go-wine-dashboard/internal/store"
	"go-wine-dashboard/pkg/router"
)

// @title Wine Quality Dashboard API
// @version 1.0
// @description Exploratory-data-analysis API over the merged Vinho Verde wine quality dataset.
// @BasePath /api/v1
func main() {
	addr := flag.String("addr", ":8080", "listen address")
	dataDir := flag.String("data-dir", "data", "directory containing the winequality CSV files")
	dbPath := flag.String("db", "dashboard.db", "sqlite database path")
	outputDir := flag.String("output-dir", "outputs", "report output directory")
	skipMalformed := flag.Bool("skip-malformed", false, "skip malformed source rows instead of aborting the load")
	flag.Parse()

	var opts []dataset.Option
	if *skipMalformed {
		opts = append(opts, dataset.SkipMalformed())
	}

	// The dataset is loaded once and stays immutable for the process
	// lifetime; every query is a read-only projection over it
	ds, err := dataset.Load(
		filepath.Join(*dataDir, "winequality-red.csv"),
		filepath.Join(*dataDir, "winequality-white.csv"),
		opts...,
	)
	if err != nil {
		log.Fatalf("failed to load dataset: %v", err)
	}

	if err := store.InitDB(*dbPath); err != nil {
		log.Fatalf("failed to init database: %v", err)
	}
	defer store.CloseDB()

	r := router.New()
	api.RegisterRoutes(r, handler.NewDashboard(ds, *outputDir))
	r.Start(*addr)
}
