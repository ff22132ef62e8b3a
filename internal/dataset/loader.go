package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"go-wine-dashboard/internal/model"
	"go-wine-dashboard/pkg/utils"
)

// Delimiter used by the winequality source files
const Delimiter = ';'

type loaderConfig struct {
	skipMalformed bool
}

// Option configures the loader
type Option func(*loaderConfig)

// SkipMalformed makes the loader skip malformed rows (logging their
// indices) instead of aborting the whole load. The default is to abort.
func SkipMalformed() Option {
	return func(cfg *loaderConfig) { cfg.skipMalformed = true }
}

// Load reads the red and white source files, tags each record with its
// wine type and merges them into a single dataset. Red records come
// first, in source order, followed by white records.
func Load(redPath, whitePath string, opts ...Option) (*model.Dataset, error) {
	cfg := &loaderConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	redFile, err := os.Open(redPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	defer redFile.Close()

	whiteFile, err := os.Open(whitePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	defer whiteFile.Close()

	return merge(cfg, source{redPath, redFile, model.Red}, source{whitePath, whiteFile, model.White})
}

// LoadReaders is the stream-based variant of Load. The first reader is
// tagged red, the second white.
func LoadReaders(red, white io.Reader, opts ...Option) (*model.Dataset, error) {
	cfg := &loaderConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return merge(cfg, source{"red source", red, model.Red}, source{"white source", white, model.White})
}

type source struct {
	label    string
	reader   io.Reader
	wineType model.WineType
}

func merge(cfg *loaderConfig, red, white source) (*model.Dataset, error) {
	redCols, redRecs, err := readSource(cfg, red)
	if err != nil {
		return nil, err
	}
	whiteCols, whiteRecs, err := readSource(cfg, white)
	if err != nil {
		return nil, err
	}

	if err := compareSchemas(redCols, whiteCols); err != nil {
		return nil, err
	}

	ds := &model.Dataset{
		Columns: redCols,
		Records: append(redRecs, whiteRecs...),
		SourceCounts: map[model.WineType]int{
			model.Red:   len(redRecs),
			model.White: len(whiteRecs),
		},
	}

	if got, want := ds.Len(), len(redRecs)+len(whiteRecs); got != want {
		return nil, fmt.Errorf("merged record count %d does not match source total %d", got, want)
	}
	if !ds.HasColumn(model.QualityColumn) {
		return nil, fmt.Errorf("%w: sources have no %q column", ErrSchemaMismatch, model.QualityColumn)
	}

	fmt.Printf("🍷 Dataset loaded: %d red + %d white = %d records, %d columns\n",
		len(redRecs), len(whiteRecs), ds.Len(), len(ds.Columns))
	return ds, nil
}

// readSource reads one semicolon-delimited source: a header row naming the
// numeric columns, then one record per line.
func readSource(cfg *loaderConfig, src source) ([]string, []model.Record, error) {
	r := csv.NewReader(src.reader)
	r.Comma = Delimiter
	r.LazyQuotes = true

	header, err := r.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: failed to read header of %s: %v", ErrSourceUnavailable, src.label, err)
	}
	columns := cleanHeader(header)

	var records []model.Record
	skipped := 0
	for row := 1; ; row++ {
		fields, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// csv.Reader enforces the header field count, so this is
			// almost always a wrong-field-count row
			malformed := &MalformedRecordError{Source: src.label, Row: row, Reason: err.Error()}
			if cfg.skipMalformed {
				fmt.Printf("⚠️  Skipping row %d of %s: %v\n", row, src.label, err)
				skipped++
				continue
			}
			return nil, nil, malformed
		}

		rec := model.Record{
			Measurements: make(map[string]float64, len(columns)),
			Type:         src.wineType,
		}
		bad := false
		for i, col := range columns {
			val, perr := utils.ParseMeasurement(fields[i])
			if perr != nil {
				malformed := &MalformedRecordError{
					Source: src.label,
					Row:    row,
					Reason: fmt.Sprintf("column %q: %v", col, perr),
				}
				if cfg.skipMalformed {
					fmt.Printf("⚠️  Skipping row %d of %s: %v\n", row, src.label, malformed.Reason)
					skipped++
					bad = true
					break
				}
				return nil, nil, malformed
			}
			rec.Measurements[col] = val
		}
		if bad {
			continue
		}
		records = append(records, rec)
	}

	if skipped > 0 {
		fmt.Printf("⚠️  %s: %d malformed rows skipped\n", src.label, skipped)
	}
	fmt.Printf("📄 %s: %d records read\n", src.label, len(records))
	return columns, records, nil
}

// cleanHeader trims whitespace, quotes and a possible UTF-8 BOM from
// column names
func cleanHeader(header []string) []string {
	columns := make([]string, len(header))
	for i, h := range header {
		c := strings.TrimSpace(h)
		c = strings.TrimPrefix(c, "\ufeff")
		c = strings.ReplaceAll(c, `"`, "")
		columns[i] = c
	}
	return columns
}

func compareSchemas(a, b []string) error {
	if len(a) != len(b) {
		return fmt.Errorf("%w: %v vs %v", ErrSchemaMismatch, a, b)
	}
	for i := range a {
		if a[i] != b[i] {
			return fmt.Errorf("%w: column %d is %q in one source and %q in the other", ErrSchemaMismatch, i, a[i], b[i])
		}
	}
	return nil
}
