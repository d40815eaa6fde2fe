package extract

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strings"

	"censusboard/domain/census"
	"censusboard/domain/core"
	"censusboard/internal/errors"

	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// Loader reads one extract file and normalizes it into a census table.
// It handles both the published CSV extracts and their Excel variants,
// routed by file extension.
type Loader struct {
	config Config
}

// NewLoader creates a loader for the given header convention.
func NewLoader(config Config) *Loader {
	return &Loader{config: config}
}

// Config returns the loader's header convention.
func (l *Loader) Config() Config {
	return l.config
}

// Load reads, decodes and normalizes the extract at path.
//
// File-level failures (missing file, undecodable content, missing
// required columns) abort the load and surface once as a typed error;
// per-cell parse failures coerce to 0 and never surface.
func (l *Loader) Load(path string) (census.Table, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return census.Table{}, errors.WithCode(errors.CodeFileNotFound, core.NewFileNotFoundError(path))
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".xlsx" || ext == ".xls" {
		return l.loadExcel(path)
	}
	return l.loadCSV(path)
}

func (l *Loader) loadCSV(path string) (census.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return census.Table{}, errors.WithCode(errors.CodeFileNotFound, core.NewFileNotFoundError(path))
	}
	defer f.Close()

	// Transcode non-UTF-8 encodings declared in the page config.
	var reader io.Reader = f
	if enc := l.config.Encoding; !isUTF8(enc) {
		e, err := htmlindex.Get(enc)
		if err != nil {
			return census.Table{}, errors.WithCode(errors.CodeDecodeError,
				core.NewDecodeError(path, err))
		}
		reader = transform.NewReader(f, e.NewDecoder())
	}

	r := csv.NewReader(reader)
	r.Comma = l.config.delimiter()
	r.LazyQuotes = true
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return census.Table{}, errors.WithCode(errors.CodeDecodeError,
			core.NewDecodeError(path, err))
	}

	return l.normalize(records)
}

// normalize turns raw header+data records into a census table. Shared
// by the CSV and Excel paths.
func (l *Loader) normalize(records [][]string) (census.Table, error) {
	if len(records) == 0 {
		return census.Table{}, errors.WithCode(errors.CodeSchemaError, core.ErrNoTotalColumn)
	}

	mapping, err := l.config.classify(records[0])
	if err != nil {
		return census.Table{}, err
	}

	data := records[1:]
	data = l.dropNationwide(data, mapping.regionIdx)

	rows := make([]census.Row, 0, len(data))
	for _, record := range data {
		rows = append(rows, l.normalizeRow(record, mapping))
	}
	return census.NewTable(rows), nil
}

// dropNationwide removes the leading aggregate row when present. Only
// the first data row is considered, so a second pass over an already
// stripped extract is a no-op.
func (l *Loader) dropNationwide(data [][]string, regionIdx int) [][]string {
	if l.config.NationwideSentinel == "" || len(data) == 0 {
		return data
	}
	region := strings.TrimSpace(cell(data[0], regionIdx))
	if strings.HasPrefix(region, l.config.NationwideSentinel) {
		return data[1:]
	}
	return data
}

func (l *Loader) normalizeRow(record []string, mapping headerMapping) census.Row {
	row := census.Row{
		Region: stripRegionCode(cell(record, mapping.regionIdx)),
		Total:  parseCount(cell(record, mapping.totalIdx)),
		Ages:   make(map[int]int, len(mapping.ageIdx)),
	}
	for age, idx := range mapping.ageIdx {
		row.Ages[age] = parseCount(cell(record, idx))
	}
	return row
}

// cell returns the field at idx, tolerating short records.
func cell(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return record[idx]
}
