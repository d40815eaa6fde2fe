package extract

import (
	"censusboard/domain/census"
	"censusboard/domain/core"
	"censusboard/internal/errors"

	"github.com/xuri/excelize/v2"
)

// loadExcel reads the first sheet of an Excel variant of an extract
// and feeds it through the same normalization as the CSV path. Excel
// files carry their own encoding, so the config's Encoding is ignored.
func (l *Loader) loadExcel(path string) (census.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return census.Table{}, errors.WithCode(errors.CodeDecodeError,
			core.NewDecodeError(path, err))
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	records, err := f.GetRows(sheet)
	if err != nil {
		return census.Table{}, errors.WithCode(errors.CodeDecodeError,
			core.NewDecodeError(path, err))
	}

	return l.normalize(records)
}
