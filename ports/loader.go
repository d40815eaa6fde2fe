package ports

import "censusboard/domain/census"

// ExtractLoader reads one extract file and normalizes it into a
// census table.
type ExtractLoader interface {
	Load(path string) (census.Table, error)
}
