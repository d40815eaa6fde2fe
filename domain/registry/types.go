package registry

import (
	"time"

	"censusboard/domain/core"
)

// LoadStatus represents the outcome of one extract load
type LoadStatus string

const (
	StatusOK     LoadStatus = "ok"
	StatusFailed LoadStatus = "failed"
)

// Record is one extract load event kept in the registry: which file
// was read for which page, what it hashed to, and how the load ended.
type Record struct {
	ID           core.ExtractID `json:"id" db:"id"`
	Page         string         `json:"page" db:"page"`
	Path         string         `json:"path" db:"path"`
	FileHash     core.Hash      `json:"file_hash" db:"file_hash"`
	RowCount     int            `json:"row_count" db:"row_count"`
	AgeKeyCount  int            `json:"age_key_count" db:"age_key_count"`
	Status       LoadStatus     `json:"status" db:"status"`
	ErrorMessage string         `json:"error_message,omitempty" db:"error_message"`
	LoadedAt     time.Time      `json:"loaded_at" db:"loaded_at"`
}

// NewRecord creates a load record for a page/path pair.
func NewRecord(page, path string) *Record {
	return &Record{
		ID:       core.NewExtractID(),
		Page:     page,
		Path:     path,
		Status:   StatusOK,
		LoadedAt: time.Now(),
	}
}

// Fail marks the record as a failed load with the surfaced message.
func (r *Record) Fail(err error) *Record {
	r.Status = StatusFailed
	if err != nil {
		r.ErrorMessage = err.Error()
	}
	return r
}
