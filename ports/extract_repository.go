package ports

import (
	"context"

	"censusboard/domain/registry"
)

// ExtractRepository persists extract load records. Implementations may
// be absent entirely: the dashboard works without a registry.
type ExtractRepository interface {
	Create(ctx context.Context, record *registry.Record) error
	ListRecent(ctx context.Context, limit int) ([]*registry.Record, error)
	ListByPage(ctx context.Context, page string, limit int) ([]*registry.Record, error)
}
