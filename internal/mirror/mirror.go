// Package mirror replicates each account's AppData document to a remote
// store on a best-effort basis: last writer wins, no conflict detection,
// failures are logged and swallowed. Local persistence stays the source of
// truth.
package mirror

import (
	"context"

	"mobipos/backend/internal/domain"
)

type Mirror interface {
	Save(ctx context.Context, accountID string, data *domain.AppData) error
}

type Noop struct{}

func (Noop) Save(_ context.Context, _ string, _ *domain.AppData) error {
	return nil
}
