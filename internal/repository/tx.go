package repository

import "context"

// Tx is the lifecycle shared by every transactional handle. Rollback after
// Commit is a no-op error that SafeRollback swallows.
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}
