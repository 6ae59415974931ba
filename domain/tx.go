package domain

import "context"

// Transactor runs fn inside one store transaction. Repositories called with
// the ctx passed to fn join that transaction. Any error from fn rolls back
// everything fn wrote and is returned unchanged.
type Transactor interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
