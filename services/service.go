package services

import "context"

// Transactor runs fn in one database transaction carried by the context.
type Transactor interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}
