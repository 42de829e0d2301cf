package repositories

import "context"

// TxFn is a function that runs within a transaction
type TxFn func(ctx context.Context) error

// TransactionManager handles database transactions.
// Repositories join the transaction through the context passed to fn.
type TransactionManager interface {
	// ExecTx runs fn in a read-write transaction (read committed)
	ExecTx(ctx context.Context, fn TxFn) error

	// ExecSnapshotTx runs fn in a read-only repeatable-read transaction so
	// every query inside fn observes the same snapshot.
	ExecSnapshotTx(ctx context.Context, fn TxFn) error
}
