// Package histories records evaluated expressions.
package histories

import (
	"context"
	"time"
)

type Entry struct {
	ID         int64
	Expression string
	Result     float64
	// Display is the full buffer after evaluation, "expression = result".
	Display string
	Time    time.Time
}

type Store interface {
	// Append assigns and returns the ID of the new entry.
	Append(ctx context.Context, entry Entry) (int64, error)
	// Recent returns up to limit entries, newest first. A limit <= 0 returns all.
	Recent(ctx context.Context, limit int) ([]Entry, error)
	Clear(ctx context.Context) error
	Close() error
}
