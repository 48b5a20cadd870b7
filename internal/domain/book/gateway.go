package book

import (
	"context"
	"errors"
)

var (
	ErrNotFound    = errors.New("book not found")
	ErrOutOfStock  = errors.New("book out of stock")
	ErrUnavailable = errors.New("book service unavailable")
)

// Gateway is the inventory collaborator. DecrementStock is the atomic
// check-and-reserve: the service rejects it when stock is zero, so callers
// never read stock and then write it.
type Gateway interface {
	GetStock(ctx context.Context, bookID uint64) (int, error)
	DecrementStock(ctx context.Context, bookID uint64) error
	IncrementStock(ctx context.Context, bookID uint64) error
}
