package bookmock

import (
	"context"
	"errors"

	"library-loan-service/internal/domain/book"
)

var _ book.Gateway = (*Gateway)(nil)

var errUnimplemented = errors.New("bookmock: method not implemented")

// Gateway is a function-backed mock for the inventory collaborator.
type Gateway struct {
	GetStockFn       func(ctx context.Context, bookID uint64) (int, error)
	DecrementStockFn func(ctx context.Context, bookID uint64) error
	IncrementStockFn func(ctx context.Context, bookID uint64) error
}

func (m *Gateway) GetStock(ctx context.Context, bookID uint64) (int, error) {
	if m.GetStockFn != nil {
		return m.GetStockFn(ctx, bookID)
	}
	return 0, errUnimplemented
}

func (m *Gateway) DecrementStock(ctx context.Context, bookID uint64) error {
	if m.DecrementStockFn != nil {
		return m.DecrementStockFn(ctx, bookID)
	}
	return nil
}

func (m *Gateway) IncrementStock(ctx context.Context, bookID uint64) error {
	if m.IncrementStockFn != nil {
		return m.IncrementStockFn(ctx, bookID)
	}
	return nil
}
