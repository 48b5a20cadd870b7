package member

import (
	"context"
	"errors"
)

var (
	ErrNotFound    = errors.New("member not found")
	ErrUnavailable = errors.New("member service unavailable")
)

type Gateway interface {
	Exists(ctx context.Context, memberID uint64) (bool, error)
}
