package membermock

import (
	"context"

	"library-loan-service/internal/domain/member"
)

var _ member.Gateway = (*Gateway)(nil)

// Gateway is a function-backed mock for the member registry.
// An unset ExistsFn answers "exists" so happy-path tests stay short.
type Gateway struct {
	ExistsFn func(ctx context.Context, memberID uint64) (bool, error)
}

func (m *Gateway) Exists(ctx context.Context, memberID uint64) (bool, error) {
	if m.ExistsFn != nil {
		return m.ExistsFn(ctx, memberID)
	}
	return true, nil
}
