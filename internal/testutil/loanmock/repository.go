package loanmock

import (
	"context"
	"errors"
	"time"

	domain "library-loan-service/internal/domain/loan"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("loanmock: method not implemented")

// Repo is a function-backed mock that satisfies domain.Repository.
// Fill in the fields a test needs; unfilled lookups fail loudly.
type Repo struct {
	CreateFn           func(ctx context.Context, l *domain.Loan) error
	GetByIDFn          func(ctx context.Context, loanID uint64) (*domain.Loan, error)
	GetByIDForUpdateFn func(ctx context.Context, loanID uint64) (*domain.Loan, error)
	ListAllFn          func(ctx context.Context) ([]domain.Loan, error)
	ListByMemberIDFn   func(ctx context.Context, memberID uint64) ([]domain.Loan, error)
	ListByBookIDFn     func(ctx context.Context, bookID uint64) ([]domain.Loan, error)
	ListByStatusFn     func(ctx context.Context, status domain.Status) ([]domain.Loan, error)
	ListOverdueFn      func(ctx context.Context, now time.Time) ([]domain.Loan, error)
	SaveFn             func(ctx context.Context, l *domain.Loan) error
	DeleteFn           func(ctx context.Context, l *domain.Loan, deletedBy *uint64) error
}

func (m *Repo) Create(ctx context.Context, l *domain.Loan) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, loanID uint64) (*domain.Loan, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, loanID)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetByIDForUpdate(ctx context.Context, loanID uint64) (*domain.Loan, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, loanID)
	}
	return nil, errUnimplemented
}

func (m *Repo) ListAll(ctx context.Context) ([]domain.Loan, error) {
	if m.ListAllFn != nil {
		return m.ListAllFn(ctx)
	}
	return nil, errUnimplemented
}

func (m *Repo) ListByMemberID(ctx context.Context, memberID uint64) ([]domain.Loan, error) {
	if m.ListByMemberIDFn != nil {
		return m.ListByMemberIDFn(ctx, memberID)
	}
	return nil, errUnimplemented
}

func (m *Repo) ListByBookID(ctx context.Context, bookID uint64) ([]domain.Loan, error) {
	if m.ListByBookIDFn != nil {
		return m.ListByBookIDFn(ctx, bookID)
	}
	return nil, errUnimplemented
}

func (m *Repo) ListByStatus(ctx context.Context, status domain.Status) ([]domain.Loan, error) {
	if m.ListByStatusFn != nil {
		return m.ListByStatusFn(ctx, status)
	}
	return nil, errUnimplemented
}

func (m *Repo) ListOverdue(ctx context.Context, now time.Time) ([]domain.Loan, error) {
	if m.ListOverdueFn != nil {
		return m.ListOverdueFn(ctx, now)
	}
	return nil, errUnimplemented
}

func (m *Repo) Save(ctx context.Context, l *domain.Loan) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, l)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, l *domain.Loan, deletedBy *uint64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, l, deletedBy)
	}
	return nil
}
