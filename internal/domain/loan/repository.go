package loan

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, l *Loan) error
	GetByID(ctx context.Context, loanID uint64) (*Loan, error)
	// GetByIDForUpdate locks the row for the duration of the enclosing tx.
	GetByIDForUpdate(ctx context.Context, loanID uint64) (*Loan, error)
	ListAll(ctx context.Context) ([]Loan, error)
	ListByMemberID(ctx context.Context, memberID uint64) ([]Loan, error)
	ListByBookID(ctx context.Context, bookID uint64) ([]Loan, error)
	ListByStatus(ctx context.Context, status Status) ([]Loan, error)
	ListOverdue(ctx context.Context, now time.Time) ([]Loan, error)
	Save(ctx context.Context, l *Loan) error
	Delete(ctx context.Context, l *Loan, deletedBy *uint64) error
}
