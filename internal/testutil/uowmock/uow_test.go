package uowmock

import (
	"context"
	"errors"
	"testing"

	"library-loan-service/internal/domain/loan"
	"library-loan-service/internal/domain/uow"
	"library-loan-service/internal/testutil/loanmock"
)

func TestDefaultsError(t *testing.T) {
	m := New()
	ctx := context.Background()

	if err := m.WithinTx(ctx, func(r uow.Repos) error { return nil }); err == nil {
		t.Fatal("WithinTx default must error")
	}
	if err := m.WithinLoanTx(ctx, 1, func(r uow.Repos, l *loan.Loan) error { return nil }); err == nil {
		t.Fatal("WithinLoanTx default must error")
	}
}

func TestPassthrough(t *testing.T) {
	repo := &loanmock.Repo{
		GetByIDForUpdateFn: func(ctx context.Context, loanID uint64) (*loan.Loan, error) {
			return &loan.Loan{LoanID: loanID, Status: loan.StatusPending}, nil
		},
	}
	m := Passthrough(repo)

	var seen uint64
	err := m.WithinLoanTx(context.Background(), 7, func(r uow.Repos, l *loan.Loan) error {
		seen = l.LoanID
		return nil
	})
	if err != nil || seen != 7 {
		t.Fatalf("passthrough broken: seen=%d err=%v", seen, err)
	}
}

func TestPassthrough_LookupErrorShortCircuits(t *testing.T) {
	boom := errors.New("boom")
	repo := &loanmock.Repo{
		GetByIDForUpdateFn: func(ctx context.Context, loanID uint64) (*loan.Loan, error) {
			return nil, boom
		},
	}
	m := Passthrough(repo)

	err := m.WithinLoanTx(context.Background(), 7, func(r uow.Repos, l *loan.Loan) error {
		t.Fatal("fn must not run when the lookup fails")
		return nil
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want lookup error", err)
	}
}
