package loanmock

import (
	"context"
	"testing"

	domain "library-loan-service/internal/domain/loan"
)

func TestDefaults(t *testing.T) {
	m := &Repo{}
	ctx := context.Background()

	// writes default to success so happy paths need no wiring
	if err := m.Create(ctx, &domain.Loan{}); err != nil {
		t.Fatalf("Create default: %v", err)
	}
	if err := m.Save(ctx, &domain.Loan{}); err != nil {
		t.Fatalf("Save default: %v", err)
	}

	// lookups fail loudly when unset
	if _, err := m.GetByID(ctx, 1); err == nil {
		t.Fatal("GetByID default must error")
	}
	if _, err := m.ListAll(ctx); err == nil {
		t.Fatal("ListAll default must error")
	}
}

func TestDelegation(t *testing.T) {
	var got uint64
	m := &Repo{
		GetByIDFn: func(ctx context.Context, loanID uint64) (*domain.Loan, error) {
			got = loanID
			return &domain.Loan{LoanID: loanID}, nil
		},
	}

	l, err := m.GetByID(context.Background(), 7)
	if err != nil || l.LoanID != 7 || got != 7 {
		t.Fatalf("delegation broken: l=%+v err=%v got=%d", l, err, got)
	}
}
