package mysql

import (
	"context"
	"time"

	loanDomain "library-loan-service/internal/domain/loan"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LoanRepository struct{ db *gorm.DB }

func NewLoanRepository(db *gorm.DB) *LoanRepository { return &LoanRepository{db: db} }

func (r *LoanRepository) Create(ctx context.Context, l *loanDomain.Loan) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *LoanRepository) Save(ctx context.Context, l *loanDomain.Loan) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *LoanRepository) GetByID(ctx context.Context, loanID uint64) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	res := r.db.WithContext(ctx).Where("loan_id = ?", loanID).First(&out)
	return &out, res.Error
}

// GetByIDForUpdate takes a row lock; only meaningful inside a transaction.
func (r *LoanRepository) GetByIDForUpdate(ctx context.Context, loanID uint64) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("loan_id = ?", loanID).
		First(&out)
	return &out, res.Error
}

func (r *LoanRepository) ListAll(ctx context.Context) ([]loanDomain.Loan, error) {
	var out []loanDomain.Loan
	res := r.db.WithContext(ctx).Order("loan_id").Find(&out)
	return out, res.Error
}

func (r *LoanRepository) ListByMemberID(ctx context.Context, memberID uint64) ([]loanDomain.Loan, error) {
	var out []loanDomain.Loan
	res := r.db.WithContext(ctx).Where("member_id = ?", memberID).Order("loan_id").Find(&out)
	return out, res.Error
}

func (r *LoanRepository) ListByBookID(ctx context.Context, bookID uint64) ([]loanDomain.Loan, error) {
	var out []loanDomain.Loan
	res := r.db.WithContext(ctx).Where("book_id = ?", bookID).Order("loan_id").Find(&out)
	return out, res.Error
}

func (r *LoanRepository) ListByStatus(ctx context.Context, status loanDomain.Status) ([]loanDomain.Loan, error) {
	var out []loanDomain.Loan
	res := r.db.WithContext(ctx).Where("status = ?", status).Order("loan_id").Find(&out)
	return out, res.Error
}

func (r *LoanRepository) ListOverdue(ctx context.Context, now time.Time) ([]loanDomain.Loan, error) {
	var out []loanDomain.Loan
	res := r.db.WithContext(ctx).
		Where("status = ? AND due_date < ?", loanDomain.StatusActive, now).
		Order("due_date").
		Find(&out)
	return out, res.Error
}

// Delete is the administrative purge: a soft delete that records who asked.
func (r *LoanRepository) Delete(ctx context.Context, l *loanDomain.Loan, deletedBy *uint64) error {
	if deletedBy != nil {
		if err := r.db.WithContext(ctx).Model(l).UpdateColumn("deleted_by", *deletedBy).Error; err != nil {
			return err
		}
	}
	return r.db.WithContext(ctx).Delete(l).Error
}
