package loan

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"library-loan-service/internal/domain/book"
	domain "library-loan-service/internal/domain/loan"
	"library-loan-service/internal/domain/member"
	"library-loan-service/internal/domain/uow"

	"gorm.io/gorm"
)

// compensationTimeout bounds the detached stock-release call made when a
// loan insert fails after the reservation succeeded.
const compensationTimeout = 5 * time.Second

// Usecase is the loan workflow engine. It owns the loan state machine and
// keeps the loans table consistent with the inventory collaborator: stock is
// reserved (decremented) when a loan is created, released again when the
// loan is rejected or the book comes back.
type Usecase struct {
	repo    domain.Repository
	uow     uow.UnitOfWork
	books   book.Gateway
	members member.Gateway
}

func NewUsecase(r domain.Repository, tx uow.UnitOfWork, books book.Gateway, members member.Gateway) *Usecase {
	return &Usecase{repo: r, uow: tx, books: books, members: members}
}

// Create validates the referenced member and book, reserves one copy, then
// inserts the loan as pending. DecrementStock doubles as the existence and
// availability check; if the insert fails afterwards the reservation is
// released so inventory never drifts.
func (u *Usecase) Create(ctx context.Context, in CreateLoanInput) (*LoanDTO, error) {
	if in.MemberID == 0 || in.BookID == 0 {
		return nil, ErrInvalidInput
	}

	ok, err := u.members.Exists(ctx, in.MemberID)
	if err != nil {
		return nil, fmt.Errorf("member lookup: %w", err)
	}
	if !ok {
		return nil, member.ErrNotFound
	}

	if err := u.books.DecrementStock(ctx, in.BookID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	l := &domain.Loan{
		MemberID: in.MemberID,
		BookID:   in.BookID,
		LoanDate: now,
		DueDate:  now.Add(domain.Period),
		Status:   domain.StatusPending,
	}
	if err := u.repo.Create(ctx, l); err != nil {
		// compensate the reservation on a detached context: a caller that
		// cancelled mid-request must not be able to defeat the rollback
		rbCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), compensationTimeout)
		defer cancel()
		if rbErr := u.books.IncrementStock(rbCtx, in.BookID); rbErr != nil {
			log.Printf("loan create: stock compensation for book %d failed: %v", in.BookID, rbErr)
		}
		return nil, fmt.Errorf("persist loan: %w", err)
	}
	return u.toDTO(l), nil
}

// Decide applies the admin approval or rejection to a pending loan. The row
// is locked for the whole transaction so concurrent decisions serialize and
// exactly one wins. Rejection releases the stock reserved at creation; a
// gateway failure rolls the status change back.
func (u *Usecase) Decide(ctx context.Context, loanID uint64, in DecisionInput) (*LoanDTO, error) {
	var dto *LoanDTO
	err := u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *domain.Loan) error {
		target := domain.StatusRejected
		if in.Approved {
			target = domain.StatusActive
		}
		if !l.CanTransition(target) {
			return domain.ErrInvalidTransition
		}

		adminID := in.AdminID
		l.AdminID = &adminID
		l.Status = target
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}
		if !in.Approved {
			if err := u.books.IncrementStock(ctx, l.BookID); err != nil {
				return err
			}
		}
		dto = u.toDTO(l)
		return nil
	})
	if err != nil {
		return nil, mapLookupErr(err)
	}
	return dto, nil
}

// Return closes an active loan: return_date is set exactly once and the copy
// goes back on the shelf. Runs under the same row lock as Decide, so a
// double return loses the race and sees ErrAlreadyReturned.
func (u *Usecase) Return(ctx context.Context, loanID uint64) (*LoanDTO, error) {
	var dto *LoanDTO
	err := u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *domain.Loan) error {
		if l.Status == domain.StatusReturned {
			return domain.ErrAlreadyReturned
		}
		if !l.CanTransition(domain.StatusReturned) {
			return domain.ErrInvalidTransition
		}

		now := time.Now().UTC()
		l.ReturnDate = &now
		l.Status = domain.StatusReturned
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}
		if err := u.books.IncrementStock(ctx, l.BookID); err != nil {
			return err
		}
		dto = u.toDTO(l)
		return nil
	})
	if err != nil {
		return nil, mapLookupErr(err)
	}
	return dto, nil
}

func (u *Usecase) Get(ctx context.Context, loanID uint64) (*LoanDTO, error) {
	l, err := u.repo.GetByID(ctx, loanID)
	if err != nil {
		return nil, mapLookupErr(err)
	}
	return u.toDTO(l), nil
}

func (u *Usecase) List(ctx context.Context) ([]LoanDTO, error) {
	ls, err := u.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return u.toDTOs(ls), nil
}

func (u *Usecase) ListByMember(ctx context.Context, memberID uint64) ([]LoanDTO, error) {
	ls, err := u.repo.ListByMemberID(ctx, memberID)
	if err != nil {
		return nil, err
	}
	return u.toDTOs(ls), nil
}

func (u *Usecase) ListByBook(ctx context.Context, bookID uint64) ([]LoanDTO, error) {
	ls, err := u.repo.ListByBookID(ctx, bookID)
	if err != nil {
		return nil, err
	}
	return u.toDTOs(ls), nil
}

func (u *Usecase) ListPending(ctx context.Context) ([]LoanDTO, error) {
	ls, err := u.repo.ListByStatus(ctx, domain.StatusPending)
	if err != nil {
		return nil, err
	}
	return u.toDTOs(ls), nil
}

// ListOverdue is computed from the current wall clock on demand; there is no
// background job marking loans overdue.
func (u *Usecase) ListOverdue(ctx context.Context) ([]LoanDTO, error) {
	ls, err := u.repo.ListOverdue(ctx, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	return u.toDTOs(ls), nil
}

// Delete is the administrative purge, independent of the state machine:
// a loan in any state may be removed.
func (u *Usecase) Delete(ctx context.Context, loanID uint64, deletedBy *uint64) error {
	l, err := u.repo.GetByID(ctx, loanID)
	if err != nil {
		return mapLookupErr(err)
	}
	return u.repo.Delete(ctx, l, deletedBy)
}

func (u *Usecase) toDTO(l *domain.Loan) *LoanDTO {
	return &LoanDTO{
		LoanID:     l.LoanID,
		MemberID:   l.MemberID,
		BookID:     l.BookID,
		LoanDate:   l.LoanDate,
		DueDate:    l.DueDate,
		ReturnDate: l.ReturnDate,
		Status:     string(l.Status),
		AdminID:    l.AdminID,
		Overdue:    l.Overdue(time.Now().UTC()),
	}
}

func (u *Usecase) toDTOs(ls []domain.Loan) []LoanDTO {
	out := make([]LoanDTO, 0, len(ls))
	for i := range ls {
		out = append(out, *u.toDTO(&ls[i]))
	}
	return out
}

func mapLookupErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}
