package loan

import (
	"errors"
	"time"
)

var ErrInvalidInput = errors.New("member_id and book_id are required")

type CreateLoanInput struct {
	MemberID uint64 `json:"member_id"`
	BookID   uint64 `json:"book_id"`
}

type DecisionInput struct {
	Approved bool   `json:"approved"`
	AdminID  uint64 `json:"admin_id"`
}

type LoanDTO struct {
	LoanID     uint64     `json:"loan_id"`
	MemberID   uint64     `json:"member_id"`
	BookID     uint64     `json:"book_id"`
	LoanDate   time.Time  `json:"loan_date"`
	DueDate    time.Time  `json:"due_date"`
	ReturnDate *time.Time `json:"return_date"`
	Status     string     `json:"status"`
	AdminID    *uint64    `json:"admin_id"`
	Overdue    bool       `json:"overdue"`
}
