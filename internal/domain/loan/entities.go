package loan

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusActive   Status = "active"
	StatusRejected Status = "rejected"
	StatusReturned Status = "returned"
)

// Period a member may keep a book before it counts as overdue.
const Period = 14 * 24 * time.Hour

var (
	ErrNotFound          = errors.New("loan not found")
	ErrInvalidTransition = errors.New("invalid loan state transition")
	ErrAlreadyReturned   = errors.New("loan already returned")
)

type Loan struct {
	LoanID     uint64         `gorm:"primaryKey;column:loan_id" json:"loan_id"`
	MemberID   uint64         `gorm:"column:member_id;not null;index:idx_loans_member" json:"member_id"`
	BookID     uint64         `gorm:"column:book_id;not null;index:idx_loans_book" json:"book_id"`
	LoanDate   time.Time      `gorm:"column:loan_date;not null" json:"loan_date"`
	DueDate    time.Time      `gorm:"column:due_date;not null" json:"due_date"`
	ReturnDate *time.Time     `gorm:"column:return_date" json:"return_date"`
	Status     Status         `gorm:"column:status;type:enum('pending','active','rejected','returned');default:'pending'" json:"status"`
	AdminID    *uint64        `gorm:"column:admin_id" json:"admin_id"`
	CreatedAt  time.Time      `gorm:"autoCreateTime" json:"-"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime" json:"-"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
	DeletedBy  *uint64        `gorm:"column:deleted_by" json:"-"`
}

func (Loan) TableName() string { return "loans" }

// Overdue reports whether the loan is out past its due date. Pending,
// rejected and returned loans are never overdue, whatever their dates say.
func (l *Loan) Overdue(now time.Time) bool {
	return l.Status == StatusActive && l.DueDate.Before(now)
}

// CanTransition reports whether moving to the target status is legal.
// The machine only moves forward: pending → active|rejected, active → returned.
func (l *Loan) CanTransition(to Status) bool {
	switch l.Status {
	case StatusPending:
		return to == StatusActive || to == StatusRejected
	case StatusActive:
		return to == StatusReturned
	default:
		return false
	}
}
