package loan

import (
	"testing"
	"time"
)

func TestOverdue(t *testing.T) {
	now := time.Date(2024, 1, 20, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	cases := []struct {
		name   string
		status Status
		due    time.Time
		want   bool
	}{
		{"active past due", StatusActive, past, true},
		{"active not yet due", StatusActive, future, false},
		{"active due exactly now", StatusActive, now, false},
		{"pending past due", StatusPending, past, false},
		{"rejected past due", StatusRejected, past, false},
		{"returned past due", StatusReturned, past, false},
	}
	for _, tc := range cases {
		l := &Loan{Status: tc.status, DueDate: tc.due}
		if got := l.Overdue(now); got != tc.want {
			t.Errorf("%s: Overdue = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestCanTransition(t *testing.T) {
	all := []Status{StatusPending, StatusActive, StatusRejected, StatusReturned}
	allowed := map[Status][]Status{
		StatusPending: {StatusActive, StatusRejected},
		StatusActive:  {StatusReturned},
	}

	for _, from := range all {
		for _, to := range all {
			l := &Loan{Status: from}
			want := false
			for _, ok := range allowed[from] {
				if ok == to {
					want = true
				}
			}
			if got := l.CanTransition(to); got != want {
				t.Errorf("%s -> %s: CanTransition = %v, want %v", from, to, got, want)
			}
		}
	}
}
