package http

import (
	"errors"
	"testing"
)

func TestValidate_CreateLoanReq(t *testing.T) {
	cv := NewValidator()

	if err := cv.Validate(&createLoanReq{MemberID: 1, BookID: 5}); err != nil {
		t.Fatalf("valid req rejected: %v", err)
	}

	err := cv.Validate(&createLoanReq{})
	if err == nil {
		t.Fatal("empty req must fail validation")
	}
	fes := ToFieldErrors(err)
	if !containsFieldMsg(fes, "MemberID", "required") || !containsFieldMsg(fes, "BookID", "required") {
		t.Fatalf("field errors = %+v", fes)
	}
}

func TestValidate_DecideLoanReq(t *testing.T) {
	cv := NewValidator()

	no := false
	if err := cv.Validate(&decideLoanReq{Approved: &no, AdminID: 3}); err != nil {
		t.Fatalf("approved=false must be valid: %v", err)
	}

	err := cv.Validate(&decideLoanReq{AdminID: 3})
	if err == nil {
		t.Fatal("missing approved must fail")
	}
	if !containsFieldMsg(ToFieldErrors(err), "Approved", "required") {
		t.Fatalf("field errors = %+v", ToFieldErrors(err))
	}
}

func TestToFieldErrors_NonValidationError(t *testing.T) {
	fes := ToFieldErrors(errors.New("boom"))
	if len(fes) != 1 || fes[0].Field != "_" {
		t.Fatalf("fes = %+v", fes)
	}
}
