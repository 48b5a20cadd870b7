package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"library-loan-service/internal/domain/book"
	loanDomain "library-loan-service/internal/domain/loan"
	"library-loan-service/internal/domain/member"
	loanUC "library-loan-service/internal/usecase/loan"

	"github.com/labstack/echo/v4"
)

// writeDomainErr is the single place domain errors become status codes:
// validation → 400, missing entity → 404, state conflicts → 409,
// collaborator down → 502, anything else → 500.
func writeDomainErr(c echo.Context, err error) error {
	switch {
	case errors.Is(err, loanUC.ErrInvalidInput), errors.Is(err, book.ErrOutOfStock):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, loanDomain.ErrNotFound),
		errors.Is(err, member.ErrNotFound),
		errors.Is(err, book.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, loanDomain.ErrAlreadyReturned),
		errors.Is(err, loanDomain.ErrInvalidTransition):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, book.ErrUnavailable), errors.Is(err, member.ErrUnavailable):
		return c.JSON(http.StatusBadGateway, ErrorResponse{Error: err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}

func paramUint(c echo.Context, name string) (uint64, error) {
	return strconv.ParseUint(c.Param(name), 10, 64)
}

// ---- test helpers ----

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}
