package employeeerrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid Employee ID format",
		http.StatusBadRequest,
	)
	ErrInvalidJoiningDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid joiningDate format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidLastPaidDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid lastPaidDate format",
		http.StatusBadRequest,
	)
)
