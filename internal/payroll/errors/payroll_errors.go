package payrollerrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrSnapshotNotFound = apperror.New(
		apperror.CodeNotFound,
		"Payroll record not found",
		http.StatusNotFound,
	)
	ErrInvalidSnapshotID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid payroll ID format",
		http.StatusBadRequest,
	)
)
