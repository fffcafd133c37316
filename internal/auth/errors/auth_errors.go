package autherrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	// ErrInvalidCredentials is returned for both an unknown email and a
	// wrong password so responses carry no account-enumeration signal.
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid email or password",
		http.StatusUnauthorized,
	)

	// Duplicate signups answer 400, matching the contract the client
	// already depends on, even though the condition is a conflict.
	ErrEmailAlreadyRegistered = apperror.New(
		apperror.CodeConflict,
		"Email already exists",
		http.StatusBadRequest,
	)

	ErrInvalidToken = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid token",
		http.StatusUnauthorized,
	)

	ErrTokenExpired = apperror.New(
		apperror.CodeUnauthorized,
		"Token has expired",
		http.StatusUnauthorized,
	)

	ErrTokenGenerationFailed = apperror.New(
		apperror.CodeInternalError,
		"Could not generate token",
		http.StatusInternalServerError,
	)
)
