// Package errors defines the application error taxonomy. Every error maps
// to an HTTP status, a stable business code, and a user-facing message.
// User-facing messages are in Spanish, matching the product's audience.
package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

// AppError defines the interface for application-specific errors.
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error.
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface.
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code.
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code.
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message.
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information.
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Validation
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Datos de entrada no válidos.",
		"",
	)

	ErrInvalidID = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ID",
		"ID inválido.",
		"",
	)

	// Registration duplicates, one per existing auth mode. Registration
	// checks google, then spotify, then the plain duplicate.
	ErrEmailBoundToGoogle = NewBaseError(
		http.StatusForbidden,
		"EMAIL_BOUND_TO_GOOGLE",
		"Inicia sesión a través de Google.",
		"",
	)

	ErrEmailBoundToSpotify = NewBaseError(
		http.StatusForbidden,
		"EMAIL_BOUND_TO_SPOTIFY",
		"Inicia sesión a través de Spotify.",
		"",
	)

	ErrEmailAlreadyRegistered = NewBaseError(
		http.StatusForbidden,
		"EMAIL_ALREADY_REGISTERED",
		"Esta dirección de correo ya está registrada, inicia sesión.",
		"",
	)

	// Login: deliberately one message for unknown email and wrong
	// password, to avoid account enumeration.
	ErrInvalidCredentials = NewBaseError(
		http.StatusBadRequest,
		"INVALID_CREDENTIALS",
		"El usuario o la contraseña no coinciden.",
		"",
	)

	// Session
	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"No autenticado. Token no encontrado.",
		"",
	)

	ErrSessionExpired = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_EXPIRED",
		"Tu sesión expiró. Vuelve a iniciar sesión.",
		"",
	)

	ErrTokenRejected = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_REJECTED",
		"Token inválido. Acceso denegado.",
		"",
	)

	ErrSessionUserMissing = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_USER_MISSING",
		"Usuario no encontrado.",
		"",
	)

	// OAuth
	ErrProviderEmailMissing = NewBaseError(
		http.StatusUnauthorized,
		"PROVIDER_EMAIL_MISSING",
		"No se encontró un email en el perfil del proveedor.",
		"",
	)

	ErrOAuthFailed = NewBaseError(
		http.StatusUnauthorized,
		"OAUTH_FAILED",
		"Autenticación con el proveedor fallida.",
		"",
	)

	// Lookups
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"Usuario no encontrado.",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Recurso no encontrado.",
		"",
	)

	// Persistence
	ErrStoreFailure = NewBaseError(
		http.StatusInternalServerError,
		"STORE_FAILURE",
		"Error interno del servidor.",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Error interno del servidor.",
		"",
	)
)

// NewDatabaseExecuteError wraps an underlying persistence error as an
// opaque store failure, keeping the cause in the details for logs only.
func NewDatabaseExecuteError(err error, context string) error {
	return errors.Wrap(ErrStoreFailure.WithDetails(err.Error()), context)
}
