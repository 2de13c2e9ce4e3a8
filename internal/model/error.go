package model

import "errors"

// ErrorResponse represents an error raised by a handler.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Store failures. Repositories wrap the driver error with one of these so
// callers can tell a pool problem from a failed statement.
var (
	ErrStoreConnection = errors.New("store connection failed")
	ErrStoreQuery      = errors.New("store query failed")
)

// Error codes carried by domain errors.
const (
	ErrCodeNotFound             = "NOT_FOUND"
	ErrCodeConflict             = "CONFLICT"
	ErrCodeAuthenticationFailed = "AUTHENTICATION_FAILED"
	ErrCodeValidationFailed     = "VALIDATION_FAILED"
)

// DomainError is a business rule failure with a user-facing message.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrProductNotFound        = NewDomainError(ErrCodeNotFound, "Não foi encontrado o produto com este ID")
	ErrOrderProductNotFound   = NewDomainError(ErrCodeNotFound, "Produto não encontrado")
	ErrOrderNotFound          = NewDomainError(ErrCodeNotFound, "Não foi encontrado o pedido com este ID")
	ErrEmailAlreadyRegistered = NewDomainError(ErrCodeConflict, "Usuario já cadastrado")
	ErrAuthenticationFailed   = NewDomainError(ErrCodeAuthenticationFailed, "Falha na autenticação")
	ErrImageTooLarge          = NewDomainError(ErrCodeValidationFailed, "Arquivo de imagem excede o tamanho máximo")
	ErrMissingCredentials     = NewDomainError(ErrCodeValidationFailed, "Email e senha são obrigatórios")
)
