package errors

import "fmt"

type ValidationDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationError struct {
	Message string
	Details []ValidationDetail
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string, details ...ValidationDetail) *ValidationError {
	return &ValidationError{
		Message: message,
		Details: details,
	}
}

func IsValidationError(err error) (*ValidationError, bool) {
	if ve, ok := err.(*ValidationError); ok {
		return ve, true
	}
	return nil, false
}

type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{Message: message}
}

func IsNotFoundError(err error) (*NotFoundError, bool) {
	if nfe, ok := err.(*NotFoundError); ok {
		return nfe, true
	}
	return nil, false
}

// ConflictError marks an illegal or stale state transition, such as a
// superseded gateway callback or a concurrent status change.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

func NewConflictError(message string) *ConflictError {
	return &ConflictError{Message: message}
}

func IsConflictError(err error) (*ConflictError, bool) {
	if ce, ok := err.(*ConflictError); ok {
		return ce, true
	}
	return nil, false
}

// AmountMismatchError marks a gateway callback whose amount disagrees
// with the stored order total. It is its own kind because the gateway
// acknowledgment protocol answers it with a distinct code.
type AmountMismatchError struct {
	Message string
}

func (e *AmountMismatchError) Error() string {
	return e.Message
}

func NewAmountMismatchError(message string) *AmountMismatchError {
	return &AmountMismatchError{Message: message}
}

func IsAmountMismatchError(err error) (*AmountMismatchError, bool) {
	if ae, ok := err.(*AmountMismatchError); ok {
		return ae, true
	}
	return nil, false
}

// ExpiredError marks a discount code or verification code outside its
// validity window.
type ExpiredError struct {
	Message string
}

func (e *ExpiredError) Error() string {
	return e.Message
}

func NewExpiredError(message string) *ExpiredError {
	return &ExpiredError{Message: message}
}

func IsExpiredError(err error) (*ExpiredError, bool) {
	if ee, ok := err.(*ExpiredError); ok {
		return ee, true
	}
	return nil, false
}

// MismatchError marks a submitted verification code that does not match
// the stored one.
type MismatchError struct {
	Message string
}

func (e *MismatchError) Error() string {
	return e.Message
}

func NewMismatchError(message string) *MismatchError {
	return &MismatchError{Message: message}
}

func IsMismatchError(err error) (*MismatchError, bool) {
	if me, ok := err.(*MismatchError); ok {
		return me, true
	}
	return nil, false
}

// SignatureError marks a gateway callback that failed cryptographic
// verification. Responses built from it must stay generic; the full
// callback context belongs in the operational log only.
type SignatureError struct {
	Message string
}

func (e *SignatureError) Error() string {
	return e.Message
}

func NewSignatureError(message string) *SignatureError {
	return &SignatureError{Message: message}
}

func IsSignatureError(err error) (*SignatureError, bool) {
	if se, ok := err.(*SignatureError); ok {
		return se, true
	}
	return nil, false
}

type InternalError struct {
	Message string
	Cause   error
}

func (e *InternalError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *InternalError) Unwrap() error {
	return e.Cause
}

func NewInternalError(message string, cause error) *InternalError {
	return &InternalError{
		Message: message,
		Cause:   cause,
	}
}

func IsInternalError(err error) (*InternalError, bool) {
	if ie, ok := err.(*InternalError); ok {
		return ie, true
	}
	return nil, false
}
