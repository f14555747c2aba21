package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError_Creation(t *testing.T) {
	message := "order not found"
	err := NewNotFoundError(message)

	assert.NotNil(t, err)
	assert.Equal(t, message, err.Message)
	assert.Equal(t, message, err.Error())
}

func TestNotFoundError_IsNotFoundError(t *testing.T) {
	err := NewNotFoundError("test not found")

	notFoundErr, ok := IsNotFoundError(err)
	assert.True(t, ok)
	assert.NotNil(t, notFoundErr)
	assert.Equal(t, "test not found", notFoundErr.Message)
}

func TestNotFoundError_IsNotFoundError_WithOtherError(t *testing.T) {
	err := errors.New("some other error")

	notFoundErr, ok := IsNotFoundError(err)
	assert.False(t, ok)
	assert.Nil(t, notFoundErr)
}

func TestValidationError_Creation(t *testing.T) {
	message := "validation failed"
	details := []ValidationDetail{
		{Field: "email", Message: "invalid email"},
		{Field: "recipientName", Message: "required field"},
	}

	err := NewValidationError(message, details...)

	assert.NotNil(t, err)
	assert.Equal(t, message, err.Message)
	assert.Equal(t, message, err.Error())
	assert.Len(t, err.Details, 2)
}

func TestConflictError_Detection(t *testing.T) {
	err := NewConflictError("payment already settled")

	ce, ok := IsConflictError(err)
	assert.True(t, ok)
	assert.Equal(t, "payment already settled", ce.Message)

	_, ok = IsConflictError(errors.New("plain error"))
	assert.False(t, ok)
}

func TestAmountMismatchError_Detection(t *testing.T) {
	err := NewAmountMismatchError("callback amount does not match order total")

	ae, ok := IsAmountMismatchError(err)
	assert.True(t, ok)
	assert.Equal(t, "callback amount does not match order total", ae.Message)

	// Distinct from the general conflict kind.
	_, ok = IsConflictError(err)
	assert.False(t, ok)
}

func TestExpiredError_Detection(t *testing.T) {
	err := NewExpiredError("discount code expired")

	ee, ok := IsExpiredError(err)
	assert.True(t, ok)
	assert.Equal(t, "discount code expired", ee.Error())

	_, ok = IsExpiredError(NewConflictError("not expired"))
	assert.False(t, ok)
}

func TestMismatchError_Detection(t *testing.T) {
	err := NewMismatchError("verification code does not match")

	me, ok := IsMismatchError(err)
	assert.True(t, ok)
	assert.Equal(t, "verification code does not match", me.Error())
}

func TestSignatureError_Detection(t *testing.T) {
	err := NewSignatureError("secure hash mismatch")

	se, ok := IsSignatureError(err)
	assert.True(t, ok)
	assert.Equal(t, "secure hash mismatch", se.Error())

	var generic error = NewSignatureError("bad hash")
	assert.Equal(t, "bad hash", generic.Error())
}

func TestInternalError_Creation(t *testing.T) {
	cause := errors.New("database error")
	err := NewInternalError("failed to query database", cause)

	assert.NotNil(t, err)
	assert.Equal(t, "failed to query database", err.Message)
	assert.Equal(t, cause, err.Cause)
	assert.Contains(t, err.Error(), "failed to query database")
	assert.Contains(t, err.Error(), "database error")
}

func TestInternalError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := NewInternalError("wrapper", cause)

	assert.Equal(t, cause, err.Unwrap())
	assert.True(t, errors.Is(err, cause))
}

func TestInternalError_NilCause(t *testing.T) {
	err := NewInternalError("no cause", nil)

	assert.Equal(t, "no cause", err.Error())
	assert.Nil(t, err.Unwrap())
}
