package types

import (
	"errors"
	"fmt"
	"net/http"
)

type ErrorCode string

func (e ErrorCode) String() string {
	return string(e)
}

const (
	// ParseParams means the inbound request could not be decoded.
	ParseParams ErrorCode = "PARSE_PARAMS"
	// Unauthorized means the caller is not the claimed owner.
	Unauthorized ErrorCode = "UNAUTHORIZED"
	// NotOperator means the staking module lacks transfer authorization
	// over the owner's tokens.
	NotOperator ErrorCode = "NOT_OPERATOR"
	// NoBalance means the owner's token balance is insufficient for the
	// requested stake.
	NoBalance ErrorCode = "NO_BALANCE"
	// TokenAlreadyStaked covers both directions of global staked set
	// violations: staking a token that is already staked, and removing a
	// token that is not.
	TokenAlreadyStaked ErrorCode = "TOKEN_ALREADY_STAKED"
	// TokenNotFound means the referenced token is unknown.
	TokenNotFound ErrorCode = "TOKEN_NOT_FOUND"
	// InvokeContractError means the external call could not be dispatched
	// or returned no result.
	InvokeContractError ErrorCode = "INVOKE_CONTRACT_ERROR"
	// ParseResult means the external call returned an undecodable response.
	ParseResult ErrorCode = "PARSE_RESULT"
	// InternalServiceError is reserved for host-contract violations and
	// infrastructure failures.
	InternalServiceError ErrorCode = "INTERNAL_SERVICE_ERROR"
)

// Error carries the HTTP status surfaced at the API edge, the flat error
// code of the staking protocol and the underlying cause. Every Error is
// terminal for the transaction that produced it.
type Error struct {
	Err        error
	StatusCode int
	ErrorCode  ErrorCode
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.ErrorCode.String()
	}
	return fmt.Sprintf("%s: %v", e.ErrorCode, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NewError(statusCode int, errorCode ErrorCode, err error) *Error {
	return &Error{
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Err:        err,
	}
}

func NewErrorWithMsg(statusCode int, errorCode ErrorCode, msg string) *Error {
	return NewError(statusCode, errorCode, errors.New(msg))
}

func NewInternalServiceError(err error) *Error {
	return &Error{
		StatusCode: http.StatusInternalServerError,
		ErrorCode:  InternalServiceError,
		Err:        err,
	}
}

// ErrorCodeOf extracts the protocol error code from err, falling back to
// INTERNAL_SERVICE_ERROR for untyped errors.
func ErrorCodeOf(err error) ErrorCode {
	var typed *Error
	if errors.As(err, &typed) {
		return typed.ErrorCode
	}
	return InternalServiceError
}
