package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for each error category. Custom error types unwrap to these,
// allowing callers to classify failures with errors.Is regardless of the
// details carried by the concrete error.
var (
	ErrObjectNotFound    = errors.New("object not found")
	ErrValueIsInvalid    = errors.New("value is invalid")
	ErrValueIsOutOfRange = errors.New("value is out of range")
	ErrValueIsRequired   = errors.New("value is required")
	ErrVersionIsInvalid  = errors.New("version is invalid")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrBadStatus         = errors.New("bad status")
	ErrIncorrectAmount   = errors.New("incorrect amount")
)

// sanitize flattens multi-line values so formatted error messages stay on one line.
func sanitize(value any) string {
	s := fmt.Sprintf("%v", value)
	s = strings.ReplaceAll(s, "\r", " ")
	return strings.ReplaceAll(s, "\n", " ")
}

// ObjectNotFoundError indicates that a referenced object does not exist.
// ParamName names the identifier parameter, ID carries the value looked up.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without an underlying cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %v (cause: %v)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %v", ErrObjectNotFound, e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError indicates that a supplied value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without an underlying cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping an underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates that a value lies outside its permitted bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError without an underlying cause.
func NewValueIsOutOfRangeError(paramName string, value any, minValue any, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping an underlying cause.
func NewValueIsOutOfRangeErrorWithCause(
	paramName string, value any, minValue any, maxValue any, cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s is %s, min value is %v, max value is %v (cause: %v)",
			ErrValueIsInvalid, sanitize(e.Value), e.ParamName, e.Min, e.Max, e.Cause)
	}
	return fmt.Sprintf("%s: %s is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, sanitize(e.Value), e.ParamName, e.Min, e.Max)
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError indicates that a required value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without an underlying cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// VersionIsInvalidError indicates that an aggregate version check failed.
type VersionIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewVersionIsInvalidError creates a VersionIsInvalidError wrapping an underlying cause.
func NewVersionIsInvalidError(paramName string, cause error) *VersionIsInvalidError {
	return &VersionIsInvalidError{ParamName: paramName, Cause: cause}
}

// NewVersionIsInvalidErrorWithCause creates a VersionIsInvalidError without an underlying cause.
func NewVersionIsInvalidErrorWithCause(paramName string) *VersionIsInvalidError {
	return &VersionIsInvalidError{ParamName: paramName}
}

func (e *VersionIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrVersionIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrVersionIsInvalid, e.ParamName)
}

func (e *VersionIsInvalidError) Unwrap() error {
	return ErrVersionIsInvalid
}

// UnauthorizedError indicates that the caller does not hold the role an
// operation requires. Role is the missing role ("owner" or "client"),
// Caller is the identity that made the call.
type UnauthorizedError struct {
	Role   string
	Caller string
	Cause  error
}

// NewUnauthorizedError creates an UnauthorizedError for the given role and caller.
func NewUnauthorizedError(role string, caller string) *UnauthorizedError {
	return &UnauthorizedError{Role: role, Caller: caller}
}

// NewUnauthorizedErrorWithCause creates an UnauthorizedError wrapping an underlying cause.
func NewUnauthorizedErrorWithCause(role string, caller string, cause error) *UnauthorizedError {
	return &UnauthorizedError{Role: role, Caller: caller, Cause: cause}
}

func (e *UnauthorizedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: not %s (caller is: %s) (cause: %v)",
			ErrUnauthorized, e.Role, sanitize(e.Caller), e.Cause)
	}
	return fmt.Sprintf("%s: not %s (caller is: %s)", ErrUnauthorized, e.Role, sanitize(e.Caller))
}

func (e *UnauthorizedError) Unwrap() error {
	return ErrUnauthorized
}

// BadStatusError indicates that an order's current status does not permit
// the requested operation.
type BadStatusError struct {
	Operation string
	Status    string
	Cause     error
}

// NewBadStatusError creates a BadStatusError for the given operation and current status.
func NewBadStatusError(operation string, status string) *BadStatusError {
	return &BadStatusError{Operation: operation, Status: status}
}

// NewBadStatusErrorWithCause creates a BadStatusError wrapping an underlying cause.
func NewBadStatusErrorWithCause(operation string, status string, cause error) *BadStatusError {
	return &BadStatusError{Operation: operation, Status: status, Cause: cause}
}

func (e *BadStatusError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s is not a valid status to %s (cause: %v)",
			ErrBadStatus, e.Status, e.Operation, e.Cause)
	}
	return fmt.Sprintf("%s: %s is not a valid status to %s", ErrBadStatus, e.Status, e.Operation)
}

func (e *BadStatusError) Unwrap() error {
	return ErrBadStatus
}

// IncorrectAmountError indicates that a payment value does not exactly equal
// the amount an order requires.
type IncorrectAmountError struct {
	Expected int64
	Got      int64
	Cause    error
}

// NewIncorrectAmountError creates an IncorrectAmountError for the expected and received amounts.
func NewIncorrectAmountError(expected int64, got int64) *IncorrectAmountError {
	return &IncorrectAmountError{Expected: expected, Got: got}
}

// NewIncorrectAmountErrorWithCause creates an IncorrectAmountError wrapping an underlying cause.
func NewIncorrectAmountErrorWithCause(expected int64, got int64, cause error) *IncorrectAmountError {
	return &IncorrectAmountError{Expected: expected, Got: got, Cause: cause}
}

func (e *IncorrectAmountError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: got %d, expected %d (cause: %v)",
			ErrIncorrectAmount, e.Got, e.Expected, e.Cause)
	}
	return fmt.Sprintf("%s: got %d, expected %d", ErrIncorrectAmount, e.Got, e.Expected)
}

func (e *IncorrectAmountError) Unwrap() error {
	return ErrIncorrectAmount
}
