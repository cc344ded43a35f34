package errs

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrValueIsRequired     = errors.New("value is required")
	ErrValueIsInvalid      = errors.New("value is invalid")
	ErrValueIsOutOfRange   = errors.New("value is out of range")
	ErrInvalidInput        = errors.New("invalid input")
	ErrObjectNotFound      = errors.New("object not found")
	ErrObjectAlreadyExists = errors.New("object already exists")
	ErrVersionIsInvalid    = errors.New("version is invalid")
	ErrUnavailable         = errors.New("dependency is unavailable")
)

// IsValidation reports whether err belongs to the validation family
// (required, invalid or out of range).
func IsValidation(err error) bool {
	return errors.Is(err, ErrValueIsRequired) ||
		errors.Is(err, ErrValueIsInvalid) ||
		errors.Is(err, ErrValueIsOutOfRange)
}

// IsRetryable reports whether the caller may repeat the operation unchanged.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrUnavailable) || errors.Is(err, ErrVersionIsInvalid)
}

// IsDomain reports whether err is one of the typed errors of this package
// other than UnavailableError.
func IsDomain(err error) bool {
	return IsValidation(err) ||
		errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrObjectNotFound) ||
		errors.Is(err, ErrObjectAlreadyExists) ||
		errors.Is(err, ErrVersionIsInvalid)
}

// AsUnavailable keeps domain errors and caller cancellation unchanged and
// reports anything else, deadlines included, as an UnavailableError of dependency.
func AsUnavailable(dependency string, err error) error {
	if err == nil || IsDomain(err) || errors.Is(err, ErrUnavailable) || errors.Is(err, context.Canceled) {
		return err
	}
	return NewUnavailableErrorWithCause(dependency, err)
}

func withCause(msg string, cause error) string {
	if cause == nil {
		return msg
	}
	return fmt.Sprintf("%s (cause: %v)", msg, cause)
}

// sanitize renders arbitrary values on a single line.
func sanitize(v any) string {
	return strings.ReplaceAll(fmt.Sprintf("%v", v), "\n", " ")
}

type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName), e.Cause)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName), e.Cause)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

func NewValueIsOutOfRangeErrorWithCause(
	paramName string, value, minValue, maxValue any, cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	return withCause(fmt.Sprintf("%s: %s is %s, min value is %s, max value is %s",
		ErrValueIsOutOfRange, e.ParamName, sanitize(e.Value), sanitize(e.Min), sanitize(e.Max)), e.Cause)
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// InvalidInputError is returned by pure calculators; it is deliberately not
// part of the validation family so callers can tell the two apart.
type InvalidInputError struct {
	ParamName string
	Value     any
	Cause     error
}

func NewInvalidInputError(paramName string, value any) *InvalidInputError {
	return &InvalidInputError{ParamName: paramName, Value: value}
}

func NewInvalidInputErrorWithCause(paramName string, value any, cause error) *InvalidInputError {
	return &InvalidInputError{ParamName: paramName, Value: value, Cause: cause}
}

func (e *InvalidInputError) Error() string {
	return withCause(fmt.Sprintf("%s: %s is %s", ErrInvalidInput, e.ParamName, sanitize(e.Value)), e.Cause)
}

func (e *InvalidInputError) Unwrap() error {
	return ErrInvalidInput
}

type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	return withCause(fmt.Sprintf("%s: %s %s", ErrObjectNotFound, e.ParamName, sanitize(e.ID)), e.Cause)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

type ObjectAlreadyExistsError struct {
	ParamName string
	Cause     error
}

func NewObjectAlreadyExistsError(paramName string) *ObjectAlreadyExistsError {
	return &ObjectAlreadyExistsError{ParamName: paramName}
}

func NewObjectAlreadyExistsErrorWithCause(paramName string, cause error) *ObjectAlreadyExistsError {
	return &ObjectAlreadyExistsError{ParamName: paramName, Cause: cause}
}

func (e *ObjectAlreadyExistsError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrObjectAlreadyExists, e.ParamName), e.Cause)
}

func (e *ObjectAlreadyExistsError) Unwrap() error {
	return ErrObjectAlreadyExists
}

// VersionIsInvalidError signals a lost optimistic-concurrency race.
type VersionIsInvalidError struct {
	ParamName string
	Expected  int64
	Cause     error
}

func NewVersionIsInvalidError(paramName string, expected int64) *VersionIsInvalidError {
	return &VersionIsInvalidError{ParamName: paramName, Expected: expected}
}

func NewVersionIsInvalidErrorWithCause(paramName string, expected int64, cause error) *VersionIsInvalidError {
	return &VersionIsInvalidError{ParamName: paramName, Expected: expected, Cause: cause}
}

func (e *VersionIsInvalidError) Error() string {
	return withCause(fmt.Sprintf("%s: %s, expected version is %d", ErrVersionIsInvalid, e.ParamName, e.Expected), e.Cause)
}

func (e *VersionIsInvalidError) Unwrap() error {
	return ErrVersionIsInvalid
}

// UnavailableError wraps a timeout or failure of an external collaborator.
type UnavailableError struct {
	Dependency string
	Cause      error
}

func NewUnavailableError(dependency string) *UnavailableError {
	return &UnavailableError{Dependency: dependency}
}

func NewUnavailableErrorWithCause(dependency string, cause error) *UnavailableError {
	return &UnavailableError{Dependency: dependency, Cause: cause}
}

func (e *UnavailableError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrUnavailable, e.Dependency), e.Cause)
}

func (e *UnavailableError) Unwrap() error {
	return ErrUnavailable
}

// Retryable is always true; the operation did not take effect.
func (e *UnavailableError) Retryable() bool {
	return true
}
