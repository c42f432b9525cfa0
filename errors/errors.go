package errors

import (
	"errors"
	"fmt"
)

// ErrorClass represents the classification of errors for handling purposes
type ErrorClass int

const (
	// ErrorInvalid represents errors due to invalid input or configuration
	ErrorInvalid ErrorClass = iota
	// ErrorFatal represents broken invariants that must abort the operation
	ErrorFatal
)

// String returns the string representation of ErrorClass
func (ec ErrorClass) String() string {
	switch ec {
	case ErrorInvalid:
		return "invalid"
	case ErrorFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// Standard error variables
var (
	// Representation codec
	ErrNoGrammarMatch   = errors.New("text does not match representation grammar")
	ErrGrammarViolation = errors.New("encoded representation violates grammar")

	// Terms and catalogue
	ErrInvalidTag       = errors.New("invalid term tag")
	ErrDuplicateTerm    = errors.New("term already registered")
	ErrUnknownSeries    = errors.New("series not registered")
	ErrRegistryFrozen   = errors.New("registry is frozen")
	ErrAmbiguousVersion = errors.New("ambiguous version for base URI")
	ErrInvalidCatalogue = errors.New("invalid catalogue document")
	ErrUnknownTerm      = errors.New("term not found")

	// Configuration
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrMissingConfig = errors.New("missing required configuration")
)

// ClassifiedError wraps an error with its classification
type ClassifiedError struct {
	Class     ErrorClass
	Err       error
	Message   string
	Component string
	Operation string
}

// Error implements the error interface
func (ce *ClassifiedError) Error() string {
	if ce.Message != "" {
		return ce.Message
	}
	return ce.Err.Error()
}

// Unwrap returns the underlying error
func (ce *ClassifiedError) Unwrap() error {
	return ce.Err
}

// IsFatal checks if an error indicates a defect that must abort processing
func IsFatal(err error) bool {
	if err == nil {
		return false
	}

	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Class == ErrorFatal
	}

	return errors.Is(err, ErrGrammarViolation) ||
		errors.Is(err, ErrAmbiguousVersion) ||
		errors.Is(err, ErrRegistryFrozen)
}

// IsInvalid checks if an error is due to invalid input
func IsInvalid(err error) bool {
	if err == nil {
		return false
	}

	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Class == ErrorInvalid
	}

	return errors.Is(err, ErrNoGrammarMatch) ||
		errors.Is(err, ErrInvalidTag) ||
		errors.Is(err, ErrDuplicateTerm) ||
		errors.Is(err, ErrUnknownSeries) ||
		errors.Is(err, ErrUnknownTerm) ||
		errors.Is(err, ErrInvalidCatalogue) ||
		errors.Is(err, ErrInvalidConfig) ||
		errors.Is(err, ErrMissingConfig)
}

// Classify returns the error class for an error.
// Unclassified errors are treated as fatal: nothing in this module produces
// an error that is safe to ignore.
func Classify(err error) ErrorClass {
	if IsInvalid(err) {
		return ErrorInvalid
	}
	return ErrorFatal
}

func newClassified(class ErrorClass, err error, component, operation, message string) *ClassifiedError {
	return &ClassifiedError{
		Class:     class,
		Err:       err,
		Message:   message,
		Component: component,
		Operation: operation,
	}
}

// Wrap creates a standardized error with context following the pattern:
// "component.method: action failed: %w"
func Wrap(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s.%s: %s failed: %w", component, method, action, err)
}

// WrapFatal wraps an error as fatal with context
func WrapFatal(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	wrappedErr := Wrap(err, component, method, action)
	return newClassified(ErrorFatal, wrappedErr, component, method, wrappedErr.Error())
}

// WrapInvalid wraps an error as invalid with context
func WrapInvalid(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	wrappedErr := Wrap(err, component, method, action)
	return newClassified(ErrorInvalid, wrappedErr, component, method, wrappedErr.Error())
}
