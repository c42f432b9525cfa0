// Package errors provides the error classification shared by the codec, the
// URI composer, the catalogue and the resolver.
//
// # Overview
//
// Errors fall into two classes:
//
//   - Invalid: malformed input, validation failures, unknown catalogue
//     entries supplied by a caller. The caller can fix the input.
//   - Fatal: a broken internal invariant or a corrupt catalogue. The
//     operation must be aborted; continuing silently would hide a defect.
//
// Recoverable conditions that the API expresses as absence (a string that
// does not match the representation grammar, a token without a catalogue
// entry) are NOT errors and never reach this package.
//
// # Wrapping Pattern
//
// All wrapping follows the format:
//
//	"component.method: action failed: %w"
//
// Two wrappers attach a class while preserving the chain:
//
//	errors.WrapInvalid(err, "Registry", "Register", "tag validation")
//	errors.WrapFatal(err, "Codec", "Encode", "grammar check")
//
// The plain Wrap keeps whatever class the wrapped error already carries.
//
// # Classification
//
//	if errors.IsFatal(err) {
//	    // abort: indicates a defect, not bad external input
//	}
//
// IsFatal and IsInvalid look through wrapping chains with errors.As, then fall
// back to the sentinel variables declared in this package.
package errors
