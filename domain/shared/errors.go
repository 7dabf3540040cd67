/*
Package shared holds the building blocks common to every subdomain:
the domain event contract, the event dispatcher and the error families.

Error design:
1. Sentinel errors support errors.Is() across layers.
2. DomainError captures the stack at creation but formats it lazily,
   only when a log line actually asks for it.
3. Domain errors carry no transport concepts (no HTTP status codes).
*/
package shared

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// The three error families of the domain. Every concrete domain error
// wraps exactly one of these.
var (
	// ErrInvalidAggregateState marks constructor or mutation input that
	// violates an aggregate invariant. Never retried; the caller must
	// fix its input.
	ErrInvalidAggregateState = errors.New("invalid aggregate state")

	// ErrNotFound marks a lookup for an entity that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrPersistence marks a storage-origin write failure. Not retried
	// here; surfaced for the caller's retry policy.
	ErrPersistence = errors.New("persistence failure")
)

// DomainError is a structured error with business context and the stack
// of its creation point. Unwrap yields the sentinel so errors.Is works.
type DomainError struct {
	Err     error  // sentinel family
	Entity  string // e.g. "order", "customer"
	Message string
	stack   []uintptr
}

func (e *DomainError) Error() string {
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// Stack formats the captured stack, one frame per element.
func (e *DomainError) Stack() []string {
	return FormatStack(e.stack)
}

// NewDomainError builds a DomainError wrapping the given sentinel,
// capturing the stack from the caller's position.
func NewDomainError(sentinel error, entity, message string) error {
	return &DomainError{
		Err:     sentinel,
		Entity:  entity,
		Message: message,
		stack:   CaptureStack(3),
	}
}

// CaptureStack records the current call stack. skip counts the frames to
// drop (usually 3: runtime.Callers, CaptureStack, the constructor).
func CaptureStack(skip int) []uintptr {
	var pcs [32]uintptr
	n := runtime.Callers(skip, pcs[:])
	return pcs[:n]
}

// FormatStack renders captured frames, filtering runtime internals and
// keeping at most 10 frames.
func FormatStack(stack []uintptr) []string {
	if len(stack) == 0 {
		return nil
	}

	frames := runtime.CallersFrames(stack)
	var result []string
	for {
		frame, more := frames.Next()
		if !strings.Contains(frame.File, "runtime/") {
			result = append(result, fmt.Sprintf("%s:%d %s", frame.File, frame.Line, frame.Function))
		}
		if !more || len(result) > 10 {
			break
		}
	}
	return result
}

// Stacker is implemented by errors that carry a creation-point stack.
// The API layer uses it to log where an error originated.
type Stacker interface {
	Stack() []string
}
