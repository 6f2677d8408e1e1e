package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseClassify Phase = "classify" // value vs declared type
	PhaseFormat   Phase = "format"   // value to text
	PhaseCount    Phase = "count"    // $count rendering
	PhaseWrite    Phase = "write"    // sink delivery
	PhaseParse    Phase = "parse"    // type names and text input
	PhaseConfig   Phase = "config"   // enum and serializer configuration
)

// Kind categorizes the error
type Kind string

const (
	KindTypeMismatch Kind = "type_mismatch"
	KindUnsupported  Kind = "unsupported"
	KindNullValue    Kind = "null_value"
	KindOverflow     Kind = "overflow"
	KindInvalidInput Kind = "invalid_input"
	KindInvalidEnum  Kind = "invalid_enum"
	KindNotFound     Kind = "not_found"
	KindWriteFailed  Kind = "write_failed"
)

// Error is the structured error type used throughout the module
type Error struct {
	Value        any
	Cause        error
	Phase        Phase
	Kind         Kind
	GoType       string
	DeclaredType string
	Detail       string
	Path         []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "/"))
	}

	if e.GoType != "" || e.DeclaredType != "" {
		b.WriteString(": ")
		if e.GoType != "" && e.DeclaredType != "" {
			b.WriteString("Go type ")
			b.WriteString(e.GoType)
			b.WriteString(", declared type ")
			b.WriteString(e.DeclaredType)
		} else if e.GoType != "" {
			b.WriteString("Go type ")
			b.WriteString(e.GoType)
		} else {
			b.WriteString("declared type ")
			b.WriteString(e.DeclaredType)
		}
	}

	if e.Detail != "" {
		if e.GoType != "" || e.DeclaredType != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error.
// A target with an empty Phase matches any phase.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return (t.Phase == "" || e.Phase == t.Phase) && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the request path the error relates to
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// GoType sets the Go type name
func (b *Builder) GoType(t string) *Builder {
	b.err.GoType = t
	return b
}

// DeclaredType sets the declared type name
func (b *Builder) DeclaredType(t string) *Builder {
	b.err.DeclaredType = t
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// TypeMismatch creates a type mismatch error
func TypeMismatch(phase Phase, goType, declaredType string) *Error {
	return &Error{
		Phase:        phase,
		Kind:         KindTypeMismatch,
		GoType:       goType,
		DeclaredType: declaredType,
	}
}

// Unsupported creates an unsupported kind error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}

// NullValue creates an error for a null value that has no raw representation
func NullValue(phase Phase, declaredType string) *Error {
	return &Error{
		Phase:        phase,
		Kind:         KindNullValue,
		DeclaredType: declaredType,
		Detail:       "null has no raw value representation",
	}
}

// Overflow creates an overflow error
func Overflow(phase Phase, value any, targetType string) *Error {
	return &Error{
		Phase:        phase,
		Kind:         KindOverflow,
		DeclaredType: targetType,
		Detail:       fmt.Sprintf("value %v overflows %s", value, targetType),
		Value:        value,
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// InvalidEnum creates an invalid enum declaration error
func InvalidEnum(phase Phase, enumType, detail string) *Error {
	return &Error{
		Phase:        phase,
		Kind:         KindInvalidEnum,
		DeclaredType: enumType,
		Detail:       detail,
	}
}

// NotFound creates a not-found error
func NotFound(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %q not found", what, name),
	}
}

// WriteFailed wraps a sink failure
func WriteFailed(cause error) *Error {
	return &Error{
		Phase:  PhaseWrite,
		Kind:   KindWriteFailed,
		Detail: "sink rejected payload",
		Cause:  cause,
	}
}

// ParseFailed creates a parsing error
func ParseFailed(what string, cause error) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindInvalidInput,
		Detail: fmt.Sprintf("parse %s", what),
		Cause:  cause,
	}
}
