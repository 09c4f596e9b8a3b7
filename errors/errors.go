package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseQuery   Phase = "query"   // native OS calls
	PhaseDecode  Phase = "decode"  // native buffers to Go values
	PhaseResolve Phase = "resolve" // native id to IANA id
	PhaseLoad    Phase = "load"    // reading the cross-reference file
	PhaseParse   Phase = "parse"   // deserializing the cross-reference file
)

// Kind categorizes the error
type Kind string

const (
	KindTimeZoneUnknown   Kind = "time_zone_unknown"
	KindInvalidReturnCode Kind = "invalid_return_code"
	KindIllformedString   Kind = "illformed_string"
	KindOverflow          Kind = "overflow"
	KindSyscall           Kind = "syscall"
	KindFileRead          Kind = "file_read"
	KindDeserialize       Kind = "deserialize"
	KindUnsupported       Kind = "unsupported"
)

// Sentinels for errors.Is. They carry no phase, so they match any phase.
var (
	ErrTimeZoneUnknown         = &Error{Kind: KindTimeZoneUnknown}
	ErrInvalidReturnCode       = &Error{Kind: KindInvalidReturnCode}
	ErrIllformedTimeZoneString = &Error{Kind: KindIllformedString}
	ErrOverflow                = &Error{Kind: KindOverflow}
	ErrSyscall                 = &Error{Kind: KindSyscall}
	ErrFileRead                = &Error{Kind: KindFileRead}
	ErrDeserializeData         = &Error{Kind: KindDeserialize}
	ErrUnsupported             = &Error{Kind: KindUnsupported}
)

// Error is the structured error type used throughout the module
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string
	Path   []string
	Code   uint32 // OS last-error value, set for KindSyscall
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	if e.Phase != "" {
		b.WriteByte('[')
		b.WriteString(string(e.Phase))
		b.WriteString("] ")
	}
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Kind == KindSyscall {
		fmt.Fprintf(&b, " (code %d)", e.Code)
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
// Kinds must be equal; phases are compared only when the target sets one.
// An overflow is a more specific ill-formed string and matches both.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Phase != "" && t.Phase != e.Phase {
		return false
	}
	if e.Kind == t.Kind {
		return true
	}
	return e.Kind == KindOverflow && t.Kind == KindIllformedString
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

// Path sets the field path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Code sets the OS error code
func (b *Builder) Code(code uint32) *Builder {
	b.err.Code = code
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

// TimeZoneUnknown creates an error for a zone the OS or the table does not know
func TimeZoneUnknown(phase Phase, detail string, args ...any) *Error {
	return New(phase, KindTimeZoneUnknown).Detail(detail, args...).Build()
}

// InvalidReturnCode creates an error for a status outside the documented set
func InvalidReturnCode(fn string, code uint32) *Error {
	return &Error{
		Phase:  PhaseQuery,
		Kind:   KindInvalidReturnCode,
		Detail: fmt.Sprintf("%s returned unexpected status %d", fn, code),
		Value:  code,
	}
}

// IllformedString creates a non-ASCII or badly padded buffer error
func IllformedString(path []string, detail string) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindIllformedString,
		Path:   path,
		Detail: detail,
	}
}

// Overflow creates a capacity overflow error
func Overflow(path []string, length, capacity int) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindOverflow,
		Path:   path,
		Detail: fmt.Sprintf("length %d exceeds capacity %d", length, capacity),
		Value:  length,
	}
}

// Syscall creates an error for a failed OS primitive carrying its last-error code
func Syscall(fn string, code uint32, cause error) *Error {
	return &Error{
		Phase:  PhaseQuery,
		Kind:   KindSyscall,
		Detail: fn + " failed",
		Code:   code,
		Cause:  cause,
	}
}

// FileRead creates a cross-reference file read error
func FileRead(path string, cause error) *Error {
	return &Error{
		Phase:  PhaseLoad,
		Kind:   KindFileRead,
		Detail: fmt.Sprintf("read %s", path),
		Cause:  cause,
	}
}

// Deserialize creates a cross-reference document shape error
func Deserialize(path []string, detail string, cause error) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindDeserialize,
		Path:   path,
		Detail: detail,
		Cause:  cause,
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what + " not supported",
	}
}

// WithPath returns a copy of err with prefix prepended to its path.
// Errors that are not *Error are returned unchanged.
func WithPath(err error, prefix ...string) error {
	e, ok := err.(*Error)
	if !ok {
		return err
	}
	cp := *e
	cp.Path = append(append([]string(nil), prefix...), e.Path...)
	return &cp
}
