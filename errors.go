package specgen

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors of the decode-time error taxonomy.
var (
	// ErrMissingRequiredField is returned when a required key is absent
	// from an encoded struct or union.
	ErrMissingRequiredField = errors.New("specgen: missing required field")

	// ErrUnknownVariant is returned when the discriminator of an encoded
	// union names no variant of the union.
	ErrUnknownVariant = errors.New("specgen: unknown variant")

	// ErrMalformedNumeric is returned when a bigint or decimal string does
	// not parse, or an integer does not fit its declared width.
	ErrMalformedNumeric = errors.New("specgen: malformed numeric")

	// ErrMalformedBytes is returned when an element of an encoded byte
	// sequence is not an integer in [0, 255].
	ErrMalformedBytes = errors.New("specgen: malformed bytes")

	// ErrTypeMismatch is returned when the shape of a structured value does
	// not match the declared type, e.g. a map where a sequence was expected.
	ErrTypeMismatch = errors.New("specgen: type mismatch")
)

// DecodeError is the error returned by generated deserializers.
type DecodeError struct {
	// Kind is one of the sentinel errors above.
	Kind error
	// Decl is the innermost declaration being decoded.
	Decl string
	// Path locates the faulty value from the root of the decoded value.
	// Segments are field names, list indexes and map keys.
	Path []string
	// Detail describes the offending value, e.g. "expected string, got bool".
	Detail string
}

// Error returns the error string.
func (e *DecodeError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Kind.Error())
	if e.Decl != "" {
		sb.WriteString(" decoding ")
		sb.WriteString(e.Decl)
	}
	if len(e.Path) > 0 {
		sb.WriteString(" at ")
		sb.WriteString(strings.Join(e.Path, "."))
	}
	if e.Detail != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Detail)
	}
	return sb.String()
}

// Is reports whether the target error is the kind of this error.
// This allows errors.Is(err, ErrUnknownVariant) to return true.
func (e *DecodeError) Is(err error) bool {
	return err == e.Kind
}

// PathString returns the path segments joined by dots.
func (e *DecodeError) PathString() string {
	return strings.Join(e.Path, ".")
}

// NewDecodeError returns a new DecodeError of the given kind.
func NewDecodeError(kind error, detail string) *DecodeError {
	return &DecodeError{Kind: kind, Detail: detail}
}

// UnknownVariant returns the error of a union discriminator naming no variant.
func UnknownVariant(decl, tag string) error {
	return &DecodeError{Kind: ErrUnknownVariant, Decl: decl, Detail: fmt.Sprintf("%q", tag)}
}

// WrapDecl records the declaration being decoded on err. The innermost
// declaration wins. WrapDecl returns nil if err is nil.
func WrapDecl(decl string, err error) error {
	if err == nil {
		return nil
	}
	var e *DecodeError
	if errors.As(err, &e) && e.Decl == "" {
		e.Decl = decl
	}
	return err
}

// WrapField prepends a path segment to err. It returns nil if err is nil.
func WrapField(field string, err error) error {
	if err == nil {
		return nil
	}
	var e *DecodeError
	if !errors.As(err, &e) {
		return &DecodeError{Kind: ErrTypeMismatch, Path: []string{field}, Detail: err.Error()}
	}
	e.Path = append([]string{field}, e.Path...)
	return err
}

// IsDecodeError returns true if the error is a DecodeError.
func IsDecodeError(err error) bool {
	if err == nil {
		return false
	}
	var e *DecodeError
	return errors.As(err, &e)
}

// IsMissingRequiredField returns true if a required key was absent.
func IsMissingRequiredField(err error) bool {
	return errors.Is(err, ErrMissingRequiredField)
}

// IsUnknownVariant returns true if a union discriminator was unknown.
func IsUnknownVariant(err error) bool {
	return errors.Is(err, ErrUnknownVariant)
}

// IsTypeMismatch returns true if a value had the wrong shape.
func IsTypeMismatch(err error) bool {
	return errors.Is(err, ErrTypeMismatch)
}

func mismatch(want string, got any) *DecodeError {
	return &DecodeError{Kind: ErrTypeMismatch, Detail: fmt.Sprintf("expected %s, got %s", want, describe(got))}
}

func describe(v any) string {
	if v == nil {
		return "null"
	}
	return fmt.Sprintf("%T", v)
}
