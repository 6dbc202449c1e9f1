package spec

import (
	"errors"
	"strings"
)

// Sentinel errors of the compile-time error taxonomy.
var (
	// ErrUnresolvedReference indicates a reference to a name not found in scope.
	ErrUnresolvedReference = errors.New("specgen: unresolved reference")
	// ErrUnresolvedImport indicates an import of a module missing from the compilation.
	ErrUnresolvedImport = errors.New("specgen: unresolved import")
	// ErrImportCycle indicates modules importing each other transitively.
	ErrImportCycle = errors.New("specgen: import cycle")
	// ErrAmbiguousAlias indicates one alias bound to two different modules.
	ErrAmbiguousAlias = errors.New("specgen: ambiguous alias")
	// ErrInvalidOptionalNesting indicates an optional wrapping another optional.
	ErrInvalidOptionalNesting = errors.New("specgen: invalid optional nesting")
	// ErrDuplicateDeclaration indicates two declarations (or fields, variants,
	// constants) with the same name in one scope.
	ErrDuplicateDeclaration = errors.New("specgen: duplicate declaration name")
	// ErrInvalidReference indicates a reference to a declaration that has no
	// runtime representation (const groups, virtual structs).
	ErrInvalidReference = errors.New("specgen: invalid reference")
	// ErrInvalidRecursion indicates a recursion without any indirection point.
	ErrInvalidRecursion = errors.New("specgen: invalid recursion")
	// ErrInvalidDeclaration indicates a malformed declaration or type.
	ErrInvalidDeclaration = errors.New("specgen: invalid declaration")
)

// Error is a compile-time error. Compile-time errors abort the run and
// never reach generated output.
type Error struct {
	// Kind is one of the sentinel errors above.
	Kind    error
	Module  string
	Decl    string
	Field   string
	Name    string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder
	if e.Kind != nil {
		b.WriteString(e.Kind.Error())
	} else {
		b.WriteString("specgen: compile error")
	}
	if e.Name != "" {
		b.WriteString(" ")
		b.WriteString(quote(e.Name))
	}
	if e.Module != "" {
		b.WriteString(" in module ")
		b.WriteString(quote(e.Module))
	}
	if e.Decl != "" {
		b.WriteString(" declaration ")
		b.WriteString(e.Decl)
	}
	if e.Field != "" {
		b.WriteString(" field ")
		b.WriteString(e.Field)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	return b.String()
}

// Is reports whether target is the sentinel of this error kind.
func (e *Error) Is(target error) bool {
	return e.Kind != nil && target == e.Kind
}

// NewError returns a compile-time error of the given kind.
func NewError(kind error, module, decl, message string) *Error {
	return &Error{Kind: kind, Module: module, Decl: decl, Message: message}
}

// IsCompileError reports whether the error is (or wraps) a compile-time error.
func IsCompileError(err error) bool {
	var e *Error
	return errors.As(err, &e)
}

func quote(s string) string {
	return `"` + s + `"`
}
