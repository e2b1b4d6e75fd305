package diagnostic

import "fmt"

// Diagnostic codes reported while loading an interface description.
const (
	CodeTypeSyntax      = "E_TYPE_SYNTAX"
	CodeUnknownType     = "E_UNKNOWN_TYPE"
	CodeDuplicateName   = "E_DUPLICATE_NAME"
	CodeLiteralMismatch = "E_LITERAL_MISMATCH"
	CodeLiteralSyntax   = "E_LITERAL_SYNTAX"
	CodeEmptyEnum       = "W_EMPTY_ENUM"
	CodeMissingName     = "E_MISSING_NAME"
	CodeDefaultOrder    = "E_DEFAULT_ORDER"
	CodeOctalLiteral    = "I_OCTAL_LITERAL"
)

// InvariantError is the panic value raised when code generation reaches a
// type/literal combination that a valid interface can never produce.
// It is not meant to be recovered by library code.
type InvariantError struct {
	Type    string // the offending type, as a type expression
	Literal string // the offending literal, if any
	Reason  string
}

// Error implements error.
func (e *InvariantError) Error() string {
	if e.Literal == "" {
		return fmt.Sprintf("internal invariant violated for %s: %s", e.Type, e.Reason)
	}

	return fmt.Sprintf("internal invariant violated: cannot render literal %s for %s: %s",
		e.Literal, e.Type, e.Reason)
}

// Invariant panics with an InvariantError.
func Invariant(typ, literal, reason string) {
	panic(&InvariantError{Type: typ, Literal: literal, Reason: reason})
}
