package errors

import "fmt"

// SchemaError indicates a malformed configuration struct declaration. It is a
// build-time failure: it is produced when the schema for a type is first
// constructed and cached, never during parsing itself.
type SchemaError struct {
	Type string
	Msg  string
}

func (e SchemaError) Error() string {
	return fmt.Sprintf("invalid option schema for %s: %s", e.Type, e.Msg)
}

// UnknownFlagError indicates a token in flag position that is not registered
// in the schema. Position is the token's index in the argument sequence.
type UnknownFlagError struct {
	Flag     string
	Position int
}

func (e UnknownFlagError) Error() string {
	return fmt.Sprintf("unknown flag %q at position %d", e.Flag, e.Position)
}

// MissingValueError indicates a trailing flag with no paired value token.
type MissingValueError struct {
	Flag     string
	Position int
}

func (e MissingValueError) Error() string {
	return fmt.Sprintf("missing value for flag %q at position %d", e.Flag, e.Position)
}

// CoercionError indicates a value token that could not be converted to the
// declared type of the field its flag selects.
type CoercionError struct {
	Field string
	Flag  string
	Value string
	Err   error
}

func (e CoercionError) Error() string {
	return fmt.Sprintf("invalid value %q for field %s (flag %s): %v", e.Value, e.Field, e.Flag, e.Err)
}

func (e CoercionError) Unwrap() error { return e.Err }

// MissingFlagError indicates a field declared required whose flag never
// appeared in the argument sequence.
type MissingFlagError struct {
	Field string
	Flag  string
}

func (e MissingFlagError) Error() string {
	return fmt.Sprintf("missing required flag %s (field %s)", e.Flag, e.Field)
}

// UnknownSubcommandError indicates the user invoked a subcommand that does not exist.
// Suggestion, if present, is a close match the user may have intended.
type UnknownSubcommandError struct{ Name, Suggestion string }

func (e UnknownSubcommandError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("unknown subcommand: %s (did you mean %q?)", e.Name, e.Suggestion)
	}
	return fmt.Sprintf("unknown subcommand: %s", e.Name)
}

// Helper constructors
func NewSchemaError(typ, msg string) error { return SchemaError{Type: typ, Msg: msg} }
func NewUnknownFlag(flag string, pos int) error {
	return UnknownFlagError{Flag: flag, Position: pos}
}
func NewMissingValue(flag string, pos int) error {
	return MissingValueError{Flag: flag, Position: pos}
}
func NewCoercion(field, flag, value string, err error) error {
	return CoercionError{Field: field, Flag: flag, Value: value, Err: err}
}
func NewMissingFlag(field, flag string) error { return MissingFlagError{Field: field, Flag: flag} }
func NewUnknownSubcommand(name, suggestion string) error {
	return UnknownSubcommandError{Name: name, Suggestion: suggestion}
}
