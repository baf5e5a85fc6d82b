// Package lilacmesh loads, validates and models a Lilac mesh: a small
// textual triangulation format carrying a per-vertex surface-normal field.
package lilacmesh

import "fmt"

// Code is a Lilac mesh error code.
//
// Zero means no error. Positive codes are defined by this package; negative
// codes are passed through unchanged from the token source (see
// internal/token) and are not known to this package beyond their sign.
type Code int

// Error codes specific to mesh loading and validation.
const (
	ErrOK     Code = 0  // No error
	ErrREM    Code = 1  // Elements remain on the interpreter stack at end
	ErrPUNDEF Code = 2  // Points remain undefined in mesh
	ErrTUNDEF Code = 3  // Triangles remain undefined in mesh
	ErrORPHAN Code = 4  // Orphan points detected in mesh
	ErrETYPE  Code = 5  // Unsupported entity type
	ErrNUMBER Code = 6  // Invalid numeric literal
	ErrOVERFL Code = 7  // Interpreter stack overflow
	ErrBADOP  Code = 8  // Unrecognized mesh operation
	ErrUNDERF Code = 9  // Stack underflow during operation
	ErrNOSIG  Code = 10 // Failed to read Lilac mesh signature
	ErrSIGVER Code = 11 // Lilac mesh signature for unsupported version
	ErrNODIM  Code = 12 // Failed to read Lilac mesh dimensions metacommand
	ErrBADDIM Code = 13 // Invalid Lilac mesh dimension metacommand syntax
	ErrDIMVAL Code = 14 // Lilac mesh dimension value is out of range
	ErrPCOUNT Code = 15 // Declared mesh point count is out of allowed range
	ErrTCOUNT Code = 16 // Declared mesh triangle count is out of allowed range
	ErrNORMDA Code = 17 // norma must be zero when normd is zero
	ErrNORM2P Code = 18 // norma must be less than 2*PI radians
	ErrPTOVER Code = 19 // More points defined than were declared in dimensions
	ErrPTREF  Code = 20 // Triangle references point that hasn't been defined
	ErrVXDUP  Code = 21 // Triangle has duplicated vertex point
	ErrVXORD  Code = 22 // First triangle vertex must have lowest numeric index
	ErrORIENT Code = 23 // Triangle vertices must be in counter-clockwise order
	ErrTRSORT Code = 24 // Triangles are sorted incorrectly in list
	ErrDUPEDG Code = 25 // Same directed triangle edge used more than once
	ErrTROVER Code = 26 // Too many triangles defined
)

var codeMessages = map[Code]string{
	ErrOK:     "No error",
	ErrREM:    "Elements remain on the interpreter stack at end",
	ErrPUNDEF: "Points remain undefined in mesh",
	ErrTUNDEF: "Triangles remain undefined in mesh",
	ErrORPHAN: "Orphan points detected in mesh",
	ErrETYPE:  "Unsupported entity type",
	ErrNUMBER: "Invalid numeric literal",
	ErrOVERFL: "Interpreter stack overflow",
	ErrBADOP:  "Unrecognized mesh operation",
	ErrUNDERF: "Stack underflow during operation",
	ErrNOSIG:  "Failed to read Lilac mesh signature",
	ErrSIGVER: "Lilac mesh signature for unsupported version",
	ErrNODIM:  "Failed to read Lilac mesh dimensions metacommand",
	ErrBADDIM: "Invalid Lilac mesh dimension metacommand syntax",
	ErrDIMVAL: "Lilac mesh dimension value is out of range",
	ErrPCOUNT: "Declared mesh point count is out of allowed range",
	ErrTCOUNT: "Declared mesh triangle count is out of allowed range",
	ErrNORMDA: "norma must be zero when normd is zero",
	ErrNORM2P: "norma must be less than 2*PI radians",
	ErrPTOVER: "More points defined than were declared in dimensions",
	ErrPTREF:  "Triangle references point that hasn't been defined",
	ErrVXDUP:  "Triangle has duplicated vertex point",
	ErrVXORD:  "First triangle vertex must have lowest numeric index",
	ErrORIENT: "Triangle vertices must be in counter-clockwise order",
	ErrTRSORT: "Triangles are sorted incorrectly in list",
	ErrDUPEDG: "Same directed triangle edge used more than once",
	ErrTROVER: "Too many triangles defined",
}

// TokenizerErrString, when non-nil, renders a negative (tokenizer-owned)
// error code as a message. The loader wires this to the token source it is
// reading from so that Error() can still produce a human string for codes
// it does not itself own.
var TokenizerErrString func(code int) string

// String returns the message for c, with the same register and punctuation
// as the reference implementation: no trailing punctuation, capitalized
// except for the two messages that open with the field name "norma".
func (c Code) String() string {
	if c == ErrOK {
		return codeMessages[ErrOK]
	}
	if c > 0 {
		if s, ok := codeMessages[c]; ok {
			return s
		}
		return "Unknown error"
	}
	if TokenizerErrString != nil {
		return TokenizerErrString(int(c))
	}
	return "Unknown error"
}

// LoadError is returned by Load when a mesh fails to parse or validate.
//
// Line is the 1-based source line associated with the failure, or 0 when
// the error is structural (not attributable to a single token) or when the
// tokenizer did not report a usable line number.
type LoadError struct {
	Code Code
	Line int
}

func (e *LoadError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("[line %d] %s", e.Line, e.Code.String())
	}
	return e.Code.String()
}

// normalizeLine clamps a reported line number to the documented [0, +inf)
// range; a tokenizer reporting something nonsensical normalizes to 0.
func normalizeLine(line int) int {
	if line < 0 {
		return 0
	}
	return line
}
