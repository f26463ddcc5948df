package flatjson

import "github.com/pkg/errors"

// Errors shared by the parser and the writer. Failure sites wrap
// these with positional context; use errors.Cause (or ErrorText) to
// classify a returned error.
var (
	// ErrNoMem signals that the token table ran out of slots.
	ErrNoMem = errors.New("not enough tokens were provided")
	// ErrInvalid signals a malformed byte in the JSON text.
	ErrInvalid = errors.New("invalid character inside JSON text")
	// ErrPartial signals well-formed but truncated input.
	ErrPartial = errors.New("text is not a full JSON packet, more bytes expected")
	// ErrBufferFull signals that the writer's output buffer is exhausted.
	ErrBufferFull = errors.New("output buffer full")
	// ErrNotArray signals an array-style write while an object is open.
	ErrNotArray = errors.New("tried to write array value into object")
	// ErrNotObject signals a keyed write while an array is open.
	ErrNotObject = errors.New("tried to write object key/value into array")
	// ErrStackFull signals nesting beyond the writer's stack depth.
	ErrStackFull = errors.New("array/object nesting exceeds stack depth")
	// ErrStackEmpty signals a close without a matching open.
	ErrStackEmpty = errors.New("stack underflow, too many closes")
	// ErrNesting signals containers still open when End is called.
	ErrNesting = errors.New("nesting error, not all containers closed at End")
)

// ErrorText returns a human readable description for any error of
// this package, unwrapping added context first. A nil error yields
// "OK".
func ErrorText(err error) string {
	if err == nil {
		return "OK"
	}
	switch errors.Cause(err) {
	case ErrNoMem, ErrInvalid, ErrPartial, ErrBufferFull, ErrNotArray,
		ErrNotObject, ErrStackFull, ErrStackEmpty, ErrNesting:
		return errors.Cause(err).Error()
	default:
		return "unknown error"
	}
}
