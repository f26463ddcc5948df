package flatjson

import "strconv"

// Kind is an enum for the syntactic class of a token.
type Kind uint8

// Kinds to compare tokens with. KindNone signals "no token here" and
// is what cursor queries return out of bounds; it never appears in a
// populated table.
const (
	KindNone Kind = iota
	Primitive
	Object
	Array
	String
)

// String generates a readable form of a kind meant for debuging.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case Primitive:
		return "primitive"
	case Object:
		return "object"
	case Array:
		return "array"
	case String:
		return "string"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Token describes one JSON construct recognized in the source text.
// Start and End delimit its content in bytes; for a String they
// exclude the surrounding quotes, for a container they span the
// braces/brackets. Size counts immediate children. Parent is the
// table index of the enclosing container, or -1 at the root.
type Token struct {
	Kind   Kind
	Start  int
	End    int
	Size   int
	Parent int
}

func (t *Token) fill(kind Kind, start, end int) {
	t.Kind = kind
	t.Start = start
	t.End = end
	t.Size = 0
}

// open reports whether t is a container whose closer has not been
// seen yet.
func (t *Token) open() bool {
	return t.Start != -1 && t.End == -1
}
