package flatjson

import "github.com/pkg/errors"

// scanner holds the transient state of one parse run. The nesting
// context is a single superior index instead of a stack; closing a
// container recovers the hierarchy by walking parent links backward
// through the table.
type scanner struct {
	pos   int // offset in the JSON text
	next  int // next token slot to allocate
	super int // index of the innermost open container, -1 at root
}

// alloc takes the next unused slot of the table, or nil when the
// table is exhausted.
func (s *scanner) alloc(toks []Token) *Token {
	if s.next >= len(toks) {
		return nil
	}
	t := &toks[s.next]
	s.next++
	t.Start, t.End = -1, -1
	t.Size = 0
	t.Parent = -1
	return t
}

// scan runs the tokenizer over js and fills toks. It returns the
// number of tokens allocated. On failure the table's partial content
// is unusable.
func (s *scanner) scan(js []byte, toks []Token) (int, error) {
	for ; s.pos < len(js) && js[s.pos] != 0; s.pos++ {
		c := js[s.pos]
		switch c {
		case '{', '[':
			tok := s.alloc(toks)
			if tok == nil {
				return 0, errors.Wrapf(ErrNoMem, "offset %d", s.pos)
			}
			if s.super != -1 {
				toks[s.super].Size++
				tok.Parent = s.super
			}
			if c == '{' {
				tok.Kind = Object
			} else {
				tok.Kind = Array
			}
			tok.Start = s.pos
			s.super = s.next - 1
		case '}', ']':
			want := Array
			if c == '}' {
				want = Object
			}
			if s.next < 1 {
				return 0, errors.Wrapf(ErrInvalid, "offset %d", s.pos)
			}
			for i := s.next - 1; ; {
				tok := &toks[i]
				if tok.open() {
					if tok.Kind != want {
						return 0, errors.Wrapf(ErrInvalid, "offset %d", s.pos)
					}
					tok.End = s.pos + 1
					s.super = tok.Parent
					break
				}
				if tok.Parent == -1 {
					break
				}
				i = tok.Parent
			}
		case '"':
			if err := s.scanString(js, toks); err != nil {
				return 0, err
			}
			if s.super != -1 {
				toks[s.super].Size++
			}
		case '\t', '\r', '\n', ' ':
			// skip
		case ':':
			// the key just parsed becomes the context for its value
			s.super = s.next - 1
		case ',':
			// Recovery for a superior that is no container. Not
			// reachable from well-formed input; resume at the
			// nearest still-open container.
			if s.super != -1 && toks[s.super].Kind != Array &&
				toks[s.super].Kind != Object {
				s.super = toks[s.super].Parent
				for i := s.next - 1; i >= 0; i-- {
					if toks[i].Kind == Array || toks[i].Kind == Object {
						if toks[i].open() {
							s.super = i
							break
						}
					}
				}
			}
		case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9',
			't', 'f', 'n':
			// primitives must not stand where an object key belongs
			if s.super != -1 {
				sup := &toks[s.super]
				if sup.Kind == Object ||
					(sup.Kind == String && sup.Size != 0) {
					return 0, errors.Wrapf(ErrInvalid, "offset %d", s.pos)
				}
			}
			if err := s.scanPrimitive(js, toks); err != nil {
				return 0, err
			}
			if s.super != -1 {
				toks[s.super].Size++
			}
		default:
			return 0, errors.Wrapf(ErrInvalid, "offset %d", s.pos)
		}
	}

	for i := s.next - 1; i >= 0; i-- {
		if toks[i].open() {
			return 0, errors.Wrap(ErrPartial, "unclosed container")
		}
	}
	return s.next, nil
}

// scanString consumes one quoted string including its escapes. On
// failure the position is rewound to the opening quote.
func (s *scanner) scanString(js []byte, toks []Token) error {
	start := s.pos
	s.pos++
	for ; s.pos < len(js) && js[s.pos] != 0; s.pos++ {
		c := js[s.pos]
		if c == '"' {
			tok := s.alloc(toks)
			if tok == nil {
				s.pos = start
				return errors.Wrapf(ErrNoMem, "offset %d", start)
			}
			tok.fill(String, start+1, s.pos)
			tok.Parent = s.super
			return nil
		}
		if c == '\\' && s.pos+1 < len(js) {
			s.pos++
			switch js[s.pos] {
			case '"', '/', '\\', 'b', 'f', 'r', 'n', 't':
			case 'u':
				s.pos++
				for i := 0; i < 4 && s.pos < len(js) && js[s.pos] != 0; i++ {
					if !isHex(js[s.pos]) {
						off := s.pos
						s.pos = start
						return errors.Wrapf(ErrInvalid,
							"bad \\u escape at offset %d", off)
					}
					s.pos++
				}
				s.pos--
			default:
				off := s.pos
				s.pos = start
				return errors.Wrapf(ErrInvalid,
					"bad escape at offset %d", off)
			}
		}
	}
	s.pos = start
	return errors.Wrapf(ErrPartial, "unterminated string at offset %d", start)
}

// scanPrimitive consumes a number or a true/false/null literal up to
// the next structural or whitespace byte. Only character-class
// legality is checked, not numeric grammar.
func (s *scanner) scanPrimitive(js []byte, toks []Token) error {
	start := s.pos
loop:
	for ; s.pos < len(js) && js[s.pos] != 0; s.pos++ {
		switch js[s.pos] {
		case '\t', '\r', '\n', ' ', ',', ']', '}':
			break loop
		}
		if js[s.pos] < 32 || js[s.pos] >= 127 {
			off := s.pos
			s.pos = start
			return errors.Wrapf(ErrInvalid, "offset %d", off)
		}
	}
	tok := s.alloc(toks)
	if tok == nil {
		s.pos = start
		return errors.Wrapf(ErrNoMem, "offset %d", start)
	}
	tok.fill(Primitive, start, s.pos)
	tok.Parent = s.super
	s.pos--
	return nil
}

func isHex(b byte) bool {
	return (b >= '0' && b <= '9') ||
		(b >= 'A' && b <= 'F') ||
		(b >= 'a' && b <= 'f')
}
