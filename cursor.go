package flatjson

import "bytes"

// Cursor reads sequentially over a parser's completed token table.
// Movement is unchecked: guard Prev/Next with the Has* queries.
// Nothing signals a failure here, out of bounds kind queries return
// KindNone and Text returns nil.
type Cursor struct {
	p   *Parser
	pos int
}

// HasPrev reports whether a token precedes the current position.
func (c *Cursor) HasPrev() bool {
	return c.pos > 0 && c.pos <= c.p.n
}

// HasCurrent reports whether the current position holds a token.
func (c *Cursor) HasCurrent() bool {
	return c.pos >= 0 && c.pos < c.p.n
}

// HasNext reports whether a token follows the current position.
func (c *Cursor) HasNext() bool {
	return c.pos+1 >= 0 && c.pos+1 < c.p.n
}

// Prev moves the cursor one token back.
func (c *Cursor) Prev() { c.pos-- }

// Next moves the cursor one token forward.
func (c *Cursor) Next() { c.pos++ }

// Kind returns the current token's kind.
func (c *Cursor) Kind() Kind {
	return c.kindAt(c.pos)
}

// PrevKind returns the kind of the token before the cursor.
func (c *Cursor) PrevKind() Kind {
	return c.kindAt(c.pos - 1)
}

// NextKind returns the kind of the token after the cursor.
func (c *Cursor) NextKind() Kind {
	return c.kindAt(c.pos + 1)
}

func (c *Cursor) kindAt(i int) Kind {
	if i < 0 || i >= c.p.n {
		return KindNone
	}
	return c.p.toks[i].Kind
}

// Token returns a copy of the current token descriptor.
func (c *Cursor) Token() Token {
	if !c.HasCurrent() {
		return Token{Parent: -1}
	}
	return c.p.toks[c.pos]
}

// Equal compares the current token's bytes against s, requiring an
// exact length and content match.
func (c *Cursor) Equal(s string) bool {
	if !c.HasCurrent() {
		return false
	}
	t := &c.p.toks[c.pos]
	return bytes.Equal(c.p.src[t.Start:t.End], []byte(s))
}

// Text returns the current token's bytes as a subslice borrowed from
// the source buffer. The source is not modified; the slice stays
// valid as long as the caller's buffer does.
func (c *Cursor) Text() []byte {
	if !c.HasCurrent() {
		return nil
	}
	t := &c.p.toks[c.pos]
	return c.p.src[t.Start:t.End]
}
