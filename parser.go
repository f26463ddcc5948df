package flatjson

import "sync"

// Capacities used by the plain constructors; they mirror the fixed
// sizes of classic embedded JSON codecs. All storage is allocated
// once at handle construction.
const (
	DefaultTokenCapacity  = 4096
	DefaultBufferCapacity = 64 << 10
	DefaultStackDepth     = 32
)

// Parser owns a fixed-capacity token table and tokenizes one JSON
// text per episode. The source buffer is borrowed, never copied, and
// must outlive every cursor that reads from the table.
type Parser struct {
	mu   sync.Mutex
	src  []byte
	toks []Token
	n    int
}

// NewParser creates a parser with the default token capacity.
func NewParser() *Parser {
	return NewParserSize(DefaultTokenCapacity)
}

// NewParserSize creates a parser whose table holds up to ntokens
// tokens.
func NewParserSize(ntokens int) *Parser {
	if ntokens < 1 {
		ntokens = 1
	}
	return &Parser{toks: make([]Token, ntokens)}
}

// Start begins an episode: it locks the handle, clears the previous
// table content and tokenizes data. The lock stays held until End,
// also when Start fails; End must always be called.
func (p *Parser) Start(data []byte) error {
	p.mu.Lock()
	p.src = data
	p.n = 0
	s := scanner{super: -1}
	n, err := s.scan(data, p.toks)
	if err != nil {
		return err
	}
	p.n = n
	return nil
}

// End releases the handle. Tokens remain readable through cursors
// created before the next Start.
func (p *Parser) End() error {
	p.mu.Unlock()
	return nil
}

// Len returns the number of tokens of the last successful parse.
func (p *Parser) Len() int {
	return p.n
}

// Cursor returns a fresh reader positioned on the first token.
// Several cursors over one completed table are independent.
func (p *Parser) Cursor() *Cursor {
	return &Cursor{p: p}
}
