package flatjson

import (
	"sync"

	"github.com/panjf2000/ants/v2"
)

// Pool owns a fixed set of reusable parser handles and a worker pool
// to validate many documents concurrently. Each validation borrows
// one handle for a full Start/End episode, so the per-handle locking
// contract is never stretched across goroutines.
type Pool struct {
	parsers chan *Parser
	workers *ants.Pool
}

// NewPool creates a pool of size parser handles, each with ntokens
// token capacity, backed by as many workers.
func NewPool(size, ntokens int) (*Pool, error) {
	if size < 1 {
		size = 1
	}
	workers, err := ants.NewPool(size)
	if err != nil {
		return nil, err
	}
	p := &Pool{
		parsers: make(chan *Parser, size),
		workers: workers,
	}
	for i := 0; i < size; i++ {
		p.parsers <- NewParserSize(ntokens)
	}
	return p, nil
}

// Validate tokenizes data on a borrowed handle and returns the parse
// result. The token table is discarded.
func (p *Pool) Validate(data []byte) error {
	parser := <-p.parsers
	err := parser.Start(data)
	parser.End()
	p.parsers <- parser
	return err
}

// ValidateAll fans the inputs out over the worker pool and returns
// one parse result per input, index-aligned.
func (p *Pool) ValidateAll(inputs [][]byte) []error {
	results := make([]error, len(inputs))
	var wg sync.WaitGroup
	for i := range inputs {
		i := i
		wg.Add(1)
		if err := p.workers.Submit(func() {
			defer wg.Done()
			results[i] = p.Validate(inputs[i])
		}); err != nil {
			results[i] = err
			wg.Done()
		}
	}
	wg.Wait()
	return results
}

// Close releases the worker pool. The parser handles are garbage
// once the pool is dropped.
func (p *Pool) Close() {
	p.workers.Release()
}
