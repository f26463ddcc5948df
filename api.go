package flatjson

// Valid reports whether data is a valid JSON encoding within the
// default token capacity.
func Valid(data []byte) bool {
	p := NewParser()
	err := p.Start(data)
	p.End()
	return err == nil
}
