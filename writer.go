package flatjson

import "sync"

// Format selects the writer's output layout.
type Format uint8

const (
	Compact Format = iota
	Pretty
)

const indentUnit = "    "

// frame is one level of the writer's nesting stack: the container
// kind and how many elements were emitted at that level so far.
type frame struct {
	kind Kind
	n    int
}

// Writer builds JSON text incrementally into a fixed-capacity
// buffer. The call protocol is strict: Start first, End last, keyed
// Field* calls only while an object frame is on top and bare Elem*
// calls only while an array frame is. The first violation latches;
// every later call is a no-op reporting the same error until the
// next Start.
type Writer struct {
	mu      sync.Mutex
	buf     []byte
	scratch [32]byte
	stack   []frame
	sp      int
	err     error
	call    int
	errCall int
	pretty  bool
	prec    int
}

// NewWriter creates a writer with the default buffer capacity and
// stack depth.
func NewWriter() *Writer {
	return NewWriterSize(DefaultBufferCapacity, DefaultStackDepth)
}

// NewWriterSize creates a writer with an output buffer of bufcap
// bytes and room for depth nested containers including the root.
func NewWriterSize(bufcap, depth int) *Writer {
	if bufcap < 2 {
		bufcap = 2
	}
	if depth < 1 {
		depth = 1
	}
	return &Writer{
		buf:   make([]byte, 0, bufcap),
		stack: make([]frame, depth),
		prec:  6,
	}
}

// SetPrecision sets the number of fractional digits for float
// output, clamped to [0,9]. The default is 6.
func (w *Writer) SetPrecision(prec int) {
	if prec < 0 {
		prec = 0
	} else if prec > 9 {
		prec = 9
	}
	w.prec = prec
}

// Start begins an episode for a document whose root container is of
// the given kind (Object or Array) and emits its opening byte. The
// handle's lock is held until End.
func (w *Writer) Start(root Kind, format Format) error {
	w.mu.Lock()
	w.buf = w.buf[:0]
	w.sp = 0
	w.stack[0] = frame{kind: root}
	w.err = nil
	w.call = 1
	w.errCall = 0
	w.pretty = format == Pretty
	if root == Object {
		w.putByte('{')
	} else {
		w.putByte('[')
	}
	return w.err
}

// End verifies that every opened container was closed, emits the
// root's closing byte and releases the handle. It returns the
// latched error, if any.
func (w *Writer) End() error {
	if w.err == nil {
		if w.sp == 0 {
			if w.pretty {
				w.putByte('\n')
			}
			if w.stack[0].kind == Object {
				w.putByte('}')
			} else {
				w.putByte(']')
			}
		} else {
			w.fail(ErrNesting)
		}
	}
	err := w.err
	w.mu.Unlock()
	return err
}

// JSON returns the bytes written so far. After a clean End this is
// the complete document; after a latched error it is the well-formed
// prefix up to the failure and must not be treated as valid JSON.
func (w *Writer) JSON() []byte {
	return w.buf
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return len(w.buf)
}

// Err returns the latched error, or nil.
func (w *Writer) Err() error {
	return w.err
}

// ErrCall returns the 1-based number of the call on which the error
// latched, or 0 while the episode is clean.
func (w *Writer) ErrCall() int {
	return w.errCall
}

// Field appends a string value under key to the open object.
func (w *Writer) Field(key, value string) error {
	if !w.beginField(key) {
		return w.err
	}
	w.putQuoted(value)
	return w.err
}

// FieldInt appends an integer value under key to the open object.
func (w *Writer) FieldInt(key string, value int64) error {
	if !w.beginField(key) {
		return w.err
	}
	w.putBytes(appendDecimal(w.scratch[:0], value))
	return w.err
}

// FieldFloat appends a fixed-precision float value under key to the
// open object.
func (w *Writer) FieldFloat(key string, value float64) error {
	if !w.beginField(key) {
		return w.err
	}
	w.putBytes(appendFixed(w.scratch[:0], value, w.prec))
	return w.err
}

// FieldBool appends a boolean value under key to the open object.
func (w *Writer) FieldBool(key string, value bool) error {
	if !w.beginField(key) {
		return w.err
	}
	w.putLiteral(value)
	return w.err
}

// FieldNull appends a null value under key to the open object.
func (w *Writer) FieldNull(key string) error {
	if !w.beginField(key) {
		return w.err
	}
	w.putRaw("null")
	return w.err
}

// FieldRaw splices pre-rendered JSON text under key into the open
// object. The text is emitted unquoted and unescaped.
func (w *Writer) FieldRaw(key, raw string) error {
	if !w.beginField(key) {
		return w.err
	}
	w.putRaw(raw)
	return w.err
}

// FieldObject opens a nested object under key and pushes it onto the
// stack.
func (w *Writer) FieldObject(key string) error {
	if !w.beginField(key) {
		return w.err
	}
	w.putByte('{')
	w.push(Object)
	return w.err
}

// FieldArray opens a nested array under key and pushes it onto the
// stack.
func (w *Writer) FieldArray(key string) error {
	if !w.beginField(key) {
		return w.err
	}
	w.putByte('[')
	w.push(Array)
	return w.err
}

// Elem appends a string value to the open array.
func (w *Writer) Elem(value string) error {
	if !w.beginElem() {
		return w.err
	}
	w.putQuoted(value)
	return w.err
}

// ElemInt appends an integer value to the open array.
func (w *Writer) ElemInt(value int64) error {
	if !w.beginElem() {
		return w.err
	}
	w.putBytes(appendDecimal(w.scratch[:0], value))
	return w.err
}

// ElemFloat appends a fixed-precision float value to the open array.
func (w *Writer) ElemFloat(value float64) error {
	if !w.beginElem() {
		return w.err
	}
	w.putBytes(appendFixed(w.scratch[:0], value, w.prec))
	return w.err
}

// ElemBool appends a boolean value to the open array.
func (w *Writer) ElemBool(value bool) error {
	if !w.beginElem() {
		return w.err
	}
	w.putLiteral(value)
	return w.err
}

// ElemNull appends a null value to the open array.
func (w *Writer) ElemNull() error {
	if !w.beginElem() {
		return w.err
	}
	w.putRaw("null")
	return w.err
}

// ElemRaw splices pre-rendered JSON text into the open array.
func (w *Writer) ElemRaw(raw string) error {
	if !w.beginElem() {
		return w.err
	}
	w.putRaw(raw)
	return w.err
}

// ElemObject opens a nested object in the open array.
func (w *Writer) ElemObject() error {
	if !w.beginElem() {
		return w.err
	}
	w.putByte('{')
	w.push(Object)
	return w.err
}

// ElemArray opens a nested array in the open array.
func (w *Writer) ElemArray() error {
	if !w.beginElem() {
		return w.err
	}
	w.putByte('[')
	w.push(Array)
	return w.err
}

// CloseObject pops the top frame and emits the closer matching the
// popped kind. Like CloseArray it closes whatever is on top; the two
// are interchangeable.
func (w *Writer) CloseObject() error {
	return w.closeTop()
}

// CloseArray pops the top frame and emits the closer matching the
// popped kind.
func (w *Writer) CloseArray() error {
	return w.closeTop()
}

func (w *Writer) closeTop() error {
	if w.err != nil {
		return w.err
	}
	w.call++
	lastN := w.stack[w.sp].n
	kind := w.pop()
	if lastN > 0 {
		w.putIndent()
	}
	if kind == Object {
		w.putByte('}')
	} else {
		w.putByte(']')
	}
	return w.err
}

// beginField validates the object context and emits separator,
// indentation and the quoted key. It reports whether the value may
// follow. Nothing is written when the context is wrong, the buffer
// stays as it was before the call.
func (w *Writer) beginField(key string) bool {
	if w.err != nil {
		return false
	}
	w.call++
	f := &w.stack[w.sp]
	if f.kind != Object {
		w.fail(ErrNotObject)
		return false
	}
	if f.n > 0 {
		w.putByte(',')
	}
	f.n++
	w.putIndent()
	w.putQuoted(key)
	w.putByte(':')
	if w.pretty {
		w.putByte(' ')
	}
	return true
}

// beginElem is beginField's array counterpart.
func (w *Writer) beginElem() bool {
	if w.err != nil {
		return false
	}
	w.call++
	f := &w.stack[w.sp]
	if f.kind != Array {
		w.fail(ErrNotArray)
		return false
	}
	if f.n > 0 {
		w.putByte(',')
	}
	f.n++
	w.putIndent()
	return true
}

func (w *Writer) push(kind Kind) {
	if w.sp+1 >= len(w.stack) {
		w.fail(ErrStackFull)
		return
	}
	w.sp++
	w.stack[w.sp] = frame{kind: kind}
}

// pop returns the top frame's kind. Underflow latches ErrStackEmpty
// but still reports the root kind so the caller emits a matching
// byte, as the reference behavior does.
func (w *Writer) pop() Kind {
	kind := w.stack[w.sp].kind
	if w.sp == 0 {
		w.fail(ErrStackEmpty)
	} else {
		w.sp--
	}
	return kind
}

func (w *Writer) fail(err error) {
	if w.err == nil {
		w.err = err
		w.errCall = w.call
	}
}

// putByte appends one byte, discarding it and latching ErrBufferFull
// when the buffer's fixed capacity is reached.
func (w *Writer) putByte(c byte) {
	if len(w.buf) >= cap(w.buf) {
		w.fail(ErrBufferFull)
		return
	}
	w.buf = append(w.buf, c)
}

func (w *Writer) putRaw(s string) {
	for i := 0; i < len(s); i++ {
		w.putByte(s[i])
	}
}

func (w *Writer) putBytes(b []byte) {
	for _, c := range b {
		w.putByte(c)
	}
}

func (w *Writer) putLiteral(v bool) {
	if v {
		w.putRaw("true")
	} else {
		w.putRaw("false")
	}
}

const hexDigits = "0123456789abcdef"

// putQuoted emits s as a quoted JSON string, escaping quotes,
// backslashes and control bytes.
func (w *Writer) putQuoted(s string) {
	w.putByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '"', '\\':
			w.putByte('\\')
			w.putByte(c)
		case '\n':
			w.putRaw(`\n`)
		case '\r':
			w.putRaw(`\r`)
		case '\t':
			w.putRaw(`\t`)
		case '\b':
			w.putRaw(`\b`)
		case '\f':
			w.putRaw(`\f`)
		default:
			if c < 0x20 {
				w.putRaw(`\u00`)
				w.putByte(hexDigits[c>>4])
				w.putByte(hexDigits[c&0xf])
			} else {
				w.putByte(c)
			}
		}
	}
	w.putByte('"')
}

// putIndent emits the pretty-print line break and one indent unit
// per open nesting level. A no-op in compact mode.
func (w *Writer) putIndent() {
	if !w.pretty {
		return
	}
	w.putByte('\n')
	for i := 0; i <= w.sp; i++ {
		w.putRaw(indentUnit)
	}
}
