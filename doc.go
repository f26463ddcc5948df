/*
Package flatjson encodes and decodes JSON on fixed-size storage.
In contrast to encoding/json flatjson builds no tree: the parser maps
a JSON text onto a flat table of token descriptors linked by parent
indices, and the writer emits text directly into a bounded buffer
guarded by an explicit nesting stack. After a handle is constructed
no further allocation takes place, which makes the package usable
where a heap-based representation is too expensive.

A Parser and a Writer are independent handles. Each episode is
bracketed by Start and End; the handle's lock is held for the whole
episode and all calls in between must stay on one goroutine.
*/
package flatjson // import "github.com/embcodec/flatjson"
