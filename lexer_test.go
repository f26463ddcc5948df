package flatjson

import (
	"reflect"
	"testing"

	"github.com/pkg/errors"
)

func TestScan(t *testing.T) {
	tests := []struct {
		have string
		want []Token
	}{
		{`{"a":1,"b":[true,null]}`, []Token{
			{Kind: Object, Start: 0, End: 23, Size: 2, Parent: -1},
			{Kind: String, Start: 2, End: 3, Size: 1, Parent: 0},
			{Kind: Primitive, Start: 5, End: 6, Size: 0, Parent: 1},
			{Kind: String, Start: 8, End: 9, Size: 1, Parent: 0},
			{Kind: Array, Start: 11, End: 22, Size: 2, Parent: 3},
			{Kind: Primitive, Start: 12, End: 16, Size: 0, Parent: 4},
			{Kind: Primitive, Start: 17, End: 21, Size: 0, Parent: 4},
		}},
		{`[0]`, []Token{
			{Kind: Array, Start: 0, End: 3, Size: 1, Parent: -1},
			{Kind: Primitive, Start: 1, End: 2, Size: 0, Parent: 0},
		}},
		{`{}`, []Token{
			{Kind: Object, Start: 0, End: 2, Size: 0, Parent: -1},
		}},
		{` [ {"k" : "v"} , [] ] `, []Token{
			{Kind: Array, Start: 1, End: 21, Size: 2, Parent: -1},
			{Kind: Object, Start: 3, End: 14, Size: 1, Parent: 0},
			{Kind: String, Start: 5, End: 6, Size: 1, Parent: 1},
			{Kind: String, Start: 11, End: 12, Size: 0, Parent: 2},
			{Kind: Array, Start: 17, End: 19, Size: 0, Parent: 0},
		}},
		// numeric grammar is not validated, 1.2.3 is one primitive
		{`[1.2.3]`, []Token{
			{Kind: Array, Start: 0, End: 7, Size: 1, Parent: -1},
			{Kind: Primitive, Start: 1, End: 6, Size: 0, Parent: 0},
		}},
		{`"ab\"cd"`, []Token{
			{Kind: String, Start: 1, End: 7, Size: 0, Parent: -1},
		}},
		{`["\u00fc"]`, []Token{
			{Kind: Array, Start: 0, End: 10, Size: 1, Parent: -1},
			{Kind: String, Start: 2, End: 8, Size: 0, Parent: 0},
		}},
	}
	for _, test := range tests {
		p := NewParserSize(16)
		if err := p.Start([]byte(test.have)); err != nil {
			t.Errorf("%s: unexpected error %v", test.have, err)
			p.End()
			continue
		}
		got := p.toks[:p.n]
		if !reflect.DeepEqual(got, test.want) {
			t.Errorf("%s:\nwant %v,\ngot  %v", test.have, test.want, got)
		}
		p.End()
	}
}

func TestScanErrors(t *testing.T) {
	tests := []struct {
		have string
		want error
	}{
		{`{"a": "bc`, ErrPartial},
		{`"abc`, ErrPartial},
		{`{"a": 1`, ErrPartial},
		{`[[1,2]`, ErrPartial},
		{`[1}`, ErrInvalid},
		{`{"a": @}`, ErrInvalid},
		{`{1: 2}`, ErrInvalid},
		{`{"a":1, 2:3}`, ErrInvalid},
		{`["\x"]`, ErrInvalid},
		{`["\uZ000"]`, ErrInvalid},
		{`["\u00g0"]`, ErrInvalid},
		{"[tru\xc3\xa9]", ErrInvalid},
		{"[\x01]", ErrInvalid},
		{`}`, ErrInvalid},
	}
	for _, test := range tests {
		p := NewParserSize(16)
		err := p.Start([]byte(test.have))
		if errors.Cause(err) != test.want {
			t.Errorf("%q: want %v, got %v", test.have, test.want, err)
		}
		p.End()
	}
}

func TestScanNoMem(t *testing.T) {
	p := NewParserSize(2)
	err := p.Start([]byte(`[1,2,3]`))
	if errors.Cause(err) != ErrNoMem {
		t.Errorf("want ErrNoMem, got %v", err)
	}
	p.End()
}

func TestScanEmpty(t *testing.T) {
	p := NewParser()
	if err := p.Start(nil); err != nil {
		t.Errorf("empty input: %v", err)
	}
	if p.Len() != 0 {
		t.Errorf("want 0 tokens, got %d", p.Len())
	}
	p.End()
}

// the text ends at the first NUL byte, anything after is unseen
func TestScanStopsAtNul(t *testing.T) {
	p := NewParser()
	if err := p.Start([]byte("[1,2]\x00}}}")); err != nil {
		t.Errorf("unexpected error %v", err)
	}
	if p.Len() != 3 {
		t.Errorf("want 3 tokens, got %d", p.Len())
	}
	p.End()
}

func TestScanReuse(t *testing.T) {
	p := NewParserSize(8)
	if err := p.Start([]byte(`[1,2,3]`)); err != nil {
		t.Fatal(err)
	}
	p.End()
	if err := p.Start([]byte(`{}`)); err != nil {
		t.Fatal(err)
	}
	if p.Len() != 1 {
		t.Errorf("want 1 token after reuse, got %d", p.Len())
	}
	p.End()
}

func TestParentChains(t *testing.T) {
	p := NewParser()
	if err := p.Start([]byte(`{"a":{"b":{"c":[[null]]}}}`)); err != nil {
		t.Fatal(err)
	}
	defer p.End()
	for i := 0; i < p.n; i++ {
		steps := 0
		for j := i; p.toks[j].Parent != -1; j = p.toks[j].Parent {
			if p.toks[j].Parent >= j {
				t.Fatalf("token %d: parent %d not earlier", j, p.toks[j].Parent)
			}
			if steps++; steps > p.n {
				t.Fatalf("token %d: parent chain does not terminate", i)
			}
		}
	}
}
