package css

import (
	"reflect"
	"testing"
)

// summary is a comparable, kind-specific projection of a token used by
// the table-driven tests below, mirroring html/css/scanner_test.go's
// {tok, lit} pairs but carrying the extra fields this tokenizer's richer
// token kinds need to assert on.
type summary struct {
	kind Kind
	text string // kind name
	str  string // decoded string value, when the kind carries one
	num  float64
	flt  bool
	esc  bool
}

func run(t *testing.T, opts Options, input string) (*Store, *Tokenizer) {
	t.Helper()
	tok := NewTokenizer(opts, nil)
	if err := tok.PushChunk([]rune(input)); err != nil {
		t.Fatalf("PushChunk: %v", err)
	}
	if err := tok.End(); err != nil {
		t.Fatalf("End: %v", err)
	}
	return tok.Store(), tok
}

func summarize(st *Store) []summary {
	out := make([]summary, 0, st.Len())
	for i := 0; i < st.Len(); i++ {
		start, end := st.Range(i)
		k := st.Kind(i)
		s := summary{kind: k, text: string(k.String())}
		_ = start
		_ = end
		if k.HasStringValue() {
			s.str = st.String(i)
			s.esc = st.HadEscape(i)
		}
		if k.IsNumeric() {
			s.num, s.flt = st.Number(i)
		}
		out = append(out, s)
	}
	return out
}

func kinds(st *Store) []Kind {
	out := make([]Kind, st.Len())
	for i := range out {
		out[i] = st.Kind(i)
	}
	return out
}

func TestBasicRule(t *testing.T) {
	st, _ := run(t, Options{}, `a { color: #FF0099; }`)
	want := []Kind{
		Ident, Whitespace, LeftBrace, Whitespace, Ident, Colon, Whitespace, Hash,
		Semicolon, Whitespace, RightBrace,
	}
	if got := kinds(st); !reflect.DeepEqual(got, want) {
		t.Fatalf("got kinds %v, want %v", got, want)
	}
	// The hash is id-shaped: its first code point, 'F', is a name-start
	// code point.
	hashIdx := 7
	if st.Kind(hashIdx) != Hash {
		t.Fatalf("expected Hash at index %d, got %s", hashIdx, st.Kind(hashIdx))
	}
	if !st.HashIsID(hashIdx) {
		t.Errorf("FF0099 should be an id-shaped hash")
	}
	if got := st.String(hashIdx); got != "FF0099" {
		t.Errorf("hash value = %q, want FF0099", got)
	}
}

func TestURLDisambiguation(t *testing.T) {
	st, _ := run(t, Options{}, `url( foo )`)
	if st.Len() != 1 || st.Kind(0) != URL {
		t.Fatalf("got %v, want a single URL token", kinds(st))
	}
	if got := st.String(0); got != "foo" {
		t.Errorf("url value = %q, want foo", got)
	}

	st, _ = run(t, Options{}, `url("foo")`)
	want := []Kind{Function, String, RightParen}
	if got := kinds(st); !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	if got := st.String(0); got != "url" {
		t.Errorf("function value = %q, want url", got)
	}
	if got := st.String(1); got != "foo" {
		t.Errorf("string value = %q, want foo", got)
	}
}

func TestBadURLRecover(t *testing.T) {
	st, tok := run(t, Options{}, `url(fo"o)`)
	if st.Len() != 1 || st.Kind(0) != BadURL {
		t.Fatalf("got %v, want a single BadURL token", kinds(st))
	}
	if len(tok.Errors()) != 1 {
		t.Fatalf("got %d errors, want 1", len(tok.Errors()))
	}
	if tok.Errors()[0].Kind != ErrBadURL {
		t.Errorf("error kind = %v, want ErrBadURL", tok.Errors()[0].Kind)
	}
}

func TestBadURLStrictFails(t *testing.T) {
	tok := NewTokenizer(Options{Strict: true}, nil)
	err := tok.PushChunk([]rune(`url(fo"o)`))
	if err == nil {
		err = tok.End()
	}
	if err == nil {
		t.Fatal("expected a fatal error in strict mode")
	}
	pe, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("error is %T, want *ParseError", err)
	}
	if pe.Kind != ErrBadURL {
		t.Errorf("error kind = %v, want ErrBadURL", pe.Kind)
	}
}

func TestNumbersAndDimensions(t *testing.T) {
	st, _ := run(t, Options{}, `10px -3.5e+2 .5% \41 BC`)
	want := []Kind{
		Dimension, Whitespace, Number, Whitespace, Percentage, Whitespace, Ident,
	}
	if got := kinds(st); !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	v, flt := st.Number(0)
	if flt || v != 10 {
		t.Errorf("dimension value = (%v,%v), want (10,false)", v, flt)
	}
	if unit := st.Unit(0); unit != "px" {
		t.Errorf("unit = %q, want px", unit)
	}

	v, flt = st.Number(2)
	if !flt || v != -350.0 {
		t.Errorf("number value = (%v,%v), want (-350,true)", v, flt)
	}

	v, flt = st.Number(4)
	if !flt || v != 0.5 {
		t.Errorf("percentage value = (%v,%v), want (0.5,true)", v, flt)
	}

	if got := st.String(6); got != "ABC" {
		t.Errorf("ident value = %q, want ABC", got)
	}
	if !st.HadEscape(6) {
		t.Error("expected the escape flag to be set")
	}
}

func TestCDOCDCAndComments(t *testing.T) {
	st, _ := run(t, Options{}, `<!-- x --> /* c */ y`)
	want := []Kind{
		CDO, Whitespace, Ident, Whitespace, CDC, Whitespace, Whitespace, Ident,
	}
	if got := kinds(st); !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestStringEscapeAndUnterminated(t *testing.T) {
	st, _ := run(t, Options{}, `"line\A break"`)
	if st.Len() != 1 || st.Kind(0) != String {
		t.Fatalf("got %v, want a single String token", kinds(st))
	}
	if got := st.String(0); got != "line\nbreak" {
		t.Errorf("string value = %q, want %q", got, "line\nbreak")
	}

	st, tok := run(t, Options{}, "\"line\n")
	if st.Len() != 2 || st.Kind(0) != String || st.Kind(1) != Whitespace {
		t.Fatalf("got %v, want [String Whitespace]", kinds(st))
	}
	if got := st.String(0); got != "line" {
		t.Errorf("string value = %q, want line", got)
	}
	if len(tok.Errors()) != 1 || tok.Errors()[0].Kind != ErrUnterminatedString {
		t.Fatalf("errors = %v, want a single ErrUnterminatedString", tok.Errors())
	}
}

func TestAtKeywordWithHyphens(t *testing.T) {
	st, _ := run(t, Options{}, `@-webkit-keyframes`)
	if st.Len() != 1 || st.Kind(0) != AtKeyword {
		t.Fatalf("got %v, want a single AtKeyword token", kinds(st))
	}
	if got := st.String(0); got != "-webkit-keyframes" {
		t.Errorf("at-keyword value = %q, want -webkit-keyframes", got)
	}
}

func TestCustomPropertyIdent(t *testing.T) {
	st, _ := run(t, Options{}, `--foo: --;`)
	want := []Kind{Ident, Colon, Whitespace, Ident, Semicolon}
	if got := kinds(st); !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	if got := st.String(0); got != "--foo" {
		t.Errorf("ident value = %q, want --foo", got)
	}
	if got := st.String(3); got != "--" {
		t.Errorf("ident value = %q, want --", got)
	}
}

func TestHashIDFlag(t *testing.T) {
	tests := []struct {
		input string
		isID  bool
	}{
		{"#foo", true},
		{"#123", false},
		{"#-foo", true},
		{"#--foo", true},
		{"#-1", false},
		{`#\41`, true},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			st, _ := run(t, Options{}, test.input)
			if st.Len() == 0 || st.Kind(0) != Hash {
				t.Fatalf("got %v, want a single Hash token", kinds(st))
			}
			if got := st.HashIsID(0); got != test.isID {
				t.Errorf("HashIsID = %v, want %v", got, test.isID)
			}
		})
	}
}

func TestPlainDelims(t *testing.T) {
	st, _ := run(t, Options{}, `~ ^ $ * | > =`)
	for i := 0; i < st.Len(); i++ {
		if st.Kind(i) != Delim && st.Kind(i) != Whitespace {
			t.Fatalf("token %d: got %s, want Delim or Whitespace", i, st.Kind(i))
		}
	}
}

func TestLegacyMatchOperatorsAndUnicodeRange(t *testing.T) {
	st, _ := run(t, Options{Legacy: true}, `[foo~=bar] [baz|=qux] col||umn u+22-2f U+4??`)
	var got []Kind
	for i := 0; i < st.Len(); i++ {
		got = append(got, st.Kind(i))
	}
	mustContain := []Kind{IncludeMatch, DashMatch, Column, UnicodeRange, UnicodeRange}
	for _, want := range mustContain {
		found := false
		for _, k := range got {
			if k == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("expected a %s token among %v", want, got)
		}
	}
}

func TestLegacyUIdentsDoNotRecurse(t *testing.T) {
	// Regression: "u"/"U" not shaped like "u+<hex>" must tokenize as an
	// ordinary ident rather than looping back through stUSeen forever.
	tests := []struct {
		input string
		want  []Kind
	}{
		{`url( foo )`, []Kind{URL}},
		{`unset`, []Kind{Ident}},
		{`U`, []Kind{Ident}},
		{`u b`, []Kind{Ident, Whitespace, Ident}},
		{`u+ b`, []Kind{Ident, Delim, Whitespace, Ident}},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			st, _ := run(t, Options{Legacy: true}, test.input)
			if got := kinds(st); !reflect.DeepEqual(got, test.want) {
				t.Fatalf("got %v, want %v", got, test.want)
			}
		})
	}
}

func TestHashAtEndOfInput(t *testing.T) {
	tests := []struct {
		input string
		isID  bool
		value string
	}{
		{"#a", true, "a"},
		{"#1", false, "1"},
		{"#_", true, "_"},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			st, _ := run(t, Options{}, test.input)
			if st.Len() != 1 || st.Kind(0) != Hash {
				t.Fatalf("got %v, want a single Hash token", kinds(st))
			}
			if got := st.HashIsID(0); got != test.isID {
				t.Errorf("HashIsID = %v, want %v", got, test.isID)
			}
			if got := st.String(0); got != test.value {
				t.Errorf("hash value = %q, want %q", got, test.value)
			}
		})
	}
}

func TestDefaultOptionsRecoverPastErrors(t *testing.T) {
	// Options{} must be recover mode: a lexical error accretes into
	// Errors rather than aborting PushChunk/End.
	tok := NewTokenizer(Options{}, nil)
	if err := tok.PushChunk([]rune(`url(fo"o)`)); err != nil {
		t.Fatalf("PushChunk returned an error under the default options: %v", err)
	}
	if err := tok.End(); err != nil {
		t.Fatalf("End returned an error under the default options: %v", err)
	}
	if len(tok.Errors()) != 1 || tok.Errors()[0].Kind != ErrBadURL {
		t.Fatalf("errors = %v, want a single ErrBadURL", tok.Errors())
	}
}

func TestLegacyOffDecomposesToDelims(t *testing.T) {
	st, _ := run(t, Options{}, `[foo~=bar]`)
	want := []Kind{
		LeftBracket, Ident, Delim, Delim, Ident, RightBracket,
	}
	if got := kinds(st); !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestChunkIndependence(t *testing.T) {
	input := `a { color: #FF0099; } url( foo ) 10px -3.5e+2 .5% \41 BC`
	whole, _ := run(t, Options{}, input)

	tok := NewTokenizer(Options{}, nil)
	rs := []rune(input)
	for i, r := range rs {
		if i%3 == 0 && i > 0 {
			// no-op boundary marker; PushRune already feeds one at a time
		}
		if err := tok.PushRune(r); err != nil {
			t.Fatalf("PushRune: %v", err)
		}
	}
	if err := tok.End(); err != nil {
		t.Fatalf("End: %v", err)
	}
	chunked := tok.Store()

	if whole.Len() != chunked.Len() {
		t.Fatalf("token count differs: %d vs %d", whole.Len(), chunked.Len())
	}
	for i := 0; i < whole.Len(); i++ {
		if whole.Kind(i) != chunked.Kind(i) {
			t.Fatalf("token %d kind differs: %s vs %s", i, whole.Kind(i), chunked.Kind(i))
		}
		ws, we := whole.Range(i)
		cs, ce := chunked.Range(i)
		if ws != cs || we != ce {
			t.Fatalf("token %d range differs: [%d,%d) vs [%d,%d)", i, ws, we, cs, ce)
		}
	}
}

func TestMonotonicity(t *testing.T) {
	st, _ := run(t, Options{}, `a b c { d: 1px 2% "x" }`)
	prevEnd := 0
	for i := 0; i < st.Len(); i++ {
		start, end := st.Range(i)
		if start != prevEnd {
			t.Fatalf("token %d starts at %d, want %d", i, start, prevEnd)
		}
		if end < start {
			t.Fatalf("token %d has end %d < start %d", i, end, start)
		}
		if end == start && st.Kind(i) == Whitespace {
			t.Fatalf("token %d is a zero-width Whitespace", i)
		}
		prevEnd = end
	}
}

func TestDeterminism(t *testing.T) {
	input := `@-webkit-keyframes spin { from { transform: rotate(0deg); } }`
	a, _ := run(t, Options{}, input)
	b, _ := run(t, Options{}, input)
	if !reflect.DeepEqual(summarize(a), summarize(b)) {
		t.Fatal("tokenizing the same input twice produced different results")
	}
}
