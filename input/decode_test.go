package input

import (
	"strings"
	"testing"

	"github.com/go-css/csslex/css"
)

func tokenize(t *testing.T, ba *ByteAdapter) *css.Store {
	t.Helper()
	tok := css.NewTokenizer(css.Options{}, nil)
	if err := ba.Feed(tok); err != nil {
		t.Fatalf("Feed: %v", err)
	}
	return tok.Store()
}

func TestByteAdapterUTF8(t *testing.T) {
	ba, err := NewByteAdapter(strings.NewReader("a { color: red; }"), "")
	if err != nil {
		t.Fatal(err)
	}
	st := tokenize(t, ba)
	if st.Len() == 0 {
		t.Fatal("expected at least one token")
	}
	if st.Kind(0) != css.Ident || st.String(0) != "a" {
		t.Errorf("first token = %s %q, want ident \"a\"", st.Kind(0), st.String(0))
	}
}

func TestByteAdapterSkipsBOM(t *testing.T) {
	ba, err := NewByteAdapter(strings.NewReader("﻿a"), "")
	if err != nil {
		t.Fatal(err)
	}
	st := tokenize(t, ba)
	if st.Len() != 1 || st.Kind(0) != css.Ident || st.String(0) != "a" {
		t.Fatalf("got %v tokens, want a single ident \"a\"", st.Len())
	}
}

func TestByteAdapterUnknownCharset(t *testing.T) {
	if _, err := NewByteAdapter(strings.NewReader("a"), "not-a-real-charset"); err == nil {
		t.Fatal("expected an error for an unresolvable charset label")
	}
}

func TestByteAdapterCRLFNormalizedBeforeTokenizing(t *testing.T) {
	ba, err := NewByteAdapter(strings.NewReader("a\r\nb"), "")
	if err != nil {
		t.Fatal(err)
	}
	st := tokenize(t, ba)
	want := []css.Kind{css.Ident, css.Whitespace, css.Ident}
	if st.Len() != len(want) {
		t.Fatalf("got %d tokens, want %d", st.Len(), len(want))
	}
	for i, k := range want {
		if st.Kind(i) != k {
			t.Errorf("token %d = %s, want %s", i, st.Kind(i), k)
		}
	}
}
