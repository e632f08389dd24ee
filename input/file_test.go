package input

import (
	"context"
	"strings"
	"testing"

	"crawshaw.io/iox"

	"github.com/go-css/csslex/css"
)

func TestFileAdapter(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	filer := iox.NewFiler(0)
	defer filer.Shutdown(ctx)

	fa, err := NewFileAdapter(filer, strings.NewReader(`@media (min-width: 1px) { a { color: red } }`), "")
	if err != nil {
		t.Fatal(err)
	}
	defer fa.Close()

	tok := css.NewTokenizer(css.Options{}, nil)
	if err := fa.Feed(tok); err != nil {
		t.Fatalf("Feed: %v", err)
	}
	st := tok.Store()
	if st.Len() == 0 {
		t.Fatal("expected at least one token")
	}
	if st.Kind(0) != css.AtKeyword || st.String(0) != "media" {
		t.Errorf("first token = %s %q, want at-keyword \"media\"", st.Kind(0), st.String(0))
	}
}

func TestFileAdapterLargeInput(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	filer := iox.NewFiler(0)
	defer filer.Shutdown(ctx)

	var b strings.Builder
	for i := 0; i < 10000; i++ {
		b.WriteString(".rule { margin: 1px; } ")
	}

	fa, err := NewFileAdapter(filer, strings.NewReader(b.String()), "")
	if err != nil {
		t.Fatal(err)
	}
	defer fa.Close()

	tok := css.NewTokenizer(css.Options{}, nil)
	if err := fa.Feed(tok); err != nil {
		t.Fatalf("Feed: %v", err)
	}
	if tok.Store().Len() == 0 {
		t.Fatal("expected tokens from a large spooled input")
	}
}
