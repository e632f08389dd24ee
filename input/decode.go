package input

import (
	"bufio"
	"io"
	"unicode/utf8"

	"golang.org/x/text/transform"

	"github.com/go-css/csslex/css"
)

// ByteAdapter decodes a byte stream to code points and feeds them into a
// css.Tokenizer, per SPEC_FULL.md SS2's "input adapter" component. It is
// deliberately a thin wrapper around bufio.Reader.ReadRune rather than a
// hand-rolled UTF-8 state machine: SPEC_FULL.md SS1 explicitly scopes the
// decoder as "thin, complete" rather than hard engineering.
type ByteAdapter struct {
	r *bufio.Reader
}

// NewByteAdapter wraps r, optionally decoding it from charsetLabel (an IANA
// charset name, e.g. from an `@charset` rule or a Content-Type header) to
// UTF-8 first. An empty label, or "utf-8", is passed through unchanged. Any
// leading UTF-8 byte-order mark is skipped.
func NewByteAdapter(r io.Reader, charsetLabel string) (*ByteAdapter, error) {
	dec, err := decoderForLabel(charsetLabel)
	if err != nil {
		return nil, err
	}
	if dec != nil {
		r = transform.NewReader(r, dec)
	}
	br := bufio.NewReader(r)
	if err := skipBOM(br); err != nil {
		return nil, err
	}
	return &ByteAdapter{r: br}, nil
}

func skipBOM(br *bufio.Reader) error {
	rn, _, err := br.ReadRune()
	if err == io.EOF {
		return nil
	}
	if err != nil {
		return err
	}
	if rn != '﻿' {
		return br.UnreadRune()
	}
	return nil
}

// Feed decodes the remainder of the byte stream and pushes every code point
// into tok, then signals end of input. It stops at the first error from
// either decoding or the tokenizer itself.
func (a *ByteAdapter) Feed(tok *css.Tokenizer) error {
	for {
		r, size, err := a.r.ReadRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		if r == utf8.RuneError && size == 1 {
			r = '�'
		}
		if err := tok.PushRune(r); err != nil {
			return err
		}
	}
	return tok.End()
}
