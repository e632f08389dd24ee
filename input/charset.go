package input

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

// decoderForLabel resolves a charset label -- from an `@charset` rule or a
// protocol-declared Content-Type parameter, per CSS Syntax 3 SS3.2 -- to a
// byte-to-UTF-8 transformer. A UTF-8 (or empty) label needs no transform,
// grounded on benbjohnson-css/scanner.go's unresolved "determine fallback
// encoding (SS3.2)" TODO: this repository resolves it by actually doing the
// lookup golang.org/x/text/encoding/ianaindex exists for, rather than
// leaving it a TODO.
func decoderForLabel(label string) (transform.Transformer, error) {
	label = strings.TrimSpace(label)
	if label == "" || strings.EqualFold(label, "utf-8") || strings.EqualFold(label, "utf8") {
		return nil, nil
	}
	enc, err := ianaindex.IANA.Encoding(label)
	if err != nil {
		return nil, fmt.Errorf("input: unknown charset %q: %w", label, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("input: unsupported charset %q", label)
	}
	return normalizingDecoder(enc), nil
}

// normalizingDecoder chains a charset's byte decoder with the CRLF/NUL
// stream-preprocessing transform, so a single transform.Reader does both
// steps for a non-UTF-8 source.
func normalizingDecoder(enc encoding.Encoding) transform.Transformer {
	return transform.Chain(enc.NewDecoder(), NewCRLFNormalizer())
}
