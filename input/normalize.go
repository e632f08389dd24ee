// Package input ships the thin, unoptimized adapters SPEC_FULL.md SS2 asks
// for: turning bytes (from a reader, a file, or an already-decoded charset)
// into the code points lexer.Source and css.Tokenizer consume. None of
// their design choices are allowed to leak back into the tokenizer core;
// see DESIGN.md for the per-adapter grounding.
package input

import "golang.org/x/text/transform"

// crlfNormalizer is a transform.Transformer doing CSS Syntax 3 SS4.1's
// byte-level half of stream preprocessing (CRLF/CR/FF folding to LF, NUL to
// the UTF-8 encoding of U+FFFD) ahead of UTF-8 decoding, grounded on
// gorilla-css/tokenizer's crlf.go. lexer.Source repeats the same
// normalization at the code-point level regardless of which adapter feeds
// it, so running this transform first is optional: it exists for callers
// that want to hand an io.Reader through golang.org/x/text/transform's
// chaining (e.g. composed with a charset decoder in NewByteAdapter) rather
// than decode-then-normalize in two separate passes.
type crlfNormalizer struct {
	prevCR bool
}

// NewCRLFNormalizer returns a transform.Transformer suitable for
// transform.NewReader, folding CR/CRLF/FF to LF and NUL to U+FFFD at the
// byte level. All of the code points it rewrites are single-byte in UTF-8,
// so it is safe to run ahead of UTF-8 decoding.
func NewCRLFNormalizer() transform.Transformer {
	return &crlfNormalizer{}
}

const replacementUTF8 = "�"

func (n *crlfNormalizer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		c := src[nSrc]
		switch c {
		case '\r':
			if nDst >= len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = '\n'
			nDst++
		case '\n':
			if n.prevCR {
				n.prevCR = false
				nSrc++
				continue
			}
			if nDst >= len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = '\n'
			nDst++
		case '\f':
			if nDst >= len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = '\n'
			nDst++
		case 0:
			if nDst+len(replacementUTF8) > len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			nDst += copy(dst[nDst:], replacementUTF8)
		default:
			if nDst >= len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = c
			nDst++
		}
		n.prevCR = c == '\r'
		nSrc++
	}
	return nDst, nSrc, nil
}

func (n *crlfNormalizer) Reset() {
	n.prevCR = false
}
