package css

import "github.com/go-css/csslex/lexer"

// stString consumes a string token (CSS Syntax 3 SS4.3.5). An embedded
// raw newline or end-of-input without the closing quote is a parse
// error; per this package's Non-goals (no surfaced bad-string-token),
// both still close the string with whatever was accumulated rather than
// producing a distinct error token.
func (t *Tokenizer) stString(cp rune) error {
	switch {
	case cp == t.strDelim:
		t.finalizeString(t.src.CurIndex() + 1)
		t.state = stMain
		return nil
	case cp == lexer.EOF:
		if err := t.fail(ErrUnterminatedString, "unterminated string at end of input"); err != nil {
			return err
		}
		t.finalizeString(t.src.Len())
		t.state = stMain
		return nil
	case cp == '\n':
		if err := t.fail(ErrUnterminatedString, "unterminated string before line break"); err != nil {
			return err
		}
		t.finalizeString(t.src.CurIndex())
		t.state = stMain
		return t.punt(0, cp, stMain)
	case cp == '\\':
		t.state = stStringBackslash
		return nil
	default:
		t.buf = append(t.buf, cp)
		return nil
	}
}

// stStringBackslash resolves a backslash met inside a string. Unlike the
// ident/hash/at-keyword lookahead chains, a string's backslash handling
// never goes through the general valid-escape check: a backslash right
// before EOF contributes nothing (the following EOF is left for stString
// to report as unterminated), a backslash-newline is a line continuation
// that contributes nothing either, and anything else is decoded as an
// escaped code point regardless of what it is.
func (t *Tokenizer) stStringBackslash(cp rune) error {
	switch cp {
	case lexer.EOF:
		t.state = stString
		return t.punt(0, lexer.EOF, stString)
	case '\n':
		t.state = stString
		return nil
	default:
		t.escReturn = stString
		return t.beginEscapeDecode(cp)
	}
}

func (t *Tokenizer) finalizeString(end int) {
	start, strEnd := t.st.appendString(t.buf)
	t.emit(String, end, start, strEnd, t.bufHadEscape)
}
