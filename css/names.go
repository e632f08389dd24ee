package css

import (
	"strings"

	"github.com/go-css/csslex/lexer"
)

// stName consumes an ident sequence (CSS Syntax 3 SS4.3.12): name code
// points accumulate into buf, a backslash hands off to stNameBackslash to
// resolve whether it starts a valid escape, and anything else ends the
// name.
func (t *Tokenizer) stName(cp rune) error {
	if cp != lexer.EOF && isNameContinue(cp) {
		t.buf = append(t.buf, cp)
		return nil
	}
	if cp == '\\' {
		t.state = stNameBackslash
		return nil
	}
	return t.finishName(cp)
}

// stNameBackslash resolves a backslash met mid-name. A valid escape
// decodes into buf and name consumption resumes; an invalid one (a
// backslash immediately followed by a literal newline) means the
// backslash was never part of this name at all. Rather than raise the
// invalid-escape error here, the name is finalized as of just before the
// backslash and the backslash plus the newline are handed back to stMain,
// where lookBackslashTopStep is the one place that reports it: otherwise
// the same backslash would be blamed for two parse errors.
func (t *Tokenizer) stNameBackslash(cp rune) error {
	if isEscapeValid(cp) {
		t.escReturn = stName
		return t.beginEscapeDecode(cp)
	}
	t.finalizeName(t.src.CurIndex() - 1)
	t.state = stMain
	return t.punt(1, cp, stMain)
}

// finishName finalizes a name ended by cp, which is not itself part of
// the name. An ident sequence spelling "url" immediately followed by '('
// redirects into the dedicated url()/Function disambiguation instead of
// emitting an Ident token.
func (t *Tokenizer) finishName(cp rune) error {
	if t.nameMode == nameIdent && cp == '(' {
		if strings.EqualFold(string(t.buf), "url") {
			t.state = stURLWSLead
			t.urlParenIdx = t.src.CurIndex()
			return nil
		}
		// Any other ident directly followed by '(' is a function token;
		// the '(' is consumed as part of it.
		start, strEnd := t.st.appendString(t.buf)
		t.emit(Function, t.src.CurIndex()+1, start, strEnd, t.bufHadEscape)
		t.state = stMain
		return nil
	}
	t.finalizeName(t.endIdx(cp))
	t.state = stMain
	return t.punt(0, cp, stMain)
}

// finalizeName appends the token its nameMode describes, ending at end.
func (t *Tokenizer) finalizeName(end int) {
	switch t.nameMode {
	case nameIdent:
		start, strEnd := t.st.appendString(t.buf)
		t.emit(Ident, end, start, strEnd, t.bufHadEscape)
	case nameAtKeyword:
		start, strEnd := t.st.appendString(t.buf)
		t.emit(AtKeyword, end, start, strEnd, t.bufHadEscape)
	case nameHash:
		start, strEnd := t.st.appendString(t.buf)
		idFlag := 0
		if t.hashIsID {
			idFlag = 1
		}
		t.emit(Hash, end, (start<<1)|idFlag, strEnd, t.bufHadEscape)
	case nameUnit:
		unitStart, unitEnd := t.st.appendString(t.buf)
		digits := t.src.Slice(t.numStart, t.numDigitsEnd)
		floatFlag := 0
		var valueIdx int
		if t.numIsFloat {
			floatFlag = 1
			valueIdx = t.st.appendFloat(parseDecimalFloat(digits))
		} else {
			valueIdx = t.st.appendInt(parseDecimalInt(digits))
		}
		t.st.appendRawInts(floatFlag, valueIdx)
		t.emit(Dimension, end, unitStart, unitEnd, t.bufHadEscape)
	}
}

// beginEscapeDecode consumes "an escaped code point" (CSS Syntax 3
// SS4.3.7) whose backslash has already been confirmed valid: cp is the
// code point right after the backslash. EOF is handled first and
// specially, since it is the one case "consume an escaped code point"
// itself treats as an error (a lone trailing backslash at end of input
// still decodes to U+FFFD, it just has nothing further to consume).
func (t *Tokenizer) beginEscapeDecode(cp rune) error {
	if cp == lexer.EOF {
		if err := t.fail(ErrInvalidEscape, "escape at end of input"); err != nil {
			return err
		}
		t.buf = append(t.buf, '�')
		t.bufHadEscape = true
		return t.punt(0, lexer.EOF, t.escReturn)
	}
	if isHexDigit(cp) {
		t.escDigits = hexVal(cp)
		t.escDigitCount = 1
		t.state = stEscapeHex
		return nil
	}
	t.buf = append(t.buf, cp)
	t.bufHadEscape = true
	t.state = t.escReturn
	return nil
}

// stEscapeHex accumulates up to 6 hex digits of a numeric escape, then
// consumes one trailing whitespace code point if present (CSS Syntax 3
// SS4.3.7's own terminator rule) before handing the decoded code point to
// whichever accumulation buf is running.
func (t *Tokenizer) stEscapeHex(cp rune) error {
	if cp != lexer.EOF && isHexDigit(cp) && t.escDigitCount < 6 {
		t.escDigits = t.escDigits<<4 | hexVal(cp)
		t.escDigitCount++
		return nil
	}
	t.buf = append(t.buf, decodeEscapedCodepoint(t.escDigits))
	t.bufHadEscape = true
	consumedWS := cp != lexer.EOF && isWhitespace(cp)
	t.state = t.escReturn
	if consumedWS {
		return nil
	}
	return t.punt(0, cp, t.escReturn)
}

// decodeEscapedCodepoint maps a numeric escape's accumulated value to its
// code point, substituting U+FFFD for zero, surrogates, and anything
// beyond the last valid code point (CSS Syntax 3 SS4.3.7).
func decodeEscapedCodepoint(v uint32) rune {
	if v == 0 || v > 0x10FFFF || (v >= 0xD800 && v <= 0xDFFF) {
		return '�'
	}
	return rune(v)
}
