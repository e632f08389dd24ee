package css

import (
	"strconv"

	"github.com/go-css/csslex/lexer"
)

// The states in this file only run when Options.Legacy is set. Current CSS
// Syntax 3 decomposes IncludeMatch/DashMatch/PrefixMatch/SuffixMatch/
// SubstringMatch/Column into plain Delim sequences and drops
// unicode-range entirely, reparsing "u+..." from IDENT/NUMBER/DELIM at a
// higher layer; Options.Legacy exists for consumers still built against
// the older grammar these kinds came from.

// stMatchEq resolves "$*^~" followed by a possible "=" into the matching
// attribute-selector-operator kind, or a plain delim.
func (t *Tokenizer) stMatchEq(cp rune) error {
	if cp == '=' {
		t.emit(t.matchKind, t.triggerIdx+2, 0, 0, false)
		t.state = stMain
		return nil
	}
	t.emitDelim(t.triggerCP)
	return t.punt(0, cp, stMain)
}

// stPipe1 resolves "|" followed by "=" (DashMatch) or another "|"
// (Column), or a plain delim.
func (t *Tokenizer) stPipe1(cp rune) error {
	switch cp {
	case '=':
		t.emit(DashMatch, t.triggerIdx+2, 0, 0, false)
		t.state = stMain
		return nil
	case '|':
		t.emit(Column, t.triggerIdx+2, 0, 0, false)
		t.state = stMain
		return nil
	default:
		t.emitDelim('|')
		return t.punt(0, cp, stMain)
	}
}

// stUSeen is entered after a 'u' or 'U' that might start a unicode-range
// ("u+22ff", "U+0025-00ff"). Anything but '+' means it was an ordinary
// ident after all.
func (t *Tokenizer) stUSeen(cp rune) error {
	if cp == '+' {
		t.state = stUPlusSeen
		return nil
	}
	t.beginName(nameIdent)
	return t.punt(1, cp, stName)
}

// stUPlusSeen is entered after "u+"; a hex digit or '?' wildcard confirms
// the range, anything else means "u+..." was the start of an ident "u" (or
// "U") followed by a fresh '+' after all (e.g. "u+foo", "u+ b"). '+' is
// never a name-continue code point, so it cannot simply be replayed
// through the ident-accumulation path the way stUSeen's single replayed
// character can: emit the one-character ident directly instead, then
// reconsume only the '+' and cp back into stMain fresh.
func (t *Tokenizer) stUPlusSeen(cp rune) error {
	if isHexDigit(cp) || cp == '?' {
		t.urDigitsStart = t.src.CurIndex()
		t.urDigits = 1
		t.urQ = cp == '?'
		t.state = stUnicodeRangeHex
		return nil
	}
	start, strEnd := t.st.appendString([]rune{t.urLetter})
	t.emit(Ident, t.triggerIdx+1, start, strEnd, false)
	t.state = stMain
	return t.punt(1, cp, stMain)
}

// stUnicodeRangeHex consumes up to 6 code points of a range's start: hex
// digits, optionally followed by '?' wildcards ("4??"). Once a '?' appears,
// no further hex digit is accepted.
func (t *Tokenizer) stUnicodeRangeHex(cp rune) error {
	if t.urDigits < 6 && cp != lexer.EOF && ((isHexDigit(cp) && !t.urQ) || cp == '?') {
		if cp == '?' {
			t.urQ = true
		}
		t.urDigits++
		return nil
	}
	t.urDigitsEnd = t.endIdx(cp)
	if !t.urQ && cp == '-' {
		t.state = stUnicodeRangeDashCheck
		return nil
	}
	t.finishUnicodeRangeSingle()
	t.state = stMain
	return t.punt(0, cp, stMain)
}

// stUnicodeRangeDashCheck is entered right after a '-' that might
// introduce the range's end hex value.
func (t *Tokenizer) stUnicodeRangeDashCheck(cp rune) error {
	if cp != lexer.EOF && isHexDigit(cp) {
		t.urEndStart = t.src.CurIndex()
		t.urEndDigits = 1
		t.state = stUnicodeRangeEndHex
		return nil
	}
	t.finishUnicodeRangeSingle()
	t.state = stMain
	return t.punt(1, cp, stMain)
}

// stUnicodeRangeEndHex consumes the range's end hex value, up to 6 digits.
func (t *Tokenizer) stUnicodeRangeEndHex(cp rune) error {
	if t.urEndDigits < 6 && cp != lexer.EOF && isHexDigit(cp) {
		t.urEndDigits++
		return nil
	}
	t.urEndDigitsEnd = t.endIdx(cp)
	t.finishUnicodeRangeEnd()
	t.state = stMain
	return t.punt(0, cp, stMain)
}

func (t *Tokenizer) finishUnicodeRangeSingle() {
	lo, hi := parseHexRange(t.src.Slice(t.urDigitsStart, t.urDigitsEnd))
	loIdx := t.st.appendInt(int64(lo))
	hiIdx := t.st.appendInt(int64(hi))
	t.emit(UnicodeRange, t.urDigitsEnd, loIdx, hiIdx, false)
}

func (t *Tokenizer) finishUnicodeRangeEnd() {
	lo, _ := parseHexRange(t.src.Slice(t.urDigitsStart, t.urDigitsEnd))
	_, hi := parseHexRange(t.src.Slice(t.urEndStart, t.urEndDigitsEnd))
	loIdx := t.st.appendInt(int64(lo))
	hiIdx := t.st.appendInt(int64(hi))
	t.emit(UnicodeRange, t.urEndDigitsEnd, loIdx, hiIdx, false)
}

// parseHexRange expands a hex digit run's '?' wildcards to their minimum
// (0) and maximum (F) fill, matching the informative expansion the old
// unicode-range grammar described.
func parseHexRange(digits []rune) (lo, hi rune) {
	loDigits := make([]rune, len(digits))
	hiDigits := make([]rune, len(digits))
	for i, d := range digits {
		if d == '?' {
			loDigits[i] = '0'
			hiDigits[i] = 'F'
		} else {
			loDigits[i] = d
			hiDigits[i] = d
		}
	}
	loV, _ := strconv.ParseInt(string(loDigits), 16, 32)
	hiV, _ := strconv.ParseInt(string(hiDigits), 16, 32)
	return rune(loV), rune(hiV)
}
