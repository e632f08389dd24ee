package css

import "github.com/go-css/csslex/lexer"

// Numeric tokens keep no accumulation buffer: t.numStart marks where the
// number began (its optional sign, if any) and t.numDigitsEnd marks where
// its digits (including any fraction and exponent) end; the value is
// parsed straight out of that slice of the source once the extent is
// known. A trailing '%' or unit is checked for separately once the
// digits end (CSS Syntax 3 SS4.3.13) and is not part of [numStart,
// numDigitsEnd).

// stNumberInt consumes the integer part of a number (SS4.3.12's repeat
// loop restricted to digits), watching for a fraction or exponent to
// follow.
func (t *Tokenizer) stNumberInt(cp rune) error {
	switch {
	case cp != lexer.EOF && isDigit(cp):
		return nil
	case cp == '.':
		t.state = stNumberDotCheck
		return nil
	case cp == 'e' || cp == 'E':
		t.state = stNumberExpCheck
		return nil
	default:
		t.numDigitsEnd = t.endIdx(cp)
		return t.finishDigits(cp)
	}
}

// stNumberDotCheck is entered right after a '.' that might start a
// fraction; it is only a fraction if at least one digit follows.
func (t *Tokenizer) stNumberDotCheck(cp rune) error {
	if cp != lexer.EOF && isDigit(cp) {
		t.numIsFloat = true
		t.state = stNumberFrac
		return nil
	}
	t.numDigitsEnd = t.backIdx(cp, 1)
	t.finalizeNumber()
	t.state = stMain
	return t.punt(1, cp, stMain)
}

// stNumberFrac consumes fraction digits.
func (t *Tokenizer) stNumberFrac(cp rune) error {
	switch {
	case cp != lexer.EOF && isDigit(cp):
		return nil
	case cp == 'e' || cp == 'E':
		t.state = stNumberExpCheck
		return nil
	default:
		t.numDigitsEnd = t.endIdx(cp)
		return t.finishDigits(cp)
	}
}

// stNumberExpCheck is entered right after an 'e'/'E' that might start an
// exponent: a bare digit confirms it, a sign needs one more code point to
// confirm, anything else means the 'e' was never part of the number and
// instead starts a dimension unit.
func (t *Tokenizer) stNumberExpCheck(cp rune) error {
	switch {
	case cp != lexer.EOF && isDigit(cp):
		t.numIsFloat = true
		t.state = stNumberExpDigit
		return nil
	case cp == '+' || cp == '-':
		t.state = stNumberExpSignCheck
		return nil
	default:
		t.numDigitsEnd = t.backIdx(cp, 1)
		t.beginName(nameUnit)
		return t.punt(1, cp, stName)
	}
}

// stNumberExpSignCheck is entered after an exponent marker and its sign;
// it only confirms the exponent once a digit actually follows. Otherwise
// the 'e' starts a dimension unit: "e-" continues as a name, while '+' is
// not a name code point and leaves the unit as the lone 'e'.
func (t *Tokenizer) stNumberExpSignCheck(cp rune) error {
	if cp != lexer.EOF && isDigit(cp) {
		t.numIsFloat = true
		t.state = stNumberExpDigit
		return nil
	}
	t.numDigitsEnd = t.backIdx(cp, 2)
	t.beginName(nameUnit)
	if t.src.At(t.numDigitsEnd+1) == '-' {
		return t.punt(2, cp, stName)
	}
	t.buf = append(t.buf, t.src.At(t.numDigitsEnd))
	t.finalizeName(t.numDigitsEnd + 1)
	t.state = stMain
	return t.punt(1, cp, stMain)
}

// stNumberExpDigit consumes exponent digits.
func (t *Tokenizer) stNumberExpDigit(cp rune) error {
	if cp != lexer.EOF && isDigit(cp) {
		return nil
	}
	t.numDigitsEnd = t.endIdx(cp)
	return t.finishDigits(cp)
}

// finishDigits is reached once a number's digits (integer, fraction, and
// exponent) are fully consumed, with cp the first code point after them.
// A '%' makes it a percentage outright; otherwise the dimension-unit
// lookahead decides between a dimension and a plain number.
func (t *Tokenizer) finishDigits(cp rune) error {
	if cp == '%' {
		t.finalizePercentage(t.src.CurIndex() + 1)
		t.state = stMain
		return nil
	}
	t.lookKind = lookNumUnit
	t.lookN = 0
	t.state = stLook
	return t.lookNumUnitStep(cp)
}

func (t *Tokenizer) finalizeNumber() {
	digits := t.src.Slice(t.numStart, t.numDigitsEnd)
	floatFlag := 0
	var idx int
	if t.numIsFloat {
		floatFlag = 1
		idx = t.st.appendFloat(parseDecimalFloat(digits))
	} else {
		idx = t.st.appendInt(parseDecimalInt(digits))
	}
	t.emit(Number, t.numDigitsEnd, floatFlag, idx, false)
}

func (t *Tokenizer) finalizePercentage(end int) {
	digits := t.src.Slice(t.numStart, t.numDigitsEnd)
	var v float64
	if t.numIsFloat {
		v = parseDecimalFloat(digits)
	} else {
		v = float64(parseDecimalInt(digits))
	}
	idx := t.st.appendFloat(v)
	t.emit(Percentage, end, idx, 0, false)
}
