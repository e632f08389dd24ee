package css

import "github.com/go-css/csslex/lexer"

// stepLookahead dispatches a code point arriving while the tokenizer is
// resolving one of the short lookahead chains CSS Syntax 3 SS4.3.1 uses to
// disambiguate '-', '+', '.', '@', '#', and a top-level '\' from a plain
// delim, plus the dimension-unit check SS4.3.13 runs after a number's
// digits. Every branch either resolves (and puts the tokenizer back into a
// state that has never seen the gathered lookahead code points, via punt)
// or gathers one more code point and waits.
func (t *Tokenizer) stepLookahead(cp rune) error {
	switch t.lookKind {
	case lookDash:
		return t.lookDashStep(cp)
	case lookPlus:
		return t.lookPlusStep(cp)
	case lookDot:
		return t.lookDotStep(cp)
	case lookAt:
		return t.lookAtStep(cp)
	case lookHash:
		return t.lookHashStep(cp)
	case lookBackslashTop:
		return t.lookBackslashTopStep(cp)
	case lookNumUnit:
		return t.lookNumUnitStep(cp)
	}
	panic("css: unreachable lookKind")
}

// beginName enters stName to accumulate an ident/at-keyword/hash/unit
// value, resetting the accumulation buffer.
func (t *Tokenizer) beginName(mode nameMode) {
	t.nameMode = mode
	t.buf = t.buf[:0]
	t.bufHadEscape = false
	t.state = stName
}

// lookDashStep resolves '-' (CSS Syntax 3 SS4.3.1's HYPHEN-MINUS case): a
// number if the next code points would start one, a CDC if they spell
// "->", an ident sequence if they would start one, otherwise a plain delim.
func (t *Tokenizer) lookDashStep(cp rune) error {
	switch t.lookN {
	case 0:
		switch {
		case isDigit(cp):
			t.numStart = t.triggerIdx
			t.numIsFloat = false
			t.state = stNumberInt
			return t.punt(0, cp, stNumberInt)
		case cp == '.':
			t.look[0] = cp
			t.lookN = 1
			return nil
		case cp == '-':
			// Could still be CDC ("-->") or an ident ("--foo"/"--"); need
			// one more code point to tell them apart.
			t.look[0] = cp
			t.lookN = 1
			return nil
		case isNameStart(cp):
			t.beginName(nameIdent)
			return t.punt(1, cp, stName)
		case cp == '\\':
			t.look[0] = cp
			t.lookN = 1
			return nil
		default:
			t.emitDelim('-')
			return t.punt(0, cp, stMain)
		}
	case 1:
		c1 := t.look[0]
		switch c1 {
		case '.':
			if isDigit(cp) {
				t.numStart = t.triggerIdx
				t.numIsFloat = true
				t.state = stNumberFrac
				return t.punt(0, cp, stNumberFrac)
			}
			t.emitDelim('-')
			return t.punt(1, cp, stMain)
		case '-':
			if cp == '>' {
				t.emit(CDC, t.triggerIdx+3, 0, 0, false)
				t.state = stMain
				return nil
			}
			// "--" always starts an ident sequence, whatever follows.
			t.beginName(nameIdent)
			return t.punt(2, cp, stName)
		case '\\':
			if isEscapeValid(cp) {
				t.beginName(nameIdent)
				return t.punt(2, cp, stName)
			}
			t.emitDelim('-')
			return t.punt(1, cp, stMain)
		}
	}
	panic("css: unreachable lookDash state")
}

// lookPlusStep resolves '+': a number if the next code points would start
// one, otherwise a plain delim (CSS Syntax 3 has no ident or CDC case for
// a leading '+').
func (t *Tokenizer) lookPlusStep(cp rune) error {
	switch t.lookN {
	case 0:
		switch {
		case isDigit(cp):
			t.numStart = t.triggerIdx
			t.numIsFloat = false
			t.state = stNumberInt
			return t.punt(0, cp, stNumberInt)
		case cp == '.':
			t.look[0] = cp
			t.lookN = 1
			return nil
		default:
			t.emitDelim('+')
			return t.punt(0, cp, stMain)
		}
	case 1:
		if isDigit(cp) {
			t.numStart = t.triggerIdx
			t.numIsFloat = true
			t.state = stNumberFrac
			return t.punt(0, cp, stNumberFrac)
		}
		t.emitDelim('+')
		return t.punt(1, cp, stMain)
	}
	panic("css: unreachable lookPlus state")
}

// lookDotStep resolves '.': a number if a digit follows, otherwise a plain
// delim.
func (t *Tokenizer) lookDotStep(cp rune) error {
	if isDigit(cp) {
		t.numStart = t.triggerIdx
		t.numIsFloat = true
		t.state = stNumberFrac
		return t.punt(0, cp, stNumberFrac)
	}
	t.emitDelim('.')
	return t.punt(0, cp, stMain)
}

// lookAtStep resolves '@': an at-keyword if the next code points would
// start an ident sequence, otherwise a plain delim. The '@' itself is a
// marker, never part of the at-keyword's value, so it is never replayed.
func (t *Tokenizer) lookAtStep(cp rune) error {
	switch t.lookN {
	case 0:
		switch {
		case cp == '-':
			t.look[0] = cp
			t.lookN = 1
			return nil
		case isNameStart(cp):
			t.beginName(nameAtKeyword)
			return t.punt(0, cp, stName)
		case cp == '\\':
			t.look[0] = cp
			t.lookN = 1
			return nil
		default:
			t.emitDelim('@')
			return t.punt(0, cp, stMain)
		}
	case 1:
		c1 := t.look[0]
		if c1 == '-' {
			switch {
			case isNameStart(cp) || cp == '-':
				t.beginName(nameAtKeyword)
				return t.punt(1, cp, stName)
			case cp == '\\':
				t.look[1] = cp
				t.lookN = 2
				return nil
			default:
				t.emitDelim('@')
				return t.punt(1, cp, stMain)
			}
		}
		// c1 == '\\'
		if isEscapeValid(cp) {
			t.beginName(nameAtKeyword)
			return t.punt(1, cp, stName)
		}
		t.emitDelim('@')
		return t.punt(1, cp, stMain)
	case 2:
		// look[0] == '-', look[1] == '\\'
		if isEscapeValid(cp) {
			t.beginName(nameAtKeyword)
			return t.punt(2, cp, stName)
		}
		t.emitDelim('@')
		return t.punt(2, cp, stMain)
	}
	panic("css: unreachable lookAt state")
}

// lookHashStep resolves '#': a hash if the next code point is a name
// code point or starts a valid escape, with its id flag set when the name
// that follows would itself start an ident sequence (CSS Syntax 3's
// compatibility carve-out for historical ID selectors). '#' is a marker,
// never part of the hash's value.
func (t *Tokenizer) lookHashStep(cp rune) error {
	switch t.lookN {
	case 0:
		switch {
		case cp == '\\':
			t.look[0] = cp
			t.lookN = 1
			return nil
		case isNameContinue(cp):
			t.look[0] = cp
			t.lookN = 1
			return nil
		default:
			t.emitDelim('#')
			return t.punt(0, cp, stMain)
		}
	case 1:
		c1 := t.look[0]
		if c1 == '\\' {
			if !isEscapeValid(cp) {
				t.emitDelim('#')
				return t.punt(1, cp, stMain)
			}
			// isIdentStart3('\\', cp, _) is true regardless of what
			// comes after cp, since the escape alone decides it.
			t.hashIsID = true
			t.beginName(nameHash)
			return t.punt(1, cp, stName)
		}
		// c1 is a name code point: the hash is valid. Normally one more
		// code point is needed to resolve the id-sequence lookahead, but
		// at EOF there is no third code point coming, so resolve now
		// rather than waiting forever.
		if cp == lexer.EOF {
			t.hashIsID = isIdentStart3(c1, lexer.EOF, lexer.EOF)
			t.beginName(nameHash)
			return t.punt(1, cp, stName)
		}
		t.look[1] = cp
		t.lookN = 2
		return nil
	case 2:
		c1, c2 := t.look[0], t.look[1]
		t.hashIsID = isIdentStart3(c1, c2, cp)
		t.beginName(nameHash)
		return t.punt(2, cp, stName)
	}
	panic("css: unreachable lookHash state")
}

// lookBackslashTopStep resolves a '\' reached at the top level (CSS
// Syntax 3's REVERSE SOLIDUS case): an ident sequence starting with an
// escape if the escape is valid, otherwise a parse error and a plain
// delim. This is the single place a bare top-level backslash's invalid-
// escape error is raised; every other state that meets the same
// backslash-then-newline condition mid-production defers to a fresh
// reprocessing pass that lands here instead of raising it twice.
func (t *Tokenizer) lookBackslashTopStep(cp rune) error {
	if isEscapeValid(cp) {
		t.beginName(nameIdent)
		return t.punt(1, cp, stName)
	}
	if err := t.fail(ErrInvalidEscape, "invalid escape at start of token"); err != nil {
		return err
	}
	t.emitDelim('\\')
	return t.punt(0, cp, stMain)
}

// lookNumUnitStep resolves the dimension-unit check SS4.3.13 runs right
// after a number's digits: a dimension if the next code points would
// start an ident sequence, a percentage if the next code point is '%'
// (handled by the caller before entering this lookahead at all), otherwise
// a plain number. Unlike the marker-triggered lookKinds above, there is no
// separate trigger code point here: every gathered code point is part of
// the unit's content once the dimension branch is taken.
func (t *Tokenizer) lookNumUnitStep(cp rune) error {
	switch t.lookN {
	case 0:
		switch {
		case cp == '-':
			t.look[0] = cp
			t.lookN = 1
			return nil
		case isNameStart(cp):
			t.beginName(nameUnit)
			return t.punt(0, cp, stName)
		case cp == '\\':
			t.look[0] = cp
			t.lookN = 1
			return nil
		default:
			t.finalizeNumber()
			t.state = stMain
			return t.punt(0, cp, stMain)
		}
	case 1:
		c1 := t.look[0]
		if c1 == '-' {
			switch {
			case isNameStart(cp) || cp == '-':
				t.beginName(nameUnit)
				return t.punt(1, cp, stName)
			case cp == '\\':
				t.look[1] = cp
				t.lookN = 2
				return nil
			default:
				t.finalizeNumber()
				t.state = stMain
				return t.punt(1, cp, stMain)
			}
		}
		// c1 == '\\'
		if isEscapeValid(cp) {
			t.beginName(nameUnit)
			return t.punt(1, cp, stName)
		}
		t.finalizeNumber()
		t.state = stMain
		return t.punt(1, cp, stMain)
	case 2:
		if isEscapeValid(cp) {
			t.beginName(nameUnit)
			return t.punt(2, cp, stName)
		}
		t.finalizeNumber()
		t.state = stMain
		return t.punt(2, cp, stMain)
	}
	panic("css: unreachable lookNumUnit state")
}
