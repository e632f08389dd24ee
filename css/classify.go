package css

// The code-point classes from CSS Syntax 3 SS4.2, plus the small
// three-code-point lookahead predicates SS4.3 builds on top of them.

func isLetter(c rune) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isDigit(c rune) bool {
	return '0' <= c && c <= '9'
}

func isHexDigit(c rune) bool {
	return isDigit(c) || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

func hexVal(c rune) uint32 {
	switch {
	case '0' <= c && c <= '9':
		return uint32(c - '0')
	case 'a' <= c && c <= 'f':
		return uint32(c-'a') + 10
	default:
		return uint32(c-'A') + 10
	}
}

func isNameStart(c rune) bool {
	return isLetter(c) || c == '_' || c >= 0x80
}

func isNameContinue(c rune) bool {
	return isNameStart(c) || isDigit(c) || c == '-'
}

func isNonPrintable(c rune) bool {
	return (0 <= c && c <= 0x08) || c == 0x0B || (0x0E <= c && c <= 0x1F) || c == 0x7F
}

func isWhitespace(c rune) bool {
	return c == '\t' || c == '\n' || c == ' '
}

// isEscapeValid reports whether a backslash followed by next forms a valid
// escape (CSS Syntax 3 SS4.3.8): only a following newline disqualifies it.
// End-of-input is not excluded here: consuming an escape at end of input
// still produces a value (U+FFFD, with a parse error), it just doesn't
// consume anything further, so a trailing lone backslash is a legitimate
// (if erroneous) escape start rather than a bare delimiter. This is also
// what makes "#-\" at end of input resolve to a HASH with its id flag set
// without any special-casing: the escape after the dash is valid by this
// rule regardless of what (if anything) follows it.
func isEscapeValid(next rune) bool {
	return next != '\n'
}

// isIdentStart3 checks whether c0, c1, c2 would start an ident sequence, per
// CSS Syntax 3 SS4.3.9. Unlike a naive port, the c0 == '-' branch accepts a
// second hyphen unconditionally (not just when a third, name-start code
// point follows): that is what lets "--custom-prop"-style names, and a bare
// "--" on its own, be recognized as an ident sequence rather than falling
// through to a delim.
func isIdentStart3(c0, c1, c2 rune) bool {
	switch {
	case c0 == '-':
		return isNameStart(c1) || c1 == '-' || (c1 == '\\' && isEscapeValid(c2))
	case isNameStart(c0):
		return true
	case c0 == '\\':
		return isEscapeValid(c1)
	default:
		return false
	}
}
