package css

// Store is the read-only view of a Tokenizer's accumulated tokens. It may
// be read between Push calls on the Tokenizer that owns it: appends never
// rewrite already-written tokens, though growth may copy them to a larger
// backing array. Store has no locking, so reads must not run at the same
// time as a Push or End call on another goroutine.
type Store store

// Len returns the number of tokens accumulated so far.
func (s *Store) Len() int { return (*store)(s).len() }

// Kind returns the i'th token's kind.
func (s *Store) Kind(i int) Kind { return (*store)(s).at(i).kind }

// Range returns the i'th token's [start, end) index range into the
// tokenizer's normalized code-point stream.
func (s *Store) Range(i int) (start, end int) {
	return (*store)(s).startOf(i), int((*store)(s).at(i).end)
}

// HadEscape reports whether the i'th token's decoded string value (if it
// has one) passed through at least one escape.
func (s *Store) HadEscape(i int) bool { return (*store)(s).hadEscape(i) }

// String returns the i'th token's decoded string value. It panics if
// Kind(i).HasStringValue() is false.
func (s *Store) String(i int) string {
	st := (*store)(s)
	tok := st.at(i)
	if !tok.kind.HasStringValue() {
		panic("css: Store.String called on a token with no string value")
	}
	if tok.kind == Dimension {
		return string(st.strs[tok.slotA:tok.slotB])
	}
	if tok.kind == Hash {
		return string(st.strs[tok.slotA>>1 : tok.slotB])
	}
	return string(st.strs[tok.slotA:tok.slotB])
}

// HashIsID reports whether the i'th token, which must be a Hash, has the
// "id" type flag set (CSS Syntax 3 calls this an "id-selector-shaped"
// hash, as opposed to an "unrestricted" one).
func (s *Store) HashIsID(i int) bool {
	st := (*store)(s)
	tok := st.at(i)
	if tok.kind != Hash {
		panic("css: Store.HashIsID called on a non-Hash token")
	}
	return tok.slotA&1 == 1
}

// Number returns the i'th token's numeric value and whether its source
// representation used a decimal point or exponent. A Percentage's value is
// always stored as a float, so for a Percentage isFloat is always true. It
// panics unless Kind(i).IsNumeric() is true.
func (s *Store) Number(i int) (value float64, isFloat bool) {
	st := (*store)(s)
	tok := st.at(i)
	switch tok.kind {
	case Number:
		isFloat = tok.slotA == 1
		if isFloat {
			return st.floats[tok.slotB], true
		}
		return float64(st.ints[tok.slotB]), false
	case Percentage:
		return st.floats[tok.slotA], true
	case Dimension:
		flag := int(st.strs[tok.slotB])
		idx := int(st.strs[tok.slotB+1])
		if flag == 1 {
			return st.floats[idx], true
		}
		return float64(st.ints[idx]), false
	}
	panic("css: Store.Number called on a non-numeric token")
}

// Unit returns the i'th token's unit text. It panics unless Kind(i) is
// Dimension.
func (s *Store) Unit(i int) string { return s.String(i) }

// UnicodeRange returns the low and high code points of the i'th token's
// range. It panics unless Kind(i) is UnicodeRange (only reachable with
// Options.Legacy).
func (s *Store) UnicodeRange(i int) (lo, hi rune) {
	st := (*store)(s)
	tok := st.at(i)
	if tok.kind != UnicodeRange {
		panic("css: Store.UnicodeRange called on a non-UnicodeRange token")
	}
	return rune(st.ints[tok.slotA]), rune(st.ints[tok.slotB])
}

// Delim returns the i'th token's code point. It panics unless Kind(i) is
// Delim.
func (s *Store) Delim(i int) rune {
	st := (*store)(s)
	tok := st.at(i)
	if tok.kind != Delim {
		panic("css: Store.Delim called on a non-Delim token")
	}
	return rune(tok.slotA)
}
