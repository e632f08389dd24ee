package css

import (
	"log"
	"strconv"

	"github.com/go-css/csslex/lexer"
)

// Pos is a source location, re-exported so callers of this package never
// need to import lexer directly.
type Pos = lexer.Pos

// state is one of the tokenizer's lexical states (CSS Syntax 3 SS4.3). The
// grammar has on the order of 80 states once every branch is named; most
// of them are realized here as a handful of persistent states parameterized
// by a small amount of transient data (nameMode, lookKind, matchKind)
// rather than one Go constant per branch.
type state uint8

const (
	stMain state = iota
	stWhitespace
	stSlash1
	stComment
	stCommentStar
	stString
	stStringBackslash
	stLook // generic lookahead resolver, see lookahead.go
	stName
	stNameBackslash
	stEscapeHex
	stURLWSLead
	stURLBody
	stURLWSTrail
	stURLBackslash
	stBadURL
	stBadURLBackslash
	stNumberInt
	stNumberDotCheck
	stNumberFrac
	stNumberExpCheck
	stNumberExpSignCheck
	stNumberExpDigit
	stCDOBang
	stCDODash1
	stCDODash2

	// Legacy-only states (Options.Legacy); see legacy.go.
	stMatchEq
	stPipe1
	stUSeen
	stUPlusSeen
	stUnicodeRangeHex
	stUnicodeRangeDashCheck
	stUnicodeRangeEndHex
)

// nameMode distinguishes what an ident-sequence accumulation (stName et al.)
// is building, since Ident, AtKeyword, Hash, and the unit half of Dimension
// all share the same name-consumption algorithm (CSS Syntax 3 SS4.3.12).
type nameMode uint8

const (
	nameIdent nameMode = iota
	nameAtKeyword
	nameHash
	nameUnit
)

// lookKind selects which disambiguation chain the generic stLook state is
// running, see lookahead.go.
type lookKind uint8

const (
	lookDash lookKind = iota
	lookPlus
	lookDot
	lookAt
	lookHash
	lookBackslashTop
	lookNumUnit
)

// Tokenizer drives the CSS Syntax Level 3 tokenization algorithm one code
// point at a time. It implements lexer.Emitter; a *lexer.Source owned by
// the Tokenizer performs stream preprocessing and position tracking, and
// calls back into Step as each code point arrives.
type Tokenizer struct {
	opts Options
	src  *lexer.Source
	st   *store

	errs       []*ParseError
	errHandler func(*ParseError)

	state state

	// buf accumulates the decoded value of whatever is currently being
	// read: an ident sequence, a string, or a URL literal. bufHadEscape
	// is set the first time an escape decodes into it.
	buf          []rune
	bufHadEscape bool

	// String literal state.
	strDelim rune

	// Name-sequence state (ident / at-keyword / hash / dimension unit).
	nameMode nameMode
	hashIsID bool

	// urlParenIdx is the index of the '(' that redirected an ident named
	// "url" into the url()/Function disambiguation, see stURLWSLead.
	urlParenIdx int

	// Escape decoding (shared by strings, names, and URLs). escReturn is
	// the state to resume once the escape has been fully consumed.
	escDigits    uint32
	escDigitCount int
	escReturn    state

	// Numeric state. No accumulation buffer is kept: the final value is
	// parsed directly out of the source buffer's [numStart, numDigitsEnd)
	// slice once the number's extent is known.
	numStart     int
	numIsFloat   bool
	numDigitsEnd int

	// Generic lookahead resolver state, see lookahead.go.
	lookKind   lookKind
	look       [3]rune
	lookN      int
	triggerCP  rune
	triggerIdx int

	// Legacy match-operator / unicode-range state, see legacy.go.
	matchKind  Kind
	urLetter   rune
	urDigits   int
	urQ        bool
	urDigitsStart int
	urDigitsEnd   int
	urEndDigits   int
	urEndStart    int
	urEndDigitsEnd int
}

// NewTokenizer creates a Tokenizer. errHandler, if non-nil, is called for
// every ParseError as it occurs (in both strict and recover mode); it is
// the hook a caller uses to log errors as they happen rather than waiting
// for Errors() at the end.
func NewTokenizer(opts Options, errHandler func(*ParseError)) *Tokenizer {
	t := &Tokenizer{
		opts:       opts,
		st:         newStore(opts.Size),
		errHandler: errHandler,
		state:      stMain,
		escReturn:  stMain,
	}
	t.src = lexer.NewSource(t, opts.Size)
	return t
}

// PushRune feeds a single raw (pre-normalization) code point to the
// tokenizer.
func (t *Tokenizer) PushRune(r rune) error { return t.src.PushRune(r) }

// PushChunk feeds a slice of raw code points to the tokenizer in order.
func (t *Tokenizer) PushChunk(rs []rune) error { return t.src.PushChunk(rs) }

// End signals end of input. It must be called exactly once, after all
// PushRune/PushChunk calls.
func (t *Tokenizer) End() error { return t.src.End() }

// Store returns the token store accumulated so far. The returned value
// remains valid (and keeps growing) across further Push calls.
func (t *Tokenizer) Store() *Store { return (*Store)(t.st) }

// Errors returns the parse errors collected in recover mode, in the order
// they occurred. In strict mode this is always empty: the first error is
// returned from the Push/End call that produced it instead.
func (t *Tokenizer) Errors() []*ParseError { return t.errs }

// Step implements lexer.Emitter. It is the single dispatch point every
// lexical state handler is reached through, whether cp arrives live (via
// PushRune) or is replayed by Source.Reconsume.
func (t *Tokenizer) Step(cp rune) error {
	switch t.state {
	case stMain:
		return t.stMain(cp)
	case stWhitespace:
		return t.stWhitespace(cp)
	case stSlash1:
		return t.stSlash1(cp)
	case stComment:
		return t.stComment(cp)
	case stCommentStar:
		return t.stCommentStar(cp)
	case stString:
		return t.stString(cp)
	case stStringBackslash:
		return t.stStringBackslash(cp)
	case stLook:
		return t.stepLookahead(cp)
	case stName:
		return t.stName(cp)
	case stNameBackslash:
		return t.stNameBackslash(cp)
	case stEscapeHex:
		return t.stEscapeHex(cp)
	case stURLWSLead:
		return t.stURLWSLead(cp)
	case stURLBody:
		return t.stURLBody(cp)
	case stURLWSTrail:
		return t.stURLWSTrail(cp)
	case stURLBackslash:
		return t.stURLBackslash(cp)
	case stBadURL:
		return t.stBadURL(cp)
	case stBadURLBackslash:
		return t.stBadURLBackslash(cp)
	case stNumberInt:
		return t.stNumberInt(cp)
	case stNumberDotCheck:
		return t.stNumberDotCheck(cp)
	case stNumberFrac:
		return t.stNumberFrac(cp)
	case stNumberExpCheck:
		return t.stNumberExpCheck(cp)
	case stNumberExpSignCheck:
		return t.stNumberExpSignCheck(cp)
	case stNumberExpDigit:
		return t.stNumberExpDigit(cp)
	case stCDOBang:
		return t.stCDOBang(cp)
	case stCDODash1:
		return t.stCDODash1(cp)
	case stCDODash2:
		return t.stCDODash2(cp)
	case stMatchEq:
		return t.stMatchEq(cp)
	case stPipe1:
		return t.stPipe1(cp)
	case stUSeen:
		return t.stUSeen(cp)
	case stUPlusSeen:
		return t.stUPlusSeen(cp)
	case stUnicodeRangeHex:
		return t.stUnicodeRangeHex(cp)
	case stUnicodeRangeDashCheck:
		return t.stUnicodeRangeDashCheck(cp)
	case stUnicodeRangeEndHex:
		return t.stUnicodeRangeEndHex(cp)
	}
	panic("css: unreachable state")
}

// punt hands a resolved lookahead off to its destination state: olderCount
// previously-stored real code points (not counting cp itself) are replayed
// through the state machine, then cp — if it is a real code point, not EOF
// — is dispatched fresh. EOF is never itself replayed: it was never stored,
// and Source.Reconsume automatically re-signals it once a real-code-point
// replay finishes if end of input has already been reached.
func (t *Tokenizer) punt(olderCount int, cp rune, next state) error {
	t.state = next
	n := olderCount
	if cp != lexer.EOF {
		n++
	}
	return t.src.Reconsume(n)
}

// Emit helpers.

func (t *Tokenizer) emit(kind Kind, end, slotA, slotB int, hadEscape bool) {
	idx := t.st.appendToken(token{kind: kind, end: int32(end), slotA: int32(slotA), slotB: int32(slotB)}, hadEscape)
	t.debugEmit(idx)
}

func (t *Tokenizer) debugEmit(idx int) {
	if t.opts.Debug != DebugLexing {
		return
	}
	tok := t.st.at(idx)
	start := t.st.startOf(idx)
	logf := t.opts.DebugLog
	if logf == nil {
		logf = defaultDebugLog
	}
	logf("token[%d] %-10s %d:%d  %q", idx, tok.kind, start, tok.end, string(t.src.Slice(start, int(tok.end))))
}

// emitDelim emits a single-code-point Delim token consuming exactly the
// lookahead trigger at t.triggerIdx.
func (t *Tokenizer) emitDelim(cp rune) {
	t.emit(Delim, t.triggerIdx+1, int(cp), 0, false)
}

// stMain is the top-level "consume a token" dispatch (CSS Syntax 3
// SS4.3.1). It is reached for every code point that does not belong to a
// token already in progress.
func (t *Tokenizer) stMain(cp rune) error {
	switch {
	case cp == lexer.EOF:
		return nil

	case cp != lexer.EOF && isWhitespace(cp):
		t.state = stWhitespace
		return nil

	case cp == '"' || cp == '\'':
		t.strDelim = cp
		t.buf = t.buf[:0]
		t.bufHadEscape = false
		t.state = stString
		return nil

	case cp == '#':
		t.beginLook(lookHash, cp)
		return nil

	case cp == '(':
		t.emit(LeftParen, t.src.CurIndex()+1, 0, 0, false)
		return nil
	case cp == ')':
		t.emit(RightParen, t.src.CurIndex()+1, 0, 0, false)
		return nil

	case cp == '+':
		t.beginLook(lookPlus, cp)
		return nil

	case cp == ',':
		t.emit(Comma, t.src.CurIndex()+1, 0, 0, false)
		return nil

	case cp == '-':
		t.beginLook(lookDash, cp)
		return nil

	case cp == '.':
		t.beginLook(lookDot, cp)
		return nil

	case cp == '/':
		t.triggerIdx = t.src.CurIndex()
		t.state = stSlash1
		return nil

	case cp == ':':
		t.emit(Colon, t.src.CurIndex()+1, 0, 0, false)
		return nil
	case cp == ';':
		t.emit(Semicolon, t.src.CurIndex()+1, 0, 0, false)
		return nil

	case cp == '<':
		t.triggerIdx = t.src.CurIndex()
		t.state = stCDOBang
		return nil

	case cp == '@':
		t.beginLook(lookAt, cp)
		return nil

	case cp == '[':
		t.emit(LeftBracket, t.src.CurIndex()+1, 0, 0, false)
		return nil
	case cp == ']':
		t.emit(RightBracket, t.src.CurIndex()+1, 0, 0, false)
		return nil
	case cp == '{':
		t.emit(LeftBrace, t.src.CurIndex()+1, 0, 0, false)
		return nil
	case cp == '}':
		t.emit(RightBrace, t.src.CurIndex()+1, 0, 0, false)
		return nil

	case cp == '\\':
		t.beginLook(lookBackslashTop, cp)
		return nil

	case isDigit(cp):
		t.numStart = t.src.CurIndex()
		t.numIsFloat = false
		t.state = stNumberInt
		return nil

	case t.opts.Legacy && (cp == '$' || cp == '*' || cp == '^' || cp == '~'):
		t.triggerIdx = t.src.CurIndex()
		t.triggerCP = cp
		switch cp {
		case '$':
			t.matchKind = SuffixMatch
		case '*':
			t.matchKind = SubstringMatch
		case '^':
			t.matchKind = PrefixMatch
		case '~':
			t.matchKind = IncludeMatch
		}
		t.state = stMatchEq
		return nil

	case t.opts.Legacy && cp == '|':
		t.triggerIdx = t.src.CurIndex()
		t.state = stPipe1
		return nil

	case t.opts.Legacy && (cp == 'u' || cp == 'U'):
		t.triggerIdx = t.src.CurIndex()
		t.urLetter = cp
		t.state = stUSeen
		return nil

	case isNameStart(cp):
		t.nameMode = nameIdent
		t.buf = t.buf[:0]
		t.bufHadEscape = false
		t.state = stName
		return t.punt(0, cp, stName)

	default:
		t.triggerIdx = t.src.CurIndex()
		t.emitDelim(cp)
		return nil
	}
}

// beginLook enters the generic lookahead resolver for trigger, recording
// its index so the eventual DELIM or multi-code-point production can be
// measured from it.
func (t *Tokenizer) beginLook(kind lookKind, trigger rune) {
	t.lookKind = kind
	t.triggerCP = trigger
	t.triggerIdx = t.src.CurIndex()
	t.lookN = 0
	t.state = stLook
}

// endIdx returns the exclusive end index a token terminated by cp should
// use: cp's own index for a real code point (it is not part of the token),
// or the full length of the input once EOF has been reached (EOF has no
// index of its own).
func (t *Tokenizer) endIdx(cp rune) int {
	if cp == lexer.EOF {
		return t.src.Len()
	}
	return t.src.CurIndex()
}

// backIdx returns the index of the real code point k positions before cp,
// counting cp itself as position 0 when cp is real. CurIndex() already
// answers "index of the last real code point" when cp is EOF (EOF has no
// index of its own), so the EOF case needs one fewer step back than the
// real-cp case.
func (t *Tokenizer) backIdx(cp rune, k int) int {
	if cp == lexer.EOF {
		k--
	}
	return t.src.CurIndex() - k
}

func (t *Tokenizer) stWhitespace(cp rune) error {
	if cp != lexer.EOF && isWhitespace(cp) {
		return nil
	}
	t.emit(Whitespace, t.endIdx(cp), 0, 0, false)
	return t.punt(0, cp, stMain)
}

func (t *Tokenizer) stSlash1(cp rune) error {
	if cp == '*' {
		t.state = stComment
		return nil
	}
	t.emitDelim('/')
	return t.punt(0, cp, stMain)
}

func (t *Tokenizer) stComment(cp rune) error {
	switch cp {
	case '*':
		t.state = stCommentStar
		return nil
	case lexer.EOF:
		return t.fail(ErrUnterminatedComment, "unterminated comment at end of input")
	default:
		return nil
	}
}

func (t *Tokenizer) stCommentStar(cp rune) error {
	switch cp {
	case '/':
		t.state = stMain
		return nil
	case '*':
		return nil
	case lexer.EOF:
		return t.fail(ErrUnterminatedComment, "unterminated comment at end of input")
	default:
		t.state = stComment
		return nil
	}
}

func (t *Tokenizer) stCDOBang(cp rune) error {
	if cp == '!' {
		t.state = stCDODash1
		return nil
	}
	t.emitDelim('<')
	return t.punt(0, cp, stMain)
}

func (t *Tokenizer) stCDODash1(cp rune) error {
	if cp == '-' {
		t.state = stCDODash2
		return nil
	}
	t.emitDelim('<')
	return t.punt(1, cp, stMain)
}

func (t *Tokenizer) stCDODash2(cp rune) error {
	if cp == '-' {
		t.emit(CDO, t.src.CurIndex()+1, 0, 0, false)
		t.state = stMain
		return nil
	}
	t.emitDelim('<')
	return t.punt(2, cp, stMain)
}

func defaultDebugLog(format string, v ...interface{}) {
	log.Printf(format, v...)
}

// parseDecimalInt and parseDecimalFloat wrap strconv for the number
// finalizers; the CSS number grammar constrains the slice to syntax
// strconv always accepts, so errors are not expected in practice.
func parseDecimalInt(s []rune) int64 {
	v, _ := strconv.ParseInt(string(s), 10, 64)
	return v
}

func parseDecimalFloat(s []rune) float64 {
	v, _ := strconv.ParseFloat(string(s), 64)
	return v
}
