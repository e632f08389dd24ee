package css

// DebugLexing is the sentinel value for Options.Debug that enables
// tabular per-token logging, matching the construction option named in
// SS6 of the specification this package implements.
const DebugLexing = "lexing"

// Options configures a Tokenizer at construction.
type Options struct {
	// Size is a hint for the expected input length in code points, used
	// to size the initial source and token-store buffers. Zero or
	// negative values fall back to lexer.DefaultSize (65536).
	Size int

	// Strict selects fail-fast error handling: the first parse error
	// stops tokenization and is returned from the Push/End call that
	// produced it. Its zero value (false) is recover mode, this
	// package's default: parse errors are collected in Tokenizer.Errors
	// and tokenization continues to produce a valid tokenization of some
	// CSS. The base lexer.Source/Emitter layer carries no such notion and
	// is effectively always strict; Strict only governs the css package's
	// own error handling.
	Strict bool

	// Legacy enables the experimental CSS kinds (Column, DashMatch,
	// IncludeMatch, PrefixMatch, SuffixMatch, SubstringMatch,
	// UnicodeRange) that current CSS Syntax 3 removed in favor of
	// decomposing them into Delim sequences.
	Legacy bool

	// Debug, when set to DebugLexing, causes every emitted token to be
	// logged in tabular form through DebugLog (or through the standard
	// log package if DebugLog is nil).
	Debug string

	// DebugLog receives one line per emitted token when Debug is set.
	// If nil, log.Printf is used.
	DebugLog func(format string, v ...interface{})
}
