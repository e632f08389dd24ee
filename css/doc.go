/*
Package css implements a streaming tokenizer for the CSS Syntax Module
Level 3 lexical grammar,
https://www.w3.org/TR/css-syntax-3/#tokenization.

It is a code-point-driven state machine built on package lexer: a producer
pushes decoded Unicode code points in, and the tokenizer appends tokens to
an in-memory, append-only Store as it recognizes them. There is no pull
API and no internal goroutine; the tokenizer is driven entirely by calls
to PushRune, PushChunk, and End.

	errh := func(e *css.ParseError) { log.Printf("%s: %s", e.Pos, e.Message) }
	tok := css.NewTokenizer(css.Options{}, errh)
	for _, r := range "a { color: #FF0099; }" {
		if err := tok.PushRune(r); err != nil {
			log.Fatal(err)
		}
	}
	if err := tok.End(); err != nil {
		log.Fatal(err)
	}
	store := tok.Store()
	for i := 0; i < store.Len(); i++ {
		start, end := store.Range(i)
		fmt.Println(store.Kind(i), start, end)
	}

Token values are never copied out of the Store's internal buffers until a
caller asks for them through an introspection method (Store.String,
Store.Number, and so on). Store.Range gives a token's position in the
normalized code-point stream; the Store does not hold or return the
source code points themselves. The tokenizer itself never allocates once its
buffers have grown to cover the input, matching the zero-allocation-hot-
path design of the CSS Syntax specification's reference implementations.

By default (Options.Strict = false) the tokenizer accretes and continues
past lexical errors: they are collected in Tokenizer.Errors rather than
aborting, and the token stream is guaranteed to still be a valid
tokenization of some CSS. Passing Options.Strict = true instead makes the
first lexical error fatal, stopping tokenization and returning the error
from whichever PushRune/PushChunk/End call produced it.
*/
package css
