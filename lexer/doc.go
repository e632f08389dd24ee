/*
Package lexer implements a generic, allocation-averse framework for
code-point-driven streaming tokenizers.

It owns the parts of a scanner that have nothing to do with any particular
grammar: buffering incoming code points, applying newline/NUL stream
preprocessing, tracking (line, column) origin, and replaying a short tail of
already-seen code points when a grammar's lookahead decides it guessed the
current token's shape wrong ("reconsumption").

A concrete tokenizer (see package css) drives a Source by implementing
Emitter and feeding it code points; the Source calls back into the Emitter
one code point at a time and lets it do the grammar-specific work.
*/
package lexer
