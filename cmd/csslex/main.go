// Command csslex tokenizes a stylesheet and prints its token stream, one
// token per line, for debugging a stylesheet or this package itself.
package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"log"
	"os"

	"crawshaw.io/iox"

	"github.com/go-css/csslex/css"
	"github.com/go-css/csslex/input"
)

func main() {
	log.SetFlags(0)

	flagCharset := flag.String("charset", "", "charset label to decode the input as (default UTF-8)")
	flagStrict := flag.Bool("strict", false, "stop at the first parse error instead of recovering and continuing")
	flagLegacy := flag.Bool("legacy", false, "produce legacy match-operator and unicode-range tokens")
	flagDebug := flag.Bool("debug", false, "log every emitted token to stderr")
	flagSpool := flag.Bool("spool", false, "spool the input to disk before tokenizing, via crawshaw.io/iox")

	flag.Parse()

	var r *os.File
	switch flag.NArg() {
	case 0:
		r = os.Stdin
	case 1:
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		r = f
	default:
		log.Fatal("usage: csslex [flags] [file]")
	}

	opts := css.Options{
		Strict: *flagStrict,
		Legacy: *flagLegacy,
	}
	if *flagDebug {
		opts.Debug = css.DebugLexing
		opts.DebugLog = log.Printf
	}

	var errCount int
	tok := css.NewTokenizer(opts, func(pe *css.ParseError) {
		errCount++
		log.Printf("error: %v", pe)
	})

	if err := feed(tok, r, *flagCharset, *flagSpool); err != nil {
		log.Fatal(err)
	}

	printTokens(tok.Store())

	if errCount > 0 {
		os.Exit(1)
	}
}

func feed(tok *css.Tokenizer, r *os.File, charsetLabel string, spool bool) error {
	if !spool {
		ba, err := input.NewByteAdapter(r, charsetLabel)
		if err != nil {
			return err
		}
		return ba.Feed(tok)
	}

	filer := iox.NewFiler(0)
	tempdir, err := ioutil.TempDir("", "csslex-")
	if err != nil {
		return err
	}
	defer os.RemoveAll(tempdir)
	filer.SetTempdir(tempdir)

	fa, err := input.NewFileAdapter(filer, r, charsetLabel)
	if err != nil {
		return err
	}
	defer fa.Close()
	return fa.Feed(tok)
}

func printTokens(st *css.Store) {
	for i := 0; i < st.Len(); i++ {
		k := st.Kind(i)
		start, end := st.Range(i)
		fmt.Printf("%d\t[%d,%d)\t%s", i, start, end, k)
		switch {
		case k == css.Delim:
			fmt.Printf("\t%q", st.Delim(i))
		case k == css.Hash:
			fmt.Printf("\t%q\tid=%v", st.String(i), st.HashIsID(i))
		case k == css.UnicodeRange:
			lo, hi := st.UnicodeRange(i)
			fmt.Printf("\tU+%04X-U+%04X", lo, hi)
		case k.IsNumeric():
			v, isFloat := st.Number(i)
			fmt.Printf("\t%v\tfloat=%v", v, isFloat)
			if k == css.Dimension {
				fmt.Printf("\tunit=%q", st.Unit(i))
			}
		case k.HasStringValue():
			fmt.Printf("\t%q", st.String(i))
			if st.HadEscape(i) {
				fmt.Print("\tescaped")
			}
		}
		fmt.Println()
	}
}
