// Command htmltok is a demo harness for the tokenizer and tree
// packages: it makes the token stream and insertion-mode transitions
// observable from the command line.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-html5/tokenizer"
	"github.com/go-html5/tokenizer/tree"
)

func main() {
	var (
		jsonOut  = flag.Bool("json", false, "print each token as a JSON object")
		showErrs = flag.Bool("errors", false, "interleave parse errors with tokens")
		watch    = flag.String("watch", "", "address to serve a live token feed on (e.g. :8080); re-tokenizes the file on every change")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	path := flag.Arg(0)

	if *watch != "" {
		if path == "" {
			logger.Error("-watch requires a file argument")
			os.Exit(1)
		}
		srv := newWatchServer(path, logger)
		logger.Info("starting live token feed", "address", *watch, "file", path)
		if err := http.ListenAndServe(*watch, srv); err != nil {
			logger.Error("http server error", "error", err)
			os.Exit(1)
		}
		return
	}

	src, err := readSource(path)
	if err != nil {
		logger.Error("read source", "error", err)
		os.Exit(1)
	}

	if err := tokenize(os.Stdout, src, *jsonOut, *showErrs, logger); err != nil {
		logger.Error("tokenize", "error", err)
		os.Exit(1)
	}
}

func readSource(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

// tokenize runs src through the tokenizer and dispatcher, writing one
// line per token (or one JSON object per line with -json) to w.
func tokenize(w io.Writer, src []byte, jsonOut, showErrs bool, logger *slog.Logger) error {
	var errs []tokenizer.ParseError
	opts := tokenizer.Options{}
	if showErrs {
		opts.OnParseError = func(e tokenizer.ParseError) {
			errs = append(errs, e)
			logger.Debug("parse error", "code", e.Code, "pos", e.Pos)
		}
	}

	z := tokenizer.NewTokenizer(tokenizer.NormalizeNewlines(src), opts)
	d := tree.NewDispatcher(z, logger)

	enc := json.NewEncoder(w)
	for {
		tok := z.Next()
		d.ConsumeToken(tok)

		if jsonOut {
			if err := enc.Encode(tokenJSON(tok)); err != nil {
				return err
			}
		} else {
			fmt.Fprintln(w, tok.String())
		}

		if showErrs {
			for _, e := range errs {
				fmt.Fprintf(w, "# parse-error %s at byte %d\n", e.Code, e.Pos)
			}
			errs = errs[:0]
		}

		if tok.Type == tokenizer.EndOfFileTokenMarker {
			break
		}
	}
	return nil
}

// tokenSummary is the -json wire shape for a single token.
type tokenSummary struct {
	Type        string            `json:"type"`
	Data        string            `json:"data,omitempty"`
	Attr        map[string]string `json:"attr,omitempty"`
	SelfClosing bool              `json:"selfClosing,omitempty"`
	Rune        string            `json:"rune,omitempty"`
}

func tokenJSON(t tokenizer.Token) tokenSummary {
	s := tokenSummary{Type: t.Type.String(), Data: t.Data, SelfClosing: t.SelfClosing}
	if len(t.Attr) > 0 {
		s.Attr = make(map[string]string, len(t.Attr))
		for _, a := range t.Attr {
			s.Attr[a.Key] = a.Val
		}
	}
	if t.Type == tokenizer.CharacterToken {
		s.Rune = string(t.Rune)
	}
	return s
}
