// The MIT License (MIT)
//
// Copyright (c) 2016 Im Kyeong-Hyeon (dlarudgus20@naver.com)
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Command aha runs the aha lexer interactively: each line fed at the prompt
// is tokenized and the tokens printed back, demonstrating incremental lexing
// and error recovery. Multi-line input goes between ":{" and ":}".
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/peterh/liner"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	front "github.com/dlarudgus20/ahafront"
)

const (
	historyFile = ".aha_history"
	promptMain  = ">> "
	promptCont  = "-- "
)

var log = logrus.New()

func main() {
	verbose := flag.Bool("verbose", false, "log token positions and recovery steps")
	contextual := flag.String("contextual", "", "comma-separated contextual keywords")
	flag.Parse()

	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	os.Exit(repl(*contextual))
}

func repl(contextual string) int {
	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		if _, err := ln.ReadHistory(f); err != nil {
			log.WithError(errors.Wrap(err, "read history")).Debug("history not loaded")
		}
		f.Close()
	}
	defer func() {
		f, err := os.Create(histPath)
		if err != nil {
			log.WithError(errors.Wrap(err, "write history")).Debug("history not saved")
			return
		}
		_, _ = ln.WriteHistory(f)
		f.Close()
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	src := front.NewReplSource("<REPL>")
	lx := front.NewLexer()
	if contextual != "" {
		lx.SetContextualKeywords(strings.Split(contextual, ","))
	}

	fresh := true
	interp := false // lexing the embedded expression of an interpolated literal
	depth := 0      // bracket depth within that expression
	for {
		tok, err := lx.Lex(src)
		if err != nil {
			if !recoverFrom(src, lx, err) {
				return 1
			}
			fresh = true
			interp, depth = false, 0
			continue
		}
		if tok == nil {
			switch lx.LastResult() {
			case front.LexExhausted:
				feed(ln, src, fresh)
				fresh = false
			case front.LexEOF:
				log.Debug("source reached eof")
				return 0
			}
			continue
		}

		switch data := tok.Data.(type) {
		case front.Newline:
			fresh = true
		case front.InterpolStringStart, front.InterpolStringMid:
			interp, depth = true, 0
		case front.InterpolStringEnd:
			interp, depth = false, 0
		case front.Punct:
			if interp {
				switch data.Text {
				case "(", "[":
					depth++
				case ")", "]":
					if depth > 0 {
						depth--
					}
				}
			}
		}
		if interp {
			// '}' may resume the literal only once the embedded
			// expression's brackets are balanced
			lx.EnableInterpolatedBlockEnd(depth == 0)
		}

		fmt.Println(tok.Data)
		log.WithFields(logrus.Fields{
			"beg": fmt.Sprintf("%d:%d", tok.Beg.Line+1, tok.Beg.Col+1),
			"end": fmt.Sprintf("%d:%d", tok.End.Line+1, tok.End.Col+1),
		}).Debug("token")
	}
}

// feed prompts for one more line (or a ":{"-delimited block) and pushes it
// into the source. Terminal EOF is forwarded with FeedEOF.
func feed(ln *liner.State, src *front.ReplSource, fresh bool) {
	prompt := promptCont
	if fresh {
		prompt = promptMain
	}

	line, err := ln.Prompt(prompt)
	switch {
	case errors.Is(err, io.EOF):
		fmt.Println()
		src.FeedEOF()
		return
	case errors.Is(err, liner.ErrPromptAborted):
		// Ctrl-C: feed nothing and prompt again
		return
	case err != nil:
		log.WithError(errors.Wrap(err, "prompt")).Error("input failed")
		src.FeedEOF()
		return
	}

	if fresh && line == ":{" {
		for {
			line, err = ln.Prompt(promptCont)
			if errors.Is(err, io.EOF) {
				fmt.Println()
				src.FeedEOF()
				return
			}
			if err != nil || line == ":}" {
				return
			}
			src.FeedLine(line)
		}
	}

	src.FeedLine(line)
	if line != "" {
		ln.AppendHistory(line)
	}
}

// recoverFrom prints a positional error and clears whichever side raised it,
// so the session continues with fresh input. It reports false for errors the
// REPL cannot recover from.
func recoverFrom(src *front.ReplSource, lx *front.Lexer, err error) bool {
	fmt.Fprintln(os.Stderr, err)

	var byteseq *front.InvalidByteSeqError
	var lexerr *front.LexerError
	switch {
	case errors.As(err, &byteseq):
		src.ClearBuffer()
		log.Debug("source buffer cleared")
	case errors.As(err, &lexerr):
		// ClearAll rather than ClearBuffer: the interpolation flags must
		// reset together with the driver's bracket balancer
		lx.ClearAll()
		log.Debug("lexer state cleared")
	default:
		log.WithError(err).Error("unrecoverable error")
		return false
	}
	return true
}
