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

/*
Package front implements the streaming front end of the aha compiler: an
incremental source reader and an indentation-aware lexer.

The two components form a pull-driven chain. A Source accepts raw UTF-8
bytes in arbitrary chunks, decodes them to code points, canonicalizes line
terminators to a single '\n' and keeps an append-only, line-indexed log of
everything it has decoded so that diagnostics can quote any past character
by (line, column) position. A Lexer pulls code points from a Source and runs
a layered state machine: an outer indentation machine wrapping a token
recognizer, with dedicated sub-states for normal, raw and interpolated
string literals.

Both components are designed for interactive use. When the Source runs out
of bytes mid-token, Lex returns with LastResult() == LexExhausted and all
in-flight state (pushback buffer, partial token text, indentation stack,
interpolation flags) kept intact; feeding more bytes and calling Lex again
continues exactly where lexing stopped, producing the same token sequence
as a single pass over the whole input would have.

A minimal driver loop looks like this:

	src := front.NewReplSource("<REPL>")
	lx := front.NewLexer()
	for {
		tok, err := lx.Lex(src)
		if err != nil {
			// positional error; clear the failing side and resume
		}
		if tok == nil {
			switch lx.LastResult() {
			case front.LexExhausted:
				src.FeedLine(readMoreInput())
			case front.LexEOF:
				return
			}
			continue
		}
		consume(tok)
	}

Errors are positional. Decoding errors come from the Source as
*InvalidByteSeqError and are recovered by ReplSource.ClearBuffer; lexing errors
come from the Lexer as *LexerError and are recovered by Lexer.ClearBuffer.
Misusing the API (feeding a source after EOF, reading an errored source,
toggling the interpolation handshake outside an interpolated string) is a
programmer error and panics.

Neither type is safe for concurrent use; the whole chain is single-threaded
and cooperative by design.
*/
package front // import "github.com/dlarudgus20/ahafront"
