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

package front

import "fmt"

// PositionalError is implemented by errors that point at a location within a
// Source. The rendered message has the shape
//
//	{name}:{line+1}:{col+1}: {message}
//
// where line and column are converted from their internal zero-based form.
type PositionalError interface {
	error
	Source() Source
	Position() Position
}

// InvalidByteSeqError reports a byte sequence that is not valid UTF-8. The
// position is the endpoint of the source text at the time of the error, i.e.
// where the decoded code point would have gone.
//
// The source that produced it stays in SourceError until ClearBuffer drops
// the offending bytes.
type InvalidByteSeqError struct {
	Src Source
	Pos Position
}

func (e *InvalidByteSeqError) Error() string {
	return fmt.Sprintf("%s:%d:%d: invalid byte sequence",
		e.Src.Name(), e.Pos.Line+1, e.Pos.Col+1)
}

// Source returns the source the invalid bytes were fed to.
func (e *InvalidByteSeqError) Source() Source { return e.Src }

// Position returns the position the failed code point would have occupied.
func (e *InvalidByteSeqError) Position() Position { return e.Pos }

// LexerError reports ill-formed input rejected by the lexer: invalid
// indentation, an unexpected character, an unterminated number, a forbidden
// character inside a non-raw string, or trailing text on the line that closes
// a multi-line comment.
//
// The lexer that produced it stays unusable until ClearBuffer or ClearAll.
type LexerError struct {
	Src Source
	Pos Position
	Msg string
}

func (e *LexerError) Error() string {
	return fmt.Sprintf("%s:%d:%d: lexer error: %s",
		e.Src.Name(), e.Pos.Line+1, e.Pos.Col+1, e.Msg)
}

// Source returns the source whose text was being lexed.
func (e *LexerError) Source() Source { return e.Src }

// Position returns the position of the offending text.
func (e *LexerError) Position() Position { return e.Pos }
