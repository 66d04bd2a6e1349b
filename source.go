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

import (
	"github.com/pkg/errors"
)

// NoChar is returned by ReadChar when no code point is available. Callers
// inspect State to tell a starved source (SourceExhausted) from a finished
// one (SourceEOF).
const NoChar rune = -1

// SourceState describes what a Source can deliver next.
type SourceState int

const (
	// SourceSome: undecoded input bytes remain queued.
	SourceSome SourceState = iota
	// SourceExhausted: everything fed so far has been consumed and EOF has
	// not been signaled; the producer should feed more bytes.
	SourceExhausted
	// SourceEOF: EOF was signaled and no bytes remain.
	SourceEOF
	// SourceError: an invalid byte sequence was encountered and not yet
	// cleared.
	SourceError
)

func (s SourceState) String() string {
	switch s {
	case SourceSome:
		return "some"
	case SourceExhausted:
		return "exhausted"
	case SourceEOF:
		return "eof"
	case SourceError:
		return "error"
	}
	return "unknown"
}

// A Source delivers code points to the lexer one at a time and retains
// everything it has delivered as a line-indexed text log, so that consumers
// can revisit any past character by position.
//
// Implementations are not safe for concurrent use; the lexer borrows the
// source exclusively for the duration of each Lex call.
type Source interface {
	// Name identifies the source in diagnostics.
	Name() string

	// ReadChar pops the next code point, appends it to the text log and
	// returns it together with the position it now occupies. It returns
	// NoChar with a nil error when the source is exhausted or at EOF, and
	// NoChar with a *InvalidByteSeqError when decoding fails.
	ReadChar() (rune, Position, error)

	// State reports what ReadChar can deliver next.
	State() SourceState

	// Char returns the already-accepted code point at pos.
	Char(pos Position) rune

	// LineSize returns the number of code points in the given line,
	// including its terminating '\n' if the line is complete.
	LineSize(line int) int

	// Endpoint returns the position one past the last accepted code point,
	// i.e. where the next one will go.
	Endpoint() Position
}

// ReplSource is a Source fed incrementally with raw bytes, typically one
// line of interactive input at a time. Bytes may arrive in arbitrary chunks,
// including in the middle of a UTF-8 sequence; decoding simply suspends
// until the rest of the sequence arrives.
type ReplSource struct {
	name string

	chars  []rune // accepted text, newline-canonicalized
	lines  []int  // chars index of each line start; never empty
	prevCR bool   // last decoded terminator was CR; elide a following LF

	input    []byte // fed, not yet decoded
	inputEnd bool   // FeedEOF was called
	failed   bool   // an invalid byte sequence is still buffered
}

var _ Source = (*ReplSource)(nil)

// NewReplSource returns an empty source named name. The name only shows up
// in diagnostics; "<REPL>" is customary for interactive sessions.
func NewReplSource(name string) *ReplSource {
	return &ReplSource{
		name:  name,
		lines: []int{0},
	}
}

// Name returns the diagnostic name of the source.
func (s *ReplSource) Name() string { return s.name }

// FeedBytes appends raw UTF-8 input. It panics if EOF was already signaled
// or the source is in SourceError.
func (s *ReplSource) FeedBytes(b []byte) {
	if s.failed {
		panic(errors.New("source has an error"))
	}
	if s.inputEnd {
		panic(errors.New("source was already fed EOF"))
	}
	s.input = append(s.input, b...)
}

// FeedLine appends one line of input plus its terminating newline.
func (s *ReplSource) FeedLine(line string) {
	s.FeedBytes(append([]byte(line), '\n'))
}

// FeedEOF signals that no further input will arrive. Calling it twice, or
// on an errored source, panics.
func (s *ReplSource) FeedEOF() {
	if s.failed {
		panic(errors.New("source has an error"))
	}
	if s.inputEnd {
		panic(errors.New("source was already fed EOF"))
	}
	s.inputEnd = true
}

// ReadChar decodes the next code point from the byte queue, appends it to
// the text log and returns it with its position. Line terminators are
// canonicalized: CR, CRLF, LF and the other Unicode line breaks all arrive
// as a single '\n'.
//
// When the queue is empty, or holds only the prefix of a multi-byte
// sequence, ReadChar returns NoChar with a nil error and leaves the bytes
// queued. When the queue holds bytes that cannot be valid UTF-8 the source
// transitions to SourceError and a *InvalidByteSeqError is returned; the
// caller is expected to ClearBuffer and resume. Reading from an errored
// source panics.
func (s *ReplSource) ReadChar() (rune, Position, error) {
	if s.failed {
		panic(errors.New("source has an error"))
	}

	ch, n, err := s.decode()
	if err == nil && n == 0 && len(s.input) > 0 && s.inputEnd {
		// EOF was signaled with a dangling partial sequence; it can never
		// be completed.
		err = &InvalidByteSeqError{Src: s, Pos: s.Endpoint()}
	}
	if err != nil {
		s.failed = true
		return NoChar, Position{}, err
	}
	if n == 0 {
		return NoChar, Position{}, nil
	}
	s.input = s.input[n:]

	if s.prevCR {
		s.prevCR = false
		if ch == '\n' {
			// second half of a CRLF pair; the CR already produced the '\n'
			return s.ReadChar()
		}
	}

	pos := s.Endpoint()
	if isNewline(ch) {
		if ch == '\r' {
			s.prevCR = true
		}
		s.chars = append(s.chars, '\n')
		s.lines = append(s.lines, len(s.chars))
		return '\n', pos, nil
	}
	s.chars = append(s.chars, ch)
	return ch, pos, nil
}

// decode reads one code point from the head of the byte queue without
// consuming it; n is the number of bytes it spans, or 0 when the queue is
// empty or ends mid-sequence. The decoder follows the RFC 3629 byte layout
// but does not reject over-long encodings or code points above U+10FFFF.
func (s *ReplSource) decode() (ch rune, n int, err error) {
	if len(s.input) == 0 {
		return 0, 0, nil
	}
	b0 := s.input[0]
	switch {
	case b0&0x80 == 0:
		return rune(b0), 1, nil
	case b0&0xe0 == 0xc0:
		ch, n = rune(b0&0x1f), 2
	case b0&0xf0 == 0xe0:
		ch, n = rune(b0&0x0f), 3
	case b0&0xf8 == 0xf0:
		ch, n = rune(b0&0x07), 4
	default:
		return 0, 0, &InvalidByteSeqError{Src: s, Pos: s.Endpoint()}
	}
	for i := 1; i < n; i++ {
		if i >= len(s.input) {
			return 0, 0, nil
		}
		b := s.input[i]
		if b&0xc0 != 0x80 {
			return 0, 0, &InvalidByteSeqError{Src: s, Pos: s.Endpoint()}
		}
		ch = ch<<6 | rune(b&0x3f)
	}
	return ch, n, nil
}

// State reports what ReadChar can deliver next.
func (s *ReplSource) State() SourceState {
	switch {
	case s.failed:
		return SourceError
	case len(s.input) > 0:
		return SourceSome
	case s.inputEnd:
		return SourceEOF
	}
	return SourceExhausted
}

// Char returns the accepted code point at pos. It panics when pos is out of
// range or the source is in SourceError.
func (s *ReplSource) Char(pos Position) rune {
	if s.failed {
		panic(errors.New("source has an error"))
	}
	if pos.Line < 0 || pos.Line >= len(s.lines) ||
		pos.Col < 0 || pos.Col >= s.LineSize(pos.Line) {
		panic(errors.Errorf("position %d:%d out of range", pos.Line, pos.Col))
	}
	return s.chars[s.lines[pos.Line]+pos.Col]
}

// LineSize returns the number of code points in line, counting the
// terminating '\n' of a complete line. It panics when line is out of range.
func (s *ReplSource) LineSize(line int) int {
	if line < 0 || line >= len(s.lines) {
		panic(errors.Errorf("line %d out of range", line))
	}
	end := len(s.chars)
	if line+1 < len(s.lines) {
		end = s.lines[line+1]
	}
	return end - s.lines[line]
}

// Endpoint returns the position one past the last accepted code point.
func (s *ReplSource) Endpoint() Position {
	last := len(s.lines) - 1
	return Position{last, len(s.chars) - s.lines[last]}
}

// ClearBuffer drops the undecoded byte queue and clears the error state.
// The accepted text log is kept; use it to recover from an invalid byte
// sequence and keep reading fresh input.
func (s *ReplSource) ClearBuffer() {
	s.input = s.input[:0]
	s.prevCR = false
	s.failed = false
}

// ClearAll resets the source to its initial state, dropping the accepted
// text log as well. Positions handed out before the call are meaningless
// afterwards.
func (s *ReplSource) ClearAll() {
	s.ClearBuffer()
	s.chars = s.chars[:0]
	s.lines = s.lines[:0]
	s.lines = append(s.lines, 0)
	s.inputEnd = false
}
