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
	"strings"

	"github.com/pkg/errors"
)

// LexResult reports how the previous Lex call ended.
type LexResult int

const (
	// LexDone: a token was produced.
	LexDone LexResult = iota
	// LexExhausted: the source ran out of bytes; feed it and call Lex again.
	LexExhausted
	// LexEOF: the source reached EOF with no token in flight.
	LexEOF
	// LexFailed: the lexer raised an error and needs ClearBuffer or ClearAll.
	LexFailed
)

func (r LexResult) String() string {
	switch r {
	case LexDone:
		return "done"
	case LexExhausted:
		return "exhausted"
	case LexEOF:
		return "eof"
	case LexFailed:
		return "error"
	}
	return "unknown"
}

// Outer lexer states. The indent machine runs at the start of every line,
// the token recognizer in between, and afterComment guards the tail of a
// line that closed a multi-line comment.
type lexState int

const (
	stateIndent lexState = iota
	stateAny
	stateAfterComment
	stateError
)

// family is the token-recognition sub-state selected by the first code point
// of a token. The comment flags live alongside it because '/' arms both a
// punctuator and the two comment forms until the second character decides.
type family int

const (
	famNone family = iota
	famIdentifier
	famUnknownNumber // leading '0', radix not chosen yet
	famBinary
	famOctal
	famDecimal
	famHex
	famPunct
	famNormalString
	famRawString
	famInterpolString
)

const punctChars = "~!@$%^&*()-=+[];:,./<>?|"

// punctTable is the fixed punctuator set, matched by maximal munch. Order is
// irrelevant; matching always picks the longest entry.
var punctTable = []string{
	"~", "!", "@", "$", "%", "^", "&", "*", "(", ")", "-", "=", "+",
	"[", "]", ";", ":", ",", ".", "/", "<", ">", "?",
	"++", "--", ">>", "<<", "==", "!=", "<=", ">=", "&&", "||",
	"+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=", "<<=", ">>=", ":=:",
	"::", "->", "=>", "|>", "&>", "<&", "?.",
}

var keywordTable = []string{
	"module", "import", "class", "interface", "enum", "static", "final",
	"public", "private", "protected", "internal",
	"func", "in", "let", "var", "this", "event", "curry", "uncurry",
	"byte", "sbyte", "short", "ushort", "int", "uint", "long", "ulong",
	"bool", "object", "string",
}

// A Lexer converts the code points of a Source into tokens. It owns no input
// beyond a small pushback buffer; all accepted text lives in the Source.
//
// A Lexer is not safe for concurrent use.
type Lexer struct {
	buf    []rune   // pushed-back code points, consumed before the source
	bufBeg Position // position of buf[0]

	tok    []rune   // text of the token being assembled
	tokBeg Position // position of tok[0]

	state lexState

	indentStr []rune // blank prefix defining the current nesting
	indentPos []int  // prefix length per enclosing block; base entry is 0

	fam          family
	lineComment  bool
	blockComment bool
	blockNewline bool // block comment interior contained a '\n'
	blockClosing bool // previous comment char was a closing-candidate '*'
	commentedOut bool

	// indices into tok while a number literal is recognized; -1 if unseen
	idxFloatSep   int
	idxFloatExp   int
	idxNumPostfix int

	interpolAfter    bool // between InterpolStringStart/Mid and its '}'
	interpolBlockEnd bool // '}' resumes string mode

	lastResult LexResult

	contextual []string
}

// NewLexer returns a lexer positioned at the start of a line, expecting
// input.
func NewLexer() *Lexer {
	return &Lexer{
		state:      stateIndent,
		indentPos:  []int{0},
		lastResult: LexExhausted,
	}
}

// ClearBuffer drops the pushback buffer and the token in flight and returns
// the lexer to the start-of-line state. It is the recovery step after a
// *LexerError; the indentation stack survives so that subsequent lines keep
// their nesting.
func (l *Lexer) ClearBuffer() {
	l.buf = nil
	l.tok = nil
	l.state = stateIndent
	l.fam = famNone
	l.lineComment, l.blockComment = false, false
	l.blockNewline, l.blockClosing = false, false
	l.commentedOut = false
}

// ClearAll additionally resets the interpolation handshake and the last
// result.
func (l *Lexer) ClearAll() {
	l.ClearBuffer()
	l.interpolAfter = false
	l.interpolBlockEnd = false
	l.lastResult = LexExhausted
}

// LastResult reports how the previous Lex call ended. It tells a starved
// source (LexExhausted) apart from a finished one (LexEOF) when Lex returns
// no token.
func (l *Lexer) LastResult() LexResult { return l.lastResult }

// SetContextualKeywords installs the identifiers to classify as
// ContextualKeyword. Matching is by case-sensitive equality and takes
// precedence over the reserved keyword set.
func (l *Lexer) SetContextualKeywords(keywords []string) {
	l.contextual = append([]string(nil), keywords...)
}

// EnableInterpolatedBlockEnd controls whether a '}' resumes string mode in
// an interpolated literal. The parser disables it while lexing the embedded
// expression and re-enables it once its bracket balancer knows the matching
// '}' is next. Calling it outside an interpolated literal panics.
func (l *Lexer) EnableInterpolatedBlockEnd(enable bool) {
	if !l.interpolAfter {
		panic(errors.New("interpolated block end can be toggled only during an interpolated string"))
	}
	l.interpolBlockEnd = enable
}

// Lex pulls code points from src until a token is recognized or src cannot
// supply the next one. It returns (nil, nil) when no token is available;
// LastResult tells whether the caller should feed more bytes (LexExhausted)
// or stop (LexEOF). When src reaches EOF mid-token a synthetic terminator is
// processed so the in-flight token can close naturally.
//
// On a *LexerError the lexer becomes unusable until ClearBuffer or ClearAll.
// On a decoding error from src the lexer is untouched; clear the source and
// call Lex again. Calling Lex on an errored lexer panics.
func (l *Lexer) Lex(src Source) (*Token, error) {
	if l.state == stateError {
		panic(errors.New("lexer has an error"))
	}

	var ret *Token
	injected := false

	for ret == nil {
		var (
			ch  rune
			pos Position
		)
		done := false
		skip := false
		synthetic := false

		if len(l.buf) > 0 {
			ch = l.buf[0]
			pos = l.bufBeg
			l.buf = l.buf[1:]
			l.bufBeg = l.bufBeg.Next(src)
		} else {
			c, p, err := src.ReadChar()
			if err != nil {
				return nil, err
			}
			if c == NoChar {
				if src.State() != SourceEOF {
					l.lastResult = LexExhausted
					return nil, nil
				}
				if len(l.tok) == 0 {
					l.lastResult = LexEOF
					return nil, nil
				}
				end := src.Endpoint().Prev(src)
				if injected {
					// the token in flight has no terminator it could ever
					// meet; string and block-comment bodies end up here
					return nil, l.fail(src, 0, true, end, "unexpected end of file")
				}
				injected = true
				synthetic = true
				skip = true
				ch = 0
				pos = end
			} else {
				ch, pos = c, p
			}
		}

		if len(l.tok) == 0 {
			l.tokBeg = pos
		}

		switch l.state {
		case stateIndent:
			switch {
			case ch == '\n' || synthetic:
				// blank line
				ret = l.emit(src, Newline{}, pos)
				done, skip = true, true

			case !isSeparator(ch):
				sz := len(l.tok)
				switch {
				case sz == len(l.indentStr):
					if !runesEqual(l.tok, l.indentStr) {
						return nil, l.fail(src, ch, skip, l.tokBeg, "invalid indentation")
					}
				case sz < len(l.indentStr):
					i := len(l.indentPos) - 1
					for {
						if sz > l.indentPos[i] {
							return nil, l.fail(src, ch, skip, l.tokBeg, "invalid indentation")
						}
						if sz == l.indentPos[i] {
							if !runesEqual(l.tok, l.indentStr[:sz]) {
								return nil, l.fail(src, ch, skip, l.tokBeg, "invalid indentation")
							}
							break
						}
						if i == 0 {
							return nil, l.fail(src, ch, skip, l.tokBeg, "invalid indentation")
						}
						i--
					}
					l.indentPos = l.indentPos[:i+1]
					l.indentStr = append(l.indentStr[:0], l.tok...)
				default: // sz > len(l.indentStr): deeper nesting
					if !runesEqual(l.tok[:len(l.indentStr)], l.indentStr) {
						return nil, l.fail(src, ch, skip, l.tokBeg, "invalid indentation")
					}
					l.indentPos = append(l.indentPos, sz)
					l.indentStr = append(l.indentStr[:0], l.tok...)
				}
				ret = l.emit(src, Indent{Level: len(l.indentPos)}, pos)
				done = true
				l.state = stateAny
			}

		case stateAny:
			if len(l.tok) == 0 {
				switch {
				case isSeparator(ch):
					skip = true
				case ch == '\n':
					ret = l.emit(src, Newline{}, pos)
					done, skip = true, true
					l.state = stateIndent
				default:
					l.idxFloatSep, l.idxFloatExp, l.idxNumPostfix = -1, -1, -1
					l.lineComment, l.blockComment = false, false
					l.blockNewline, l.blockClosing = false, false
					l.fam = famNone

					switch {
					case isIdentifierFirstChar(ch):
						l.fam = famIdentifier
					case ch == '0':
						l.fam = famUnknownNumber
					case '1' <= ch && ch <= '9':
						l.fam = famDecimal
					case strings.ContainsRune(punctChars, ch):
						l.fam = famPunct
						switch ch {
						case '/':
							l.lineComment = true
							l.blockComment = true
						case '@':
							l.fam = famRawString
						}
					case ch == '#':
						l.lineComment = true
					case ch == '\'' || ch == '"':
						l.fam = famNormalString
					case ch == '`':
						l.fam = famInterpolString
					case l.interpolBlockEnd && ch == '}':
						l.fam = famInterpolString
					default:
						return nil, l.fail(src, ch, skip, pos, "unexpected character")
					}
				}
			} else {
				// second character decides between '/', '//', '/*' and '#'
				if l.lineComment && len(l.tok) == 1 {
					switch l.tok[0] {
					case '#':
						l.commentedOut = true
					case '/':
						switch ch {
						case '*':
							l.lineComment = false
							l.commentedOut = true
						case '/':
							l.blockComment = false
							l.commentedOut = true
						default:
							l.lineComment = false
							l.blockComment = false
						}
					}
				}

				commentedOut := l.commentedOut

				if l.lineComment && ch == '\n' {
					l.lineComment = false
					l.commentedOut = false
					ret = l.emit(src, Newline{}, pos)
					done, skip = true, true
					l.state = stateIndent
				} else if l.blockComment {
					switch {
					case ch == '*' && len(l.tok) >= 2:
						l.blockClosing = true
					case l.blockClosing && ch == '/':
						l.blockComment = false
						l.blockClosing = false
						l.commentedOut = false
						if l.blockNewline {
							l.state = stateAfterComment
						}
						l.tok = l.tok[:0]
						l.tokBeg = pos
						skip = true
					default:
						if ch == '\n' {
							l.blockNewline = true
						}
						l.blockClosing = false
					}
				}

				if !commentedOut {
					if l.fam == famRawString && len(l.tok) == 1 && ch != '\'' && ch != '"' {
						// '@' not followed by a quote is an ordinary punctuator
						l.fam = famPunct
					}

					switch l.fam {
					case famRawString:
						if len(l.tok) >= 3 && l.tok[len(l.tok)-1] == l.tok[1] && ch != l.tok[1] {
							delim := l.tok[1]
							i := len(l.tok) - 1
							for l.tok[i] == delim {
								i--
							}
							// close only on an odd-length delimiter run;
							// an even run is all doubled (escaped) delimiters
							if (len(l.tok)-i)%2 == 0 {
								data := RawString{Delim: delim, Text: string(l.tok[2 : len(l.tok)-1])}
								ret = l.emit(src, data, pos)
								done = true
							}
						}

					case famNormalString:
						if ch != ' ' && (isSeparator(ch) || isNewline(ch)) {
							return nil, l.fail(src, ch, skip, pos,
								"non-raw string literal cannot contain separator or newline character except space")
						}
						if ch == l.tok[0] && l.tok[len(l.tok)-1] != '\\' {
							data := NormalString{Delim: l.tok[0], Text: string(l.tok[1:])}
							ret = l.emit(src, data, pos)
							done, skip = true, true
						}

					case famInterpolString:
						if ch != ' ' && (isSeparator(ch) || isNewline(ch)) {
							return nil, l.fail(src, ch, skip, pos,
								"non-raw string literal cannot contain separator or newline character except space")
						}
						last := l.tok[len(l.tok)-1]
						switch {
						case len(l.tok) == 1 && l.tok[0] == '`':
							// opening delimiter alone; body starts next
						case ch == '`' && last != '\\':
							data := InterpolStringEnd{Text: string(l.tok[1:])}
							ret = l.emit(src, data, pos)
							l.interpolAfter = false
							l.interpolBlockEnd = false
							done, skip = true, true
						case last == '$' && ch == '{':
							text := string(l.tok[1 : len(l.tok)-1])
							if l.tok[0] == '`' {
								ret = l.emit(src, InterpolStringStart{Text: text}, pos)
								l.interpolAfter = true
								l.interpolBlockEnd = true
							} else { // continuation opened by '}'
								ret = l.emit(src, InterpolStringMid{Text: text}, pos)
							}
							done, skip = true, true
						}

					case famIdentifier:
						if !isIdentifierChar(ch) {
							text := string(l.tok)
							var data TokenData
							switch {
							case containsString(l.contextual, text):
								data = ContextualKeyword{Text: text}
							case containsString(keywordTable, text):
								data = Keyword{Text: text}
							default:
								data = Identifier{Text: text}
							}
							ret = l.emit(src, data, pos)
							done = true
						}

					case famUnknownNumber:
						switch {
						case ch == 'b' || ch == 'B':
							l.fam = famBinary
						case ch == 'c' || ch == 'C':
							l.fam = famOctal
						case ch == 'x' || ch == 'X':
							l.fam = famHex
						case ch == 'd' || ch == 'D' || ('0' <= ch && ch <= '9'):
							l.fam = famDecimal
						case ch == '.' || ch == 'e':
							// "0." and "0e…" are decimal floats; reprocess ch
							// as part of the number body
							l.fam = famDecimal
							t, d, err := l.continueNumber(src, ch, pos, skip)
							if err != nil {
								return nil, err
							}
							ret, done = t, d
						case isIdentifierFirstChar(ch):
							l.fam = famDecimal
							l.idxNumPostfix = 1
						default:
							return nil, l.fail(src, ch, skip, pos, "unexpected character")
						}

					case famBinary, famOctal, famDecimal, famHex:
						t, d, err := l.continueNumber(src, ch, pos, skip)
						if err != nil {
							return nil, err
						}
						ret, done = t, d

					case famPunct:
						if !strings.ContainsRune(punctChars, ch) {
							done = true
						}
						matched, candidates := matchPunct(l.tok)
						if done || candidates == 0 {
							if matched == "" {
								return nil, l.fail(src, ch, skip, l.tokBeg, "unexpected character")
							}
							end := l.tokBeg
							for range matched {
								end = end.Next(src)
							}
							ret = &Token{Src: src, Beg: l.tokBeg, End: end, Data: Punct{Text: matched}}
							l.tok = append(l.tok[:0], l.tok[len(matched):]...)
							l.tokBeg = end
							done = true
						}
					}
				}
			}

		case stateAfterComment:
			switch {
			case ch == '\n':
				ret = l.emit(src, Newline{}, pos)
				done, skip = true, true
				l.state = stateIndent
			case !isSeparator(ch):
				return nil, l.fail(src, ch, skip, pos,
					"the line which contains the end of multi-line comment must be empty")
			}
		}

		if !skip {
			l.tok = append(l.tok, ch)
		}
		if done {
			l.revert()
		}
	}

	l.lastResult = LexDone
	return ret, nil
}

// emit builds a token spanning tokBeg..end and resets the in-flight text so
// that whatever the current iteration appends afterwards becomes the start
// of the next token.
func (l *Lexer) emit(src Source, data TokenData, end Position) *Token {
	t := &Token{Src: src, Beg: l.tokBeg, End: end, Data: data}
	l.tok = l.tok[:0]
	l.tokBeg = end
	return t
}

// revert pushes the in-flight text back in front of the pushback buffer so
// the next iterations re-consume it.
func (l *Lexer) revert() {
	l.bufBeg = l.tokBeg
	if len(l.tok) > 0 {
		l.buf = append(l.tok, l.buf...)
		l.tok = nil
	}
}

// fail reverts the in-flight token into the pushback buffer, puts the lexer
// in its error state and returns the positional error. ClearBuffer drops the
// reverted text.
func (l *Lexer) fail(src Source, ch rune, skip bool, pos Position, msg string) error {
	if !skip {
		l.tok = append(l.tok, ch)
	}
	l.revert()
	l.state = stateError
	l.lastResult = LexFailed
	return &LexerError{Src: src, Pos: pos, Msg: msg}
}

// matchPunct returns the longest punctuator the accumulated text begins
// with, and the number of table entries of which the text is a strict
// prefix (i.e. how many longer matches are still possible).
func matchPunct(tok []rune) (matched string, candidates int) {
	for _, p := range punctTable {
		n := len(p)
		if n > len(tok) {
			n = len(tok)
		}
		eq := true
		for i := 0; i < n; i++ {
			if tok[i] != rune(p[i]) {
				eq = false
				break
			}
		}
		if !eq {
			continue
		}
		if len(tok) >= len(p) {
			if len(p) >= len(matched) {
				matched = p
			}
		} else {
			candidates++
		}
	}
	return matched, candidates
}

func runesEqual(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func containsString(list []string, s string) bool {
	for _, e := range list {
		if e == s {
			return true
		}
	}
	return false
}
