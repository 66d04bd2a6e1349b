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

// Number literal recognition. After the radix family is chosen, each body
// character either extends the literal or terminates it; three indices into
// the accumulated text mark the float separator, the exponent marker and
// the start of the postfix. The digit groups are sliced out of the text only
// at termination, so suspensions mid-literal cost nothing.

// continueNumber processes one code point of a number literal body. It
// returns the finished token when ch terminates the literal, or an error for
// a bare radix prefix with no digits.
func (l *Lexer) continueNumber(src Source, ch rune, pos Position, skip bool) (*Token, bool, error) {
	done := false

	if l.idxNumPostfix == -1 {
		switch {
		case l.isRadixDigit(ch):
			// extends the current digit group
		case ch == '.':
			if l.idxFloatSep == -1 && l.idxFloatExp == -1 {
				l.idxFloatSep = len(l.tok)
			} else {
				done = true
			}
		case l.idxFloatExp == -1 && l.isExponentChar(ch):
			l.idxFloatExp = len(l.tok)
		case l.idxFloatExp == len(l.tok)-1 && isIdentifierChar(ch):
			// the marker seen last turn was not an exponent after all;
			// it opens the postfix instead
			l.idxNumPostfix = l.idxFloatExp
			l.idxFloatExp = -1
		case isIdentifierFirstChar(ch):
			l.idxNumPostfix = len(l.tok)
		default:
			done = true
		}

		if done && len(l.tok) == 2 && l.tok[0] == '0' && isRadixPrefix(l.tok[1]) {
			return nil, false, l.fail(src, ch, skip, pos, "unexpected end of number literal")
		}
	} else if !isIdentifierChar(ch) {
		done = true
	}

	if !done {
		return nil, false, nil
	}
	return l.emitNumber(src, pos), true, nil
}

// emitNumber slices the accumulated text into the integer, fraction,
// exponent and postfix groups and builds the Number token. A radix prefix
// (0b, 0c, 0d, 0x) is stripped from the integer group; a leading '0' without
// one is kept.
func (l *Lexer) emitNumber(src Source, pos Position) *Token {
	size := len(l.tok)
	beg1, end1 := 0, size
	beg2, end2 := end1, end1
	beg3, end3 := end1, end1
	beg4 := end1

	isFloat := false

	if size >= 3 && l.tok[0] == '0' && isRadixPrefix(l.tok[1]) {
		beg1 = 2
	}
	if l.idxFloatSep != -1 {
		isFloat = true
		end1 = l.idxFloatSep
		beg2 = end1 + 1
	}
	if l.idxFloatExp != -1 {
		isFloat = true
		end2 = l.idxFloatExp
		beg3 = end2 + 1
		if beg2 > end2 {
			end1 = end2
			beg2 = end2
		}
	}
	if l.idxNumPostfix != -1 {
		end3 = l.idxNumPostfix
		beg4 = end3
		if beg3 > end3 {
			end2 = end3
			beg3 = end3
			if beg2 > end2 {
				end1 = end2
				beg2 = end2
			}
		}
	}

	data := Number{
		Radix:    l.radix(),
		Integer:  numGroup(l.tok, beg1, end1),
		Fraction: numGroup(l.tok, beg2, end2),
		Exponent: numGroup(l.tok, beg3, end3),
		Postfix:  numGroup(l.tok, beg4, size),
		IsFloat:  isFloat,
	}
	return l.emit(src, data, pos)
}

// numGroup slices one digit group out of tok. A reversed range (start past
// end) reads through to the end of the text.
func numGroup(tok []rune, beg, end int) string {
	if end < beg {
		end = len(tok)
	}
	return string(tok[beg:end])
}

func (l *Lexer) radix() int {
	switch l.fam {
	case famBinary:
		return 2
	case famOctal:
		return 8
	case famHex:
		return 16
	}
	return 10
}

func (l *Lexer) isRadixDigit(ch rune) bool {
	switch l.fam {
	case famBinary:
		return ch == '0' || ch == '1'
	case famOctal:
		return '0' <= ch && ch <= '7'
	case famDecimal:
		return '0' <= ch && ch <= '9'
	case famHex:
		return '0' <= ch && ch <= '9' ||
			'a' <= ch && ch <= 'f' || 'A' <= ch && ch <= 'F'
	}
	return false
}

// isExponentChar reports whether ch marks an exponent for the current radix:
// 'e'/'E' for decimal literals, 'p'/'P' otherwise ('e' is a hex digit).
func (l *Lexer) isExponentChar(ch rune) bool {
	if l.fam == famDecimal {
		return ch == 'e' || ch == 'E'
	}
	return ch == 'p' || ch == 'P'
}

func isRadixPrefix(ch rune) bool {
	switch ch {
	case 'b', 'B', 'c', 'C', 'd', 'D', 'x', 'X':
		return true
	}
	return false
}
