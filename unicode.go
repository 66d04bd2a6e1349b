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
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// Character classes used by the lexer. Identifiers follow the usual
// Unicode-derived scheme: letters and letter numbers may start one, and
// combining marks, digits, connector punctuation and format characters may
// continue one.
var (
	idStartTable = rangetable.Merge(
		unicode.Lu, unicode.Ll, unicode.Lt, unicode.Lm, unicode.Lo,
		unicode.Nl,
	)
	idContinueTable = rangetable.Merge(
		unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc, unicode.Cf,
	)
)

// isSeparator reports whether ch is horizontal whitespace (the Unicode Blank
// class): a tab or a Zs space separator. Line terminators are not separators.
func isSeparator(ch rune) bool {
	return ch == '\t' || unicode.Is(unicode.Zs, ch)
}

// isNewline reports whether ch terminates a line: LF, CR, VT, FF, NEL, LS
// or PS. The source reader collapses all of these to '\n' on intake.
func isNewline(ch rune) bool {
	switch ch {
	case '\n', '\r', '\v', '\f', 0x85, 0x2028, 0x2029:
		return true
	}
	return false
}

func isIdentifierFirstChar(ch rune) bool {
	return ch == '_' || unicode.Is(idStartTable, ch)
}

func isIdentifierChar(ch rune) bool {
	return isIdentifierFirstChar(ch) || unicode.Is(idContinueTable, ch)
}
