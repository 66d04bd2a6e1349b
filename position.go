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

// A Position locates a code point within a Source as a zero-based
// (line, column) pair. Lines are the canonical lines of the Source text log;
// the terminating '\n' of a line counts as its last column.
type Position struct {
	Line int
	Col  int
}

// Next returns the position immediately following p in src, wrapping to the
// start of the next line past the last column.
func (p Position) Next(src Source) Position {
	if p.Col+1 < src.LineSize(p.Line) {
		return Position{p.Line, p.Col + 1}
	}
	return Position{p.Line + 1, 0}
}

// Prev returns the position immediately preceding p in src, wrapping to the
// last column of the previous line at column zero.
func (p Position) Prev(src Source) Position {
	if p.Col == 0 {
		return Position{p.Line - 1, src.LineSize(p.Line-1) - 1}
	}
	return Position{p.Line, p.Col - 1}
}

// Before reports whether p precedes q in reading order.
func (p Position) Before(q Position) bool {
	return p.Line < q.Line || (p.Line == q.Line && p.Col < q.Col)
}
