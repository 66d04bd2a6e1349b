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
	"fmt"
	"strings"
)

// A Token is one classified unit of source text. Beg is the position of its
// first code point and End the position of the code point that terminated
// it, so Beg <= End and consecutive tokens never overlap.
type Token struct {
	Src Source
	Beg Position
	End Position

	Data TokenData
}

func (t *Token) String() string {
	return fmt.Sprintf("%d:%d: %s", t.Beg.Line+1, t.Beg.Col+1, t.Data)
}

// TokenData is the payload of a Token. It is a closed set of small value
// types; switch on the concrete type to consume a token stream.
type TokenData interface {
	fmt.Stringer
	tokenData()
}

// Indent opens a logical line; Level is the block nesting depth at its first
// non-blank character, counting the top level as 1.
type Indent struct {
	Level int
}

// Newline closes a logical line. Blank lines produce a Newline with no
// preceding Indent; a comment-only line still opens with an Indent.
type Newline struct{}

// Punct is an operator or delimiter from the fixed punctuator table, matched
// longest-first.
type Punct struct {
	Text string
}

// Keyword is an identifier from the reserved word set.
type Keyword struct {
	Text string
}

// ContextualKeyword is an identifier from the caller-installed contextual
// set; see Lexer.SetContextualKeywords.
type ContextualKeyword struct {
	Text string
}

// Identifier is a plain identifier.
type Identifier struct {
	Text string
}

// Number is a numeric literal split into its textual digit groups. No
// numeric interpretation happens at lex time: the groups keep exactly the
// digits written, minus the radix prefix.
type Number struct {
	Radix    int
	Integer  string
	Fraction string
	Exponent string
	Postfix  string
	IsFloat  bool
}

// NormalString is a single- or double-quoted literal. Text is the interior
// with the outer quotes stripped; escape sequences are not decoded here.
type NormalString struct {
	Delim rune
	Text  string
}

// RawString is an @-quoted literal. Text is verbatim interior, including any
// newlines; a doubled delimiter stands for one literal delimiter and is kept
// doubled in Text.
type RawString struct {
	Delim rune
	Text  string
}

// InterpolStringStart is the opening fragment of an interpolated literal,
// ending at the first "${".
type InterpolStringStart struct {
	Text string
}

// InterpolStringMid is a fragment between "}" and the next "${".
type InterpolStringMid struct {
	Text string
}

// InterpolStringEnd is the fragment closing an interpolated literal. A
// literal without any "${" produces a single InterpolStringEnd.
type InterpolStringEnd struct {
	Text string
}

func (Indent) tokenData()              {}
func (Newline) tokenData()             {}
func (Punct) tokenData()               {}
func (Keyword) tokenData()             {}
func (ContextualKeyword) tokenData()   {}
func (Identifier) tokenData()          {}
func (Number) tokenData()              {}
func (NormalString) tokenData()        {}
func (RawString) tokenData()           {}
func (InterpolStringStart) tokenData() {}
func (InterpolStringMid) tokenData()   {}
func (InterpolStringEnd) tokenData()   {}

func (t Indent) String() string  { return fmt.Sprintf("indent { %d }", t.Level) }
func (t Newline) String() string { return "newline {}" }
func (t Punct) String() string   { return fmt.Sprintf("punct { '%s' }", t.Text) }
func (t Keyword) String() string { return fmt.Sprintf("keyword { '%s' }", t.Text) }
func (t ContextualKeyword) String() string {
	return fmt.Sprintf("contextual keyword { '%s' }", t.Text)
}
func (t Identifier) String() string { return fmt.Sprintf("identifier { '%s' }", t.Text) }

func (t Number) String() string {
	if !t.IsFloat {
		return fmt.Sprintf("integer [radix:%d] { %s%s }", t.Radix, t.Integer, t.Postfix)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "float [radix:%d] { %s", t.Radix, t.Integer)
	if t.Fraction != "" {
		b.WriteByte('.')
		b.WriteString(t.Fraction)
	}
	if t.Exponent != "" {
		if t.Radix == 10 {
			b.WriteByte('e')
		} else {
			b.WriteByte('p')
		}
		b.WriteString(t.Exponent)
	}
	b.WriteString(t.Postfix)
	b.WriteString(" }")
	return b.String()
}

func (t NormalString) String() string {
	return fmt.Sprintf("string [%c] { %q }", t.Delim, t.Text)
}
func (t RawString) String() string {
	return fmt.Sprintf("raw string [%c] { %q }", t.Delim, t.Text)
}
func (t InterpolStringStart) String() string {
	return fmt.Sprintf("interpol begin { %q }", t.Text)
}
func (t InterpolStringMid) String() string {
	return fmt.Sprintf("interpol mid { %q }", t.Text)
}
func (t InterpolStringEnd) String() string {
	return fmt.Sprintf("interpol end { %q }", t.Text)
}
