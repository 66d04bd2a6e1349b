package front_test

import (
	"reflect"
	"testing"

	front "github.com/dlarudgus20/ahafront"
)

type lexedToken struct {
	beg, end front.Position
	data     front.TokenData
}

// lexAll feeds input in chunks of n bytes (all at once when n <= 0), then
// EOF, and returns every produced token. It also checks position
// monotonicity along the way.
func lexAll(t *testing.T, input string, n int) []lexedToken {
	t.Helper()
	src := front.NewReplSource("test")
	lx := front.NewLexer()

	b := []byte(input)
	var out []lexedToken
	prevEnd := front.Position{}
	for {
		tok, err := lx.Lex(src)
		if err != nil {
			t.Fatalf("input %q: unexpected lex error: %v", input, err)
		}
		if tok != nil {
			if tok.End.Before(tok.Beg) {
				t.Fatalf("input %q: token %v ends before it begins", input, tok.Data)
			}
			if tok.Beg.Before(prevEnd) {
				t.Fatalf("input %q: token %v overlaps its predecessor", input, tok.Data)
			}
			prevEnd = tok.End
			out = append(out, lexedToken{tok.Beg, tok.End, tok.Data})
			continue
		}
		switch lx.LastResult() {
		case front.LexExhausted:
			if len(b) > 0 {
				k := n
				if k <= 0 || k > len(b) {
					k = len(b)
				}
				src.FeedBytes(b[:k])
				b = b[k:]
			} else {
				src.FeedEOF()
			}
		case front.LexEOF:
			return out
		default:
			t.Fatalf("input %q: unexpected result %v", input, lx.LastResult())
		}
	}
}

func tokenData(toks []lexedToken) []front.TokenData {
	out := make([]front.TokenData, len(toks))
	for i, tok := range toks {
		out[i] = tok.data
	}
	return out
}

func expectTokens(t *testing.T, input string, want []front.TokenData) {
	t.Helper()
	got := tokenData(lexAll(t, input, 0))
	if !reflect.DeepEqual(got, want) {
		t.Errorf("input %q:\ngot  %v\nwant %v", input, got, want)
	}
}

// lexUntilError drives the lexer over input until it raises and returns the
// error.
func lexUntilError(t *testing.T, input string) *front.LexerError {
	t.Helper()
	src := front.NewReplSource("test")
	src.FeedBytes([]byte(input))
	src.FeedEOF()
	lx := front.NewLexer()
	for {
		tok, err := lx.Lex(src)
		if err != nil {
			lexErr, ok := err.(*front.LexerError)
			if !ok {
				t.Fatalf("input %q: unexpected error type %T: %v", input, err, err)
			}
			if lx.LastResult() != front.LexFailed {
				t.Fatalf("input %q: LastResult = %v, want %v",
					input, lx.LastResult(), front.LexFailed)
			}
			return lexErr
		}
		if tok == nil {
			t.Fatalf("input %q lexed without error", input)
		}
	}
}

func TestIdentifiers(t *testing.T) {
	expectTokens(t, "hello world\n", []front.TokenData{
		front.Indent{Level: 1},
		front.Identifier{Text: "hello"},
		front.Identifier{Text: "world"},
		front.Newline{},
	})
	expectTokens(t, "_x x2 변수\n", []front.TokenData{
		front.Indent{Level: 1},
		front.Identifier{Text: "_x"},
		front.Identifier{Text: "x2"},
		front.Identifier{Text: "변수"},
		front.Newline{},
	})
}

func TestKeywords(t *testing.T) {
	expectTokens(t, "func foo in let functor\n", []front.TokenData{
		front.Indent{Level: 1},
		front.Keyword{Text: "func"},
		front.Identifier{Text: "foo"},
		front.Keyword{Text: "in"},
		front.Keyword{Text: "let"},
		front.Identifier{Text: "functor"},
		front.Newline{},
	})
}

func TestContextualKeywords(t *testing.T) {
	src := front.NewReplSource("test")
	src.FeedBytes([]byte("async func async\n"))
	src.FeedEOF()
	lx := front.NewLexer()
	lx.SetContextualKeywords([]string{"async", "await"})

	var got []front.TokenData
	for {
		tok, err := lx.Lex(src)
		if err != nil {
			t.Fatal(err)
		}
		if tok == nil {
			break
		}
		got = append(got, tok.Data)
	}
	want := []front.TokenData{
		front.Indent{Level: 1},
		front.ContextualKeyword{Text: "async"},
		front.Keyword{Text: "func"},
		front.ContextualKeyword{Text: "async"},
		front.Newline{},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestNumbers(t *testing.T) {
	for _, td := range []struct {
		input string
		num   front.Number
	}{
		{"42\n", front.Number{Radix: 10, Integer: "42"}},
		{"0d42\n", front.Number{Radix: 10, Integer: "42"}},
		// only a real radix prefix is stripped; a bare leading '0' stays
		{"007\n", front.Number{Radix: 10, Integer: "007"}},
		{"0b101\n", front.Number{Radix: 2, Integer: "101"}},
		{"0c17\n", front.Number{Radix: 8, Integer: "17"}},
		{"0xFF\n", front.Number{Radix: 16, Integer: "FF"}},
		{"0xFFu\n", front.Number{Radix: 16, Integer: "FF", Postfix: "u"}},
		{"12abc\n", front.Number{Radix: 10, Integer: "12", Postfix: "abc"}},
		// a postfix right after the leading '0' leaves the integer "0"
		{"0u8\n", front.Number{Radix: 10, Integer: "0", Postfix: "u8"}},
		{"3.14\n", front.Number{Radix: 10, Integer: "3", Fraction: "14", IsFloat: true}},
		{"0.\n", front.Number{Radix: 10, Integer: "0", IsFloat: true}},
		{"0.5\n", front.Number{Radix: 10, Integer: "0", Fraction: "5", IsFloat: true}},
		{"1e9\n", front.Number{Radix: 10, Integer: "1", Exponent: "9", IsFloat: true}},
		{"3.14e10\n", front.Number{Radix: 10, Integer: "3", Fraction: "14", Exponent: "10", IsFloat: true}},
		{"0xFFp2\n", front.Number{Radix: 16, Integer: "FF", Exponent: "2", IsFloat: true}},
		{"0x1.8p3\n", front.Number{Radix: 16, Integer: "1", Fraction: "8", Exponent: "3", IsFloat: true}},
		// an identifier character right after the 'e' retracts the exponent
		// marker; the 'e' opens the postfix instead
		{"1ex\n", front.Number{Radix: 10, Integer: "1", Exponent: "", Postfix: "ex"}},
		{"1e5x\n", front.Number{Radix: 10, Integer: "1", Exponent: "5", Postfix: "x", IsFloat: true}},
	} {
		expectTokens(t, td.input, []front.TokenData{
			front.Indent{Level: 1},
			td.num,
			front.Newline{},
		})
	}
}

func TestNumberEndsAtSecondSeparator(t *testing.T) {
	// "1.5.2" lexes as 1.5 '.' 2: the second '.' terminates the float
	expectTokens(t, "1.5.2\n", []front.TokenData{
		front.Indent{Level: 1},
		front.Number{Radix: 10, Integer: "1", Fraction: "5", IsFloat: true},
		front.Punct{Text: "."},
		front.Number{Radix: 10, Integer: "2"},
		front.Newline{},
	})
}

func TestNumberErrors(t *testing.T) {
	for _, td := range []struct {
		input string
		msg   string
	}{
		{"0b\n", "unexpected end of number literal"},
		{"0x\n", "unexpected end of number literal"},
		{"0b2\n", "unexpected end of number literal"},
		{"0\n", "unexpected character"},
		{"0 \n", "unexpected character"},
	} {
		if got := lexUntilError(t, td.input); got.Msg != td.msg {
			t.Errorf("input %q: got %q, want %q", td.input, got.Msg, td.msg)
		}
	}
}

func TestPunctuators(t *testing.T) {
	expectTokens(t, "a+=b\n", []front.TokenData{
		front.Indent{Level: 1},
		front.Identifier{Text: "a"},
		front.Punct{Text: "+="},
		front.Identifier{Text: "b"},
		front.Newline{},
	})
	expectTokens(t, "x<<=2\n", []front.TokenData{
		front.Indent{Level: 1},
		front.Identifier{Text: "x"},
		front.Punct{Text: "<<="},
		front.Number{Radix: 10, Integer: "2"},
		front.Newline{},
	})
	expectTokens(t, "f:=:g\n", []front.TokenData{
		front.Indent{Level: 1},
		front.Identifier{Text: "f"},
		front.Punct{Text: ":=:"},
		front.Identifier{Text: "g"},
		front.Newline{},
	})
	expectTokens(t, "a?.b->c\n", []front.TokenData{
		front.Indent{Level: 1},
		front.Identifier{Text: "a"},
		front.Punct{Text: "?."},
		front.Identifier{Text: "b"},
		front.Punct{Text: "->"},
		front.Identifier{Text: "c"},
		front.Newline{},
	})
	// maximal munch: the longest match wins, the rest is re-lexed
	expectTokens(t, "+++\n", []front.TokenData{
		front.Indent{Level: 1},
		front.Punct{Text: "++"},
		front.Punct{Text: "+"},
		front.Newline{},
	})
	expectTokens(t, "(x)\n", []front.TokenData{
		front.Indent{Level: 1},
		front.Punct{Text: "("},
		front.Identifier{Text: "x"},
		front.Punct{Text: ")"},
		front.Newline{},
	})
	// '@' without a quote is a plain punctuator
	expectTokens(t, "@x\n", []front.TokenData{
		front.Indent{Level: 1},
		front.Punct{Text: "@"},
		front.Identifier{Text: "x"},
		front.Newline{},
	})
}

func TestPunctuatorErrors(t *testing.T) {
	// '|' is in the punctuator alphabet but no single-character punctuator
	// exists for it
	if got := lexUntilError(t, "|a\n"); got.Msg != "unexpected character" {
		t.Errorf("got %q, want %q", got.Msg, "unexpected character")
	}
	if got := lexUntilError(t, "\x01\n"); got.Msg != "unexpected character" {
		t.Errorf("got %q, want %q", got.Msg, "unexpected character")
	}
}

func TestLineComments(t *testing.T) {
	for _, input := range []string{
		"a #comment\nb\n",
		"a //comment\nb\n",
	} {
		expectTokens(t, input, []front.TokenData{
			front.Indent{Level: 1},
			front.Identifier{Text: "a"},
			front.Newline{},
			front.Indent{Level: 1},
			front.Identifier{Text: "b"},
			front.Newline{},
		})
	}
}

func TestBlockComments(t *testing.T) {
	// single-line block comment lexes away entirely
	expectTokens(t, "a /*x*/ b\n", []front.TokenData{
		front.Indent{Level: 1},
		front.Identifier{Text: "a"},
		front.Identifier{Text: "b"},
		front.Newline{},
	})
	// "/*/" does not close the comment; "*/" must be a fresh pair
	expectTokens(t, "a /*/ x */ b\n", []front.TokenData{
		front.Indent{Level: 1},
		front.Identifier{Text: "a"},
		front.Identifier{Text: "b"},
		front.Newline{},
	})
	// a multi-line block comment forces the closing line to be empty
	expectTokens(t, "/*x\ny*/\nc\n", []front.TokenData{
		front.Indent{Level: 1},
		front.Newline{},
		front.Indent{Level: 1},
		front.Identifier{Text: "c"},
		front.Newline{},
	})

	got := lexUntilError(t, "/*x\ny*/ z\n")
	want := "the line which contains the end of multi-line comment must be empty"
	if got.Msg != want {
		t.Errorf("got %q, want %q", got.Msg, want)
	}
}

func TestNormalStrings(t *testing.T) {
	expectTokens(t, "'abc'\n", []front.TokenData{
		front.Indent{Level: 1},
		front.NormalString{Delim: '\'', Text: "abc"},
		front.Newline{},
	})
	expectTokens(t, "\"\"\n", []front.TokenData{
		front.Indent{Level: 1},
		front.NormalString{Delim: '"', Text: ""},
		front.Newline{},
	})
	// escapes stay undecoded; an escaped quote does not terminate
	expectTokens(t, "\"a\\\"b\"\n", []front.TokenData{
		front.Indent{Level: 1},
		front.NormalString{Delim: '"', Text: "a\\\"b"},
		front.Newline{},
	})
	expectTokens(t, "'a b'\n", []front.TokenData{
		front.Indent{Level: 1},
		front.NormalString{Delim: '\'', Text: "a b"},
		front.Newline{},
	})

	msg := "non-raw string literal cannot contain separator or newline character except space"
	if got := lexUntilError(t, "'a\tb'\n"); got.Msg != msg {
		t.Errorf("got %q, want %q", got.Msg, msg)
	}
	if got := lexUntilError(t, "'ab\ncd'\n"); got.Msg != msg {
		t.Errorf("got %q, want %q", got.Msg, msg)
	}
}

func TestRawStrings(t *testing.T) {
	expectTokens(t, "@'ab'+\n", []front.TokenData{
		front.Indent{Level: 1},
		front.RawString{Delim: '\'', Text: "ab"},
		front.Punct{Text: "+"},
		front.Newline{},
	})
	// the delimiter is escaped by doubling and kept doubled in the payload
	expectTokens(t, "@\"he said \"\"hi\"\"\"\n", []front.TokenData{
		front.Indent{Level: 1},
		front.RawString{Delim: '"', Text: "he said \"\"hi\"\""},
		front.Newline{},
	})
	// raw strings may span lines
	expectTokens(t, "@'a\nb'x\n", []front.TokenData{
		front.Indent{Level: 1},
		front.RawString{Delim: '\'', Text: "a\nb"},
		front.Identifier{Text: "x"},
		front.Newline{},
	})
	// tabs are fine in raw strings
	expectTokens(t, "@'a\tb'x\n", []front.TokenData{
		front.Indent{Level: 1},
		front.RawString{Delim: '\'', Text: "a\tb"},
		front.Identifier{Text: "x"},
		front.Newline{},
	})
}

func TestInterpolatedStrings(t *testing.T) {
	// a literal without "${" yields a single closing fragment
	expectTokens(t, "`abc`\n", []front.TokenData{
		front.Indent{Level: 1},
		front.InterpolStringEnd{Text: "abc"},
		front.Newline{},
	})
	// with the block-end toggle left enabled, '}' resumes the string
	expectTokens(t, "`a${x}b${y}c`\n", []front.TokenData{
		front.Indent{Level: 1},
		front.InterpolStringStart{Text: "a"},
		front.Identifier{Text: "x"},
		front.InterpolStringMid{Text: "b"},
		front.Identifier{Text: "y"},
		front.InterpolStringEnd{Text: "c"},
		front.Newline{},
	})

	msg := "non-raw string literal cannot contain separator or newline character except space"
	if got := lexUntilError(t, "`a\tb`\n"); got.Msg != msg {
		t.Errorf("got %q, want %q", got.Msg, msg)
	}
}

// The parser-side handshake: disable the block-end while lexing the embedded
// expression, re-enable it when the matching '}' is next.
func TestInterpolatedBlockEndHandshake(t *testing.T) {
	src := front.NewReplSource("test")
	src.FeedBytes([]byte("`x${1}y`\n"))
	src.FeedEOF()
	lx := front.NewLexer()

	mustLex := func() front.TokenData {
		t.Helper()
		tok, err := lx.Lex(src)
		if err != nil {
			t.Fatal(err)
		}
		if tok == nil {
			t.Fatalf("expected a token, got %v", lx.LastResult())
		}
		return tok.Data
	}

	if got := mustLex(); got != (front.Indent{Level: 1}) {
		t.Fatalf("got %v", got)
	}
	if got := mustLex(); got != (front.InterpolStringStart{Text: "x"}) {
		t.Fatalf("got %v", got)
	}
	lx.EnableInterpolatedBlockEnd(false)
	if got := mustLex(); got != (front.Number{Radix: 10, Integer: "1"}) {
		t.Fatalf("got %v", got)
	}
	lx.EnableInterpolatedBlockEnd(true)
	if got := mustLex(); got != (front.InterpolStringEnd{Text: "y"}) {
		t.Fatalf("got %v", got)
	}
	if got := mustLex(); got != (front.Newline{}) {
		t.Fatalf("got %v", got)
	}
}

func TestInterpolatedBlockEndPanicsOutsideString(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic")
		}
	}()
	front.NewLexer().EnableInterpolatedBlockEnd(true)
}

func TestIndentation(t *testing.T) {
	expectTokens(t, "a\n  b\n  c\na\n", []front.TokenData{
		front.Indent{Level: 1},
		front.Identifier{Text: "a"},
		front.Newline{},
		front.Indent{Level: 2},
		front.Identifier{Text: "b"},
		front.Newline{},
		front.Indent{Level: 2},
		front.Identifier{Text: "c"},
		front.Newline{},
		front.Indent{Level: 1},
		front.Identifier{Text: "a"},
		front.Newline{},
	})
	expectTokens(t, "a\n  b\n    c\n  d\na\n", []front.TokenData{
		front.Indent{Level: 1},
		front.Identifier{Text: "a"},
		front.Newline{},
		front.Indent{Level: 2},
		front.Identifier{Text: "b"},
		front.Newline{},
		front.Indent{Level: 3},
		front.Identifier{Text: "c"},
		front.Newline{},
		front.Indent{Level: 2},
		front.Identifier{Text: "d"},
		front.Newline{},
		front.Indent{Level: 1},
		front.Identifier{Text: "a"},
		front.Newline{},
	})
	// blank lines produce a lone Newline and do not disturb nesting
	expectTokens(t, "a\n\n  b\n", []front.TokenData{
		front.Indent{Level: 1},
		front.Identifier{Text: "a"},
		front.Newline{},
		front.Newline{},
		front.Indent{Level: 2},
		front.Identifier{Text: "b"},
		front.Newline{},
	})
}

func TestIndentationErrors(t *testing.T) {
	// outdent to a depth that was never pushed
	got := lexUntilError(t, "  a\n a\n")
	if got.Msg != "invalid indentation" {
		t.Errorf("got %q, want %q", got.Msg, "invalid indentation")
	}
	if (got.Pos != front.Position{Line: 1, Col: 0}) {
		t.Errorf("got position %v, want {1 0}", got.Pos)
	}

	// same width, different characters
	if got := lexUntilError(t, "  a\n\t\tb\n"); got.Msg != "invalid indentation" {
		t.Errorf("got %q, want %q", got.Msg, "invalid indentation")
	}
	// deeper prefix must extend the current one exactly
	if got := lexUntilError(t, "  a\n\t\t\tb\n"); got.Msg != "invalid indentation" {
		t.Errorf("got %q, want %q", got.Msg, "invalid indentation")
	}
}

func TestTokenPositions(t *testing.T) {
	toks := lexAll(t, "hello world\n", 0)
	want := []lexedToken{
		{front.Position{0, 0}, front.Position{0, 0}, front.Indent{Level: 1}},
		{front.Position{0, 0}, front.Position{0, 5}, front.Identifier{Text: "hello"}},
		{front.Position{0, 6}, front.Position{0, 11}, front.Identifier{Text: "world"}},
		{front.Position{0, 11}, front.Position{0, 11}, front.Newline{}},
	}
	if !reflect.DeepEqual(toks, want) {
		t.Errorf("got  %v\nwant %v", toks, want)
	}
}

// Feeding the same input in any chunking must produce the same tokens at the
// same positions as feeding it whole.
func TestReplayEquivalence(t *testing.T) {
	inputs := []string{
		"hello world\n",
		"a\n  b\n    c\na\n",
		"x += 0xFFp2 // comment\n'str' @'raw''' done\n",
		"`a${x}b${y}c`\n",
		"변수 = 값 /* 주석\n */\nok\n",
		"f(a, b) => a ?. b\n",
	}
	for _, input := range inputs {
		whole := lexAll(t, input, 0)
		for _, n := range []int{1, 2, 3, 5, 7} {
			chunked := lexAll(t, input, n)
			if !reflect.DeepEqual(whole, chunked) {
				t.Errorf("input %q, chunk %d:\ngot  %v\nwant %v",
					input, n, chunked, whole)
			}
		}
	}
}

// A suspension mid-token keeps the partial token; the next Lex call picks it
// up where it stopped.
func TestSuspensionMidToken(t *testing.T) {
	src := front.NewReplSource("test")
	lx := front.NewLexer()

	src.FeedBytes([]byte("he"))
	tok, err := lx.Lex(src)
	if err != nil || tok == nil || tok.Data != (front.Indent{Level: 1}) {
		t.Fatalf("got %v, %v", tok, err)
	}
	tok, err = lx.Lex(src)
	if err != nil || tok != nil || lx.LastResult() != front.LexExhausted {
		t.Fatalf("got %v, %v, %v", tok, err, lx.LastResult())
	}

	src.FeedBytes([]byte("llo\n"))
	tok, err = lx.Lex(src)
	if err != nil || tok == nil || tok.Data != (front.Identifier{Text: "hello"}) {
		t.Fatalf("got %v, %v", tok, err)
	}
}

// EOF in the middle of an identifier closes it via the synthetic terminator.
func TestEOFMidToken(t *testing.T) {
	src := front.NewReplSource("test")
	lx := front.NewLexer()

	src.FeedBytes([]byte("ab"))
	src.FeedEOF()

	tok, err := lx.Lex(src)
	if err != nil || tok == nil || tok.Data != (front.Indent{Level: 1}) {
		t.Fatalf("got %v, %v", tok, err)
	}
	tok, err = lx.Lex(src)
	if err != nil || tok == nil || tok.Data != (front.Identifier{Text: "ab"}) {
		t.Fatalf("got %v, %v", tok, err)
	}
	tok, err = lx.Lex(src)
	if err != nil || tok != nil || lx.LastResult() != front.LexEOF {
		t.Fatalf("got %v, %v, %v", tok, err, lx.LastResult())
	}
}

// An unterminated string at EOF cannot close itself; the lexer reports it
// instead of spinning on the synthetic terminator.
func TestEOFUnterminatedString(t *testing.T) {
	src := front.NewReplSource("test")
	lx := front.NewLexer()

	src.FeedBytes([]byte("'ab"))
	src.FeedEOF()

	if tok, err := lx.Lex(src); err != nil || tok == nil {
		t.Fatalf("got %v, %v", tok, err)
	}
	_, err := lx.Lex(src)
	lexErr, ok := err.(*front.LexerError)
	if !ok || lexErr.Msg != "unexpected end of file" {
		t.Fatalf("got %v", err)
	}
}

func TestRecoveryAfterLexerError(t *testing.T) {
	src := front.NewReplSource("test")
	lx := front.NewLexer()

	src.FeedBytes([]byte("|x\n"))
	if tok, err := lx.Lex(src); err != nil || tok == nil {
		t.Fatalf("got %v, %v", tok, err)
	}
	_, err := lx.Lex(src)
	if _, ok := err.(*front.LexerError); !ok {
		t.Fatalf("expected a lexer error, got %v", err)
	}

	// the lexer is unusable until cleared
	func() {
		defer func() {
			if recover() == nil {
				t.Error("expected a panic from Lex on an errored lexer")
			}
		}()
		_, _ = lx.Lex(src)
	}()

	lx.ClearBuffer()
	src.FeedBytes([]byte("ok\n"))

	var got []front.TokenData
	for {
		tok, err := lx.Lex(src)
		if err != nil {
			t.Fatal(err)
		}
		if tok == nil {
			break
		}
		got = append(got, tok.Data)
	}
	// the reverted "|x" is dropped with the lexer buffer, but the source
	// still holds the undecoded "\n", which now reads as a blank line
	want := []front.TokenData{
		front.Newline{},
		front.Indent{Level: 1},
		front.Identifier{Text: "ok"},
		front.Newline{},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestRecoveryAfterInvalidBytes(t *testing.T) {
	src := front.NewReplSource("test")
	lx := front.NewLexer()

	src.FeedBytes([]byte{0xC3, 0x28})
	_, err := lx.Lex(src)
	seqErr, ok := err.(*front.InvalidByteSeqError)
	if !ok {
		t.Fatalf("expected an invalid byte sequence error, got %v", err)
	}
	if (seqErr.Pos != front.Position{Line: 0, Col: 0}) {
		t.Errorf("got position %v, want {0 0}", seqErr.Pos)
	}

	// the source must be cleared; the lexer itself is untouched
	src.ClearBuffer()
	src.FeedBytes([]byte("a\n"))
	src.FeedEOF()

	got := func() []front.TokenData {
		var out []front.TokenData
		for {
			tok, err := lx.Lex(src)
			if err != nil {
				t.Fatal(err)
			}
			if tok == nil {
				return out
			}
			out = append(out, tok.Data)
		}
	}()
	want := []front.TokenData{
		front.Indent{Level: 1},
		front.Identifier{Text: "a"},
		front.Newline{},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestClearAllResetsInterpolation(t *testing.T) {
	src := front.NewReplSource("test")
	lx := front.NewLexer()

	src.FeedBytes([]byte("`a${"))
	for {
		tok, err := lx.Lex(src)
		if err != nil {
			t.Fatal(err)
		}
		if tok == nil {
			break
		}
	}

	lx.EnableInterpolatedBlockEnd(false) // legal while interpolating
	lx.ClearAll()

	defer func() {
		if recover() == nil {
			t.Error("expected a panic after ClearAll")
		}
	}()
	lx.EnableInterpolatedBlockEnd(true)
}
