package front_test

import (
	"strings"
	"testing"

	front "github.com/dlarudgus20/ahafront"
)

const benchProgram = `module demo
import core
class Point
  let x = 1
  var y = 0xFF
  func dist(p) => (x - p.x) * (x - p.x) + (y - p.y) * (y - p.y)
  # accessors
  func getX() => x
  func name() => 'point: ' /* trivial */
  func tag() => ` + "`p${x}y`" + `
`

func BenchmarkLex(b *testing.B) {
	input := []byte(strings.Repeat(benchProgram, 16))
	b.SetBytes(int64(len(input)))
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		src := front.NewReplSource("bench")
		src.FeedBytes(input)
		src.FeedEOF()
		lx := front.NewLexer()
		for {
			tok, err := lx.Lex(src)
			if err != nil {
				b.Fatal(err)
			}
			if tok == nil {
				if lx.LastResult() == front.LexEOF {
					break
				}
				b.Fatalf("unexpected result %v", lx.LastResult())
			}
		}
	}
}

func BenchmarkReadChar(b *testing.B) {
	input := []byte(strings.Repeat("가나다라 마바사\n", 256))
	b.SetBytes(int64(len(input)))
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		src := front.NewReplSource("bench")
		src.FeedBytes(input)
		for {
			ch, _, err := src.ReadChar()
			if err != nil {
				b.Fatal(err)
			}
			if ch == front.NoChar {
				break
			}
		}
	}
}
