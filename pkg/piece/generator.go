package piece

import "github.com/huynhanx03/tetris-stack/pkg/unique"

// Generator creates new pieces. Each call to Generate consumes one kind from
// the source and one id from the sequence.
type Generator struct {
	src KindSource
	ids *unique.Sequence
}

// NewGenerator creates a generator whose first piece has id 0.
func NewGenerator(src KindSource) *Generator {
	return &Generator{src: src, ids: unique.NewSequence()}
}

// Generate returns a new piece with a fresh id.
func (g *Generator) Generate() Piece {
	return Piece{Kind: g.src.NextKind(), ID: g.ids.Next()}
}

// Count returns the number of pieces generated so far.
func (g *Generator) Count() int64 {
	return g.ids.Issued()
}
