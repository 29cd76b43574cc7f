// Package piece defines the pieces that flow through the supply queue and
// reserve stack, and the generator that stamps them with unique ids.
package piece

import "fmt"

// Kind is the shape tag of a piece.
type Kind byte

const (
	KindI Kind = 'I'
	KindO Kind = 'O'
	KindT Kind = 'T'
	KindL Kind = 'L'
)

// Kinds lists every kind a generator may produce, in a fixed order.
var Kinds = [...]Kind{KindI, KindO, KindT, KindL}

func (k Kind) String() string { return string(rune(k)) }

// Valid reports whether k is one of Kinds.
func (k Kind) Valid() bool {
	for _, v := range Kinds {
		if k == v {
			return true
		}
	}
	return false
}

// Piece is an immutable game unit. ID is unique within a run.
type Piece struct {
	Kind Kind
	ID   int64
}

// String renders the piece as "[I 3]".
func (p Piece) String() string {
	return fmt.Sprintf("[%s %d]", p.Kind, p.ID)
}
