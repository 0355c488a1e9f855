package inktypes

import (
	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
)

// Unit is the zero-size value of an empty tuple. It occupies no wire bytes,
// so decoding into it never fails on an empty payload.
type Unit struct{}

func (Unit) Encode(encoder scale.Encoder) error { return nil }

func (*Unit) Decode(decoder scale.Decoder) error { return nil }

// TupleN mirror declared tuples of two to six elements. Elements travel in
// field order with no framing, which the codec's struct walk already does,
// so no custom wire methods are needed.

type Tuple2[A, B any] struct {
	A A
	B B
}

type Tuple3[A, B, C any] struct {
	A A
	B B
	C C
}

type Tuple4[A, B, C, D any] struct {
	A A
	B B
	C C
	D D
}

type Tuple5[A, B, C, D, E any] struct {
	A A
	B B
	C C
	D D
	E E
}

type Tuple6[A, B, C, D, E, F any] struct {
	A A
	B B
	C C
	D D
	E E
	F F
}
