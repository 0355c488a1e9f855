package inktypes

import (
	"fmt"

	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
)

// Result carries either a success or an error value, discriminated by one
// byte on the wire: 0 for Ok, 1 for Err. Exactly one side is ever set.
type Result[T, E any] struct {
	IsOk bool
	Ok   T

	IsErr bool
	Err   E
}

// OkResult builds a successful Result.
func OkResult[T, E any](value T) Result[T, E] {
	return Result[T, E]{IsOk: true, Ok: value}
}

// ErrResult builds a failed Result.
func ErrResult[T, E any](err E) Result[T, E] {
	return Result[T, E]{IsErr: true, Err: err}
}

func (r Result[T, E]) Encode(encoder scale.Encoder) error {
	switch {
	case r.IsOk == r.IsErr:
		return fmt.Errorf("result: exactly one of Ok and Err must be set")
	case r.IsOk:
		if err := encoder.PushByte(0); err != nil {
			return err
		}
		return encoder.Encode(r.Ok)
	default:
		if err := encoder.PushByte(1); err != nil {
			return err
		}
		return encoder.Encode(r.Err)
	}
}

func (r *Result[T, E]) Decode(decoder scale.Decoder) error {
	b, err := decoder.ReadOneByte()
	if err != nil {
		return err
	}
	switch b {
	case 0:
		r.IsOk, r.IsErr = true, false
		return decoder.Decode(&r.Ok)
	case 1:
		r.IsOk, r.IsErr = false, true
		return decoder.Decode(&r.Err)
	default:
		return fmt.Errorf("result: invalid discriminant %d", b)
	}
}
