package inktypes

import (
	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
)

// Option carries an optional value the way the wire format does: one flag
// byte, then the value when present.
type Option[T any] struct {
	HasValue bool
	Value    T
}

// Some builds a present Option.
func Some[T any](value T) Option[T] {
	return Option[T]{HasValue: true, Value: value}
}

// None builds an absent Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Unwrap returns the value and whether it is present.
func (o Option[T]) Unwrap() (T, bool) {
	return o.Value, o.HasValue
}

func (o Option[T]) Encode(encoder scale.Encoder) error {
	return encoder.EncodeOption(o.HasValue, o.Value)
}

func (o *Option[T]) Decode(decoder scale.Decoder) error {
	return decoder.DecodeOption(&o.HasValue, &o.Value)
}
