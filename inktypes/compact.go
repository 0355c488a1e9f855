package inktypes

import (
	"math/big"

	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
)

// UCompact is an unsigned integer in compact wire encoding. Declared
// Compact(T) fields of any integer width map onto it.
type UCompact big.Int

// NewUCompact wraps v.
func NewUCompact(v *big.Int) UCompact {
	return UCompact(*v)
}

// NewUCompactFromUInt lifts v into a UCompact.
func NewUCompactFromUInt(v uint64) UCompact {
	return UCompact(*new(big.Int).SetUint64(v))
}

// Int returns the carried value.
func (u UCompact) Int() *big.Int {
	v := big.Int(u)
	return &v
}

func (u UCompact) Encode(encoder scale.Encoder) error {
	return encoder.EncodeUintCompact(big.Int(u))
}

func (u *UCompact) Decode(decoder scale.Decoder) error {
	v, err := decoder.DecodeUintCompact()
	if err != nil {
		return err
	}
	*u = UCompact(*v)
	return nil
}
