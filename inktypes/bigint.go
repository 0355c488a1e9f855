package inktypes

import (
	"fmt"
	"math/big"

	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
)

// U128 is an unsigned 128-bit integer, 16 little-endian bytes on the wire.
type U128 struct {
	*big.Int
}

// NewU128 wraps i. The value must fit the unsigned 128-bit range by the
// time it is encoded.
func NewU128(i big.Int) U128 {
	return U128{&i}
}

// NewU128FromUint64 lifts v into a U128.
func NewU128FromUint64(v uint64) U128 {
	return U128{new(big.Int).SetUint64(v)}
}

func (u U128) Encode(encoder scale.Encoder) error {
	return writeUintLE(encoder, u.Int, 16)
}

func (u *U128) Decode(decoder scale.Decoder) error {
	v, err := readUintLE(decoder, 16)
	if err != nil {
		return err
	}
	u.Int = v
	return nil
}

// I128 is a signed 128-bit integer, 16 little-endian two's-complement bytes
// on the wire.
type I128 struct {
	*big.Int
}

// NewI128 wraps i. The value must fit the signed 128-bit range by the time
// it is encoded.
func NewI128(i big.Int) I128 {
	return I128{&i}
}

// NewI128FromInt64 lifts v into an I128.
func NewI128FromInt64(v int64) I128 {
	return I128{big.NewInt(v)}
}

var (
	twoPow128 = new(big.Int).Lsh(big.NewInt(1), 128)
	i128Min   = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127))
	i128Max   = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
)

func (i I128) Encode(encoder scale.Encoder) error {
	v := i.Int
	if v == nil {
		v = big.NewInt(0)
	}
	if v.Cmp(i128Min) < 0 || v.Cmp(i128Max) > 0 {
		return fmt.Errorf("i128: %s exceeds the signed 128-bit range", v)
	}
	if v.Sign() < 0 {
		v = new(big.Int).Add(twoPow128, v)
	}
	return writeUintLE(encoder, v, 16)
}

func (i *I128) Decode(decoder scale.Decoder) error {
	v, err := readUintLE(decoder, 16)
	if err != nil {
		return err
	}
	if v.Bit(127) == 1 {
		v.Sub(v, twoPow128)
	}
	i.Int = v
	return nil
}

// writeUintLE writes v as width little-endian bytes. nil counts as zero.
func writeUintLE(encoder scale.Encoder, v *big.Int, width int) error {
	buf := make([]byte, width)
	if v != nil {
		if v.Sign() < 0 {
			return fmt.Errorf("uint%d: negative value %s", width*8, v)
		}
		if v.BitLen() > width*8 {
			return fmt.Errorf("uint%d: %s does not fit", width*8, v)
		}
		v.FillBytes(buf)
	}
	reverseBytes(buf)
	return encoder.Write(buf)
}

// readUintLE reads width little-endian bytes into a non-negative big int.
func readUintLE(decoder scale.Decoder, width int) (*big.Int, error) {
	buf := make([]byte, width)
	if err := decoder.Read(buf); err != nil {
		return nil, err
	}
	reverseBytes(buf)
	return new(big.Int).SetBytes(buf), nil
}

func reverseBytes(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
