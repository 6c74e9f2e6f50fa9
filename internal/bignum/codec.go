package bignum

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// Wire form: a two-element array of a form tag and the big-endian
// magnitude bytes. Every value round-trips; the tag distinguishes the two
// constructors, so -(n+1) and n never collide.
const (
	tagNonNeg  int8 = 0
	tagNegSucc int8 = 1
)

var (
	_ msgpack.CustomEncoder = (*Int)(nil)
	_ msgpack.CustomDecoder = (*Int)(nil)
	_ msgpack.CustomEncoder = (*Nat)(nil)
	_ msgpack.CustomDecoder = (*Nat)(nil)
)

// EncodeMsgpack implements msgpack.CustomEncoder.
func (i *Int) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeArrayLen(2); err != nil {
		return err
	}
	tag := tagNonNeg
	if i.negSucc {
		tag = tagNegSucc
	}
	if err := enc.EncodeInt8(tag); err != nil {
		return err
	}
	return enc.EncodeBytes(i.mag.Bytes())
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (i *Int) DecodeMsgpack(dec *msgpack.Decoder) error {
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return err
	}
	if n != 2 {
		return fmt.Errorf("integer wire form: expected 2 elements, got %d", n)
	}
	tag, err := dec.DecodeInt8()
	if err != nil {
		return err
	}
	raw, err := dec.DecodeBytes()
	if err != nil {
		return err
	}
	mag := NatFromBytes(raw)
	switch tag {
	case tagNonNeg:
		*i = IntFromNat(mag)
	case tagNegSucc:
		*i = intNegSucc(mag)
	default:
		return fmt.Errorf("integer wire form: unknown tag %d", tag)
	}
	return nil
}

// EncodeMsgpack implements msgpack.CustomEncoder.
func (u *Nat) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeBytes(u.Bytes())
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (u *Nat) DecodeMsgpack(dec *msgpack.Decoder) error {
	raw, err := dec.DecodeBytes()
	if err != nil {
		return err
	}
	*u = NatFromBytes(raw)
	return nil
}
