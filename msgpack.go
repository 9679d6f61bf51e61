package bignum

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/vmihailenco/msgpack/v5/msgpcode"
)

var (
	_ msgpack.CustomEncoder = Int{}
	_ msgpack.CustomDecoder = (*Int)(nil)
)

// EncodeMsgpack writes i as a msgpack string holding its decimal
// representation.
func (i Int) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeString(i.String())
}

// DecodeMsgpack reads a decimal string written by EncodeMsgpack. Plain
// msgpack integers are accepted as well.
func (z *Int) DecodeMsgpack(dec *msgpack.Decoder) error {
	code, err := dec.PeekCode()
	if err != nil {
		return err
	}
	if msgpcode.IsString(code) {
		s, err := dec.DecodeString()
		if err != nil {
			return err
		}
		v, err := IntFromString(s)
		if err != nil {
			return fmt.Errorf("bignum: msgpack: %w", err)
		}
		*z = v
		return nil
	}

	v, err := dec.DecodeInterfaceLoose()
	if err != nil {
		return err
	}
	switch v := v.(type) {
	case int64:
		*z = IntFrom64(v)
	case uint64:
		*z = IntFromU64(v)
	default:
		return fmt.Errorf("bignum: msgpack: unexpected %T: %w", v, ErrSyntax)
	}
	return nil
}
