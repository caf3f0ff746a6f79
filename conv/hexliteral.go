package conv

import (
	"encoding/hex"

	"github.com/pingcap/errors"
)

// HexLiteral marks a value as already-safe hexadecimal SQL literal text.
// It is produced by the string encoder when the configured charset is one
// in which a raw backslash byte can be part of a multi-byte sequence, so
// backslash escaping cannot be applied to the encoded bytes. Escape and
// Quote both pass it through untouched; it renders as 0x<digits>.
type HexLiteral struct {
	hex string

	Original string
	Charset  string
}

// NewHexLiteral encodes original under charset and wraps the lowercase
// hex form of the encoded bytes.
func NewHexLiteral(original, charset string) (HexLiteral, error) {
	encoded, err := encodeText(charset, original)
	if err != nil {
		return HexLiteral{}, errors.Trace(err)
	}
	return HexLiteral{
		hex:      hex.EncodeToString(encoded),
		Original: original,
		Charset:  charset,
	}, nil
}

// Hex returns the bare hex digits without the 0x prefix.
func (h HexLiteral) Hex() string {
	return h.hex
}

func (h HexLiteral) String() string {
	return "0x" + h.hex
}
