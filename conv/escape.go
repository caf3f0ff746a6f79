package conv

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/go-mysql-org/mysqlconv/utils"
)

const dontEscape = byte(255)

// encodeMap is a full byte table so escaping is a single pass over the
// input. The backslash entry being part of the same pass is what keeps
// escaped substitutions from being re-escaped.
var encodeMap [256]byte

var encodeRef = map[byte]byte{
	'\\': '\\',
	'\n': 'n',
	'\r': 'r',
	'\'': '\'',
	'"':  '"',
	26:   'Z', // ctl-Z
}

func init() {
	for i := range encodeMap {
		encodeMap[i] = dontEscape
	}
	for k, v := range encodeRef {
		encodeMap[k] = v
	}
}

// Escape rewrites the special characters in textual values to their
// backslash-prefixed forms. Non-textual values, nil and HexLiteral pass
// through unchanged; NULL rendering and hex rendering happen in Quote.
func (c *Converter) Escape(value interface{}) interface{} {
	switch v := value.(type) {
	case string:
		return utils.ByteSliceToString(escapeBytes(utils.StringToByteSlice(v)))
	case []byte:
		return escapeBytes(v)
	default:
		return value
	}
}

func escapeBytes(value []byte) []byte {
	dest := make([]byte, 0, 2*len(value))

	for _, w := range value {
		if e := encodeMap[w]; e == dontEscape {
			dest = append(dest, w)
		} else {
			dest = append(dest, '\\', e)
		}
	}

	return dest
}

// Quote renders an escaped value as a complete SQL literal token.
// Numbers and hex literals stay bare, nil becomes NULL, everything else
// is wrapped in single quotes. Quote must only be applied to the output
// of Escape, quoting raw text reopens the injection hole Escape closes.
func (c *Converter) Quote(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return "NULL"
	case int64:
		return strconv.FormatInt(v, 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case int:
		// Convenience for callers quoting directly; ToMySQL itself always
		// normalizes integers to int64/uint64.
		return strconv.Itoa(v)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case decimal.Decimal:
		return formatDecimal(v)
	case HexLiteral:
		return v.String()
	case string:
		return "'" + v + "'"
	case []byte:
		return "'" + string(v) + "'"
	default:
		return fmt.Sprintf("'%v'", v)
	}
}

// formatDecimal renders a decimal at its own scale. Decimal.String trims
// trailing zeros, but the scale of a DECIMAL value is part of the value:
// 123.4500 must stay 123.4500.
func formatDecimal(d decimal.Decimal) string {
	if d.Exponent() < 0 {
		return d.StringFixed(-d.Exponent())
	}
	return d.String()
}
