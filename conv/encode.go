package conv

import (
	"bytes"
	"fmt"
	"time"

	"github.com/pingcap/errors"
	"github.com/shopspring/decimal"

	"github.com/go-mysql-org/mysqlconv/mysql"
	"github.com/go-mysql-org/mysqlconv/utils"
)

// Date is a calendar date without a time component, as stored in a DATE
// column.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// TimeOfDay is a clock time within a single day, as stored in a TIME
// column holding a time-of-day rather than an interval.
type TimeOfDay struct {
	Hour        int
	Minute      int
	Second      int
	Microsecond int
}

func (t TimeOfDay) String() string {
	if t.Microsecond != 0 {
		return fmt.Sprintf("%02d:%02d:%02d.%06d", t.Hour, t.Minute, t.Second, t.Microsecond)
	}
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

// ToMySQL converts a Go value to its MySQL wire form: a normalized
// number, formatted bytes, or a HexLiteral. Dispatch is on the value's
// exact type, a bool is never treated as an integer even though it could
// be. The result still has to pass through Escape and Quote before it is
// a complete literal.
func (c *Converter) ToMySQL(value interface{}) (interface{}, error) {
	switch v := value.(type) {
	case nil:
		// NULL itself is rendered at quoting time.
		return nil, nil
	case bool:
		if v {
			return int64(1), nil
		}
		return int64(0), nil
	case int:
		return int64(v), nil
	case int8:
		return int64(v), nil
	case int16:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case int64:
		return v, nil
	case uint:
		return uint64(v), nil
	case uint8:
		return uint64(v), nil
	case uint16:
		return uint64(v), nil
	case uint32:
		return uint64(v), nil
	case uint64:
		return v, nil
	case float32:
		return float64(v), nil
	case float64:
		return v, nil
	case decimal.Decimal:
		return v, nil
	case string:
		return c.encodeString(v)
	case []byte:
		return v, nil
	case time.Time:
		return []byte(formatDateTime(v)), nil
	case Date:
		return []byte(v.String()), nil
	case TimeOfDay:
		return []byte(v.String()), nil
	case time.Duration:
		return []byte(formatDuration(v)), nil
	case HexLiteral:
		return v, nil
	default:
		return nil, &UnsupportedTypeError{Type: fmt.Sprintf("%T", value)}
	}
}

// encodeString encodes v in the configured charset. When the charset is
// one where a 0x5c byte can be part of a multi-byte sequence and the
// encoded bytes contain one, the value is wrapped as a HexLiteral since
// backslash escaping would corrupt it.
func (c *Converter) encodeString(v string) (interface{}, error) {
	encoded, err := encodeText(c.charset, v)
	if err != nil {
		return nil, errors.Trace(err)
	}

	if mysql.IsSlashCharset(c.charset) && bytes.IndexByte(encoded, 0x5c) >= 0 {
		return NewHexLiteral(v, c.charset)
	}
	return encoded, nil
}

// encodeText converts a UTF-8 string to bytes in the given charset.
// Charsets with no registered encoding (utf8, binary, ascii) pass the
// bytes through unchanged.
func encodeText(charset, s string) ([]byte, error) {
	enc := mysql.CharsetEncoding(charset)
	if enc == nil {
		return utils.StringToByteSlice(s), nil
	}

	encoded, err := enc.NewEncoder().Bytes(utils.StringToByteSlice(s))
	if err != nil {
		return nil, errors.Annotatef(err, "encoding string to charset %s", charset)
	}
	return encoded, nil
}

func formatDateTime(t time.Time) string {
	if micros := t.Nanosecond() / 1000; micros != 0 {
		return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d.%06d",
			t.Year(), int(t.Month()), t.Day(),
			t.Hour(), t.Minute(), t.Second(), micros)
	}
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d",
		t.Year(), int(t.Month()), t.Day(),
		t.Hour(), t.Minute(), t.Second())
}

// formatDuration renders a signed duration as [-]HH:MM:SS[.ffffff] with
// microsecond precision. Hours are not capped at 24. The decomposition
// works on total microseconds of the absolute value, so a negative
// duration with a sub-second part keeps its seconds column exact
// instead of drifting by one.
func formatDuration(d time.Duration) string {
	neg := d < 0
	if neg {
		d = -d
	}

	micros := d.Microseconds()
	secs := micros / 1000000
	micros %= 1000000

	hours := secs / 3600
	secs %= 3600
	mins := secs / 60
	secs %= 60

	var out string
	if micros != 0 {
		out = fmt.Sprintf("%02d:%02d:%02d.%06d", hours, mins, secs, micros)
	} else {
		out = fmt.Sprintf("%02d:%02d:%02d", hours, mins, secs)
	}
	if neg {
		return "-" + out
	}
	return out
}
