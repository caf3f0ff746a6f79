package conv

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pingcap/errors"
	"github.com/shopspring/decimal"
	"github.com/siddontang/go-log/log"

	"github.com/go-mysql-org/mysqlconv/mysql"
	"github.com/go-mysql-org/mysqlconv/utils"
)

// Set is the decoded form of a SET column.
type Set map[string]struct{}

func (s Set) Contains(member string) bool {
	_, ok := s[member]
	return ok
}

type decodeFunc func(c *Converter, f *mysql.Field, value []byte) (interface{}, error)

// decoders maps a wire type code to its decoder. Codes sharing a decoder
// get their own entry so the table is the complete dispatch picture.
// SET has no entry on purpose: the server reports SET columns under the
// string type codes with SET_FLAG set, so SET decoding is only reachable
// through decodeString.
var decoders = map[byte]decodeFunc{}

func init() {
	decoders[mysql.MYSQL_TYPE_FLOAT] = decodeFloat
	decoders[mysql.MYSQL_TYPE_DOUBLE] = decodeFloat

	decoders[mysql.MYSQL_TYPE_TINY] = decodeInt
	decoders[mysql.MYSQL_TYPE_SHORT] = decodeInt
	decoders[mysql.MYSQL_TYPE_INT24] = decodeInt
	decoders[mysql.MYSQL_TYPE_LONG] = decodeInt
	decoders[mysql.MYSQL_TYPE_LONGLONG] = decodeInt

	decoders[mysql.MYSQL_TYPE_DECIMAL] = decodeDecimal
	decoders[mysql.MYSQL_TYPE_NEWDECIMAL] = decodeDecimal

	decoders[mysql.MYSQL_TYPE_BIT] = decodeBit

	decoders[mysql.MYSQL_TYPE_DATE] = decodeDate
	decoders[mysql.MYSQL_TYPE_NEWDATE] = decodeDate

	decoders[mysql.MYSQL_TYPE_TIME] = decodeTime

	decoders[mysql.MYSQL_TYPE_DATETIME] = decodeDateTime
	decoders[mysql.MYSQL_TYPE_TIMESTAMP] = decodeDateTime

	decoders[mysql.MYSQL_TYPE_YEAR] = decodeYear

	decoders[mysql.MYSQL_TYPE_STRING] = decodeString
	decoders[mysql.MYSQL_TYPE_VAR_STRING] = decodeString
	decoders[mysql.MYSQL_TYPE_VARCHAR] = decodeString
	decoders[mysql.MYSQL_TYPE_ENUM] = decodeString

	decoders[mysql.MYSQL_TYPE_BLOB] = decodeBlob
	decoders[mysql.MYSQL_TYPE_TINY_BLOB] = decodeBlob
	decoders[mysql.MYSQL_TYPE_MEDIUM_BLOB] = decodeBlob
	decoders[mysql.MYSQL_TYPE_LONG_BLOB] = decodeBlob
	decoders[mysql.MYSQL_TYPE_GEOMETRY] = decodeBlob
}

// FromMySQL converts the raw text-protocol bytes of one result column to
// a Go value, or nil for NULL. Parse failures come back as a
// *ConversionError and structural mismatches as a *ConversionTypeError,
// both carrying the column name. A type code with no decoder degrades to
// a raw string instead of failing, so unknown or future server types
// still round a row trip.
func (c *Converter) FromMySQL(f *mysql.Field, value []byte) (interface{}, error) {
	// A lone 0x00 is the server's NULL marker everywhere except BIT
	// columns, where it is a legitimate value.
	if len(value) == 1 && value[0] == 0x00 && f.Type != mysql.MYSQL_TYPE_BIT {
		return nil, nil
	}
	if value == nil {
		return nil, nil
	}

	dec, ok := decoders[f.Type]
	if !ok {
		log.Debugf("no decoder for type %s (%d), passing field %s through as text",
			mysql.TypeName(f.Type), f.Type, f.Name)
		return string(value), nil
	}

	v, err := dec(c, f, value)
	if err != nil {
		if typeErr, ok := err.(*ConversionTypeError); ok {
			return nil, typeErr
		}
		return nil, &ConversionError{Field: f.Name, Value: value, Err: err}
	}
	return v, nil
}

func decodeFloat(_ *Converter, _ *mysql.Field, value []byte) (interface{}, error) {
	return strconv.ParseFloat(utils.ByteSliceToString(value), 64)
}

func decodeInt(_ *Converter, f *mysql.Field, value []byte) (interface{}, error) {
	if f.IsUnsigned() {
		return strconv.ParseUint(utils.ByteSliceToString(value), 10, 64)
	}
	return strconv.ParseInt(utils.ByteSliceToString(value), 10, 64)
}

func decodeDecimal(_ *Converter, _ *mysql.Field, value []byte) (interface{}, error) {
	return decimal.NewFromString(utils.ByteSliceToString(value))
}

func decodeBit(_ *Converter, f *mysql.Field, value []byte) (interface{}, error) {
	if len(value) > 8 {
		return nil, &ConversionTypeError{
			Field:  f.Name,
			Type:   f.Type,
			Reason: fmt.Sprintf("invalid value of %d bytes", len(value)),
		}
	}

	var buf [8]byte
	copy(buf[8-len(value):], value)
	return binary.BigEndian.Uint64(buf[:]), nil
}

// decodeDate is deliberately lenient: the server itself tolerates zero
// dates like 0000-00-00, so anything that does not parse as a real
// calendar date becomes NULL instead of an error.
func decodeDate(_ *Converter, _ *mysql.Field, value []byte) (interface{}, error) {
	t, err := time.Parse("2006-01-02", utils.ByteSliceToString(value))
	if err != nil {
		return nil, nil
	}
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
}

func decodeTime(_ *Converter, _ *mysql.Field, value []byte) (interface{}, error) {
	s := utils.ByteSliceToString(value)

	hms, frac, hasFrac := strings.Cut(s, ".")
	micros := 0
	if hasFrac {
		n, err := strconv.Atoi(padMicros(frac))
		if err != nil {
			return nil, errors.Errorf("could not convert %s to time.Duration", s)
		}
		micros = n
	}

	parts := strings.Split(hms, ":")
	if len(parts) != 3 {
		return nil, errors.Errorf("could not convert %s to time.Duration", s)
	}

	// The hours segment carries the sign for the whole value; the minute,
	// second and microsecond magnitudes follow it.
	hours, err1 := strconv.Atoi(parts[0])
	mins, err2 := strconv.Atoi(parts[1])
	secs, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return nil, errors.Errorf("could not convert %s to time.Duration", s)
	}

	if strings.HasPrefix(s, "-") {
		mins, secs, micros = -mins, -secs, -micros
	}

	return time.Duration(hours)*time.Hour +
		time.Duration(mins)*time.Minute +
		time.Duration(secs)*time.Second +
		time.Duration(micros)*time.Microsecond, nil
}

// decodeDateTime shares the zero-date leniency of decodeDate: malformed
// input is NULL, not an error.
func decodeDateTime(_ *Converter, _ *mysql.Field, value []byte) (interface{}, error) {
	t, err := time.Parse(mysql.TimeFormat+".999999", utils.ByteSliceToString(value))
	if err != nil {
		return nil, nil
	}
	return t, nil
}

func decodeYear(_ *Converter, _ *mysql.Field, value []byte) (interface{}, error) {
	year, err := strconv.ParseInt(utils.ByteSliceToString(value), 10, 64)
	if err != nil {
		return nil, errors.Errorf("failed converting YEAR to int (%s)", value)
	}
	return year, nil
}

func decodeString(c *Converter, f *mysql.Field, value []byte) (interface{}, error) {
	if f.IsSet() {
		return decodeSet(value), nil
	}
	if f.IsBinary() {
		return value, nil
	}

	if c.useUnicode {
		enc := mysql.CharsetEncoding(c.charset)
		if enc == nil {
			return string(value), nil
		}
		decoded, err := enc.NewDecoder().Bytes(value)
		if err != nil {
			return nil, errors.Annotatef(err, "decoding string from charset %s", c.charset)
		}
		return string(decoded), nil
	}

	return string(value), nil
}

func decodeBlob(c *Converter, f *mysql.Field, value []byte) (interface{}, error) {
	if f.IsBinary() {
		return value, nil
	}
	return decodeString(c, f, value)
}

func decodeSet(value []byte) Set {
	members := strings.Split(string(value), ",")
	set := make(Set, len(members))
	for _, m := range members {
		set[m] = struct{}{}
	}
	return set
}

// padMicros right-pads a fractional-seconds string to microsecond width,
// so ".5" means 500000.
func padMicros(frac string) string {
	if len(frac) >= 6 {
		return frac[:6]
	}
	return frac + strings.Repeat("0", 6-len(frac))
}
