package conv

import (
	"encoding/hex"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestToMySQLNumbers(t *testing.T) {
	c := newTestConverter(t)

	tests := []struct {
		In     interface{}
		Expect interface{}
	}{
		{In: nil, Expect: nil},
		{In: int(42), Expect: int64(42)},
		{In: int8(-1), Expect: int64(-1)},
		{In: int16(300), Expect: int64(300)},
		{In: int32(-70000), Expect: int64(-70000)},
		{In: int64(1 << 40), Expect: int64(1 << 40)},
		{In: uint(42), Expect: uint64(42)},
		{In: uint8(255), Expect: uint64(255)},
		{In: uint16(65535), Expect: uint64(65535)},
		{In: uint32(1 << 31), Expect: uint64(1 << 31)},
		{In: uint64(1<<64 - 1), Expect: uint64(1<<64 - 1)},
		{In: float32(0.5), Expect: float64(0.5)},
		{In: 1.25, Expect: 1.25},
		{In: true, Expect: int64(1)},
		{In: false, Expect: int64(0)},
	}

	for _, test := range tests {
		got, err := c.ToMySQL(test.In)
		require.NoError(t, err)
		require.Equal(t, test.Expect, got)
	}
}

func TestToMySQLDecimal(t *testing.T) {
	c := newTestConverter(t)

	d := decimal.RequireFromString("123.4500")
	got, err := c.ToMySQL(d)
	require.NoError(t, err)
	require.Equal(t, d, got)
	require.Equal(t, "123.4500", c.Quote(got))
}

func TestToMySQLUnsupportedType(t *testing.T) {
	c := newTestConverter(t)

	_, err := c.ToMySQL(struct{ X int }{})
	require.Error(t, err)

	var typeErr *UnsupportedTypeError
	require.ErrorAs(t, err, &typeErr)
	require.Contains(t, typeErr.Error(), "struct")
}

func TestToMySQLString(t *testing.T) {
	c := newTestConverter(t)

	got, err := c.ToMySQL("hello")
	require.NoError(t, err)
	require.Equal(t, []byte("hello"), got)
}

func TestToMySQLStringSlashCharset(t *testing.T) {
	c, err := NewConverter("big5", true)
	require.NoError(t, err)

	// 功 is one of the Big5 characters whose trailing byte is 0x5c;
	// escaping the encoded bytes would corrupt it, so it must come back
	// as a hex literal.
	got, err := c.ToMySQL("功")
	require.NoError(t, err)

	h, ok := got.(HexLiteral)
	require.True(t, ok)
	require.Equal(t, "功", h.Original)
	require.Equal(t, "big5", h.Charset)

	raw, err := hex.DecodeString(h.Hex())
	require.NoError(t, err)
	require.Contains(t, raw, byte(0x5c))

	// Escape and Quote leave it bare.
	require.Equal(t, h, c.Escape(got))
	require.Equal(t, h.String(), c.Quote(got))
}

func TestToMySQLStringSlashCharsetCleanText(t *testing.T) {
	c, err := NewConverter("gbk", true)
	require.NoError(t, err)

	// GBK text without a 0x5c byte stays plain encoded bytes.
	got, err := c.ToMySQL("中")
	require.NoError(t, err)
	require.Equal(t, []byte{0xd6, 0xd0}, got)
}

func TestToMySQLBackslashInUtf8(t *testing.T) {
	c := newTestConverter(t)

	// utf8 is not a slash charset: a backslash is handled by Escape,
	// never by hex-literal fallback.
	got, err := c.ToMySQL(`a\b`)
	require.NoError(t, err)
	require.Equal(t, []byte(`a\b`), got)
	require.Equal(t, `'a\\b'`, c.Quote(c.Escape(got)))
}

func TestToMySQLHexLiteralIdempotent(t *testing.T) {
	c := newTestConverter(t)

	h, err := NewHexLiteral("abc", "utf8")
	require.NoError(t, err)

	got, err := c.ToMySQL(h)
	require.NoError(t, err)
	require.Equal(t, h, got)
	require.Equal(t, "0x616263", c.Quote(got))
}

func TestToMySQLDate(t *testing.T) {
	c := newTestConverter(t)

	got, err := c.ToMySQL(Date{Year: 2014, Month: time.February, Day: 3})
	require.NoError(t, err)
	require.Equal(t, []byte("2014-02-03"), got)

	got, err = c.ToMySQL(Date{Year: 987, Month: time.December, Day: 31})
	require.NoError(t, err)
	require.Equal(t, []byte("0987-12-31"), got)
}

func TestToMySQLTimeOfDay(t *testing.T) {
	c := newTestConverter(t)

	got, err := c.ToMySQL(TimeOfDay{Hour: 4, Minute: 5, Second: 6})
	require.NoError(t, err)
	require.Equal(t, []byte("04:05:06"), got)

	got, err = c.ToMySQL(TimeOfDay{Hour: 23, Minute: 59, Second: 59, Microsecond: 7})
	require.NoError(t, err)
	require.Equal(t, []byte("23:59:59.000007"), got)
}

func TestToMySQLDateTime(t *testing.T) {
	c := newTestConverter(t)

	got, err := c.ToMySQL(time.Date(2014, 2, 3, 4, 5, 6, 0, time.UTC))
	require.NoError(t, err)
	require.Equal(t, []byte("2014-02-03 04:05:06"), got)

	got, err = c.ToMySQL(time.Date(2014, 2, 3, 4, 5, 6, 500000*1000, time.UTC))
	require.NoError(t, err)
	require.Equal(t, []byte("2014-02-03 04:05:06.500000"), got)
}

func TestToMySQLDuration(t *testing.T) {
	c := newTestConverter(t)

	tests := []struct {
		In     time.Duration
		Expect string
	}{
		{In: 0, Expect: "00:00:00"},
		{In: time.Second, Expect: "00:00:01"},
		{In: -time.Second, Expect: "-00:00:01"},
		{In: -1500 * time.Millisecond, Expect: "-00:00:01.500000"},
		{In: 1500 * time.Millisecond, Expect: "00:00:01.500000"},
		{In: -(24*time.Hour - 500*time.Millisecond), Expect: "-23:59:59.500000"},
		{In: 26*time.Hour + 3*time.Minute + 4*time.Second, Expect: "26:03:04"},
		{In: 100 * time.Hour, Expect: "100:00:00"},
		{In: 10*time.Hour + 30*time.Minute + 15*time.Second + 500*time.Microsecond, Expect: "10:30:15.000500"},
	}

	for _, test := range tests {
		got, err := c.ToMySQL(test.In)
		require.NoError(t, err)
		require.Equal(t, []byte(test.Expect), got)
	}
}

func TestLiteral(t *testing.T) {
	c := newTestConverter(t)

	tests := []struct {
		In     interface{}
		Expect string
	}{
		{In: 42, Expect: "42"},
		{In: nil, Expect: "NULL"},
		{In: true, Expect: "1"},
		{In: "O'Brien", Expect: `'O\'Brien'`},
		{In: 1.5, Expect: "1.5"},
		{In: time.Date(2014, 2, 3, 4, 5, 6, 0, time.UTC), Expect: "'2014-02-03 04:05:06'"},
		{In: -time.Second, Expect: "'-00:00:01'"},
	}

	for _, test := range tests {
		got, err := c.Literal(test.In)
		require.NoError(t, err)
		require.Equal(t, test.Expect, got)
	}

	_, err := c.Literal(make(chan int))
	require.Error(t, err)
}
