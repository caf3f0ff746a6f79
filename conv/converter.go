// Package conv converts values between Go types and the textual form the
// MySQL wire protocol uses for them. It covers both directions: ToMySQL,
// Escape and Quote turn a Go value into a literal that is safe to embed
// in a SQL statement, and FromMySQL turns the raw bytes of one result
// column back into a Go value using the column's field descriptor.
//
// A Converter is safe for concurrent use as long as nothing is mutating
// its configuration: SetCharset and SetUnicode must be externally
// synchronized with readers, the package provides no locking of its own.
package conv

import (
	"github.com/pingcap/errors"

	"github.com/go-mysql-org/mysqlconv/mysql"
)

// Converter holds the codec configuration shared by the encode and
// decode directions: the resolved charset, its collation id and whether
// string columns decode to transcoded text.
type Converter struct {
	charset    string
	charsetID  uint16
	useUnicode bool
}

// NewConverter returns a Converter for the given charset. An empty
// charset selects utf8.
func NewConverter(charset string, useUnicode bool) (*Converter, error) {
	c := new(Converter)
	if err := c.SetCharset(charset); err != nil {
		return nil, errors.Trace(err)
	}
	c.SetUnicode(useUnicode)
	return c, nil
}

// NewConverterWithConfig returns a Converter configured from cfg.
func NewConverterWithConfig(cfg *Config) (*Converter, error) {
	return NewConverter(cfg.Charset, cfg.UseUnicode)
}

// SetCharset resolves and stores the charset and its collation id. An
// empty name defaults to utf8 and utf8mb4 is normalized to its utf8 base
// family before lookup. On an unknown name the previous configuration is
// kept and a mysql.UnknownCharsetError is returned.
func (c *Converter) SetCharset(charset string) error {
	if charset == "" {
		charset = mysql.DEFAULT_CHARSET
	}
	if charset == "utf8mb4" {
		charset = "utf8"
	}

	id, err := mysql.LookupCharset(charset)
	if err != nil {
		return err
	}

	c.charset = charset
	c.charsetID = id
	return nil
}

// SetUnicode sets whether string columns decode to text in the
// configured charset. When disabled FromMySQL returns the raw column
// bytes as an untranscoded string.
func (c *Converter) SetUnicode(enabled bool) {
	c.useUnicode = enabled
}

// Charset returns the resolved charset name.
func (c *Converter) Charset() string {
	return c.charset
}

// CharsetID returns the collation id of the resolved charset.
func (c *Converter) CharsetID() uint16 {
	return c.charsetID
}

// UseUnicode returns whether string columns decode to transcoded text.
func (c *Converter) UseUnicode() bool {
	return c.useUnicode
}

// Literal runs value through the full outbound pipeline, ToMySQL then
// Escape then Quote, and returns the finished SQL literal.
func (c *Converter) Literal(value interface{}) (string, error) {
	encoded, err := c.ToMySQL(value)
	if err != nil {
		return "", errors.Trace(err)
	}
	return c.Quote(c.Escape(encoded)), nil
}
