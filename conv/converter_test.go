package conv

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-mysql-org/mysqlconv/mysql"
)

func TestNewConverterDefaults(t *testing.T) {
	c, err := NewConverter("", true)
	require.NoError(t, err)
	require.Equal(t, "utf8", c.Charset())
	require.Equal(t, uint16(33), c.CharsetID())
	require.True(t, c.UseUnicode())
}

func TestSetCharsetNormalizesUtf8mb4(t *testing.T) {
	c, err := NewConverter("utf8mb4", true)
	require.NoError(t, err)
	require.Equal(t, "utf8", c.Charset())
	require.Equal(t, uint16(33), c.CharsetID())
}

func TestSetCharsetUnknown(t *testing.T) {
	c, err := NewConverter("latin1", true)
	require.NoError(t, err)

	err = c.SetCharset("klingon")
	require.Error(t, err)

	var charsetErr *mysql.UnknownCharsetError
	require.ErrorAs(t, err, &charsetErr)
	require.Equal(t, "klingon", charsetErr.Charset)

	// The previous configuration survives a failed SetCharset.
	require.Equal(t, "latin1", c.Charset())
	require.Equal(t, uint16(8), c.CharsetID())
}

func TestSetUnicode(t *testing.T) {
	c, err := NewConverter("utf8", true)
	require.NoError(t, err)

	c.SetUnicode(false)
	require.False(t, c.UseUnicode())
	c.SetUnicode(true)
	require.True(t, c.UseUnicode())
}

func TestNewConverterWithConfig(t *testing.T) {
	cfg := NewDefaultConfig()
	c, err := NewConverterWithConfig(cfg)
	require.NoError(t, err)
	require.Equal(t, "utf8", c.Charset())
	require.True(t, c.UseUnicode())
}
