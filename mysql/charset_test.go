package mysql

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookupCharset(t *testing.T) {
	tests := []struct {
		Charset string
		ID      uint16
	}{
		{Charset: "utf8", ID: 33},
		{Charset: "utf8mb4", ID: 45},
		{Charset: "latin1", ID: 8},
		{Charset: "big5", ID: 1},
		{Charset: "binary", ID: 63},
	}

	for _, test := range tests {
		id, err := LookupCharset(test.Charset)
		require.NoError(t, err)
		require.Equal(t, test.ID, id)
	}
}

func TestLookupCharsetUnknown(t *testing.T) {
	_, err := LookupCharset("klingon")
	require.Error(t, err)

	var charsetErr *UnknownCharsetError
	require.ErrorAs(t, err, &charsetErr)
	require.Equal(t, "klingon", charsetErr.Charset)
}

func TestIsSlashCharset(t *testing.T) {
	require.True(t, IsSlashCharset("big5"))
	require.True(t, IsSlashCharset("sjis"))
	require.True(t, IsSlashCharset("gbk"))
	require.False(t, IsSlashCharset("utf8"))
	require.False(t, IsSlashCharset("latin1"))
}

func TestCharsetEncoding(t *testing.T) {
	// UTF-8 compatible charsets need no transcoding.
	require.Nil(t, CharsetEncoding("utf8"))
	require.Nil(t, CharsetEncoding("binary"))
	require.Nil(t, CharsetEncoding("ascii"))

	require.NotNil(t, CharsetEncoding("gbk"))
	require.NotNil(t, CharsetEncoding("big5"))
	require.NotNil(t, CharsetEncoding("latin1"))
}
