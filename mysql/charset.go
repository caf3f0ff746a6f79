package mysql

import (
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
)

// UnknownCharsetError is returned when a charset name is not present in
// the charset table.
type UnknownCharsetError struct {
	Charset string
}

func (e *UnknownCharsetError) Error() string {
	return fmt.Sprintf("mysql: unknown charset %q", e.Charset)
}

// CharsetIds maps a charset name to the collation id the server uses as
// that charset's default.
var CharsetIds = map[string]uint16{
	"big5":     1,
	"dec8":     3,
	"cp850":    4,
	"hp8":      6,
	"koi8r":    7,
	"latin1":   8,
	"latin2":   9,
	"swe7":     10,
	"ascii":    11,
	"ujis":     12,
	"sjis":     13,
	"hebrew":   16,
	"tis620":   18,
	"euckr":    19,
	"koi8u":    22,
	"gb2312":   24,
	"greek":    25,
	"cp1250":   26,
	"gbk":      28,
	"latin5":   30,
	"armscii8": 32,
	"utf8":     33,
	"ucs2":     35,
	"cp866":    36,
	"keybcs2":  37,
	"macce":    38,
	"macroman": 39,
	"cp852":    40,
	"latin7":   41,
	"utf8mb4":  45,
	"cp1251":   51,
	"utf16":    54,
	"utf16le":  56,
	"cp1256":   57,
	"cp1257":   59,
	"utf32":    60,
	"binary":   63,
	"geostd8":  92,
	"cp932":    95,
	"eucjpms":  97,
	"gb18030":  248,
}

// SlashCharsets holds the multi-byte charsets in which 0x5c can occur as
// a trailing byte of a multi-byte sequence. Text encoded in one of these
// cannot be made safe by backslash escaping and must be sent as a hex
// literal instead.
var SlashCharsets = map[string]struct{}{
	"big5":    {},
	"sjis":    {},
	"cp932":   {},
	"gbk":     {},
	"gb2312":  {},
	"gb18030": {},
}

var charsetEncodings = map[string]encoding.Encoding{
	"big5":    traditionalchinese.Big5,
	"sjis":    japanese.ShiftJIS,
	"cp932":   japanese.ShiftJIS,
	"ujis":    japanese.EUCJP,
	"eucjpms": japanese.EUCJP,
	"euckr":   korean.EUCKR,
	"gbk":     simplifiedchinese.GBK,
	"gb2312":  simplifiedchinese.GBK,
	"gb18030": simplifiedchinese.GB18030,
	"latin1":  charmap.Windows1252,
	"latin2":  charmap.ISO8859_2,
	"latin5":  charmap.ISO8859_9,
	"latin7":  charmap.ISO8859_13,
	"greek":   charmap.ISO8859_7,
	"hebrew":  charmap.ISO8859_8,
	"tis620":  charmap.Windows874,
	"koi8r":   charmap.KOI8R,
	"koi8u":   charmap.KOI8U,
	"cp850":   charmap.CodePage850,
	"cp852":   charmap.CodePage852,
	"cp866":   charmap.CodePage866,
	"cp1250":  charmap.Windows1250,
	"cp1251":  charmap.Windows1251,
	"cp1256":  charmap.Windows1256,
	"cp1257":  charmap.Windows1257,
}

// LookupCharset returns the collation id for the given charset name.
func LookupCharset(charset string) (uint16, error) {
	id, ok := CharsetIds[charset]
	if !ok {
		return 0, &UnknownCharsetError{Charset: charset}
	}
	return id, nil
}

// IsSlashCharset reports whether text encoded in charset may contain a
// bare 0x5c byte inside a multi-byte sequence.
func IsSlashCharset(charset string) bool {
	_, ok := SlashCharsets[charset]
	return ok
}

// CharsetEncoding returns the text encoding for charset, or nil when the
// charset needs no transcoding from UTF-8 (utf8, utf8mb4, ascii, binary)
// or no table is registered for it.
func CharsetEncoding(charset string) encoding.Encoding {
	return charsetEncodings[charset]
}
