package conv

import (
	"fmt"

	"github.com/go-mysql-org/mysqlconv/mysql"
)

// UnsupportedTypeError is returned by ToMySQL when a value's type has no
// registered encoder.
type UnsupportedTypeError struct {
	Type string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("conv: Go type %s cannot be converted to a MySQL type", e.Type)
}

// ConversionError is returned when the textual representation of a column
// value cannot be parsed as the type its field descriptor declares. It
// always carries the column name so a failure inside a multi-column row
// stays diagnosable.
type ConversionError struct {
	Field string
	Value []byte
	Err   error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("conv: %s (field %s)", e.Err, e.Field)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// ConversionTypeError is returned when a raw column value is structurally
// wrong for its declared type, for example a BIT value longer than eight
// bytes.
type ConversionTypeError struct {
	Field  string
	Type   byte
	Reason string
}

func (e *ConversionTypeError) Error() string {
	return fmt.Sprintf("conv: %s for %s column (field %s)", e.Reason, mysql.TypeName(e.Type), e.Field)
}
