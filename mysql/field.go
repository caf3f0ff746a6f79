package mysql

// Field is the per-column metadata the server sends ahead of each result
// set: the column name, its wire type code and the flag bits. The codec
// only reads it.
type Field struct {
	Name    string
	Type    byte
	Flag    uint16
	Charset uint16
}

func (f *Field) IsSet() bool {
	return f.Flag&SET_FLAG != 0
}

func (f *Field) IsBinary() bool {
	return f.Flag&BINARY_FLAG != 0
}

func (f *Field) IsUnsigned() bool {
	return f.Flag&UNSIGNED_FLAG != 0
}
