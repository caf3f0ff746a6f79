package mysql

// IsNumericType returns true if the given type is numeric.
func IsNumericType(typ byte) bool {
	switch typ {
	case MYSQL_TYPE_TINY,
		MYSQL_TYPE_SHORT,
		MYSQL_TYPE_INT24,
		MYSQL_TYPE_LONG,
		MYSQL_TYPE_LONGLONG,
		MYSQL_TYPE_FLOAT,
		MYSQL_TYPE_DOUBLE,
		MYSQL_TYPE_DECIMAL,
		MYSQL_TYPE_NEWDECIMAL:
		return true

	default:
		return false
	}
}

// IsStringType returns true if the given type is reported by the server
// as a string-family column. CHAR, VARCHAR, ENUM, SET and the BLOBs all
// arrive under these codes.
func IsStringType(typ byte) bool {
	switch typ {
	case MYSQL_TYPE_VARCHAR,
		MYSQL_TYPE_VAR_STRING,
		MYSQL_TYPE_STRING,
		MYSQL_TYPE_ENUM,
		MYSQL_TYPE_SET,
		MYSQL_TYPE_TINY_BLOB,
		MYSQL_TYPE_MEDIUM_BLOB,
		MYSQL_TYPE_LONG_BLOB,
		MYSQL_TYPE_BLOB,
		MYSQL_TYPE_GEOMETRY:
		return true

	default:
		return false
	}
}

var typeNames = map[byte]string{
	MYSQL_TYPE_DECIMAL:     "DECIMAL",
	MYSQL_TYPE_TINY:        "TINY",
	MYSQL_TYPE_SHORT:       "SHORT",
	MYSQL_TYPE_LONG:        "LONG",
	MYSQL_TYPE_FLOAT:       "FLOAT",
	MYSQL_TYPE_DOUBLE:      "DOUBLE",
	MYSQL_TYPE_NULL:        "NULL",
	MYSQL_TYPE_TIMESTAMP:   "TIMESTAMP",
	MYSQL_TYPE_LONGLONG:    "LONGLONG",
	MYSQL_TYPE_INT24:       "INT24",
	MYSQL_TYPE_DATE:        "DATE",
	MYSQL_TYPE_TIME:        "TIME",
	MYSQL_TYPE_DATETIME:    "DATETIME",
	MYSQL_TYPE_YEAR:        "YEAR",
	MYSQL_TYPE_NEWDATE:     "NEWDATE",
	MYSQL_TYPE_VARCHAR:     "VARCHAR",
	MYSQL_TYPE_BIT:         "BIT",
	MYSQL_TYPE_JSON:        "JSON",
	MYSQL_TYPE_NEWDECIMAL:  "NEWDECIMAL",
	MYSQL_TYPE_ENUM:        "ENUM",
	MYSQL_TYPE_SET:         "SET",
	MYSQL_TYPE_TINY_BLOB:   "TINY_BLOB",
	MYSQL_TYPE_MEDIUM_BLOB: "MEDIUM_BLOB",
	MYSQL_TYPE_LONG_BLOB:   "LONG_BLOB",
	MYSQL_TYPE_BLOB:        "BLOB",
	MYSQL_TYPE_VAR_STRING:  "VAR_STRING",
	MYSQL_TYPE_STRING:      "STRING",
	MYSQL_TYPE_GEOMETRY:    "GEOMETRY",
}

// TypeName returns the symbolic name of a wire type code, for error
// messages and logs.
func TypeName(typ byte) string {
	if name, ok := typeNames[typ]; ok {
		return name
	}
	return "UNKNOWN"
}
