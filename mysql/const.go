package mysql

const (
	DEFAULT_CHARSET = "utf8"

	// TimeFormat is the layout of DATETIME/TIMESTAMP text values
	// without a fractional part.
	TimeFormat string = "2006-01-02 15:04:05"
)

const (
	MYSQL_TYPE_DECIMAL byte = iota
	MYSQL_TYPE_TINY
	MYSQL_TYPE_SHORT
	MYSQL_TYPE_LONG
	MYSQL_TYPE_FLOAT
	MYSQL_TYPE_DOUBLE
	MYSQL_TYPE_NULL
	MYSQL_TYPE_TIMESTAMP
	MYSQL_TYPE_LONGLONG
	MYSQL_TYPE_INT24
	MYSQL_TYPE_DATE
	MYSQL_TYPE_TIME
	MYSQL_TYPE_DATETIME
	MYSQL_TYPE_YEAR
	MYSQL_TYPE_NEWDATE
	MYSQL_TYPE_VARCHAR
	MYSQL_TYPE_BIT

	// MySQL 5.6 fractional temporal types, only seen inside the binlog.
	MYSQL_TYPE_TIMESTAMP2
	MYSQL_TYPE_DATETIME2
	MYSQL_TYPE_TIME2
)

const (
	MYSQL_TYPE_JSON byte = iota + 0xf5
	MYSQL_TYPE_NEWDECIMAL
	MYSQL_TYPE_ENUM
	MYSQL_TYPE_SET
	MYSQL_TYPE_TINY_BLOB
	MYSQL_TYPE_MEDIUM_BLOB
	MYSQL_TYPE_LONG_BLOB
	MYSQL_TYPE_BLOB
	MYSQL_TYPE_VAR_STRING
	MYSQL_TYPE_STRING
	MYSQL_TYPE_GEOMETRY
)

const (
	NOT_NULL_FLAG         = 1 << 0
	PRI_KEY_FLAG          = 1 << 1
	UNIQUE_KEY_FLAG       = 1 << 2
	MULTIPLE_KEY_FLAG     = 1 << 3
	BLOB_FLAG             = 1 << 4
	UNSIGNED_FLAG         = 1 << 5
	ZEROFILL_FLAG         = 1 << 6
	BINARY_FLAG           = 1 << 7
	ENUM_FLAG             = 1 << 8
	AUTO_INCREMENT_FLAG   = 1 << 9
	TIMESTAMP_FLAG        = 1 << 10
	SET_FLAG              = 1 << 11
	NO_DEFAULT_VALUE_FLAG = 1 << 12
	ON_UPDATE_NOW_FLAG    = 1 << 13
	PART_KEY_FLAG         = 1 << 14
	NUM_FLAG              = 1 << 15
)
