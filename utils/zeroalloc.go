package utils

import "unsafe"

// StringToByteSlice returns a []byte view of s without copying. The
// caller must not modify the returned slice.
func StringToByteSlice(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// ByteSliceToString returns a string view of b without copying. The
// caller must not modify b while the string is in use.
func ByteSliceToString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(&b[0], len(b))
}
