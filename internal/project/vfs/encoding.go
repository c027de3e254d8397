package vfs

import (
	"bytes"
	"unicode/utf8"
)

// DecodeUTF8 returns content as text, replacing each run of invalid UTF-8
// bytes with U+FFFD. The second result reports whether any
// replacement was made.
func DecodeUTF8(content []byte) (string, bool) {
	if utf8.Valid(content) {
		return string(content), false
	}
	return string(bytes.ToValidUTF8(content, []byte(string(utf8.RuneError)))), true
}
