package utils

import (
	"fmt"
	"unicode/utf8"
)

// DecodeError reports the first byte that prevents data from being read as UTF-8 text.
type DecodeError struct {
	Offset int
	Byte   byte
}

func (decodeError *DecodeError) Error() string {
	return fmt.Sprintf("cannot decode byte 0x%02x at offset %d as utf-8", decodeError.Byte, decodeError.Offset)
}

// DecodeText returns data as a string when it is valid UTF-8 and a *DecodeError otherwise.
func DecodeText(data []byte) (string, error) {
	if utf8.Valid(data) {
		return string(data), nil
	}
	offset := 0
	for offset < len(data) {
		decodedRune, runeWidth := utf8.DecodeRune(data[offset:])
		if decodedRune == utf8.RuneError && runeWidth <= 1 {
			return "", &DecodeError{Offset: offset, Byte: data[offset]}
		}
		offset += runeWidth
	}
	return string(data), nil
}
