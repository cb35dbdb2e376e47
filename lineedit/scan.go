package lineedit

// IsLeadByte reports whether b starts a UTF-8 code point, i.e. it is not a
// continuation byte of the form 10xxxxxx.
func IsLeadByte(b byte) bool {
	return b&0xC0 != 0x80
}

// PreviousBoundary returns the start of the code point before offset.
// It stops at 0 on malformed input.
func PreviousBoundary(text []byte, offset int) int {
	for offset > 0 {
		offset--
		if IsLeadByte(text[offset]) {
			break
		}
	}
	return offset
}

// NextBoundary returns the start of the code point after offset, never
// going past length.
func NextBoundary(text []byte, offset, length int) int {
	for offset < length {
		offset++
		if offset == length || IsLeadByte(text[offset]) {
			break
		}
	}
	return offset
}
