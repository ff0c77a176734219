package utils

// CeilDiv - Returns the ceiling of numerator divided by divisor
func CeilDiv(numerator, divisor int) int {
	if numerator%divisor == 0 {
		return numerator / divisor
	}

	return numerator/divisor + 1
}

// VisibleLen - Returns the number of UTF-8 code points in a byte string, counted as the bytes whose
// top two bits are not 10 (i.e. everything except continuation bytes). This matches the printable
// width only for fixed-width Latin-script text; combining marks and wide characters are not handled.
func VisibleLen(s string) int {
	count := 0
	for i := 0; i < len(s); i++ {
		if s[i]&0xC0 != 0x80 {
			count++
		}
	}

	return count
}
