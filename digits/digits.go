/*
Package digits implements reading a run of decimal digits from a text file.

The file is expected to contain a single number such as "3.14159...". Any
surrounding whitespace is ignored and, if a decimal point is present, only the
fractional part is kept. Characters are not validated; anything that is not
'0' to '9' is passed through unchanged.
*/
package digits

// Sequence is an ordered run of characters, one per pixel. It is never
// modified once it has been read.
type Sequence []rune

// IsDigit reports whether c is one of '0' to '9'
func IsDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

// Invalid returns the number of characters that are not decimal digits
func (s Sequence) Invalid() int {
	n := 0
	for _, c := range s {
		if !IsDigit(c) {
			n++
		}
	}
	return n
}

func (s Sequence) String() string {
	return string(s)
}
