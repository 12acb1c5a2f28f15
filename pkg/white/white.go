// 19 Oct 2026
// White space handling for the record reader. Lines come straight
// out of a memory map, so we work on byte slices and do not copy.

package white

var asciiSpace = [256]bool{
	'\t': true, '\n': true, '\v': true, '\f': true, '\r': true, ' ': true,
}

// IsWhite is true for the ascii white space characters.
func IsWhite(c byte) bool { return asciiSpace[c] }

// ByteSlice is a line of input.
type ByteSlice []byte

// Fields splits s around runs of white space. The pieces are appended
// to dst, which may be nil, and point into s. Pass in dst[:0] to
// reuse the storage from one line to the next.
func (s ByteSlice) Fields(dst [][]byte) [][]byte {
	start := -1
	for i, c := range s {
		if IsWhite(c) {
			if start >= 0 {
				dst = append(dst, s[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		dst = append(dst, s[start:])
	}
	return dst
}
