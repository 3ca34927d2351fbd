package tree

import "bytes"

// Bytes is a binary safe value buffer. Its length is authoritative: embedded zero
// bytes are part of the value.
type Bytes []byte

// CopyBytes returns a copy of b that does not alias the source buffer.
func CopyBytes(b []byte) Bytes {
	if b == nil {
		return Bytes{}
	}

	return Bytes(bytes.Clone(b))
}

// Len returns the number of bytes in the value.
func (b Bytes) Len() int {
	return len(b)
}

// Equal reports whether b and other hold the same bytes.
func (b Bytes) Equal(other []byte) bool {
	return bytes.Equal(b, other)
}

// String returns the value as a Go string without any decoding.
func (b Bytes) String() string {
	return string(b)
}
