package codec

import "io"

// Codec writes and reads single elements of the persisted form
type Codec[T any] interface {
	// Encode writes v to w
	Encode(w io.Writer, v T) error
	// Decode reads one element from r
	Decode(r io.Reader) (T, error)
}
