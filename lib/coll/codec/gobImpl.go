package codec

import (
	"bytes"
	"encoding/gob"
	"io"
)

// NewGOBCodec creates a codec using Go's binary gob format for arbitrary element types.
// Every element is written as a self-describing, length-prefixed gob message.
func NewGOBCodec[T any]() Codec[T] {
	return gobCodecImpl[T]{}
}

type gobCodecImpl[T any] struct {
}

// --------------------------------------------------------------------------
// Interface Methods (docu see codec.Codec)
// --------------------------------------------------------------------------

func (gobCodecImpl[T]) Encode(w io.Writer, v T) error {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(&v); err != nil {
		return err
	}
	return writeBlob(w, buf.Bytes())
}

func (gobCodecImpl[T]) Decode(r io.Reader) (T, error) {
	var v T
	b, err := readBlob(r)
	if err != nil {
		return v, err
	}
	err = gob.NewDecoder(bytes.NewReader(b)).Decode(&v)
	return v, err
}
