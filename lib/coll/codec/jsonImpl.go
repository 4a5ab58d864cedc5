package codec

import (
	"io"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// NewJSONCodec creates a codec using json encoding, each element length-prefixed
func NewJSONCodec[T any]() Codec[T] {
	return jsonCodecImpl[T]{}
}

type jsonCodecImpl[T any] struct {
}

// --------------------------------------------------------------------------
// Interface Methods (docu see codec.Codec)
// --------------------------------------------------------------------------

func (jsonCodecImpl[T]) Encode(w io.Writer, v T) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return writeBlob(w, b)
}

func (jsonCodecImpl[T]) Decode(r io.Reader) (T, error) {
	var v T
	b, err := readBlob(r)
	if err != nil {
		return v, err
	}
	err = json.Unmarshal(b, &v)
	return v, err
}
