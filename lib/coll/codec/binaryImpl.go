package codec

import (
	"encoding/binary"
	"io"
	"reflect"

	"github.com/ValentinKolb/dColl/lib/coll"
)

// NewBinaryCodec creates a codec writing scalars as little-endian fixed-width values.
// Platform-sized integers (int, uint, uintptr) are written as 64 bit values.
func NewBinaryCodec[T coll.Scalar]() Codec[T] {
	return binaryCodecImpl[T]{}
}

// binaryCodecImpl implements Codec for scalar types using encoding/binary
type binaryCodecImpl[T coll.Scalar] struct {
}

// --------------------------------------------------------------------------
// Interface Methods (docu see codec.Codec)
// --------------------------------------------------------------------------

func (binaryCodecImpl[T]) Encode(w io.Writer, v T) error {
	if binary.Size(v) > 0 {
		return binary.Write(w, binary.LittleEndian, v)
	}

	// platform-sized integers have no fixed wire size
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int:
		return binary.Write(w, binary.LittleEndian, rv.Int())
	default:
		return binary.Write(w, binary.LittleEndian, rv.Uint())
	}
}

func (binaryCodecImpl[T]) Decode(r io.Reader) (T, error) {
	var v T
	if binary.Size(v) > 0 {
		err := binary.Read(r, binary.LittleEndian, &v)
		return v, err
	}

	switch reflect.ValueOf(v).Kind() {
	case reflect.Int:
		var x int64
		if err := binary.Read(r, binary.LittleEndian, &x); err != nil {
			return v, err
		}
		return T(x), nil
	default:
		var x uint64
		if err := binary.Read(r, binary.LittleEndian, &x); err != nil {
			return v, err
		}
		return T(x), nil
	}
}
