package codec

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/pkg/errors"
)

// NewStringCodec creates a codec writing strings as a uint32 length followed by the bytes.
func NewStringCodec() Codec[string] {
	return stringCodecImpl{}
}

type stringCodecImpl struct {
}

// --------------------------------------------------------------------------
// Interface Methods (docu see codec.Codec)
// --------------------------------------------------------------------------

func (stringCodecImpl) Encode(w io.Writer, v string) error {
	return writeBlob(w, []byte(v))
}

func (stringCodecImpl) Decode(r io.Reader) (string, error) {
	b, err := readBlob(r)
	return string(b), err
}

// writeBlob writes a length-prefixed byte slice
func writeBlob(w io.Writer, b []byte) error {
	if uint64(len(b)) > math.MaxUint32 {
		return errors.Errorf("element of %d bytes exceeds the length prefix", len(b))
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(len(b))); err != nil {
		return err
	}
	_, err := w.Write(b)
	return err
}

// readBlob reads a length-prefixed byte slice
func readBlob(r io.Reader) ([]byte, error) {
	var n uint32
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return nil, err
	}
	b := make([]byte, n)
	if _, err := io.ReadFull(r, b); err != nil {
		return nil, err
	}
	return b, nil
}
