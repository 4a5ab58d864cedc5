package codec

import (
	"bufio"
	"encoding/binary"
	"io"
	"iter"

	"github.com/lni/dragonboat/v4/logger"
	"github.com/pkg/errors"
)

var plog = logger.GetLogger("codec")

const bufferSize = 64 * 1024

// MaxPrealloc caps the count handed to the sized callbacks of ReadSeq and
// ReadMap. Larger containers grow while their elements are read.
const MaxPrealloc = 1 << 16

// --------------------------------------------------------------------------
// Persisted Form
// --------------------------------------------------------------------------
//
// The persisted form of a container is the element count (uint64, little-endian)
// followed by every element in iteration order. Map elements are written as the
// key followed by the value.
//
// The readers consume exactly the bytes of one persisted form from r, so several
// forms can follow each other in one stream. Callers reading large forms from an
// unbuffered source should pass a *bufio.Reader and keep using it afterwards.

// WriteSeq writes n elements produced by seq. seq must yield exactly n elements.
func WriteSeq[T any](w io.Writer, n int, seq iter.Seq[T], c Codec[T]) error {
	bw := bufio.NewWriterSize(w, bufferSize)

	if err := binary.Write(bw, binary.LittleEndian, uint64(n)); err != nil {
		return errors.Wrap(err, "write element count")
	}

	written := 0
	for v := range seq {
		if err := c.Encode(bw, v); err != nil {
			return errors.Wrapf(err, "write element %d", written)
		}
		written++
	}
	if written != n {
		return errors.Errorf("sequence yielded %d elements, expected %d", written, n)
	}

	return bw.Flush()
}

// ReadSeq reads the persisted form of a sequence and hands every element to fn in order.
// The count, capped at MaxPrealloc, is handed to sized (if not nil) before any element.
// It returns the number of elements read.
func ReadSeq[T any](r io.Reader, c Codec[T], sized func(n int), fn func(T)) (int, error) {
	n, err := readCount(r)
	if err != nil {
		return 0, err
	}
	if sized != nil {
		sized(min(n, MaxPrealloc))
	}

	for i := 0; i < n; i++ {
		v, err := c.Decode(r)
		if err != nil {
			return i, errors.Wrapf(err, "read element %d of %d", i, n)
		}
		fn(v)
	}

	plog.Debugf("read %d elements", n)
	return n, nil
}

// WriteMap writes n key/value pairs produced by seq.
func WriteMap[K, V any](w io.Writer, n int, seq iter.Seq2[K, V], kc Codec[K], vc Codec[V]) error {
	bw := bufio.NewWriterSize(w, bufferSize)

	if err := binary.Write(bw, binary.LittleEndian, uint64(n)); err != nil {
		return errors.Wrap(err, "write entry count")
	}

	written := 0
	for k, v := range seq {
		if err := kc.Encode(bw, k); err != nil {
			return errors.Wrapf(err, "write key %d", written)
		}
		if err := vc.Encode(bw, v); err != nil {
			return errors.Wrapf(err, "write value %d", written)
		}
		written++
	}
	if written != n {
		return errors.Errorf("map yielded %d entries, expected %d", written, n)
	}

	return bw.Flush()
}

// ReadMap reads the persisted form of a map. The count, capped at MaxPrealloc, is
// handed to sized before any entry so the caller can preallocate its storage.
func ReadMap[K, V any](r io.Reader, kc Codec[K], vc Codec[V], sized func(n int), fn func(K, V)) (int, error) {
	n, err := readCount(r)
	if err != nil {
		return 0, err
	}
	if sized != nil {
		sized(min(n, MaxPrealloc))
	}

	for i := 0; i < n; i++ {
		k, err := kc.Decode(r)
		if err != nil {
			return i, errors.Wrapf(err, "read key %d of %d", i, n)
		}
		v, err := vc.Decode(r)
		if err != nil {
			return i, errors.Wrapf(err, "read value %d of %d", i, n)
		}
		fn(k, v)
	}

	plog.Debugf("read %d entries", n)
	return n, nil
}

func readCount(r io.Reader) (int, error) {
	var n uint64
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return 0, errors.Wrap(err, "read element count")
	}
	if n > uint64(^uint(0)>>1) {
		return 0, errors.Errorf("element count %d does not fit an int", n)
	}
	return int(n), nil
}
