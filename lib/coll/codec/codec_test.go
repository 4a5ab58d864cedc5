package codec

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"maps"
	"math"
	"slices"
	"strconv"
	"testing"
)

// testStringCodecs is a map of codec name to factory function
var testStringCodecs = map[string]func() Codec[string]{
	"String": NewStringCodec,
	"JSON":   NewJSONCodec[string],
	"GOB":    NewGOBCodec[string],
}

type celsius int16

// TestScalarRoundTrip tests that scalars of every width survive encoding
func TestScalarRoundTrip(t *testing.T) {
	roundTrip(t, NewBinaryCodec[int8](), []int8{0, -1, 127, -128})
	roundTrip(t, NewBinaryCodec[uint16](), []uint16{0, 1, 65535})
	roundTrip(t, NewBinaryCodec[int32](), []int32{0, -7, 1 << 30})
	roundTrip(t, NewBinaryCodec[int64](), []int64{0, -1 << 62, 1<<63 - 1})
	roundTrip(t, NewBinaryCodec[float32](), []float32{0, 1.5, -3.25})
	roundTrip(t, NewBinaryCodec[float64](), []float64{0, 1e300, -2.5})
	roundTrip(t, NewBinaryCodec[int](), []int{0, -42, 1 << 40})
	roundTrip(t, NewBinaryCodec[uint](), []uint{0, 42, 1 << 40})
	roundTrip(t, NewBinaryCodec[celsius](), []celsius{-40, 0, 100})
}

func TestBinaryWidth(t *testing.T) {
	var buf bytes.Buffer
	if err := NewBinaryCodec[int16]().Encode(&buf, 3); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 2 {
		t.Errorf("int16 should take 2 bytes, took %d", buf.Len())
	}

	buf.Reset()
	if err := NewBinaryCodec[int]().Encode(&buf, 3); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 8 {
		t.Errorf("int should take 8 bytes, took %d", buf.Len())
	}
}

// TestStringCodecs tests the string capable codecs
func TestStringCodecs(t *testing.T) {
	for name, factory := range testStringCodecs {
		t.Run(name, func(t *testing.T) {
			roundTrip(t, factory(), []string{"", "a", "hello world", "äöü"})
		})
	}
}

func roundTrip[T comparable](t *testing.T, c Codec[T], values []T) {
	t.Helper()

	var buf bytes.Buffer
	for _, v := range values {
		if err := c.Encode(&buf, v); err != nil {
			t.Fatalf("Failed to encode %v: %v", v, err)
		}
	}
	for _, want := range values {
		got, err := c.Decode(&buf)
		if err != nil {
			t.Fatalf("Failed to decode %v: %v", want, err)
		}
		if got != want {
			t.Errorf("Expected %v, got %v", want, got)
		}
	}
	if buf.Len() != 0 {
		t.Errorf("%d bytes left after decoding", buf.Len())
	}
}

// TestSeqRoundTrip tests the persisted form of sequences
func TestSeqRoundTrip(t *testing.T) {
	values := []int32{10, 20, 30, 40}

	var buf bytes.Buffer
	if err := WriteSeq(&buf, len(values), slices.Values(values), NewBinaryCodec[int32]()); err != nil {
		t.Fatalf("WriteSeq failed: %v", err)
	}

	// 8 bytes count + 4 bytes per element
	if buf.Len() != 8+4*len(values) {
		t.Errorf("unexpected persisted size %d", buf.Len())
	}

	var got []int32
	n, err := ReadSeq(&buf, NewBinaryCodec[int32](), nil, func(v int32) { got = append(got, v) })
	if err != nil {
		t.Fatalf("ReadSeq failed: %v", err)
	}
	if n != len(values) || !slices.Equal(got, values) {
		t.Errorf("Expected %v, got %v (n=%d)", values, got, n)
	}
}

// TestMapRoundTrip tests the persisted form of maps keeps iteration order
func TestMapRoundTrip(t *testing.T) {
	keys := []int8{1, 5, 2}
	vals := []string{"a", "b", "c"}
	seq := func(yield func(int8, string) bool) {
		for i := range keys {
			if !yield(keys[i], vals[i]) {
				return
			}
		}
	}

	var buf bytes.Buffer
	if err := WriteMap(&buf, len(keys), seq, NewBinaryCodec[int8](), NewStringCodec()); err != nil {
		t.Fatalf("WriteMap failed: %v", err)
	}

	var (
		sized    int
		gotKeys  []int8
		gotVals  []string
		gotPairs = map[int8]string{}
	)
	n, err := ReadMap(&buf, NewBinaryCodec[int8](), NewStringCodec(),
		func(n int) { sized = n },
		func(k int8, v string) {
			gotKeys = append(gotKeys, k)
			gotVals = append(gotVals, v)
			gotPairs[k] = v
		})
	if err != nil {
		t.Fatalf("ReadMap failed: %v", err)
	}
	if n != 3 || sized != 3 {
		t.Errorf("Expected 3 entries, got n=%d sized=%d", n, sized)
	}
	if !slices.Equal(gotKeys, keys) || !slices.Equal(gotVals, vals) {
		t.Errorf("order not preserved: %v %v", gotKeys, gotVals)
	}
	if !maps.Equal(gotPairs, map[int8]string{1: "a", 5: "b", 2: "c"}) {
		t.Errorf("unexpected pairs %v", gotPairs)
	}
}

func TestWriteSeqCountMismatch(t *testing.T) {
	var buf bytes.Buffer
	err := WriteSeq(&buf, 3, slices.Values([]int64{1, 2}), NewBinaryCodec[int64]())
	if err == nil {
		t.Fatal("expected an error when the sequence is shorter than the count")
	}
}

func TestReadSeqTruncated(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSeq(&buf, 3, slices.Values([]int64{1, 2, 3}), NewBinaryCodec[int64]()); err != nil {
		t.Fatal(err)
	}
	truncated := bytes.NewReader(buf.Bytes()[:buf.Len()-4])

	n, err := ReadSeq(truncated, NewBinaryCodec[int64](), nil, func(int64) {})
	if err == nil {
		t.Fatal("expected an error for truncated input")
	}
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("expected io.ErrUnexpectedEOF in the chain, got %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 complete elements before the failure, got %d", n)
	}
}

func TestReadSeqOversizedCount(t *testing.T) {
	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.LittleEndian, uint64(1)<<62); err != nil {
		t.Fatal(err)
	}
	if err := NewBinaryCodec[int64]().Encode(&buf, 7); err != nil {
		t.Fatal(err)
	}

	hint := -1
	var got []int64
	n, err := ReadSeq(&buf, NewBinaryCodec[int64](),
		func(n int) { hint = n },
		func(v int64) { got = append(got, v) })
	if err == nil {
		t.Fatal("expected an error when the input ends before the count")
	}
	if hint != MaxPrealloc {
		t.Errorf("expected the size hint to be capped at %d, got %d", MaxPrealloc, hint)
	}
	if n != 1 || !slices.Equal(got, []int64{7}) {
		t.Errorf("expected the one present element, got %d %v", n, got)
	}
}

func TestConsecutiveForms(t *testing.T) {
	var buf bytes.Buffer
	c := NewBinaryCodec[int32]()
	if err := WriteSeq(&buf, 2, slices.Values([]int32{1, 2}), c); err != nil {
		t.Fatal(err)
	}
	if err := WriteMap(&buf, 1, maps.All(map[int32]string{3: "c"}), c, NewStringCodec()); err != nil {
		t.Fatal(err)
	}
	buf.WriteString("tail")

	var seq []int32
	if _, err := ReadSeq(&buf, c, nil, func(v int32) { seq = append(seq, v) }); err != nil {
		t.Fatalf("ReadSeq failed: %v", err)
	}
	m := map[int32]string{}
	if _, err := ReadMap(&buf, c, NewStringCodec(), nil, func(k int32, v string) { m[k] = v }); err != nil {
		t.Fatalf("ReadMap failed: %v", err)
	}

	if !slices.Equal(seq, []int32{1, 2}) || m[3] != "c" || len(m) != 1 {
		t.Errorf("unexpected content %v %v", seq, m)
	}
	if buf.String() != "tail" {
		t.Errorf("expected the bytes after both forms to stay unread, got %q", buf.String())
	}
}

func TestStringTooLong(t *testing.T) {
	if testing.Short() || strconv.IntSize < 64 {
		t.Skip("allocates 4 GiB")
	}
	n := uint64(math.MaxUint32) + 1
	b := make([]byte, n)

	var buf bytes.Buffer
	if err := writeBlob(&buf, b); err == nil {
		t.Error("expected an error for an element longer than the length prefix")
	}
	if buf.Len() != 0 {
		t.Errorf("expected nothing written, got %d bytes", buf.Len())
	}
}
