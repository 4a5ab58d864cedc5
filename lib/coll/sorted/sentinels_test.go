package sorted

import (
	"testing"

	"github.com/ValentinKolb/dColl/lib/coll"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyCollapse(t *testing.T) {
	e := Empty[int32, string]()
	assert.Same(t, e, Empty[int32, string](), "Empty is shared per type")

	for _, r := range [][2]int32{{0, 10}, {10, 0}, {-5, -5}} {
		sub, err := e.SubMap(r[0], r[1])
		require.NoError(t, err)
		assert.Same(t, e, sub)
	}
	head, _ := e.HeadMap(3)
	tail, _ := e.TailMap(3)
	assert.Same(t, e, head)
	assert.Same(t, e, tail)

	_, err := e.FirstKey()
	assert.ErrorIs(t, err, coll.ErrNoSuchElement)
	_, err = e.LastKey()
	assert.ErrorIs(t, err, coll.ErrNoSuchElement)

	_, err = e.Put(1, "x")
	assert.ErrorIs(t, err, coll.ErrUnsupportedOperation)
	assert.Equal(t, 0, e.Len())
	assert.False(t, e.Iterator().HasNext())
	assert.Equal(t, "{}", e.String())
}

func TestSingletonCollapse(t *testing.T) {
	s := Singleton[int32, string](5, "five")

	head, err := s.HeadMap(5)
	require.NoError(t, err)
	assert.Same(t, Empty[int32, string](), head, "headMap(k) excludes k")

	tail, err := s.TailMap(5)
	require.NoError(t, err)
	assert.Same(t, s, tail, "tailMap(k) includes k")

	sub, _ := s.SubMap(0, 10)
	assert.Same(t, s, sub)
	sub, _ = s.SubMap(6, 10)
	assert.Same(t, Empty[int32, string](), sub)

	head, _ = s.HeadMap(6)
	assert.Same(t, s, head)

	first, _ := s.FirstKey()
	last, _ := s.LastKey()
	assert.Equal(t, int32(5), first)
	assert.Equal(t, int32(5), last)

	assert.Equal(t, "five", s.Get(5))
	assert.Equal(t, "", s.Get(4))
	assert.True(t, s.ContainsValue("five"))

	_, err = s.Remove(5)
	assert.ErrorIs(t, err, coll.ErrUnsupportedOperation)
	assert.ErrorIs(t, s.Clear(), coll.ErrUnsupportedOperation)

	it := s.Iterator()
	e, err := it.Next()
	require.NoError(t, err)
	assert.Equal(t, int32(5), e.Key())
	assert.ErrorIs(t, it.Remove(), coll.ErrUnsupportedOperation)

	_, err = s.KeySet().Remove(5)
	assert.ErrorIs(t, err, coll.ErrUnsupportedOperation)
	assert.Equal(t, "{5=>five}", s.String())
}

func TestSingletonWithComparator(t *testing.T) {
	s := SingletonWithComparator[int32, string](5, "five", reverse)

	// in reverse order every key greater than 5 comes first
	head, _ := s.HeadMap(6)
	assert.Same(t, Empty[int32, string](), head)
	head, _ = s.HeadMap(4)
	assert.Same(t, s, head)
	assert.NotNil(t, s.Comparator())
}
