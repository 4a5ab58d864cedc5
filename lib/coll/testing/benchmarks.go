package testing

import (
	"bytes"
	"io"
	"math/rand"
	"testing"

	"github.com/ValentinKolb/dColl/lib/coll"
	"github.com/ValentinKolb/dColl/lib/coll/codec"
)

// Benchmark is a named benchmark function. The perf command runs these through
// testing.Benchmark, go test through RunListBenchmarks and RunMapBenchmarks.
type Benchmark struct {
	Name string
	F    func(b *testing.B)
}

// RunListBenchmarks runs all list benchmarks for a list implementation
func RunListBenchmarks(b *testing.B, name string, factory ListFactory) {
	b.Run(name, func(b *testing.B) {
		for _, bm := range ListBenchmarks(factory) {
			b.Run(bm.Name, bm.F)
		}
	})
}

// RunMapBenchmarks runs all map benchmarks for a map implementation. size is
// the number of distinct keys used.
func RunMapBenchmarks(b *testing.B, name string, factory MapFactory, size int) {
	b.Run(name, func(b *testing.B) {
		for _, bm := range MapBenchmarks(factory, size) {
			b.Run(bm.Name, bm.F)
		}
	})
}

// RunConcurrentMapBenchmarks runs parallel benchmarks. The maps returned by
// factory must be safe for concurrent use.
func RunConcurrentMapBenchmarks(b *testing.B, name string, factory MapFactory, size int) {
	b.Run(name, func(b *testing.B) {
		for _, bm := range ConcurrentMapBenchmarks(factory, size) {
			b.Run(bm.Name, bm.F)
		}
	})
}

// ListBenchmarks returns the list benchmarks for factory
func ListBenchmarks(factory ListFactory) []Benchmark {
	return []Benchmark{
		{"Add", func(b *testing.B) { benchmarkListAdd(b, factory()) }},
		{"Get", func(b *testing.B) { benchmarkListGet(b, factory()) }},
		{"InsertFront", func(b *testing.B) { benchmarkListInsertFront(b, factory()) }},
		{"PushPop", func(b *testing.B) { benchmarkListPushPop(b, factory()) }},
		{"Iterate", func(b *testing.B) { benchmarkListIterate(b, factory()) }},
		{"RemoveRange", func(b *testing.B) { benchmarkListRemoveRange(b, factory()) }},
		{"SubListGet", func(b *testing.B) { benchmarkSubListGet(b, factory()) }},
	}
}

// MapBenchmarks returns the map benchmarks for factory
func MapBenchmarks(factory MapFactory, size int) []Benchmark {
	return []Benchmark{
		{"Put", func(b *testing.B) { benchmarkMapPut(b, factory(), size) }},
		{"Get", func(b *testing.B) { benchmarkMapGet(b, factory(), size) }},
		{"Get(not)", func(b *testing.B) { benchmarkMapGetNot(b, factory(), size) }},
		{"Remove", func(b *testing.B) { benchmarkMapRemove(b, factory(), size) }},
		{"Iterate", func(b *testing.B) { benchmarkMapIterate(b, factory(), size) }},
		{"FastIterate", func(b *testing.B) { benchmarkMapFastIterate(b, factory(), size) }},
		{"MixedUsage", func(b *testing.B) { benchmarkMapMixed(b, factory(), size) }},
		{"Save", func(b *testing.B) { benchmarkMapSave(b, factory(), size) }},
	}
}

// ConcurrentMapBenchmarks returns the parallel map benchmarks for factory
func ConcurrentMapBenchmarks(factory MapFactory, size int) []Benchmark {
	return []Benchmark{
		{"MixedUsage(parallel)", func(b *testing.B) { benchmarkMapMixedParallel(b, factory(), size) }},
	}
}

// --------------------------------------------------------------------------
// List benchmark functions
// --------------------------------------------------------------------------

func benchmarkListAdd(b *testing.B, l coll.List[int32]) {
	requireFeature(b, l, coll.FeatureInsert)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Add(int32(i))
	}
}

func benchmarkListGet(b *testing.B, l coll.List[int32]) {
	requireFeature(b, l, coll.FeatureInsert)

	const n = 1024
	for i := 0; i < n; i++ {
		l.Add(int32(i))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Get(i % n)
	}
}

func benchmarkListInsertFront(b *testing.B, l coll.List[int32]) {
	requireFeature(b, l, coll.FeatureInsert|coll.FeatureRemove)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Insert(0, int32(i))
		if l.Len() > 1024 {
			l.RemoveRange(0, l.Len())
		}
	}
}

func benchmarkListPushPop(b *testing.B, l coll.List[int32]) {
	requireFeature(b, l, coll.FeatureInsert|coll.FeatureRemove)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Push(int32(i))
		if i%2 == 1 {
			l.Pop()
			l.Pop()
		}
	}
}

func benchmarkListIterate(b *testing.B, l coll.List[int32]) {
	requireFeature(b, l, coll.FeatureInsert)

	const n = 1024
	for i := 0; i < n; i++ {
		l.Add(int32(i))
	}

	b.ResetTimer()
	var sum int64
	for i := 0; i < b.N; i++ {
		for v := range l.All() {
			sum += int64(v)
		}
	}
	_ = sum
}

func benchmarkListRemoveRange(b *testing.B, l coll.List[int32]) {
	requireFeature(b, l, coll.FeatureInsert|coll.FeatureRemove)

	chunk := make([]int32, 64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.InsertAll(0, chunk)
		l.RemoveRange(0, len(chunk))
	}
}

func benchmarkSubListGet(b *testing.B, l coll.List[int32]) {
	requireFeature(b, l, coll.FeatureInsert)

	const n = 1024
	for i := 0; i < n; i++ {
		l.Add(int32(i))
	}
	view, err := l.SubList(n/4, 3*n/4)
	if err != nil {
		b.Fatal(err)
	}
	inner, err := view.SubList(0, view.Len()/2)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		inner.Get(i % inner.Len())
	}
}

// --------------------------------------------------------------------------
// Map benchmark functions
// --------------------------------------------------------------------------

func prepareMap(m coll.Map[int32, string], size int) {
	for i := 0; i < size; i++ {
		m.Put(int32(i), "value")
	}
}

func benchmarkMapPut(b *testing.B, m coll.Map[int32, string], size int) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Put(int32(i%size), "value")
	}
}

func benchmarkMapGet(b *testing.B, m coll.Map[int32, string], size int) {
	prepareMap(m, size)

	keys := make([]int32, 1024)
	for i := range keys {
		keys[i] = int32(rand.Intn(size))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Get(keys[i%len(keys)])
	}
}

func benchmarkMapGetNot(b *testing.B, m coll.Map[int32, string], size int) {
	prepareMap(m, size)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Get(int32(size + i%size))
	}
}

func benchmarkMapRemove(b *testing.B, m coll.Map[int32, string], size int) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		k := int32(i % size)
		if k == 0 {
			b.StopTimer()
			prepareMap(m, size)
			b.StartTimer()
		}
		m.Remove(k)
	}
}

func benchmarkMapIterate(b *testing.B, m coll.Map[int32, string], size int) {
	prepareMap(m, size)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		it := m.Iterator()
		for it.HasNext() {
			it.Next()
		}
	}
}

func benchmarkMapFastIterate(b *testing.B, m coll.Map[int32, string], size int) {
	fast, ok := m.(coll.FastIterable[int32, string])
	if !ok {
		b.Skip()
	}
	prepareMap(m, size)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		it := fast.FastIterator()
		for it.HasNext() {
			it.Next()
		}
	}
}

func benchmarkMapMixed(b *testing.B, m coll.Map[int32, string], size int) {
	prepareMap(m, size)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		k := int32(i % size)
		switch i % 10 {
		case 0, 1, 2:
			m.Put(k, "updated")
		case 3:
			m.Remove(k)
		default:
			m.Get(k)
		}
	}
}

func benchmarkMapMixedParallel(b *testing.B, m coll.Map[int32, string], size int) {
	prepareMap(m, size)

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		counter := 0
		for pb.Next() {
			k := int32(counter % size)
			switch counter % 10 {
			case 0, 1, 2:
				m.Put(k, "updated")
			case 3:
				m.Remove(k)
			default:
				m.Get(k)
			}
			counter++
		}
	})
}

// benchmarkMapSave writes the persisted form of maps that have one
func benchmarkMapSave(b *testing.B, m coll.Map[int32, string], size int) {
	type persisted interface {
		Save(w io.Writer, kc codec.Codec[int32], vc codec.Codec[string]) error
	}
	p, ok := m.(persisted)
	if !ok {
		b.Skip()
	}
	prepareMap(m, size)
	kc, vc := codec.NewBinaryCodec[int32](), codec.NewStringCodec()

	var buf bytes.Buffer
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.Reset()
		if err := p.Save(&buf, kc, vc); err != nil {
			b.Fatal(err)
		}
	}
}
