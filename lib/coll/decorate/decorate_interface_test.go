package decorate

import (
	"sync"
	"testing"

	"github.com/ValentinKolb/dColl/lib/coll"
	"github.com/ValentinKolb/dColl/lib/coll/arraymap"
	"github.com/ValentinKolb/dColl/lib/coll/list"
	"github.com/ValentinKolb/dColl/lib/coll/sorted"
	colltesting "github.com/ValentinKolb/dColl/lib/coll/testing"
)

func Test(t *testing.T) {
	colltesting.RunMapTests(t, "SyncArrayMap", func() coll.Map[int32, string] {
		return SynchronizedMap[int32, string](arraymap.New[int32, string]())
	})

	colltesting.RunSortedMapTests(t, "SyncTreeMap", func() coll.SortedMap[int32, string] {
		return SynchronizedSortedMap[int32, string](sorted.New[int32, string]())
	})

	colltesting.RunSortedMapTests(t, "SyncTreeMap(Mutex)", func() coll.SortedMap[int32, string] {
		return SynchronizedSortedMap[int32, string](sorted.New[int32, string](), WithLocker(&sync.Mutex{}))
	})

	colltesting.RunListTests(t, "SyncArrayList", func() coll.List[int32] {
		return SynchronizedList[int32](list.NewArrayList[int32]())
	})

	colltesting.RunListTests(t, "SyncLinkedList(Mutex)", func() coll.List[int32] {
		return SynchronizedList[int32](list.NewLinkedList[int32](), WithLocker(&sync.Mutex{}))
	})
}

func Benchmark(b *testing.B) {
	colltesting.RunMapBenchmarks(b, "SyncArrayMap", func() coll.Map[int32, string] {
		return SynchronizedMap[int32, string](arraymap.New[int32, string]())
	}, 64)

	colltesting.RunConcurrentMapBenchmarks(b, "SyncArrayMap", func() coll.Map[int32, string] {
		return SynchronizedMap[int32, string](arraymap.New[int32, string]())
	}, 64)

	colltesting.RunConcurrentMapBenchmarks(b, "SyncTreeMap", func() coll.Map[int32, string] {
		return SynchronizedSortedMap[int32, string](sorted.New[int32, string]())
	}, 4096)

	colltesting.RunConcurrentMapBenchmarks(b, "SyncTreeMap(Mutex)", func() coll.Map[int32, string] {
		return SynchronizedSortedMap[int32, string](sorted.New[int32, string](), WithLocker(&sync.Mutex{}))
	}, 4096)

	colltesting.RunListBenchmarks(b, "SyncArrayList", func() coll.List[int32] {
		return SynchronizedList[int32](list.NewArrayList[int32]())
	})
}
