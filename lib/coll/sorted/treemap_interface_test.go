package sorted

import (
	"testing"

	"github.com/ValentinKolb/dColl/lib/coll"
	colltesting "github.com/ValentinKolb/dColl/lib/coll/testing"
)

func Test(t *testing.T) {
	colltesting.RunSortedMapTests(t, "TreeMap", func() coll.SortedMap[int32, string] {
		return New[int32, string]()
	})

	// a view covering every key used by the suite behaves like the map itself
	colltesting.RunSortedMapTests(t, "TreeMapView", func() coll.SortedMap[int32, string] {
		view, err := New[int32, string]().SubMap(-1000, 1000)
		if err != nil {
			t.Fatal(err)
		}
		return view
	})
}

func Benchmark(b *testing.B) {
	colltesting.RunMapBenchmarks(b, "TreeMap", func() coll.Map[int32, string] {
		return New[int32, string]()
	}, 4096)
}
