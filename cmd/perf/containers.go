package perf

import (
	"fmt"

	"github.com/ValentinKolb/dColl/lib/coll"
	"github.com/ValentinKolb/dColl/lib/coll/arraymap"
	"github.com/ValentinKolb/dColl/lib/coll/decorate"
	"github.com/ValentinKolb/dColl/lib/coll/list"
	"github.com/ValentinKolb/dColl/lib/coll/sorted"
	colltesting "github.com/ValentinKolb/dColl/lib/coll/testing"
)

// container is a benchmark target. Exactly one of newMap and newList is set.
type container struct {
	name       string
	newMap     colltesting.MapFactory
	newList    colltesting.ListFactory
	concurrent bool // safe for concurrent use
}

// containers lists every benchmark target in the order they are run
var containers = []container{
	{name: "arraymap", newMap: func() coll.Map[int32, string] {
		return arraymap.New[int32, string]()
	}},
	{name: "treemap", newMap: func() coll.Map[int32, string] {
		return sorted.New[int32, string]()
	}},
	{name: "sync-arraymap", concurrent: true, newMap: func() coll.Map[int32, string] {
		return decorate.SynchronizedMap[int32, string](arraymap.New[int32, string]())
	}},
	{name: "sync-treemap", concurrent: true, newMap: func() coll.Map[int32, string] {
		return decorate.SynchronizedSortedMap[int32, string](sorted.New[int32, string]())
	}},
	{name: "arraylist", newList: func() coll.List[int32] {
		return list.NewArrayList[int32]()
	}},
	{name: "linkedlist", newList: func() coll.List[int32] {
		return list.NewLinkedList[int32]()
	}},
	{name: "sync-arraylist", concurrent: true, newList: func() coll.List[int32] {
		return decorate.SynchronizedList[int32](list.NewArrayList[int32]())
	}},
}

// selectContainers returns the containers named in names, all of them when
// names is empty
func selectContainers(names []string) ([]container, error) {
	if len(names) == 0 {
		return containers, nil
	}
	selected := make([]container, 0, len(names))
	for _, name := range names {
		found := false
		for _, c := range containers {
			if c.name == name {
				selected = append(selected, c)
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("unknown container %s", name)
		}
	}
	return selected, nil
}

// benchmarks returns the benchmarks to run for c
func (c container) benchmarks(size int) []colltesting.Benchmark {
	if c.newList != nil {
		return colltesting.ListBenchmarks(c.newList)
	}
	bms := colltesting.MapBenchmarks(c.newMap, size)
	if c.concurrent {
		bms = append(bms, colltesting.ConcurrentMapBenchmarks(c.newMap, size)...)
	}
	return bms
}
