package perf

import (
	"fmt"
	"io"
	"math/rand"
	"slices"
	"time"

	"github.com/ValentinKolb/dColl/lib/coll"
	vm "github.com/VictoriaMetrics/metrics"
	gometrics "github.com/rcrowley/go-metrics"
)

// percentiles reported in the latency table
var percentiles = []float64{0.5, 0.95, 0.99}

// recorder collects per operation latencies. Timers feed the latency table,
// the VictoriaMetrics set the Prometheus output.
type recorder struct {
	registry gometrics.Registry
	set      *vm.Set
}

func newRecorder() *recorder {
	return &recorder{
		registry: gometrics.NewRegistry(),
		set:      vm.NewSet(),
	}
}

// observe records the duration of one operation started at start
func (r *recorder) observe(container, op string, start time.Time) {
	gometrics.GetOrRegisterTimer(container+"/"+op, r.registry).UpdateSince(start)
	r.set.GetOrCreateHistogram(fmt.Sprintf(`dcoll_op_duration_seconds{container=%q,op=%q}`, container, op)).UpdateDuration(start)
}

// benchmarkResult exports the ns/op of a finished benchmark as a gauge
func (r *recorder) benchmarkResult(container, benchmark string, nsPerOp int64) {
	v := float64(nsPerOp)
	r.set.GetOrCreateGauge(fmt.Sprintf(`dcoll_benchmark_ns_per_op{container=%q,benchmark=%q}`, container, benchmark), func() float64 {
		return v
	})
}

// sampleMap times samples single Put, Get and Remove calls on m over keys
// in [0, size)
func (r *recorder) sampleMap(name string, m coll.Map[int32, string], size, samples int) {
	rnd := rand.New(rand.NewSource(42))
	for i := 0; i < size; i++ {
		_, _ = m.Put(int32(i), "v")
	}

	for i := 0; i < samples; i++ {
		k := int32(rnd.Intn(size))

		start := time.Now()
		_, _ = m.Put(k, "sample")
		r.observe(name, "put", start)

		start = time.Now()
		m.Get(k)
		r.observe(name, "get", start)

		start = time.Now()
		_, _ = m.Remove(k)
		r.observe(name, "remove", start)
	}
}

// writeTable prints count, mean and percentiles of every timer, sorted by name
func (r *recorder) writeTable(w io.Writer) {
	var names []string
	r.registry.Each(func(name string, _ interface{}) {
		names = append(names, name)
	})
	if len(names) == 0 {
		return
	}
	slices.Sort(names)

	fmt.Fprintf(w, "%-28s%10s%12s%12s%12s%12s\n", "latency", "count", "mean", "p50", "p95", "p99")
	for _, name := range names {
		t, ok := r.registry.Get(name).(gometrics.Timer)
		if !ok {
			continue
		}
		s := t.Snapshot()
		ps := s.Percentiles(percentiles)
		fmt.Fprintf(w, "%-28s%10d%12s%12s%12s%12s\n", name, s.Count(),
			time.Duration(s.Mean()), time.Duration(ps[0]), time.Duration(ps[1]), time.Duration(ps[2]))
	}
}

// writePrometheus writes all collected metrics in the Prometheus text format
func (r *recorder) writePrometheus(w io.Writer) {
	r.set.WritePrometheus(w)
}
