package perf

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ValentinKolb/dColl/lib/coll/arraymap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectContainers(t *testing.T) {
	all, err := selectContainers(nil)
	require.NoError(t, err)
	assert.Len(t, all, len(containers))

	some, err := selectContainers([]string{"treemap", "arraylist"})
	require.NoError(t, err)
	require.Len(t, some, 2)
	assert.Equal(t, "treemap", some[0].name)
	assert.NotNil(t, some[0].newMap)
	assert.NotNil(t, some[1].newList)

	_, err = selectContainers([]string{"hashmap"})
	assert.Error(t, err)
}

func TestBenchmarkSets(t *testing.T) {
	plain, err := selectContainers([]string{"arraymap", "sync-arraymap", "linkedlist"})
	require.NoError(t, err)

	names := func(c container) []string {
		var out []string
		for _, bm := range c.benchmarks(16) {
			out = append(out, bm.Name)
		}
		return out
	}
	assert.NotContains(t, names(plain[0]), "MixedUsage(parallel)")
	assert.Contains(t, names(plain[1]), "MixedUsage(parallel)")
	assert.Contains(t, names(plain[2]), "InsertFront")
}

func TestShouldSkip(t *testing.T) {
	perfConfig = config{Skip: []string{"put", "get(not)"}}
	defer func() { perfConfig = config{} }()

	assert.True(t, shouldSkip("Put"))
	assert.True(t, shouldSkip("Get(not)"))
	assert.False(t, shouldSkip("Get"))
}

func TestPrintResult(t *testing.T) {
	var buf bytes.Buffer
	printResult(&buf, "arraymap/Put", testing.BenchmarkResult{})
	assert.Contains(t, buf.String(), "skipped")

	buf.Reset()
	printResult(&buf, "arraymap/Put", testing.BenchmarkResult{N: 1000, T: 1000 * 50})
	assert.Contains(t, buf.String(), "50ns/op")
	assert.Contains(t, buf.String(), "20000000 ops/sec")
}

func TestRecorder(t *testing.T) {
	rec := newRecorder()
	rec.sampleMap("arraymap", arraymap.New[int32, string](), 8, 100)
	rec.benchmarkResult("arraymap", "Get", 12)

	var table bytes.Buffer
	rec.writeTable(&table)
	lines := strings.Split(strings.TrimSpace(table.String()), "\n")
	require.Len(t, lines, 4, "header plus get, put and remove")
	assert.Contains(t, lines[1], "arraymap/get")
	assert.Contains(t, lines[1], "100")

	var prom bytes.Buffer
	rec.writePrometheus(&prom)
	assert.Contains(t, prom.String(), `dcoll_op_duration_seconds_count{container="arraymap",op="put"} 100`)
	assert.Contains(t, prom.String(), `dcoll_benchmark_ns_per_op{container="arraymap",benchmark="Get"} 12`)
}

func TestWriteResultsToCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv")
	results := []result{
		{"treemap", "Get", testing.BenchmarkResult{N: 10, T: 10 * 100}},
		{"treemap", "Put", testing.BenchmarkResult{N: 10, T: 10 * 200}},
	}
	require.NoError(t, writeResultsToCSV(path, results, config{Size: 64, Threads: 2}))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Container", rows[0][0])
	assert.Equal(t, []string{"treemap", "Get", "10", "100"}, rows[1][:4])
	assert.Equal(t, "64", rows[2][8])
	assert.Equal(t, "2", rows[2][9])
}

func TestPerfCommand(t *testing.T) {
	var out bytes.Buffer
	PerfCmd.SetOut(&out)
	PerfCmd.SetArgs([]string{
		"--containers", "treemap",
		"--skip", "put,get(not),remove,iterate,fastiterate,mixedusage,save",
		"--size", "32",
		"--samples", "50",
		"--prometheus",
	})
	require.NoError(t, PerfCmd.Execute())

	s := out.String()
	assert.Contains(t, s, "treemap/Get")
	assert.Contains(t, s, "ns/op")
	assert.Contains(t, s, "treemap/Put")
	assert.Contains(t, s, "skipped")
	assert.Contains(t, s, "treemap/get")
	assert.Contains(t, s, "dcoll_op_duration_seconds")
}
