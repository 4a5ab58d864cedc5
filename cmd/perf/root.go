package perf

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"slices"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/ValentinKolb/dColl/cmd/util"
	"github.com/lni/dragonboat/v4/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	plog = logger.GetLogger("cmd")

	// PerfCmd runs the container benchmarks
	PerfCmd = &cobra.Command{
		Use:     "perf",
		Short:   "Benchmark the dColl containers",
		Long:    `Benchmark the dColl containers and print ns/op, a latency table and optionally Prometheus metrics. Every flag can also be set as DCOLL_<FLAG> (e.g. DCOLL_SIZE=4096)`,
		PreRunE: processPerfConfig,
		RunE:    run,
	}
	perfConfig = config{}
)

// config is the configuration of one perf run
type config struct {
	Containers []string
	Skip       []string
	Size       int
	Threads    int
	Samples    int
	CSV        string
	Prometheus bool
}

func init() {
	key := "containers"
	PerfCmd.Flags().String(key, "", util.WrapString("Containers to benchmark (comma separated, e.g. arraymap,treemap). Default: all of arraymap, treemap, sync-arraymap, sync-treemap, arraylist, linkedlist, sync-arraylist"))
	key = "skip"
	PerfCmd.Flags().String(key, "", util.WrapString("Benchmarks to skip (comma separated, e.g. put,fastiterate)"))
	key = "size"
	PerfCmd.Flags().Int(key, 64, util.WrapString("Number of distinct keys used by the map benchmarks"))
	key = "threads"
	PerfCmd.Flags().Int(key, 1, util.WrapString("Parallelism multiplier for the concurrent benchmarks"))
	key = "samples"
	PerfCmd.Flags().Int(key, 10000, util.WrapString("Number of individually timed operations per map for the latency table (0 disables sampling)"))
	key = "csv"
	PerfCmd.Flags().String(key, "", util.WrapString("Optional path to save benchmark results as CSV"))
	key = "prometheus"
	PerfCmd.Flags().Bool(key, false, util.WrapString("Print all collected metrics in the Prometheus text format"))
}

func processPerfConfig(cmd *cobra.Command, _ []string) error {
	if err := util.BindCommandFlags(cmd); err != nil {
		return err
	}

	perfConfig = config{
		Containers: util.SplitList(viper.GetString("containers")),
		Skip:       util.SplitList(strings.ToLower(viper.GetString("skip"))),
		Size:       viper.GetInt("size"),
		Threads:    viper.GetInt("threads"),
		Samples:    viper.GetInt("samples"),
		CSV:        viper.GetString("csv"),
		Prometheus: viper.GetBool("prometheus"),
	}

	if perfConfig.Size <= 0 {
		return fmt.Errorf("size must be positive, got %d", perfConfig.Size)
	}
	if perfConfig.Threads <= 0 {
		return fmt.Errorf("threads must be positive, got %d", perfConfig.Threads)
	}
	return nil
}

// result is the outcome of one benchmark
type result struct {
	Container string
	Benchmark string
	Result    testing.BenchmarkResult
}

func run(cmd *cobra.Command, _ []string) error {
	selected, err := selectContainers(perfConfig.Containers)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Performance testing tool for dColl containers")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Size: %d\tThreads: %d\tSamples: %d\n", perfConfig.Size, perfConfig.Threads, perfConfig.Samples)
	fmt.Fprintln(out)

	rec := newRecorder()
	var results []result

	for _, c := range selected {
		plog.Infof("benchmarking %s", c.name)
		for _, bm := range c.benchmarks(perfConfig.Size) {
			name := c.name + "/" + bm.Name
			if shouldSkip(bm.Name) {
				printResult(out, name, testing.BenchmarkResult{})
				continue
			}

			f := bm.F
			res := testing.Benchmark(func(b *testing.B) {
				b.SetParallelism(perfConfig.Threads)
				f(b)
			})
			printResult(out, name, res)
			if res.N == 0 {
				continue
			}
			results = append(results, result{c.name, bm.Name, res})
			rec.benchmarkResult(c.name, bm.Name, res.NsPerOp())
		}

		if c.newMap != nil && perfConfig.Samples > 0 {
			rec.sampleMap(c.name, c.newMap(), perfConfig.Size, perfConfig.Samples)
		}
	}

	fmt.Fprintln(out)
	rec.writeTable(out)

	if perfConfig.Prometheus {
		fmt.Fprintln(out)
		rec.writePrometheus(out)
	}

	if perfConfig.CSV != "" {
		fmt.Fprintf(out, "\nExporting results to CSV: %s\n", perfConfig.CSV)
		if err := writeResultsToCSV(perfConfig.CSV, results, perfConfig); err != nil {
			return fmt.Errorf("failed to export results to CSV: %v", err)
		}
		fmt.Fprintln(out, "Export complete")
	}

	return nil
}

// --------------------------------------------------------------------------
// Helper
// --------------------------------------------------------------------------

// shouldSkip matches benchmark names case insensitively against the skip list
func shouldSkip(benchmark string) bool {
	return slices.Contains(perfConfig.Skip, strings.ToLower(benchmark))
}

// printResult prints the result of a benchmark in a formatted way
func printResult(w io.Writer, test string, result testing.BenchmarkResult) {
	if result.N == 0 {
		fmt.Fprintf(w, "%-40sskipped\n", test)
		return
	}

	nsPerOp := math.Max(float64(result.NsPerOp()), 1) // prevent division by zero
	opsPerSec := 1.0 / (nsPerOp / 1e9)

	fmt.Fprintf(w, "%-40s%.0fns/op (%s/op)\t%.0f ops/sec\n", test, nsPerOp, time.Duration(nsPerOp), opsPerSec)
}

// writeResultsToCSV writes benchmark results to a CSV file
func writeResultsToCSV(csvPath string, results []result, conf config) error {
	file, err := os.Create(csvPath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %v", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	header := []string{
		"Container", "Benchmark", "N", "NsPerOp", "DurationPerOp", "OpsPerSec",
		"AllocsPerOp", "BytesPerOp", "Size", "Threads",
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %v", err)
	}

	for _, r := range results {
		nsPerOp := math.Max(float64(r.Result.NsPerOp()), 1)
		row := []string{
			r.Container,
			r.Benchmark,
			strconv.Itoa(r.Result.N),
			fmt.Sprintf("%.0f", nsPerOp),
			time.Duration(nsPerOp).String(),
			fmt.Sprintf("%.0f", 1.0/(nsPerOp/1e9)),
			strconv.FormatInt(r.Result.AllocsPerOp(), 10),
			strconv.FormatInt(r.Result.AllocedBytesPerOp(), 10),
			strconv.Itoa(conf.Size),
			strconv.Itoa(conf.Threads),
		}

		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write row for test %s/%s: %v", r.Container, r.Benchmark, err)
		}
	}

	writer.Flush()
	return writer.Error()
}
