package dump

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/ValentinKolb/dColl/cmd/util"
	"github.com/ValentinKolb/dColl/lib/coll"
	"github.com/ValentinKolb/dColl/lib/coll/arraymap"
	"github.com/ValentinKolb/dColl/lib/coll/codec"
	"github.com/ValentinKolb/dColl/lib/coll/sorted"
	jsoniter "github.com/json-iterator/go"
	"github.com/lni/dragonboat/v4/logger"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	plog = logger.GetLogger("cmd")

	// DumpCmd prints a persisted map
	DumpCmd = &cobra.Command{
		Use:   "dump <file>",
		Short: "Print a persisted ArrayMap[int64, string]",
		Long: `Print a map written by ArrayMap.Save with int64 keys in the binary codec and
string values in the codec selected by --value-codec.`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return util.BindCommandFlags(cmd)
		},
		RunE: run,
	}
)

func init() {
	key := "value-codec"
	DumpCmd.Flags().String(key, "string", util.WrapString("Codec the values were written with (string, json, gob)"))
	key = "sorted"
	DumpCmd.Flags().Bool(key, false, util.WrapString("Print the entries in key order instead of insertion order"))
	key = "format"
	DumpCmd.Flags().String(key, "text", util.WrapString("Output format (text, json)"))
}

// entry is the JSON form of one map entry
type entry struct {
	Key   int64  `json:"key"`
	Value string `json:"value"`
}

func run(cmd *cobra.Command, args []string) error {
	vc, err := util.GetValueCodec(viper.GetString("value-codec"))
	if err != nil {
		return err
	}

	m, err := readFile(args[0], vc)
	if err != nil {
		return err
	}
	plog.Debugf("read %d entries from %s", m.Len(), args[0])

	var view coll.Map[int64, string] = m
	if viper.GetBool("sorted") {
		view = sorted.NewFromMap[int64, string](m)
	}

	return write(cmd.OutOrStdout(), view, viper.GetString("format"))
}

// readFile loads the map stored at path
func readFile(path string, vc codec.Codec[string]) (*arraymap.ArrayMap[int64, string], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := arraymap.Read[int64, string](bufio.NewReader(f), codec.NewBinaryCodec[int64](), vc)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	return m, nil
}

// write prints m to w in the given format
func write(w io.Writer, m coll.Map[int64, string], format string) error {
	switch format {
	case "text":
		for k, v := range m.All() {
			if _, err := fmt.Fprintf(w, "%d\t%s\n", k, v); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(w, "(%d entries)\n", m.Len())
		return err
	case "json":
		entries := make([]entry, 0, m.Len())
		for k, v := range m.All() {
			entries = append(entries, entry{k, v})
		}
		enc := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	default:
		return fmt.Errorf("invalid format %s", format)
	}
}
