package cmd

import (
	"fmt"
	"os"

	"github.com/ValentinKolb/dColl/cmd/dump"
	"github.com/ValentinKolb/dColl/cmd/perf"
	"github.com/ValentinKolb/dColl/cmd/util"
	"github.com/ValentinKolb/dColl/lib/common"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	Version = "0.3.0"
)

var (

	// RootCmd represents the base command when called without any subcommands
	RootCmd = &cobra.Command{
		Use:   "dcoll",
		Short: "scalar-specialized collections for Go",
		Long: fmt.Sprintf(`dColl (v%s)

Array backed maps, lists and sorted maps specialized for scalar keys and
elements. This tool benchmarks the containers and inspects persisted maps.`, Version),
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return common.InitLoggers(viper.GetString("log-level"))
		},
	}
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of dColl",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "dColl v%s\n", Version)
		},
	}
)

func init() {
	cobra.OnInitialize(util.InitConfig)

	// Add Commands
	RootCmd.AddCommand(perf.PerfCmd)
	RootCmd.AddCommand(dump.DumpCmd)
	RootCmd.AddCommand(versionCmd)

	// Add Flags
	key := "log-level"
	RootCmd.PersistentFlags().String(key, "warn", util.WrapString("Level at which logs will be output (debug, info, warn, error)"))
	_ = viper.BindPFlag(key, RootCmd.PersistentFlags().Lookup(key))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
