// qsortbench 순차 퀵소트와 fork-join 병렬 퀵소트를 같은 입력으로 돌려 시간과 결과를 비교한다.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"qsortbench/internal/logging"
)

var (
	verbose    bool
	configPath string

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "qsortbench",
	Short: "Sequential vs fork-join parallel quicksort benchmark",
	Long: `qsortbench sorts the same int64 data with a sequential quicksort and with
its fork-join parallel variant, checks that both produce the same array and
reports the timings.

Input data is either generated from a seed or loaded from a dataset store
(memory, file, bbolt, badger, pebble) filled earlier with "qsortbench gen".`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if logger != nil {
			return nil
		}
		l, err := logging.New(verbose)
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file")

	rootCmd.AddCommand(runCmd, genCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
