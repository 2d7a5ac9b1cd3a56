// Package cli defines the basiclogger command tree.
package cli

import "github.com/spf13/cobra"

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "basiclogger",
	Short: "Group-coherent log aggregation demo",
	Long: `basiclogger demonstrates the aggregator: many concurrent producers
emit multi-part messages through a single consumer, and no message is
ever interleaved with another in the output.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to YAML config file")
	rootCmd.AddCommand(runCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
