// Command icgem inspects ICGEM gravity-field model files and exports
// their static coefficients to SQLite.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/geomodelling/icgem"
)

var rootCmd = &cobra.Command{
	Use:           "icgem",
	Short:         "Read ICGEM gravity-field model files",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// warnOpts routes the reader's non-fatal diagnostics through slog.
func warnOpts() *icgem.Options {
	opts := icgem.DefaultOptions()
	opts.OnWarn = func(msg string) { slog.Warn(msg) }

	return &opts
}

func main() {
	rootCmd.AddCommand(inspectCmd, exportCmd)
	if err := rootCmd.Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}
