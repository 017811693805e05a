package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/geomodelling/icgem"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <model.gfc>",
	Short: "Parse the header and data section and print model metadata",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m := icgem.Open(args[0])
		if err := m.ParseHeader(); err != nil {
			return err
		}
		bounds, periods, err := m.Inspect(warnOpts())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "model         %s (%s)\n", m.ModelName, m.ProductType)
		fmt.Fprintf(out, "GM            %.6e m^3/s^2\n", m.GM)
		fmt.Fprintf(out, "radius        %.6e m\n", m.Radius)
		fmt.Fprintf(out, "max degree    %d\n", m.MaxDegree)
		fmt.Fprintf(out, "tide system   %s\n", m.TideSystem)
		fmt.Fprintf(out, "normalization %s\n", m.Norm)
		fmt.Fprintf(out, "errors        %s\n", m.Errors)
		fmt.Fprintf(out, "static  degree %d..%d, order %d..%d\n",
			bounds.DegreeStaticStart, bounds.DegreeStaticStop,
			bounds.OrderStaticStart, bounds.OrderStaticStop)
		fmt.Fprintf(out, "tvg     degree %d..%d, order %d..%d\n",
			bounds.DegreeTvStart, bounds.DegreeTvStop,
			bounds.OrderTvStart, bounds.OrderTvStop)
		if len(periods) > 0 {
			fmt.Fprintf(out, "periods (years) %v\n", periods)
		}

		return nil
	},
}
