package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/polytri/maxtri"
)

func (a *app) allCmd() *cobra.Command {
	var zeros bool
	cmd := &cobra.Command{
		Use:   "all [N]",
		Short: "Count configurations over every reference triangle",
		Long: `Counts every reference triangle (0, j, k) of the N-gon and prints the
non-zero counts followed by the total over all triangles of the polygon.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := a.polygonSize(args)
			if err != nil {
				return err
			}
			res, err := maxtri.CountAll(n, a.counterOptions()...)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, t := range res.Triangles() {
				if c := res.Counts[t]; c > 0 || zeros {
					fmt.Fprintf(out, "%v\t%d\n", t, c)
				}
			}
			fmt.Fprintf(out, "total\t%d\n", res.Total)

			return nil
		},
	}
	cmd.Flags().BoolVar(&zeros, "zeros", false, "also print triangles with a zero count")

	return cmd
}
