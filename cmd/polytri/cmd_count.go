package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/polytri/maxtri"
)

func (a *app) countCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "count N V1 V2 V3",
		Short: "Count configurations for one reference triangle",
		Example: `  polytri count 7 0 1 4
  polytri count 11 0 3 7 --no-cache`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			vals := make([]int, len(args))
			for i, name := range []string{"N", "V1", "V2", "V3"} {
				v, err := parseInt(name, args[i])
				if err != nil {
					return err
				}
				vals[i] = v
			}
			n, err := maxtri.CountForTriangle(vals[0], vals[1], vals[2], vals[3], a.counterOptions()...)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), n)

			return nil
		},
	}
}
