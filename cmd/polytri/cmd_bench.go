package main

import (
	"fmt"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/polytri/maxtri"
)

func (a *app) benchCmd() *cobra.Command {
	var samples int
	cmd := &cobra.Command{
		Use:   "bench [N]",
		Short: "Time CountAll with and without the symmetry cache",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := a.polygonSize(args)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("samples") {
				a.cfg.Bench.Samples = samples
			}
			if a.cfg.Bench.Samples < 1 {
				return fmt.Errorf("samples must be positive, got %d", a.cfg.Bench.Samples)
			}

			opts := []maxtri.Option{maxtri.WithCacheCapacity(a.cfg.CacheCapacity), maxtri.WithLogger(a.logger)}
			cached, cachedTime, err := timeCountAll(n, a.cfg.Bench.Samples, append(opts, maxtri.WithCache(true))...)
			if err != nil {
				return err
			}
			plain, plainTime, err := timeCountAll(n, a.cfg.Bench.Samples, append(opts, maxtri.WithCache(false))...)
			if err != nil {
				return err
			}
			if diff := cmp.Diff(plain, cached); diff != "" {
				a.logger.Error("cache changes results", zap.Int("n", n), zap.String("diff", diff))

				return fmt.Errorf("mismatch in result for n=%d (-without +with cache):\n%s", n, diff)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "n=%d samples=%d total=%d\n", n, a.cfg.Bench.Samples, cached.Total)
			fmt.Fprintf(out, "cached\t%v\n", cachedTime)
			fmt.Fprintf(out, "uncached\t%v\n", plainTime)

			return nil
		},
	}
	cmd.Flags().IntVar(&samples, "samples", 1, "runs per mode")

	return cmd
}

// timeCountAll runs CountAll samples times and returns the last result and the
// mean wall time.
func timeCountAll(n, samples int, opts ...maxtri.Option) (maxtri.Result, time.Duration, error) {
	var (
		res     maxtri.Result
		elapsed time.Duration
	)
	for i := 0; i < samples; i++ {
		start := time.Now()
		r, err := maxtri.CountAll(n, opts...)
		if err != nil {
			return maxtri.Result{}, 0, err
		}
		elapsed += time.Since(start)
		res = r
	}

	return res, elapsed / time.Duration(samples), nil
}
