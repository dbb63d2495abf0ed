// SPDX-License-Identifier: MIT

package run

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// ExecuteBatch runs every configuration independently under a worker limit
// and returns the reports in configuration order. A failing run yields an
// Error report and never stops the batch; cancelling ctx stops handing out
// new runs.
func (d *Driver) ExecuteBatch(ctx context.Context, cfgs []Config, parallel int) []Report {
	if parallel < 1 {
		parallel = 1
	}

	reports := make([]Report, len(cfgs))
	grp, ctx := errgroup.WithContext(ctx)
	grp.SetLimit(parallel)
	for i, cfg := range cfgs {
		grp.Go(func() error {
			reports[i] = d.Execute(ctx, cfg)

			return nil
		})
	}
	// Goroutines never return errors; Wait only fences the writes.
	_ = grp.Wait()

	return reports
}
