package metrics

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"revenue-metrics/internal/domain"
)

// Options control how Compute evaluates the calculators.
type Options struct {
	// Parallel evaluates the independent calculators concurrently. Results
	// are identical either way since decimal sums do not depend on order.
	Parallel bool
}

// Compute assembles ProcessedMetrics as of now. Diagnostics are left for the
// caller to fill. It fails only when ctx is done before a calculator starts.
func Compute(ctx context.Context, src RevenueSource, now time.Time, opts Options) (*domain.ProcessedMetrics, error) {
	now = now.UTC()
	year := domain.PeriodContaining(now, domain.GranularityYear)

	var (
		waterfall Waterfall
		retention Retention
		cohorts   []domain.CohortData
		netNew    []domain.NetNewARRData
		logos     []domain.LogoACVData
	)

	tasks := []func(){
		func() { waterfall = ComputeWaterfall(src, year) },
		func() { retention = ComputeRetention(src, year) },
		func() { cohorts = ComputeCohorts(src, year) },
		func() { netNew = NetNewARRSeries(src, now) },
		func() { logos = LogosVsACVSeries(src, now) },
	}

	if opts.Parallel {
		g, gctx := errgroup.WithContext(ctx)
		for _, task := range tasks {
			task := task
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				task()
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	} else {
		for _, task := range tasks {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			task()
		}
	}

	return &domain.ProcessedMetrics{
		AsOf:           now.Format(time.DateOnly),
		ARR:            waterfall.Breakdown(),
		NRR:            toFloat(retention.NRR),
		GRR:            toFloat(retention.GRR),
		Cohorts:        cohorts,
		NetNewARRChart: netNew,
		LogosVsACV:     logos,
	}, nil
}
