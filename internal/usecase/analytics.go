package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"revenue-metrics/internal/domain"
	"revenue-metrics/internal/ledger"
	"revenue-metrics/internal/logger"
	"revenue-metrics/internal/metrics"
	"revenue-metrics/internal/normalizer"
)

// Options configure an AnalyticsUseCase.
type Options struct {
	Normalizer normalizer.Options
	Metrics    metrics.Options
}

// AnalyticsUseCase orchestrates one processing run: read the export,
// normalize it, build the transaction store and compute the metrics.
type AnalyticsUseCase struct {
	repo       ExportRepository
	normalizer *normalizer.Normalizer
	opts       Options
}

// NewAnalyticsUseCase creates a new instance of the usecase.
func NewAnalyticsUseCase(repo ExportRepository, opts Options) *AnalyticsUseCase {
	return &AnalyticsUseCase{
		repo:       repo,
		normalizer: normalizer.New(opts.Normalizer),
		opts:       opts,
	}
}

// Process reads the export at source and computes metrics as of now.
// A read failure fails the whole run and no metrics are returned.
func (uc *AnalyticsUseCase) Process(ctx context.Context, source string, now time.Time) (*domain.ProcessedMetrics, error) {
	export, err := uc.repo.GetExport(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("could not get export: %w", err)
	}
	return uc.ProcessExport(ctx, export, now)
}

// ProcessExport computes metrics for an already parsed export.
func (uc *AnalyticsUseCase) ProcessExport(ctx context.Context, export *domain.RawExport, now time.Time) (*domain.ProcessedMetrics, error) {
	if export == nil || len(export.Headers) == 0 {
		return nil, domain.ErrEmptyExport
	}

	log := logger.WithFields(logger.FromContext(ctx), map[string]interface{}{
		"run_id": uuid.NewString(),
		"source": export.Source,
	})
	log.Info().Int("rows", len(export.Rows)).Time("as_of", now).Msg("processing export")

	// Step 1: Schema normalization
	normalized := uc.normalizer.Normalize(export.Headers, export.Rows)

	// Step 2: Transaction store and customer profiles
	store := ledger.NewStore(normalized.Transactions)

	// Step 3: Metrics
	result, err := metrics.Compute(ctx, store, now, uc.opts.Metrics)
	if err != nil {
		return nil, fmt.Errorf("could not compute metrics: %w", err)
	}

	result.Diagnostics = domain.Diagnostics{
		RowsRead:             len(export.Rows),
		TransactionsAccepted: store.Len(),
		Customers:            len(store.Customers()),
		SkippedRows:          append(make([]domain.SkippedRow, 0, len(normalized.Skipped)), normalized.Skipped...),
		MalformedLines:       append(make([]int, 0, len(export.Malformed)), export.Malformed...),
		InvalidDates:         normalized.InvalidDates,
		InvalidAmounts:       normalized.InvalidAmounts,
	}

	if n := len(normalized.Skipped); n > 0 {
		log.Warn().Int("skipped", n).Msg("rows dropped during normalization")
	}
	if n := len(export.Malformed); n > 0 {
		log.Warn().Ints("lines", export.Malformed).Msg("malformed rows in export")
	}
	if normalized.InvalidDates > 0 {
		log.Warn().Int("count", normalized.InvalidDates).Msg("transactions with unparseable dates excluded from period math")
	}
	log.Info().
		Int("transactions", result.Diagnostics.TransactionsAccepted).
		Int("customers", result.Diagnostics.Customers).
		Float64("arr_total", result.ARR.Total).
		Msg("export processed")

	return result, nil
}
