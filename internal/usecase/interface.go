package usecase

import (
	"context"

	"revenue-metrics/internal/domain"
)

// ExportRepository defines the interface for fetching a billing export.
// The usecase layer depends on this interface, not on a concrete implementation.
//
//go:generate mockgen -destination=mocks/mock_repository.go -source=interface.go ExportRepository
type ExportRepository interface {
	GetExport(ctx context.Context, source string) (*domain.RawExport, error)
}
