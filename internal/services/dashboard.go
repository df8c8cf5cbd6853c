package services

import (
	"context"
	"log/slog"

	"github.com/xdoubleu/essentia/v2/pkg/logging"
	"pharmaevents.app/internal/charts"
	"pharmaevents.app/internal/models"
)

// EventStatsSource provides the aggregates the dashboard renders.
type EventStatsSource interface {
	Stats(ctx context.Context) (*models.Stats, error)
	CategoryCounts(ctx context.Context) ([]models.NameCount, error)
	TypeCounts(ctx context.Context) ([]models.NameCount, error)
	RequesterCounts(ctx context.Context) ([]models.NameCount, error)
	MonthlyCounts(ctx context.Context, year int) ([12]int, error)
}

// DashboardService aggregates event data into widget-ready shapes.
// Every method degrades to an empty placeholder on failure so a broken
// widget never takes the dashboard down with it.
type DashboardService struct {
	logger *slog.Logger
	events EventStatsSource
}

func NewDashboardService(
	logger *slog.Logger,
	events EventStatsSource,
) *DashboardService {
	return &DashboardService{
		logger: logger,
		events: events,
	}
}

func (service *DashboardService) Stats(ctx context.Context) *models.Stats {
	stats, err := service.events.Stats(ctx)
	if err != nil {
		service.logger.ErrorContext(
			ctx,
			"failed to load dashboard stats",
			logging.ErrAttr(err),
		)
		//nolint:exhaustruct //zero counters are the fallback
		return &models.Stats{}
	}

	return stats
}

func (service *DashboardService) CategoryBreakdown(
	ctx context.Context,
) []models.NameCount {
	counts, err := service.events.CategoryCounts(ctx)
	if err != nil {
		service.logger.ErrorContext(
			ctx,
			"failed to load category breakdown",
			logging.ErrAttr(err),
		)
		return []models.NameCount{}
	}

	return counts
}

// TypeBreakdown falls back to an online/offline split when no event has
// a type assigned, so the widget still tells the viewer something.
func (service *DashboardService) TypeBreakdown(
	ctx context.Context,
) []models.NameCount {
	counts, err := service.events.TypeCounts(ctx)
	if err != nil {
		service.logger.ErrorContext(
			ctx,
			"failed to load type breakdown",
			logging.ErrAttr(err),
		)
		return []models.NameCount{}
	}

	if len(counts) == 0 {
		return service.formatBreakdown(ctx)
	}

	return counts
}

func (service *DashboardService) RequesterBreakdown(
	ctx context.Context,
) []models.NameCount {
	counts, err := service.events.RequesterCounts(ctx)
	if err != nil {
		service.logger.ErrorContext(
			ctx,
			"failed to load requester breakdown",
			logging.ErrAttr(err),
		)
		return []models.NameCount{}
	}

	return counts
}

func (service *DashboardService) MonthlyVolume(
	ctx context.Context,
	year int,
) charts.Dataset {
	counts, err := service.events.MonthlyCounts(ctx, year)
	if err != nil {
		service.logger.ErrorContext(
			ctx,
			"failed to load monthly volume",
			logging.ErrAttr(err),
		)
		return charts.Monthly([12]int{})
	}

	return charts.Monthly(counts)
}

func (service *DashboardService) formatBreakdown(
	ctx context.Context,
) []models.NameCount {
	stats, err := service.events.Stats(ctx)
	if err != nil || stats.TotalEvents == 0 {
		return []models.NameCount{}
	}

	return []models.NameCount{
		{Name: "Online", Count: stats.OnlineEvents},
		{Name: "Offline", Count: stats.OfflineEvents},
	}
}
