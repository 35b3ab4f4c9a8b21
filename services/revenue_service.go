package services

import (
	"context"
	"fmt"
	"time"

	"salestracker/dto"
	"salestracker/errors"
	"salestracker/metrics"
	"salestracker/services/logger"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

type RevenueServiceInterface interface {
	Aggregate(ctx context.Context, f RevenueFilter) ([]dto.MonthBucket, error)
	AggregateForUser(ctx context.Context, userID uint, window MonthWindow, s Sort) ([]dto.MonthBucket, error)
	Summary(ctx context.Context, f RevenueFilter) (dto.RevenueSummary, error)
	ReportMonth(ctx context.Context, month time.Time) (dto.RevenueSummary, error)
}

type RevenueServiceOptions struct {
	DB *gorm.DB
	// Directory defaults to a GormDirectory over DB.
	Directory Directory
	Cache     RevenueCache
	Metrics   *metrics.Metrics
	Logger    logger.Logger
}

// RevenueService runs the aggregation pipeline: filter, eligible users,
// monthly aggregation with optional breakdown, merge.
type RevenueService struct {
	directory Directory
	resolver  *EligibleUserResolver
	engine    *AggregationEngine
	cache     RevenueCache
	metrics   *metrics.Metrics
	logger    logger.Logger
}

func NewRevenueService(opts RevenueServiceOptions) *RevenueService {
	dir := opts.Directory
	if dir == nil {
		dir = NewGormDirectory(opts.DB)
	}
	cache := opts.Cache
	if cache == nil {
		cache = NoopCache{}
	}
	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}
	return &RevenueService{
		directory: dir,
		resolver:  NewEligibleUserResolver(dir),
		engine:    NewAggregationEngine(opts.DB),
		cache:     cache,
		metrics:   opts.Metrics,
		logger:    log,
	}
}

// Aggregate returns the month buckets matching f. A filter that matches no
// sale fails with NotFound(revenue).
func (s *RevenueService) Aggregate(ctx context.Context, f RevenueFilter) ([]dto.MonthBucket, error) {
	start := time.Now()
	key := f.CacheKey()

	stamped, err := s.cache.Stamp(ctx, key)
	if err != nil {
		s.logger.Warn("revenue cache unavailable", "key", key, "error", err)
	} else {
		var cached []dto.MonthBucket
		if hit, err := s.cache.Get(ctx, stamped, &cached); err != nil {
			s.logger.Warn("revenue cache read failed", "key", stamped, "error", err)
		} else if hit {
			s.metrics.ObserveAggregation(metrics.OutcomeCacheHit, time.Since(start))
			return cached, nil
		}
	}

	buckets, err := s.aggregate(ctx, f)
	if err != nil {
		outcome := metrics.OutcomeError
		if errors.HasCode(err, errors.ErrCodeNotFound) {
			outcome = metrics.OutcomeEmpty
		}
		s.metrics.ObserveAggregation(outcome, time.Since(start))
		if errors.HasCode(err, errors.ErrCodeInternal) {
			s.logger.Error("revenue aggregation inconsistent", "filter", key, "error", err)
		}
		return nil, err
	}

	if stamped != "" {
		if err := s.cache.Set(ctx, stamped, buckets); err != nil {
			s.logger.Warn("revenue cache write failed", "key", stamped, "error", err)
		}
	}
	s.metrics.ObserveAggregation(metrics.OutcomeOK, time.Since(start))
	s.logger.Debug("revenue aggregated", "window", f.Window.String(), "buckets", len(buckets), "elapsed", time.Since(start))
	return buckets, nil
}

func (s *RevenueService) aggregate(ctx context.Context, f RevenueFilter) ([]dto.MonthBucket, error) {
	eligible, err := s.resolver.Resolve(ctx, f.GroupIDs, f.Roles)
	if err != nil {
		return nil, err
	}

	var (
		buckets       []dto.MonthBucket
		contributions []dto.UserContribution
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		buckets, err = s.engine.AggregateByMonth(gctx, f.Window, eligible, f.Sort)
		return err
	})
	if f.IncludeUserBreakdown {
		g.Go(func() error {
			var err error
			contributions, err = s.engine.AggregateByUserMonth(gctx, f.Window, eligible, f.Sort)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if len(buckets) == 0 {
		return nil, errors.NotFound(errors.ResourceRevenue,
			fmt.Sprintf("No sales found between %s and %s for the given filters", f.Window.From, f.Window.To))
	}
	if !f.IncludeUserBreakdown {
		return buckets, nil
	}
	return MergeBreakdown(buckets, contributions)
}

// AggregateForUser returns the monthly revenue of a single user.
func (s *RevenueService) AggregateForUser(ctx context.Context, userID uint, window MonthWindow, sort Sort) ([]dto.MonthBucket, error) {
	ok, err := s.directory.UserExists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.NotFound(errors.ResourceUser, "")
	}

	buckets, err := s.engine.AggregateByMonth(ctx, window, OnlyUsers(userID), sort)
	if err != nil {
		return nil, err
	}
	if len(buckets) == 0 {
		return nil, errors.NotFound(errors.ResourceRevenue,
			fmt.Sprintf("User %d has no sales between %s and %s", userID, window.From, window.To))
	}
	return buckets, nil
}

// Summary totals the aggregation of f.
func (s *RevenueService) Summary(ctx context.Context, f RevenueFilter) (dto.RevenueSummary, error) {
	f.IncludeUserBreakdown = false
	buckets, err := s.Aggregate(ctx, f)
	if err != nil {
		return dto.RevenueSummary{}, err
	}
	return Summarize(f.Window, buckets), nil
}

// ReportMonth summarizes the calendar month containing month across all
// users. A month without sales yields a zero summary.
func (s *RevenueService) ReportMonth(ctx context.Context, month time.Time) (dto.RevenueSummary, error) {
	window := MonthWindowOf(month)
	buckets, err := s.engine.AggregateByMonth(ctx, window, AllUsers(), DefaultSort)
	if err != nil {
		return dto.RevenueSummary{}, err
	}
	return Summarize(window, buckets), nil
}

// InvalidateCache drops every cached aggregation. Called after each write.
func (s *RevenueService) InvalidateCache(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn("revenue cache invalidation failed", "error", err)
	}
}
