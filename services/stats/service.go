package stats

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	cottageRepo "mountaincottage/database/repository/cottage"
	reservationRepo "mountaincottage/database/repository/reservation"
	userRepo "mountaincottage/database/repository/user"
	"mountaincottage/models"
)

const (
	publicStatsKey = "stats:public"
	publicStatsTTL = 60 * time.Second
)

// StatsService serves the public home page statistics.
type StatsService interface {
	// PublicStatistics returns platform-wide counts, cached for a minute.
	PublicStatistics(ctx context.Context) (*models.PublicStatistics, error)
}

// statsCache is the slice of the cache the service needs. RedisStatsCache
// satisfies it in production; tests use an in-memory map.
type statsCache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

// DefaultStatsService implements StatsService on the Mongo repositories with
// a Redis cache in front.
type DefaultStatsService struct {
	CottageRepo     cottageRepo.CottageRepository
	UserRepo        userRepo.UserRepository
	ReservationRepo reservationRepo.ReservationRepository
	Cache           statsCache
	Logger          *zap.Logger

	now func() time.Time
}

// NewStatsService wires a stats service over the given repositories.
func NewStatsService(
	cottages cottageRepo.CottageRepository,
	users userRepo.UserRepository,
	reservations reservationRepo.ReservationRepository,
	cache statsCache,
	logger *zap.Logger,
) *DefaultStatsService {
	return &DefaultStatsService{
		CottageRepo:     cottages,
		UserRepo:        users,
		ReservationRepo: reservations,
		Cache:           cache,
		Logger:          logger,
		now:             time.Now,
	}
}

func (s *DefaultStatsService) compute(now time.Time) (*models.PublicStatistics, error) {
	cottages, err := s.CottageRepo.Count()
	if err != nil {
		return nil, err
	}
	owners, err := s.UserRepo.CountActiveByRole(models.RoleOwner)
	if err != nil {
		return nil, err
	}
	tourists, err := s.UserRepo.CountActiveByRole(models.RoleTourist)
	if err != nil {
		return nil, err
	}

	last24h, err := s.ReservationRepo.CountCreatedSince(now.Add(-24 * time.Hour))
	if err != nil {
		return nil, err
	}
	last7d, err := s.ReservationRepo.CountCreatedSince(now.AddDate(0, 0, -7))
	if err != nil {
		return nil, err
	}
	last30d, err := s.ReservationRepo.CountCreatedSince(now.AddDate(0, 0, -30))
	if err != nil {
		return nil, err
	}

	return &models.PublicStatistics{
		TotalCottages: cottages,
		TotalOwners:   owners,
		TotalTourists: tourists,
		Reservations: models.ReservationCounts{
			Last24Hours: last24h,
			Last7Days:   last7d,
			Last30Days:  last30d,
		},
	}, nil
}

// PublicStatistics returns the cached counts when fresh, recomputing and
// re-caching otherwise. Cache trouble degrades to a live computation.
func (s *DefaultStatsService) PublicStatistics(ctx context.Context) (*models.PublicStatistics, error) {
	if s.Cache != nil {
		if cached, err := s.Cache.Get(ctx, publicStatsKey); err == nil && cached != "" {
			var out models.PublicStatistics
			if err := json.Unmarshal([]byte(cached), &out); err == nil {
				return &out, nil
			}
		}
	}

	out, err := s.compute(s.now())
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if payload, err := json.Marshal(out); err == nil {
			if err := s.Cache.Set(ctx, publicStatsKey, string(payload), publicStatsTTL); err != nil {
				s.Logger.Warn("failed to cache public statistics", zap.Error(err))
			}
		}
	}
	return out, nil
}
