package stats

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	cottageRepo "mountaincottage/database/repository/cottage"
	"mountaincottage/models"
)

type countingCottageRepo struct{ total int64 }

func (c *countingCottageRepo) GetByID(id string) (*models.Cottage, error) { return nil, nil }
func (c *countingCottageRepo) List(filter cottageRepo.ListFilter) ([]models.Cottage, error) {
	return nil, nil
}
func (c *countingCottageRepo) ListByOwner(ownerID string) ([]models.Cottage, error) {
	return nil, nil
}
func (c *countingCottageRepo) Count() (int64, error)                             { return c.total, nil }
func (c *countingCottageRepo) Create(cottage *models.Cottage) error              { return nil }
func (c *countingCottageRepo) Update(cottage *models.Cottage) error              { return nil }
func (c *countingCottageRepo) SetBlockedUntil(id string, until *time.Time) error { return nil }
func (c *countingCottageRepo) Delete(id string) error                            { return nil }

type countingUserRepo struct {
	activeByRole map[string]int64
	calls        int
}

func (c *countingUserRepo) GetByID(id string) (*models.User, error)          { return nil, nil }
func (c *countingUserRepo) GetByUsername(username string) (*models.User, error) { return nil, nil }
func (c *countingUserRepo) GetByEmail(email string) (*models.User, error)    { return nil, nil }
func (c *countingUserRepo) GetByIDWithProjection(id string, projection bson.M) (*models.User, error) {
	return nil, nil
}
func (c *countingUserRepo) ListByRoles(roles []string) ([]models.User, error) { return nil, nil }

func (c *countingUserRepo) CountActiveByRole(role string) (int64, error) {
	c.calls++
	return c.activeByRole[role], nil
}

func (c *countingUserRepo) EmailInUseByOther(email, excludeID string) (bool, error) {
	return false, nil
}
func (c *countingUserRepo) Create(user *models.User) error                         { return nil }
func (c *countingUserRepo) Update(user *models.User) error                         { return nil }
func (c *countingUserRepo) SetActive(id string, active bool) (*models.User, error) { return nil, nil }
func (c *countingUserRepo) Delete(id string) error                                 { return nil }

type countingReservationRepo struct {
	created map[time.Time]int64
	now     time.Time
}

func (c *countingReservationRepo) GetByID(id string) (*models.Reservation, error) { return nil, nil }
func (c *countingReservationRepo) ListByTourist(touristID string) ([]models.Reservation, error) {
	return nil, nil
}
func (c *countingReservationRepo) ListByCottages(cottageIDs []string) ([]models.Reservation, error) {
	return nil, nil
}
func (c *countingReservationRepo) FindConfirmedOverlapping(cottageID string, checkIn, checkOut time.Time) ([]models.Reservation, error) {
	return nil, nil
}
func (c *countingReservationRepo) ListCompletedConfirmed(cottageIDs []string, before time.Time) ([]models.Reservation, error) {
	return nil, nil
}
func (c *countingReservationRepo) CountActiveForCottage(cottageID string, now time.Time) (int64, error) {
	return 0, nil
}

func (c *countingReservationRepo) CountCreatedSince(t time.Time) (int64, error) {
	switch {
	case t.Equal(c.now.Add(-24 * time.Hour)):
		return c.created[c.now.Add(-24*time.Hour)], nil
	case t.Equal(c.now.AddDate(0, 0, -7)):
		return c.created[c.now.AddDate(0, 0, -7)], nil
	default:
		return c.created[c.now.AddDate(0, 0, -30)], nil
	}
}

func (c *countingReservationRepo) Update(reservation *models.Reservation) error { return nil }
func (c *countingReservationRepo) CreatePendingGuarded(ctx context.Context, reservation *models.Reservation) error {
	return nil
}
func (c *countingReservationRepo) ConfirmGuarded(ctx context.Context, id string) (*models.Reservation, error) {
	return nil, nil
}

type memoryCache struct {
	values map[string]string
	sets   int
}

func (m *memoryCache) Get(ctx context.Context, key string) (string, error) {
	return m.values[key], nil
}

func (m *memoryCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	m.values[key] = value
	m.sets++
	return nil
}

func TestPublicStatisticsComputesCounts(t *testing.T) {
	now := time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)
	users := &countingUserRepo{activeByRole: map[string]int64{
		models.RoleOwner:   3,
		models.RoleTourist: 12,
	}}
	reservations := &countingReservationRepo{
		now: now,
		created: map[time.Time]int64{
			now.Add(-24 * time.Hour): 2,
			now.AddDate(0, 0, -7):    9,
			now.AddDate(0, 0, -30):   25,
		},
	}
	cache := &memoryCache{values: map[string]string{}}

	svc := NewStatsService(&countingCottageRepo{total: 7}, users, reservations, cache, zap.NewNop())
	svc.now = func() time.Time { return now }

	stats, err := svc.PublicStatistics(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(7), stats.TotalCottages)
	assert.Equal(t, int64(3), stats.TotalOwners)
	assert.Equal(t, int64(12), stats.TotalTourists)
	assert.Equal(t, int64(2), stats.Reservations.Last24Hours)
	assert.Equal(t, int64(9), stats.Reservations.Last7Days)
	assert.Equal(t, int64(25), stats.Reservations.Last30Days)
	assert.Equal(t, 1, cache.sets)
}

func TestPublicStatisticsServedFromCache(t *testing.T) {
	now := time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)
	users := &countingUserRepo{activeByRole: map[string]int64{}}
	cache := &memoryCache{values: map[string]string{
		publicStatsKey: `{"totalCottages":42,"totalOwners":1,"totalTourists":2,"reservations":{"last24Hours":0,"last7Days":0,"last30Days":0}}`,
	}}

	svc := NewStatsService(&countingCottageRepo{}, users, &countingReservationRepo{now: now}, cache, zap.NewNop())
	svc.now = func() time.Time { return now }

	stats, err := svc.PublicStatistics(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(42), stats.TotalCottages)
	assert.Zero(t, users.calls)
	assert.Zero(t, cache.sets)
}
