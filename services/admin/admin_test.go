package admin

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	cottageRepo "mountaincottage/database/repository/cottage"
	"mountaincottage/models"
	"mountaincottage/services/storage"
)

type fakeUserRepo struct {
	users map[string]*models.User
}

func (f *fakeUserRepo) GetByID(id string) (*models.User, error) {
	if u, ok := f.users[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, assert.AnError
}

func (f *fakeUserRepo) GetByUsername(username string) (*models.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*models.User, error) { return nil, nil }

func (f *fakeUserRepo) GetByIDWithProjection(id string, projection bson.M) (*models.User, error) {
	return f.GetByID(id)
}

func (f *fakeUserRepo) ListByRoles(roles []string) ([]models.User, error) {
	var out []models.User
	for _, u := range f.users {
		for _, role := range roles {
			if u.Role == role {
				out = append(out, *u)
				break
			}
		}
	}
	return out, nil
}

func (f *fakeUserRepo) CountActiveByRole(role string) (int64, error) { return 0, nil }

func (f *fakeUserRepo) EmailInUseByOther(email, excludeID string) (bool, error) {
	for _, u := range f.users {
		if u.Email == email && u.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepo) Create(user *models.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) Update(user *models.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) SetActive(id string, active bool) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, assert.AnError
	}
	u.Active = active
	copied := *u
	return &copied, nil
}

func (f *fakeUserRepo) Delete(id string) error {
	delete(f.users, id)
	return nil
}

type fakeCottageRepo struct {
	cottages map[string]*models.Cottage
}

func (f *fakeCottageRepo) GetByID(id string) (*models.Cottage, error) {
	if c, ok := f.cottages[id]; ok {
		copied := *c
		return &copied, nil
	}
	return nil, nil
}

func (f *fakeCottageRepo) List(filter cottageRepo.ListFilter) ([]models.Cottage, error) {
	var out []models.Cottage
	for _, c := range f.cottages {
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeCottageRepo) ListByOwner(ownerID string) ([]models.Cottage, error) { return nil, nil }
func (f *fakeCottageRepo) Count() (int64, error)                                { return 0, nil }
func (f *fakeCottageRepo) Create(cottage *models.Cottage) error                 { return nil }
func (f *fakeCottageRepo) Update(cottage *models.Cottage) error                 { return nil }

func (f *fakeCottageRepo) SetBlockedUntil(id string, until *time.Time) error {
	f.cottages[id].BlockedUntil = until
	return nil
}

func (f *fakeCottageRepo) Delete(id string) error { return nil }

type fakeRatingRepo struct {
	byCottage map[string][]models.Rating
}

func (f *fakeRatingRepo) ListByCottage(cottageID string) ([]models.Rating, error) {
	return f.byCottage[cottageID], nil
}

func (f *fakeRatingRepo) ListLatestByCottage(cottageID string, limit int) ([]models.Rating, error) {
	all := f.byCottage[cottageID]
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (f *fakeRatingRepo) GetByCottageAndTourist(cottageID, touristID string) (*models.Rating, error) {
	return nil, nil
}

func (f *fakeRatingRepo) Upsert(rating *models.Rating) (bool, error) { return false, nil }

type fakeRegistrationRepo struct {
	requests map[string]*models.RegistrationRequest
}

func (f *fakeRegistrationRepo) GetByID(id string) (*models.RegistrationRequest, error) {
	if r, ok := f.requests[id]; ok {
		copied := *r
		return &copied, nil
	}
	return nil, nil
}

func (f *fakeRegistrationRepo) ListPending() ([]models.RegistrationRequest, error) {
	var out []models.RegistrationRequest
	for _, r := range f.requests {
		if r.Status == models.RequestPending {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeRegistrationRepo) HasWithStatus(username, email, status string) (bool, error) {
	return false, nil
}

func (f *fakeRegistrationRepo) Create(request *models.RegistrationRequest) error { return nil }

func (f *fakeRegistrationRepo) Update(request *models.RegistrationRequest) error {
	f.requests[request.ID] = request
	return nil
}

type fakeStorage struct {
	deleted []string
}

func (f *fakeStorage) UploadImage(ctx context.Context, r io.Reader, folder string) (*storage.UploadedImage, error) {
	return nil, nil
}

func (f *fakeStorage) DeleteImage(ctx context.Context, publicID string) error {
	f.deleted = append(f.deleted, publicID)
	return nil
}

type memorySessions struct {
	hashes map[string]string
}

func (m *memorySessions) Save(ctx context.Context, userID, tokenHash string, ttl time.Duration) error {
	m.hashes[userID] = tokenHash
	return nil
}

func (m *memorySessions) Get(ctx context.Context, userID string) (string, error) {
	return m.hashes[userID], nil
}

func (m *memorySessions) Revoke(ctx context.Context, userID string) error {
	delete(m.hashes, userID)
	return nil
}

type testDeps struct {
	users         *fakeUserRepo
	cottages      *fakeCottageRepo
	ratings       *fakeRatingRepo
	registrations *fakeRegistrationRepo
	store         *fakeStorage
	sessions      *memorySessions
}

func newTestService(now time.Time) (*DefaultAdminService, *testDeps) {
	deps := &testDeps{
		users:         &fakeUserRepo{users: map[string]*models.User{}},
		cottages:      &fakeCottageRepo{cottages: map[string]*models.Cottage{}},
		ratings:       &fakeRatingRepo{byCottage: map[string][]models.Rating{}},
		registrations: &fakeRegistrationRepo{requests: map[string]*models.RegistrationRequest{}},
		store:         &fakeStorage{},
		sessions:      &memorySessions{hashes: map[string]string{}},
	}
	svc := NewAdminService(deps.users, deps.cottages, deps.ratings, deps.registrations, deps.store, deps.sessions, zap.NewNop())
	svc.now = func() time.Time { return now }
	return svc, deps
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func assertAdminCode(t *testing.T, err error, code string) {
	t.Helper()
	var aErr *AdminError
	require.ErrorAs(t, err, &aErr)
	assert.Equal(t, code, aErr.Code)
}

func TestLastThreeNeedAttention(t *testing.T) {
	assert.True(t, lastThreeNeedAttention([]int{1, 1, 1}))
	assert.False(t, lastThreeNeedAttention([]int{1, 1, 2}))
	assert.False(t, lastThreeNeedAttention([]int{1, 1}))
	assert.False(t, lastThreeNeedAttention(nil))
}

func TestListCottagesModerationView(t *testing.T) {
	now := day(2026, time.August, 1)
	svc, deps := newTestService(now)
	until := now.Add(time.Hour)
	deps.cottages.cottages["c1"] = &models.Cottage{ID: "c1", Name: "Alpine", OwnerID: "o1", BlockedUntil: &until}
	deps.ratings.byCottage["c1"] = []models.Rating{{Value: 1}, {Value: 1}, {Value: 1}, {Value: 5}}
	deps.users.users["o1"] = &models.User{ID: "o1", FirstName: "Olga", LastName: "Ownerova"}

	list, err := svc.ListCottages()

	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].Blocked)
	assert.True(t, list[0].NeedsAttention)
	assert.Equal(t, []int{1, 1, 1}, list[0].LastThreeRatings)
	assert.Equal(t, 4, list[0].TotalRatings)
	assert.Equal(t, 2.0, list[0].AverageRating)
	require.NotNil(t, list[0].Owner)
	assert.Equal(t, "Olga", list[0].Owner.FirstName)
}

func TestBlockCottageSets48Hours(t *testing.T) {
	now := day(2026, time.August, 1)
	svc, deps := newTestService(now)
	deps.cottages.cottages["c1"] = &models.Cottage{ID: "c1"}

	blocked, err := svc.BlockCottage("c1")

	require.NoError(t, err)
	require.NotNil(t, blocked.BlockedUntil)
	assert.Equal(t, now.Add(48*time.Hour), *blocked.BlockedUntil)
	assert.NotNil(t, deps.cottages.cottages["c1"].BlockedUntil)
}

func TestUnblockCottageClears(t *testing.T) {
	now := day(2026, time.August, 1)
	svc, deps := newTestService(now)
	until := now.Add(time.Hour)
	deps.cottages.cottages["c1"] = &models.Cottage{ID: "c1", BlockedUntil: &until}

	unblocked, err := svc.UnblockCottage("c1")

	require.NoError(t, err)
	assert.Nil(t, unblocked.BlockedUntil)
	assert.Nil(t, deps.cottages.cottages["c1"].BlockedUntil)
}

func TestBlockMissingCottage(t *testing.T) {
	svc, _ := newTestService(day(2026, time.August, 1))

	_, err := svc.BlockCottage("missing")

	assertAdminCode(t, err, CodeNotFound)
}

func TestApproveRegistrationCreatesActiveUser(t *testing.T) {
	svc, deps := newTestService(day(2026, time.August, 1))
	deps.registrations.requests["r1"] = &models.RegistrationRequest{
		ID: "r1", Username: "newowner", PasswordHash: "hashed", Role: models.RoleOwner,
		Email: "owner@example.com", Status: models.RequestPending,
	}

	user, err := svc.ApproveRegistration("r1")

	require.NoError(t, err)
	assert.True(t, user.Active)
	assert.Equal(t, "hashed", user.PasswordHash)
	assert.Equal(t, models.RoleOwner, user.Role)
	assert.Equal(t, models.RequestApproved, deps.registrations.requests["r1"].Status)
	assert.NotNil(t, deps.registrations.requests["r1"].ReviewedAt)
}

func TestApproveAlreadyReviewed(t *testing.T) {
	svc, deps := newTestService(day(2026, time.August, 1))
	deps.registrations.requests["r1"] = &models.RegistrationRequest{
		ID: "r1", Status: models.RequestRejected,
	}

	_, err := svc.ApproveRegistration("r1")

	assertAdminCode(t, err, CodeConflict)
	assert.Contains(t, err.Error(), "already rejected")
}

func TestRejectRegistrationDeletesPicture(t *testing.T) {
	svc, deps := newTestService(day(2026, time.August, 1))
	deps.registrations.requests["r1"] = &models.RegistrationRequest{
		ID: "r1", Status: models.RequestPending,
		ProfilePicture: "https://res.cloudinary.com/test/image/upload/v1/mountain-cottage/profiles/p1.png",
	}

	rejected, err := svc.RejectRegistration(context.Background(), "r1")

	require.NoError(t, err)
	assert.Equal(t, models.RequestRejected, rejected.Status)
	assert.Equal(t, []string{"mountain-cottage/profiles/p1"}, deps.store.deleted)
}

func TestDeactivateRevokesSession(t *testing.T) {
	svc, deps := newTestService(day(2026, time.August, 1))
	deps.users.users["u1"] = &models.User{ID: "u1", Active: true, TokenHash: "hash"}
	deps.sessions.hashes["u1"] = "hash"

	user, err := svc.Deactivate(context.Background(), "u1")

	require.NoError(t, err)
	assert.False(t, user.Active)
	assert.Empty(t, deps.sessions.hashes["u1"])
	assert.Empty(t, deps.users.users["u1"].TokenHash)
}

func TestUpdateUserEmailConflict(t *testing.T) {
	svc, deps := newTestService(day(2026, time.August, 1))
	deps.users.users["u1"] = &models.User{ID: "u1", Email: "a@example.com"}
	deps.users.users["u2"] = &models.User{ID: "u2", Email: "b@example.com"}

	_, err := svc.UpdateUser("u1", models.ProfileUpdateInput{
		FirstName: "Ana", LastName: "Petrovic", Gender: "F",
		Address: "Road 5", Phone: "+381641234567", Email: "b@example.com",
	})

	assertAdminCode(t, err, CodeConflict)
}

func TestListUsersExcludesAdmins(t *testing.T) {
	svc, deps := newTestService(day(2026, time.August, 1))
	deps.users.users["u1"] = &models.User{ID: "u1", Role: models.RoleTourist}
	deps.users.users["u2"] = &models.User{ID: "u2", Role: models.RoleOwner}
	deps.users.users["a1"] = &models.User{ID: "a1", Role: models.RoleAdmin}

	users, err := svc.ListUsers()

	require.NoError(t, err)
	assert.Len(t, users, 2)
}
