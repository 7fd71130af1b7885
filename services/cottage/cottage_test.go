package cottage

import (
	"context"
	"fmt"
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

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

type fakeCottageRepo struct {
	cottages map[string]*models.Cottage
	deleted  []string
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

func (f *fakeCottageRepo) ListByOwner(ownerID string) ([]models.Cottage, error) {
	var out []models.Cottage
	for _, c := range f.cottages {
		if c.OwnerID == ownerID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeCottageRepo) Count() (int64, error) { return int64(len(f.cottages)), nil }

func (f *fakeCottageRepo) Create(cottage *models.Cottage) error {
	f.cottages[cottage.ID] = cottage
	return nil
}

func (f *fakeCottageRepo) Update(cottage *models.Cottage) error {
	f.cottages[cottage.ID] = cottage
	return nil
}

func (f *fakeCottageRepo) SetBlockedUntil(id string, until *time.Time) error {
	f.cottages[id].BlockedUntil = until
	return nil
}

func (f *fakeCottageRepo) Delete(id string) error {
	f.deleted = append(f.deleted, id)
	delete(f.cottages, id)
	return nil
}

type fakeRatingRepo struct {
	ratings map[string]*models.Rating // keyed by cottageID+"/"+touristID
}

func ratingKey(cottageID, touristID string) string { return cottageID + "/" + touristID }

func (f *fakeRatingRepo) ListByCottage(cottageID string) ([]models.Rating, error) {
	var out []models.Rating
	for _, r := range f.ratings {
		if r.CottageID == cottageID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeRatingRepo) ListLatestByCottage(cottageID string, limit int) ([]models.Rating, error) {
	all, _ := f.ListByCottage(cottageID)
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (f *fakeRatingRepo) GetByCottageAndTourist(cottageID, touristID string) (*models.Rating, error) {
	return f.ratings[ratingKey(cottageID, touristID)], nil
}

func (f *fakeRatingRepo) Upsert(rating *models.Rating) (bool, error) {
	key := ratingKey(rating.CottageID, rating.TouristID)
	_, existed := f.ratings[key]
	f.ratings[key] = rating
	return !existed, nil
}

type fakeReservationRepo struct {
	reservations []models.Reservation
}

func (f *fakeReservationRepo) GetByID(id string) (*models.Reservation, error) { return nil, nil }

func (f *fakeReservationRepo) ListByTourist(touristID string) ([]models.Reservation, error) {
	var out []models.Reservation
	for _, r := range f.reservations {
		if r.TouristID == touristID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReservationRepo) ListByCottages(cottageIDs []string) ([]models.Reservation, error) {
	return nil, nil
}

func (f *fakeReservationRepo) FindConfirmedOverlapping(cottageID string, checkIn, checkOut time.Time) ([]models.Reservation, error) {
	return nil, nil
}

func (f *fakeReservationRepo) ListCompletedConfirmed(cottageIDs []string, before time.Time) ([]models.Reservation, error) {
	var out []models.Reservation
	for _, r := range f.reservations {
		if r.Status != models.ReservationConfirmed || !r.CheckOut.Before(before) {
			continue
		}
		for _, id := range cottageIDs {
			if r.CottageID == id {
				out = append(out, r)
				break
			}
		}
	}
	return out, nil
}

func (f *fakeReservationRepo) CountActiveForCottage(cottageID string, now time.Time) (int64, error) {
	var n int64
	for _, r := range f.reservations {
		if r.CottageID == cottageID && r.Status != models.ReservationCancelled && !r.CheckOut.Before(now) {
			n++
		}
	}
	return n, nil
}

func (f *fakeReservationRepo) CountCreatedSince(t time.Time) (int64, error) { return 0, nil }

func (f *fakeReservationRepo) Update(reservation *models.Reservation) error { return nil }

func (f *fakeReservationRepo) CreatePendingGuarded(ctx context.Context, reservation *models.Reservation) error {
	return nil
}

func (f *fakeReservationRepo) ConfirmGuarded(ctx context.Context, id string) (*models.Reservation, error) {
	return nil, nil
}

type fakeUserRepo struct {
	users map[string]*models.User
}

func (f *fakeUserRepo) GetByID(id string) (*models.User, error) {
	if u, ok := f.users[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByUsername(username string) (*models.User, error) { return nil, nil }
func (f *fakeUserRepo) GetByEmail(email string) (*models.User, error)       { return nil, nil }
func (f *fakeUserRepo) GetByIDWithProjection(id string, projection bson.M) (*models.User, error) {
	return f.GetByID(id)
}
func (f *fakeUserRepo) ListByRoles(roles []string) ([]models.User, error)        { return nil, nil }
func (f *fakeUserRepo) CountActiveByRole(role string) (int64, error)             { return 0, nil }
func (f *fakeUserRepo) EmailInUseByOther(email, excludeID string) (bool, error)  { return false, nil }
func (f *fakeUserRepo) Create(user *models.User) error                           { return nil }
func (f *fakeUserRepo) Update(user *models.User) error                           { return nil }
func (f *fakeUserRepo) SetActive(id string, active bool) (*models.User, error)   { return nil, nil }
func (f *fakeUserRepo) Delete(id string) error                                   { return nil }

type fakeStorage struct {
	uploads int
	deleted []string
}

func (f *fakeStorage) UploadImage(ctx context.Context, r io.Reader, folder string) (*storage.UploadedImage, error) {
	f.uploads++
	url := fmt.Sprintf("https://res.cloudinary.com/test/image/upload/v1/%s/img%d.png", folder, f.uploads)
	return &storage.UploadedImage{URL: url, PublicID: fmt.Sprintf("%s/img%d", folder, f.uploads)}, nil
}

func (f *fakeStorage) DeleteImage(ctx context.Context, publicID string) error {
	f.deleted = append(f.deleted, publicID)
	return nil
}

type testDeps struct {
	cottages     *fakeCottageRepo
	ratings      *fakeRatingRepo
	reservations *fakeReservationRepo
	users        *fakeUserRepo
	store        *fakeStorage
}

func newTestService(now time.Time) (*DefaultCottageService, *testDeps) {
	deps := &testDeps{
		cottages:     &fakeCottageRepo{cottages: map[string]*models.Cottage{}},
		ratings:      &fakeRatingRepo{ratings: map[string]*models.Rating{}},
		reservations: &fakeReservationRepo{},
		users:        &fakeUserRepo{users: map[string]*models.User{}},
		store:        &fakeStorage{},
	}
	svc := NewCottageService(deps.cottages, deps.ratings, deps.reservations, deps.users, deps.store, zap.NewNop())
	svc.now = func() time.Time { return now }
	return svc, deps
}

func assertCottageCode(t *testing.T, err error, code string) {
	t.Helper()
	var cErr *CottageError
	require.ErrorAs(t, err, &cErr)
	assert.Equal(t, code, cErr.Code)
}

func TestRatingAggregateRounding(t *testing.T) {
	avg, count := ratingAggregate([]models.Rating{{Value: 4}, {Value: 5}, {Value: 4}})

	assert.Equal(t, 4.3, avg)
	assert.Equal(t, 3, count)
}

func TestRatingAggregateEmpty(t *testing.T) {
	avg, count := ratingAggregate(nil)

	assert.Equal(t, 0.0, avg)
	assert.Equal(t, 0, count)
}

func TestRateValueOutOfRange(t *testing.T) {
	svc, _ := newTestService(day(2026, time.August, 1))

	_, err := svc.Rate("t1", "c1", 6, "great")

	assertCottageCode(t, err, CodeValidation)
}

func TestRateCommentRequired(t *testing.T) {
	svc, _ := newTestService(day(2026, time.August, 1))

	_, err := svc.Rate("t1", "c1", 4, "  ")

	assertCottageCode(t, err, CodeValidation)
}

func TestRateRequiresCompletedStay(t *testing.T) {
	now := day(2026, time.August, 1)
	svc, deps := newTestService(now)
	deps.cottages.cottages["c1"] = &models.Cottage{ID: "c1", OwnerID: "o1"}
	deps.reservations.reservations = []models.Reservation{
		{CottageID: "c1", TouristID: "t1", Status: models.ReservationConfirmed, CheckIn: day(2026, time.August, 10), CheckOut: day(2026, time.August, 12)},
	}

	_, err := svc.Rate("t1", "c1", 4, "lovely")

	assertCottageCode(t, err, CodeForbidden)
}

func TestRateUpsertReplacesEarlier(t *testing.T) {
	now := day(2026, time.August, 1)
	svc, deps := newTestService(now)
	deps.cottages.cottages["c1"] = &models.Cottage{ID: "c1", OwnerID: "o1"}
	deps.reservations.reservations = []models.Reservation{
		{CottageID: "c1", TouristID: "t1", Status: models.ReservationConfirmed, CheckIn: day(2026, time.July, 10), CheckOut: day(2026, time.July, 12)},
	}

	_, err := svc.Rate("t1", "c1", 3, "fine")
	require.NoError(t, err)
	_, err = svc.Rate("t1", "c1", 5, "even better second time")
	require.NoError(t, err)

	ratings, _ := deps.ratings.ListByCottage("c1")
	require.Len(t, ratings, 1)
	assert.Equal(t, 5, ratings[0].Value)
}

func validInput() models.CottageInput {
	return models.CottageInput{
		Name:        "Alpine Hideaway",
		Location:    "Kopaonik",
		SummerPrice: 100,
		WinterPrice: 60,
		Capacity:    4,
	}
}

func TestCreateRejectsEqualSeasonPrices(t *testing.T) {
	svc, _ := newTestService(day(2026, time.August, 1))
	input := validInput()
	input.WinterPrice = input.SummerPrice

	_, err := svc.Create(context.Background(), "o1", input, nil)

	var cErr *CottageError
	require.ErrorAs(t, err, &cErr)
	assert.Contains(t, cErr.Fields, "Summer and winter prices must be different.")
}

func TestCreateSuccess(t *testing.T) {
	svc, deps := newTestService(day(2026, time.August, 1))

	c, err := svc.Create(context.Background(), "o1", validInput(), nil)

	require.NoError(t, err)
	assert.Equal(t, "o1", c.OwnerID)
	assert.NotEmpty(t, c.ID)
	assert.Contains(t, deps.cottages.cottages, c.ID)
}

func TestImportJSONInvalidDocument(t *testing.T) {
	svc, _ := newTestService(day(2026, time.August, 1))

	_, err := svc.ImportJSON(context.Background(), "o1", []byte("{not json"))

	assertCottageCode(t, err, CodeValidation)
	assert.Contains(t, err.Error(), "Invalid cottage JSON file")
}

func TestImportJSONSuccess(t *testing.T) {
	svc, _ := newTestService(day(2026, time.August, 1))
	doc := []byte(`{"name":"Imported","location":"Zlatibor","summerPrice":90,"winterPrice":50,"capacity":3}`)

	c, err := svc.ImportJSON(context.Background(), "o1", doc)

	require.NoError(t, err)
	assert.Equal(t, "Imported", c.Name)
	assert.Equal(t, 3, c.Capacity)
}

func TestUpdateRemovesDroppedImages(t *testing.T) {
	svc, deps := newTestService(day(2026, time.August, 1))
	deps.cottages.cottages["c1"] = &models.Cottage{
		ID: "c1", OwnerID: "o1",
		Images: []string{
			"https://res.cloudinary.com/test/image/upload/v1/mountain-cottage/cottages/keep.png",
			"https://res.cloudinary.com/test/image/upload/v1/mountain-cottage/cottages/drop.png",
		},
	}

	updated, err := svc.Update(context.Background(), "o1", "c1", validInput(),
		[]string{"https://res.cloudinary.com/test/image/upload/v1/mountain-cottage/cottages/keep.png"}, nil)

	require.NoError(t, err)
	assert.Equal(t, []string{"https://res.cloudinary.com/test/image/upload/v1/mountain-cottage/cottages/keep.png"}, updated.Images)
	assert.Equal(t, []string{"mountain-cottage/cottages/drop"}, deps.store.deleted)
}

func TestUpdateForeignCottage(t *testing.T) {
	svc, deps := newTestService(day(2026, time.August, 1))
	deps.cottages.cottages["c1"] = &models.Cottage{ID: "c1", OwnerID: "o1"}

	_, err := svc.Update(context.Background(), "o2", "c1", validInput(), nil, nil)

	assertCottageCode(t, err, CodeForbidden)
}

func TestDeleteBlockedByActiveReservations(t *testing.T) {
	now := day(2026, time.August, 1)
	svc, deps := newTestService(now)
	deps.cottages.cottages["c1"] = &models.Cottage{ID: "c1", OwnerID: "o1"}
	deps.reservations.reservations = []models.Reservation{
		{CottageID: "c1", Status: models.ReservationPending, CheckIn: day(2026, time.August, 10), CheckOut: day(2026, time.August, 12)},
	}

	err := svc.Delete(context.Background(), "o1", "c1")

	assertCottageCode(t, err, CodeConflict)
	assert.Contains(t, deps.cottages.cottages, "c1")
}

func TestDeleteRemovesCottageAndImages(t *testing.T) {
	now := day(2026, time.August, 1)
	svc, deps := newTestService(now)
	deps.cottages.cottages["c1"] = &models.Cottage{
		ID: "c1", OwnerID: "o1",
		Images: []string{"https://res.cloudinary.com/test/image/upload/v1/mountain-cottage/cottages/a.png"},
	}

	require.NoError(t, svc.Delete(context.Background(), "o1", "c1"))

	assert.NotContains(t, deps.cottages.cottages, "c1")
	assert.Equal(t, []string{"mountain-cottage/cottages/a"}, deps.store.deleted)
}
