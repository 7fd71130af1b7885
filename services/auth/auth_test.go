package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"mountaincottage/models"
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

func (f *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByIDWithProjection(id string, projection bson.M) (*models.User, error) {
	return f.GetByID(id)
}

func (f *fakeUserRepo) ListByRoles(roles []string) ([]models.User, error) { return nil, nil }

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
	u := f.users[id]
	u.Active = active
	return u, nil
}

func (f *fakeUserRepo) Delete(id string) error {
	delete(f.users, id)
	return nil
}

type fakeRegistrationRepo struct {
	requests map[string]*models.RegistrationRequest
}

func (f *fakeRegistrationRepo) GetByID(id string) (*models.RegistrationRequest, error) {
	return f.requests[id], nil
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
	for _, r := range f.requests {
		if r.Status == status && (r.Username == username || r.Email == email) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRegistrationRepo) Create(request *models.RegistrationRequest) error {
	f.requests[request.ID] = request
	return nil
}

func (f *fakeRegistrationRepo) Update(request *models.RegistrationRequest) error {
	f.requests[request.ID] = request
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

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func newTestService(users map[string]*models.User, requests map[string]*models.RegistrationRequest) (*DefaultAuthService, *memorySessions) {
	if users == nil {
		users = map[string]*models.User{}
	}
	if requests == nil {
		requests = map[string]*models.RegistrationRequest{}
	}
	sessions := &memorySessions{hashes: map[string]string{}}
	svc := NewAuthService(
		&fakeUserRepo{users: users},
		&fakeRegistrationRepo{requests: requests},
		nil,
		sessions,
		zap.NewNop(),
	)
	return svc, sessions
}

func assertAuthCode(t *testing.T, err error, code string) {
	t.Helper()
	var aErr *AuthError
	require.ErrorAs(t, err, &aErr)
	assert.Equal(t, code, aErr.Code)
}

func TestLoginSuccess(t *testing.T) {
	users := map[string]*models.User{
		"u1": {ID: "u1", Username: "marko", PasswordHash: hashPassword(t, "Abcdef1!"), Role: models.RoleTourist, Active: true},
	}
	svc, sessions := newTestService(users, nil)

	session, err := svc.Login(context.Background(), "marko", "Abcdef1!")

	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)
	assert.Equal(t, "u1", session.User.ID)
	assert.NotEmpty(t, sessions.hashes["u1"])
	assert.Equal(t, sessions.hashes["u1"], users["u1"].TokenHash)
}

func TestLoginWrongPassword(t *testing.T) {
	users := map[string]*models.User{
		"u1": {ID: "u1", Username: "marko", PasswordHash: hashPassword(t, "Abcdef1!"), Role: models.RoleTourist, Active: true},
	}
	svc, _ := newTestService(users, nil)

	_, err := svc.Login(context.Background(), "marko", "wrong")

	assertAuthCode(t, err, CodeUnauthorized)
}

func TestLoginUnknownUser(t *testing.T) {
	svc, _ := newTestService(nil, nil)

	_, err := svc.Login(context.Background(), "ghost", "whatever")

	assertAuthCode(t, err, CodeUnauthorized)
}

func TestLoginInactiveAccount(t *testing.T) {
	users := map[string]*models.User{
		"u1": {ID: "u1", Username: "marko", PasswordHash: hashPassword(t, "Abcdef1!"), Role: models.RoleOwner, Active: false},
	}
	svc, _ := newTestService(users, nil)

	_, err := svc.Login(context.Background(), "marko", "Abcdef1!")

	assertAuthCode(t, err, CodeForbidden)
	assert.Contains(t, err.Error(), "Waiting for administrator approval")
}

func TestLoginRejectsAdminAccounts(t *testing.T) {
	users := map[string]*models.User{
		"a1": {ID: "a1", Username: "admin", PasswordHash: hashPassword(t, "Abcdef1!"), Role: models.RoleAdmin, Active: true},
	}
	svc, _ := newTestService(users, nil)

	_, err := svc.Login(context.Background(), "admin", "Abcdef1!")

	assertAuthCode(t, err, CodeForbidden)
	assert.Contains(t, err.Error(), "admin login page")
}

func TestAdminLoginRejectsNonAdmin(t *testing.T) {
	users := map[string]*models.User{
		"u1": {ID: "u1", Username: "marko", PasswordHash: hashPassword(t, "Abcdef1!"), Role: models.RoleTourist, Active: true},
	}
	svc, _ := newTestService(users, nil)

	_, err := svc.AdminLogin(context.Background(), "marko", "Abcdef1!")

	assertAuthCode(t, err, CodeUnauthorized)
}

func TestAdminLoginSuccess(t *testing.T) {
	users := map[string]*models.User{
		"a1": {ID: "a1", Username: "admin", PasswordHash: hashPassword(t, "Abcdef1!"), Role: models.RoleAdmin, Active: true},
	}
	svc, _ := newTestService(users, nil)

	session, err := svc.AdminLogin(context.Background(), "admin", "Abcdef1!")

	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, session.User.Role)
}

func TestLogoutClearsSession(t *testing.T) {
	users := map[string]*models.User{
		"u1": {ID: "u1", Username: "marko", PasswordHash: hashPassword(t, "Abcdef1!"), Role: models.RoleTourist, Active: true},
	}
	svc, sessions := newTestService(users, nil)
	_, err := svc.Login(context.Background(), "marko", "Abcdef1!")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), "u1"))

	assert.Empty(t, sessions.hashes["u1"])
	assert.Empty(t, users["u1"].TokenHash)
}

func validRegisterInput() models.RegisterInput {
	return models.RegisterInput{
		Username:   "newuser",
		Password:   "Abcdef1!",
		FirstName:  "Ana",
		LastName:   "Petrovic",
		Gender:     "F",
		Address:    "Mountain Road 5",
		Phone:      "+381641234567",
		Email:      "ana@example.com",
		CreditCard: "4539123412341234",
		Role:       models.RoleTourist,
	}
}

func TestRegisterCreatesPendingRequest(t *testing.T) {
	svc, _ := newTestService(nil, nil)

	request, err := svc.Register(context.Background(), validRegisterInput(), nil)

	require.NoError(t, err)
	assert.Equal(t, models.RequestPending, request.Status)
	assert.NotEmpty(t, request.ID)
	assert.NotEqual(t, "Abcdef1!", request.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(request.PasswordHash), []byte("Abcdef1!")))
}

func TestRegisterValidationFailure(t *testing.T) {
	svc, _ := newTestService(nil, nil)
	input := validRegisterInput()
	input.Password = "short"
	input.Email = "not-an-email"

	_, err := svc.Register(context.Background(), input, nil)

	var aErr *AuthError
	require.ErrorAs(t, err, &aErr)
	assert.Equal(t, CodeValidation, aErr.Code)
	assert.NotEmpty(t, aErr.Fields)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	users := map[string]*models.User{
		"u1": {ID: "u1", Username: "newuser", Email: "other@example.com"},
	}
	svc, _ := newTestService(users, nil)

	_, err := svc.Register(context.Background(), validRegisterInput(), nil)

	assertAuthCode(t, err, CodeConflict)
	assert.Contains(t, err.Error(), "Username is already taken")
}

func TestRegisterPendingDuplicate(t *testing.T) {
	requests := map[string]*models.RegistrationRequest{
		"r1": {ID: "r1", Username: "someone", Email: "ana@example.com", Status: models.RequestPending},
	}
	svc, _ := newTestService(nil, requests)

	_, err := svc.Register(context.Background(), validRegisterInput(), nil)

	assertAuthCode(t, err, CodeConflict)
}

func TestRegisterRejectedIdentityBlocked(t *testing.T) {
	requests := map[string]*models.RegistrationRequest{
		"r1": {ID: "r1", Username: "newuser", Email: "old@example.com", Status: models.RequestRejected},
	}
	svc, _ := newTestService(nil, requests)

	_, err := svc.Register(context.Background(), validRegisterInput(), nil)

	assertAuthCode(t, err, CodeForbidden)
	assert.Contains(t, err.Error(), "rejected")
}

func TestRegisterRefusesAdminRole(t *testing.T) {
	svc, _ := newTestService(nil, nil)
	input := validRegisterInput()
	input.Role = models.RoleAdmin

	_, err := svc.Register(context.Background(), input, nil)

	assertAuthCode(t, err, CodeValidation)
}

func TestChangePasswordOldIncorrect(t *testing.T) {
	users := map[string]*models.User{
		"u1": {ID: "u1", PasswordHash: hashPassword(t, "Abcdef1!")},
	}
	svc, _ := newTestService(users, nil)

	err := svc.ChangePassword("u1", "wrong", "Ghijkl2@")

	assertAuthCode(t, err, CodeValidation)
	assert.Contains(t, err.Error(), "Old password is incorrect")
}

func TestChangePasswordMustDiffer(t *testing.T) {
	users := map[string]*models.User{
		"u1": {ID: "u1", PasswordHash: hashPassword(t, "Abcdef1!")},
	}
	svc, _ := newTestService(users, nil)

	err := svc.ChangePassword("u1", "Abcdef1!", "Abcdef1!")

	assertAuthCode(t, err, CodeValidation)
}

func TestChangePasswordPolicyApplies(t *testing.T) {
	users := map[string]*models.User{
		"u1": {ID: "u1", PasswordHash: hashPassword(t, "Abcdef1!")},
	}
	svc, _ := newTestService(users, nil)

	err := svc.ChangePassword("u1", "Abcdef1!", "weak")

	var aErr *AuthError
	require.ErrorAs(t, err, &aErr)
	assert.NotEmpty(t, aErr.Fields)
}

func TestChangePasswordSuccess(t *testing.T) {
	users := map[string]*models.User{
		"u1": {ID: "u1", PasswordHash: hashPassword(t, "Abcdef1!")},
	}
	svc, _ := newTestService(users, nil)

	require.NoError(t, svc.ChangePassword("u1", "Abcdef1!", "Ghijkl2@"))

	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(users["u1"].PasswordHash), []byte("Ghijkl2@")))
}

func TestUpdateProfileEmailTaken(t *testing.T) {
	users := map[string]*models.User{
		"u1": {ID: "u1", Email: "ana@example.com"},
		"u2": {ID: "u2", Email: "taken@example.com"},
	}
	svc, _ := newTestService(users, nil)

	_, err := svc.UpdateProfile(context.Background(), "u1", models.ProfileUpdateInput{
		FirstName: "Ana", LastName: "Petrovic", Gender: "F",
		Address: "Mountain Road 5", Phone: "+381641234567", Email: "taken@example.com",
	}, nil)

	assertAuthCode(t, err, CodeConflict)
}

func TestUpdateProfileSuccess(t *testing.T) {
	users := map[string]*models.User{
		"u1": {ID: "u1", Email: "ana@example.com", FirstName: "Ana"},
	}
	svc, _ := newTestService(users, nil)

	updated, err := svc.UpdateProfile(context.Background(), "u1", models.ProfileUpdateInput{
		FirstName: "Anna", LastName: "Petrovic", Gender: "F",
		Address: "Mountain Road 5", Phone: "+381641234567", Email: "ana@example.com",
	}, nil)

	require.NoError(t, err)
	assert.Equal(t, "Anna", updated.FirstName)
	assert.Equal(t, "Anna", users["u1"].FirstName)
}
