package server

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdoe/resume-builder/internal/config"
	"github.com/jdoe/resume-builder/internal/db"
	"github.com/jdoe/resume-builder/internal/types"
)

// fakeUserStore is an in-memory UserStore for service tests.
type fakeUserStore struct {
	users map[uuid.UUID]*db.UserRecord
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[uuid.UUID]*db.UserRecord{}}
}

func (f *fakeUserStore) CreateUser(_ context.Context, name, email, passwordHash, verificationToken string) (*db.UserRecord, error) {
	rec := &db.UserRecord{
		ID:                uuid.New(),
		Name:              name,
		Email:             email,
		PasswordHash:      passwordHash,
		VerificationToken: verificationToken,
		SubscriptionPlan:  "Free",
		CreatedAt:         time.Now(),
		UpdatedAt:         time.Now(),
	}
	f.users[rec.ID] = rec
	return rec, nil
}

func (f *fakeUserStore) GetUser(_ context.Context, id uuid.UUID) (*db.UserRecord, error) {
	return f.users[id], nil
}

func (f *fakeUserStore) GetUserByEmail(_ context.Context, email string) (*db.UserRecord, error) {
	for _, rec := range f.users {
		if rec.Email == email {
			return rec, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) UpdateUserProfile(_ context.Context, id uuid.UUID, name, profileImageURL string) (*db.UserRecord, error) {
	rec := f.users[id]
	if rec == nil {
		return nil, nil
	}
	rec.Name = name
	rec.ProfileImageURL = profileImageURL
	rec.UpdatedAt = time.Now()
	return rec, nil
}

func (f *fakeUserStore) VerifyUserEmail(_ context.Context, token string) (*db.UserRecord, error) {
	for _, rec := range f.users {
		if token != "" && rec.VerificationToken == token {
			rec.EmailVerified = true
			rec.VerificationToken = ""
			return rec, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) SetVerificationToken(_ context.Context, id uuid.UUID, token string) error {
	if rec := f.users[id]; rec != nil {
		rec.VerificationToken = token
	}
	return nil
}

func testUserService(store UserStore) *UserService {
	// minimum bcrypt cost keeps hashing fast in tests
	return NewUserService(store, &config.PasswordConfig{BcryptCost: 10}, nil, "http://localhost:8080")
}

func registerTestUser(t *testing.T, svc *UserService) *types.User {
	t.Helper()
	user, err := svc.Register(context.Background(), &types.RegisterRequest{
		Name:     "Jane",
		Email:    "jane@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	return user
}

func TestUserService_Register(t *testing.T) {
	store := newFakeUserStore()
	svc := testUserService(store)

	user := registerTestUser(t, svc)
	assert.Equal(t, "Jane", user.Name)
	assert.Equal(t, "jane@example.com", user.Email)
	assert.False(t, user.EmailVerified)
	assert.NotEqual(t, uuid.Nil, user.ID)

	rec := store.users[user.ID]
	require.NotNil(t, rec)
	assert.NotEqual(t, "password123", rec.PasswordHash, "password is stored hashed")
	assert.NotEmpty(t, rec.VerificationToken)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	svc := testUserService(newFakeUserStore())
	registerTestUser(t, svc)

	_, err := svc.Register(context.Background(), &types.RegisterRequest{
		Name:     "Other",
		Email:    "jane@example.com",
		Password: "password456",
	})
	var dup *ErrEmailAlreadyExists
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "jane@example.com", dup.Email)
}

func TestUserService_Login(t *testing.T) {
	svc := testUserService(newFakeUserStore())
	registered := registerTestUser(t, svc)

	user, err := svc.Login(context.Background(), &types.LoginRequest{
		Email:    "jane@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
}

func TestUserService_Login_InvalidCredentials(t *testing.T) {
	svc := testUserService(newFakeUserStore())
	registerTestUser(t, svc)

	_, wrongPass := svc.Login(context.Background(), &types.LoginRequest{
		Email:    "jane@example.com",
		Password: "wrong",
	})
	_, unknownEmail := svc.Login(context.Background(), &types.LoginRequest{
		Email:    "nobody@example.com",
		Password: "password123",
	})

	var invalid *ErrInvalidCredentials
	require.ErrorAs(t, wrongPass, &invalid)
	require.ErrorAs(t, unknownEmail, &invalid)
	// identical message so the response does not reveal which field was wrong
	assert.Equal(t, wrongPass.Error(), unknownEmail.Error())
}

func TestUserService_VerifyEmail(t *testing.T) {
	store := newFakeUserStore()
	svc := testUserService(store)
	registered := registerTestUser(t, svc)

	token := store.users[registered.ID].VerificationToken
	user, err := svc.VerifyEmail(context.Background(), token)
	require.NoError(t, err)
	assert.True(t, user.EmailVerified)

	// a consumed token cannot be used again
	_, err = svc.VerifyEmail(context.Background(), token)
	var bad *ErrInvalidVerificationToken
	assert.ErrorAs(t, err, &bad)
}

func TestUserService_VerifyEmail_EmptyToken(t *testing.T) {
	svc := testUserService(newFakeUserStore())
	_, err := svc.VerifyEmail(context.Background(), "")
	var bad *ErrInvalidVerificationToken
	assert.ErrorAs(t, err, &bad)
}

func TestUserService_ResendVerification(t *testing.T) {
	store := newFakeUserStore()
	svc := testUserService(store)
	registered := registerTestUser(t, svc)
	oldToken := store.users[registered.ID].VerificationToken

	require.NoError(t, svc.ResendVerification(context.Background(), "jane@example.com"))
	assert.NotEqual(t, oldToken, store.users[registered.ID].VerificationToken)
}

func TestUserService_ResendVerification_NoEnumeration(t *testing.T) {
	store := newFakeUserStore()
	svc := testUserService(store)
	registered := registerTestUser(t, svc)

	// unknown address succeeds silently
	assert.NoError(t, svc.ResendVerification(context.Background(), "nobody@example.com"))

	// already verified succeeds without issuing a new token
	store.users[registered.ID].EmailVerified = true
	store.users[registered.ID].VerificationToken = ""
	assert.NoError(t, svc.ResendVerification(context.Background(), "jane@example.com"))
	assert.Empty(t, store.users[registered.ID].VerificationToken)
}

func TestUserService_GetProfile(t *testing.T) {
	svc := testUserService(newFakeUserStore())
	registered := registerTestUser(t, svc)

	user, err := svc.GetProfile(context.Background(), registered.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane", user.Name)

	_, err = svc.GetProfile(context.Background(), uuid.New())
	var notFound *ErrUserNotFound
	assert.ErrorAs(t, err, &notFound)
}

func TestUserService_UpdateProfile(t *testing.T) {
	svc := testUserService(newFakeUserStore())
	registered := registerTestUser(t, svc)

	updated, err := svc.UpdateProfile(context.Background(), registered.ID, &types.UpdateProfileRequest{
		Name: "Jane Doe",
	})
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", updated.Name)

	// empty fields keep their current values
	updated, err = svc.UpdateProfile(context.Background(), registered.ID, &types.UpdateProfileRequest{
		ProfileImageURL: "http://localhost:8080/uploads/profiles/a.png",
	})
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", updated.Name)
	assert.Equal(t, "http://localhost:8080/uploads/profiles/a.png", updated.ProfileImageURL)
}

func TestUserService_UpdateProfile_UnknownUser(t *testing.T) {
	svc := testUserService(newFakeUserStore())
	_, err := svc.UpdateProfile(context.Background(), uuid.New(), &types.UpdateProfileRequest{Name: "X"})
	var notFound *ErrUserNotFound
	assert.ErrorAs(t, err, &notFound)
}
