package application

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenloop/greencycle/internal/infrastructure/inmem"
	"github.com/greenloop/greencycle/pkg/helpers"
)

func newAuthService() *AuthService {
	jwt := helpers.NewJWTManager("test-secret", 24*time.Hour)
	return NewAuthService(inmem.NewUserRepository(), jwt, nil, nil)
}

func TestAuthService_Register(t *testing.T) {
	svc := newAuthService()
	ctx := context.Background()
	start := time.Now().UTC()

	view, err := svc.Register(ctx, RegisterInput{Name: "A", Email: "a@x.com", Password: "p1secret", Phone: "1"})
	require.NoError(t, err)
	assert.NotEmpty(t, view.ID)
	assert.Equal(t, "A", view.Name)
	assert.Equal(t, "a@x.com", view.Email)
	assert.Equal(t, "1", view.Phone)
	assert.False(t, view.CreatedAt.Before(start))

	// The stored record holds a verifiable hash, never the plaintext.
	u, err := svc.Repo.GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.NotEqual(t, "p1secret", u.Password)
	assert.True(t, helpers.CompareHashAndPassword(u.Password, "p1secret"))
	assert.False(t, helpers.CompareHashAndPassword(u.Password, "p2secret"))
}

func TestAuthService_RegisterDuplicateEmail(t *testing.T) {
	svc := newAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Name: "A", Email: "a@x.com", Password: "p1secret", Phone: "1"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, RegisterInput{Name: "B", Email: "a@x.com", Password: "other-pass", Phone: "2"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestAuthService_PublicViewExcludesPassword(t *testing.T) {
	svc := newAuthService()
	view, err := svc.Register(context.Background(), RegisterInput{Name: "A", Email: "a@x.com", Password: "p1secret", Phone: "1"})
	require.NoError(t, err)

	b, err := json.Marshal(view)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "password")
	assert.NotContains(t, string(b), "p1secret")
}

func TestAuthService_Login(t *testing.T) {
	svc := newAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Name: "A", Email: "a@x.com", Password: "p1secret", Phone: "1"})
	require.NoError(t, err)

	// wrong password and unknown email are indistinguishable
	_, err = svc.Login(ctx, "a@x.com", "wrong-pass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Login(ctx, "nobody@x.com", "p1secret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	res, err := svc.Login(ctx, "a@x.com", "p1secret")
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, "a@x.com", res.User.Email)

	// token binds the user id and carries roughly a 1-day expiry
	claims, err := svc.JWT.ParseToken(res.Token)
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, claims.UserID)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestAuthService_GetProfile(t *testing.T) {
	svc := newAuthService()
	ctx := context.Background()

	view, err := svc.Register(ctx, RegisterInput{Name: "A", Email: "a@x.com", Password: "p1secret", Phone: "1"})
	require.NoError(t, err)

	got, err := svc.GetProfile(ctx, view.ID)
	require.NoError(t, err)
	assert.Equal(t, view.Email, got.Email)

	_, err = svc.GetProfile(ctx, "missing")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
