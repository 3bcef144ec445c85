package usecase

import (
	"context"
	"testing"
	"time"

	"resume-match/internal/domain/user"
	"resume-match/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockUserRepo struct {
	users map[uuid.UUID]user.User
}

func newMockUserRepo(users ...user.User) *mockUserRepo {
	m := &mockUserRepo{users: map[uuid.UUID]user.User{}}
	for _, u := range users {
		m.users[u.ID] = u
	}
	return m
}

func (m *mockUserRepo) Create(_ context.Context, u user.User) error {
	m.users[u.ID] = u
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	u, ok := m.users[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (m *mockUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := m.GetByEmail(ctx, email)
	return err == nil, nil
}

func testJWTService() *jwt.HMACService {
	return jwt.NewHMACService("access-secret", "refresh-secret", 15*time.Minute, 7*24*time.Hour)
}

func TestAuthUsecase_Refresh_RotatesTokens(t *testing.T) {
	usr := user.User{ID: uuid.New(), Email: "dev@example.com"}
	jwtSvc := testJWTService()
	uc := NewAuthUsecase(newMockUserRepo(usr), jwtSvc)

	refresh, err := jwtSvc.GenerateRefreshToken(usr.ID)
	require.NoError(t, err)

	access, newRefresh, err := uc.Refresh(context.Background(), refresh)
	require.NoError(t, err)

	claims, err := jwtSvc.ValidateAccessToken(access)
	require.NoError(t, err)
	assert.Equal(t, usr.ID, claims.UserID)
	assert.Equal(t, usr.Email, claims.Email)

	_, err = jwtSvc.ValidateRefreshToken(newRefresh)
	require.NoError(t, err)
}

func TestAuthUsecase_Refresh_DeletedUserIsUnauthorized(t *testing.T) {
	jwtSvc := testJWTService()
	uc := NewAuthUsecase(newMockUserRepo(), jwtSvc)

	// Token signature is valid but the account no longer exists.
	refresh, err := jwtSvc.GenerateRefreshToken(uuid.New())
	require.NoError(t, err)

	_, _, err = uc.Refresh(context.Background(), refresh)
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)
}

func TestAuthUsecase_Refresh_RejectsAccessToken(t *testing.T) {
	usr := user.User{ID: uuid.New(), Email: "dev@example.com"}
	jwtSvc := testJWTService()
	uc := NewAuthUsecase(newMockUserRepo(usr), jwtSvc)

	access, err := jwtSvc.GenerateAccessToken(usr.ID, usr.Email)
	require.NoError(t, err)

	_, _, err = uc.Refresh(context.Background(), access)
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)
}

func TestAuthUsecase_Refresh_EmptyToken(t *testing.T) {
	uc := NewAuthUsecase(newMockUserRepo(), testJWTService())

	_, _, err := uc.Refresh(context.Background(), "")
	assert.ErrorIs(t, err, ErrUnauthorized)
}
