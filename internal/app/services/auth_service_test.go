package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luct-faculty/portal/internal/app/models"
	"github.com/luct-faculty/portal/internal/app/models/dto"
	"github.com/luct-faculty/portal/internal/pkg/apperrors"
	"github.com/luct-faculty/portal/internal/pkg/auth"
)

type stubAuthUserRepo struct {
	created    *models.User
	createErr  error
	byEmail    *models.User
	byEmailErr error
}

func (r *stubAuthUserRepo) Create(_ context.Context, user *models.User) (int64, error) {
	if r.createErr != nil {
		return 0, r.createErr
	}
	r.created = user
	return 7, nil
}

func (r *stubAuthUserRepo) GetByEmail(_ context.Context, _ string) (*models.User, error) {
	return r.byEmail, r.byEmailErr
}

func (r *stubAuthUserRepo) GetByID(_ context.Context, _ int64) (*models.User, error) {
	return r.byEmail, r.byEmailErr
}

func testJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "test",
	})
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	svc := NewAuthService(&stubAuthUserRepo{}, testJWTService())

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Thabo",
		Email:    "thabo@example.com",
		Password: "password123",
		Role:     "admin",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidRole)
}

func TestRegisterIssuesTokenWithClaims(t *testing.T) {
	userRepo := &stubAuthUserRepo{}
	jwtService := testJWTService()
	svc := NewAuthService(userRepo, jwtService)

	resp, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Thabo",
		Email:    "thabo@example.com",
		Password: "password123",
		Role:     models.RoleStudent,
	})
	require.NoError(t, err)
	require.NotNil(t, userRepo.created)
	assert.NotEqual(t, "password123", userRepo.created.PasswordHash, "password must be stored hashed")

	claims, err := jwtService.ValidateAndExtractClaims(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, models.RoleStudent, claims.Role)
	assert.Equal(t, "Thabo", claims.Name)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := NewAuthService(&stubAuthUserRepo{createErr: apperrors.ErrEmailAlreadyExists}, testJWTService())

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Thabo",
		Email:    "thabo@example.com",
		Password: "password123",
		Role:     models.RoleStudent,
	})
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestLoginUnknownEmailLooksLikeWrongPassword(t *testing.T) {
	svc := NewAuthService(&stubAuthUserRepo{byEmailErr: apperrors.ErrUserNotFound}, testJWTService())

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "ghost@example.com", Password: "whatever1"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginWrongPassword(t *testing.T) {
	hash, err := auth.HashPassword("correct-password")
	require.NoError(t, err)

	svc := NewAuthService(&stubAuthUserRepo{
		byEmail: &models.User{ID: 7, Email: "thabo@example.com", PasswordHash: hash, Role: models.RoleStudent},
	}, testJWTService())

	_, err = svc.Login(context.Background(), &dto.LoginRequest{Email: "thabo@example.com", Password: "wrong-password"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginSuccess(t *testing.T) {
	hash, err := auth.HashPassword("correct-password")
	require.NoError(t, err)

	svc := NewAuthService(&stubAuthUserRepo{
		byEmail: &models.User{ID: 7, Name: "Thabo", Email: "thabo@example.com", PasswordHash: hash, Role: models.RoleLecturer},
	}, testJWTService())

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "thabo@example.com", Password: "correct-password"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, models.RoleLecturer, resp.User.Role)
	assert.Equal(t, 3600, resp.ExpiresIn)
}
