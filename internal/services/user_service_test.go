package services_test

import (
	"context"
	"testing"
	"time"

	"talentbridge/ent"
	"talentbridge/ent/user"
	"talentbridge/internal/services"
	"talentbridge/internal/storage"
	"talentbridge/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func setupUserServiceTest() (context.Context, services.UserService, *MockUserRepository) {
	mockUserRepo := new(MockUserRepository)
	userService := services.NewUserService(mockUserRepo, nil, "test-secret", 15*time.Minute, 24*time.Hour)
	return context.Background(), userService, mockUserRepo
}

func TestUserService_Register_UnknownRole(t *testing.T) {
	ctx, userService, mockUserRepo := setupUserServiceTest()

	_, err := userService.Register(ctx, &dto.CreateUserRequest{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "password123",
		Role:     "wizard",
	})

	assert.ErrorIs(t, err, services.ErrValidation)
	mockUserRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestUserService_Register_EnterpriseAndSchoolExclusive(t *testing.T) {
	ctx, userService, mockUserRepo := setupUserServiceTest()

	enterpriseID := uuid.New()
	schoolID := uuid.New()
	_, err := userService.Register(ctx, &dto.CreateUserRequest{
		Name:         "Test User",
		Email:        "test@example.com",
		Password:     "password123",
		Role:         "enterprise",
		EnterpriseID: &enterpriseID,
		SchoolID:     &schoolID,
	})

	assert.ErrorIs(t, err, services.ErrValidation)
	mockUserRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestUserService_Register_HashesPassword(t *testing.T) {
	ctx, userService, mockUserRepo := setupUserServiceTest()

	req := &dto.CreateUserRequest{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "password123",
		Role:     "student",
	}
	created := &ent.User{ID: uuid.New(), Name: req.Name, Email: req.Email, Role: user.RoleStudent}

	mockUserRepo.On("Create", ctx, req, mock.MatchedBy(func(hash string) bool {
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte("password123")) == nil
	})).Return(created, nil).Once()

	got, err := userService.Register(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, created, got)
	mockUserRepo.AssertExpectations(t)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	ctx, userService, mockUserRepo := setupUserServiceTest()

	req := &dto.CreateUserRequest{
		Name:     "Test User",
		Email:    "taken@example.com",
		Password: "password123",
		Role:     "student",
	}

	mockUserRepo.On("Create", ctx, req, mock.AnythingOfType("string")).Return(nil, storage.ErrDuplicateEmail).Once()

	_, err := userService.Register(ctx, req)

	assert.ErrorIs(t, err, services.ErrConflict)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	ctx, userService, mockUserRepo := setupUserServiceTest()

	mockUserRepo.On("GetByEmail", ctx, "nobody@example.com").Return(nil, storage.ErrNotFound).Once()

	_, _, _, err := userService.Login(ctx, &dto.LoginRequest{Email: "nobody@example.com", Password: "password123"})

	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	ctx, userService, mockUserRepo := setupUserServiceTest()

	hash, err := bcrypt.GenerateFromPassword([]byte("a-different-password"), bcrypt.MinCost)
	require.NoError(t, err)
	existing := &ent.User{
		ID:           uuid.New(),
		Email:        "test@example.com",
		PasswordHash: string(hash),
		Role:         user.RoleStudent,
	}

	mockUserRepo.On("GetByEmail", ctx, "test@example.com").Return(existing, nil).Once()

	_, _, _, err = userService.Login(ctx, &dto.LoginRequest{Email: "test@example.com", Password: "password123"})

	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
}
