package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"time"

	"talentbridge/ent"
	"talentbridge/internal/models"
	"talentbridge/internal/storage"
	"talentbridge/internal/transport/dto"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
)

// SessionClaims are the JWT claims a session token carries: the subject
// plus the tenant scope the ownership resolver needs.
type SessionClaims struct {
	Role         string `json:"role"`
	EnterpriseID string `json:"enterprise_id,omitempty"`
	SchoolID     string `json:"school_id,omitempty"`
	jwt.RegisteredClaims
}

type userService struct {
	repo              storage.UserRepository
	redisClient       *redis.Client
	jwtSecret         string
	jwtExpiration     time.Duration
	refreshExpiration time.Duration
}

// NewUserService creates a new instance of UserService.
func NewUserService(repo storage.UserRepository, redisClient *redis.Client, jwtSecret string, jwtExpiration, refreshExpiration time.Duration) UserService {
	return &userService{
		repo:              repo,
		redisClient:       redisClient,
		jwtSecret:         jwtSecret,
		jwtExpiration:     jwtExpiration,
		refreshExpiration: refreshExpiration,
	}
}

func (s *userService) Register(ctx context.Context, req *dto.CreateUserRequest) (*ent.User, error) {
	if !models.Role(req.Role).IsValid() {
		return nil, fmt.Errorf("%w: unknown role %q", ErrValidation, req.Role)
	}
	// A user belongs to one enterprise or one school, never both.
	if req.EnterpriseID != nil && req.SchoolID != nil {
		return nil, fmt.Errorf("%w: a user cannot belong to both an enterprise and a school", ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Register: Error hashing password: %v", err)
		return nil, fmt.Errorf("internal error hashing password: %w", err)
	}

	user, err := s.repo.Create(ctx, req, string(hash))
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateEmail) || errors.Is(err, storage.ErrConflict) {
			return nil, fmt.Errorf("%w: %w", ErrConflict, err)
		}
		log.Printf("Register: Error creating user: %v", err)
		return nil, fmt.Errorf("internal error creating user: %w", err)
	}
	return user, nil
}

func (s *userService) Login(ctx context.Context, req *dto.LoginRequest) (*ent.User, string, string, error) {
	user, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Printf("Login attempt failed for email %s: user not found", req.Email)
			return nil, "", "", ErrInvalidCredentials
		}
		log.Printf("Error fetching user by email %s during login: %v", req.Email, err)
		return nil, "", "", fmt.Errorf("internal error during login: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		log.Printf("Login attempt failed for email %s: invalid password", req.Email)
		return nil, "", "", ErrInvalidCredentials
	}

	accessToken, err := s.signAccessToken(user)
	if err != nil {
		return nil, "", "", err
	}

	refreshToken, err := s.issueRefreshToken(ctx, user.ID)
	if err != nil {
		return nil, "", "", err
	}

	return user, accessToken, refreshToken, nil
}

func (s *userService) Refresh(ctx context.Context, req *dto.RefreshRequest) (string, string, error) {
	userID, err := s.consumeRefreshToken(ctx, req.RefreshToken)
	if err != nil {
		return "", "", err
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", "", ErrInvalidCredentials
		}
		return "", "", fmt.Errorf("internal error during refresh: %w", err)
	}

	accessToken, err := s.signAccessToken(user)
	if err != nil {
		return "", "", err
	}

	// Rotate: the consumed token is already gone, issue a fresh one.
	refreshToken, err := s.issueRefreshToken(ctx, user.ID)
	if err != nil {
		return "", "", err
	}
	return accessToken, refreshToken, nil
}

func (s *userService) Logout(ctx context.Context, req *dto.LogoutRequest) error {
	if err := s.redisClient.Del(ctx, refreshKey(req.RefreshToken)).Err(); err != nil {
		log.Printf("Logout: Error deleting refresh token: %v", err)
		return fmt.Errorf("internal error during logout: %w", err)
	}
	return nil
}

func (s *userService) GetByID(ctx context.Context, req *dto.GetUserByIDRequest) (*ent.User, error) {
	user, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching user %s", req.ID))
	}
	return user, nil
}

func (s *userService) signAccessToken(user *ent.User) (string, error) {
	claims := SessionClaims{
		Role: string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.jwtExpiration)),
		},
	}
	if user.EnterpriseID != uuid.Nil {
		claims.EnterpriseID = user.EnterpriseID.String()
	}
	if user.SchoolID != uuid.Nil {
		claims.SchoolID = user.SchoolID.String()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		log.Printf("Error signing access token for user %s: %v", user.ID, err)
		return "", fmt.Errorf("internal error signing token: %w", err)
	}
	return signed, nil
}

// issueRefreshToken stores an opaque token in redis mapped to the user id.
func (s *userService) issueRefreshToken(ctx context.Context, userID uuid.UUID) (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("internal error generating refresh token: %w", err)
	}
	token := hex.EncodeToString(buf)

	if err := s.redisClient.Set(ctx, refreshKey(token), userID.String(), s.refreshExpiration).Err(); err != nil {
		log.Printf("Error storing refresh token for user %s: %v", userID, err)
		return "", fmt.Errorf("internal error storing refresh token: %w", err)
	}
	return token, nil
}

// consumeRefreshToken resolves and deletes the token in one pass.
func (s *userService) consumeRefreshToken(ctx context.Context, token string) (uuid.UUID, error) {
	val, err := s.redisClient.GetDel(ctx, refreshKey(token)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return uuid.Nil, ErrInvalidCredentials
		}
		log.Printf("Error resolving refresh token: %v", err)
		return uuid.Nil, fmt.Errorf("internal error resolving refresh token: %w", err)
	}

	userID, err := uuid.Parse(val)
	if err != nil {
		return uuid.Nil, ErrInvalidCredentials
	}
	return userID, nil
}

func refreshKey(token string) string {
	return "refresh:" + token
}
