package user

import (
	"context"
	"fmt"
	"time"

	userRepo "smartpark/database/repository/user"
	"smartpark/models"
	"smartpark/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenDuration = 72 * time.Hour

// DefaultUserService implements UserService.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

// Register validates basic data, checks for duplicates, persists the user and
// returns a signed token.
func (s *DefaultUserService) Register(req RegistrationData) (*AuthResponse, error) {
	if req.Email == "" || req.Password == "" || req.Username == "" {
		return nil, fmt.Errorf("all fields are required")
	}

	existing, err := s.Repo.GetByEmail(req.Email)
	if err != nil {
		utils.GetLogger().Error("Register: failed to check for existing user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, fmt.Errorf("a user with this email already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("Register: failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	userObj := models.User{
		ID:           uuid.New().String(),
		Email:        req.Email,
		Username:     req.Username,
		PasswordHash: string(hashedPassword),
		Role:         models.RoleUser,
	}
	if err := s.Repo.Create(&userObj); err != nil {
		utils.GetLogger().Error("Register: failed to create user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	return s.issueToken(&userObj)
}

// Authenticate verifies credentials and returns a fresh token.
func (s *DefaultUserService) Authenticate(email, password string) (*AuthResponse, error) {
	userRec, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("Authenticate: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if userRec == nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userRec.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	return s.issueToken(userRec)
}

// issueToken signs a JWT, stores its hash on the user record and mirrors it
// into the auth cache so the middleware's fast path can validate without a
// DB round-trip.
func (s *DefaultUserService) issueToken(u *models.User) (*AuthResponse, error) {
	token, err := utils.GenerateToken(u.ID, u.Email, u.Role, tokenDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	tokenHash := utils.HashToken(token)
	if err := s.Repo.UpdateSetDocument(u.ID, map[string]interface{}{"tokenHash": tokenHash}); err != nil {
		return nil, fmt.Errorf("failed to persist token hash: %w", err)
	}

	if authCache := utils.AuthCacheClient; authCache != nil {
		cacheKey := utils.AuthCachePrefix + u.ID
		if err := authCache.Set(context.Background(), cacheKey, tokenHash, time.Hour).Err(); err != nil {
			utils.GetLogger().Warn("issueToken: failed to cache token hash", zap.Error(err))
		}
	}

	u.TokenHash = tokenHash
	return &AuthResponse{Token: token, User: *u}, nil
}

// GetByID retrieves a user profile.
func (s *DefaultUserService) GetByID(id string) (*models.User, error) {
	u, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, fmt.Errorf("user with id %s not found", id)
	}
	return u, nil
}

// UpdateDetails saves the profile fields the reservation flow reads
// (car plate for the RESERVED notification, ecocash number for payment).
func (s *DefaultUserService) UpdateDetails(id, carPlate, ecocashNumber string) error {
	return s.Repo.UpdateSetDocument(id, map[string]interface{}{
		"carPlate":      carPlate,
		"ecocashNumber": ecocashNumber,
	})
}

// UpdateFCMToken registers the device token used for pushes.
func (s *DefaultUserService) UpdateFCMToken(id, token string) error {
	return s.Repo.UpdateSetDocument(id, map[string]interface{}{"fcmToken": token})
}
