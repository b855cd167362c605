package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alqalam/college-backend/internal/app/models"
	"github.com/alqalam/college-backend/internal/app/models/dto"
	"github.com/alqalam/college-backend/internal/app/repositories"
	"github.com/alqalam/college-backend/internal/pkg/apperrors"
	"github.com/alqalam/college-backend/internal/pkg/auth"
	"github.com/alqalam/college-backend/internal/pkg/logger"
)

// AuthService handles authentication for both surfaces: administrators sign
// in with their email, students with their student number.
type AuthService struct {
	userRepo    *repositories.UserRepository
	studentRepo *repositories.StudentRepository
	jwtService  *auth.JWTService
}

// NewAuthService creates a new auth service instance
func NewAuthService(userRepo *repositories.UserRepository, studentRepo *repositories.StudentRepository, jwtService *auth.JWTService) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		studentRepo: studentRepo,
		jwtService:  jwtService,
	}
}

// Login authenticates a user and returns a token pair
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.resolveUser(ctx, req)
	if err != nil {
		return nil, err
	}

	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := s.userRepo.UpdateLastLogin(ctx, user.ID); err != nil {
		// A failed login stamp should not block the sign-in itself.
		logger.Warn().Err(err).Int64("userID", user.ID).Msg("Failed to update last login timestamp")
	}

	return s.issueTokens(user)
}

// RefreshTokens validates a refresh token and issues a fresh pair
func (s *AuthService) RefreshTokens(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	claims, err := s.jwtService.ValidateToken(refreshToken)
	if err != nil {
		if errors.Is(err, auth.ErrExpiredToken) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, apperrors.ErrTokenInvalid
	}

	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrTokenInvalid
		}
		return nil, fmt.Errorf("error loading user for refresh: %w", err)
	}

	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	return s.issueTokens(user)
}

// GetUser loads a user by id
func (s *AuthService) GetUser(ctx context.Context, userID int64) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error getting user: %w", err)
	}
	return user, nil
}

// resolveUser finds the account behind a login request. Unknown identifiers
// come back as invalid credentials so login probes cannot enumerate accounts.
func (s *AuthService) resolveUser(ctx context.Context, req dto.LoginRequest) (*models.User, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))
	studentNumber := strings.TrimSpace(req.StudentNumber)

	if (email == "") == (studentNumber == "") {
		return nil, fmt.Errorf("%w: exactly one of email or studentNumber is required", apperrors.ErrBadRequest)
	}

	if email != "" {
		user, err := s.userRepo.GetByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, repositories.ErrUserNotFound) {
				return nil, apperrors.ErrInvalidCredentials
			}
			return nil, fmt.Errorf("error looking up user by email: %w", err)
		}
		return user, nil
	}

	student, err := s.studentRepo.GetByStudentNumber(ctx, studentNumber)
	if err != nil {
		if errors.Is(err, repositories.ErrStudentNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error looking up student by number: %w", err)
	}

	user, err := s.userRepo.GetByID(ctx, student.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error loading student account: %w", err)
	}
	return user, nil
}

func (s *AuthService) issueTokens(user *models.User) (*dto.TokenResponse, error) {
	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := s.jwtService.GenerateTokenPair(user)
	if err != nil {
		return nil, fmt.Errorf("error generating tokens: %w", err)
	}

	return &dto.TokenResponse{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		ExpiresIn:        expiresIn,
		RefreshExpiresIn: refreshExpiresIn,
		TokenType:        "Bearer",
	}, nil
}
