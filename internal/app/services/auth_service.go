package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/deniz/campuscare/internal/app/models"
	"github.com/deniz/campuscare/internal/app/models/dto"
	"github.com/deniz/campuscare/internal/app/repositories"
	"github.com/deniz/campuscare/internal/pkg/apperrors"
	"github.com/deniz/campuscare/internal/pkg/auth"
	"github.com/deniz/campuscare/internal/pkg/validation"
)

// AuthService handles registration, login and token lifecycle
type AuthService struct {
	userRepo   *repositories.UserRepository
	tokenRepo  *repositories.TokenRepository
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo *repositories.UserRepository,
	tokenRepo *repositories.TokenRepository,
	jwtService *auth.JWTService,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		tokenRepo:  tokenRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// validateUsername validates a username
func (s *AuthService) validateUsername(username string) error {
	if strings.TrimSpace(username) == "" {
		return apperrors.NewValidationError("username cannot be empty")
	}
	if !validation.CompiledPatterns.Username.MatchString(username) {
		return apperrors.NewValidationError("username may only contain letters, digits, dots and underscores")
	}
	return nil
}

// validateEmail validates an email address
func (s *AuthService) validateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return apperrors.NewValidationError("email cannot be empty")
	}
	if !validation.CompiledPatterns.Email.MatchString(strings.ToLower(email)) {
		return apperrors.NewValidationError("invalid email format")
	}
	return nil
}

// validatePassword checks if password meets requirements
func (s *AuthService) validatePassword(password string) error {
	if password == "" {
		return apperrors.NewValidationError("password cannot be empty")
	}
	if len(password) < validation.PasswordMinLength {
		return apperrors.NewValidationError(fmt.Sprintf("password must be at least %d characters long", validation.PasswordMinLength))
	}
	return nil
}

// resolveRole maps the optional request role to a RoleType. An empty role
// means a NORMAL account.
func (s *AuthService) resolveRole(role string) (models.RoleType, error) {
	if role == "" {
		return models.RoleNormal, nil
	}
	rt := models.RoleType(strings.ToUpper(role))
	if !models.ValidRole(rt) {
		return "", apperrors.NewValidationError("unknown role: " + role)
	}
	return rt, nil
}

// buildRoleDetail validates that any supplied detail payload matches the
// requested role and attaches it to the user.
func (s *AuthService) buildRoleDetail(user *models.User, req *dto.RegisterRequest) error {
	if req.AdminLevel != nil && user.Role != models.RoleAdmin {
		return apperrors.ErrRoleDetailMismatch
	}
	if req.CourseEnrollments != nil && user.Role != models.RoleStudent {
		return apperrors.ErrRoleDetailMismatch
	}
	if req.Specialisation != nil && user.Role != models.RoleCounsellor {
		return apperrors.ErrRoleDetailMismatch
	}

	switch user.Role {
	case models.RoleAdmin:
		level := 1
		if req.AdminLevel != nil {
			level = *req.AdminLevel
		}
		user.Admin = &models.AdminDetail{AdminLevel: level}
	case models.RoleStudent:
		enrollments := req.CourseEnrollments
		if enrollments == nil {
			enrollments = []string{}
		}
		user.Student = &models.StudentDetail{CourseEnrollments: enrollments}
	case models.RoleCounsellor:
		specialisation := ""
		if req.Specialisation != nil {
			specialisation = *req.Specialisation
		}
		user.Counsellor = &models.CounsellorDetail{Specialisation: specialisation}
	}
	return nil
}

// Register creates a new account. The user row and its role detail row are
// written in one transaction.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	if err := s.validateUsername(req.Username); err != nil {
		return nil, err
	}
	if err := s.validateEmail(req.Email); err != nil {
		return nil, err
	}
	if err := s.validatePassword(req.Password); err != nil {
		return nil, err
	}

	role, err := s.resolveRole(req.Role)
	if err != nil {
		return nil, err
	}

	// Check for duplicates up front for friendlier errors. The unique
	// constraints still back this up under concurrent registration.
	exists, err := s.userRepo.UsernameExists(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("error checking if username exists: %w", err)
	}
	if exists {
		return nil, apperrors.ErrUsernameAlreadyExists
	}

	exists, err = s.userRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("error checking if email exists: %w", err)
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Username:     req.Username,
		Email:        strings.ToLower(req.Email),
		PasswordHash: hashedPassword,
		Role:         role,
	}

	if err := s.buildRoleDetail(user, req); err != nil {
		return nil, err
	}

	if err := s.userRepo.CreateWithDetail(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("userID", user.ID).Str("role", string(user.Role)).Msg("User registered")

	return &dto.RegisterResponse{
		UserID:   user.ID,
		Username: user.Username,
		Role:     string(user.Role),
	}, nil
}

// Login authenticates a user by username and password
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	if strings.TrimSpace(req.Username) == "" || req.Password == "" {
		return nil, apperrors.ErrInvalidCredentials
	}

	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		// Username lookup failure and bad password are indistinguishable
		// to the caller.
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.generateTokenResponse(ctx, user)
}

// RefreshToken rotates a refresh token into a new token pair
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	if strings.TrimSpace(refreshToken) == "" {
		return nil, apperrors.ErrTokenInvalid
	}

	stored, err := s.tokenRepo.Get(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrTokenNotFound) {
			return nil, apperrors.ErrTokenNotFound
		}
		return nil, fmt.Errorf("token validation error: %w", err)
	}

	if stored.Revoked {
		return nil, apperrors.ErrTokenRevoked
	}
	if stored.ExpiresAt.Before(time.Now()) {
		_ = s.tokenRepo.Revoke(ctx, refreshToken)
		return nil, apperrors.ErrTokenExpired
	}

	user, err := s.userRepo.GetByID(ctx, stored.UserID)
	if err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}

	// Rotate: the old token must not be reusable
	if err := s.tokenRepo.Revoke(ctx, refreshToken); err != nil {
		return nil, fmt.Errorf("failed to revoke old token: %w", err)
	}

	return s.generateTokenResponse(ctx, user)
}

// Logout revokes a refresh token
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	if strings.TrimSpace(refreshToken) == "" {
		return apperrors.ErrTokenInvalid
	}
	if err := s.tokenRepo.Revoke(ctx, refreshToken); err != nil {
		if errors.Is(err, apperrors.ErrTokenNotFound) {
			return apperrors.ErrTokenNotFound
		}
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

// generateTokenResponse creates token response
func (s *AuthService) generateTokenResponse(ctx context.Context, user *models.User) (*dto.TokenResponse, error) {
	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := s.jwtService.GenerateTokenPair(user)
	if err != nil {
		return nil, fmt.Errorf("token generation error: %w", err)
	}

	tokenExpiry := s.jwtService.GetRefreshTokenExpiry()

	if err := s.tokenRepo.Store(ctx, user.ID, refreshToken, tokenExpiry); err != nil {
		return nil, fmt.Errorf("token saving error: %w", err)
	}

	return &dto.TokenResponse{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		ExpiresIn:        expiresIn,
		RefreshExpiresIn: refreshExpiresIn,
	}, nil
}
