package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/deniz/campuscare/internal/app/models/dto"
	"github.com/deniz/campuscare/internal/app/repositories"
	"github.com/deniz/campuscare/internal/pkg/apperrors"
	"github.com/deniz/campuscare/internal/pkg/auth"
	"github.com/deniz/campuscare/internal/pkg/validation"
)

// UserService defines the interface for account operations
type UserService interface {
	GetProfile(ctx context.Context, userID int64) (*dto.ProfileResponse, error)
	ChangeEmail(ctx context.Context, userID int64, newEmail string) error
	ResetPassword(ctx context.Context, userID int64, newPassword string) error
	DeleteChatHistory(ctx context.Context, userID int64) error
	DeleteUser(ctx context.Context, userID int64) error
}

// userServiceImpl implements UserService
type userServiceImpl struct {
	userRepo         *repositories.UserRepository
	tokenRepo        *repositories.TokenRepository
	conversationRepo *repositories.ConversationRepository
	logger           zerolog.Logger
}

// NewUserService creates a new UserService
func NewUserService(
	userRepo *repositories.UserRepository,
	tokenRepo *repositories.TokenRepository,
	conversationRepo *repositories.ConversationRepository,
	logger zerolog.Logger,
) UserService {
	return &userServiceImpl{
		userRepo:         userRepo,
		tokenRepo:        tokenRepo,
		conversationRepo: conversationRepo,
		logger:           logger,
	}
}

// GetProfile retrieves the account together with its role detail
func (s *userServiceImpl) GetProfile(ctx context.Context, userID int64) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.GetWithDetail(ctx, userID)
	if err != nil {
		return nil, err
	}
	return dto.NewProfileResponse(user), nil
}

// ChangeEmail updates the account email after uniqueness and format checks
func (s *userServiceImpl) ChangeEmail(ctx context.Context, userID int64, newEmail string) error {
	newEmail = strings.ToLower(strings.TrimSpace(newEmail))
	if !validation.CompiledPatterns.Email.MatchString(newEmail) {
		return apperrors.NewValidationError("invalid email format")
	}

	exists, err := s.userRepo.EmailExists(ctx, newEmail)
	if err != nil {
		return fmt.Errorf("error checking if email exists: %w", err)
	}
	if exists {
		return apperrors.ErrEmailAlreadyExists
	}

	if err := s.userRepo.UpdateEmail(ctx, userID, newEmail); err != nil {
		return err
	}

	s.logger.Info().Int64("userID", userID).Msg("Account email changed")
	return nil
}

// ResetPassword replaces the password and revokes every outstanding refresh
// token so stolen sessions die with the old password.
func (s *userServiceImpl) ResetPassword(ctx context.Context, userID int64, newPassword string) error {
	if len(newPassword) < validation.PasswordMinLength {
		return apperrors.NewValidationError(fmt.Sprintf("password must be at least %d characters long", validation.PasswordMinLength))
	}

	hashedPassword, err := auth.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	if err := s.userRepo.UpdatePasswordHash(ctx, userID, hashedPassword); err != nil {
		return err
	}

	if err := s.tokenRepo.RevokeAllForUser(ctx, userID); err != nil {
		return fmt.Errorf("error revoking sessions after password reset: %w", err)
	}

	s.logger.Info().Int64("userID", userID).Msg("Password reset, sessions revoked")
	return nil
}

// DeleteChatHistory removes every conversation the user owns, messages
// cascade with them
func (s *userServiceImpl) DeleteChatHistory(ctx context.Context, userID int64) error {
	deleted, err := s.conversationRepo.DeleteAllForUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("error deleting chat history: %w", err)
	}
	s.logger.Info().Int64("userID", userID).Int64("conversations", deleted).Msg("Chat history cleared")
	return nil
}

// DeleteUser removes an account. Conversations cascade away while reviews
// survive with their owner reference cleared.
func (s *userServiceImpl) DeleteUser(ctx context.Context, userID int64) error {
	if err := s.userRepo.Delete(ctx, userID); err != nil {
		return err
	}
	s.logger.Info().Int64("userID", userID).Msg("Account deleted")
	return nil
}
