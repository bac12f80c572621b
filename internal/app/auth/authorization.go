package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/deniz/campuscare/internal/app/models"
	"github.com/deniz/campuscare/internal/app/repositories"
	"github.com/deniz/campuscare/internal/pkg/apperrors"
	"github.com/deniz/campuscare/internal/pkg/logger"
)

// AuthorizationService handles ownership and access checks that go beyond
// simple role gating
type AuthorizationService struct {
	userRepo         *repositories.UserRepository
	conversationRepo *repositories.ConversationRepository
	ticketRepo       *repositories.TicketRepository
	sessionRepo      *repositories.SessionRepository
}

// NewAuthorizationService creates a new AuthorizationService
func NewAuthorizationService(
	userRepo *repositories.UserRepository,
	conversationRepo *repositories.ConversationRepository,
	ticketRepo *repositories.TicketRepository,
	sessionRepo *repositories.SessionRepository,
) *AuthorizationService {
	return &AuthorizationService{
		userRepo:         userRepo,
		conversationRepo: conversationRepo,
		ticketRepo:       ticketRepo,
		sessionRepo:      sessionRepo,
	}
}

// ValidateConversationOwnership ensures the conversation exists and belongs to the user.
func (s *AuthorizationService) ValidateConversationOwnership(ctx context.Context, conversationID, userID int64) error {
	conversation, err := s.conversationRepo.GetByID(ctx, conversationID)
	if err != nil {
		if errors.Is(err, apperrors.ErrConversationNotFound) {
			return err
		}
		logger.Error().Err(err).Int64("conversationID", conversationID).Msg("Error fetching conversation for ownership check")
		return fmt.Errorf("failed to check conversation ownership: %w", err)
	}
	if conversation.UserID != userID {
		return apperrors.ErrPermissionDenied
	}
	return nil
}

// ValidateTicketAccess ensures the ticket exists and the user is a party to it.
// Students may access only their own tickets. Counsellors may access tickets
// assigned to them or not yet assigned to anyone.
func (s *AuthorizationService) ValidateTicketAccess(ctx context.Context, ticketID, userID int64, role models.RoleType) error {
	ticket, err := s.ticketRepo.GetByID(ctx, ticketID)
	if err != nil {
		if errors.Is(err, apperrors.ErrTicketNotFound) {
			return err
		}
		logger.Error().Err(err).Int64("ticketID", ticketID).Msg("Error fetching ticket for access check")
		return fmt.Errorf("failed to check ticket access: %w", err)
	}

	switch role {
	case models.RoleStudent:
		if ticket.StudentID != userID {
			return apperrors.ErrPermissionDenied
		}
	case models.RoleCounsellor:
		if ticket.CounsellorID != nil && *ticket.CounsellorID != userID {
			return apperrors.ErrPermissionDenied
		}
	case models.RoleAdmin:
		// Admins may inspect any ticket.
	default:
		return apperrors.ErrPermissionDenied
	}
	return nil
}

// ValidateSessionParty ensures the session exists and the user is one of its
// two participants.
func (s *AuthorizationService) ValidateSessionParty(ctx context.Context, sessionID, userID int64) error {
	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrSessionNotFound) {
			return err
		}
		logger.Error().Err(err).Int64("sessionID", sessionID).Msg("Error fetching session for access check")
		return fmt.Errorf("failed to check session access: %w", err)
	}
	if session.StudentID != userID && session.CounsellorID != userID {
		return apperrors.ErrPermissionDenied
	}
	return nil
}

// GetUserInfo returns user information together with the role detail record
func (s *AuthorizationService) GetUserInfo(ctx context.Context, userID int64) (*models.User, error) {
	user, err := s.userRepo.GetWithDetail(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, err
		}
		logger.Error().Err(err).Int64("userID", userID).Msg("Error getting user by ID in GetUserInfo")
		return nil, fmt.Errorf("failed to get user information: %w", err)
	}
	return user, nil
}
