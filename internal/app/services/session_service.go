package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	appAuth "github.com/deniz/campuscare/internal/app/auth"
	"github.com/deniz/campuscare/internal/app/models"
	"github.com/deniz/campuscare/internal/app/models/dto"
	"github.com/deniz/campuscare/internal/app/repositories"
	"github.com/deniz/campuscare/internal/pkg/apperrors"
)

// SessionService handles counselling session scheduling
type SessionService struct {
	sessionRepo *repositories.SessionRepository
	userRepo    *repositories.UserRepository
	authz       *appAuth.AuthorizationService
	logger      zerolog.Logger
}

// NewSessionService creates a new SessionService
func NewSessionService(
	sessionRepo *repositories.SessionRepository,
	userRepo *repositories.UserRepository,
	authz *appAuth.AuthorizationService,
	logger zerolog.Logger,
) *SessionService {
	return &SessionService{
		sessionRepo: sessionRepo,
		userRepo:    userRepo,
		authz:       authz,
		logger:      logger,
	}
}

// Schedule books a session between the student and the chosen counsellor
func (s *SessionService) Schedule(ctx context.Context, studentID int64, req *dto.ScheduleSessionRequest) (*dto.SessionResponse, error) {
	if req.DateTime.Before(time.Now()) {
		return nil, apperrors.NewValidationError("session time must be in the future")
	}

	counsellor, err := s.userRepo.GetByID(ctx, req.CounsellorID)
	if err != nil {
		return nil, err
	}
	if counsellor.Role != models.RoleCounsellor {
		return nil, apperrors.NewValidationError("chosen user is not a counsellor")
	}

	session, err := s.sessionRepo.Create(ctx, studentID, req.CounsellorID, req.DateTime)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("sessionID", session.ID).Int64("studentID", studentID).Int64("counsellorID", req.CounsellorID).Msg("Session scheduled")
	return dto.NewSessionResponse(session), nil
}

// ToggleStatus flips a session between scheduled and completed. Only the
// session's counsellor may toggle it.
func (s *SessionService) ToggleStatus(ctx context.Context, sessionID, counsellorID int64) (*dto.SessionResponse, error) {
	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.CounsellorID != counsellorID {
		return nil, apperrors.ErrPermissionDenied
	}

	session.ToggleStatus()
	if err := s.sessionRepo.UpdateStatus(ctx, sessionID, session.Status); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("sessionID", sessionID).Str("status", string(session.Status)).Msg("Session status toggled")
	return dto.NewSessionResponse(session), nil
}

// ListForStudent returns the student's sessions
func (s *SessionService) ListForStudent(ctx context.Context, studentID int64) ([]*dto.SessionResponse, error) {
	sessions, err := s.sessionRepo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	return sessionResponses(sessions), nil
}

// ListForCounsellor returns the counsellor's sessions
func (s *SessionService) ListForCounsellor(ctx context.Context, counsellorID int64) ([]*dto.SessionResponse, error) {
	sessions, err := s.sessionRepo.ListByCounsellor(ctx, counsellorID)
	if err != nil {
		return nil, err
	}
	return sessionResponses(sessions), nil
}

func sessionResponses(sessions []*models.CounsellingSession) []*dto.SessionResponse {
	responses := make([]*dto.SessionResponse, 0, len(sessions))
	for _, session := range sessions {
		responses = append(responses, dto.NewSessionResponse(session))
	}
	return responses
}
