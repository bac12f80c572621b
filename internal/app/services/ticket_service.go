package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	appAuth "github.com/deniz/campuscare/internal/app/auth"
	"github.com/deniz/campuscare/internal/app/models"
	"github.com/deniz/campuscare/internal/app/models/dto"
	"github.com/deniz/campuscare/internal/app/repositories"
	"github.com/deniz/campuscare/internal/pkg/apperrors"
)

// TicketService handles the support ticket lifecycle
type TicketService struct {
	ticketRepo *repositories.TicketRepository
	userRepo   *repositories.UserRepository
	authz      *appAuth.AuthorizationService
	logger     zerolog.Logger
}

// NewTicketService creates a new TicketService
func NewTicketService(
	ticketRepo *repositories.TicketRepository,
	userRepo *repositories.UserRepository,
	authz *appAuth.AuthorizationService,
	logger zerolog.Logger,
) *TicketService {
	return &TicketService{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		authz:      authz,
		logger:     logger,
	}
}

// Open creates a ticket with its initial message
func (s *TicketService) Open(ctx context.Context, studentID int64, req *dto.CreateTicketRequest) (*dto.TicketResponse, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return nil, apperrors.NewValidationError("ticket message cannot be empty")
	}

	ticket, err := s.ticketRepo.Create(ctx, studentID, message)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("ticketID", ticket.ID).Int64("studentID", studentID).Msg("Ticket opened")
	return dto.NewTicketResponse(ticket), nil
}

// Get returns a ticket with its messages after an access check
func (s *TicketService) Get(ctx context.Context, ticketID, userID int64, role models.RoleType) (*dto.TicketResponse, error) {
	if err := s.authz.ValidateTicketAccess(ctx, ticketID, userID, role); err != nil {
		return nil, err
	}

	ticket, err := s.ticketRepo.GetWithMessages(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	return dto.NewTicketResponse(ticket), nil
}

// AddMessage appends a message to a ticket the user is party to. Messages
// may still be appended after closing.
func (s *TicketService) AddMessage(ctx context.Context, ticketID, userID int64, role models.RoleType, req *dto.AddTicketMessageRequest) (*dto.TicketMessageResponse, error) {
	body := strings.TrimSpace(req.Body)
	if body == "" {
		return nil, apperrors.NewValidationError("message body cannot be empty")
	}

	if err := s.authz.ValidateTicketAccess(ctx, ticketID, userID, role); err != nil {
		return nil, err
	}

	msg, err := s.ticketRepo.AppendMessage(ctx, ticketID, body)
	if err != nil {
		return nil, err
	}
	return &dto.TicketMessageResponse{
		ID:        msg.ID,
		Body:      msg.Body,
		CreatedAt: msg.CreatedAt,
	}, nil
}

// Close transitions a ticket to closed. Closing twice fails with
// ErrTicketAlreadyClosed, the transition is one-way.
func (s *TicketService) Close(ctx context.Context, ticketID, counsellorID int64) error {
	if err := s.authz.ValidateTicketAccess(ctx, ticketID, counsellorID, models.RoleCounsellor); err != nil {
		return err
	}

	if err := s.ticketRepo.Close(ctx, ticketID); err != nil {
		return err
	}

	s.logger.Info().Int64("ticketID", ticketID).Int64("counsellorID", counsellorID).Msg("Ticket closed")
	return nil
}

// Assign claims a ticket for a counsellor
func (s *TicketService) Assign(ctx context.Context, ticketID, counsellorID int64) error {
	if err := s.authz.ValidateTicketAccess(ctx, ticketID, counsellorID, models.RoleCounsellor); err != nil {
		return err
	}

	if err := s.ticketRepo.Assign(ctx, ticketID, counsellorID); err != nil {
		return err
	}

	s.logger.Info().Int64("ticketID", ticketID).Int64("counsellorID", counsellorID).Msg("Ticket assigned")
	return nil
}

// ListForStudent returns the student's own tickets
func (s *TicketService) ListForStudent(ctx context.Context, studentID int64) ([]*dto.TicketResponse, error) {
	tickets, err := s.ticketRepo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	return ticketResponses(tickets), nil
}

// ListForCounsellor returns tickets assigned to the counsellor
func (s *TicketService) ListForCounsellor(ctx context.Context, counsellorID int64) ([]*dto.TicketResponse, error) {
	tickets, err := s.ticketRepo.ListByCounsellor(ctx, counsellorID)
	if err != nil {
		return nil, err
	}
	return ticketResponses(tickets), nil
}

func ticketResponses(tickets []*models.Ticket) []*dto.TicketResponse {
	responses := make([]*dto.TicketResponse, 0, len(tickets))
	for _, ticket := range tickets {
		responses = append(responses, dto.NewTicketResponse(ticket))
	}
	return responses
}
