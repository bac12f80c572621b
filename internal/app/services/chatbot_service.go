package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/deniz/campuscare/internal/app/models/dto"
	"github.com/deniz/campuscare/internal/app/repositories"
	"github.com/deniz/campuscare/internal/pkg/apperrors"
	"github.com/deniz/campuscare/internal/pkg/querylog"
)

// FallbackReply is returned whenever the generative backend fails. The raw
// error never reaches the client.
const FallbackReply = "Sorry, I'm having trouble answering right now. Please try again in a moment."

// faqResponses answers common questions without touching the generative
// backend. Lookup is by lower-cased exact match.
var faqResponses = map[string]string{
	"how can i clear all conversation history?": "Go to your Account page and press \"Delete chat history\". This removes every conversation you own, permanently.",
	"how do i change my email?":                 "Open your Account page and use the \"Change email\" form.",
	"how do i reset my password?":               "Open your Account page and use the \"Reset password\" form. You will be asked to log in again afterwards.",
	"how do i book a counselling session?":      "Students can book a session from the Sessions page by picking a counsellor and a time slot.",
}

// ReplyGenerator produces a reply for a prompt. Satisfied by genai.Client.
type ReplyGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ChatbotService handles chat turns: logging the query, answering from the
// FAQ table or the generative backend, and recording the exchange.
type ChatbotService struct {
	conversationRepo *repositories.ConversationRepository
	generator        ReplyGenerator
	queryLog         *querylog.Log
	logger           zerolog.Logger
}

// NewChatbotService creates a new ChatbotService
func NewChatbotService(
	conversationRepo *repositories.ConversationRepository,
	generator ReplyGenerator,
	queryLog *querylog.Log,
	logger zerolog.Logger,
) *ChatbotService {
	return &ChatbotService{
		conversationRepo: conversationRepo,
		generator:        generator,
		queryLog:         queryLog,
		logger:           logger,
	}
}

// StartConversation opens a new conversation for the user
func (s *ChatbotService) StartConversation(ctx context.Context, userID int64) (*dto.ConversationResponse, error) {
	conversation, err := s.conversationRepo.Create(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error starting conversation: %w", err)
	}
	return &dto.ConversationResponse{
		ID:        conversation.ID,
		CreatedAt: conversation.CreatedAt,
	}, nil
}

// HandleMessage runs one chat turn. The query is logged first so the trend
// report counts every attempt, answered ones or not. The exchange is stored
// as a user message and a bot message in the conversation's log.
func (s *ChatbotService) HandleMessage(ctx context.Context, userID int64, req *dto.ChatMessageRequest) (*dto.ChatReplyResponse, error) {
	prompt := strings.TrimSpace(req.Msg)
	if prompt == "" {
		return nil, apperrors.NewValidationError("message cannot be empty")
	}

	s.queryLog.Append(prompt)

	reply := s.answer(ctx, prompt)

	if err := s.conversationRepo.AppendExchange(ctx, req.ConversationID, userID, prompt, reply); err != nil {
		return nil, fmt.Errorf("error recording exchange: %w", err)
	}

	return &dto.ChatReplyResponse{Reply: reply}, nil
}

// answer resolves a prompt to a reply, falling back to a canned string when
// the generative backend fails or returns nothing
func (s *ChatbotService) answer(ctx context.Context, prompt string) string {
	if canned, ok := faqResponses[strings.ToLower(prompt)]; ok {
		return canned
	}

	reply, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		if errors.Is(err, apperrors.ErrGenerationFailed) || errors.Is(err, apperrors.ErrEmptyReply) {
			s.logger.Warn().Err(err).Msg("Generative backend failed, serving fallback reply")
		} else {
			s.logger.Error().Err(err).Msg("Unexpected generation error, serving fallback reply")
		}
		return FallbackReply
	}
	return reply
}

// ListMessages returns a conversation's message log, optionally filtered
func (s *ChatbotService) ListMessages(ctx context.Context, conversationID int64, filter *dto.ListMessagesRequest) ([]dto.MessageResponse, error) {
	messages, err := s.conversationRepo.ListMessages(ctx, conversationID, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.MessageResponse, 0, len(messages))
	for _, m := range messages {
		responses = append(responses, dto.NewMessageResponse(m))
	}
	return responses, nil
}
