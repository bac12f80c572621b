package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository         *UserRepository
	TokenRepository        *TokenRepository
	ConversationRepository *ConversationRepository
	ReviewRepository       *ReviewRepository
	ResourceRepository     *ResourceRepository
	TicketRepository       *TicketRepository
	SessionRepository      *SessionRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:         NewUserRepository(db),
		TokenRepository:        NewTokenRepository(db),
		ConversationRepository: NewConversationRepository(db),
		ReviewRepository:       NewReviewRepository(db),
		ResourceRepository:     NewResourceRepository(db),
		TicketRepository:       NewTicketRepository(db),
		SessionRepository:      NewSessionRepository(db),
	}
}
