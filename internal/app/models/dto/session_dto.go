package dto

import (
	"time"

	"github.com/deniz/campuscare/internal/app/models"
)

// ScheduleSessionRequest books a counselling session with a counsellor
type ScheduleSessionRequest struct {
	CounsellorID int64     `json:"counsellorId" binding:"required"`
	DateTime     time.Time `json:"dateTime" binding:"required"`
}

// SessionResponse is the counselling session view
type SessionResponse struct {
	ID           int64                `json:"id"`
	StudentID    int64                `json:"studentId"`
	CounsellorID int64                `json:"counsellorId"`
	DateTime     time.Time            `json:"dateTime"`
	Status       models.SessionStatus `json:"status"`
}

// NewSessionResponse maps a session model to its view
func NewSessionResponse(session *models.CounsellingSession) *SessionResponse {
	return &SessionResponse{
		ID:           session.ID,
		StudentID:    session.StudentID,
		CounsellorID: session.CounsellorID,
		DateTime:     session.DateTime,
		Status:       session.Status,
	}
}
