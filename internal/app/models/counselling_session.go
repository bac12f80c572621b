package models

import "time"

// SessionStatus is the two-state counselling session machine
type SessionStatus string

const (
	SessionStatusScheduled SessionStatus = "scheduled"
	SessionStatusCompleted SessionStatus = "completed"
)

// CounsellingSession links exactly one student and one counsellor.
// Both references are required and cascade-deleted with either party.
type CounsellingSession struct {
	ID           int64         `json:"id" db:"id"`
	StudentID    int64         `json:"studentId" db:"student_id"`
	CounsellorID int64         `json:"counsellorId" db:"counsellor_id"`
	DateTime     time.Time     `json:"dateTime" db:"date_time"`
	Status       SessionStatus `json:"status" db:"status"`
}

// ToggleStatus flips the session between scheduled and completed and
// returns the new status. Toggling is a counsellor action.
func (s *CounsellingSession) ToggleStatus() SessionStatus {
	if s.Status == SessionStatusCompleted {
		s.Status = SessionStatusScheduled
	} else {
		s.Status = SessionStatusCompleted
	}
	return s.Status
}
