package models

import (
	"time"
)

// RoleType is the closed set of account kinds controlling feature access.
type RoleType string

const (
	RoleNormal     RoleType = "NORMAL"
	RoleAdmin      RoleType = "ADMIN"
	RoleStudent    RoleType = "STUDENT"
	RoleCounsellor RoleType = "COUNSELLOR"
)

// ValidRole reports whether role is a known role discriminator.
func ValidRole(role RoleType) bool {
	switch role {
	case RoleNormal, RoleAdmin, RoleStudent, RoleCounsellor:
		return true
	}
	return false
}

// User defines the user model based on the 'users' table.
// Role selects which detail record applies; exactly one detail row exists
// per user whose role selects it.
type User struct {
	ID           int64     `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         RoleType  `json:"role" db:"role"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`

	// Role detail (populated when needed, at most one non-nil)
	Admin      *AdminDetail      `json:"admin,omitempty"`
	Student    *StudentDetail    `json:"student,omitempty"`
	Counsellor *CounsellorDetail `json:"counsellor,omitempty"`
}

// AdminDetail defines the admin specialization based on the 'admin_details' table
type AdminDetail struct {
	UserID     int64 `json:"userId" db:"user_id"`
	AdminLevel int   `json:"adminLevel" db:"admin_level"`
}

// StudentDetail defines the student specialization based on the 'student_details' table
type StudentDetail struct {
	UserID            int64    `json:"userId" db:"user_id"`
	CourseEnrollments []string `json:"courseEnrollments" db:"course_enrollments"` // ordered course identifiers
}

// CounsellorDetail defines the counsellor specialization based on the 'counsellor_details' table
type CounsellorDetail struct {
	UserID         int64  `json:"userId" db:"user_id"`
	Specialisation string `json:"specialisation" db:"specialisation"`
}
