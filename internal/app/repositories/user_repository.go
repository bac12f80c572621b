package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/deniz/campuscare/internal/app/models"
	userrepo "github.com/deniz/campuscare/internal/app/repositories/user"
	"github.com/deniz/campuscare/internal/db"
)

// IUserRepository defines the interface for user-related database operations
type IUserRepository interface {
	CreateWithDetail(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetWithDetail(ctx context.Context, id int64) (*models.User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	UpdateEmail(ctx context.Context, userID int64, email string) error
	UpdatePasswordHash(ctx context.Context, userID int64, passwordHash string) error
	Delete(ctx context.Context, id int64) error
	ListByRole(ctx context.Context, role models.RoleType) ([]*models.User, error)
}

// UserRepository combines the common user repository with the role-detail
// repositories. The role discriminator and its detail row are always written
// in one transaction so the two can never disagree.
type UserRepository struct {
	pool       *pgxpool.Pool
	common     *userrepo.Repository
	admin      *userrepo.AdminRepository
	student    *userrepo.StudentRepository
	counsellor *userrepo.CounsellorRepository
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		pool:       pool,
		common:     userrepo.NewRepository(pool),
		admin:      userrepo.NewAdminRepository(pool),
		student:    userrepo.NewStudentRepository(pool),
		counsellor: userrepo.NewCounsellorRepository(pool),
	}
}

// CreateWithDetail creates the user row and, when the role selects one, its
// detail row in a single transaction.
func (r *UserRepository) CreateWithDetail(ctx context.Context, user *models.User) error {
	return db.WithTransaction(ctx, r.pool, func(ctx context.Context, tx pgx.Tx) error {
		id, err := r.common.CreateUser(ctx, tx, user)
		if err != nil {
			return err
		}
		user.ID = id

		switch user.Role {
		case models.RoleAdmin:
			detail := user.Admin
			if detail == nil {
				detail = &models.AdminDetail{AdminLevel: 1}
			}
			detail.UserID = id
			user.Admin = detail
			return r.admin.CreateDetail(ctx, tx, detail)
		case models.RoleStudent:
			detail := user.Student
			if detail == nil {
				detail = &models.StudentDetail{CourseEnrollments: []string{}}
			}
			detail.UserID = id
			user.Student = detail
			return r.student.CreateDetail(ctx, tx, detail)
		case models.RoleCounsellor:
			detail := user.Counsellor
			if detail == nil {
				detail = &models.CounsellorDetail{}
			}
			detail.UserID = id
			user.Counsellor = detail
			return r.counsellor.CreateDetail(ctx, tx, detail)
		}
		return nil
	})
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return r.common.GetUserByID(ctx, id)
}

// GetByUsername retrieves a user by username
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.common.GetUserByUsername(ctx, username)
}

// GetWithDetail retrieves a user and loads the detail record its role selects
func (r *UserRepository) GetWithDetail(ctx context.Context, id int64) (*models.User, error) {
	user, err := r.common.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	switch user.Role {
	case models.RoleAdmin:
		user.Admin, err = r.admin.GetByUserID(ctx, id)
	case models.RoleStudent:
		user.Student, err = r.student.GetByUserID(ctx, id)
	case models.RoleCounsellor:
		user.Counsellor, err = r.counsellor.GetByUserID(ctx, id)
	}
	if err != nil {
		return nil, err
	}

	return user, nil
}

// UsernameExists checks if a username already exists
func (r *UserRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	return r.common.UsernameExists(ctx, username)
}

// EmailExists checks if an email already exists
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	return r.common.EmailExists(ctx, email)
}

// UpdateEmail updates a user's email address
func (r *UserRepository) UpdateEmail(ctx context.Context, userID int64, email string) error {
	return r.common.UpdateEmail(ctx, userID, email)
}

// UpdatePasswordHash replaces a user's password hash
func (r *UserRepository) UpdatePasswordHash(ctx context.Context, userID int64, passwordHash string) error {
	return r.common.UpdatePasswordHash(ctx, userID, passwordHash)
}

// Delete deletes a user
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	return r.common.DeleteUser(ctx, id)
}

// ListByRole retrieves all users holding the given role
func (r *UserRepository) ListByRole(ctx context.Context, role models.RoleType) ([]*models.User, error) {
	return r.common.ListByRole(ctx, role)
}

// UpdateStudentEnrollments replaces a student's ordered enrollment list
func (r *UserRepository) UpdateStudentEnrollments(ctx context.Context, userID int64, enrollments []string) error {
	return r.student.UpdateEnrollments(ctx, userID, enrollments)
}
