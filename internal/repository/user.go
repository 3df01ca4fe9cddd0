package repository

import (
	"context"
	"fmt"

	"github.com/abhishek622/hirewizard/pkg/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const userColumns = `user_id, name, email, password_hash, role, status, created_at, updated_at`

type userScanner interface {
	Scan(dest ...any) error
}

func scanUser(row userScanner, u *model.User) error {
	return row.Scan(&u.UserID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.Status, &u.CreatedAt, &u.UpdatedAt)
}

// CreateUser inserts a user and fills in the generated id and timestamps.
func (r *Repository) CreateUser(ctx context.Context, u *model.User) error {
	const q = `
INSERT INTO users (name, email, password_hash, role, status)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + userColumns
	row := r.db.QueryRow(ctx, q, u.Name, u.Email, u.PasswordHash, u.Role, u.Status)
	if err := scanUser(row, u); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("email %s: %w", u.Email, ErrAlreadyExists)
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// InviteUser creates an invited user without a password.
func (r *Repository) InviteUser(ctx context.Context, name, email string, role model.UserRole) (*model.User, error) {
	u := &model.User{Name: name, Email: email, Role: role, Status: model.UserStatusInvited}
	if err := r.CreateUser(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	q := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	var u model.User
	if err := scanUser(r.db.QueryRow(ctx, q, email), &u); err != nil {
		return nil, notFound(err, "user")
	}
	return &u, nil
}

func (r *Repository) GetUserByID(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	q := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1`
	var u model.User
	if err := scanUser(r.db.QueryRow(ctx, q, userID), &u); err != nil {
		return nil, notFound(err, "user")
	}
	return &u, nil
}

// ListInterviewers pages through users who can conduct interviews, matching
// search against name and email.
func (r *Repository) ListInterviewers(ctx context.Context, limit, offset int, search string) ([]model.User, int, error) {
	pattern := searchPattern(search)

	const countQ = `SELECT COUNT(1) FROM users WHERE role = $1 AND (name ILIKE $2 OR email ILIKE $2)`
	q := `SELECT ` + userColumns + ` FROM users
WHERE role = $1 AND (name ILIKE $2 OR email ILIKE $2)
ORDER BY name ASC LIMIT $3 OFFSET $4`

	return listPage(ctx, r.db, "interviewers",
		countQ, []any{model.UserRoleInterviewer, pattern},
		q, []any{model.UserRoleInterviewer, pattern, limit, offset},
		func(row pgx.CollectableRow) (model.User, error) {
			var u model.User
			err := scanUser(row, &u)
			return u, err
		})
}
