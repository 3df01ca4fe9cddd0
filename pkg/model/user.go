package model

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	UserRoleRecruiter   UserRole = "recruiter"
	UserRoleInterviewer UserRole = "interviewer"
)

type UserStatus string

const (
	UserStatusActive  UserStatus = "active"
	UserStatusInvited UserStatus = "invited"
)

type User struct {
	UserID       uuid.UUID  `json:"user_id" db:"user_id"`
	Name         string     `json:"name" db:"name"`
	Email        string     `json:"email" db:"email"`
	PasswordHash string     `json:"-" db:"password_hash"`
	Role         UserRole   `json:"role" db:"role"`
	Status       UserStatus `json:"status" db:"status"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`
}

type SignUpReq struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type InviteUserReq struct {
	Name  string   `json:"name" binding:"required"`
	Email string   `json:"email" binding:"required,email"`
	Role  UserRole `json:"role" binding:"omitempty,oneof=recruiter interviewer"`
}

type UserRes struct {
	UserID uuid.UUID  `json:"user_id"`
	Name   string     `json:"name"`
	Email  string     `json:"email"`
	Role   UserRole   `json:"role"`
	Status UserStatus `json:"status"`
}

func (u *User) Res() UserRes {
	return UserRes{UserID: u.UserID, Name: u.Name, Email: u.Email, Role: u.Role, Status: u.Status}
}

type LoginUserRes struct {
	AccessToken          string    `json:"access_token"`
	AccessTokenExpiresAt time.Time `json:"access_token_expires_at"`
	User                 UserRes   `json:"user"`
}
