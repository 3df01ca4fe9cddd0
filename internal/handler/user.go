package handler

import (
	"errors"
	"strings"

	"github.com/abhishek622/hirewizard/internal/pagination"
	"github.com/abhishek622/hirewizard/internal/repository"
	"github.com/abhishek622/hirewizard/pkg"
	"github.com/abhishek622/hirewizard/pkg/model"
	"github.com/abhishek622/hirewizard/pkg/response"
	"github.com/gin-gonic/gin"
)

// SignUp creates a recruiter account
func (h *Handler) SignUp(c *gin.Context) {
	var req model.SignUpReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Logger.Sugar().Warnw("signup bad request", "err", err)
		response.BadRequest(c, err.Error())
		return
	}

	pwHash, err := pkg.HashPassword(req.Password)
	if err != nil {
		h.Logger.Sugar().Errorw("failed to hash password", "err", err)
		response.InternalError(c, "")
		return
	}

	user := &model.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.ToLower(req.Email),
		PasswordHash: pwHash,
		Role:         model.UserRoleRecruiter,
		Status:       model.UserStatusActive,
	}
	if err := h.Repository.CreateUser(c.Request.Context(), user); err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			response.Conflict(c, "email is already registered")
			return
		}
		h.Logger.Sugar().Errorw("user create failed", "email", user.Email, "err", err)
		response.InternalError(c, "could not create user")
		return
	}

	response.Created(c, user.Res())
}

// Login verifies credentials and returns JWT
func (h *Handler) Login(c *gin.Context) {
	var req model.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Logger.Sugar().Warnw("login bad request", "err", err)
		response.BadRequest(c, err.Error())
		return
	}

	user, err := h.Repository.GetUserByEmail(c.Request.Context(), strings.ToLower(req.Email))
	if err != nil {
		h.Logger.Sugar().Warnw("login user not found", "email", req.Email, "err", err)
		response.Unauthorized(c, "invalid credentials")
		return
	}
	if user.Status != model.UserStatusActive || pkg.ComparePassword(user.PasswordHash, req.Password) != nil {
		h.Logger.Sugar().Warnw("login rejected", "email", req.Email)
		response.Unauthorized(c, "invalid credentials")
		return
	}

	accessToken, claims, err := h.TokenMaker.GenerateToken(user.UserID, user.Email, string(user.Role))
	if err != nil {
		h.Logger.Sugar().Errorw("error creating token", "err", err)
		response.InternalError(c, "could not generate token")
		return
	}

	response.OK(c, model.LoginUserRes{
		AccessToken:          accessToken,
		AccessTokenExpiresAt: claims.RegisteredClaims.ExpiresAt.Time,
		User:                 user.Res(),
	})
}

// Me returns the current user profile
func (h *Handler) Me(c *gin.Context) {
	claims := h.GetClaimsFromContext(c)
	if claims == nil {
		response.Unauthorized(c, "")
		return
	}

	user, err := h.Repository.GetUserByID(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Unauthorized(c, "")
		return
	}
	response.OK(c, user.Res())
}

// InviteUser adds a user without a password; interviewer is the default role.
func (h *Handler) InviteUser(c *gin.Context) {
	var req model.InviteUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if req.Role == "" {
		req.Role = model.UserRoleInterviewer
	}

	user, err := h.Repository.InviteUser(c.Request.Context(), strings.TrimSpace(req.Name), strings.ToLower(req.Email), req.Role)
	if err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			response.Conflict(c, "a user with this email already exists")
			return
		}
		h.Logger.Sugar().Errorw("invite user failed", "email", req.Email, "err", err)
		response.InternalError(c, "could not invite user")
		return
	}

	h.Logger.Sugar().Infow("user invited", "user_id", user.UserID, "role", user.Role)
	response.Created(c, user.Res())
}

func (h *Handler) ListInterviewers(c *gin.Context) {
	limit, offset := pagination.ParseLimitOffset(c.Query("limit"), c.Query("offset"), pagination.DefaultLimit)

	users, total, err := h.Repository.ListInterviewers(c.Request.Context(), limit, offset, c.Query("search"))
	if err != nil {
		h.Logger.Sugar().Errorw("list interviewers failed", "err", err)
		response.InternalError(c, "could not list interviewers")
		return
	}

	out := make([]model.UserRes, len(users))
	for i := range users {
		out[i] = users[i].Res()
	}
	response.List(c, out, pagination.Page{Limit: limit, Offset: offset, Total: total})
}
