package handler

import (
	"context"
	"sync"
	"time"

	"github.com/abhishek622/hirewizard/internal/auth"
	"github.com/abhishek622/hirewizard/internal/groq"
	"github.com/abhishek622/hirewizard/internal/pagination"
	"github.com/abhishek622/hirewizard/internal/session"
	"github.com/abhishek622/hirewizard/internal/wizard"
	"github.com/abhishek622/hirewizard/pkg/model"
	"github.com/abhishek622/hirewizard/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ClaimsKey is the gin context key the auth middleware stores claims under.
const ClaimsKey = "claims"

// Repository is the persistence surface the handlers need.
type Repository interface {
	CreateUser(ctx context.Context, u *model.User) error
	InviteUser(ctx context.Context, name, email string, role model.UserRole) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUserByID(ctx context.Context, userID uuid.UUID) (*model.User, error)
	ListInterviewers(ctx context.Context, limit, offset int, search string) ([]model.User, int, error)

	ListJobs(ctx context.Context, ownerID uuid.UUID, limit, offset int, search string) ([]model.JobListItem, int, error)
	GetJob(ctx context.Context, ownerID, jobID uuid.UUID) (*model.Job, error)
	ListRounds(ctx context.Context, ownerID, jobID uuid.UUID) ([]model.Round, error)

	CreateInterview(ctx context.Context, d *model.InterviewDraft) (uuid.UUID, error)
	GetInterview(ctx context.Context, ownerID, interviewID uuid.UUID) (*model.Interview, error)
	ListInterviews(ctx context.Context, ownerID uuid.UUID, limit, offset int, search string) ([]model.InterviewListItem, int, error)
	UpdateInterviewStatus(ctx context.Context, interviewID uuid.UUID, status model.ProcessStatus, errMsg string) error
	ListQuestions(ctx context.Context, interviewID uuid.UUID) ([]model.Question, error)
	CreateQuestions(ctx context.Context, interviewID uuid.UUID, texts []string, qType string) error

	ListApplicants(ctx context.Context, ownerID uuid.UUID, jobID *uuid.UUID, limit, offset int, search string) ([]model.Applicant, int, error)
}

type QuestionGenerator interface {
	GenerateQuestions(ctx context.Context, req groq.GenerateRequest) ([]groq.GeneratedQuestion, error)
}

type JobFetcher interface {
	FetchJobPosting(ctx context.Context, rawURL, userAgent string) (*model.JobPosting, error)
}

type Handler struct {
	Logger     *zap.Logger
	Repository Repository
	Sessions   session.Store
	TokenMaker *auth.JWTMaker
	Links      *wizard.LinkGenerator
	Fetcher    JobFetcher

	// Generator is optional; without it AI questions are not produced.
	Generator       QuestionGenerator
	GenerateTimeout time.Duration

	// SearchDebounce is advertised to clients for their search boxes.
	SearchDebounce time.Duration

	background sync.WaitGroup
}

// GetClaimsFromContext returns the claims set by the auth middleware, or nil.
func (h *Handler) GetClaimsFromContext(c *gin.Context) *auth.UserClaims {
	v, exists := c.Get(ClaimsKey)
	if !exists {
		return nil
	}
	claims, ok := v.(*auth.UserClaims)
	if !ok {
		return nil
	}
	return claims
}

// Wait blocks until background question generation has finished.
func (h *Handler) Wait() {
	h.background.Wait()
}

type settingsRes struct {
	SearchDebounceMs int64 `json:"searchDebounceMs"`
	PageLimit        int   `json:"pageLimit"`
}

// Settings returns the list and search tuning clients should use.
func (h *Handler) Settings(c *gin.Context) {
	response.OK(c, settingsRes{
		SearchDebounceMs: h.SearchDebounce.Milliseconds(),
		PageLimit:        pagination.DefaultLimit,
	})
}
