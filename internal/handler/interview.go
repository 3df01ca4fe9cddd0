package handler

import (
	"context"
	"errors"
	"fmt"

	"github.com/abhishek622/hirewizard/internal/groq"
	"github.com/abhishek622/hirewizard/internal/pagination"
	"github.com/abhishek622/hirewizard/internal/repository"
	"github.com/abhishek622/hirewizard/internal/wizard"
	"github.com/abhishek622/hirewizard/pkg/model"
	"github.com/abhishek622/hirewizard/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// createInterview persists a submitted record and queues AI question
// generation for it.
func (h *Handler) createInterview(ctx context.Context, ownerID uuid.UUID, rec wizard.Record) (string, error) {
	draft, err := repository.DraftFromRecord(ownerID, rec)
	if err != nil {
		return "", err
	}
	interviewID, err := h.Repository.CreateInterview(ctx, draft)
	if err != nil {
		return "", err
	}

	h.background.Add(1)
	go func() {
		defer h.background.Done()
		h.generateQuestions(interviewID, draft)
	}()
	return interviewID.String(), nil
}

func (h *Handler) generationRequest(ctx context.Context, d *model.InterviewDraft) (groq.GenerateRequest, error) {
	req := groq.GenerateRequest{Count: d.AIQuestionCount}
	if d.NewJob != nil {
		req.JobTitle, req.Description = d.NewJob.Title, d.NewJob.Description
		req.RoundType, req.Objective = d.NewRound.RoundType, d.NewRound.Objective
		req.Skills = append(append([]string{}, d.NewJob.Skills...), d.NewRound.Skills...)
		return req, nil
	}

	job, err := h.Repository.GetJob(ctx, d.OwnerID, d.JobID)
	if err != nil {
		return req, err
	}
	req.JobTitle, req.Description, req.Skills = job.Title, job.Description, append([]string{}, job.Skills...)

	rounds, err := h.Repository.ListRounds(ctx, d.OwnerID, d.JobID)
	if err != nil {
		return req, err
	}
	for _, rd := range rounds {
		if rd.RoundID == d.RoundID {
			req.RoundType, req.Objective = rd.RoundType, rd.Objective
			req.Skills = append(req.Skills, rd.Skills...)
		}
	}
	return req, nil
}

// generateQuestions runs detached from the request. There is no retry; a
// failure is recorded on the interview.
func (h *Handler) generateQuestions(interviewID uuid.UUID, d *model.InterviewDraft) {
	ctx := context.Background()
	if h.GenerateTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.GenerateTimeout)
		defer cancel()
	}
	log := h.Logger.With(zap.String("interview_id", interviewID.String()))

	setStatus := func(status model.ProcessStatus, errMsg string) {
		if err := h.Repository.UpdateInterviewStatus(ctx, interviewID, status, errMsg); err != nil {
			log.Error("failed to update interview status", zap.String("status", string(status)), zap.Error(err))
		}
	}

	if d.AIQuestionCount <= 0 {
		setStatus(model.ProcessStatusCompleted, "")
		return
	}
	if h.Generator == nil {
		setStatus(model.ProcessStatusFailed, "question generation is not configured")
		return
	}

	setStatus(model.ProcessStatusProcessing, "")

	err := func() error {
		req, err := h.generationRequest(ctx, d)
		if err != nil {
			return fmt.Errorf("load job context: %w", err)
		}
		generated, err := h.Generator.GenerateQuestions(ctx, req)
		if err != nil {
			return fmt.Errorf("generate questions: %w", err)
		}
		texts := make([]string, len(generated))
		for i, q := range generated {
			texts[i] = q.Question
		}
		return h.Repository.CreateQuestions(ctx, interviewID, texts, model.QuestionTypeAI)
	}()
	if err != nil {
		log.Error("question generation failed", zap.Error(err))
		setStatus(model.ProcessStatusFailed, err.Error())
		return
	}

	log.Info("questions generated", zap.Int("count", d.AIQuestionCount))
	setStatus(model.ProcessStatusCompleted, "")
}

func (h *Handler) ListInterviews(c *gin.Context) {
	claims := h.GetClaimsFromContext(c)
	if claims == nil {
		response.Unauthorized(c, "")
		return
	}
	limit, offset := pagination.ParseLimitOffset(c.Query("limit"), c.Query("offset"), pagination.DefaultLimit)

	items, total, err := h.Repository.ListInterviews(c.Request.Context(), claims.UserID, limit, offset, c.Query("search"))
	if err != nil {
		h.Logger.Sugar().Errorw("list interviews failed", "err", err)
		response.InternalError(c, "could not list interviews")
		return
	}
	response.List(c, items, pagination.Page{Limit: limit, Offset: offset, Total: total})
}

// GetInterview returns an interview with its questions.
func (h *Handler) GetInterview(c *gin.Context) {
	claims := h.GetClaimsFromContext(c)
	if claims == nil {
		response.Unauthorized(c, "")
		return
	}
	interviewID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid interview id")
		return
	}

	ctx := c.Request.Context()
	interview, err := h.Repository.GetInterview(ctx, claims.UserID, interviewID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFound(c, "interview not found")
			return
		}
		h.Logger.Sugar().Errorw("get interview failed", "interview_id", interviewID, "err", err)
		response.InternalError(c, "")
		return
	}

	questions, err := h.Repository.ListQuestions(ctx, interviewID)
	if err != nil {
		h.Logger.Sugar().Errorw("list questions failed", "interview_id", interviewID, "err", err)
		response.InternalError(c, "")
		return
	}
	response.OK(c, gin.H{"interview": interview, "questions": questions})
}

func (h *Handler) ListApplicants(c *gin.Context) {
	claims := h.GetClaimsFromContext(c)
	if claims == nil {
		response.Unauthorized(c, "")
		return
	}
	limit, offset := pagination.ParseLimitOffset(c.Query("limit"), c.Query("offset"), pagination.DefaultLimit)

	var jobID *uuid.UUID
	if raw := c.Query("job_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.BadRequest(c, "invalid job id")
			return
		}
		jobID = &id
	}

	items, total, err := h.Repository.ListApplicants(c.Request.Context(), claims.UserID, jobID, limit, offset, c.Query("search"))
	if err != nil {
		h.Logger.Sugar().Errorw("list applicants failed", "err", err)
		response.InternalError(c, "could not list applicants")
		return
	}
	response.List(c, items, pagination.Page{Limit: limit, Offset: offset, Total: total})
}
