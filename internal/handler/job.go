package handler

import (
	"errors"

	"github.com/abhishek622/hirewizard/internal/fetcher"
	"github.com/abhishek622/hirewizard/internal/pagination"
	"github.com/abhishek622/hirewizard/internal/repository"
	"github.com/abhishek622/hirewizard/pkg/model"
	"github.com/abhishek622/hirewizard/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (h *Handler) ListJobs(c *gin.Context) {
	claims := h.GetClaimsFromContext(c)
	if claims == nil {
		response.Unauthorized(c, "")
		return
	}
	limit, offset := pagination.ParseLimitOffset(c.Query("limit"), c.Query("offset"), pagination.DefaultLimit)

	items, total, err := h.Repository.ListJobs(c.Request.Context(), claims.UserID, limit, offset, c.Query("search"))
	if err != nil {
		h.Logger.Sugar().Errorw("list jobs failed", "err", err)
		response.InternalError(c, "could not list jobs")
		return
	}
	response.List(c, items, pagination.Page{Limit: limit, Offset: offset, Total: total})
}

// ListRounds returns the rounds of one of the caller's jobs.
func (h *Handler) ListRounds(c *gin.Context) {
	claims := h.GetClaimsFromContext(c)
	if claims == nil {
		response.Unauthorized(c, "")
		return
	}
	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid job id")
		return
	}

	ctx := c.Request.Context()
	if _, err := h.Repository.GetJob(ctx, claims.UserID, jobID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFound(c, "job not found")
			return
		}
		h.Logger.Sugar().Errorw("get job failed", "job_id", jobID, "err", err)
		response.InternalError(c, "")
		return
	}

	rounds, err := h.Repository.ListRounds(ctx, claims.UserID, jobID)
	if err != nil {
		h.Logger.Sugar().Errorw("list rounds failed", "job_id", jobID, "err", err)
		response.InternalError(c, "could not list rounds")
		return
	}
	response.OK(c, rounds)
}

// ImportJob fetches a public job posting to prefill the new-job step.
func (h *Handler) ImportJob(c *gin.Context) {
	var req model.ImportJobReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	posting, err := h.Fetcher.FetchJobPosting(c.Request.Context(), req.URL, c.Request.UserAgent())
	if err != nil {
		switch {
		case errors.Is(err, fetcher.ErrInvalidURL):
			response.BadRequest(c, "invalid job posting url")
		case errors.Is(err, fetcher.ErrNoContent):
			response.ValidationError(c, "no job details found at this url")
		default:
			h.Logger.Sugar().Warnw("job import failed", "url", req.URL, "err", err)
			response.BadGateway(c, "could not fetch the job posting")
		}
		return
	}
	response.OK(c, posting)
}
