package handler

import (
	"context"
	"errors"
	"strconv"

	"github.com/abhishek622/hirewizard/internal/repository"
	"github.com/abhishek622/hirewizard/internal/session"
	"github.com/abhishek622/hirewizard/internal/wizard"
	"github.com/abhishek622/hirewizard/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type wizardRes struct {
	SessionID string      `json:"sessionId"`
	View      wizard.View `json:"view"`
}

type setFieldReq struct {
	Field string `json:"field" binding:"required"`
	Value any    `json:"value"`
}

type textReq struct {
	Text string `json:"text"`
}

type keyReq struct {
	Key string `json:"key" binding:"required"`
}

type countReq struct {
	Count *int `json:"count" binding:"required"`
}

// wizardSession is a wizard restored from the session store for one request.
type wizardSession struct {
	id      string
	ownerID uuid.UUID
	w       *wizard.Wizard
}

func (h *Handler) newWizard(ownerID uuid.UUID) *wizard.Wizard {
	return wizard.New(h.Links, wizard.CreatorFunc(func(ctx context.Context, rec wizard.Record) (string, error) {
		return h.createInterview(ctx, ownerID, rec)
	}), wizard.WithLogger(h.Logger))
}

// loadWizard restores the session named in the path. It writes the error
// response itself and returns nil when the session is unusable.
func (h *Handler) loadWizard(c *gin.Context) *wizardSession {
	claims := h.GetClaimsFromContext(c)
	if claims == nil {
		response.Unauthorized(c, "")
		return nil
	}

	id := c.Param("id")
	entry, err := h.Sessions.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			response.NotFound(c, "wizard session not found or expired")
			return nil
		}
		h.Logger.Sugar().Errorw("load wizard session failed", "session_id", id, "err", err)
		response.InternalError(c, "")
		return nil
	}
	if entry.OwnerID != claims.UserID.String() {
		response.NotFound(c, "wizard session not found or expired")
		return nil
	}

	w := h.newWizard(claims.UserID)
	w.Restore(entry.Snapshot)
	return &wizardSession{id: id, ownerID: claims.UserID, w: w}
}

func (h *Handler) saveWizard(c *gin.Context, ws *wizardSession) bool {
	entry := session.Entry{OwnerID: ws.ownerID.String(), Snapshot: ws.w.Snapshot()}
	if err := h.Sessions.Save(c.Request.Context(), ws.id, entry); err != nil {
		h.Logger.Sugar().Errorw("save wizard session failed", "session_id", ws.id, "err", err)
		response.InternalError(c, "")
		return false
	}
	return true
}

// respondWizard saves the session and returns its current view.
func (h *Handler) respondWizard(c *gin.Context, ws *wizardSession) {
	if !h.saveWizard(c, ws) {
		return
	}
	response.OK(c, wizardRes{SessionID: ws.id, View: ws.w.View()})
}

func (h *Handler) wizardError(c *gin.Context, ws *wizardSession, err error) {
	switch {
	case errors.Is(err, wizard.ErrStepInvalid):
		response.ValidationError(c, "Please fill in all required fields")
	case errors.Is(err, wizard.ErrFooterHidden),
		errors.Is(err, wizard.ErrNotSharable),
		errors.Is(err, wizard.ErrNotFinalStep):
		response.Conflict(c, err.Error())
	case errors.Is(err, wizard.ErrUnknownField),
		errors.Is(err, wizard.ErrFieldType),
		errors.Is(err, wizard.ErrIndex):
		response.BadRequest(c, err.Error())
	case errors.Is(err, repository.ErrInvalidRecord):
		response.ValidationError(c, err.Error())
	case errors.Is(err, repository.ErrNotFound):
		response.ValidationError(c, "the selected job, round or interviewer no longer exists")
	default:
		h.Logger.Sugar().Errorw("wizard action failed", "session_id", ws.id, "err", err)
		response.InternalError(c, "could not create interview")
	}
}

func (h *Handler) skillList(c *gin.Context) (wizard.SkillListName, bool) {
	name, err := wizard.ParseSkillListName(c.Param("list"))
	if err != nil {
		response.BadRequest(c, err.Error())
		return "", false
	}
	return name, true
}

// OpenWizard starts a new wizard session for the caller.
func (h *Handler) OpenWizard(c *gin.Context) {
	claims := h.GetClaimsFromContext(c)
	if claims == nil {
		response.Unauthorized(c, "")
		return
	}

	ws := &wizardSession{id: uuid.NewString(), ownerID: claims.UserID, w: h.newWizard(claims.UserID)}
	if !h.saveWizard(c, ws) {
		return
	}
	h.Logger.Sugar().Infow("wizard opened", "session_id", ws.id, "user_id", claims.UserID)
	response.Created(c, wizardRes{SessionID: ws.id, View: ws.w.View()})
}

func (h *Handler) GetWizard(c *gin.Context) {
	ws := h.loadWizard(c)
	if ws == nil {
		return
	}
	response.OK(c, wizardRes{SessionID: ws.id, View: ws.w.View()})
}

// CloseWizard discards the session and everything entered in it.
func (h *Handler) CloseWizard(c *gin.Context) {
	ws := h.loadWizard(c)
	if ws == nil {
		return
	}
	if err := h.Sessions.Delete(c.Request.Context(), ws.id); err != nil {
		h.Logger.Sugar().Errorw("delete wizard session failed", "session_id", ws.id, "err", err)
		response.InternalError(c, "")
		return
	}
	response.NoContent(c)
}

func (h *Handler) SetWizardField(c *gin.Context) {
	ws := h.loadWizard(c)
	if ws == nil {
		return
	}
	var req setFieldReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := ws.w.SetField(wizard.Field(req.Field), req.Value); err != nil {
		h.wizardError(c, ws, err)
		return
	}
	h.respondWizard(c, ws)
}

func (h *Handler) SetSkillInput(c *gin.Context) {
	ws := h.loadWizard(c)
	if ws == nil {
		return
	}
	name, ok := h.skillList(c)
	if !ok {
		return
	}
	var req textReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	ws.w.SetSkillInput(name, req.Text)
	h.respondWizard(c, ws)
}

// AddSkill commits the pending input of a skills list.
func (h *Handler) AddSkill(c *gin.Context) {
	ws := h.loadWizard(c)
	if ws == nil {
		return
	}
	name, ok := h.skillList(c)
	if !ok {
		return
	}
	added := ws.w.AddSkill(name)
	if !h.saveWizard(c, ws) {
		return
	}
	response.OK(c, gin.H{"added": added, "sessionId": ws.id, "view": ws.w.View()})
}

// SkillKeyDown forwards a key press from a tag input.
func (h *Handler) SkillKeyDown(c *gin.Context) {
	ws := h.loadWizard(c)
	if ws == nil {
		return
	}
	name, ok := h.skillList(c)
	if !ok {
		return
	}
	var req keyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	prevent := ws.w.KeyDown(name, req.Key)
	if !h.saveWizard(c, ws) {
		return
	}
	response.OK(c, gin.H{"preventDefault": prevent, "sessionId": ws.id, "view": ws.w.View()})
}

func (h *Handler) RemoveSkill(c *gin.Context) {
	ws := h.loadWizard(c)
	if ws == nil {
		return
	}
	name, ok := h.skillList(c)
	if !ok {
		return
	}
	ws.w.RemoveSkill(name, c.Param("skill"))
	h.respondWizard(c, ws)
}

func (h *Handler) SetCustomQuestionCount(c *gin.Context) {
	ws := h.loadWizard(c)
	if ws == nil {
		return
	}
	var req countReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := ws.w.SetCustomQuestionCount(*req.Count); err != nil {
		h.wizardError(c, ws, err)
		return
	}
	h.respondWizard(c, ws)
}

func (h *Handler) SetCustomQuestion(c *gin.Context) {
	ws := h.loadWizard(c)
	if ws == nil {
		return
	}
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		response.BadRequest(c, "invalid question index")
		return
	}
	var req textReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := ws.w.SetCustomQuestion(index, req.Text); err != nil {
		h.wizardError(c, ws, err)
		return
	}
	h.respondWizard(c, ws)
}

func (h *Handler) WizardNext(c *gin.Context) {
	ws := h.loadWizard(c)
	if ws == nil {
		return
	}
	if _, err := ws.w.Next(); err != nil {
		h.wizardError(c, ws, err)
		return
	}
	h.respondWizard(c, ws)
}

func (h *Handler) WizardBack(c *gin.Context) {
	ws := h.loadWizard(c)
	if ws == nil {
		return
	}
	if _, err := ws.w.Back(); err != nil {
		h.wizardError(c, ws, err)
		return
	}
	h.respondWizard(c, ws)
}

// WizardShare confirms the share screen and returns the candidate link.
func (h *Handler) WizardShare(c *gin.Context) {
	ws := h.loadWizard(c)
	if ws == nil {
		return
	}
	link, view, err := ws.w.Share()
	if err != nil {
		h.wizardError(c, ws, err)
		return
	}
	if !h.saveWizard(c, ws) {
		return
	}
	response.OK(c, gin.H{"link": link, "sessionId": ws.id, "view": view})
}

// WizardSubmit creates the interview. The session is reset on success and
// left untouched on failure.
func (h *Handler) WizardSubmit(c *gin.Context) {
	ws := h.loadWizard(c)
	if ws == nil {
		return
	}
	sub, err := ws.w.Submit(c.Request.Context())
	if err != nil {
		h.wizardError(c, ws, err)
		return
	}
	if !h.saveWizard(c, ws) {
		return
	}
	response.Created(c, gin.H{"interviewId": sub.InterviewID, "sessionId": ws.id, "view": ws.w.View()})
}
