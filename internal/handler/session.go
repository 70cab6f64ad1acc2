package handler

import (
	"net/http"

	"github.com/osse101/PouchSim_Go/internal/command"
	"github.com/osse101/PouchSim_Go/internal/display"
	"github.com/osse101/PouchSim_Go/internal/domain"
	"github.com/osse101/PouchSim_Go/internal/session"
)

// MaxCommandsPerRequest bounds one command batch
const MaxCommandsPerRequest = 500

// SessionHandler serves pouch sessions
type SessionHandler struct {
	service session.Service
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(service session.Service) *SessionHandler {
	return &SessionHandler{service: service}
}

// CreateSessionRequest carries the initial pouch, in slot order
type CreateSessionRequest struct {
	Stacks []domain.StackRecord `json:"stacks" validate:"max=1000,dive"`
}

// ApplyCommandsRequest is a batch of pouch commands
type ApplyCommandsRequest struct {
	Commands []command.Command `json:"commands" validate:"required,min=1,max=500,dive"`
}

// DisplayResponse is the rendered pouch of a session
type DisplayResponse struct {
	SessionID string         `json:"session_id"`
	Slots     []display.Slot `json:"slots"`
}

// HandleCreate creates a session from an initial pouch
func (h *SessionHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if err := DecodeAndValidateRequest(r, w, &req, OpCreateSession); err != nil {
		return
	}

	v, err := h.service.Create(r.Context(), req.Stacks)
	if err != nil {
		respondServiceError(w, r, OpCreateSession, err)
		return
	}
	respondJSON(w, http.StatusCreated, v)
}

// HandleGet returns a session
func (h *SessionHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := GetPathParam(r, w, PathParamID)
	if !ok {
		return
	}

	v, err := h.service.Get(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, OpGetSession, err)
		return
	}
	respondJSON(w, http.StatusOK, v)
}

// HandleDelete ends a session
func (h *SessionHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := GetPathParam(r, w, PathParamID)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		respondServiceError(w, r, OpDeleteSession, err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgSessionDeleted})
}

// HandleApply runs a command batch. The batch is all or nothing.
func (h *SessionHandler) HandleApply(w http.ResponseWriter, r *http.Request) {
	id, ok := GetPathParam(r, w, PathParamID)
	if !ok {
		return
	}

	var req ApplyCommandsRequest
	if err := DecodeAndValidateRequest(r, w, &req, OpApplyCommands); err != nil {
		return
	}

	res, err := h.service.Apply(r.Context(), id, req.Commands)
	if err != nil {
		respondServiceError(w, r, OpApplyCommands, err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

// HandleUndo reverts the last applied batch
func (h *SessionHandler) HandleUndo(w http.ResponseWriter, r *http.Request) {
	id, ok := GetPathParam(r, w, PathParamID)
	if !ok {
		return
	}

	v, err := h.service.Undo(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, OpUndo, err)
		return
	}
	respondJSON(w, http.StatusOK, v)
}

// HandleBranch forks a session for what-if exploration
func (h *SessionHandler) HandleBranch(w http.ResponseWriter, r *http.Request) {
	id, ok := GetPathParam(r, w, PathParamID)
	if !ok {
		return
	}

	v, err := h.service.Branch(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, OpBranch, err)
		return
	}
	respondJSON(w, http.StatusCreated, v)
}

// HandleDisplay renders the session's pouch.
// Query: animated=true selects animated icons, broken_from=N marks slots N and up as broken.
func (h *SessionHandler) HandleDisplay(w http.ResponseWriter, r *http.Request) {
	id, ok := GetPathParam(r, w, PathParamID)
	if !ok {
		return
	}
	animated, ok := GetBoolQueryParam(r, w, QueryParamAnimated)
	if !ok {
		return
	}
	brokenFrom, ok := GetIntQueryParam(r, w, QueryParamBrokenFrom, -1)
	if !ok {
		return
	}

	v, err := h.service.Get(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, OpDisplay, err)
		return
	}

	var broken display.BrokenPredicate
	if brokenFrom >= 0 {
		broken = display.BrokenFrom(brokenFrom)
	}
	respondJSON(w, http.StatusOK, DisplayResponse{
		SessionID: v.ID,
		Slots:     display.Slots(v.Stacks, animated, broken),
	})
}
