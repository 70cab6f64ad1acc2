package handler

import (
	"net/http"

	"github.com/osse101/PouchSim_Go/internal/session"
)

// SnapshotHandler serves named pouch snapshots
type SnapshotHandler struct {
	service session.Service
}

// NewSnapshotHandler creates a new snapshot handler
func NewSnapshotHandler(service session.Service) *SnapshotHandler {
	return &SnapshotHandler{service: service}
}

// SaveSnapshotRequest names the snapshot to write
type SaveSnapshotRequest struct {
	Name string `json:"name" validate:"required,max=64,snapshot_name"`
}

// HandleSave stores the session's pouch under a name, replacing any snapshot with that name
func (h *SnapshotHandler) HandleSave(w http.ResponseWriter, r *http.Request) {
	id, ok := GetPathParam(r, w, PathParamID)
	if !ok {
		return
	}

	var req SaveSnapshotRequest
	if err := DecodeAndValidateRequest(r, w, &req, OpSaveSnapshot); err != nil {
		return
	}

	snap, err := h.service.Save(r.Context(), id, req.Name)
	if err != nil {
		respondServiceError(w, r, OpSaveSnapshot, err)
		return
	}
	respondJSON(w, http.StatusCreated, snap)
}

// HandleList lists saved snapshots, newest first
func (h *SnapshotHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	limit, ok := GetIntQueryParam(r, w, QueryParamLimit, session.DefaultSnapshotLimit)
	if !ok {
		return
	}

	summaries, err := h.service.ListSnapshots(r.Context(), limit)
	if err != nil {
		respondServiceError(w, r, OpListSnapshots, err)
		return
	}
	respondJSON(w, http.StatusOK, DataResponse{Data: summaries})
}

// HandleRestore opens a new session from a snapshot
func (h *SnapshotHandler) HandleRestore(w http.ResponseWriter, r *http.Request) {
	name, ok := GetPathParam(r, w, PathParamName)
	if !ok {
		return
	}

	v, err := h.service.Restore(r.Context(), name)
	if err != nil {
		respondServiceError(w, r, OpRestore, err)
		return
	}
	respondJSON(w, http.StatusCreated, v)
}

// HandleDelete removes a snapshot
func (h *SnapshotHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	name, ok := GetPathParam(r, w, PathParamName)
	if !ok {
		return
	}

	if err := h.service.DeleteSnapshot(r.Context(), name); err != nil {
		respondServiceError(w, r, OpDeleteSnapshot, err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgSnapshotDeleted})
}
