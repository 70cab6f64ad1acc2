package handler

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/PouchSim_Go/internal/domain"
	"github.com/osse101/PouchSim_Go/internal/session"
)

func TestSnapshotHandler_Save(t *testing.T) {
	params := map[string]string{PathParamID: "s1"}

	tests := []struct {
		name       string
		body       interface{}
		setup      func(*MockSessionService)
		wantStatus int
		wantBody   string
	}{
		{
			name: "saved",
			body: SaveSnapshotRequest{Name: "before-boss_1"},
			setup: func(m *MockSessionService) {
				m.On("Save", mock.Anything, "s1", "before-boss_1").
					Return(&domain.Snapshot{Name: "before-boss_1"}, nil)
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"name":"before-boss_1"`,
		},
		{
			name:       "missing name",
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `"name":"This field is required"`,
		},
		{
			name:       "bad characters",
			body:       SaveSnapshotRequest{Name: "../etc"},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"name":"Only letters`,
		},
		{
			name: "disabled",
			body: SaveSnapshotRequest{Name: "x"},
			setup: func(m *MockSessionService) {
				m.On("Save", mock.Anything, "s1", "x").Return(nil, domain.ErrSnapshotsDisabled)
			},
			wantStatus: http.StatusNotImplemented,
			wantBody:   ErrMsgSnapshotsDisabledError,
		},
		{
			name: "database failure",
			body: SaveSnapshotRequest{Name: "x"},
			setup: func(m *MockSessionService) {
				m.On("Save", mock.Anything, "s1", "x").
					Return(nil, fmt.Errorf("failed to save snapshot: %w: conn refused", domain.ErrDatabase))
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   ErrMsgGenericServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockSessionService)
			if tt.setup != nil {
				tt.setup(svc)
			}
			h := NewSnapshotHandler(svc)

			w := httptest.NewRecorder()
			h.HandleSave(w, newRequest(t, http.MethodPost, "/api/v1/sessions/s1/snapshots", tt.body, params))

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
			svc.AssertExpectations(t)
		})
	}
}

func TestSnapshotHandler_List(t *testing.T) {
	svc := new(MockSessionService)
	svc.On("ListSnapshots", mock.Anything, session.DefaultSnapshotLimit).
		Return([]domain.SnapshotSummary{{Name: "camp", Slots: 4}}, nil).Once()
	svc.On("ListSnapshots", mock.Anything, 5).Return([]domain.SnapshotSummary{}, nil).Once()
	h := NewSnapshotHandler(svc)

	w := httptest.NewRecorder()
	h.HandleList(w, newRequest(t, http.MethodGet, "/api/v1/snapshots", nil, nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"camp"`)

	w = httptest.NewRecorder()
	h.HandleList(w, newRequest(t, http.MethodGet, "/api/v1/snapshots?limit=5", nil, nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	h.HandleList(w, newRequest(t, http.MethodGet, "/api/v1/snapshots?limit=ten", nil, nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	svc.AssertExpectations(t)
}

func TestSnapshotHandler_RestoreAndDelete(t *testing.T) {
	svc := new(MockSessionService)
	svc.On("Restore", mock.Anything, "camp").Return(testView(), nil).Once()
	svc.On("Restore", mock.Anything, "nope").Return(nil, fmt.Errorf("failed to get snapshot: %w: nope", domain.ErrSnapshotNotFound)).Once()
	svc.On("DeleteSnapshot", mock.Anything, "camp").Return(nil).Once()
	h := NewSnapshotHandler(svc)

	w := httptest.NewRecorder()
	h.HandleRestore(w, newRequest(t, http.MethodPost, "/api/v1/snapshots/camp/restore", nil, map[string]string{PathParamName: "camp"}))
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"s1"`)

	w = httptest.NewRecorder()
	h.HandleRestore(w, newRequest(t, http.MethodPost, "/api/v1/snapshots/nope/restore", nil, map[string]string{PathParamName: "nope"}))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), ErrMsgSnapshotNotFoundError)

	w = httptest.NewRecorder()
	h.HandleDelete(w, newRequest(t, http.MethodDelete, "/api/v1/snapshots/camp", nil, map[string]string{PathParamName: "camp"}))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), MsgSnapshotDeleted)

	svc.AssertExpectations(t)
}
