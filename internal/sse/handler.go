package sse

import (
	"net/http"
	"strings"
	"time"

	"github.com/osse101/PouchSim_Go/internal/logger"
)

// Handler streams hub events to one client.
// Query: types=a,b restricts event types, session=<id> restricts to one session.
func Handler(hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, ErrMsgStreamingUnsupported, http.StatusInternalServerError)
			return
		}

		var types []string
		if raw := r.URL.Query().Get(QueryParamTypes); raw != "" {
			types = strings.Split(raw, ",")
		}
		sessionID := r.URL.Query().Get(QueryParamSession)

		client := hub.Register(NewFilter(types, sessionID))
		if client == nil {
			http.Error(w, ErrMsgHubStopped, http.StatusServiceUnavailable)
			return
		}

		log := logger.FromContext(r.Context())
		log.Info(LogMsgClientConnected,
			"client_id", client.ID,
			"types", types,
			logger.AttrKeySessionID, sessionID)
		defer func() {
			hub.Unregister(client.ID)
			log.Info(LogMsgClientDisconnected, "client_id", client.ID)
		}()

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.WriteHeader(http.StatusOK)

		send := func(evt Event) bool {
			msg, err := FormatSSEMessage(evt)
			if err != nil {
				log.Error(LogMsgWriteError, "error", err)
				return true
			}
			if _, err := w.Write(msg); err != nil {
				log.Warn(LogMsgWriteError, "error", err)
				return false
			}
			flusher.Flush()
			return true
		}

		if !send(Event{
			ID:        client.ID,
			Type:      EventTypeConnected,
			SessionID: sessionID,
			Timestamp: time.Now().Unix(),
			Payload:   map[string]interface{}{"client_id": client.ID, "types": types},
		}) {
			return
		}

		ticker := time.NewTicker(KeepaliveInterval)
		defer ticker.Stop()

		for {
			select {
			case <-r.Context().Done():
				return

			case evt, ok := <-client.EventChannel:
				if !ok {
					return
				}
				if !send(evt) {
					return
				}

			case <-ticker.C:
				if !send(Event{Type: EventTypeKeepalive, Timestamp: time.Now().Unix()}) {
					return
				}
			}
		}
	}
}
