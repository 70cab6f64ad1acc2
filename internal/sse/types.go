package sse

// Event is one message on the stream
type Event struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"`
	SessionID string      `json:"session_id,omitempty"`
	Timestamp int64       `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// Filter selects which events a client receives. Zero value means all.
type Filter struct {
	Types     map[string]bool
	SessionID string
}

// NewFilter builds a filter from requested types and an optional session
func NewFilter(types []string, sessionID string) Filter {
	f := Filter{SessionID: sessionID}
	for _, t := range types {
		if t == "" {
			continue
		}
		if f.Types == nil {
			f.Types = make(map[string]bool)
		}
		f.Types[t] = true
	}
	return f
}

// Match reports whether evt passes the filter
func (f Filter) Match(evt Event) bool {
	if f.Types != nil && !f.Types[evt.Type] {
		return false
	}
	return f.SessionID == "" || f.SessionID == evt.SessionID
}

// Client represents a connected SSE client
type Client struct {
	ID           string
	EventChannel chan Event
	Filter       Filter
}
