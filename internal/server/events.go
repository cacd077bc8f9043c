package server

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// event is one SSE payload: which piece of state changed and its new
// snapshot.
type event struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// handleEvents streams state snapshots as server-sent events. Each
// subscriber immediately receives the current value of every holder, then
// one event per change, until the client disconnects.
func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	history, cancelHistory := s.tracker.History.Subscribe()
	defer cancelHistory()
	recommendation, cancelRec := s.tracker.Recommendation.Subscribe()
	defer cancelRec()
	routines, cancelRoutines := s.tracker.Routines.Subscribe()
	defer cancelRoutines()
	completed, cancelCompleted := s.tracker.Completed.Subscribe()
	defer cancelCompleted()
	active, cancelActive := s.tracker.Active.Subscribe()
	defer cancelActive()

	ctx := r.Context()
	for {
		var ev event
		select {
		case <-ctx.Done():
			return
		case v := <-history:
			ev = event{Type: "history", Data: orEmpty(v)}
		case v := <-recommendation:
			ev = event{Type: "recommendation", Data: v}
		case v := <-routines:
			ev = event{Type: "routines", Data: orEmpty(v)}
		case v := <-completed:
			ev = event{Type: "completed", Data: orEmpty(v)}
		case v := <-active:
			ev = event{Type: "session", Data: orEmpty(v)}
		}

		payload, err := json.Marshal(ev)
		if err != nil {
			s.log.Error("encoding event", "type", ev.Type, "error", err)
			continue
		}
		fmt.Fprintf(w, "data: %s\n\n", payload)
		flusher.Flush()
	}
}
