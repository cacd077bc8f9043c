package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Cyb3rh4ck/SmartGym/internal/session"
)

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, orEmpty(s.tracker.Active.Get()))
}

type startSessionRequest struct {
	RoutineID int64 `json:"routineId"`
}

func (s *Server) handleStartSession(w http.ResponseWriter, r *http.Request) {
	var req startSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	active, err := s.tracker.StartRoutine(r.Context(), req.RoutineID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orEmpty(active))
}

func (s *Server) handleAddSet(w http.ResponseWriter, r *http.Request) {
	exerciseID, err := pathExerciseID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid exercise ID"})
		return
	}
	writeJSON(w, http.StatusOK, orEmpty(s.tracker.AddSet(exerciseID)))
}

func (s *Server) handleRemoveSet(w http.ResponseWriter, r *http.Request) {
	exerciseID, err := pathExerciseID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid exercise ID"})
		return
	}
	setID := chi.URLParam(r, "setID")
	writeJSON(w, http.StatusOK, orEmpty(s.tracker.RemoveSet(exerciseID, setID)))
}

func (s *Server) handleUpdateSet(w http.ResponseWriter, r *http.Request) {
	exerciseID, err := pathExerciseID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid exercise ID"})
		return
	}
	setID := chi.URLParam(r, "setID")

	var patch session.SetPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, orEmpty(s.tracker.UpdateSet(exerciseID, setID, patch)))
}

func (s *Server) handleFinishSession(w http.ResponseWriter, r *http.Request) {
	result, err := s.tracker.Finish(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleCancelSession(w http.ResponseWriter, r *http.Request) {
	s.tracker.Cancel()
	writeJSON(w, http.StatusOK, map[string]string{"status": "cancelled"})
}

func pathExerciseID(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "exerciseID"))
}
