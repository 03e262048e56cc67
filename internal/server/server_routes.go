package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/brk3/quit/internal/elapsed"
	"github.com/brk3/quit/internal/logger"
	"github.com/brk3/quit/internal/tracker"
	"github.com/brk3/quit/pkg/habit"
	"github.com/brk3/quit/pkg/versioninfo"
)

func writeJSON(w http.ResponseWriter, code int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	return json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	if err := writeJSON(w, code, ErrorResponse{Error: msg}); err != nil {
		logger.Error("Failed to write error response", "error", err)
	}
}

func (s *Server) getVersionInfo(w http.ResponseWriter, _ *http.Request) {
	if err := writeJSON(w, http.StatusOK, versioninfo.Get()); err != nil {
		logger.Error("Failed to serialize version info response", "error", err)
	}
}

func (s *Server) listOptions(w http.ResponseWriter, _ *http.Request) {
	if err := writeJSON(w, http.StatusOK, OptionListResponse{Options: habit.Options}); err != nil {
		logger.Error("Failed to serialize option list response", "error", err)
	}
}

func (s *Server) listHabits(w http.ResponseWriter, _ *http.Request) {
	now := s.now()
	resp := HabitListResponse{
		Habits:    s.store.Progress(now),
		TotalDays: s.store.TotalDaysAcrossAll(now),
	}
	logger.Debug("Listed habits", "count", len(resp.Habits))
	UpdateTotalDays(resp.TotalDays)
	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		logger.Error("Failed to serialize habit list response", "error", err)
	}
}

func (s *Server) trackHabit(w http.ResponseWriter, r *http.Request) {
	var req TrackHabitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("Invalid JSON in track habit request", "error", err)
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	flow := tracker.NewAddFlow(s.store, s.now)
	quit := flow.Today()
	if req.QuitDate != "" {
		d, err := habit.ParseDate(req.QuitDate)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		quit = d
	}
	icon := req.Icon
	if opt, ok := habit.LookupOption(req.Name); ok && icon == "" {
		icon = opt.Icon
	}

	flow.Begin()
	if err := flow.Select(req.Name, icon); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	h, err := flow.Confirm(quit)
	switch {
	case errors.Is(err, tracker.ErrInvalidName),
		errors.Is(err, tracker.ErrInvalidDate),
		errors.Is(err, tracker.ErrFutureDate):
		writeError(w, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		logger.Error("Failed to store habit", "habit_name", req.Name, "error", err)
		writeError(w, http.StatusInternalServerError, "database write failed")
		return
	}

	habitsAddedTotal.Inc()
	UpdateActiveHabits(s.store.Len())

	if err := writeJSON(w, http.StatusCreated, elapsed.Progress(h, s.now())); err != nil {
		logger.Error("Failed to serialize track habit response", "habit_id", h.ID, "error", err)
	}
}

func (s *Server) getHabit(w http.ResponseWriter, r *http.Request) {
	habitID := chi.URLParam(r, "habit_id")
	h, ok := s.store.Get(habitID)
	if !ok {
		writeError(w, http.StatusNotFound, "habit not found")
		return
	}

	resp := HabitGetResponse{
		HabitID:  habitID,
		Progress: elapsed.Progress(h, s.now()),
	}
	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		logger.Error("Failed to serialize get habit response", "habit_id", habitID, "error", err)
	}
}

func (s *Server) deleteHabit(w http.ResponseWriter, r *http.Request) {
	habitID := chi.URLParam(r, "habit_id")
	removed, err := s.store.Remove(habitID)
	if err != nil {
		logger.Error("Failed to delete habit", "habit_id", habitID, "error", err)
		writeError(w, http.StatusInternalServerError, "storage error")
		return
	}
	if removed {
		habitsRemovedTotal.Inc()
	}
	UpdateActiveHabits(s.store.Len())

	w.WriteHeader(http.StatusNoContent)
}
