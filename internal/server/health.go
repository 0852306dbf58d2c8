package server

import (
	"context"
	"net/http"
	"time"
)

func (s *Service) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := s.db.Ping(ctx); err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, healthResponse{Success: true})
}
