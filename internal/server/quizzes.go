package server

import (
	"net/http"

	"trivia/pkg/types"
)

func (s *Service) handlePostQuiz(w http.ResponseWriter, r *http.Request) {
	var req types.QuizRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	question, err := s.trivia.NextQuizQuestion(r.Context(), req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	resp := quizResponse{Success: true}
	if question != nil {
		formatted := formatQuestion(question)
		resp.Question = &formatted
	}

	writeJSON(w, http.StatusOK, resp)
}
