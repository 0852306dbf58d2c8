package server

import (
	"fmt"
	"net/http"
	"strings"

	"trivia/internal/utils"
	"trivia/pkg/types"
)

type questionsQuery struct {
	Page int `form:"page"`
}

func (s *Service) handleGetQuestions(w http.ResponseWriter, r *http.Request) {
	var query questionsQuery
	if err := decoder.Decode(&query, r.URL.Query()); err != nil {
		raw := r.URL.Query().Get("page")
		if isDigits(raw) {
			// too large for an int, so past any last page
			s.writeError(w, r, fmt.Errorf("page %s: %w", raw, types.ErrPageNotFound))
			return
		}
		// an unparseable page falls back to the first one
		query.Page = 1
	}

	questions, total, err := s.trivia.QuestionsPage(r.Context(), query.Page)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, questionsPageResponse{
		Success:   true,
		Questions: formatQuestions(questions),
		Length:    total,
	})
}

func (s *Service) handleGetQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, types.ErrQuestionNotFound)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	question, err := s.trivia.Question(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, questionDetailResponse{
		Success:  true,
		Question: formatQuestion(question),
	})
}

func (s *Service) handleDeleteQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, types.ErrQuestionNotFound)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	remaining, err := s.trivia.DeleteQuestion(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.requestLogger(r).WithField("question_id", id).Info("question deleted")

	writeJSON(w, http.StatusOK, deleteQuestionResponse{
		Success:   true,
		Length:    remaining,
		RemovedID: id,
	})
}

func (s *Service) handlePostQuestion(w http.ResponseWriter, r *http.Request) {
	var in types.NewQuestion
	if err := decodeBody(r, &in); err != nil {
		s.writeError(w, r, err)
		return
	}

	question, total, err := s.trivia.AddQuestion(r.Context(), in)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.requestLogger(r).WithField("question_id", question.ID).Info("question added")

	writeJSON(w, http.StatusOK, addQuestionResponse{
		Success:       true,
		Length:        total,
		QuestionAdded: formatQuestion(question),
	})
}

func (s *Service) handleSearchQuestions(w http.ResponseWriter, r *http.Request) {
	var in searchRequest
	if err := decodeBody(r, &in); err != nil {
		s.writeError(w, r, err)
		return
	}

	term := utils.PtrString(in.SearchTerm)

	questions, err := s.trivia.Search(r.Context(), term)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, searchResponse{
		Success:    true,
		Questions:  formatQuestions(questions),
		SearchTerm: term,
		Length:     len(questions),
	})
}

func isDigits(s string) bool {
	return s != "" && strings.Trim(s, "0123456789") == ""
}
