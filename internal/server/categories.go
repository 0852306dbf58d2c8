package server

import (
	"net/http"

	"trivia/pkg/types"
)

func (s *Service) handleGetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := s.trivia.Categories(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, categoriesResponse{
		Success:    true,
		Categories: formatCategories(categories),
	})
}

func (s *Service) handleGetCategoryQuestions(w http.ResponseWriter, r *http.Request) {
	categoryID, err := pathID(r, types.ErrCategoryNotFound)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	questions, err := s.trivia.QuestionsInCategory(r.Context(), categoryID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, categoryQuestionsResponse{
		Success:   true,
		Questions: formatQuestions(questions),
		Category:  categoryID,
		Length:    len(questions),
	})
}
