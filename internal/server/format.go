package server

import "trivia/pkg/types"

type categoryResponse struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
}

type questionResponse struct {
	ID         int    `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int    `json:"category"`
	Difficulty int    `json:"difficulty"`
}

func formatCategory(c *types.Category) categoryResponse {
	return categoryResponse{ID: c.ID, Type: c.Type}
}

func formatCategories(categories []*types.Category) []categoryResponse {
	out := make([]categoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, formatCategory(c))
	}
	return out
}

func formatQuestion(q *types.Question) questionResponse {
	return questionResponse{
		ID:         q.ID,
		Question:   q.Question,
		Answer:     q.Answer,
		Category:   q.Category,
		Difficulty: q.Difficulty,
	}
}

func formatQuestions(questions []*types.Question) []questionResponse {
	out := make([]questionResponse, 0, len(questions))
	for _, q := range questions {
		out = append(out, formatQuestion(q))
	}
	return out
}
