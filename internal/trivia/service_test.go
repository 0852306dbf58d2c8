package trivia_test

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"

	"trivia/internal/trivia"
	"trivia/internal/trivia/triviatest"
	"trivia/internal/utils"
	"trivia/pkg/types"
)

var testCategories = []types.Category{
	{ID: 1, Type: "Science"},
	{ID: 2, Type: "Art"},
	{ID: 3, Type: "Geography"},
}

func newTestService(t *testing.T, questions ...types.Question) (*trivia.Service, *triviatest.Store) {
	t.Helper()

	store := triviatest.NewStore(testCategories, questions...)
	svc := trivia.NewService(store, store, trivia.NewSelector(rand.NewPCG(1, 1)), 10)
	return svc, store
}

func sampleQuestions(n int) []types.Question {
	out := make([]types.Question, 0, n)
	for i := range n {
		out = append(out, types.Question{
			Question:   "Question?",
			Answer:     "Answer",
			Category:   i%3 + 1,
			Difficulty: 1,
		})
	}
	return out
}

func newQuestion(question, answer string, category, difficulty int) types.NewQuestion {
	return types.NewQuestion{
		Question:   utils.StringPtr(question),
		Answer:     utils.StringPtr(answer),
		Category:   utils.IntPtr(category),
		Difficulty: utils.IntPtr(difficulty),
	}
}

func TestQuestionsPage(t *testing.T) {
	svc, _ := newTestService(t, sampleQuestions(15)...)
	ctx := context.Background()

	questions, total, err := svc.QuestionsPage(ctx, 2)
	if err != nil {
		t.Fatalf("QuestionsPage failed: %v", err)
	}
	if total != 15 {
		t.Fatalf("total = %d, want 15", total)
	}
	if len(questions) != 5 || questions[0].ID != 11 {
		t.Fatalf("unexpected second page: %d questions starting at %d", len(questions), questions[0].ID)
	}

	first, _, err := svc.QuestionsPage(ctx, 1)
	if err != nil {
		t.Fatalf("QuestionsPage(1) failed: %v", err)
	}
	clamped, _, err := svc.QuestionsPage(ctx, -3)
	if err != nil {
		t.Fatalf("QuestionsPage(-3) failed: %v", err)
	}
	if len(first) != len(clamped) || first[0].ID != clamped[0].ID {
		t.Fatalf("page -3 should match page 1")
	}
}

func TestQuestionsPagePastEnd(t *testing.T) {
	svc, _ := newTestService(t, sampleQuestions(5)...)

	_, _, err := svc.QuestionsPage(context.Background(), 999999)
	if !errors.Is(err, types.ErrPageNotFound) {
		t.Fatalf("expected ErrPageNotFound, got %v", err)
	}
}

func TestQuestionsPageEmptyStore(t *testing.T) {
	svc, _ := newTestService(t)

	questions, total, err := svc.QuestionsPage(context.Background(), 1)
	if err != nil {
		t.Fatalf("first page of empty store should succeed: %v", err)
	}
	if len(questions) != 0 || total != 0 {
		t.Fatalf("expected empty page, got %d questions, total %d", len(questions), total)
	}
}

func TestAddQuestion(t *testing.T) {
	svc, _ := newTestService(t, sampleQuestions(4)...)
	ctx := context.Background()

	existing, err := svc.Search(ctx, "")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	used := map[int]bool{}
	for _, q := range existing {
		used[q.ID] = true
	}

	added, total, err := svc.AddQuestion(ctx, newQuestion("2+2?", "4", 1, 1))
	if err != nil {
		t.Fatalf("AddQuestion failed: %v", err)
	}
	if used[added.ID] || added.ID == 0 {
		t.Fatalf("new question reused id %d", added.ID)
	}
	if total != 5 {
		t.Fatalf("total = %d, want 5", total)
	}
	if added.Question != "2+2?" || added.Answer != "4" || added.Category != 1 || added.Difficulty != 1 {
		t.Fatalf("unexpected question: %+v", added)
	}
}

func TestAddQuestionIDsNotReused(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	first, _, err := svc.AddQuestion(ctx, newQuestion("q1", "a1", 1, 1))
	if err != nil {
		t.Fatalf("AddQuestion failed: %v", err)
	}
	if _, err := svc.DeleteQuestion(ctx, first.ID); err != nil {
		t.Fatalf("DeleteQuestion failed: %v", err)
	}

	second, _, err := svc.AddQuestion(ctx, newQuestion("q2", "a2", 1, 1))
	if err != nil {
		t.Fatalf("AddQuestion failed: %v", err)
	}
	if second.ID == first.ID {
		t.Fatalf("id %d reused after delete", first.ID)
	}
}

func TestAddQuestionInvalid(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	valid := newQuestion("q", "a", 1, 1)

	missingAnswer := valid
	missingAnswer.Answer = nil

	missingCategory := valid
	missingCategory.Category = nil

	missingDifficulty := valid
	missingDifficulty.Difficulty = nil

	missingQuestion := valid
	missingQuestion.Question = nil

	tests := map[string]types.NewQuestion{
		"missing answer":     missingAnswer,
		"missing category":   missingCategory,
		"missing difficulty": missingDifficulty,
		"missing question":   missingQuestion,
		"blank question":     newQuestion("   ", "a", 1, 1),
		"blank answer":       newQuestion("q", "", 1, 1),
		"unknown category":   newQuestion("q", "a", 42, 1),
	}

	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			_, _, err := svc.AddQuestion(ctx, in)
			if !errors.Is(err, types.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}

	if n, _ := store.CountQuestions(ctx); n != 0 {
		t.Fatalf("invalid inserts left %d rows", n)
	}
}

func TestDeleteQuestionTwice(t *testing.T) {
	svc, _ := newTestService(t, sampleQuestions(3)...)
	ctx := context.Background()

	remaining, err := svc.DeleteQuestion(ctx, 2)
	if err != nil {
		t.Fatalf("first delete failed: %v", err)
	}
	if remaining != 2 {
		t.Fatalf("remaining = %d, want 2", remaining)
	}

	_, err = svc.DeleteQuestion(ctx, 2)
	if !errors.Is(err, types.ErrQuestionNotFound) {
		t.Fatalf("expected ErrQuestionNotFound on second delete, got %v", err)
	}

	_, err = svc.DeleteQuestion(ctx, -1)
	if !errors.Is(err, types.ErrQuestionNotFound) {
		t.Fatalf("expected ErrQuestionNotFound for negative id, got %v", err)
	}
}

func TestSearch(t *testing.T) {
	svc, _ := newTestService(t,
		types.Question{Question: "What is the largest lake in Africa?", Answer: "Lake Victoria", Category: 3, Difficulty: 2},
		types.Question{Question: "Who discovered penicillin?", Answer: "Alexander Fleming", Category: 1, Difficulty: 3},
		types.Question{Question: "La Giaconda is better known as what?", Answer: "Mona Lisa", Category: 2, Difficulty: 3},
	)
	ctx := context.Background()

	all, err := svc.Search(ctx, "")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("empty term matched %d questions, want 3", len(all))
	}

	byQuestion, _ := svc.Search(ctx, "WHAT")
	if len(byQuestion) != 2 {
		t.Fatalf("case-insensitive question match = %d, want 2", len(byQuestion))
	}

	byAnswer, _ := svc.Search(ctx, "fleming")
	if len(byAnswer) != 1 || byAnswer[0].Answer != "Alexander Fleming" {
		t.Fatalf("answer match = %+v", byAnswer)
	}

	none, err := svc.Search(ctx, "zebra")
	if err != nil || len(none) != 0 {
		t.Fatalf("expected no matches, got %d (%v)", len(none), err)
	}
}

func TestQuestionsInCategory(t *testing.T) {
	svc, _ := newTestService(t, sampleQuestions(9)...)
	ctx := context.Background()

	questions, err := svc.QuestionsInCategory(ctx, 2)
	if err != nil {
		t.Fatalf("QuestionsInCategory failed: %v", err)
	}
	if len(questions) != 3 {
		t.Fatalf("got %d questions, want 3", len(questions))
	}
	for _, q := range questions {
		if q.Category != 2 {
			t.Fatalf("question %d has category %d", q.ID, q.Category)
		}
	}

	_, err = svc.QuestionsInCategory(ctx, -1)
	if !errors.Is(err, types.ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}

func TestQuestionsInEmptyCategory(t *testing.T) {
	svc, _ := newTestService(t, types.Question{Question: "q", Answer: "a", Category: 1, Difficulty: 1})

	questions, err := svc.QuestionsInCategory(context.Background(), 3)
	if err != nil {
		t.Fatalf("empty category should succeed: %v", err)
	}
	if len(questions) != 0 {
		t.Fatalf("expected no questions, got %d", len(questions))
	}
}

func TestNextQuizQuestion(t *testing.T) {
	svc, _ := newTestService(t, sampleQuestions(6)...)
	ctx := context.Background()

	// category 1 holds ids 1 and 4
	seen := []int{}
	for range 2 {
		q, err := svc.NextQuizQuestion(ctx, types.QuizRequest{
			PreviousQuestions: seen,
			QuizCategory:      &types.QuizCategory{ID: utils.IntPtr(1)},
		})
		if err != nil {
			t.Fatalf("NextQuizQuestion failed: %v", err)
		}
		if q == nil || q.Category != 1 {
			t.Fatalf("unexpected question %+v", q)
		}
		seen = append(seen, q.ID)
	}

	q, err := svc.NextQuizQuestion(ctx, types.QuizRequest{
		PreviousQuestions: seen,
		QuizCategory:      &types.QuizCategory{ID: utils.IntPtr(1)},
	})
	if err != nil || q != nil {
		t.Fatalf("expected exhausted category, got %+v (%v)", q, err)
	}
}

func TestNextQuizQuestionAllCategories(t *testing.T) {
	svc, _ := newTestService(t, sampleQuestions(6)...)
	ctx := context.Background()

	q, err := svc.NextQuizQuestion(ctx, types.QuizRequest{
		PreviousQuestions: []int{1, 2, 3, 4, 5},
		QuizCategory:      &types.QuizCategory{ID: utils.IntPtr(trivia.AllCategories)},
	})
	if err != nil {
		t.Fatalf("NextQuizQuestion failed: %v", err)
	}
	if q == nil || q.ID != 6 {
		t.Fatalf("expected question 6, got %+v", q)
	}

	q, err = svc.NextQuizQuestion(ctx, types.QuizRequest{
		PreviousQuestions: []int{1, 2, 3, 4, 5, 6},
		QuizCategory:      &types.QuizCategory{ID: utils.IntPtr(trivia.AllCategories)},
	})
	if err != nil || q != nil {
		t.Fatalf("expected no question, got %+v (%v)", q, err)
	}
}

func TestNextQuizQuestionInvalid(t *testing.T) {
	svc, _ := newTestService(t, sampleQuestions(3)...)
	ctx := context.Background()

	for name, req := range map[string]types.QuizRequest{
		"no category":    {},
		"no category id": {QuizCategory: &types.QuizCategory{}},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.NextQuizQuestion(ctx, req)
			if !errors.Is(err, types.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestStoreFailurePropagates(t *testing.T) {
	svc, store := newTestService(t, sampleQuestions(3)...)
	store.Err = errors.New("connection reset")

	_, err := svc.Categories(context.Background())
	if err == nil || types.IsNotFound(err) || errors.Is(err, types.ErrInvalidInput) {
		t.Fatalf("expected infrastructure error, got %v", err)
	}
}
