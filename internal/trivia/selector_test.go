package trivia

import (
	"math/rand/v2"
	"testing"

	"trivia/pkg/types"
)

func pool(ids ...int) []*types.Question {
	out := make([]*types.Question, 0, len(ids))
	for _, id := range ids {
		out = append(out, &types.Question{ID: id, Question: "q", Answer: "a", Category: 1, Difficulty: 1})
	}
	return out
}

func TestSelectorNeverReturnsPrevious(t *testing.T) {
	s := NewSelector(rand.NewPCG(1, 2))
	questions := pool(1, 2, 3, 4, 5)
	previous := []int{1, 3, 5}

	for range 200 {
		q, ok := s.Pick(questions, previous)
		if !ok {
			t.Fatalf("expected a question")
		}
		if q.ID != 2 && q.ID != 4 {
			t.Fatalf("picked excluded question %d", q.ID)
		}
	}
}

func TestSelectorEmptyPool(t *testing.T) {
	s := NewSelector(nil)

	if q, ok := s.Pick(nil, nil); ok || q != nil {
		t.Fatalf("expected no question from empty pool, got %+v", q)
	}

	if q, ok := s.Pick(pool(1, 2), []int{2, 1}); ok || q != nil {
		t.Fatalf("expected no question when all excluded, got %+v", q)
	}
}

func TestSelectorDeterministicWithSeed(t *testing.T) {
	questions := pool(10, 20, 30, 40, 50, 60, 70)

	a := NewSelector(rand.NewPCG(42, 7))
	b := NewSelector(rand.NewPCG(42, 7))

	for i := range 50 {
		qa, _ := a.Pick(questions, nil)
		qb, _ := b.Pick(questions, nil)
		if qa.ID != qb.ID {
			t.Fatalf("draw %d differs: %d vs %d", i, qa.ID, qb.ID)
		}
	}
}

func TestSelectorUniform(t *testing.T) {
	s := NewSelector(rand.NewPCG(99, 100))
	questions := pool(1, 2, 3, 4, 5, 6)
	previous := []int{6}

	const draws = 50000
	counts := map[int]int{}
	for range draws {
		q, _ := s.Pick(questions, previous)
		counts[q.ID]++
	}

	if len(counts) != 5 {
		t.Fatalf("expected 5 distinct questions, got %v", counts)
	}

	expected := draws / 5
	for id, n := range counts {
		// within 5% of the expected share
		if n < expected*95/100 || n > expected*105/100 {
			t.Fatalf("question %d drawn %d times, expected about %d", id, n, expected)
		}
	}
}
