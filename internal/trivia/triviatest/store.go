// Package triviatest provides an in-memory store for tests of code built on
// the trivia service.
package triviatest

import (
	"context"
	"slices"
	"strings"
	"sync"

	"trivia/pkg/types"
)

// Store keeps categories and questions in memory and follows the same error
// contract as the Postgres repositories.
type Store struct {
	mu         sync.Mutex
	categories []types.Category
	questions  []types.Question
	nextID     int

	// Err, when set, is returned by every call.
	Err error
}

// NewStore returns a Store holding categories and questions. Questions with a
// zero ID are numbered after the highest ID given.
func NewStore(categories []types.Category, questions ...types.Question) *Store {
	s := &Store{
		categories: slices.Clone(categories),
		nextID:     1,
	}

	for _, q := range questions {
		if q.ID >= s.nextID {
			s.nextID = q.ID + 1
		}
	}
	for _, q := range questions {
		if q.ID == 0 {
			q.ID = s.nextID
			s.nextID++
		}
		s.questions = append(s.questions, q)
	}
	slices.SortFunc(s.questions, func(a, b types.Question) int { return a.ID - b.ID })

	return s
}

func (s *Store) AllCategories(_ context.Context) ([]*types.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return nil, s.Err
	}

	out := make([]*types.Category, 0, len(s.categories))
	for _, c := range s.categories {
		out = append(out, &c)
	}
	return out, nil
}

func (s *Store) CategoryByID(_ context.Context, id int) (*types.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return nil, s.Err
	}

	for _, c := range s.categories {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, types.ErrCategoryNotFound
}

func (s *Store) UpsertCategory(_ context.Context, category *types.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return s.Err
	}

	for i, c := range s.categories {
		if c.ID == category.ID {
			s.categories[i] = *category
			return nil
		}
	}
	s.categories = append(s.categories, *category)
	return nil
}

func (s *Store) AllQuestions(_ context.Context) ([]*types.Question, error) {
	return s.filter(func(types.Question) bool { return true })
}

func (s *Store) CountQuestions(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return 0, s.Err
	}
	return len(s.questions), nil
}

func (s *Store) QuestionByID(_ context.Context, id int) (*types.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return nil, s.Err
	}

	for _, q := range s.questions {
		if q.ID == id {
			return &q, nil
		}
	}
	return nil, types.ErrQuestionNotFound
}

func (s *Store) QuestionsByCategory(_ context.Context, categoryID int) ([]*types.Question, error) {
	return s.filter(func(q types.Question) bool { return q.Category == categoryID })
}

func (s *Store) SearchQuestions(_ context.Context, term string) ([]*types.Question, error) {
	term = strings.ToLower(term)
	return s.filter(func(q types.Question) bool {
		return strings.Contains(strings.ToLower(q.Question), term) ||
			strings.Contains(strings.ToLower(q.Answer), term)
	})
}

func (s *Store) CreateQuestion(_ context.Context, question *types.Question) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return s.Err
	}

	if !slices.ContainsFunc(s.categories, func(c types.Category) bool { return c.ID == question.Category }) {
		return types.ErrUnknownCategory
	}

	question.ID = s.nextID
	s.nextID++
	s.questions = append(s.questions, *question)
	return nil
}

func (s *Store) DeleteQuestion(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return s.Err
	}

	i := slices.IndexFunc(s.questions, func(q types.Question) bool { return q.ID == id })
	if i < 0 {
		return types.ErrQuestionNotFound
	}
	s.questions = slices.Delete(s.questions, i, i+1)
	return nil
}

func (s *Store) filter(keep func(types.Question) bool) ([]*types.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return nil, s.Err
	}

	out := make([]*types.Question, 0)
	for _, q := range s.questions {
		if keep(q) {
			out = append(out, &q)
		}
	}
	return out, nil
}
