package trivia

import (
	"context"
	"fmt"
	"strings"

	"trivia/pkg/types"
)

type CategoryStore interface {
	AllCategories(ctx context.Context) ([]*types.Category, error)
	CategoryByID(ctx context.Context, id int) (*types.Category, error)
}

type QuestionStore interface {
	AllQuestions(ctx context.Context) ([]*types.Question, error)
	CountQuestions(ctx context.Context) (int, error)
	QuestionByID(ctx context.Context, id int) (*types.Question, error)
	QuestionsByCategory(ctx context.Context, categoryID int) ([]*types.Question, error)
	SearchQuestions(ctx context.Context, term string) ([]*types.Question, error)
	CreateQuestion(ctx context.Context, question *types.Question) error
	DeleteQuestion(ctx context.Context, id int) error
}

type Service struct {
	categories CategoryStore
	questions  QuestionStore
	selector   *Selector
	perPage    int
}

func NewService(categories CategoryStore, questions QuestionStore, selector *Selector, perPage int) *Service {
	if selector == nil {
		selector = NewSelector(nil)
	}
	if perPage <= 0 {
		perPage = QuestionsPerPage
	}

	return &Service{
		categories: categories,
		questions:  questions,
		selector:   selector,
		perPage:    perPage,
	}
}

func (s *Service) Categories(ctx context.Context) ([]*types.Category, error) {
	return s.categories.AllCategories(ctx)
}

// QuestionsPage returns one page of questions and the total question count.
// Page 1 always exists; any later page past the last question is
// ErrPageNotFound.
func (s *Service) QuestionsPage(ctx context.Context, page int) ([]*types.Question, int, error) {
	all, err := s.questions.AllQuestions(ctx)
	if err != nil {
		return nil, 0, err
	}

	page = ClampPage(page)
	window := Paginate(all, page, s.perPage)
	if len(window) == 0 && page > 1 {
		return nil, 0, fmt.Errorf("page %d: %w", page, types.ErrPageNotFound)
	}

	return window, len(all), nil
}

func (s *Service) Question(ctx context.Context, id int) (*types.Question, error) {
	return s.questions.QuestionByID(ctx, id)
}

// DeleteQuestion removes the question and returns how many remain.
func (s *Service) DeleteQuestion(ctx context.Context, id int) (int, error) {
	if err := s.questions.DeleteQuestion(ctx, id); err != nil {
		return 0, err
	}

	return s.questions.CountQuestions(ctx)
}

// AddQuestion validates and stores a new question, returning it with its
// assigned id alongside the new total.
func (s *Service) AddQuestion(ctx context.Context, in types.NewQuestion) (*types.Question, int, error) {
	if err := validateNewQuestion(in); err != nil {
		return nil, 0, err
	}

	question := &types.Question{
		Question:   *in.Question,
		Answer:     *in.Answer,
		Category:   *in.Category,
		Difficulty: *in.Difficulty,
	}

	if err := s.questions.CreateQuestion(ctx, question); err != nil {
		return nil, 0, err
	}

	total, err := s.questions.CountQuestions(ctx)
	if err != nil {
		return nil, 0, err
	}

	return question, total, nil
}

func (s *Service) Search(ctx context.Context, term string) ([]*types.Question, error) {
	return s.questions.SearchQuestions(ctx, term)
}

// QuestionsInCategory lists the questions of an existing category. An unknown
// category is ErrCategoryNotFound; a known one without questions is an empty
// slice.
func (s *Service) QuestionsInCategory(ctx context.Context, categoryID int) ([]*types.Question, error) {
	if _, err := s.categories.CategoryByID(ctx, categoryID); err != nil {
		return nil, err
	}

	return s.questions.QuestionsByCategory(ctx, categoryID)
}

// NextQuizQuestion returns a random question not yet asked, or nil once the
// pool is exhausted.
func (s *Service) NextQuizQuestion(ctx context.Context, req types.QuizRequest) (*types.Question, error) {
	if req.QuizCategory == nil || req.QuizCategory.ID == nil {
		return nil, fmt.Errorf("%w: quiz_category.id is required", types.ErrInvalidInput)
	}
	categoryID := *req.QuizCategory.ID

	var (
		pool []*types.Question
		err  error
	)
	if categoryID == AllCategories {
		pool, err = s.questions.AllQuestions(ctx)
	} else {
		pool, err = s.questions.QuestionsByCategory(ctx, categoryID)
	}
	if err != nil {
		return nil, err
	}

	question, ok := s.selector.Pick(pool, req.PreviousQuestions)
	if !ok {
		return nil, nil
	}

	return question, nil
}

func validateNewQuestion(in types.NewQuestion) error {
	switch {
	case in.Question == nil:
		return fmt.Errorf("%w: question is required", types.ErrInvalidInput)
	case in.Answer == nil:
		return fmt.Errorf("%w: answer is required", types.ErrInvalidInput)
	case in.Category == nil:
		return fmt.Errorf("%w: category is required", types.ErrInvalidInput)
	case in.Difficulty == nil:
		return fmt.Errorf("%w: difficulty is required", types.ErrInvalidInput)
	case strings.TrimSpace(*in.Question) == "":
		return fmt.Errorf("%w: question is blank", types.ErrInvalidInput)
	case strings.TrimSpace(*in.Answer) == "":
		return fmt.Errorf("%w: answer is blank", types.ErrInvalidInput)
	}

	return nil
}
