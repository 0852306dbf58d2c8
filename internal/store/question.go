package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"trivia/internal/utils"
	"trivia/pkg/types"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

const questionTableName = "trivia.questions"

var questionColumns = utils.StructTagValues(types.Question{})

type QuestionRepository struct {
	db Querier
}

func NewQuestionRepository(db Querier) *QuestionRepository {
	return &QuestionRepository{db: db}
}

// AllQuestions returns every question in insertion order
func (r *QuestionRepository) AllQuestions(ctx context.Context) ([]*types.Question, error) {
	query, args, err := psql().
		Select(questionColumns...).
		From(questionTableName).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate questions query: %w", err)
	}

	return r.selectQuestions(ctx, query, args)
}

func (r *QuestionRepository) CountQuestions(ctx context.Context) (int, error) {
	query, args, err := psql().
		Select("COUNT(*)").
		From(questionTableName).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to generate count query: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count questions: %w", err)
	}

	return int(count), nil
}

func (r *QuestionRepository) QuestionByID(ctx context.Context, id int) (*types.Question, error) {
	query, args, err := psql().
		Select(questionColumns...).
		From(questionTableName).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate question query: %w", err)
	}

	var question = new(types.Question)
	err = pgxscan.Get(ctx, r.db, question, query, args...)
	if err != nil && !pgxscan.NotFound(err) {
		return nil, fmt.Errorf("failed to fetch question %d: %w", id, err)
	}

	if err != nil {
		return nil, types.ErrQuestionNotFound
	}

	return question, nil
}

// QuestionsByCategory filters on the category column only. An id with no
// matching category yields an empty slice.
func (r *QuestionRepository) QuestionsByCategory(ctx context.Context, categoryID int) ([]*types.Question, error) {
	query, args, err := psql().
		Select(questionColumns...).
		From(questionTableName).
		Where(sq.Eq{"category": categoryID}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate category questions query: %w", err)
	}

	return r.selectQuestions(ctx, query, args)
}

// SearchQuestions matches term case-insensitively against the question and
// answer text. An empty term matches every row.
func (r *QuestionRepository) SearchQuestions(ctx context.Context, term string) ([]*types.Question, error) {
	pattern := "%" + escapeLike(term) + "%"

	query, args, err := psql().
		Select(questionColumns...).
		From(questionTableName).
		Where(sq.Or{
			sq.ILike{"question": pattern},
			sq.ILike{"answer": pattern},
		}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate search query: %w", err)
	}

	return r.selectQuestions(ctx, query, args)
}

// CreateQuestion inserts question and sets its ID to the one assigned by the
// database.
func (r *QuestionRepository) CreateQuestion(ctx context.Context, question *types.Question) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	query, args, err := psql().
		Insert(questionTableName).
		Columns("question", "answer", "category", "difficulty").
		Values(question.Question, question.Answer, question.Category, question.Difficulty).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate insert question query: %w", err)
	}

	var id int64
	if err := tx.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgerrcode.ForeignKeyViolation:
				return types.ErrUnknownCategory
			case pgerrcode.CheckViolation, pgerrcode.NotNullViolation:
				return fmt.Errorf("%w: %s", types.ErrInvalidInput, pgErr.ConstraintName)
			}
		}
		return fmt.Errorf("failed to insert question: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	question.ID = int(id)
	return nil
}

// DeleteQuestion removes the question with the given id. Of two concurrent
// deletes of the same id, the one that removes no row gets ErrQuestionNotFound.
func (r *QuestionRepository) DeleteQuestion(ctx context.Context, id int) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	query, args, err := psql().
		Delete(questionTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate delete question query for question %d: %w", id, err)
	}

	tag, err := tx.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete question %d: %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return types.ErrQuestionNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (r *QuestionRepository) selectQuestions(ctx context.Context, query string, args []any) ([]*types.Question, error) {
	var questions = make([]*types.Question, 0)
	err := pgxscan.Select(ctx, r.db, &questions, query, args...)
	if err != nil {
		return nil, utils.ErrorWrapOrNil(err, "failed to fetch questions")
	}

	return questions, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(term string) string {
	return likeEscaper.Replace(term)
}
