package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
)

const questionCols = "id, question, answer, category, difficulty"

// QuestionRepository exposes typed DB operations on the questions table.
type QuestionRepository struct {
	db DBTX
}

// NewQuestionRepository wraps a pgx pool (or transaction) for question access.
func NewQuestionRepository(db DBTX) *QuestionRepository {
	return &QuestionRepository{db: db}
}

// InsertParams carries the fields of a new question.
type InsertParams struct {
	Question   string
	Answer     string
	Category   int32
	Difficulty int32
}

// ListOrdered returns every question ordered by id. The pagination window is
// applied by the caller, matching the list-then-slice contract of the API.
func (r *QuestionRepository) ListOrdered(ctx context.Context) ([]Question, error) {
	rows, err := r.db.Query(ctx,
		"SELECT "+questionCols+" FROM questions ORDER BY id")
	if err != nil {
		return nil, mapError("list questions", err)
	}
	return collectQuestions("list questions", rows)
}

// ListByCategory returns every question in one category ordered by id.
func (r *QuestionRepository) ListByCategory(ctx context.Context, categoryID int32) ([]Question, error) {
	rows, err := r.db.Query(ctx,
		"SELECT "+questionCols+" FROM questions WHERE category = $1 ORDER BY id", categoryID)
	if err != nil {
		return nil, mapError("list questions by category", err)
	}
	return collectQuestions("list questions by category", rows)
}

// Search returns questions whose text contains the term, case-insensitively,
// ordered by id.
func (r *QuestionRepository) Search(ctx context.Context, term string) ([]Question, error) {
	rows, err := r.db.Query(ctx,
		"SELECT "+questionCols+" FROM questions WHERE question ILIKE '%' || $1 || '%' ORDER BY id", term)
	if err != nil {
		return nil, mapError("search questions", err)
	}
	return collectQuestions("search questions", rows)
}

// Count returns the total number of questions.
func (r *QuestionRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, "SELECT count(*) FROM questions").Scan(&n); err != nil {
		return 0, mapError("count questions", err)
	}
	return n, nil
}

// Insert stores a new question and returns the persisted row.
func (r *QuestionRepository) Insert(ctx context.Context, params InsertParams) (Question, error) {
	var q Question
	err := r.db.QueryRow(ctx,
		"INSERT INTO questions (question, answer, category, difficulty) VALUES ($1, $2, $3, $4) RETURNING "+questionCols,
		params.Question, params.Answer, params.Category, params.Difficulty,
	).Scan(&q.ID, &q.Question, &q.Answer, &q.Category, &q.Difficulty)
	if err != nil {
		return Question{}, mapError("insert question", err)
	}
	return q, nil
}

// Delete removes a question by id. Deleting a missing id yields ErrNotFound.
func (r *QuestionRepository) Delete(ctx context.Context, id int32) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM questions WHERE id = $1", id)
	if err != nil {
		return mapError("delete question", err)
	}
	if tag.RowsAffected() == 0 {
		return mapError("delete question", pgx.ErrNoRows)
	}
	return nil
}

func collectQuestions(op string, rows pgx.Rows) ([]Question, error) {
	defer rows.Close()
	var out []Question
	for rows.Next() {
		var q Question
		if err := rows.Scan(&q.ID, &q.Question, &q.Answer, &q.Category, &q.Difficulty); err != nil {
			return nil, mapError(op, err)
		}
		out = append(out, q)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(op, err)
	}
	return out, nil
}
