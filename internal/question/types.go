package question

import "github.com/triviaworks/trivia-api/internal/db/repository"

// Question is the wire representation of a question.
type Question struct {
	ID         int32  `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int32  `json:"category"`
	Difficulty int32  `json:"difficulty"`
}

// Format converts a DB row into its wire shape.
func Format(q repository.Question) Question {
	return Question{
		ID:         q.ID,
		Question:   q.Question,
		Answer:     q.Answer,
		Category:   q.Category,
		Difficulty: q.Difficulty,
	}
}

// FormatAll converts rows into wire shapes. The result is never nil so an
// empty set serializes as [] rather than null.
func FormatAll(rows []repository.Question) []Question {
	out := make([]Question, 0, len(rows))
	for _, q := range rows {
		out = append(out, Format(q))
	}
	return out
}
