package question

import "errors"

// PerPage is the fixed page size of every paginated listing.
const PerPage = 10

// ErrInvalidPage rejects page numbers below 1 instead of leaving the
// behavior to incidental slice semantics.
var ErrInvalidPage = errors.New("page number must be 1 or greater")

// Paginate returns the 1-based page window [(page-1)*PerPage, page*PerPage)
// of an ordered list. Pages past the end yield an empty, non-nil slice;
// callers decide whether that is a not-found condition.
func Paginate(questions []Question, page int) ([]Question, error) {
	if page < 1 {
		return nil, ErrInvalidPage
	}
	start := (page - 1) * PerPage
	if start >= len(questions) {
		return []Question{}, nil
	}
	end := start + PerPage
	if end > len(questions) {
		end = len(questions)
	}
	return questions[start:end], nil
}
