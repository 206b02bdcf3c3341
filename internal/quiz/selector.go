package quiz

import "github.com/triviaworks/trivia-api/internal/question"

// AllCategories is the category id meaning "no category filter".
const AllCategories = 0

// Select picks one not-yet-seen question uniformly at random from candidates.
// The boolean is false when every candidate id appears in previous, which the
// endpoint reports as quiz completion. intn must return a uniform value in
// [0,n); it is injected so tests can pin the choice.
func Select(candidates []question.Question, previous []int32, intn func(n int) int) (question.Question, bool) {
	seen := make(map[int32]struct{}, len(previous))
	for _, id := range previous {
		seen[id] = struct{}{}
	}

	eligible := candidates[:0:0]
	for _, q := range candidates {
		if _, ok := seen[q.ID]; !ok {
			eligible = append(eligible, q)
		}
	}
	if len(eligible) == 0 {
		return question.Question{}, false
	}
	return eligible[intn(len(eligible))], true
}
