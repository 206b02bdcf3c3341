package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/triviaworks/trivia-api/internal/question"
)

func candidates(ids ...int32) []question.Question {
	out := make([]question.Question, 0, len(ids))
	for _, id := range ids {
		out = append(out, question.Question{ID: id})
	}
	return out
}

func TestSelectNeverRepeatsPreviousQuestions(t *testing.T) {
	pool := candidates(1, 2, 3, 4, 5)
	previous := []int32{2, 4}

	// Exercise every possible random outcome.
	for pick := 0; pick < 3; pick++ {
		got, ok := Select(pool, previous, func(n int) int {
			require.Equal(t, 3, n)
			return pick
		})
		require.True(t, ok)
		assert.NotContains(t, previous, got.ID)
	}
}

func TestSelectReportsCompletionWhenExhausted(t *testing.T) {
	pool := candidates(1, 2, 3)

	_, ok := Select(pool, []int32{3, 1, 2}, func(int) int {
		t.Fatal("rng must not be consulted when no candidate is eligible")
		return 0
	})

	assert.False(t, ok)
}

func TestSelectEmptyCandidatePool(t *testing.T) {
	_, ok := Select(nil, nil, func(int) int { return 0 })
	assert.False(t, ok)
}

func TestSelectDrawsFromFullPoolWhenNothingSeen(t *testing.T) {
	pool := candidates(10, 20, 30)

	got, ok := Select(pool, nil, func(n int) int {
		require.Equal(t, len(pool), n)
		return 1
	})

	require.True(t, ok)
	assert.Equal(t, int32(20), got.ID)
}

func TestSelectIgnoresUnknownPreviousIDs(t *testing.T) {
	pool := candidates(1, 2)

	got, ok := Select(pool, []int32{99, 100}, func(n int) int {
		require.Equal(t, 2, n)
		return 0
	})

	require.True(t, ok)
	assert.Equal(t, int32(1), got.ID)
}
