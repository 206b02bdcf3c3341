package question

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeQuestions(n int) []Question {
	out := make([]Question, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, Question{
			ID:         int32(i),
			Question:   fmt.Sprintf("question %d", i),
			Answer:     fmt.Sprintf("answer %d", i),
			Category:   1,
			Difficulty: 1,
		})
	}
	return out
}

func TestPaginateWindowSize(t *testing.T) {
	// For list length L and page p, the window holds
	// min(PerPage, max(0, L-PerPage*(p-1))) items.
	for _, length := range []int{0, 1, 9, 10, 11, 25, 30} {
		all := makeQuestions(length)
		for page := 1; page <= 5; page++ {
			got, err := Paginate(all, page)
			require.NoError(t, err)

			want := length - PerPage*(page-1)
			if want < 0 {
				want = 0
			}
			if want > PerPage {
				want = PerPage
			}
			assert.Len(t, got, want, "length=%d page=%d", length, page)
		}
	}
}

func TestPaginatePreservesOrder(t *testing.T) {
	all := makeQuestions(25)

	page2, err := Paginate(all, 2)
	require.NoError(t, err)

	require.Len(t, page2, PerPage)
	for i, q := range page2 {
		assert.Equal(t, int32(PerPage+i+1), q.ID)
	}
}

func TestPaginatePastEndIsEmptyNotNil(t *testing.T) {
	got, err := Paginate(makeQuestions(5), 3)

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestPaginateRejectsPageBelowOne(t *testing.T) {
	for _, page := range []int{0, -1, -7} {
		_, err := Paginate(makeQuestions(5), page)
		assert.ErrorIs(t, err, ErrInvalidPage, "page=%d", page)
	}
}
