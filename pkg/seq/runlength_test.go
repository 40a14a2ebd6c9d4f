package seq_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/proconlib/go-procon/pkg/seq"
)

func TestRunLength(t *testing.T) {
	t.Parallel()

	runs := seq.RunLengthString("aaabbbbcc")
	assert.Equal(t, []seq.Run[byte]{
		{Value: 'a', Count: 3},
		{Value: 'b', Count: 4},
		{Value: 'c', Count: 2},
	}, runs)

	assert.Equal(t, []seq.Run[int]{
		{Value: 1, Count: 2},
		{Value: 2, Count: 3},
		{Value: 3, Count: 2},
	}, seq.RunLength([]int{1, 1, 2, 2, 2, 3, 3}))
}

func TestRunLengthNoRepeats(t *testing.T) {
	t.Parallel()

	runs := seq.RunLengthString("abcde")
	assert.Len(t, runs, 5)
	for _, r := range runs {
		assert.Equal(t, 1, r.Count)
	}
}

func TestRunLengthEmpty(t *testing.T) {
	t.Parallel()

	assert.Nil(t, seq.RunLength[int](nil))
	assert.Nil(t, seq.RunLengthString(""))
}
