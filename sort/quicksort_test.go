package sort

import (
	"slices"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sortCases 정렬 테스트 공통 입력
func sortCases() map[string][]int64 {
	sorted := make([]int64, 300)
	reversed := make([]int64, 300)
	for i := range sorted {
		sorted[i] = int64(i)
		reversed[i] = int64(len(reversed) - i)
	}
	equal := make([]int64, 300)
	for i := range equal {
		equal[i] = 7
	}
	sawtooth := make([]int64, 300)
	for i := range sawtooth {
		sawtooth[i] = int64(i % 17)
	}

	return map[string][]int64{
		"empty":     {},
		"single":    {42},
		"pair":      {2, 1},
		"scenario":  {5, 3, 8, 3, 9, 1},
		"negatives": {-3, 10, -100, 0, 7, -3},
		"sorted":    sorted,
		"reversed":  reversed,
		"equal":     equal,
		"sawtooth":  sawtooth,
		"random":    randomInts(5000, 1, 1_000_000),
		"dupes":     randomInts(5000, 2, 10),
	}
}

func TestSequential(t *testing.T) {
	for name, input := range sortCases() {
		t.Run(name, func(t *testing.T) {
			data := slices.Clone(input)
			want := slices.Clone(input)
			slices.Sort(want)

			Sequential(data)
			assert.Equal(t, want, data)
		})
	}
}

func TestSequentialScenario(t *testing.T) {
	data := []int64{5, 3, 8, 3, 9, 1}
	Sequential(data)
	assert.Equal(t, []int64{1, 3, 3, 5, 8, 9}, data)
}

func TestSequentialIdempotent(t *testing.T) {
	data := randomInts(2000, 11, 500)
	Sequential(data)
	once := slices.Clone(data)

	Sequential(data)
	assert.Equal(t, once, data)
}

func TestSequentialOtherWidths(t *testing.T) {
	i8 := []int8{3, -1, 127, -128, 0}
	Sequential(i8)
	assert.Equal(t, []int8{-128, -1, 0, 3, 127}, i8)

	i32 := []int32{9, 8, 7, 1, 2, 3}
	Sequential(i32)
	assert.Equal(t, []int32{1, 2, 3, 7, 8, 9}, i32)

	ints := []int{4, 4, 1, -2}
	Sequential(ints)
	assert.Equal(t, []int{-2, 1, 4, 4}, ints)
}

func TestSequentialRange(t *testing.T) {
	data := []int64{9, 8, 7, 6, 5, 4, 3, 2, 1}
	SequentialRange(data, 2, 6)
	assert.Equal(t, []int64{9, 8, 3, 4, 5, 6, 7, 2, 1}, data)
}

func TestSequentialRangeInvalid(t *testing.T) {
	data := []int64{3, 2, 1}
	err := recoverErr(func() { SequentialRange(data, 2, 1) })
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidRange))
	assert.Equal(t, []int64{3, 2, 1}, data)

	var empty []int64
	err = recoverErr(func() { SequentialRange(empty, 0, 0) })
	assert.True(t, errors.Is(err, ErrInvalidRange))
}

func TestSplitAtCapsLeftView(t *testing.T) {
	data := []int64{1, 2, 3, 4, 5}
	left, right := splitAt(data, 1)
	require.Len(t, left, 2)
	require.Len(t, right, 3)
	assert.Equal(t, 2, cap(left))

	// cap이 잘려 있으므로 append는 오른쪽 구간이 아닌 새 배열에 쓴다
	_ = append(left, 100)
	assert.Equal(t, []int64{3, 4, 5}, right)
}
