package sort

import "golang.org/x/exp/constraints"

// Sequential 단일 고루틴 퀵소트 (오름차순, 제자리 정렬)
func Sequential[T constraints.Signed](data []T) {
	if len(data) < 2 {
		return
	}
	sortSeq(data)
}

// SequentialRange data[low..high] 구간만 정렬한다. 잘못된 범위는 즉시 panic.
func SequentialRange[T constraints.Signed](data []T, low, high int) {
	checkRange(len(data), low, high)
	sortSeq(data[low : high+1])
}

func sortSeq[T constraints.Signed](data []T) {
	high := len(data) - 1
	if high <= 0 {
		return
	}

	j := partition(data, 0, high)
	left, right := splitAt(data, j)

	if j > 0 {
		sortSeq(left)
	}
	if j+1 < high {
		sortSeq(right)
	}
}
