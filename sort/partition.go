package sort

import "golang.org/x/exp/constraints"

// Partition 호어(Hoare) 방식 제자리 분할.
// 피벗은 [low, high] 중앙 인덱스의 값이고, 반환값 j에 대해
// data[low..j] <= pivot <= data[j+1..high] 가 성립한다.
// 범위 밖의 원소는 건드리지 않는다.
func Partition[T constraints.Signed](data []T, low, high int) int {
	checkRange(len(data), low, high)
	return partition(data, low, high)
}

func partition[T constraints.Signed](data []T, low, high int) int {
	i, j := low, high
	q := data[low+(high-low)/2]

	for i <= j {
		for data[i] < q {
			i++
		}
		for data[j] > q {
			j--
		}
		if i >= j {
			break
		}
		data[i], data[j] = data[j], data[i]
		i++
		j--
	}
	return j
}

// splitAt 분할 경계 j에서 슬라이스를 두 개의 겹치지 않는 뷰로 나눈다.
// 왼쪽 뷰의 cap을 j+1로 잘라 append가 오른쪽 구간을 덮어쓰지 못하게 한다.
func splitAt[T constraints.Signed](data []T, j int) (left, right []T) {
	return data[: j+1 : j+1], data[j+1:]
}
