// Package verify 정렬 결과 검증: 정렬 여부, 원소 단위 동일성, 순열 여부
package verify

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/exp/constraints"
)

// IsSorted 비내림차순인지 확인
func IsSorted[T constraints.Signed](data []T) bool {
	for i := 1; i < len(data); i++ {
		if data[i] < data[i-1] {
			return false
		}
	}
	return true
}

// Equal 원소 단위 비교. 다르면 첫 번째로 다른 인덱스를, 길이가 다르면 짧은 쪽 길이를 돌려준다.
func Equal[T constraints.Signed](a, b []T) (bool, int) {
	n := min(len(a), len(b))
	for i := range n {
		if a[i] != b[i] {
			return false, i
		}
	}
	if len(a) != len(b) {
		return false, n
	}
	return true, -1
}

// Fingerprint 순서와 무관한 멀티셋 지문.
// 각 값의 xxhash를 더하므로 순열끼리는 항상 같은 값을 가진다.
func Fingerprint[T constraints.Signed](data []T) uint64 {
	var buf [8]byte
	var sum uint64
	for _, v := range data {
		binary.LittleEndian.PutUint64(buf[:], uint64(int64(v)))
		sum += xxhash.Sum64(buf[:])
	}
	return sum
}

// Permutation 길이와 지문이 같으면 b를 a의 순열로 본다 (확률적 판정)
func Permutation[T constraints.Signed](a, b []T) bool {
	return len(a) == len(b) && Fingerprint(a) == Fingerprint(b)
}
