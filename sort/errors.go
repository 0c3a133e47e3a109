package sort

import "github.com/cockroachdb/errors"

// 정렬 코어의 전제조건 위반. 정렬 자체는 에러를 반환하지 않고 즉시 panic 한다.
var (
	ErrInvalidRange   = errors.New("sort: invalid range")
	ErrInvalidWorkers = errors.New("sort: invalid worker count")
)

// checkRange 최상위 진입점의 [low, high] 범위 검사
func checkRange(n, low, high int) {
	if low < 0 || high >= n || low > high {
		panic(errors.Wrapf(ErrInvalidRange, "low=%d high=%d len=%d", low, high, n))
	}
}
