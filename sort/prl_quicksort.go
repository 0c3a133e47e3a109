package sort

import "golang.org/x/exp/constraints"

// Parallel 최대 workers개의 실행 컨텍스트로 정렬한다. workers == 0 이면 GOMAXPROCS.
// 결과는 Sequential과 원소 단위로 동일하다.
func Parallel[T constraints.Signed](data []T, workers int) {
	ParallelWithStats(data, workers)
}

// ParallelWithStats Parallel과 같지만 spawn 통계를 함께 돌려준다.
func ParallelWithStats[T constraints.Signed](data []T, workers int) Stats {
	workers = resolveWorkers(workers)
	if len(data) < 2 {
		return Stats{}
	}

	p := newPool(workers)
	sortPar(p, data)
	return p.stats()
}

// ParallelRange data[low..high] 구간만 병렬 정렬한다. 잘못된 범위는 즉시 panic.
func ParallelRange[T constraints.Signed](data []T, low, high, workers int) {
	checkRange(len(data), low, high)
	workers = resolveWorkers(workers)
	sortPar(newPool(workers), data[low:high+1])
}

func sortPar[T constraints.Signed](p *pool, data []T) {
	high := len(data) - 1
	if high <= 0 {
		return
	}

	j := partition(data, 0, high)
	left, right := splitAt(data, j)

	switch {
	case j > 0 && j+1 < high:
		// 두 구간은 인덱스가 겹치지 않으므로 잠금 없이 동시에 정렬해도 안전하다
		t := p.spawn(func() { sortPar(p, left) })
		sortPar(p, right)
		t.Join()
	case j > 0:
		sortPar(p, left)
	case j+1 < high:
		sortPar(p, right)
	}
}
