package sort

import (
	"runtime"
	"sync/atomic"

	"github.com/cockroachdb/errors"
	"golang.org/x/sync/semaphore"
)

// pool 한 번의 병렬 정렬 호출 동안만 사는 fork-join 런타임.
// 호출한 고루틴이 실행 컨텍스트 하나를 차지하므로 세마포는 workers-1 슬롯을 가진다.
type pool struct {
	slots   *semaphore.Weighted
	forked  atomic.Int64
	inlined atomic.Int64
}

// Stats 한 번의 병렬 정렬에서 spawn이 처리된 방식
type Stats struct {
	Forked  int64 // 별도 고루틴에서 실행된 태스크 수
	Inlined int64 // 빈 슬롯이 없어 호출자 위에서 바로 실행된 태스크 수
}

// resolveWorkers 0이면 GOMAXPROCS, 음수는 전제조건 위반
func resolveWorkers(workers int) int {
	switch {
	case workers < 0:
		panic(errors.Wrapf(ErrInvalidWorkers, "workers=%d", workers))
	case workers == 0:
		return runtime.GOMAXPROCS(0)
	default:
		return workers
	}
}

func newPool(workers int) *pool {
	return &pool{slots: semaphore.NewWeighted(int64(workers - 1))}
}

// task spawn된 작업의 핸들. Join 전까지 부모가 끝나지 않는다.
type task struct {
	done     chan struct{}
	panicked any
}

// spawn 슬롯을 얻으면 fn을 새 고루틴에서 실행하고 곧바로 반환한다.
// 슬롯이 없으면 fn을 그 자리에서 끝까지 실행한다.
func (p *pool) spawn(fn func()) *task {
	t := &task{}
	if !p.slots.TryAcquire(1) {
		p.inlined.Add(1)
		fn()
		return t
	}

	p.forked.Add(1)
	t.done = make(chan struct{})
	go func() {
		defer close(t.done)
		defer p.slots.Release(1)
		defer func() {
			if r := recover(); r != nil {
				t.panicked = r
			}
		}()
		fn()
	}()
	return t
}

// Join 태스크가 (자식 태스크까지) 끝날 때까지 기다린다.
// 포크된 고루틴에서 난 panic은 Join을 부른 고루틴에서 다시 발생한다.
func (t *task) Join() {
	if t.done != nil {
		<-t.done
	}
	if t.panicked != nil {
		panic(t.panicked)
	}
}

func (p *pool) stats() Stats {
	return Stats{Forked: p.forked.Load(), Inlined: p.inlined.Load()}
}
