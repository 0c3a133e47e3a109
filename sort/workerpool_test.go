package sort

import (
	"runtime"
	"sync/atomic"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveWorkers(t *testing.T) {
	assert.Equal(t, runtime.GOMAXPROCS(0), resolveWorkers(0))
	assert.Equal(t, 3, resolveWorkers(3))

	err := recoverErr(func() { resolveWorkers(-2) })
	assert.True(t, errors.Is(err, ErrInvalidWorkers))
}

func TestSpawnJoin(t *testing.T) {
	p := newPool(4)

	var sum atomic.Int64
	tasks := make([]*task, 0, 3)
	for i := 1; i <= 3; i++ {
		tasks = append(tasks, p.spawn(func() { sum.Add(int64(i)) }))
	}
	for _, h := range tasks {
		h.Join()
	}

	assert.Equal(t, int64(6), sum.Load())
	stats := p.stats()
	assert.Equal(t, int64(3), stats.Forked+stats.Inlined)
}

func TestSpawnInlinesWhenSlotsBusy(t *testing.T) {
	p := newPool(3)

	release := make(chan struct{})
	started := make(chan struct{}, 2)
	busy := func() {
		started <- struct{}{}
		<-release
	}

	t1 := p.spawn(busy)
	t2 := p.spawn(busy)
	<-started
	<-started

	// 두 슬롯이 모두 사용 중이면 세 번째 태스크는 호출자 위에서 바로 실행된다
	ran := false
	t3 := p.spawn(func() { ran = true })
	assert.True(t, ran)

	close(release)
	t1.Join()
	t2.Join()
	t3.Join()

	assert.Equal(t, Stats{Forked: 2, Inlined: 1}, p.stats())
}

func TestSpawnSingleWorkerRunsInline(t *testing.T) {
	p := newPool(1)

	ran := false
	h := p.spawn(func() { ran = true })
	assert.True(t, ran)
	h.Join()

	assert.Equal(t, Stats{Inlined: 1}, p.stats())
}

func TestJoinRethrowsForkedPanic(t *testing.T) {
	p := newPool(2)
	h := p.spawn(func() { panic("boom") })

	require.PanicsWithValue(t, "boom", h.Join)
	// 슬롯이 반환되었으므로 다시 포크할 수 있다
	again := p.spawn(func() {})
	again.Join()
	assert.Equal(t, int64(2), p.stats().Forked)
}
