// Package bench 순차/병렬 퀵소트 비교 벤치마크 실행기와 결과 리포트
package bench

import (
	"context"
	"runtime"
	"slices"
	"time"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"qsortbench/internal/verify"
	"qsortbench/sort"
)

// Mode 정렬 방식
type Mode string

const (
	Sequential Mode = "sequential"
	Parallel   Mode = "parallel"
)

// Result 정렬 한 번의 측정값
type Result struct {
	Run         int           `json:"run"`
	Mode        Mode          `json:"mode"`
	Size        int           `json:"size"`
	Workers     int           `json:"workers"`
	Duration    time.Duration `json:"duration_ns"`
	MemoryUsage uint64        `json:"memory_usage_bytes"`
	Goroutines  int           `json:"goroutines"`
	Forked      int64         `json:"forked"`
	Inlined     int64         `json:"inlined"`
}

// Comparison 한 회차의 순차/병렬 결과 비교
type Comparison struct {
	Run         int  `json:"run"`
	Equal       bool `json:"equal"`
	Mismatch    int  `json:"mismatch_index"` // Equal이면 -1
	Sorted      bool `json:"sorted"`
	Permutation bool `json:"permutation"`
}

// Report 전체 실행 결과
type Report struct {
	StartedAt   time.Time    `json:"started_at"`
	Runs        int          `json:"runs"`
	Size        int          `json:"size"`
	Workers     int          `json:"workers"`
	NumCPU      int          `json:"num_cpu"`
	GOMAXPROCS  int          `json:"gomaxprocs"`
	Results     []Result     `json:"results"`
	Comparisons []Comparison `json:"comparisons"`
}

// Runner 같은 입력을 runs번 순차·병렬로 정렬하고 비교한다
type Runner struct {
	Runs    int
	Workers int // 0이면 GOMAXPROCS

	Logger  *zap.Logger
	Metrics *Metrics // nil 허용
}

// systemStats 측정 구간 시작 시점의 상태
type systemStats struct {
	startTime time.Time
	startMem  runtime.MemStats
}

// startStats GC를 먼저 돌려 이전 회차의 쓰레기가 측정에 섞이지 않게 한다
func startStats() *systemStats {
	runtime.GC()

	s := &systemStats{}
	runtime.ReadMemStats(&s.startMem)
	s.startTime = time.Now()
	return s
}

// endStats 경과 시간과 구간 동안 할당된 바이트
func (s *systemStats) endStats() (time.Duration, uint64) {
	duration := time.Since(s.startTime)

	var end runtime.MemStats
	runtime.ReadMemStats(&end)
	return duration, end.TotalAlloc - s.startMem.TotalAlloc
}

// Run input은 바꾸지 않는다. 회차 사이에 ctx가 취소되면 그때까지의 결과와 함께 에러를 돌려준다.
func (r *Runner) Run(ctx context.Context, input []int64) (*Report, error) {
	if r.Runs <= 0 {
		return nil, errors.Newf("runs must be positive, got %d", r.Runs)
	}
	if r.Workers < 0 {
		return nil, errors.Wrapf(sort.ErrInvalidWorkers, "workers=%d", r.Workers)
	}
	logger := r.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	workers := r.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	report := &Report{
		StartedAt:  time.Now(),
		Runs:       r.Runs,
		Size:       len(input),
		Workers:    workers,
		NumCPU:     runtime.NumCPU(),
		GOMAXPROCS: runtime.GOMAXPROCS(0),
	}

	for run := 1; run <= r.Runs; run++ {
		if err := ctx.Err(); err != nil {
			return report, errors.Wrapf(err, "stopped before run %d", run)
		}

		seqResult, parResult, cmp := r.runOnce(run, input, workers)
		report.Results = append(report.Results, seqResult, parResult)
		report.Comparisons = append(report.Comparisons, cmp)

		logger.Info("회차 완료",
			zap.Int("run", run),
			zap.Duration("sequential", seqResult.Duration),
			zap.Duration("parallel", parResult.Duration),
			zap.Int64("forked", parResult.Forked),
			zap.Bool("equal", cmp.Equal))
		if !cmp.Equal {
			logger.Error("순차/병렬 결과 불일치", zap.Int("run", run), zap.Int("index", cmp.Mismatch))
		}
	}
	return report, nil
}

func (r *Runner) runOnce(run int, input []int64, workers int) (Result, Result, Comparison) {
	toSortSeq := slices.Clone(input)
	toSortPar := slices.Clone(input)

	stats := startStats()
	sort.Sequential(toSortSeq)
	seqDuration, seqMem := stats.endStats()

	stats = startStats()
	spawn := sort.ParallelWithStats(toSortPar, workers)
	parDuration, parMem := stats.endStats()

	seq := Result{
		Run: run, Mode: Sequential, Size: len(input), Workers: 1,
		Duration: seqDuration, MemoryUsage: seqMem, Goroutines: runtime.NumGoroutine(),
	}
	par := Result{
		Run: run, Mode: Parallel, Size: len(input), Workers: workers,
		Duration: parDuration, MemoryUsage: parMem, Goroutines: runtime.NumGoroutine(),
		Forked: spawn.Forked, Inlined: spawn.Inlined,
	}

	equal, mismatch := verify.Equal(toSortSeq, toSortPar)
	cmp := Comparison{
		Run:         run,
		Equal:       equal,
		Mismatch:    mismatch,
		Sorted:      verify.IsSorted(toSortPar),
		Permutation: verify.Permutation(input, toSortPar),
	}

	if r.Metrics != nil {
		r.Metrics.Observe(seq)
		r.Metrics.Observe(par)
		r.Metrics.ObserveComparison(cmp)
	}
	return seq, par, cmp
}
