package bench

import "time"

// Summary 모드별 평균과 속도 향상 비율
type Summary struct {
	SequentialAvg time.Duration `json:"sequential_avg_ns"`
	ParallelAvg   time.Duration `json:"parallel_avg_ns"`
	Speedup       float64       `json:"speedup"`
	AllEqual      bool          `json:"all_equal"`
}

// Summarize 결과가 없으면 0 값
func (r *Report) Summarize() Summary {
	var s Summary
	s.SequentialAvg = r.average(Sequential)
	s.ParallelAvg = r.average(Parallel)
	if s.ParallelAvg > 0 {
		s.Speedup = float64(s.SequentialAvg) / float64(s.ParallelAvg)
	}

	s.AllEqual = len(r.Comparisons) > 0
	for _, c := range r.Comparisons {
		if !c.Equal || !c.Sorted || !c.Permutation {
			s.AllEqual = false
		}
	}
	return s
}

func (r *Report) average(mode Mode) time.Duration {
	var total time.Duration
	count := 0
	for _, res := range r.Results {
		if res.Mode == mode {
			total += res.Duration
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return total / time.Duration(count)
}
