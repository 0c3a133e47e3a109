package bench

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/dustin/go-humanize"
)

var modeNames = map[Mode]string{
	Sequential: "qsort_seq",
	Parallel:   "qsort_par",
}

// WriteText 회차별 시간, 결과 일치 여부, 평균 (result.txt 형식)
func (r *Report) WriteText(w io.Writer) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Runs %d\n", r.Runs)
	fmt.Fprintf(&b, "Array size %d\n", r.Size)
	fmt.Fprintf(&b, "Workers %d\n", r.Workers)

	for _, cmp := range r.Comparisons {
		fmt.Fprintf(&b, "Test #%d\n", cmp.Run)
		for _, res := range r.Results {
			if res.Run == cmp.Run {
				fmt.Fprintf(&b, "%s time: %d ms\n", modeNames[res.Mode], res.Duration.Milliseconds())
			}
		}
		verdict := "Equal"
		if !cmp.Equal {
			verdict = "Not equal"
		}
		fmt.Fprintf(&b, "Assert results of sort equal: %s\n\n", verdict)
	}

	s := r.Summarize()
	fmt.Fprintf(&b, "qsort_seq average time: %d ms\n", s.SequentialAvg.Milliseconds())
	fmt.Fprintf(&b, "qsort_par average time: %d ms\n", s.ParallelAvg.Milliseconds())

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteMarkdown 회차별 표와 요약 표
func (r *Report) WriteMarkdown(w io.Writer) error {
	var b strings.Builder
	b.Grow(4096)

	b.WriteString("# 퀵소트 순차/병렬 벤치마크 결과\n\n")
	fmt.Fprintf(&b, "실행 시간: %s\n", r.StartedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "CPU 코어 수: %d\n", r.NumCPU)
	fmt.Fprintf(&b, "GOMAXPROCS: %d\n", r.GOMAXPROCS)
	fmt.Fprintf(&b, "워커 수: %d\n", r.Workers)
	fmt.Fprintf(&b, "데이터 크기: %s개\n\n", humanize.Comma(int64(r.Size)))

	b.WriteString("| 방식 | 회차 | 실행시간 | 할당량 | 고루틴수 | fork | inline |\n")
	b.WriteString("|------|------|----------|--------|----------|------|--------|\n")
	for _, res := range r.Results {
		fmt.Fprintf(&b, "| %s | %d | %v | %s | %d | %d | %d |\n",
			modeNames[res.Mode], res.Run, res.Duration.Round(time.Microsecond),
			humanize.Bytes(res.MemoryUsage), res.Goroutines, res.Forked, res.Inlined)
	}

	s := r.Summarize()
	b.WriteString("\n## 요약\n\n")
	b.WriteString("| 항목 | 값 |\n")
	b.WriteString("|------|----|\n")
	fmt.Fprintf(&b, "| 순차 평균 | %v |\n", s.SequentialAvg.Round(time.Microsecond))
	fmt.Fprintf(&b, "| 병렬 평균 | %v |\n", s.ParallelAvg.Round(time.Microsecond))
	fmt.Fprintf(&b, "| 속도 향상 | %.2fx |\n", s.Speedup)
	fmt.Fprintf(&b, "| 결과 일치 | %t |\n", s.AllEqual)

	_, err := io.WriteString(w, b.String())
	return err
}

// jsonReport JSON 출력에는 요약을 함께 넣는다
type jsonReport struct {
	*Report
	Summary Summary `json:"summary"`
}

func (r *Report) WriteJSON(w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(jsonReport{Report: r, Summary: r.Summarize()})
}

// WriteFile write로 path에 버퍼링해서 쓴다
func WriteFile(path string, write func(io.Writer) error) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}

	writer := bufio.NewWriterSize(file, 32*1024)
	if err := write(writer); err != nil {
		file.Close()
		return errors.Wrapf(err, "write %s", path)
	}
	if err := writer.Flush(); err != nil {
		file.Close()
		return errors.Wrapf(err, "flush %s", path)
	}
	return errors.Wrapf(file.Close(), "close %s", path)
}
