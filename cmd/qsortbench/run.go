package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/cockroachdb/errors"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"qsortbench/internal/bench"
	"qsortbench/internal/config"
	"qsortbench/internal/dataset"
	"qsortbench/internal/store"
)

// errMismatch 병렬 결과가 순차 결과와 다를 때 종료 코드를 0이 아니게 만든다
var errMismatch = errors.New("parallel result differs from sequential result")

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the sequential/parallel comparison",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd.Flags())
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		_, err = runBenchmark(ctx, cfg, logger)
		return err
	},
}

func init() {
	f := runCmd.Flags()
	f.Int("runs", 0, "number of runs")
	f.Int("size", 0, "number of elements to generate")
	f.Int("workers", 0, "parallel workers (0 = GOMAXPROCS)")
	f.Int64("seed", 0, "random seed")
	f.Int64("max-value", 0, "exclusive upper bound of generated values (0 = full int63 range)")
	f.String("shape", "", "data shape: random, sorted, reversed, equal, sawtooth")
	f.String("dataset", "", "load this stored dataset instead of generating data")
	f.String("store", "", "dataset store backend: memory, file, bbolt, badger, pebble")
	f.String("store-path", "", "dataset store directory")
	f.String("out", "", "output directory for reports")
	f.String("metrics", "", "Prometheus textfile to write (empty = none)")
}

// loadConfig 설정 파일 위에 사용자가 지정한 플래그만 덮어쓴다.
// 플래그는 init에서 타입을 정해 등록하므로 Get* 에러는 나지 않는다.
func loadConfig(flags *pflag.FlagSet) (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return cfg, err
	}

	if flags.Changed("runs") {
		cfg.Runs, _ = flags.GetInt("runs")
	}
	if flags.Changed("size") {
		cfg.Size, _ = flags.GetInt("size")
	}
	if flags.Changed("workers") {
		cfg.Workers, _ = flags.GetInt("workers")
	}
	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetInt64("seed")
	}
	if flags.Changed("max-value") {
		cfg.MaxValue, _ = flags.GetInt64("max-value")
	}
	if flags.Changed("shape") {
		cfg.Shape, _ = flags.GetString("shape")
	}
	if flags.Changed("dataset") {
		cfg.Dataset, _ = flags.GetString("dataset")
	}
	if flags.Changed("store") {
		cfg.Store.Backend, _ = flags.GetString("store")
	}
	if flags.Changed("store-path") {
		cfg.Store.Path, _ = flags.GetString("store-path")
	}
	if flags.Changed("out") {
		cfg.Output.Dir, _ = flags.GetString("out")
	}
	if flags.Changed("metrics") {
		cfg.Output.Metrics, _ = flags.GetString("metrics")
	}

	return cfg, cfg.Validate()
}

// loadInput 저장된 데이터셋이 지정되어 있으면 읽고, 아니면 생성한다
func loadInput(cfg config.Config, logger *zap.Logger) ([]int64, error) {
	if cfg.Dataset == "" {
		shape, err := dataset.ParseShape(cfg.Shape)
		if err != nil {
			return nil, err
		}
		return dataset.Build(shape, cfg.Size, cfg.Seed, cfg.MaxValue)
	}

	backend, err := store.ParseBackend(cfg.Store.Backend)
	if err != nil {
		return nil, err
	}
	s, err := store.Open(backend, cfg.Store.Path)
	if err != nil {
		return nil, err
	}
	defer s.Close()

	data, err := s.Get(cfg.Dataset)
	if err != nil {
		return nil, errors.Wrapf(err, "load dataset %q from %s", cfg.Dataset, backend)
	}
	logger.Info("데이터셋 로드",
		zap.String("dataset", cfg.Dataset),
		zap.String("store", string(backend)),
		zap.Int("size", len(data)))
	return data, nil
}

func runBenchmark(ctx context.Context, cfg config.Config, logger *zap.Logger) (*bench.Report, error) {
	input, err := loadInput(cfg, logger)
	if err != nil {
		return nil, err
	}

	var metrics *bench.Metrics
	if cfg.Output.Metrics != "" {
		metrics = bench.NewMetrics()
	}

	logger.Info("벤치마크 시작",
		zap.String("size", humanize.Comma(int64(len(input)))),
		zap.Int("runs", cfg.Runs),
		zap.Int("workers", cfg.Workers))

	runner := &bench.Runner{Runs: cfg.Runs, Workers: cfg.Workers, Logger: logger, Metrics: metrics}
	report, runErr := runner.Run(ctx, input)
	if report == nil {
		return nil, runErr
	}

	if err := writeReports(cfg, report, metrics, logger); err != nil {
		return report, errors.CombineErrors(runErr, err)
	}
	if runErr != nil {
		return report, runErr
	}

	summary := report.Summarize()
	logger.Info("벤치마크 완료",
		zap.Duration("sequential_avg", summary.SequentialAvg),
		zap.Duration("parallel_avg", summary.ParallelAvg),
		zap.Float64("speedup", summary.Speedup),
		zap.Bool("all_equal", summary.AllEqual))
	if !summary.AllEqual {
		return report, errMismatch
	}
	return report, nil
}

// reportFile 출력 파일 하나와 그 파일을 쓰는 함수
type reportFile struct {
	name  string
	write func(path string) error
}

func writeReports(cfg config.Config, report *bench.Report, metrics *bench.Metrics, logger *zap.Logger) error {
	out := cfg.Output
	if err := os.MkdirAll(out.Dir, 0o755); err != nil {
		return errors.Wrapf(err, "create output dir %s", out.Dir)
	}

	files := []reportFile{
		{out.Text, func(p string) error { return bench.WriteFile(p, report.WriteText) }},
		{out.Markdown, func(p string) error { return bench.WriteFile(p, report.WriteMarkdown) }},
		{out.JSON, func(p string) error { return bench.WriteFile(p, report.WriteJSON) }},
	}
	if metrics != nil {
		files = append(files, reportFile{out.Metrics, metrics.WriteTextfile})
	}

	for _, f := range files {
		if f.name == "" {
			continue
		}
		path := filepath.Join(out.Dir, f.name)
		if err := f.write(path); err != nil {
			return err
		}
		logger.Debug("리포트 저장", zap.String("path", path))
	}
	return nil
}
