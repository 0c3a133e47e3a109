// Package config qsortbench 설정 (YAML)
package config

import (
	"os"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"qsortbench/internal/dataset"
	"qsortbench/internal/store"
)

// Config 벤치마크 한 번 실행에 필요한 모든 설정
type Config struct {
	Runs     int    `yaml:"runs"`
	Size     int    `yaml:"size"`
	Workers  int    `yaml:"workers"` // 0이면 GOMAXPROCS
	Seed     int64  `yaml:"seed"`
	MaxValue int64  `yaml:"max_value"` // 0이면 int63 전체 범위
	Shape    string `yaml:"shape"`
	Dataset  string `yaml:"dataset"` // 비어 있지 않으면 저장소에서 읽는다

	Store  StoreConfig  `yaml:"store"`
	Output OutputConfig `yaml:"output"`
}

// StoreConfig 데이터셋 저장소
type StoreConfig struct {
	Backend string `yaml:"backend"`
	Path    string `yaml:"path"`
}

// OutputConfig 결과 파일. 파일 이름이 비어 있으면 그 형식은 쓰지 않는다.
type OutputConfig struct {
	Dir      string `yaml:"dir"`
	Text     string `yaml:"text"`
	Markdown string `yaml:"markdown"`
	JSON     string `yaml:"json"`
	Metrics  string `yaml:"metrics"`
}

// Default 원래 벤치마크 드라이버와 같은 기본값 (5회, 워커 4개, 시드 0)
func Default() Config {
	return Config{
		Runs:     5,
		Size:     10_000_000,
		Workers:  4,
		Seed:     0,
		MaxValue: 0,
		Shape:    string(dataset.Random),
		Store: StoreConfig{
			Backend: string(store.Memory),
			Path:    "data",
		},
		Output: OutputConfig{
			Dir:      ".",
			Text:     "result.txt",
			Markdown: "benchmark_results.md",
			JSON:     "benchmark_results.json",
			Metrics:  "",
		},
	}
}

// Load 기본값 위에 YAML 파일을 덮어쓴다. path가 비어 있으면 기본값 그대로.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "read config %s", path)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse config %s", path)
	}
	return cfg, nil
}

// Validate 실행 전에 설정값을 검사
func (c Config) Validate() error {
	if c.Runs <= 0 {
		return errors.Newf("runs must be positive, got %d", c.Runs)
	}
	if c.Dataset == "" && c.Size <= 0 {
		return errors.Newf("size must be positive, got %d", c.Size)
	}
	if c.Workers < 0 {
		return errors.Newf("workers must not be negative, got %d", c.Workers)
	}
	if c.MaxValue < 0 {
		return errors.Newf("max_value must not be negative, got %d", c.MaxValue)
	}
	if _, err := dataset.ParseShape(c.Shape); err != nil {
		return err
	}
	if _, err := store.ParseBackend(c.Store.Backend); err != nil {
		return err
	}
	return nil
}
