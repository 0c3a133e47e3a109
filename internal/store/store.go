// Package store 벤치마크 입력 데이터셋을 저장하고 다시 읽는 저장소 계층.
// 같은 데이터셋을 인메모리, 텍스트 파일, bbolt, BadgerDB, PebbleDB 중 하나에 보관한다.
package store

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"
)

// Backend 저장소 종류
type Backend string

const (
	Memory Backend = "memory"
	File   Backend = "file"
	Bbolt  Backend = "bbolt"
	Badger Backend = "badger"
	Pebble Backend = "pebble"
)

var (
	ErrNotFound       = errors.New("store: dataset not found")
	ErrInvalidName    = errors.New("store: invalid dataset name")
	ErrUnknownBackend = errors.New("store: unknown backend")
	ErrCorrupt        = errors.New("store: corrupt dataset")
)

// Store 이름 붙은 int64 데이터셋 저장소. 같은 이름으로 Put하면 덮어쓴다.
type Store interface {
	Put(name string, data []int64) error
	Get(name string) ([]int64, error)
	Has(name string) (bool, error)
	Close() error
}

// Backends 지원하는 모든 Backend
func Backends() []Backend {
	return []Backend{Memory, File, Bbolt, Badger, Pebble}
}

// ParseBackend 문자열을 Backend로 변환
func ParseBackend(s string) (Backend, error) {
	for _, b := range Backends() {
		if string(b) == s {
			return b, nil
		}
	}
	return "", errors.Wrapf(ErrUnknownBackend, "%q", s)
}

// Open backend 저장소를 path 디렉터리 아래에 연다. Memory는 path를 쓰지 않는다.
func Open(backend Backend, path string) (Store, error) {
	if backend != Memory {
		if err := os.MkdirAll(path, 0o755); err != nil {
			return nil, errors.Wrapf(err, "create store dir %s", path)
		}
	}

	switch backend {
	case Memory:
		return NewMemoryStore(), nil
	case File:
		return NewFileStore(path), nil
	case Bbolt:
		return OpenBboltStore(path)
	case Badger:
		return OpenBadgerStore(path)
	case Pebble:
		return OpenPebbleStore(path)
	default:
		return nil, errors.Wrapf(ErrUnknownBackend, "%q", backend)
	}
}

// validateName 키 구분자 '/'와 경로 문자를 막는다
func validateName(name string) error {
	if name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return errors.Wrapf(ErrInvalidName, "%q", name)
	}
	return nil
}
