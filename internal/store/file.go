package store

import (
	"bufio"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// FileStore 데이터셋 하나를 한 줄에 숫자 하나씩 쓰는 텍스트 파일로 저장한다
type FileStore struct {
	dir string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

func (s *FileStore) path(name string) string {
	return filepath.Join(s.dir, name+".txt")
}

// Put 큰 버퍼로 한 번에 기록 (줄 단위 flush 없음)
func (s *FileStore) Put(name string, data []int64) error {
	if err := validateName(name); err != nil {
		return err
	}

	// 임시 파일에 쓰고 rename 해서 읽는 쪽이 반쯤 쓰인 파일을 보지 않게 한다
	tmp := s.path(name) + ".tmp"
	file, err := os.Create(tmp)
	if err != nil {
		return errors.Wrapf(err, "create %s", tmp)
	}

	writer := bufio.NewWriterSize(file, 64*1024)
	buf := make([]byte, 0, 24)
	for _, v := range data {
		buf = strconv.AppendInt(buf[:0], v, 10)
		buf = append(buf, '\n')
		if _, err := writer.Write(buf); err != nil {
			file.Close()
			return errors.Wrapf(err, "write %s", tmp)
		}
	}
	if err := writer.Flush(); err != nil {
		file.Close()
		return errors.Wrapf(err, "flush %s", tmp)
	}
	if err := file.Close(); err != nil {
		return errors.Wrapf(err, "close %s", tmp)
	}
	return errors.Wrap(os.Rename(tmp, s.path(name)), "rename dataset file")
}

func (s *FileStore) Get(name string) ([]int64, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	file, err := os.Open(s.path(name))
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "open dataset %s", name)
	}
	defer file.Close()

	// 파일 크기로 원소 개수를 대략 추정해 미리 할당
	var data []int64
	if info, err := file.Stat(); err == nil {
		data = make([]int64, 0, info.Size()/8)
	}

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 64*1024), bufio.MaxScanTokenSize)
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		v, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(ErrCorrupt, "%s line %d: %v", name, line, err)
		}
		data = append(data, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "read dataset %s", name)
	}
	if data == nil {
		data = []int64{}
	}
	return data, nil
}

func (s *FileStore) Has(name string) (bool, error) {
	if err := validateName(name); err != nil {
		return false, err
	}
	_, err := os.Stat(s.path(name))
	switch {
	case err == nil:
		return true, nil
	case os.IsNotExist(err):
		return false, nil
	default:
		return false, errors.Wrapf(err, "stat dataset %s", name)
	}
}

func (s *FileStore) Close() error { return nil }
