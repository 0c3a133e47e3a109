package store

import (
	"encoding/binary"
	"fmt"

	"github.com/cockroachdb/errors"
)

// chunkLen 청크 하나에 들어가는 값 개수 (512KB)
const chunkLen = 64 * 1024

// KV 백엔드 공통 키 레이아웃
//   <name>/m           → 원소 개수 (uint64 LE)
//   <name>/c/<%08d>    → 청크 (int64 LE 배열)
func metaKey(name string) []byte {
	return []byte(name + "/m")
}

func chunkPrefix(name string) []byte {
	return []byte(name + "/c/")
}

// chunkUpperBound 청크 키 범위의 배타적 상한 ('/' 다음 바이트가 '0')
func chunkUpperBound(name string) []byte {
	return []byte(name + "/c0")
}

// chunkSuffix 사전순과 숫자순이 같도록 0을 채운 청크 번호
func chunkSuffix(idx int) string {
	return fmt.Sprintf("%08d", idx)
}

func chunkKey(name string, idx int) []byte {
	return append(chunkPrefix(name), chunkSuffix(idx)...)
}

func encodeMeta(n int) []byte {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, uint64(n))
	return buf
}

func decodeMeta(b []byte) (int, error) {
	if len(b) != 8 {
		return 0, errors.Wrapf(ErrCorrupt, "meta length %d", len(b))
	}
	return int(binary.LittleEndian.Uint64(b)), nil
}

func encodeChunk(vals []int64) []byte {
	buf := make([]byte, 8*len(vals))
	for i, v := range vals {
		binary.LittleEndian.PutUint64(buf[8*i:], uint64(v))
	}
	return buf
}

// appendChunk b를 디코딩해 dst 뒤에 붙인다. b는 호출 후 재사용되어도 된다.
func appendChunk(dst []int64, b []byte) ([]int64, error) {
	if len(b)%8 != 0 {
		return dst, errors.Wrapf(ErrCorrupt, "chunk length %d", len(b))
	}
	for i := 0; i < len(b); i += 8 {
		dst = append(dst, int64(binary.LittleEndian.Uint64(b[i:])))
	}
	return dst, nil
}

// forEachChunk data를 chunkLen 단위로 잘라 fn에 넘긴다
func forEachChunk(data []int64, fn func(idx int, vals []int64) error) error {
	for idx, start := 0, 0; start < len(data); idx, start = idx+1, start+chunkLen {
		end := min(start+chunkLen, len(data))
		if err := fn(idx, data[start:end]); err != nil {
			return err
		}
	}
	return nil
}

func checkLen(name string, want int, got []int64) error {
	if len(got) != want {
		return errors.Wrapf(ErrCorrupt, "%s: want %d values, got %d", name, want, len(got))
	}
	return nil
}
