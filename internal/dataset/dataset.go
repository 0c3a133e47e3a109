// Package dataset 벤치마크와 테스트에 쓰는 재현 가능한 입력 데이터 생성
package dataset

import (
	"math/rand"
	"slices"

	"github.com/cockroachdb/errors"
)

// Shape 입력 데이터의 모양
type Shape string

const (
	Random   Shape = "random"
	Sorted   Shape = "sorted"
	Reversed Shape = "reversed"
	Equal    Shape = "equal"
	Sawtooth Shape = "sawtooth"
)

// ErrUnknownShape 지원하지 않는 Shape
var ErrUnknownShape = errors.New("dataset: unknown shape")

// Shapes 지원하는 모든 Shape
func Shapes() []Shape {
	return []Shape{Random, Sorted, Reversed, Equal, Sawtooth}
}

// ParseShape 문자열을 Shape로 변환
func ParseShape(s string) (Shape, error) {
	shape := Shape(s)
	if !slices.Contains(Shapes(), shape) {
		return "", errors.Wrapf(ErrUnknownShape, "%q", s)
	}
	return shape, nil
}

// Generate 고정 시드 랜덤 데이터. maxValue <= 0 이면 int63 전체 범위를 쓴다.
// 같은 (size, seed, maxValue)는 항상 같은 슬라이스를 만든다.
func Generate(size int, seed int64, maxValue int64) []int64 {
	r := rand.New(rand.NewSource(seed))

	data := make([]int64, size)
	for i := range data {
		if maxValue > 0 {
			data[i] = r.Int63n(maxValue)
		} else {
			data[i] = r.Int63()
		}
	}
	return data
}

// Build shape에 맞는 데이터 생성
func Build(shape Shape, size int, seed int64, maxValue int64) ([]int64, error) {
	switch shape {
	case Random:
		return Generate(size, seed, maxValue), nil
	case Sorted, Reversed:
		data := make([]int64, size)
		for i := range data {
			data[i] = int64(i)
		}
		if shape == Reversed {
			slices.Reverse(data)
		}
		return data, nil
	case Equal:
		data := make([]int64, size)
		for i := range data {
			data[i] = seed
		}
		return data, nil
	case Sawtooth:
		period := int64(1024)
		if maxValue > 0 && maxValue < period {
			period = maxValue
		}
		data := make([]int64, size)
		for i := range data {
			data[i] = int64(i) % period
		}
		return data, nil
	default:
		return nil, errors.Wrapf(ErrUnknownShape, "%q", shape)
	}
}
