package bolton

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrDomain は式の定義域外の入力を表します。
	ErrDomain = errors.New("outside formula domain")

	// ErrShape は配列の長さが一致しないことを表します。
	ErrShape = errors.New("incompatible shapes")
)

// DomainError は対数の引数が正でない、ゼロ除算になる等、
// 経験式が定義されない入力を受け取ったときに返されます。
type DomainError struct {
	Op     string
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %v: %s", e.Op, ErrDomain, e.Reason)
}

func (e *DomainError) Unwrap() error {
	return ErrDomain
}

// ShapeError は配列版の関数に長さの異なる配列が渡されたときに返されます。
// 長さ1の配列はスカラーとして扱われ、エラーになりません。
type ShapeError struct {
	Op   string
	Lens []int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: %v: lengths %v", e.Op, ErrShape, e.Lens)
}

func (e *ShapeError) Unwrap() error {
	return ErrShape
}

// 定義域外の場合は NaN とエラーを返す
func fail(op string, format string, args ...interface{}) (float64, error) {
	return math.NaN(), &DomainError{Op: op, Reason: fmt.Sprintf(format, args...)}
}
