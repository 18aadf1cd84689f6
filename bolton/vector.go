package bolton

import "math"

//--------------------------------------
// 配列への要素ごとの適用
//--------------------------------------
//
// スカラー版と配列版で同じ式を共有するための関数群です。
// 配列版では定義域外の要素は NaN となり、それ以外の要素は通常どおり計算されます。
// 返されるエラーは *ShapeError のみです。

// Unary は1引数のスカラー関数です。
type Unary func(float64) (float64, error)

// Binary は2引数のスカラー関数です。
type Binary func(float64, float64) (float64, error)

// Ternary は3引数のスカラー関数です。
type Ternary func(float64, float64, float64) (float64, error)

// Total はエラーを返さない関数を Unary に変換します。
func Total(f func(float64) float64) Unary {
	return func(x float64) (float64, error) {
		return f(x), nil
	}
}

// Map は x の各要素に f を適用します。
func Map(f Unary, x []float64) []float64 {
	y := make([]float64, len(x))
	for i, v := range x {
		y[i] = orNaN(f(v))
	}
	return y
}

// Map2 は a, b の各要素に f を適用します。長さ1の配列は繰り返し使われます。
func Map2(op string, f Binary, a, b []float64) ([]float64, error) {
	n, err := broadcastLen(op, len(a), len(b))
	if err != nil {
		return nil, err
	}
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		y[i] = orNaN(f(at(a, i), at(b, i)))
	}
	return y, nil
}

// Map3 は a, b, c の各要素に f を適用します。長さ1の配列は繰り返し使われます。
func Map3(op string, f Ternary, a, b, c []float64) ([]float64, error) {
	n, err := broadcastLen(op, len(a), len(b), len(c))
	if err != nil {
		return nil, err
	}
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		y[i] = orNaN(f(at(a, i), at(b, i), at(c, i)))
	}
	return y, nil
}

// 配列の長さを決定します。長さ1の配列は他の長さに合わせます。
func broadcastLen(op string, lens ...int) (int, error) {
	n := -1
	for _, l := range lens {
		if l == 1 {
			continue
		}
		if n < 0 {
			n = l
		} else if l != n {
			return 0, &ShapeError{Op: op, Lens: lens}
		}
	}
	if n < 0 {
		// すべて長さ1
		return 1, nil
	}
	return n, nil
}

func at(x []float64, i int) float64 {
	if len(x) == 1 {
		return x[0]
	}
	return x[i]
}

func orNaN(v float64, err error) float64 {
	if err != nil {
		return math.NaN()
	}
	return v
}
