// Package sounding は高層気象観測 (ゾンデ) の鉛直分布を保持し、
// 各層の熱力学量と skew-T 図上の座標を求めます。
//
// 観測電文などのファイル形式は扱いません。呼び出し側が気圧の高い順に並んだ配列を
// New に渡すか、同じ配列を記述した YAML を Load で読み込みます。
package sounding

import (
	"fmt"
	"sort"

	"github.com/udawtr/skewt-go/bolton"
)

// 観測データ。各配列の i 番目が1つの層を表します。
type Sounding struct {
	P       []float64 // 気圧 [mb]
	Z       []float64 // 高度 [m]
	T       []float64 // 気温 [℃]
	Td      []float64 // 露点温度 [℃]
	WindDir []float64 // 風向 [°]
	WindSpd []float64 // 風速 [knot]
}

// 観測データを作成します。
// 配列の長さが揃っていない場合は *bolton.ShapeError を返します。
// 気圧は正で、気圧の高い順 (地上から上空へ) に並んでいる必要があります。
func New(p, z, t, td, windDir, windSpd []float64) (*Sounding, error) {
	n := len(p)
	for _, l := range []int{len(z), len(t), len(td), len(windDir), len(windSpd)} {
		if l != n {
			return nil, &bolton.ShapeError{
				Op:   "sounding.New",
				Lens: []int{len(p), len(z), len(t), len(td), len(windDir), len(windSpd)},
			}
		}
	}

	for i := range p {
		if !(p[i] > 0) {
			return nil, fmt.Errorf("level %d: pressure %g mb is not positive", i, p[i])
		}
		if i > 0 && !(p[i] < p[i-1]) {
			return nil, fmt.Errorf("level %d: pressure %g mb is not below %g mb", i, p[i], p[i-1])
		}
	}

	return &Sounding{
		P:       append([]float64{}, p...),
		Z:       append([]float64{}, z...),
		T:       append([]float64{}, t...),
		Td:      append([]float64{}, td...),
		WindDir: append([]float64{}, windDir...),
		WindSpd: append([]float64{}, windSpd...),
	}, nil
}

// 層の数
func (s *Sounding) Len() int {
	return len(s.P)
}

// 気圧 pBottom [mb] から pTop [mb] までの層を抜き出して新しい構造体を作成します。
func (s *Sounding) Clip(pBottom float64, pTop float64) *Sounding {
	// 気圧は降順のため、pBottom 以下となる最初の層と pTop 未満となる最初の層を探す
	start := sort.Search(len(s.P), func(i int) bool {
		return s.P[i] <= pBottom
	})
	end := sort.Search(len(s.P), func(i int) bool {
		return s.P[i] < pTop
	})
	if end < start {
		end = start
	}

	return &Sounding{
		P:       append([]float64{}, s.P[start:end]...),
		Z:       append([]float64{}, s.Z[start:end]...),
		T:       append([]float64{}, s.T[start:end]...),
		Td:      append([]float64{}, s.Td[start:end]...),
		WindDir: append([]float64{}, s.WindDir[start:end]...),
		WindSpd: append([]float64{}, s.WindSpd[start:end]...),
	}
}
