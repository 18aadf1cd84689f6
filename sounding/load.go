package sounding

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// YAML 上の観測データ
type document struct {
	P       []float64 `yaml:"p"`        // 気圧 [mb]
	Z       []float64 `yaml:"z"`        // 高度 [m]
	T       []float64 `yaml:"t"`        // 気温 [℃]
	Td      []float64 `yaml:"td"`       // 露点温度 [℃]
	WindDir []float64 `yaml:"wind_dir"` // 風向 [°]
	WindSpd []float64 `yaml:"wind_spd"` // 風速 [knot]
}

// YAML ファイルから観測データを読み込みます。
// p, t, td は必須です。z, wind_dir, wind_spd を省略した場合は 0 とします。
func Load(path string) (*Sounding, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sounding: %w", err)
	}

	var doc document
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("parse sounding %s: %w", path, err)
	}
	if len(doc.P) == 0 {
		return nil, fmt.Errorf("sounding %s: no levels", path)
	}

	n := len(doc.P)
	s, err := New(doc.P, orZeros(doc.Z, n), doc.T, doc.Td, orZeros(doc.WindDir, n), orZeros(doc.WindSpd, n))
	if err != nil {
		return nil, fmt.Errorf("sounding %s: %w", path, err)
	}

	return s, nil
}

func orZeros(x []float64, n int) []float64 {
	if x == nil {
		return make([]float64, n)
	}
	return x
}
