package skewt

import (
	"fmt"
	"os"

	"github.com/udawtr/skewt-go/bolton"
	"gopkg.in/yaml.v3"
)

// 図の範囲と参照線の設定
type Config struct {
	PBottom float64 `yaml:"p_bottom"` // 図の下端の気圧 [mb]
	PTop    float64 `yaml:"p_top"`    // 図の上端の気圧 [mb]
	TMin    float64 `yaml:"t_min"`    // 図の下端左の気温 [℃]
	TMax    float64 `yaml:"t_max"`    // 図の上端右の気温 [℃]
	PStep   float64 `yaml:"p_step"`   // 曲線を描く気圧の刻み [mb]

	Isobars       []float64 `yaml:"isobars"`        // 等圧線 [mb]
	Isotherms     []float64 `yaml:"isotherms"`      // 等温線 [℃]
	DryAdiabats   []float64 `yaml:"dry_adiabats"`   // 乾燥断熱線の温位 [K]
	MixingRatios  []float64 `yaml:"mixing_ratios"`  // 等飽和混合比線 [g/kg]
	MoistAdiabats []float64 `yaml:"moist_adiabats"` // 湿潤断熱線の偽相当温位 [K]

	// 等飽和混合比線はこの気圧 [mb] 以上の範囲のみ描く
	MixingRatioPTop float64 `yaml:"mixing_ratio_p_top"`

	// 湿潤断熱線の場の格子数
	FieldNX int `yaml:"field_nx"`
	FieldNY int `yaml:"field_ny"`

	// 温位の基準気圧 [mb]
	ReferencePressure float64 `yaml:"reference_pressure"`
}

// 標準の設定を返します。
func DefaultConfig() Config {
	return Config{
		PBottom: 1050.0,
		PTop:    150.0,
		TMin:    -40.0,
		TMax:    50.0,
		PStep:   1.0,

		Isobars:       steps(1000, 150, -50),
		Isotherms:     steps(-80, 40, 10),
		DryAdiabats:   kelvin(steps(-30, 170, 10)),
		MixingRatios:  []float64{0.4, 1, 2, 3, 5, 8, 12, 16, 20},
		MoistAdiabats: steps(250, 400, 10),

		MixingRatioPTop: 600.0,

		FieldNX: 120,
		FieldNY: 90,

		ReferencePressure: bolton.ReferencePressure,
	}
}

// YAML ファイルから設定を読み込みます。ファイルに記述のない項目は標準の設定のままです。
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// 設定値の整合性を確認します。
func (cfg Config) Validate() error {
	if !(cfg.PTop > 0) {
		return fmt.Errorf("p_top must be positive, got %g", cfg.PTop)
	}
	if !(cfg.PBottom > cfg.PTop) {
		return fmt.Errorf("p_bottom (%g) must exceed p_top (%g)", cfg.PBottom, cfg.PTop)
	}
	if !(cfg.TMax > cfg.TMin) {
		return fmt.Errorf("t_max (%g) must exceed t_min (%g)", cfg.TMax, cfg.TMin)
	}
	if !(cfg.PStep > 0) || cfg.PStep > cfg.PBottom-cfg.PTop {
		return fmt.Errorf("p_step must be in (0, %g], got %g", cfg.PBottom-cfg.PTop, cfg.PStep)
	}
	for _, p := range cfg.Isobars {
		if !(p > 0) {
			return fmt.Errorf("isobar %g mb is not positive", p)
		}
	}
	for _, w := range cfg.MixingRatios {
		if !(w > 0) {
			return fmt.Errorf("mixing ratio %g g/kg is not positive", w)
		}
	}
	if !(cfg.MixingRatioPTop >= cfg.PTop && cfg.MixingRatioPTop <= cfg.PBottom) {
		return fmt.Errorf("mixing_ratio_p_top must be in [%g, %g], got %g", cfg.PTop, cfg.PBottom, cfg.MixingRatioPTop)
	}
	for _, theta := range cfg.DryAdiabats {
		if !(theta > 0) {
			return fmt.Errorf("dry adiabat %g K is not positive", theta)
		}
	}
	for _, theta := range cfg.MoistAdiabats {
		if !(theta > 0) {
			return fmt.Errorf("moist adiabat %g K is not positive", theta)
		}
	}
	if cfg.FieldNX < 2 || cfg.FieldNY < 2 {
		return fmt.Errorf("field mesh must be at least 2x2, got %dx%d", cfg.FieldNX, cfg.FieldNY)
	}
	if !(cfg.ReferencePressure > 0) {
		return fmt.Errorf("reference_pressure must be positive, got %g", cfg.ReferencePressure)
	}

	return nil
}

// from から to まで step 刻みの値 (to を含む)
func steps(from, to, step float64) []float64 {
	n := int((to-from)/step) + 1
	s := make([]float64, n)
	for i := range s {
		s[i] = from + float64(i)*step
	}
	return s
}

func kelvin(tc []float64) []float64 {
	tk := make([]float64, len(tc))
	for i := range tc {
		tk[i] = tc[i] + bolton.CToK
	}
	return tk
}
