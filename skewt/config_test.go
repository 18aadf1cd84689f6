package skewt

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_DefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 1050.0, cfg.PBottom)
	assert.Equal(t, 150.0, cfg.PTop)
	assert.Equal(t, -40.0, cfg.TMin)
	assert.Equal(t, 50.0, cfg.TMax)

	// 1000, 950, ..., 150
	assert.Len(t, cfg.Isobars, 18)
	assert.Equal(t, 1000.0, cfg.Isobars[0])
	assert.Equal(t, 150.0, cfg.Isobars[17])

	// -80, -70, ..., 40
	assert.Len(t, cfg.Isotherms, 13)
	assert.Equal(t, -80.0, cfg.Isotherms[0])
	assert.Equal(t, 40.0, cfg.Isotherms[12])

	assert.Equal(t, []float64{0.4, 1, 2, 3, 5, 8, 12, 16, 20}, cfg.MixingRatios)
	assert.Equal(t, 600.0, cfg.MixingRatioPTop)
	assert.Equal(t, 1000.0, cfg.ReferencePressure)
}

func Test_LoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skewt.yaml")
	yml := `
p_top: 200
isotherms: [-40, -20, 0, 20]
mixing_ratios: [1, 4, 10]
field_nx: 10
field_ny: 8
`
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 200.0, cfg.PTop)
	assert.Equal(t, []float64{-40, -20, 0, 20}, cfg.Isotherms)
	assert.Equal(t, []float64{1, 4, 10}, cfg.MixingRatios)
	assert.Equal(t, 10, cfg.FieldNX)
	assert.Equal(t, 8, cfg.FieldNY)

	// 記述のない項目は標準の設定
	assert.Equal(t, 1050.0, cfg.PBottom)
	assert.Equal(t, DefaultConfig().Isobars, cfg.Isobars)
}

func Test_LoadConfig_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadConfig(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("isobars: [1000, oops"), 0o644))
	_, err = LoadConfig(bad)
	assert.Error(t, err)

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("p_bottom: 100\np_top: 150\n"), 0o644))
	_, err = LoadConfig(invalid)
	assert.ErrorContains(t, err, "p_bottom")
}

func Test_Config_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"non-positive top", func(c *Config) { c.PTop = 0 }},
		{"inverted temperatures", func(c *Config) { c.TMax = c.TMin }},
		{"zero step", func(c *Config) { c.PStep = 0 }},
		{"step larger than range", func(c *Config) { c.PStep = 2000 }},
		{"negative isobar", func(c *Config) { c.Isobars = []float64{-10} }},
		{"zero mixing ratio", func(c *Config) { c.MixingRatios = []float64{0} }},
		{"mixing ratio cutoff below bottom", func(c *Config) { c.MixingRatioPTop = 2000 }},
		{"mixing ratio cutoff above top", func(c *Config) { c.MixingRatioPTop = 100 }},
		{"zero dry adiabat", func(c *Config) { c.DryAdiabats = []float64{300, 0} }},
		{"negative moist adiabat", func(c *Config) { c.MoistAdiabats = []float64{-280} }},
		{"tiny mesh", func(c *Config) { c.FieldNX = 1 }},
		{"zero reference pressure", func(c *Config) { c.ReferencePressure = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
