// skewt
package main

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/akamensky/argparse"
	"github.com/hhkbp2/go-logging"
	"github.com/udawtr/skewt-go/bolton"
	"github.com/udawtr/skewt-go/skewt"
	"github.com/udawtr/skewt-go/sounding"
)

func main() {
	// コマンドライン引数の処理
	parser := argparse.NewParser("skewt", "Bolton (1980) moist thermodynamics and skew-T/log-P diagram data")

	configPath := parser.String("c", "config", &argparse.Options{
		Default: "",
		Help:    "図の設定ファイル (YAML)。省略時は標準の設定"})

	filename := parser.String("o", "output", &argparse.Options{
		Default: "",
		Help:    "保存ファイルパス"})

	logLevel := parser.Selector("", "log", []string{"DEBUG", "INFO", "WARN", "ERROR", "CRITICAL"}, &argparse.Options{
		Default: "ERROR",
		Help:    "ログレベルの設定"})

	pointCmd := parser.NewCommand("point", "1点の気温・気圧 (・露点温度) から熱力学量を計算する")
	temperature := pointCmd.Float("t", "temperature", &argparse.Options{
		Required: true,
		Help:     "気温 [C]"})
	pressure := pointCmd.Float("p", "pressure", &argparse.Options{
		Required: true,
		Help:     "気圧 [mb]"})
	dewpoint := pointCmd.Float("d", "dewpoint", &argparse.Options{
		Default: math.NaN(),
		Help:    "露点温度 [C]"})

	coordsCmd := parser.NewCommand("coords", "図上の座標 (x, y) を気温と気圧に変換する")
	x := coordsCmd.Float("x", "x", &argparse.Options{
		Required: true,
		Help:     "x 座標"})
	y := coordsCmd.Float("y", "y", &argparse.Options{
		Required: true,
		Help:     "y 座標"})

	profileCmd := parser.NewCommand("profile", "観測データ (YAML) の各層の熱力学量と図上の座標を出力する")
	soundingPath := profileCmd.String("f", "file", &argparse.Options{
		Required: true,
		Help:     "観測データファイル (YAML: p, z, t, td, wind_dir, wind_spd)"})

	gridCmd := parser.NewCommand("grid", "参照線 (等圧線、等温線、乾燥断熱線、等飽和混合比線) を出力する")
	fieldCmd := parser.NewCommand("field", "湿潤断熱線の偽相当温位の場を出力する")

	err := parser.Parse(os.Args)
	if err != nil {
		fmt.Print(parser.Usage(err))
		os.Exit(2)
	}

	// ログレベル設定 (ログは標準エラー出力へ)
	logger, _ := setupLogging(*logLevel, os.Stderr)
	defer logging.Shutdown()

	// 図の設定
	cfg := skewt.DefaultConfig()
	if *configPath != "" {
		logger.Infof("設定ファイル読み込み: %s", *configPath)
		cfg, err = skewt.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
	}

	var buf *bytes.Buffer = bytes.NewBuffer([]byte{})
	switch {
	case pointCmd.Happened():
		writeQuantities(buf, evaluatePoint(*temperature, *pressure, *dewpoint, cfg.ReferencePressure))

	case coordsCmd.Happened():
		tc, p := skewt.ToThermo(*x, *y)
		writeQuantities(buf, []quantity{
			{"T", "C", tc},
			{"P", "mb", p},
		})

	case profileCmd.Happened():
		logger.Infof("観測データ読み込み: %s", *soundingPath)
		s, err := sounding.Load(*soundingPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		prof, err := s.Derive(cfg.ReferencePressure)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		prof.ToCSV(buf)

	case gridCmd.Happened(), fieldCmd.Happened():
		diagram, err := skewt.NewDiagram(cfg)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		if gridCmd.Happened() {
			diagram.ToCSV(buf)
		} else {
			diagram.MoistAdiabats.ToCSV(buf)
		}
	}

	// 保存
	if *filename == "" {
		fmt.Print(buf.String())
	} else {
		logger.Infof("CSV保存: %s", *filename)
		err := os.WriteFile(*filename, buf.Bytes(), 0o644)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
	}

	logger.Infof("計算が終了しました")
}

// 出力する量
type quantity struct {
	Name  string
	Unit  string
	Value float64
}

// 気温 tc [℃]、気圧 p [mb]、露点温度 td [℃] から各熱力学量を計算します。
// td が NaN の場合は露点温度を使う量を省略します。計算できない量は NaN とします。
func evaluatePoint(tc float64, p float64, td float64, p0 float64) []quantity {
	logger := logging.GetLogger("skewt")

	value := func(name string, v float64, err error) float64 {
		if err != nil {
			logger.Warnf("%s: %v", name, err)
		}
		return v
	}

	tk := tc + bolton.CToK
	ws, err := bolton.SaturationMixingRatio(p, tc)
	ws = value("w_s", ws, err)
	theta, err := bolton.PotentialTemperature(tk, p, p0)
	theta = value("theta", theta, err)
	thetaES, err := bolton.SaturatedThetaEP(tc, p, p0)
	thetaES = value("theta_es", thetaES, err)
	x, y := skewt.FromThermo(tc, p)

	q := []quantity{
		{"T", "C", tc},
		{"P", "mb", p},
		{"e_s", "mb", bolton.SaturationVaporPressure(tc)},
		{"w_s", "kg/kg", ws},
		{"theta", "K", theta},
		{"theta_es", "K", thetaES},
		{"x", "", x},
		{"y", "", y},
	}
	if math.IsNaN(td) {
		return q
	}

	w, err := bolton.SaturationMixingRatio(p, td)
	w = value("w", w, err)
	rh, err := bolton.RelativeHumidity(tc, p, w)
	rh = value("RH", rh, err)
	tLCL, err := bolton.LCLTemperature(tk, rh)
	tLCL = value("T_LCL", tLCL, err)
	thetaEP, err := bolton.PseudoequivalentPotentialTemperature(tc, p, w, p0)
	thetaEP = value("theta_ep", thetaEP, err)
	xDew, _ := skewt.FromThermo(td, p)

	return append(q,
		quantity{"Td", "C", td},
		quantity{"w", "kg/kg", w},
		quantity{"RH", "%", rh},
		quantity{"T_LCL", "K", tLCL},
		quantity{"theta_ep", "K", thetaEP},
		quantity{"x_dew", "", xDew},
	)
}

// quantity,unit,value の CSV 形式で出力します。
func writeQuantities(buf *bytes.Buffer, q []quantity) {
	buf.WriteString("quantity,unit,value\n")
	for _, v := range q {
		buf.WriteString(fmt.Sprintf("%s,%s,%s\n", v.Name, v.Unit, strconv.FormatFloat(v.Value, 'f', -1, 64)))
	}
}
