package main

import (
	"io"

	"github.com/hhkbp2/go-logging"
)

// ログの書式
const logFormat = "%(asctime)s %(levelname)s %(name)s: %(message)s"

// io.Writer を go-logging の Stream として扱う
type writerStream struct {
	w io.Writer
	n int64
}

func (s *writerStream) Tell() (int64, error) {
	return s.n, nil
}

func (s *writerStream) Write(str string) error {
	n, err := io.WriteString(s.w, str)
	s.n += int64(n)
	return err
}

func (s *writerStream) Flush() error {
	return nil
}

func (s *writerStream) Close() error {
	return nil
}

// ロガー "skewt" にレベル level を設定し、w に書き出すハンドラを追加します。
// level は DEBUG/INFO/WARN/ERROR/CRITICAL のいずれかで、それ以外は ERROR とします。
func setupLogging(level string, w io.Writer) (logging.Logger, logging.Handler) {
	logger := logging.GetLogger("skewt")
	switch level {
	case "DEBUG":
		logger.SetLevel(logging.LevelDebug)
	case "INFO":
		logger.SetLevel(logging.LevelInfo)
	case "WARN":
		logger.SetLevel(logging.LevelWarn)
	case "CRITICAL":
		logger.SetLevel(logging.LevelCritical)
	default:
		logger.SetLevel(logging.LevelError)
	}

	handler := logging.NewStreamHandler("stderr", logging.LevelNotset, &writerStream{w: w})
	handler.SetFormatter(logging.NewStandardFormatter(logFormat, "%Y-%m-%d %H:%M:%S"))
	logger.AddHandler(handler)
	logger.SetPropagate(false)

	return logger, handler
}
