// Package runlog provides the per-run extraction log: one timestamped file
// in the output directory, mirrored to stdout. Each run constructs its own
// Log and closes it when done; nothing global is mutated.
package runlog

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log writes `<timestamp> - <LEVEL> - <message>` lines to both the run's
// log file and stdout.
type Log struct {
	*zap.SugaredLogger

	// Path is the log file's location.
	Path string

	file *os.File
}

// New creates extraction_log_<YYYYMMDD_HHMMSS>.log inside dir, which must
// already exist.
func New(dir string, level zapcore.Level) (*Log, error) {
	name := fmt.Sprintf("extraction_log_%s.log", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)

	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create log file: %w", err)
	}

	encCfg := zapcore.EncoderConfig{
		TimeKey:          "ts",
		LevelKey:         "level",
		MessageKey:       "msg",
		EncodeTime:       zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05,000"),
		EncodeLevel:      zapcore.CapitalLevelEncoder,
		ConsoleSeparator: " - ",
	}
	enc := zapcore.NewConsoleEncoder(encCfg)

	core := zapcore.NewTee(
		zapcore.NewCore(enc, zapcore.AddSync(file), level),
		zapcore.NewCore(enc, zapcore.Lock(os.Stdout), level),
	)

	return &Log{
		SugaredLogger: zap.New(core).Sugar(),
		Path:          path,
		file:          file,
	}, nil
}

// Close flushes buffered entries and closes the log file.
func (l *Log) Close() error {
	_ = l.Sync()
	return l.file.Close()
}
