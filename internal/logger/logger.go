package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log is the global SugaredLogger instance.
// Initialized with a no-op logger until Initialize is called.
var Log *zap.SugaredLogger = zap.NewNop().Sugar()

// Initialize sets up the global logger with the given log level.
// When logFile is not empty, entries are written both to stdout and to a
// size-rotated file.
func Initialize(level string, logFile string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}

	if logFile == "" {
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(lvl)

		logger, err := cfg.Build()
		if err != nil {
			return err
		}

		Log = logger.Sugar()
		return nil
	}

	rotating := &lumberjack.Logger{
		Filename: logFile,
		MaxSize:  50, // megabytes
		Compress: true,
	}

	encoder := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	core := zapcore.NewTee(
		zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), lvl),
		zapcore.NewCore(encoder, zapcore.AddSync(rotating), lvl),
	)

	Log = zap.New(core, zap.AddCaller()).Sugar()
	return nil
}
