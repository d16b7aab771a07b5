package testutil

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func NewSimpleLogger(debug bool) *zap.SugaredLogger {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("04:05.000")
	log, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	return log.WithOptions(zap.IncreaseLevel(level(debug)), zap.AddStacktrace(zapcore.FatalLevel)).Sugar()
}

// NewObservedLogger returns logger which keeps log entries in memory, so that tests can inspect them
func NewObservedLogger(debug bool) (*zap.SugaredLogger, *observer.ObservedLogs) {
	core, logs := observer.New(level(debug))
	return zap.New(core).Sugar(), logs
}

func level(debug bool) zapcore.Level {
	if debug {
		return zapcore.DebugLevel
	}
	return zapcore.InfoLevel
}
