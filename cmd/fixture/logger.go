package main

import (
	"fmt"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func newZapLogger(logDev bool, logLevel int, logEncoder string) (logr.Logger, error) {
	var zc zap.Config
	if logDev {
		zc = zap.NewDevelopmentConfig()
	} else {
		zc = zap.NewProductionConfig()
	}

	switch logEncoder {
	case "json", "console":
		zc.Encoding = logEncoder
	case "":
	default:
		return logr.Logger{}, fmt.Errorf("invalid encode name: %s", logEncoder)
	}

	// logr verbosity V(n) maps to zap level -n
	zc.Level = zap.NewAtomicLevelAt(zapcore.Level(-logLevel))
	zc.OutputPaths = []string{"stderr"}
	zc.EncoderConfig.EncodeTime = zapcore.RFC3339NanoTimeEncoder

	zl, err := zc.Build()
	if err != nil {
		return logr.Logger{}, fmt.Errorf("error configuring zap logger: %v", err)
	}
	return zapr.NewLogger(zl), nil
}
