package logger

import (
	"log"

	"go.uber.org/zap"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

var global = zap.NewNop()

// SetupLogger builds the zap logger for the given environment and installs it
// as the package-wide logger used by Logger, Info and Error.
func SetupLogger(env string) *zap.SugaredLogger {
	var (
		l   *zap.Logger
		err error
	)

	switch env {
	case envLocal, envDev:
		l, err = zap.NewDevelopment()
	case envProd:
		l, err = zap.NewProduction()
	default:
		l, err = zap.NewProduction()
	}
	if err != nil {
		log.Fatalf("cannot initialize zap logger: %s", err)
	}

	global = l

	return l.Sugar()
}

// Logger returns the non-sugared logger, e.g. for ginzap middleware.
func Logger() *zap.Logger {
	return global
}

func Info(msg string, fields ...zap.Field) {
	global.Info(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	global.Error(msg, fields...)
}

func Debug(msg string, fields ...zap.Field) {
	global.Debug(msg, fields...)
}
