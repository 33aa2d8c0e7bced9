package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var sugar *zap.SugaredLogger

// Init configures the process-wide logger. Development gets a console
// encoder with debug enabled, everything else JSON at info.
func Init(environment string) {
	var cfg zap.Config
	if environment == "development" {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		cfg = zap.NewProductionConfig()
	}

	log, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		panic(err)
	}

	sugar = log.Sugar()
}

func logger() *zap.SugaredLogger {
	if sugar == nil {
		Init("development")
	}
	return sugar
}

func Debug(msg string, keysAndValues ...any) {
	logger().Debugw(msg, keysAndValues...)
}

func Info(msg string, keysAndValues ...any) {
	logger().Infow(msg, keysAndValues...)
}

func Warn(msg string, keysAndValues ...any) {
	logger().Warnw(msg, keysAndValues...)
}

func Error(msg string, keysAndValues ...any) {
	logger().Errorw(msg, keysAndValues...)
}

func Fatal(msg string, keysAndValues ...any) {
	logger().Fatalw(msg, keysAndValues...)
}

func Sync() {
	if sugar != nil {
		_ = sugar.Sync()
	}
}
