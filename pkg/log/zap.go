package log

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const defaultApplicationName = "weather-checker"

var (
	core    zapcore.Core
	appName = defaultApplicationName
	logger  *zap.Logger
	Logger  *zap.SugaredLogger
)

func init() {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.MessageKey = "msg"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.TimeKey = "@timestamp"
	encoderConfig.CallerKey = "logger_name"

	SetCore(zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(os.Stdout),
		zap.InfoLevel,
	))
}

// SetCore replaces the core behind the package loggers. Tests use it to capture output.
func SetCore(c zapcore.Core) {
	core = c
	build()
}

// SetApplicationName sets the logName field stamped on every entry. Blank names fall back to the default.
func SetApplicationName(name string) {
	if name == "" {
		name = defaultApplicationName
	}
	appName = name
	build()
}

func build() {
	logger = zap.New(core,
		zap.Fields(zap.String("logName", appName)),
		zap.AddCallerSkip(1))

	Logger = logger.Sugar()
}

// Named returns a child logger without the facade caller skip, for components that log directly through zap.
func Named(name string) *zap.Logger {
	return logger.WithOptions(zap.AddCallerSkip(-1)).Named(name)
}

// Info logs a message at InfoLevel. The message includes any fields passed at the log site, as well as any fields accumulated on the logger.
func Info(message string, fields ...zap.Field) {
	logger.Info(message, fields...)
}

// Warnw logs a message with some additional context at WarnLevel.
func Warnw(message string, keysAndValues ...interface{}) {
	Logger.Warnw(message, keysAndValues...)
}

// Error logs a message at ErrorLevel. The message includes any fields passed at the log site, as well as any fields accumulated on the logger.
func Error(message string, fields ...zap.Field) {
	logger.Error(message, fields...)
}

// Errorw logs a message with some additional context. The variadic key-value pairs are treated as they are in With.
func Errorw(message string, keysAndValues ...interface{}) {
	Logger.Errorw(message, keysAndValues...)
}

// Errorf formats the message according to the format specifier and logs it at ErrorLevel.
func Errorf(message string, args ...interface{}) {
	Logger.Errorf(message, args...)
}

// Fatal logs a message at FatalLevel, then calls os.Exit.
func Fatal(message string, fields ...zap.Field) {
	logger.Fatal(message, fields...)
}

// Fatalf formats the message according to the format specifier and calls os.Exit.
func Fatalf(message string, args ...interface{}) {
	Logger.Fatalf(message, args...)
}
