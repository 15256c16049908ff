package debug

import (
	"fmt"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	appLogFile   = "app.log"
	errorLogFile = "error.log"
)

type ErrorLvl int

const (
	Info ErrorLvl = iota
	Debug
	Warn
	Error
)

var errLvl = map[ErrorLvl]string{
	Info:  "INFO",
	Debug: "DEBUG",
	Warn:  "WARN",
	Error: "ERROR",
}

func (e ErrorLvl) String() string {
	return errLvl[e]
}

var (
	mu        sync.RWMutex
	appLogger = zap.NewNop().Sugar()
	errLogger = zap.NewNop().Sugar()
)

// Init points the loggers to app.log and error.log inside dir.
// Debug messages are only written if debugMode is set.
// Until Init is called every message is discarded.
func Init(dir string, debugMode bool) error {
	if dir == "" {
		return fmt.Errorf("no log directory given")
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoder := zapcore.NewConsoleEncoder(encoderConfig)

	level := zap.InfoLevel
	if debugMode {
		level = zap.DebugLevel
	}

	appCore := zapcore.NewCore(encoder,
		zapcore.AddSync(&lumberjack.Logger{
			Filename: filepath.Join(dir, appLogFile),
			MaxSize:  10,
			MaxAge:   28,
			Compress: true,
		}),
		level,
	)

	errorCore := zapcore.NewCore(encoder,
		zapcore.AddSync(&lumberjack.Logger{
			Filename: filepath.Join(dir, errorLogFile),
			MaxSize:  10,
			MaxAge:   30,
			Compress: true,
		}),
		zap.ErrorLevel,
	)

	mu.Lock()
	defer mu.Unlock()

	appLogger = zap.New(appCore).Sugar()
	errLogger = zap.New(errorCore, zap.AddCaller(), zap.AddCallerSkip(2)).Sugar()

	return nil
}

// Close flushes buffered log entries
func Close() {
	mu.RLock()
	defer mu.RUnlock()

	_ = appLogger.Sync()
	_ = errLogger.Sync()
}

func LogInfo(args ...any) {
	logMsg(Info, args...)
}

func LogDebug(args ...any) {
	logMsg(Debug, args...)
}

func LogWarn(args ...any) {
	logMsg(Warn, args...)
}

func LogErr(args ...any) {
	logMsg(Error, args...)
}

func logMsg(level ErrorLvl, args ...any) {
	mu.RLock()
	defer mu.RUnlock()

	switch level {
	case Debug:
		appLogger.Debugln(args...)
	case Warn:
		appLogger.Warnln(args...)
	case Error:
		errLogger.Errorln(args...)
	default:
		appLogger.Infoln(args...)
	}
}
