package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	tmlog "github.com/tendermint/tendermint/libs/log"
)

const (
	FormatPlain = "plain"
	FormatJSON  = "json"
)

var (
	customLog tmlog.Logger = tmlog.NewNopLogger()
	mu        sync.RWMutex
)

// InitLogger writes to w at the given level ("debug", "info", "error" or
// "none") in plain or json format.
func InitLogger(w io.Writer, level, format string) error {
	var base tmlog.Logger
	switch format {
	case "", FormatPlain:
		base = tmlog.NewTMLogger(tmlog.NewSyncWriter(w))
	case FormatJSON:
		base = tmlog.NewTMJSONLogger(tmlog.NewSyncWriter(w))
	default:
		return fmt.Errorf("unknown log format %q", format)
	}

	if level == "" {
		level = "info"
	}
	option, err := tmlog.AllowLevel(level)
	if err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()
	customLog = tmlog.NewFilter(base, option)
	return nil
}

// ResetLogger moves logging to <home>/logs/<binary>.<pid>.log.
func ResetLogger(home, level, format string) (string, error) {
	dir := filepath.Join(home, "logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create log directory %s: %w", dir, err)
	}

	name := fmt.Sprintf("%s.%d.log", filepath.Base(os.Args[0]), os.Getpid())
	path := filepath.Join(dir, name)
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create log file: %w", err)
	}

	Infof("From now on, all logs will be written to %s", path)
	return path, InitLogger(file, level, format)
}

// Logger returns the current logger, for components taking a tendermint logger.
func Logger() tmlog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return customLog
}

func Debug(msg string, keyvals ...interface{}) {
	Logger().Debug(msg, keyvals...)
}

func Debugf(format string, v ...any) {
	Logger().Debug(fmt.Sprintf(format, v...))
}

func Info(msg string, keyvals ...interface{}) {
	Logger().Info(msg, keyvals...)
}

func Infof(format string, v ...any) {
	Logger().Info(fmt.Sprintf(format, v...))
}

func Error(msg string, keyvals ...interface{}) {
	Logger().Error(msg, keyvals...)
}

func Errorf(format string, v ...any) {
	Logger().Error(fmt.Sprintf(format, v...))
}

func Fatalf(format string, v ...any) {
	Logger().Error(fmt.Sprintf(format, v...))
	os.Exit(1)
}
