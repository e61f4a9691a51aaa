// Package debug provides env-gated tracing for the library internals.
//
// Each subsystem has a flag; setting MDICT_DEBUG_<FLAG> to any
// non-empty value turns its logger on. With the flag unset the logger
// is a no-op and costs nothing beyond the call.
package debug

import (
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Flag string

const (
	Path     Flag = "PATH"
	Classify Flag = "CLASSIFY"
	Cascade  Flag = "CASCADE"
	Cache    Flag = "CACHE"
)

// Enabled reports whether tracing is on for f.
func Enabled(f Flag) bool {
	return os.Getenv("MDICT_DEBUG_"+string(f)) != ""
}

var (
	baseOnce sync.Once
	base     *zap.SugaredLogger
	nop      = zap.NewNop().Sugar()
)

// Logger returns the logger for f, a no-op unless the flag is set.
func Logger(f Flag) *zap.SugaredLogger {
	if !Enabled(f) {
		return nop
	}
	baseOnce.Do(func() {
		enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
		core := zapcore.NewCore(enc, zapcore.Lock(os.Stderr), zapcore.DebugLevel)
		base = zap.New(core).Sugar()
	})
	return base.Named(strings.ToLower(string(f)))
}
