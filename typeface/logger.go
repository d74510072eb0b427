package typeface

import (
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/ggfx"
)

// loggerPtr holds a logger set with SetLogger, or nil to follow ggfx.
var loggerPtr atomic.Pointer[slog.Logger]

// SetLogger sets the logger for this package. Pass nil to go back to the
// logger configured with ggfx.SetLogger.
func SetLogger(l *slog.Logger) {
	loggerPtr.Store(l)
}

// Logger returns the logger used by this package.
func Logger() *slog.Logger {
	if l := loggerPtr.Load(); l != nil {
		return l
	}
	return ggfx.Logger()
}
