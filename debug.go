package stage

import (
	"time"

	"go.uber.org/zap"
)

// passStats holds per-pass timing and dispatch metrics.
// Only populated when Config.Debug is true.
type passStats struct {
	elapsed  time.Duration
	visited  [3]int // indexed by UpdateLevel
	drawn    int
	consumer uint64
	modal    bool
}

// debugLog writes pass stats at debug level.
func (r *Registry) debugLog(pass string, stats passStats) {
	if !r.cfg.Debug {
		return
	}
	if pass == "draw" {
		r.log.Debug("pass",
			zap.String("pass", pass),
			zap.Uint64("frame", r.frame),
			zap.Duration("elapsed", stats.elapsed),
			zap.Int("drawn", stats.drawn),
		)
		return
	}
	r.log.Debug("pass",
		zap.String("pass", pass),
		zap.Uint64("frame", r.frame),
		zap.Duration("elapsed", stats.elapsed),
		zap.Bool("modal", stats.modal),
		zap.Int(UpdateFull.String(), stats.visited[UpdateFull]),
		zap.Int(UpdateHoverOnly.String(), stats.visited[UpdateHoverOnly]),
		zap.Int(UpdateNoInput.String(), stats.visited[UpdateNoInput]),
		zap.Uint64("consumer", stats.consumer),
	)
	r.debugCheckEntityCount()
}

// debugMaxEntities is the live entity count above which a warning is logged.
const debugMaxEntities = 5000

func (r *Registry) debugCheckEntityCount() {
	if len(r.entities) > debugMaxEntities {
		r.log.Warn("entity count exceeds threshold",
			zap.Int("count", len(r.entities)),
			zap.Int("threshold", debugMaxEntities))
	}
}

// NewDevelopmentLogger returns a human-readable console logger suitable for
// SetLogger during development. Falls back to a no-op logger if zap cannot be
// configured.
func NewDevelopmentLogger() *zap.Logger {
	l, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return l.Named("stage")
}
