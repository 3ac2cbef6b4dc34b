// Package zapdiag bridges diag records onto a zap logger for host tools.
package zapdiag

import (
	"strings"

	"go.uber.org/zap"

	"drv8704-go/diag"
)

// Recorder implements diag.Recorder on top of zap. Global records are
// logged at warn so that production zap configs still show them.
type Recorder struct {
	log *zap.Logger
	lvl diag.Level
}

var _ diag.Recorder = (*Recorder)(nil)

func New(log *zap.Logger, lvl diag.Level) *Recorder {
	return &Recorder{log: log, lvl: lvl}
}

func (r *Recorder) SetLevel(lvl diag.Level) { r.lvl = lvl }

func (r *Recorder) Record(lvl diag.Level, tag string, fields ...string) {
	if !diag.Enabled(r.lvl, lvl) {
		return
	}
	msg := strings.Join(fields, " ")
	tf := zap.String("tag", tag)
	switch lvl {
	case diag.Info:
		r.log.Info(msg, tf)
	case diag.Error:
		r.log.Error(msg, tf)
	default:
		r.log.Warn(msg, tf)
	}
}
