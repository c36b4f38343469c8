package sink

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ringlog/ringlog/core"
)

// ZapSink forwards committed records to a zap.Logger, so a host
// application that already ships its logs through zap can attach the
// bounded history as one more destination without double formatting
// on its side.
type ZapSink struct {
	logger *zap.Logger
}

// NewZapSink creates a sink that forwards to the given zap logger.
func NewZapSink(l *zap.Logger) *ZapSink {
	return &ZapSink{logger: l}
}

// Emit forwards the rendered line at the matching zap level. The
// line already carries timestamp and tag, so it is passed through as
// the message verbatim.
func (s *ZapSink) Emit(rec core.Record) error {
	if ce := s.logger.Check(zapLevel(rec.Priority), rec.Text); ce != nil {
		ce.Write()
	}
	return nil
}

// Close flushes buffered zap output.
func (s *ZapSink) Close() error {
	return s.logger.Sync()
}

func zapLevel(p core.Priority) zapcore.Level {
	switch p {
	case core.Debugging:
		return zapcore.DebugLevel
	case core.Warning:
		return zapcore.WarnLevel
	case core.Error:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
