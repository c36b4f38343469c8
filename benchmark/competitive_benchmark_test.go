package benchmark

import (
	"io"
	"log/slog"
	"testing"

	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ringlog/ringlog/store"
)

// ---------------------------------------------------------------------------
// Helpers – identical sink for every framework (io.Discard / no-op sink)
// ---------------------------------------------------------------------------

// newRinglogStore returns a store with a no-op console sink. The
// bounded history still does its full bookkeeping, which the other
// frameworks do not have; the comparison is intentionally unfair in
// their favor.
func newRinglogStore() *store.Store {
	return store.NewBuilder().
		WithConsole(discardSink{}).
		Build()
}

// newZapLogger returns a zap.Logger that writes JSON to io.Discard.
func newZapLogger() *zap.Logger {
	enc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	core := zapcore.NewCore(enc, zapcore.AddSync(io.Discard), zap.DebugLevel)
	return zap.New(core)
}

// newSlogLogger returns an slog.Logger that writes JSON to io.Discard.
func newSlogLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// newLogrusLogger returns a logrus.Logger that writes JSON to io.Discard.
func newLogrusLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetFormatter(&logrus.JSONFormatter{})
	l.SetLevel(logrus.DebugLevel)
	return l
}

// newZerologLogger returns a zerolog.Logger that writes JSON to io.Discard.
func newZerologLogger() zerolog.Logger {
	return zerolog.New(io.Discard).Level(zerolog.DebugLevel)
}

// ---------------------------------------------------------------------------
// Simple message
// ---------------------------------------------------------------------------

func BenchmarkRinglog_Message(b *testing.B) {
	s := newRinglogStore()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Message("simple log message")
	}
}

func BenchmarkZap_Message(b *testing.B) {
	l := newZapLogger()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Info("simple log message")
	}
}

func BenchmarkSlog_Message(b *testing.B) {
	l := newSlogLogger()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Info("simple log message")
	}
}

func BenchmarkLogrus_Message(b *testing.B) {
	l := newLogrusLogger()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Info("simple log message")
	}
}

func BenchmarkZerolog_Message(b *testing.B) {
	l := newZerologLogger()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Info().Msg("simple log message")
	}
}

// ---------------------------------------------------------------------------
// Message with mixed-type parts
// ---------------------------------------------------------------------------

func BenchmarkRinglog_Mixed(b *testing.B) {
	s := newRinglogStore()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Warning("request ", i, " took ", 12.5, "ms")
	}
}

func BenchmarkZap_Mixed(b *testing.B) {
	l := newZapLogger()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Warn("request", zap.Int("i", i), zap.Float64("ms", 12.5))
	}
}

func BenchmarkSlog_Mixed(b *testing.B) {
	l := newSlogLogger()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Warn("request", "i", i, "ms", 12.5)
	}
}

// ---------------------------------------------------------------------------
// Parallel commit under contention
// ---------------------------------------------------------------------------

func BenchmarkRinglog_Parallel(b *testing.B) {
	s := newRinglogStore()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			s.Message("parallel log message")
		}
	})
}

func BenchmarkZap_Parallel(b *testing.B) {
	l := newZapLogger()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			l.Info("parallel log message")
		}
	})
}

func BenchmarkZerolog_Parallel(b *testing.B) {
	l := newZerologLogger()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			l.Info().Msg("parallel log message")
		}
	})
}
