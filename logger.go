package fluentdb

import (
	"context"
	"log/slog"
	"time"
)

// ----------------------------------------------------------------------------
// Logger Interface
// ----------------------------------------------------------------------------

// Logger, sistemin kara kutusudur.
//
// Çalışan SQL sorgularını, parametreleri, sorgunun ne kadar sürdüğünü ve
// olası hataları izlemek için kullanılan arayüzdür. Warn, davranışı değiştirmeyen
// ama dikkat gerektiren durumlar için kullanılır (örneğin WHERE'siz UPDATE).
type Logger interface {
	Log(ctx context.Context, query string, args []any, duration time.Duration, err error)
	Warn(ctx context.Context, msg string, attrs ...any)
}

// NopLogger (No-Operation Logger), "sessiz mod" için kullanılan bir logger uygulamasıdır.
// Tüm logları yutar ve hiçbir işlem yapmaz.
type NopLogger struct{}

// Log, gelen tüm veriyi yok sayar.
func (NopLogger) Log(context.Context, string, []any, time.Duration, error) {}

// Warn, gelen tüm veriyi yok sayar.
func (NopLogger) Warn(context.Context, string, ...any) {}

// SlogLogger, Logger arayüzünü log/slog üzerine uyarlar.
type SlogLogger struct {
	logger *slog.Logger
}

// NewSlogLogger, verilen slog.Logger'ı sarar. nil verilirse slog.Default() kullanılır.
//
// Örnek:
//
//	conn, err := fluentdb.Open(ctx, cfg,
//	    fluentdb.WithDebug(true),
//	    fluentdb.WithLogger(fluentdb.NewSlogLogger(slog.Default())),
//	)
func NewSlogLogger(l *slog.Logger) *SlogLogger {
	if l == nil {
		l = slog.Default()
	}
	return &SlogLogger{logger: l}
}

// Log, sorguyu debug seviyesinde, hatalı sorguyu error seviyesinde yazar.
func (s *SlogLogger) Log(ctx context.Context, query string, args []any, duration time.Duration, err error) {
	if err != nil {
		s.logger.ErrorContext(ctx, "query failed", "query", query, "args", args, "duration", duration, "error", err)
		return
	}
	s.logger.DebugContext(ctx, "query executed", "query", query, "args", args, "duration", duration)
}

// Warn, mesajı warn seviyesinde yazar.
func (s *SlogLogger) Warn(ctx context.Context, msg string, attrs ...any) {
	s.logger.WarnContext(ctx, msg, attrs...)
}
