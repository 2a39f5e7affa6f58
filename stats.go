package fluentdb

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"
)

// DefaultSlowThreshold is the slow query threshold used when none is configured.
const DefaultSlowThreshold = 100 * time.Millisecond

// QueryStats holds query execution statistics of a connection.
type QueryStats struct {
	// TotalQueries is the total number of row-returning statements executed.
	TotalQueries atomic.Int64
	// TotalExecs is the total number of exec statements executed.
	TotalExecs atomic.Int64
	// TotalDuration is the total time spent executing statements.
	TotalDuration atomic.Int64 // nanoseconds
	// SlowQueries is the count of statements exceeding the slow threshold.
	SlowQueries atomic.Int64
	// Errors is the count of failed statements.
	Errors atomic.Int64
}

// Snapshot returns a point-in-time copy of the statistics.
func (s *QueryStats) Snapshot() StatsSnapshot {
	return StatsSnapshot{
		TotalQueries:  s.TotalQueries.Load(),
		TotalExecs:    s.TotalExecs.Load(),
		TotalDuration: time.Duration(s.TotalDuration.Load()),
		SlowQueries:   s.SlowQueries.Load(),
		Errors:        s.Errors.Load(),
	}
}

// Reset resets all statistics to zero.
func (s *QueryStats) Reset() {
	s.TotalQueries.Store(0)
	s.TotalExecs.Store(0)
	s.TotalDuration.Store(0)
	s.SlowQueries.Store(0)
	s.Errors.Store(0)
}

// StatsSnapshot is a point-in-time snapshot of query statistics.
type StatsSnapshot struct {
	TotalQueries  int64
	TotalExecs    int64
	TotalDuration time.Duration
	SlowQueries   int64
	Errors        int64
}

// AvgDuration returns the average statement duration.
func (s StatsSnapshot) AvgDuration() time.Duration {
	total := s.TotalQueries + s.TotalExecs
	if total == 0 {
		return 0
	}
	return s.TotalDuration / time.Duration(total)
}

// String returns a human-readable summary of the statistics.
func (s StatsSnapshot) String() string {
	return fmt.Sprintf(
		"queries=%d execs=%d duration=%s avg=%s slow=%d errors=%d",
		s.TotalQueries, s.TotalExecs, s.TotalDuration, s.AvgDuration(),
		s.SlowQueries, s.Errors,
	)
}

// SlowQueryHook is a function called when a slow query is detected.
type SlowQueryHook func(ctx context.Context, query string, args []any, duration time.Duration)

func slogSlowQueryHook(_ context.Context, query string, args []any, duration time.Duration) {
	slog.Warn("slow query detected", "duration", duration, "query", query, "args", args)
}

// statement, tamamlanmış bir ifadenin logger ve slow query hook'una iletilecek özetidir.
type statement struct {
	query    string
	args     []any
	duration time.Duration
	err      error
	slow     bool
}

// record, tek bir ifadenin istatistiğini işler, debug modunda loglar ve
// eşik aşıldıysa slow query hook'unu çağırır.
func (c *Connection) record(ctx context.Context, query string, args []any, start time.Time, err error, isQuery bool) {
	st := c.measure(query, args, start, err, isQuery)
	c.report(ctx, &st)
}

// measure yalnızca sayaçları günceller; c.mu tutulurken çağrılabilir.
func (c *Connection) measure(query string, args []any, start time.Time, err error, isQuery bool) statement {
	duration := time.Since(start)
	if isQuery {
		c.stats.TotalQueries.Add(1)
	} else {
		c.stats.TotalExecs.Add(1)
	}
	c.stats.TotalDuration.Add(int64(duration))

	if err != nil {
		c.stats.Errors.Add(1)
	}

	slow := c.slowThreshold > 0 && duration > c.slowThreshold
	if slow {
		c.stats.SlowQueries.Add(1)
	}

	return statement{query: query, args: args, duration: duration, err: err, slow: slow}
}

// report, kullanıcı logger'ını ve hook'unu çağırır. Bunlar bağlantıya geri
// dönebileceği için report asla c.mu tutulurken çağrılmaz.
func (c *Connection) report(ctx context.Context, st *statement) {
	if st == nil {
		return
	}

	if c.debug {
		c.logger.Log(ctx, st.query, st.args, st.duration, st.err)
	}

	if st.slow && c.slowHook != nil {
		c.slowHook(ctx, st.query, st.args, st.duration)
	}
}
