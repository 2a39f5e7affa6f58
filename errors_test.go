package fluentdb_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	fluentdb "github.com/biyonik/go-fluent-db"
	"github.com/biyonik/go-fluent-db/dialect"
)

func TestQueryError(t *testing.T) {
	cause := errors.New("duplicate key")
	err := fluentdb.NewQueryError("insert", "users", `INSERT INTO "users" ("id") VALUES (?)`, []dialect.Value{dialect.Cast(1)}, cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, `fluentdb: insert on users failed: duplicate key [sql: INSERT INTO "users" ("id") VALUES (?)]`, err.Error())

	noTable := fluentdb.NewQueryError("raw", "", "", nil, cause)
	assert.Equal(t, "fluentdb: raw failed: duplicate key", noTable.Error())
}

func TestConnectionError(t *testing.T) {
	cause := errors.New("connection refused")
	err := &fluentdb.ConnectionError{Driver: dialect.Postgres, Op: "ping", Err: cause}

	assert.ErrorIs(t, err, fluentdb.ErrConnectionFailed)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "fluentdb: pgsql connection ping failed: connection refused", err.Error())
}

func TestConfigError(t *testing.T) {
	err := &fluentdb.ConfigError{Driver: dialect.MySQL, Missing: []string{"db.host", "db.user"}}
	assert.Equal(t, "fluentdb: mysql configuration is missing required keys: db.host, db.user", err.Error())

	err = &fluentdb.ConfigError{Reason: "nil configuration"}
	assert.Equal(t, "fluentdb: invalid configuration: nil configuration", err.Error())
}

func TestOpen_InvalidConfig(t *testing.T) {
	_, err := fluentdb.Open(context.Background(), nil)
	var cfgErr *fluentdb.ConfigError
	assert.ErrorAs(t, err, &cfgErr)

	_, err = fluentdb.Open(context.Background(), &fluentdb.Config{Driver: "oracle", Name: "x"})
	assert.ErrorAs(t, err, &cfgErr)
}

func TestSlogLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := fluentdb.NewSlogLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	ctx := context.Background()

	logger.Log(ctx, "SELECT 1", nil, time.Millisecond, nil)
	logger.Log(ctx, "SELECT broken", nil, time.Millisecond, errors.New("syntax error"))
	logger.Warn(ctx, "statement without WHERE clause affects every row", "table", "users")

	out := buf.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 3)
	assert.Contains(t, lines[0], "level=DEBUG")
	assert.Contains(t, lines[1], "level=ERROR")
	assert.Contains(t, lines[1], "syntax error")
	assert.Contains(t, lines[2], "level=WARN")
	assert.Contains(t, lines[2], "table=users")

	assert.NotNil(t, fluentdb.NewSlogLogger(nil))
}

func TestStatsSnapshot(t *testing.T) {
	s := fluentdb.StatsSnapshot{TotalQueries: 3, TotalExecs: 1, TotalDuration: 8 * time.Millisecond, SlowQueries: 1}

	assert.Equal(t, 2*time.Millisecond, s.AvgDuration())
	assert.Equal(t, "queries=3 execs=1 duration=8ms avg=2ms slow=1 errors=0", s.String())
	assert.Zero(t, fluentdb.StatsSnapshot{}.AvgDuration())
}
