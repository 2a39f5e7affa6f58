package fluentdb

import (
	"errors"
	"fmt"
	"strings"

	"github.com/biyonik/go-fluent-db/dialect"
	"github.com/biyonik/go-fluent-db/internal/validation"
)

// Sentinel errors for go-fluent-db.
// These errors can be checked using errors.Is().
var (
	// ErrInvalidOperator is returned when an operator outside the whitelist is used.
	ErrInvalidOperator = validation.ErrInvalidOperator

	// ErrNoTable is returned when a query is executed without specifying a table.
	ErrNoTable = dialect.ErrNoTable

	// ErrNoColumns is returned when an insert/update has no columns.
	ErrNoColumns = dialect.ErrNoColumns

	// ErrEmptyBatch is returned when InsertMany receives no rows.
	ErrEmptyBatch = dialect.ErrEmptyBatch

	// ErrInconsistentBatch is returned when InsertMany rows have different column sets.
	ErrInconsistentBatch = dialect.ErrInconsistentBatch

	// ErrEmptyWhereIn is returned when WhereIn is called with an empty slice.
	ErrEmptyWhereIn = errors.New("fluentdb: empty slice passed to WhereIn")

	// ErrInvalidBetween is returned when BETWEEN doesn't receive exactly 2 values.
	ErrInvalidBetween = errors.New("fluentdb: BETWEEN requires exactly 2 values")

	// ErrInvalidArgument is returned when Where receives an operator that is not a string
	// or a value shape the operator cannot use.
	ErrInvalidArgument = errors.New("fluentdb: invalid where arguments")

	// ErrNegativeLimit is returned when Limit or Offset receives a negative number.
	ErrNegativeLimit = errors.New("fluentdb: limit and offset must be non-negative")

	// ErrNoExecutor is returned when a terminal operation runs on a builder without a connection.
	ErrNoExecutor = errors.New("fluentdb: builder has no connection")

	// ErrNoActiveTransaction is returned by Commit and Rollback when no transaction is open.
	ErrNoActiveTransaction = errors.New("fluentdb: no active transaction")

	// ErrConnectionFailed is the sentinel behind every *ConnectionError.
	ErrConnectionFailed = errors.New("fluentdb: connection failed")

	// ErrConnectionClosed is returned when a closed connection is used.
	ErrConnectionClosed = errors.New("fluentdb: connection closed")
)

// QueryError, veritabanı motorunun reddettiği bir ifadeyi bağlamıyla sarar.
// Alttaki sürücü hatası Unwrap ile olduğu gibi erişilebilir; sınıflandırılmaz.
type QueryError struct {
	Op       string
	Table    string
	SQL      string
	Bindings []dialect.Value
	Err      error
}

func (e *QueryError) Error() string {
	var b strings.Builder
	b.WriteString("fluentdb: ")
	b.WriteString(e.Op)
	if e.Table != "" {
		b.WriteString(" on ")
		b.WriteString(e.Table)
	}
	b.WriteString(" failed: ")
	b.WriteString(e.Err.Error())
	if e.SQL != "" {
		b.WriteString(" [sql: ")
		b.WriteString(e.SQL)
		b.WriteString("]")
	}
	return b.String()
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// NewQueryError creates a new QueryError with context.
func NewQueryError(op, table, sql string, bindings []dialect.Value, err error) *QueryError {
	return &QueryError{Op: op, Table: table, SQL: sql, Bindings: bindings, Err: err}
}

// ConnectionError, bağlantının kurulamadığı veya kaybedildiği durumları temsil eder.
// Bu katman otomatik yeniden bağlanma veya tekrar deneme yapmaz.
type ConnectionError struct {
	Driver dialect.Driver
	Op     string
	Err    error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("fluentdb: %s connection %s failed: %v", e.Driver, e.Op, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

func (e *ConnectionError) Is(target error) bool {
	return target == ErrConnectionFailed
}

// ConfigError, eksik veya geçersiz yapılandırma anahtarlarını listeler.
type ConfigError struct {
	Driver  dialect.Driver
	Missing []string
	Reason  string
}

func (e *ConfigError) Error() string {
	if len(e.Missing) > 0 {
		return fmt.Sprintf("fluentdb: %s configuration is missing required keys: %s",
			e.Driver, strings.Join(e.Missing, ", "))
	}
	return "fluentdb: invalid configuration: " + e.Reason
}
