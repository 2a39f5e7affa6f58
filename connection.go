package fluentdb

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/biyonik/go-fluent-db/dialect"
)

/*
=======================================================================================================================
  CONNECTION – Veritabanıyla Konuşan Tek Kanal

  Connection; sqlx.DB üzerine sürücüye özgü grammar'ı, loglamayı, sorgu istatistiklerini ve iç içe transaction
  durumunu ekleyen oturum nesnesidir. Query Builder'lar her zaman bir Connection üzerinden çalışır; aktif bir
  transaction varsa ifadeler otomatik olarak onun üzerinde yürütülür.

  Bir Connection tek bir mantıksal iş akışına aittir. Transaction derinliği bağlantıya özgü durumdur ve
  eş zamanlı iş akışları arasında paylaşılmamalıdır; her worker kendi Connection'ını kullanmalıdır.

  @author    Ahmet ALTUN
  @github    github.com/biyonik
  @linkedin  linkedin.com/in/biyonik
  @email     ahmet.altun60@gmail.com
=======================================================================================================================
*/

// Migrator, migration çalıştırıcısına açılan dar arayüzdür.
type Migrator interface {
	// Execute, sonuç satırı beklenmeyen bir ifadeyi (DDL) çalıştırır.
	Execute(ctx context.Context, query string) error

	// Query, bağlamalı bir SELECT çalıştırır ve tüm satırları döndürür.
	Query(ctx context.Context, query string, bindings ...any) ([]Row, error)
}

var (
	_ Migrator        = (*Connection)(nil)
	_ sqlx.ExtContext = (*sqlx.DB)(nil)
	_ sqlx.ExtContext = (*sqlx.Tx)(nil)
)

// Connection, bir veritabanı bağlantısını ve ona ait transaction durumunu temsil eder.
type Connection struct {
	db      *sqlx.DB
	grammar dialect.Grammar
	logger  Logger
	debug   bool
	prefix  string

	stats         *QueryStats
	slowThreshold time.Duration
	slowHook      SlowQueryHook

	mu     sync.Mutex
	tx     *sqlx.Tx
	depth  int
	closed bool
}

// NewConnection, mevcut bir *sql.DB'yi verilen sürücü için Connection'a sarar.
// Oturum pragmaları uygulanmaz; bunun için Open kullanılmalıdır.
//
// Örnek (testlerde sqlmock ile):
//
//	db, mock, _ := sqlmock.New()
//	conn := fluentdb.NewConnection(db, dialect.MySQL)
func NewConnection(db *sql.DB, driver dialect.Driver, opts ...Option) *Connection {
	return newConnection(sqlx.NewDb(db, driver.SQLDriverName()), driver, opts)
}

func newConnection(db *sqlx.DB, driver dialect.Driver, opts []Option) *Connection {
	c := &Connection{
		db:            db,
		grammar:       dialect.For(driver),
		logger:        NopLogger{},
		stats:         &QueryStats{},
		slowThreshold: DefaultSlowThreshold,
	}
	applyOptions(c, opts)
	return c
}

// DriverName, aktif sürücü etiketini döndürür.
func (c *Connection) DriverName() dialect.Driver {
	return c.grammar.Driver()
}

// Grammar, aktif SQL cümle oluşturma motorunu döndürür.
func (c *Connection) Grammar() dialect.Grammar {
	return c.grammar
}

// DB, alttaki *sqlx.DB referansına doğrudan erişim sağlar.
// Bu handle üzerinden çalışan ifadeler aktif transaction'ı görmez.
func (c *Connection) DB() *sqlx.DB {
	return c.db
}

// TablePrefix, tablo adlarının önüne eklenen prefix'i döndürür.
func (c *Connection) TablePrefix() string {
	return c.prefix
}

// IsDebug, debug modunun açık olup olmadığını döndürür.
func (c *Connection) IsDebug() bool {
	return c.debug
}

// Stats, bağlantının sorgu istatistiklerinin anlık görüntüsünü döndürür.
func (c *Connection) Stats() StatsSnapshot {
	return c.stats.Snapshot()
}

// ResetStats, sorgu istatistiklerini sıfırlar.
func (c *Connection) ResetStats() {
	c.stats.Reset()
}

// Table, yeni bir Query Builder oluşturur ve belirtilen tablo üzerinde çalışmaya başlar.
// Tablo prefix'i burada uygulanır.
func (c *Connection) Table(name string) *Builder {
	return newBuilder(c, c.grammar).Table(c.prefix + name)
}

// Raw, keyfi bir SQL ifadesini konumsal bağlamalarla çalıştırır ve tüm satırları döndürür.
// Her bağlama dialect.Cast'ten geçer.
func (c *Connection) Raw(ctx context.Context, query string, bindings ...any) ([]Row, error) {
	values := castAll(bindings)
	rows, err := c.query(ctx, query, values)
	if err != nil {
		return nil, wrapQueryError("raw", "", query, values, err)
	}
	return rows, nil
}

// Query, Migrator arayüzü için Raw'a delege eder.
func (c *Connection) Query(ctx context.Context, query string, bindings ...any) ([]Row, error) {
	return c.Raw(ctx, query, bindings...)
}

// Execute, sonuç satırı beklenmeyen bir ifadeyi çalıştırır.
func (c *Connection) Execute(ctx context.Context, query string) error {
	if _, err := c.exec(ctx, query, nil); err != nil {
		return wrapQueryError("execute", "", query, nil, err)
	}
	return nil
}

// Ping, bağlantının canlı olup olmadığını kontrol eder.
func (c *Connection) Ping(ctx context.Context) error {
	if err := c.db.PingContext(ctx); err != nil {
		return &ConnectionError{Driver: c.DriverName(), Op: "ping", Err: err}
	}
	return nil
}

// Close, açık bir transaction varsa geri alır ve bağlantıyı kapatır.
func (c *Connection) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true

	if c.tx != nil {
		_ = c.tx.Rollback()
		c.tx = nil
		c.depth = 0
	}
	return c.db.Close()
}

// ----------------------------------------------------------------------------
// Statement execution
// ----------------------------------------------------------------------------

// executor, aktif transaction varsa onu, yoksa bağlantı havuzunu döndürür.
func (c *Connection) executor() (sqlx.ExtContext, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil, ErrConnectionClosed
	}
	if c.tx != nil {
		return c.tx, nil
	}
	return c.db, nil
}

func (c *Connection) query(ctx context.Context, query string, bindings []dialect.Value) ([]Row, error) {
	ext, err := c.executor()
	if err != nil {
		return nil, err
	}
	return c.queryOn(ctx, ext, query, bindings)
}

func (c *Connection) exec(ctx context.Context, query string, bindings []dialect.Value) (sql.Result, error) {
	ext, err := c.executor()
	if err != nil {
		return nil, err
	}
	return c.execOn(ctx, ext, query, bindings)
}

func (c *Connection) queryOn(ctx context.Context, ext sqlx.ExtContext, query string, bindings []dialect.Value) (rows []Row, err error) {
	q := c.grammar.Rebind(query)
	args := dialect.Args(bindings)

	start := time.Now()
	defer func() { c.record(ctx, q, args, start, err, true) }()

	rs, err := ext.QueryxContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rs.Close()

	return scanRows(rs)
}

func (c *Connection) execOn(ctx context.Context, ext sqlx.ExtContext, query string, bindings []dialect.Value) (sql.Result, error) {
	res, st, err := c.execMeasured(ctx, ext, query, bindings)
	c.report(ctx, &st)
	return res, err
}

// execMeasured, execOn gibi çalışır ancak raporlamayı çağırana bırakır.
func (c *Connection) execMeasured(ctx context.Context, ext sqlx.ExtContext, query string, bindings []dialect.Value) (sql.Result, statement, error) {
	q := c.grammar.Rebind(query)
	args := dialect.Args(bindings)

	start := time.Now()
	res, err := ext.ExecContext(ctx, q, args...)
	return res, c.measure(q, args, start, err, false), err
}

// warnUnguarded, WHERE koşulu olmadan çalışan UPDATE/DELETE'i debug modunda görünür kılar.
func (c *Connection) warnUnguarded(ctx context.Context, op, table string) {
	if !c.debug {
		return
	}
	c.logger.Warn(ctx, "statement without WHERE clause affects every row", "op", op, "table", table)
}

func castAll(values []any) []dialect.Value {
	out := make([]dialect.Value, len(values))
	for i, v := range values {
		out[i] = dialect.Cast(v)
	}
	return out
}

func wrapQueryError(op, table, query string, bindings []dialect.Value, err error) error {
	if err == ErrConnectionClosed {
		return err
	}
	return NewQueryError(op, table, query, bindings, err)
}
