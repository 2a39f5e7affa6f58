package fluentdb

import "time"

// -----------------------------------------------------------------------------
//  Bu dosya; bağlantı davranışını tek noktadan yöneten *Option* mimarisini
//  içerir. Her With* fonksiyonu, Connection kurulurken dışarıdan enjekte edilen
//  küçük bir yapılandırma adımıdır.
//
//  -- @author   Ahmet ALTUN
//  -- @github   github.com/biyonik
//  -- @linkedin linkedin.com/in/biyonik
//  -- @email    ahmet.altun60@gmail.com
// -----------------------------------------------------------------------------

// Option tipi, bir *Connection* örneği üzerinde çalışan yapılandırma fonksiyonlarının
// temel imzasıdır.
type Option func(*Connection)

// WithDebug fonksiyonu debug modunu aktif veya pasif hâle getirir.
//
// Debug açık olduğunda:
// • Her ifade Logger üzerinden loglanır
// • WHERE koşulu olmadan çalışan UPDATE/DELETE için uyarı yazılır (davranış değişmez)
//
// Örnek:
//
//	conn := fluentdb.NewConnection(sqlDB, dialect.MySQL, fluentdb.WithDebug(true))
func WithDebug(enabled bool) Option {
	return func(c *Connection) {
		c.debug = enabled
	}
}

// WithLogger fonksiyonu özel bir logger tanımlamaya yarar.
// nil verilirse NopLogger kullanılır.
//
// Örnek:
//
//	conn := fluentdb.NewConnection(sqlDB, dialect.SQLite,
//	    fluentdb.WithDebug(true),
//	    fluentdb.WithLogger(fluentdb.NewSlogLogger(nil)),
//	)
func WithLogger(logger Logger) Option {
	return func(c *Connection) {
		if logger == nil {
			logger = NopLogger{}
		}
		c.logger = logger
	}
}

// WithTablePrefix fonksiyonu Connection.Table ile açılan tüm tablo adlarına
// otomatik olarak prefix ekler.
//
// Örnek:
//
//	conn := fluentdb.NewConnection(sqlDB, dialect.MySQL, fluentdb.WithTablePrefix("app_"))
//	// conn.Table("users")  →  "app_users"
func WithTablePrefix(prefix string) Option {
	return func(c *Connection) {
		c.prefix = prefix
	}
}

// WithSlowThreshold sets the threshold for slow query detection.
// Statements taking longer than this duration are counted as slow.
// Zero disables detection. Default is DefaultSlowThreshold.
func WithSlowThreshold(d time.Duration) Option {
	return func(c *Connection) {
		c.slowThreshold = d
	}
}

// WithSlowQueryHook sets a callback function for slow queries.
func WithSlowQueryHook(hook SlowQueryHook) Option {
	return func(c *Connection) {
		c.slowHook = hook
	}
}

// WithSlowQueryLog logs slow queries to the default slog logger.
// This is a convenience wrapper around WithSlowQueryHook.
func WithSlowQueryLog() Option {
	return WithSlowQueryHook(slogSlowQueryHook)
}

// applyOptions fonksiyonu, Connection oluşturulurken verilen Option'ları
// sırayla işler. nil Option'lar atlanır.
func applyOptions(c *Connection, opts []Option) {
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
}
