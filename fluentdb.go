// Package fluentdb, Go dilinde akıcı ve güvenli SQL sorguları oluşturmayı, çalıştırmayı ve
// iç içe transaction'ları yönetmeyi sağlayan bir kütüphanedir.
//
// Yazar: Ahmet ALTUN
// Github: github.com/biyonik
// LinkedIn: linkedin.com/in/biyonik
// Email: ahmet.altun60@gmail.com
package fluentdb

import (
	"context"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/biyonik/go-fluent-db/dialect"
)

// Version, go-fluent-db kütüphanesinin mevcut sürümünü belirtir.
const Version = "0.2.0"

// Open, yapılandırmayı doğrular, sürücüye özgü DSN ile bağlantıyı açar, havuz
// ayarlarını uygular ve bağlantıyı doğrular. SQLite için oturum pragmaları
// bağlantı açılır açılmaz bir kez çalıştırılır.
//
// Başarısız bağlantı *ConnectionError döndürür; yeniden deneme yapılmaz.
//
// Örnek:
//
//	cfg, err := fluentdb.LoadConfigFile("config.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	conn, err := fluentdb.Open(ctx, cfg, fluentdb.WithDebug(true))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer conn.Close()
func Open(ctx context.Context, cfg *Config, opts ...Option) (*Connection, error) {
	if cfg == nil {
		return nil, &ConfigError{Reason: "nil configuration"}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	db, err := sqlx.Open(cfg.Driver.SQLDriverName(), cfg.DSN())
	if err != nil {
		return nil, &ConnectionError{Driver: cfg.Driver, Op: "open", Err: err}
	}

	applyPool(db, cfg)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, &ConnectionError{Driver: cfg.Driver, Op: "ping", Err: err}
	}

	if cfg.Prefix != "" {
		opts = append([]Option{WithTablePrefix(cfg.Prefix)}, opts...)
	}
	conn := newConnection(db, cfg.Driver, opts)

	for _, pragma := range conn.grammar.SessionPragmas() {
		if _, err := conn.exec(ctx, pragma, nil); err != nil {
			_ = db.Close()
			return nil, &ConnectionError{Driver: cfg.Driver, Op: "configure", Err: err}
		}
	}

	return conn, nil
}

// applyPool, bağlantı havuzu ayarlarını uygular.
//
// SQLite tek bir bağlantıya sabitlenir: bellek içi veritabanı bağlantıya özgüdür
// ve pragmalar yalnızca bir kez çalıştırılır.
func applyPool(db *sqlx.DB, cfg *Config) {
	if cfg.Driver == dialect.SQLite {
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
		db.SetConnMaxLifetime(0)
		db.SetConnMaxIdleTime(0)
		return
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}
	if cfg.ConnMaxIdleTime > 0 {
		db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)
	}
}

// New, veritabanı bağlantısı olmadan yeni bir Builder oluşturur.
// SQL stringleri oluşturmak için kullanılır; çalıştırma metotları ErrNoExecutor döndürür.
//
// Örnek:
//
//	sql, bindings, err := fluentdb.New(dialect.Postgres).
//	    Table("users").
//	    Where("status", "active").
//	    ToSQL()
func New(driver dialect.Driver) *Builder {
	return newBuilder(nil, dialect.For(driver))
}
