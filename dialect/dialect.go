// Package dialect, farklı veritabanları için SQL dilbilgisi (grammar) implementasyonlarını sağlar.
// Bu paket; sürücü etiketini (Driver), identifier kaçışını (Escape), değer dönüştürmeyi (Cast),
// güvenli WHERE parçalarını (Fragment) ve MySQL, PostgreSQL, SQLite gramerlerini barındırır.
//
// Yazar: Ahmet ALTUN
// Github: github.com/biyonik
// LinkedIn: linkedin.com/in/biyonik
// Email: ahmet.altun60@gmail.com
package dialect

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// ----------------------------------------------------------------------------
// Driver
// ----------------------------------------------------------------------------

// Driver, aktif veritabanı motorunu belirten kapalı bir etikettir.
type Driver string

const (
	MySQL    Driver = "mysql"
	Postgres Driver = "pgsql"
	SQLite   Driver = "sqlite"
)

// ParseDriver, yapılandırmadan gelen sürücü adını Driver değerine çevirir.
// "postgres", "postgresql" ve "sqlite3" gibi yaygın takma adlar kabul edilir.
func ParseDriver(name string) (Driver, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "mysql", "mariadb":
		return MySQL, nil
	case "pgsql", "postgres", "postgresql":
		return Postgres, nil
	case "sqlite", "sqlite3":
		return SQLite, nil
	default:
		return "", &DialectError{Message: "unsupported driver '" + name + "'"}
	}
}

// IsValid reports whether d is one of the supported drivers.
func (d Driver) IsValid() bool {
	return d == MySQL || d == Postgres || d == SQLite
}

// String returns the configuration spelling of the driver.
func (d Driver) String() string {
	return string(d)
}

// QuoteChar, sürücünün identifier tırnak karakterini döndürür.
// MySQL backtick, diğer tüm sürücüler çift tırnak kullanır.
func (d Driver) QuoteChar() byte {
	if d == MySQL {
		return '`'
	}
	return '"'
}

// SQLDriverName, database/sql'e kayıtlı sürücü adını döndürür.
func (d Driver) SQLDriverName() string {
	switch d {
	case Postgres:
		return "postgres"
	case SQLite:
		return "sqlite"
	default:
		return "mysql"
	}
}

// UnmarshalYAML, "db.driver" anahtarını takma adlarıyla birlikte çözümler.
func (d *Driver) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return err
	}
	parsed, err := ParseDriver(raw)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ----------------------------------------------------------------------------
// QueryBuilder Interface (import döngüsünü kırmak için)
// ----------------------------------------------------------------------------

// QueryBuilder, Grammar implementasyonlarının ihtiyaç duyduğu arayüzü tanımlar.
// Bu arayüz, ana paket ile dialect paketi arasındaki import döngüsünü kırmak için kullanılır.
type QueryBuilder interface {
	GetTable() string
	GetColumns() []string
	GetPredicates() []Predicate
	GetBindings() []Value
	GetOrders() []OrderClause
	GetLimit() *int
	GetOffset() *int
	GetPrimaryKey() string
}

// ----------------------------------------------------------------------------
// Grammar Interface
// ----------------------------------------------------------------------------

// Grammar, sorgu bileşenlerini veritabanına özgü SQL ifadelerine çevirir.
// Her veritabanı için (MySQL, PostgreSQL, SQLite) ayrı bir Grammar implementasyonu vardır.
// Üretilen SQL her zaman "?" yer tutucusu kullanır; sürücüye özgü biçime Rebind çevirir.
type Grammar interface {
	// Name, gramerin kimliğini döndürür (örn. "mysql", "pgsql", "sqlite").
	Name() string

	// Driver, gramerin ait olduğu sürücüyü döndürür.
	Driver() Driver

	// Wrap, bir sütun veya tablo adını veritabanına özgü tırnaklarla sarar.
	Wrap(identifier string) string

	// Rebind, "?" yer tutucularını sürücünün beklediği biçime çevirir.
	Rebind(query string) string

	// CompileSelect, SELECT sorgusunu derler.
	CompileSelect(b QueryBuilder) (string, []Value, error)

	// CompileCount, projeksiyon, sıralama ve limit yok sayılarak COUNT(*) sorgusunu derler.
	CompileCount(b QueryBuilder) (string, []Value, error)

	// CompileInsert, INSERT sorgusunu derler.
	CompileInsert(b QueryBuilder, data map[string]any) (string, []Value, error)

	// CompileInsertMany, toplu INSERT sorgusunu derler.
	CompileInsertMany(b QueryBuilder, rows []map[string]any) (string, []Value, error)

	// CompileUpdate, UPDATE sorgusunu derler. SET bağlamaları WHERE bağlamalarından önce gelir.
	CompileUpdate(b QueryBuilder, data map[string]any) (string, []Value, error)

	// CompileDelete, DELETE sorgusunu derler.
	CompileDelete(b QueryBuilder) (string, []Value, error)

	// CompileSavepoint, RELEASE ve ROLLBACK TO ifadeleri, iç içe transaction komutlarını üretir.
	CompileSavepoint(level int) string
	CompileReleaseSavepoint(level int) string
	CompileRollbackToSavepoint(level int) string

	// SessionPragmas, bağlantı açıldığında bir kez çalıştırılacak oturum komutlarını döndürür.
	SessionPragmas() []string

	// SupportsReturning, gramerin RETURNING cümlesini destekleyip desteklemediğini döndürür.
	SupportsReturning() bool
}

// For returns the grammar of the given driver.
func For(d Driver) Grammar {
	switch d {
	case Postgres:
		return NewPostgresGrammar()
	case SQLite:
		return NewSQLiteGrammar()
	default:
		return NewMySQLGrammar()
	}
}

// ----------------------------------------------------------------------------
// WHERE Predicate Types
// ----------------------------------------------------------------------------

// Connective, bir koşulu öncekine bağlayan boolean bağlaçtır.
// İlk koşul her zaman ConnectiveNone taşır.
type Connective int

const (
	ConnectiveNone Connective = iota
	And
	Or
)

// String, SQL için bağlaç kelimesini döndürür.
func (c Connective) String() string {
	switch c {
	case And:
		return "AND"
	case Or:
		return "OR"
	default:
		return ""
	}
}

// Predicate, tek bir WHERE koşulunu ve onu öncekine bağlayan bağlacı temsil eder.
type Predicate struct {
	Fragment   Fragment
	Connective Connective
}

// ----------------------------------------------------------------------------
// ORDER BY Types
// ----------------------------------------------------------------------------

// Direction, sıralama yönünü belirtir.
type Direction int

const (
	Asc Direction = iota
	Desc
)

// ParseDirection, "desc" (büyük/küçük harf duyarsız) dışındaki her girdiyi Asc kabul eder.
func ParseDirection(s string) Direction {
	if strings.EqualFold(strings.TrimSpace(s), "desc") {
		return Desc
	}
	return Asc
}

// String returns ASC or DESC.
func (d Direction) String() string {
	if d == Desc {
		return "DESC"
	}
	return "ASC"
}

// OrderClause, ORDER BY ifadesini temsil eder. Column render anında kaçırılır.
type OrderClause struct {
	Column    string
	Direction Direction
}

// ----------------------------------------------------------------------------
// Sentinel Errors (dialect-specific)
// ----------------------------------------------------------------------------

// Dialect implementasyonları için ortak hatalar.
// Ana paket ile import döngüsünü önlemek için burada tanımlanmıştır.
var (
	ErrNoTable           = &DialectError{Message: "no table specified"}
	ErrNoColumns         = &DialectError{Message: "no columns specified"}
	ErrEmptyBatch        = &DialectError{Message: "cannot insert empty batch"}
	ErrInconsistentBatch = &DialectError{Message: "inconsistent columns in batch"}
)

// DialectError, dialect'e özgü hataları temsil eder.
type DialectError struct {
	Message string
}

// Error, hatayı string olarak döndürür.
func (e *DialectError) Error() string {
	return "dialect: " + e.Message
}
