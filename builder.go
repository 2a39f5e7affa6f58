package fluentdb

import (
	"context"
	"fmt"
	"reflect"
	"strconv"

	"github.com/biyonik/go-fluent-db/dialect"
)

const defaultPrimaryKey = "id"

// Builder, SQL sorgularını akıcı bir arayüz (fluent interface) ile oluşturmak ve çalıştırmak için
// kullanılan ana yapıdır.
//
// Her WHERE koşulu dialect.Fragment olarak saklanır; fragment'lar yalnızca kaçırma ve operatör
// doğrulama fonksiyonları tarafından üretilebilir. Bağlamalar koşullarla aynı anda eklenir, böylece
// N'inci bağlama her zaman N'inci "?" yer tutucusuna karşılık gelir.
//
// Builder örnekleri **concurrent-safe** değildir; paralel kullanımlar için Clone() ile çoğaltılmalıdır.
//
// Genel kullanım örneği:
//
//	rows, err := conn.Table("users").
//	    Select("id", "name", "email").
//	    Where("status", "active").
//	    OrWhere("age", ">", 18).
//	    OrderByDesc("created_at").
//	    Limit(10).
//	    GetContext(ctx)
//
// Kullanım hataları (geçersiz operatör, boş IN listesi, negatif limit) builder üzerinde birikir;
// ilk hata korunur ve hiçbir SQL üretilmeden ilk terminal çağrıda döner.
//
// @author Ahmet ALTUN
// @github github.com/biyonik
// @linkedin linkedin.com/in/biyonik
// @email ahmet.altun60@gmail.com
type Builder struct {
	executor *Connection
	grammar  dialect.Grammar

	table   string
	columns []string

	predicates []dialect.Predicate
	bindings   []dialect.Value
	orders     []dialect.OrderClause

	limit  *int
	offset *int

	primaryKey string

	// Accumulated error
	err error
}

var _ dialect.QueryBuilder = (*Builder)(nil)

func newBuilder(executor *Connection, grammar dialect.Grammar) *Builder {
	return &Builder{
		executor:   executor,
		grammar:    grammar,
		columns:    make([]string, 0),
		predicates: make([]dialect.Predicate, 0),
		bindings:   make([]dialect.Value, 0),
		orders:     make([]dialect.OrderClause, 0),
		primaryKey: defaultPrimaryKey,
	}
}

// Table, sorguda kullanılacak tablo adını ayarlar.
func (b *Builder) Table(name string) *Builder {
	b.table = name
	return b
}

// From, Table için okunabilir alias sağlar.
func (b *Builder) From(name string) *Builder {
	return b.Table(name)
}

// Select, seçilecek kolon listesini verilenlerle değiştirir.
// Her kolon ayrı ayrı kaçırılır; boş liste "*" anlamına gelir.
func (b *Builder) Select(columns ...string) *Builder {
	b.columns = append(make([]string, 0, len(columns)), columns...)
	return b
}

// PrimaryKey, Find ve PostgreSQL Insert'in RETURNING cümlesinde kullanılan
// birincil anahtar kolonunu ayarlar. Varsayılan "id"'dir; boş string RETURNING'i kapatır.
func (b *Builder) PrimaryKey(column string) *Builder {
	b.primaryKey = column
	return b
}

// ----------------------------------------------------------------------------
// WHERE
// ----------------------------------------------------------------------------

// Where, AND ile bağlanan bir WHERE koşulu ekler.
//
// İki argümanlı form "=" operatörünü varsayar:
//
//	b.Where("status", "active")       // "status" = ?
//
// Üç argümanlı form operatörü whitelist'e göre doğrular:
//
//	b.Where("age", ">=", 18)          // "age" >= ?
//	b.Where("id", "IN", []int{1, 2})  // "id" IN (?, ?)
//	b.Where("deleted_at", "IS", nil)  // "deleted_at" IS NULL
//
// Geçersiz bir operatör ErrInvalidOperator ile builder'a kaydedilir.
func (b *Builder) Where(column string, operatorOrValue any, value ...any) *Builder {
	return b.where(dialect.And, column, operatorOrValue, value)
}

// OrWhere, Where ile aynıdır ancak koşulu OR ile bağlar.
func (b *Builder) OrWhere(column string, operatorOrValue any, value ...any) *Builder {
	return b.where(dialect.Or, column, operatorOrValue, value)
}

func (b *Builder) where(conn dialect.Connective, column string, operatorOrValue any, value []any) *Builder {
	switch len(value) {
	case 0:
		return b.push(conn, dialect.Compare(b.driver(), column, dialect.OperatorEqual), dialect.Cast(operatorOrValue))
	case 1:
	default:
		return b.setErr(fmt.Errorf("%w: where accepts at most one value, got %d", ErrInvalidArgument, len(value)))
	}

	raw, ok := operatorOrValue.(string)
	if !ok {
		return b.setErr(fmt.Errorf("%w: operator must be a string, got %T", ErrInvalidArgument, operatorOrValue))
	}
	op, err := dialect.ValidateOperator(raw)
	if err != nil {
		return b.setErr(err)
	}

	v := value[0]
	switch {
	case op.IsList():
		return b.whereIn(conn, column, v, op.Negated())
	case op.IsRange():
		values, ok := toSlice(v)
		if !ok || len(values) != 2 {
			return b.setErr(ErrInvalidBetween)
		}
		return b.whereBetween(conn, column, values[0], values[1], op.Negated())
	case op.IsNullCheck() && dialect.Cast(v).IsNull():
		return b.push(conn, dialect.NullCheck(b.driver(), column, op.Negated()))
	default:
		return b.push(conn, dialect.Compare(b.driver(), column, op), dialect.Cast(v))
	}
}

// WhereIn, "column IN (?, ?, …)" koşulu ekler. values bir slice veya array olmalıdır;
// her eleman için bir yer tutucu ve bir bağlama üretilir. Boş liste ErrEmptyWhereIn'dir.
func (b *Builder) WhereIn(column string, values any) *Builder {
	return b.whereIn(dialect.And, column, values, false)
}

// OrWhereIn, OR ile bağlanan WhereIn'dir.
func (b *Builder) OrWhereIn(column string, values any) *Builder {
	return b.whereIn(dialect.Or, column, values, false)
}

// WhereNotIn, "column NOT IN (?, ?, …)" koşulu ekler.
func (b *Builder) WhereNotIn(column string, values any) *Builder {
	return b.whereIn(dialect.And, column, values, true)
}

// OrWhereNotIn, OR ile bağlanan WhereNotIn'dir.
func (b *Builder) OrWhereNotIn(column string, values any) *Builder {
	return b.whereIn(dialect.Or, column, values, true)
}

func (b *Builder) whereIn(conn dialect.Connective, column string, values any, not bool) *Builder {
	list, ok := toSlice(values)
	if !ok {
		return b.setErr(fmt.Errorf("%w: IN expects a slice, got %T", ErrInvalidArgument, values))
	}
	if len(list) == 0 {
		return b.setErr(ErrEmptyWhereIn)
	}

	bindings := make([]dialect.Value, len(list))
	for i, v := range list {
		bindings[i] = dialect.Cast(v)
	}
	return b.push(conn, dialect.InList(b.driver(), column, len(list), not), bindings...)
}

// WhereBetween, "column BETWEEN ? AND ?" koşulu ekler.
func (b *Builder) WhereBetween(column string, min, max any) *Builder {
	return b.whereBetween(dialect.And, column, min, max, false)
}

// WhereNotBetween, "column NOT BETWEEN ? AND ?" koşulu ekler.
func (b *Builder) WhereNotBetween(column string, min, max any) *Builder {
	return b.whereBetween(dialect.And, column, min, max, true)
}

func (b *Builder) whereBetween(conn dialect.Connective, column string, min, max any, not bool) *Builder {
	return b.push(conn, dialect.Between(b.driver(), column, not), dialect.Cast(min), dialect.Cast(max))
}

// WhereLike, "column LIKE ?" koşulu ekler.
func (b *Builder) WhereLike(column, pattern string) *Builder {
	return b.Where(column, "LIKE", pattern)
}

// WhereNotLike, "column NOT LIKE ?" koşulu ekler.
func (b *Builder) WhereNotLike(column, pattern string) *Builder {
	return b.Where(column, "NOT LIKE", pattern)
}

// WhereNull, "column IS NULL" koşulu ekler. Bağlama eklemez.
func (b *Builder) WhereNull(column string) *Builder {
	return b.push(dialect.And, dialect.NullCheck(b.driver(), column, false))
}

// WhereNotNull, "column IS NOT NULL" koşulu ekler. Bağlama eklemez.
func (b *Builder) WhereNotNull(column string) *Builder {
	return b.push(dialect.And, dialect.NullCheck(b.driver(), column, true))
}

// OrWhereNull, OR ile bağlanan WhereNull'dur.
func (b *Builder) OrWhereNull(column string) *Builder {
	return b.push(dialect.Or, dialect.NullCheck(b.driver(), column, false))
}

// OrWhereNotNull, OR ile bağlanan WhereNotNull'dur.
func (b *Builder) OrWhereNotNull(column string) *Builder {
	return b.push(dialect.Or, dialect.NullCheck(b.driver(), column, true))
}

// push, koşulu ve bağlamalarını birlikte ekler. İlk koşulun bağlacı her zaman boştur.
func (b *Builder) push(conn dialect.Connective, frag dialect.Fragment, bindings ...dialect.Value) *Builder {
	if len(b.predicates) == 0 {
		conn = dialect.ConnectiveNone
	}
	b.predicates = append(b.predicates, dialect.Predicate{Fragment: frag, Connective: conn})
	b.bindings = append(b.bindings, bindings...)
	return b
}

// ----------------------------------------------------------------------------
// ORDER BY / LIMIT / OFFSET
// ----------------------------------------------------------------------------

// OrderBy, ORDER BY ifadesi ekler. "desc" dışındaki her yön ASC kabul edilir.
func (b *Builder) OrderBy(column, direction string) *Builder {
	b.orders = append(b.orders, dialect.OrderClause{
		Column:    column,
		Direction: dialect.ParseDirection(direction),
	})
	return b
}

// OrderByAsc, artan sıralama ekler.
func (b *Builder) OrderByAsc(column string) *Builder {
	b.orders = append(b.orders, dialect.OrderClause{Column: column, Direction: dialect.Asc})
	return b
}

// OrderByDesc, azalan sıralama ekler.
func (b *Builder) OrderByDesc(column string) *Builder {
	b.orders = append(b.orders, dialect.OrderClause{Column: column, Direction: dialect.Desc})
	return b
}

// Latest, created_at'e göre azalan sıralar.
func (b *Builder) Latest() *Builder {
	return b.OrderByDesc("created_at")
}

// Oldest, created_at'e göre artan sıralar.
func (b *Builder) Oldest() *Builder {
	return b.OrderByAsc("created_at")
}

// Limit, LIMIT değerini ayarlar. Negatif değer ErrNegativeLimit'tir.
func (b *Builder) Limit(n int) *Builder {
	if n < 0 {
		return b.setErr(ErrNegativeLimit)
	}
	b.limit = &n
	return b
}

// Offset, OFFSET değerini ayarlar. Negatif değer ErrNegativeLimit'tir.
func (b *Builder) Offset(n int) *Builder {
	if n < 0 {
		return b.setErr(ErrNegativeLimit)
	}
	b.offset = &n
	return b
}

// Take, Limit için alias'tır.
func (b *Builder) Take(n int) *Builder {
	return b.Limit(n)
}

// Skip, Offset için alias'tır.
func (b *Builder) Skip(n int) *Builder {
	return b.Offset(n)
}

// ForPage, sayfalama için limit ve offset ayarlar. Sayfalar 1'den başlar.
func (b *Builder) ForPage(page, perPage int) *Builder {
	if page < 1 {
		page = 1
	}
	return b.Limit(perPage).Offset((page - 1) * perPage)
}

// ----------------------------------------------------------------------------
// Helpers
// ----------------------------------------------------------------------------

// Clone, Builder'ın derin kopyasını oluşturur. Kopya aynı Connection'ı paylaşır.
func (b *Builder) Clone() *Builder {
	clone := &Builder{
		executor:   b.executor,
		grammar:    b.grammar,
		table:      b.table,
		primaryKey: b.primaryKey,
		err:        b.err,
	}

	clone.columns = append(make([]string, 0, len(b.columns)), b.columns...)
	clone.predicates = append(make([]dialect.Predicate, 0, len(b.predicates)), b.predicates...)
	clone.bindings = append(make([]dialect.Value, 0, len(b.bindings)), b.bindings...)
	clone.orders = append(make([]dialect.OrderClause, 0, len(b.orders)), b.orders...)

	if b.limit != nil {
		n := *b.limit
		clone.limit = &n
	}
	if b.offset != nil {
		n := *b.offset
		clone.offset = &n
	}

	return clone
}

// Err, birikmiş hatayı döndürür.
func (b *Builder) Err() error {
	return b.err
}

// When, koşullu olarak callback uygular.
func (b *Builder) When(condition bool, fn func(*Builder)) *Builder {
	if condition {
		fn(b)
	}
	return b
}

// Unless, When'in tersidir.
func (b *Builder) Unless(condition bool, fn func(*Builder)) *Builder {
	return b.When(!condition, fn)
}

func (b *Builder) setErr(err error) *Builder {
	if b.err == nil {
		b.err = err
	}
	return b
}

func (b *Builder) driver() dialect.Driver {
	if b.grammar == nil {
		return dialect.MySQL
	}
	return b.grammar.Driver()
}

// GetTable, tablo adını döndürür.
func (b *Builder) GetTable() string { return b.table }

// GetColumns, seçilen kolonları döndürür.
func (b *Builder) GetColumns() []string { return b.columns }

// GetPredicates, WHERE koşullarını eklenme sırasıyla döndürür.
func (b *Builder) GetPredicates() []dialect.Predicate { return b.predicates }

// GetBindings, WHERE bağlamalarını yer tutucu sırasıyla döndürür.
func (b *Builder) GetBindings() []dialect.Value { return b.bindings }

// GetOrders, ORDER BY koşullarını döndürür.
func (b *Builder) GetOrders() []dialect.OrderClause { return b.orders }

// GetLimit, LIMIT değerini döndürür.
func (b *Builder) GetLimit() *int { return b.limit }

// GetOffset, OFFSET değerini döndürür.
func (b *Builder) GetOffset() *int { return b.offset }

// GetPrimaryKey, birincil anahtar kolonunu döndürür.
func (b *Builder) GetPrimaryKey() string { return b.primaryKey }

// ----------------------------------------------------------------------------
// SQL rendering
// ----------------------------------------------------------------------------

// ToSQL, SELECT sorgusunu SQL string ve bağlamalarla döndürür.
func (b *Builder) ToSQL() (string, []dialect.Value, error) {
	return b.ToSelectSQL()
}

// ToSelectSQL, SELECT sorgusunu derler.
func (b *Builder) ToSelectSQL() (string, []dialect.Value, error) {
	if err := b.ready(); err != nil {
		return "", nil, err
	}
	return b.grammar.CompileSelect(b)
}

// ToCountSQL, COUNT(*) sorgusunu derler.
func (b *Builder) ToCountSQL() (string, []dialect.Value, error) {
	if err := b.ready(); err != nil {
		return "", nil, err
	}
	return b.grammar.CompileCount(b)
}

// ToInsertSQL, INSERT sorgusunu derler.
func (b *Builder) ToInsertSQL(data map[string]any) (string, []dialect.Value, error) {
	if err := b.ready(); err != nil {
		return "", nil, err
	}
	return b.grammar.CompileInsert(b, data)
}

// ToInsertManySQL, toplu INSERT sorgusunu derler.
func (b *Builder) ToInsertManySQL(rows []map[string]any) (string, []dialect.Value, error) {
	if err := b.ready(); err != nil {
		return "", nil, err
	}
	return b.grammar.CompileInsertMany(b, rows)
}

// ToUpdateSQL, UPDATE sorgusunu derler.
func (b *Builder) ToUpdateSQL(data map[string]any) (string, []dialect.Value, error) {
	if err := b.ready(); err != nil {
		return "", nil, err
	}
	return b.grammar.CompileUpdate(b, data)
}

// ToDeleteSQL, DELETE sorgusunu derler.
func (b *Builder) ToDeleteSQL() (string, []dialect.Value, error) {
	if err := b.ready(); err != nil {
		return "", nil, err
	}
	return b.grammar.CompileDelete(b)
}

func (b *Builder) ready() error {
	if b.err != nil {
		return b.err
	}
	if b.grammar == nil {
		return ErrNoExecutor
	}
	return nil
}

// connection, terminal işlemler için builder hatasını ve Connection varlığını kontrol eder.
func (b *Builder) connection() (*Connection, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.executor == nil {
		return nil, ErrNoExecutor
	}
	return b.executor, nil
}

// ----------------------------------------------------------------------------
// Execution
// ----------------------------------------------------------------------------

// GetContext, SELECT sorgusunu çalıştırır ve tüm satırları döndürür.
// Sonuç yoksa boş (nil olmayan) slice döner.
func (b *Builder) GetContext(ctx context.Context) ([]Row, error) {
	c, err := b.connection()
	if err != nil {
		return nil, err
	}

	sqlStr, args, err := b.ToSelectSQL()
	if err != nil {
		return nil, err
	}

	rows, err := c.query(ctx, sqlStr, args)
	if err != nil {
		return nil, wrapQueryError("select", b.table, sqlStr, args, err)
	}
	return rows, nil
}

// Get, GetContext'in context.Background() versiyonudur.
func (b *Builder) Get() ([]Row, error) {
	return b.GetContext(context.Background())
}

// FirstContext, LIMIT 1 ile sorguyu çalıştırır ve ilk satırı döndürür.
// Satır yoksa (nil, nil) döner.
func (b *Builder) FirstContext(ctx context.Context) (*Row, error) {
	rows, err := b.Limit(1).GetContext(ctx)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

// First, FirstContext'in context.Background() versiyonudur.
func (b *Builder) First() (*Row, error) {
	return b.FirstContext(context.Background())
}

// FindContext, Where(primaryKey, id).First() kısayoludur.
// primaryKey verilmezse builder'ın birincil anahtarı ("id") kullanılır.
func (b *Builder) FindContext(ctx context.Context, id any, primaryKey ...string) (*Row, error) {
	pk := b.primaryKey
	if len(primaryKey) > 0 && primaryKey[0] != "" {
		pk = primaryKey[0]
	}
	return b.Where(pk, id).FirstContext(ctx)
}

// Find, FindContext'in context.Background() versiyonudur.
func (b *Builder) Find(id any, primaryKey ...string) (*Row, error) {
	return b.FindContext(context.Background(), id, primaryKey...)
}

// CountContext, aynı WHERE koşuluyla satır sayısını döndürür.
// Projeksiyon, sıralama ve limit yok sayılır.
func (b *Builder) CountContext(ctx context.Context) (int64, error) {
	c, err := b.connection()
	if err != nil {
		return 0, err
	}

	sqlStr, args, err := b.ToCountSQL()
	if err != nil {
		return 0, err
	}

	rows, err := c.query(ctx, sqlStr, args)
	if err != nil {
		return 0, wrapQueryError("count", b.table, sqlStr, args, err)
	}
	if len(rows) == 0 || rows[0].Len() == 0 {
		return 0, nil
	}

	count, err := toInt64(rows[0].Values()[0])
	if err != nil {
		return 0, NewQueryError("count", b.table, sqlStr, args, err)
	}
	return count, nil
}

// Count, CountContext'in context.Background() versiyonudur.
func (b *Builder) Count() (int64, error) {
	return b.CountContext(context.Background())
}

// ExistsContext, sorguya uyan en az bir satır olup olmadığını döndürür.
func (b *Builder) ExistsContext(ctx context.Context) (bool, error) {
	count, err := b.CountContext(ctx)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Exists, ExistsContext'in context.Background() versiyonudur.
func (b *Builder) Exists() (bool, error) {
	return b.ExistsContext(context.Background())
}

// InsertContext, tek satırlık INSERT çalıştırır ve sürücünün bildirdiği son eklenen
// kimliği döndürür. Tüm değerler dialect.Cast'ten geçer (true → 1).
//
// PostgreSQL'de kimlik "RETURNING <primary key>" ile okunur ve kolonun tipinde döner;
// diğer sürücülerde int64'tür.
func (b *Builder) InsertContext(ctx context.Context, data map[string]any) (any, error) {
	c, err := b.connection()
	if err != nil {
		return nil, err
	}

	sqlStr, args, err := b.ToInsertSQL(data)
	if err != nil {
		return nil, err
	}

	if b.grammar.SupportsReturning() && b.primaryKey != "" {
		rows, err := c.query(ctx, sqlStr, args)
		if err != nil {
			return nil, wrapQueryError("insert", b.table, sqlStr, args, err)
		}
		if len(rows) == 0 || rows[0].Len() == 0 {
			return nil, nil
		}
		return rows[0].Values()[0], nil
	}

	result, err := c.exec(ctx, sqlStr, args)
	if err != nil {
		return nil, wrapQueryError("insert", b.table, sqlStr, args, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, NewQueryError("insert", b.table, sqlStr, args, err)
	}
	return id, nil
}

// Insert, InsertContext'in context.Background() versiyonudur.
func (b *Builder) Insert(data map[string]any) (any, error) {
	return b.InsertContext(context.Background(), data)
}

// InsertManyContext, tüm satırları tek bir çok satırlı INSERT ile ekler ve etkilenen satır
// sayısını döndürür. Kolon seti ilk satırdan alınır; farklı kolonlu satır ErrInconsistentBatch'tir.
func (b *Builder) InsertManyContext(ctx context.Context, rows []map[string]any) (int64, error) {
	c, err := b.connection()
	if err != nil {
		return 0, err
	}

	sqlStr, args, err := b.ToInsertManySQL(rows)
	if err != nil {
		return 0, err
	}

	return b.affected(ctx, c, "insert many", sqlStr, args)
}

// InsertMany, InsertManyContext'in context.Background() versiyonudur.
func (b *Builder) InsertMany(rows []map[string]any) (int64, error) {
	return b.InsertManyContext(context.Background(), rows)
}

// UpdateContext, UPDATE çalıştırır ve etkilenen satır sayısını döndürür.
// SET bağlamaları WHERE bağlamalarından önce gelir.
//
// WHERE koşulu yoksa tablodaki tüm satırlar güncellenir; debug modunda bu durum
// Logger.Warn ile bildirilir.
func (b *Builder) UpdateContext(ctx context.Context, data map[string]any) (int64, error) {
	c, err := b.connection()
	if err != nil {
		return 0, err
	}

	sqlStr, args, err := b.ToUpdateSQL(data)
	if err != nil {
		return 0, err
	}

	if len(b.predicates) == 0 {
		c.warnUnguarded(ctx, "update", b.table)
	}
	return b.affected(ctx, c, "update", sqlStr, args)
}

// Update, UpdateContext'in context.Background() versiyonudur.
func (b *Builder) Update(data map[string]any) (int64, error) {
	return b.UpdateContext(context.Background(), data)
}

// DeleteContext, DELETE çalıştırır ve etkilenen satır sayısını döndürür.
//
// WHERE koşulu yoksa tablodaki tüm satırlar silinir; debug modunda bu durum
// Logger.Warn ile bildirilir.
func (b *Builder) DeleteContext(ctx context.Context) (int64, error) {
	c, err := b.connection()
	if err != nil {
		return 0, err
	}

	sqlStr, args, err := b.ToDeleteSQL()
	if err != nil {
		return 0, err
	}

	if len(b.predicates) == 0 {
		c.warnUnguarded(ctx, "delete", b.table)
	}
	return b.affected(ctx, c, "delete", sqlStr, args)
}

// Delete, DeleteContext'in context.Background() versiyonudur.
func (b *Builder) Delete() (int64, error) {
	return b.DeleteContext(context.Background())
}

func (b *Builder) affected(ctx context.Context, c *Connection, op, sqlStr string, args []dialect.Value) (int64, error) {
	result, err := c.exec(ctx, sqlStr, args)
	if err != nil {
		return 0, wrapQueryError(op, b.table, sqlStr, args, err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return 0, NewQueryError(op, b.table, sqlStr, args, err)
	}
	return n, nil
}

// toSlice, slice veya array değerleri []any'ye açar. []byte tek bir değer sayılır.
func toSlice(v any) ([]any, bool) {
	switch vv := v.(type) {
	case nil:
		return nil, false
	case []any:
		return vv, true
	case []byte:
		return nil, false
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}

	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

// toInt64, COUNT sonucunu sürücüden bağımsız olarak int64'e çevirir.
func toInt64(v any) (int64, error) {
	switch n := v.(type) {
	case int64:
		return n, nil
	case int:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case uint64:
		return int64(n), nil
	case float64:
		return int64(n), nil
	case string:
		return strconv.ParseInt(n, 10, 64)
	case []byte:
		return strconv.ParseInt(string(n), 10, 64)
	default:
		return 0, fmt.Errorf("fluentdb: unexpected count type %T", v)
	}
}
