package dialect

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

/*
 * ----------------------------------------------------------------------------
 * BASE GRAMMAR
 * ----------------------------------------------------------------------------
 *
 * Üç sürücünün ortak derleme kuralları burada toplanır. Sürücüler arasındaki
 * farklar (tırnak karakteri, limitsiz OFFSET yazımı, yer tutucu biçimi,
 * RETURNING desteği, oturum pragmaları) alan değerleri veya gömülü tiplerin
 * override ettiği metotlarla ifade edilir.
 *
 * WHERE koşulları düz bir AND/OR zinciri olarak, eklendikleri sırayla ve
 * parantez eklenmeden render edilir. "(a OR b) AND c" bu API ile ifade edilemez.
 *
 * @author Ahmet ALTUN
 * @github github.com/biyonik
 * @linkedin linkedin.com/in/biyonik
 * @email ahmet.altun60@gmail.com
 * ----------------------------------------------------------------------------
 */

// BaseGrammar, tüm gramerlerin paylaştığı derleme mantığını içerir.
type BaseGrammar struct {
	name   string
	driver Driver

	// offsetOnlyLimit, LIMIT verilmeden OFFSET kullanıldığında yazılacak limit değeridir.
	// Boş ise yalnızca OFFSET yazılır.
	offsetOnlyLimit string
}

// Name, gramerin kimliğini döndürür.
func (g *BaseGrammar) Name() string { return g.name }

// Driver, gramerin sürücüsünü döndürür.
func (g *BaseGrammar) Driver() Driver { return g.driver }

// Wrap, identifier'ı sürücünün tırnak karakteriyle kaçırır.
func (g *BaseGrammar) Wrap(identifier string) string {
	return Escape(identifier, g.driver)
}

// Rebind, "?" yer tutucularını olduğu gibi bırakır.
func (g *BaseGrammar) Rebind(query string) string { return query }

// SessionPragmas, varsayılan olarak boştur.
func (g *BaseGrammar) SessionPragmas() []string { return nil }

// SupportsReturning, varsayılan olarak false döner.
func (g *BaseGrammar) SupportsReturning() bool { return false }

// CompileSavepoint, "SAVEPOINT savepoint_<level>" ifadesini üretir.
func (g *BaseGrammar) CompileSavepoint(level int) string {
	return "SAVEPOINT " + savepointName(level)
}

// CompileReleaseSavepoint, "RELEASE SAVEPOINT savepoint_<level>" ifadesini üretir.
func (g *BaseGrammar) CompileReleaseSavepoint(level int) string {
	return "RELEASE SAVEPOINT " + savepointName(level)
}

// CompileRollbackToSavepoint, "ROLLBACK TO SAVEPOINT savepoint_<level>" ifadesini üretir.
func (g *BaseGrammar) CompileRollbackToSavepoint(level int) string {
	return "ROLLBACK TO SAVEPOINT " + savepointName(level)
}

func savepointName(level int) string {
	return "savepoint_" + strconv.Itoa(level)
}

// CompileSelect, bir SELECT sorgusunu parçalarından birleştirerek inşa eder.
// Sıra: SELECT -> FROM -> WHERE -> ORDER BY -> LIMIT -> OFFSET.
func (g *BaseGrammar) CompileSelect(b QueryBuilder) (string, []Value, error) {
	if b.GetTable() == "" {
		return "", nil, ErrNoTable
	}

	var sql strings.Builder

	sql.WriteString("SELECT ")
	sql.WriteString(g.compileColumns(b.GetColumns()))
	sql.WriteString(" FROM ")
	sql.WriteString(g.Wrap(b.GetTable()))

	args, err := g.compileWhereInto(&sql, b)
	if err != nil {
		return "", nil, err
	}

	if orders := b.GetOrders(); len(orders) > 0 {
		parts := make([]string, len(orders))
		for i, order := range orders {
			parts[i] = g.Wrap(order.Column) + " " + order.Direction.String()
		}
		sql.WriteString(" ORDER BY ")
		sql.WriteString(strings.Join(parts, ", "))
	}

	limit, offset := b.GetLimit(), b.GetOffset()
	switch {
	case limit != nil:
		sql.WriteString(" LIMIT ")
		sql.WriteString(strconv.Itoa(*limit))
	case offset != nil && g.offsetOnlyLimit != "":
		sql.WriteString(" LIMIT ")
		sql.WriteString(g.offsetOnlyLimit)
	}

	if offset != nil {
		sql.WriteString(" OFFSET ")
		sql.WriteString(strconv.Itoa(*offset))
	}

	return sql.String(), args, nil
}

// CompileCount, aynı WHERE koşuluyla COUNT(*) sorgusu oluşturur.
// Projeksiyon, sıralama, limit ve offset yok sayılır.
func (g *BaseGrammar) CompileCount(b QueryBuilder) (string, []Value, error) {
	if b.GetTable() == "" {
		return "", nil, ErrNoTable
	}

	var sql strings.Builder
	sql.WriteString("SELECT COUNT(*) AS ")
	sql.WriteString(g.Wrap("aggregate"))
	sql.WriteString(" FROM ")
	sql.WriteString(g.Wrap(b.GetTable()))

	args, err := g.compileWhereInto(&sql, b)
	if err != nil {
		return "", nil, err
	}

	return sql.String(), args, nil
}

// CompileInsert, tekil bir kayıt ekleme sorgusu oluşturur.
//
// Anahtarlar alfabetik sıralanır (deterministik çıktı için) ve her değer Cast'ten geçer.
func (g *BaseGrammar) CompileInsert(b QueryBuilder, data map[string]any) (string, []Value, error) {
	if b.GetTable() == "" {
		return "", nil, ErrNoTable
	}
	if len(data) == 0 {
		return "", nil, ErrNoColumns
	}

	keys := sortedKeys(data)
	args := make([]Value, len(keys))
	for i, key := range keys {
		args[i] = Cast(data[key])
	}

	var sql strings.Builder
	sql.WriteString("INSERT INTO ")
	sql.WriteString(g.Wrap(b.GetTable()))
	sql.WriteString(" (")
	sql.WriteString(g.wrapAll(keys))
	sql.WriteString(") VALUES ")
	sql.WriteString(placeholderGroup(len(keys)))

	return sql.String(), args, nil
}

// CompileInsertMany, tek bir sorguda çoklu kayıt ekleme işlemi oluşturur.
//
// İlk satırın anahtarları şekli belirler; farklı kolon kümesine sahip her satır
// ErrInconsistentBatch ile reddedilir.
func (g *BaseGrammar) CompileInsertMany(b QueryBuilder, rows []map[string]any) (string, []Value, error) {
	if b.GetTable() == "" {
		return "", nil, ErrNoTable
	}
	if len(rows) == 0 {
		return "", nil, ErrEmptyBatch
	}
	if len(rows[0]) == 0 {
		return "", nil, ErrNoColumns
	}

	keys := sortedKeys(rows[0])
	args := make([]Value, 0, len(rows)*len(keys))
	groups := make([]string, len(rows))
	group := placeholderGroup(len(keys))

	for i, row := range rows {
		if len(row) != len(keys) {
			return "", nil, ErrInconsistentBatch
		}
		for _, key := range keys {
			val, ok := row[key]
			if !ok {
				return "", nil, ErrInconsistentBatch
			}
			args = append(args, Cast(val))
		}
		groups[i] = group
	}

	var sql strings.Builder
	sql.WriteString("INSERT INTO ")
	sql.WriteString(g.Wrap(b.GetTable()))
	sql.WriteString(" (")
	sql.WriteString(g.wrapAll(keys))
	sql.WriteString(") VALUES ")
	sql.WriteString(strings.Join(groups, ", "))

	return sql.String(), args, nil
}

// CompileUpdate, UPDATE sorgusu oluşturur.
// SET bağlamaları WHERE bağlamalarından önce gelir.
func (g *BaseGrammar) CompileUpdate(b QueryBuilder, data map[string]any) (string, []Value, error) {
	if b.GetTable() == "" {
		return "", nil, ErrNoTable
	}
	if len(data) == 0 {
		return "", nil, ErrNoColumns
	}

	keys := sortedKeys(data)
	args := make([]Value, 0, len(keys)+len(b.GetBindings()))
	sets := make([]string, len(keys))
	for i, key := range keys {
		sets[i] = g.Wrap(key) + " = ?"
		args = append(args, Cast(data[key]))
	}

	var sql strings.Builder
	sql.WriteString("UPDATE ")
	sql.WriteString(g.Wrap(b.GetTable()))
	sql.WriteString(" SET ")
	sql.WriteString(strings.Join(sets, ", "))

	whereArgs, err := g.compileWhereInto(&sql, b)
	if err != nil {
		return "", nil, err
	}

	return sql.String(), append(args, whereArgs...), nil
}

// CompileDelete, DELETE sorgusu oluşturur.
func (g *BaseGrammar) CompileDelete(b QueryBuilder) (string, []Value, error) {
	if b.GetTable() == "" {
		return "", nil, ErrNoTable
	}

	var sql strings.Builder
	sql.WriteString("DELETE FROM ")
	sql.WriteString(g.Wrap(b.GetTable()))

	args, err := g.compileWhereInto(&sql, b)
	if err != nil {
		return "", nil, err
	}

	return sql.String(), args, nil
}

// ----------------------------------------------------------------------------
// Internal helpers
// ----------------------------------------------------------------------------

// compileWhereInto, WHERE cümlesini sql'e yazar ve koşul bağlamalarını döndürür.
// Yer tutucu sayısı bağlama sayısıyla eşleşmezse hata döner.
func (g *BaseGrammar) compileWhereInto(sql *strings.Builder, b QueryBuilder) ([]Value, error) {
	predicates := b.GetPredicates()
	bindings := b.GetBindings()

	placeholders := 0
	for _, p := range predicates {
		placeholders += p.Fragment.Placeholders()
	}
	if placeholders != len(bindings) {
		return nil, &DialectError{Message: fmt.Sprintf(
			"binding mismatch: %d placeholders, %d bindings", placeholders, len(bindings))}
	}

	if len(predicates) == 0 {
		return nil, nil
	}

	sql.WriteString(" WHERE ")
	sql.WriteString(CompileWheres(predicates))

	out := make([]Value, len(bindings))
	copy(out, bindings)
	return out, nil
}

// CompileWheres, koşulları eklenme sırasıyla birleştirir. İlk koşul yalnızca
// kendi parçasını yazar; sonrakiler bağlaç kelimesi ve bir boşlukla başlar.
func CompileWheres(predicates []Predicate) string {
	var sql strings.Builder
	for i, p := range predicates {
		if i > 0 {
			connective := p.Connective
			if connective == ConnectiveNone {
				connective = And
			}
			sql.WriteString(" ")
			sql.WriteString(connective.String())
			sql.WriteString(" ")
		}
		sql.WriteString(p.Fragment.SQL())
	}
	return sql.String()
}

func (g *BaseGrammar) compileColumns(columns []string) string {
	if len(columns) == 0 {
		return "*"
	}
	return g.wrapAll(columns)
}

func (g *BaseGrammar) wrapAll(identifiers []string) string {
	wrapped := make([]string, len(identifiers))
	for i, id := range identifiers {
		wrapped[i] = g.Wrap(id)
	}
	return strings.Join(wrapped, ", ")
}

func placeholderGroup(n int) string {
	return "(" + strings.TrimSuffix(strings.Repeat("?, ", n), ", ") + ")"
}

func sortedKeys(data map[string]any) []string {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
