package dialect

import "github.com/jmoiron/sqlx"

/*
 * ----------------------------------------------------------------------------
 * POSTGRESQL GRAMMAR IMPLEMENTATION
 * ----------------------------------------------------------------------------
 *
 * PostgreSQL identifier'ları çift tırnak (") ile sarar ve $1, $2 biçiminde
 * yer tutucu bekler. Derleme aşaması "?" üretir; Rebind çalıştırma anında
 * sqlx.Rebind ile bunu $n biçimine çevirir.
 *
 * lib/pq LastInsertId desteklemediği için INSERT sorgusuna primary key için
 * RETURNING cümlesi eklenir.
 *
 * @author Ahmet ALTUN
 * @github github.com/biyonik
 * @linkedin linkedin.com/in/biyonik
 * @email ahmet.altun60@gmail.com
 * ----------------------------------------------------------------------------
 */

// PostgresGrammar, Grammar arayüzünü PostgreSQL için implemente eder.
type PostgresGrammar struct {
	BaseGrammar
}

// NewPostgresGrammar, yeni bir PostgreSQL dilbilgisi örneği oluşturur.
func NewPostgresGrammar() *PostgresGrammar {
	return &PostgresGrammar{
		BaseGrammar: BaseGrammar{
			name:   "pgsql",
			driver: Postgres,
		},
	}
}

var _ Grammar = (*PostgresGrammar)(nil)

// Rebind, "?" yer tutucularını $1, $2, ... biçimine çevirir.
func (g *PostgresGrammar) Rebind(query string) string {
	return sqlx.Rebind(sqlx.DOLLAR, query)
}

// SupportsReturning, PostgreSQL için true döner.
func (g *PostgresGrammar) SupportsReturning() bool { return true }

// CompileInsert, INSERT sorgusuna "RETURNING <pk>" ekler.
// Primary key boş ise RETURNING yazılmaz.
func (g *PostgresGrammar) CompileInsert(b QueryBuilder, data map[string]any) (string, []Value, error) {
	sql, args, err := g.BaseGrammar.CompileInsert(b, data)
	if err != nil {
		return "", nil, err
	}
	if pk := b.GetPrimaryKey(); pk != "" {
		sql += " RETURNING " + g.Wrap(pk)
	}
	return sql, args, nil
}
