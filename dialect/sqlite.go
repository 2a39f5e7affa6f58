package dialect

/*
 * ----------------------------------------------------------------------------
 * SQLITE GRAMMAR IMPLEMENTATION
 * ----------------------------------------------------------------------------
 *
 * SQLite identifier'ları çift tırnak (") ile sarar ve "?" yer tutucusunu
 * doğrudan kabul eder. LIMIT olmadan OFFSET için "LIMIT -1" yazılır.
 *
 * Bağlantı açıldığında dört oturum pragması bir kez çalıştırılır: WAL günlüğü,
 * foreign key denetimi, NORMAL senkronizasyon ve bellekte geçici depolama.
 *
 * @author Ahmet ALTUN
 * @github github.com/biyonik
 * @linkedin linkedin.com/in/biyonik
 * @email ahmet.altun60@gmail.com
 * ----------------------------------------------------------------------------
 */

// SQLiteGrammar, Grammar arayüzünü SQLite için implemente eder.
type SQLiteGrammar struct {
	BaseGrammar
}

// NewSQLiteGrammar, yeni bir SQLite dilbilgisi örneği oluşturur.
func NewSQLiteGrammar() *SQLiteGrammar {
	return &SQLiteGrammar{
		BaseGrammar: BaseGrammar{
			name:            "sqlite",
			driver:          SQLite,
			offsetOnlyLimit: "-1",
		},
	}
}

var _ Grammar = (*SQLiteGrammar)(nil)

var sqlitePragmas = []string{
	"PRAGMA journal_mode = WAL",
	"PRAGMA foreign_keys = ON",
	"PRAGMA synchronous = NORMAL",
	"PRAGMA temp_store = MEMORY",
}

// SessionPragmas, SQLite oturum pragmalarını döndürür.
func (g *SQLiteGrammar) SessionPragmas() []string {
	out := make([]string, len(sqlitePragmas))
	copy(out, sqlitePragmas)
	return out
}
