package dialect

import "github.com/biyonik/go-fluent-db/internal/validation"

// Escape, ham bir identifier'ı sürücünün tırnak karakteriyle güvenli biçimde sarar.
//
// Tablo/kolon isimleri placeholder ile bağlanamadığı için kullanıcıdan türeyen her
// identifier (örneğin dinamik bir sıralama kolonu) SQL'e eklenmeden önce buradan geçmelidir.
//
// Örnek:
//
//	Escape("users", MySQL)        // `users`
//	Escape("u.name", Postgres)    // "u"."name"
//	Escape("us`ers", MySQL)       // `us``ers`
func Escape(identifier string, d Driver) string {
	return validation.QuoteIdentifier(identifier, d.QuoteChar())
}
