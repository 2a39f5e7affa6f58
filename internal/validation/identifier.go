// Identifier quoting primitives.
//
// Tablo ve kolon isimleri prepared statement placeholder'ı ile bağlanamaz; bu yüzden
// sözdizimsel kaçış tek savunmadır. Buradaki fonksiyonlar sürücüden bağımsızdır,
// tırnak karakterini dışarıdan alır. Sürücü seçimi dialect paketinde yapılır.
//
// @author Ahmet ALTUN
// @github github.com/biyonik
// @linkedin linkedin.com/in/biyonik
// @email ahmet.altun60@gmail.com

package validation

import "strings"

// Wildcard is the projection marker that is never quoted.
const Wildcard = "*"

// QuoteIdentifier, bir identifier'ı verilen tırnak karakteriyle güvenli biçimde sarar.
//
//   - "*" ve zaten düzgün tırnaklanmış girdiler olduğu gibi döner.
//   - "table.column" biçimindeki referanslar noktadan bölünür, her parça ayrı sarılır.
//   - Aksi hâlde ters bölüler kaçırılır, tırnak karakteri ikilenir ve sonuç tırnaklanır.
func QuoteIdentifier(id string, quote byte) string {
	if id == Wildcard || IsQuoted(id, quote) {
		return id
	}

	if strings.Contains(id, ".") {
		parts := strings.Split(id, ".")
		for i, part := range parts {
			parts[i] = QuoteIdentifier(part, quote)
		}
		return strings.Join(parts, ".")
	}

	q := string(quote)
	escaped := strings.ReplaceAll(id, `\`, `\\`)
	escaped = strings.ReplaceAll(escaped, q, q+q)
	return q + escaped + q
}

// IsQuoted, id'nin tamamının tek bir düzgün tırnaklanmış token olup olmadığını döndürür:
// tırnakla başlar, tırnakla biter ve içerideki her tırnak ikilenmiştir.
// Yalnızca başında tırnak olan "`a`; DROP ..." gibi girdiler bu kontrolden geçemez.
func IsQuoted(id string, quote byte) bool {
	if len(id) < 2 || id[0] != quote || id[len(id)-1] != quote {
		return false
	}

	inner := id[1 : len(id)-1]
	for i := 0; i < len(inner); i++ {
		if inner[i] != quote {
			continue
		}
		if i+1 >= len(inner) || inner[i+1] != quote {
			return false
		}
		i++
	}

	return true
}
