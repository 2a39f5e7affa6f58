package dialect

import (
	"strings"

	"github.com/biyonik/go-fluent-db/internal/validation"
)

// Operator, doğrulanmış bir karşılaştırma operatörüdür. Sıfır değeri "=" olarak render edilir.
type Operator = validation.Operator

// OperatorEqual is the default "=" operator.
var OperatorEqual = validation.Equal

// ValidateOperator, ham operatör metnini beyaz listeye karşı doğrular.
func ValidateOperator(op string) (Operator, error) {
	return validation.ValidateOperator(op)
}

// AllowedOperators, WHERE koşullarında kabul edilen operatörleri sıralı döndürür.
func AllowedOperators() []string {
	return validation.AllowedOperators()
}

// Fragment, değer bağlamalarından ayrı tutulan, parametreli bir SQL koşul parçasıdır.
//
// Fragment yalnızca bu paketteki kurucularla üretilebilir. Kurucular kolonu kaçırır
// ve operatörü doğrulanmış türden alır; böylece Fragment metni her zaman
// güvenli parçalardan ve "?" yer tutucularından oluşur.
type Fragment struct {
	sql          string
	placeholders int
}

// SQL returns the rendered fragment text.
func (f Fragment) SQL() string { return f.sql }

// Placeholders returns the number of "?" markers in the fragment.
func (f Fragment) Placeholders() int { return f.placeholders }

// IsZero reports whether f was never constructed.
func (f Fragment) IsZero() bool { return f.sql == "" }

// Compare, `kolon OP ?` biçiminde tek yer tutuculu bir parça üretir.
func Compare(d Driver, column string, op Operator) Fragment {
	return Fragment{
		sql:          Escape(column, d) + " " + op.String() + " ?",
		placeholders: 1,
	}
}

// InList, `kolon IN (?, ?, ...)` parçası üretir. n sıfırdan büyük olmalıdır.
func InList(d Driver, column string, n int, not bool) Fragment {
	op := " IN ("
	if not {
		op = " NOT IN ("
	}
	marks := strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
	return Fragment{
		sql:          Escape(column, d) + op + marks + ")",
		placeholders: n,
	}
}

// Between, `kolon BETWEEN ? AND ?` parçası üretir.
func Between(d Driver, column string, not bool) Fragment {
	op := " BETWEEN ? AND ?"
	if not {
		op = " NOT BETWEEN ? AND ?"
	}
	return Fragment{sql: Escape(column, d) + op, placeholders: 2}
}

// NullCheck, `kolon IS NULL` veya `kolon IS NOT NULL` parçası üretir.
func NullCheck(d Driver, column string, not bool) Fragment {
	op := " IS NULL"
	if not {
		op = " IS NOT NULL"
	}
	return Fragment{sql: Escape(column, d) + op}
}
